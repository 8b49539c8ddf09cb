package position

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"traydner_bot/internal/models"
)

func long(entry float64) models.Position {
	return models.Position{Symbol: "BTC", Side: models.PositionLong, EntryPrice: &entry, LastSignal: models.SideBuy}
}

func short(entry float64) models.Position {
	return models.Position{Symbol: "BTC", Side: models.PositionShort, EntryPrice: &entry, LastSignal: models.SideSell}
}

func TestDecideOpensFromFlat(t *testing.T) {
	flat := models.NewFlatPosition("BTC")
	assert.Equal(t, ActionOpenLong, Decide(flat, models.SideBuy))
	assert.Equal(t, ActionOpenShort, Decide(flat, models.SideSell))
	assert.Equal(t, ActionNone, Decide(flat, models.SideNone))
}

func TestDecideDeduplicatesRepeatedSignal(t *testing.T) {
	flat := models.NewFlatPosition("BTC")
	flat.LastSignal = models.SideBuy
	assert.Equal(t, ActionNone, Decide(flat, models.SideBuy),
		"same signal must never produce a second order without a state change")
}

func TestDecideNoPyramiding(t *testing.T) {
	assert.Equal(t, ActionNone, Decide(long(100), models.SideBuy))
	assert.Equal(t, ActionNone, Decide(short(100), models.SideSell))
}

func TestDecideReversalIsTwoStep(t *testing.T) {
	// противоположный сигнал против открытой позиции ничего не открывает:
	// сначала позицию должен закрыть стоп/тейк
	assert.Equal(t, ActionNone, Decide(short(100), models.SideBuy))
	assert.Equal(t, ActionNone, Decide(long(100), models.SideSell))
}

func TestRiskExitLongStopLossInclusiveBoundary(t *testing.T) {
	pos := long(100)

	reason, exit := CheckRiskExit(pos, 97.9, 0.02, 0.04)
	assert.True(t, exit, "-2.1% is past the stop")
	assert.Equal(t, ExitStopLoss, reason)

	reason, exit = CheckRiskExit(pos, 98.0, 0.02, 0.04)
	assert.True(t, exit, "exactly -2.0% triggers, boundary is inclusive")
	assert.Equal(t, ExitStopLoss, reason)

	_, exit = CheckRiskExit(pos, 98.1, 0.02, 0.04)
	assert.False(t, exit)
}

func TestRiskExitLongTakeProfit(t *testing.T) {
	pos := long(100)

	reason, exit := CheckRiskExit(pos, 104.0, 0.02, 0.04)
	assert.True(t, exit)
	assert.Equal(t, ExitTakeProfit, reason)

	_, exit = CheckRiskExit(pos, 103.9, 0.02, 0.04)
	assert.False(t, exit)
}

func TestRiskExitShortMirrors(t *testing.T) {
	pos := short(100)

	reason, exit := CheckRiskExit(pos, 102.0, 0.02, 0.04)
	assert.True(t, exit, "price up is the short's stop")
	assert.Equal(t, ExitStopLoss, reason)

	reason, exit = CheckRiskExit(pos, 96.0, 0.02, 0.04)
	assert.True(t, exit)
	assert.Equal(t, ExitTakeProfit, reason)

	_, exit = CheckRiskExit(pos, 100.5, 0.02, 0.04)
	assert.False(t, exit)
}

func TestRiskExitIgnoresFlat(t *testing.T) {
	_, exit := CheckRiskExit(models.NewFlatPosition("BTC"), 1, 0.02, 0.04)
	assert.False(t, exit)
}

func TestBuyQuantity(t *testing.T) {
	assert.Equal(t, 20.0, BuyQuantity(10000, 0.1, 50), "0.1 of 10000 at price 50 is exactly 20")
	assert.Equal(t, 0.0, BuyQuantity(0, 0.1, 50))
	assert.Equal(t, 0.0, BuyQuantity(10000, 0.1, 0))
}

func TestRoundQty(t *testing.T) {
	assert.Equal(t, 0.123457, RoundQty(0.1234567))
	assert.Equal(t, 0.0, RoundQty(1e-8))
}

func TestTooSmall(t *testing.T) {
	assert.True(t, TooSmall(1e-8, 1e-6))
	assert.False(t, TooSmall(1e-6, 1e-6))
}
