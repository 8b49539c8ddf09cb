package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"traydner_bot/internal/models"
)

func smacrossSettings() Settings {
	return Settings{
		Strategy: "smacross",
		SMAShort: 2,
		SMALong:  4,
		BBWindow: 4,
		BBK:      2,
		ATRWindow: 4,
	}
}

func TestSMACrossHoldsOnShortSeries(t *testing.T) {
	e := NewSMACross(smacrossSettings())
	sig := e.Evaluate(seriesOf(t, []float64{10, 10, 10, 10})) // ATR(4) нужно 5 свечей
	assert.True(t, sig.Hold())
}

func TestSMACrossBuysOnDivergenceAboveATR(t *testing.T) {
	// плоская база, затем ступенька вверх: короткая SMA уходит от длинной
	// дальше, чем 1.5*ATR, цена всё ещё под верхней полосой
	closes := []float64{10, 10, 10, 10, 10, 10, 16, 16}
	e := NewSMACross(smacrossSettings())
	sig := e.Evaluate(seriesOf(t, closes))
	require.Equal(t, models.SideBuy, sig.Side)
}

func TestSMACrossSellsOnDivergenceBelowATR(t *testing.T) {
	closes := []float64{10, 10, 10, 10, 10, 10, 4, 4}
	e := NewSMACross(smacrossSettings())
	sig := e.Evaluate(seriesOf(t, closes))
	require.Equal(t, models.SideSell, sig.Side)
}

func TestSMACrossHoldsWhenFlat(t *testing.T) {
	closes := []float64{10, 10, 10, 10, 10, 10, 10, 10}
	e := NewSMACross(smacrossSettings())
	sig := e.Evaluate(seriesOf(t, closes))
	assert.True(t, sig.Hold())
}
