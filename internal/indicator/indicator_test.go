package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"traydner_bot/internal/models"
)

const delta = 1e-6

func constSeries(price float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = price
	}
	return out
}

func TestSMAUndefinedOnShortSeries(t *testing.T) {
	assert.False(t, SMA([]float64{1, 2}, 3).OK)
	assert.False(t, SMA(nil, 3).OK)
}

func TestSMA(t *testing.T) {
	v := SMA([]float64{1, 2, 3, 4}, 2)
	require.True(t, v.OK)
	assert.Equal(t, 3.5, v.F)
}

func TestEMAConstantSeriesConvergesExactly(t *testing.T) {
	v := EMA(constSeries(42.5, 30), 9)
	require.True(t, v.OK)
	assert.Equal(t, 42.5, v.F, "EMA over a constant series is that constant, no drift")
}

func TestEMADefinedFromFirstBar(t *testing.T) {
	v := EMA([]float64{10}, 9)
	require.True(t, v.OK)
	assert.Equal(t, 10.0, v.F)
}

func TestEMARecurrence(t *testing.T) {
	// span=3 => alpha=0.5: ema = 1, 1.5, 2.25
	vals := EMAValues([]float64{1, 2, 3}, 3)
	require.Len(t, vals, 3)
	assert.InDelta(t, 1.0, vals[0], delta)
	assert.InDelta(t, 1.5, vals[1], delta)
	assert.InDelta(t, 2.25, vals[2], delta)
}

func TestRSIStrictlyIncreasing(t *testing.T) {
	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	v := RSI(closes, 14)
	require.True(t, v.OK)
	assert.InDelta(t, 100.0, v.F, 1e-3)
}

func TestRSIStrictlyDecreasing(t *testing.T) {
	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = 100 - float64(i)
	}
	v := RSI(closes, 14)
	require.True(t, v.OK)
	assert.InDelta(t, 0.0, v.F, 1e-3)
}

func TestRSIUndefinedUntilPeriodDiffs(t *testing.T) {
	assert.False(t, RSI(constSeries(1, 14), 14).OK, "14 closes give only 13 diffs")
	assert.True(t, RSI(constSeries(1, 15), 14).OK)
}

func TestBollingerConstantSeriesCollapses(t *testing.T) {
	mid, upper, lower := Bollinger(constSeries(50, 20), 20, 2)
	require.True(t, mid.OK)
	assert.Equal(t, 50.0, mid.F)
	assert.Equal(t, 50.0, upper.F)
	assert.Equal(t, 50.0, lower.F)
}

func TestBollingerBands(t *testing.T) {
	// closes 1..4: mean 2.5, population stdev sqrt(1.25)
	mid, upper, lower := Bollinger([]float64{1, 2, 3, 4}, 4, 2)
	require.True(t, mid.OK)
	assert.InDelta(t, 2.5, mid.F, delta)
	assert.InDelta(t, 2.5+2*1.1180339887, upper.F, 1e-6)
	assert.InDelta(t, 2.5-2*1.1180339887, lower.F, 1e-6)
}

func TestBollingerUndefined(t *testing.T) {
	mid, upper, lower := Bollinger(constSeries(1, 3), 4, 2)
	assert.False(t, mid.OK)
	assert.False(t, upper.OK)
	assert.False(t, lower.OK)
}

func TestATR(t *testing.T) {
	candles := []models.Candle{
		{Timestamp: 1, High: 12, Low: 8, Close: 10},
		{Timestamp: 2, High: 14, Low: 9, Close: 13},  // tr = max(5, 4, 1) = 5
		{Timestamp: 3, High: 15, Low: 12, Close: 14}, // tr = max(3, 2, 1) = 3
	}
	v := ATR(candles, 2)
	require.True(t, v.OK)
	assert.InDelta(t, 4.0, v.F, delta)
}

func TestATRUndefinedWithoutPrevClose(t *testing.T) {
	candles := []models.Candle{
		{Timestamp: 1, High: 12, Low: 8, Close: 10},
		{Timestamp: 2, High: 14, Low: 9, Close: 13},
	}
	assert.False(t, ATR(candles, 2).OK, "window of 2 true ranges needs 3 candles")
}

func TestSnapshotAtOutOfRangeIsUndefined(t *testing.T) {
	p := Params{EMAFast: 2, EMASlow: 3, RSIPeriod: 2, BBWindow: 2, BBK: 2, ATRWindow: 2}
	snap := SnapshotAt([]models.Candle{{Timestamp: 1, Close: 1}}, p, 5)
	assert.False(t, snap.EMAFast.OK)
	assert.False(t, snap.RSI.OK)
	assert.False(t, snap.ATR.OK)
}
