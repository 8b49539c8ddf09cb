package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"traydner_bot/internal/indicator"
	"traydner_bot/internal/models"
	"traydner_bot/internal/series"
)

func seriesOf(t *testing.T, closes []float64) *series.Series {
	t.Helper()
	s := series.New("BTC", "1m", len(closes)+1)
	for i, c := range closes {
		require.True(t, s.Append(models.Candle{
			Timestamp: int64(i+1) * 60,
			Open:      c, High: c, Low: c, Close: c,
		}))
	}
	return s
}

func trendSettings() Settings {
	return Settings{
		Strategy:      "trendcross",
		EMAFast:       9,
		EMASlow:       21,
		RSIPeriod:     14,
		RSIOverbought: 70,
		RSIOversold:   30,
		BBWindow:      20,
		BBK:           2,
		ATRWindow:     14,
	}
}

func risingCloses(n int) []float64 {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	return closes
}

func TestTrendCrossHoldsOnInsufficientHistory(t *testing.T) {
	e := NewTrendCross(trendSettings())
	sig := e.Evaluate(seriesOf(t, []float64{100}))
	assert.True(t, sig.Hold())

	sig = e.Evaluate(seriesOf(t, []float64{100, 101, 102}))
	assert.True(t, sig.Hold(), "RSI not matured yet, must be no decision")
}

func TestTrendCrossOverboughtSuppressesMonotonicRise(t *testing.T) {
	// 25 монотонно растущих закрытий 100->124: RSI у сотни,
	// continuation-BUY обязан подавиться фильтром перекупленности.
	st := trendSettings()
	st.TrendContinuation = true
	e := NewTrendCross(st)

	sig := e.Evaluate(seriesOf(t, risingCloses(25)))
	assert.True(t, sig.Hold())
}

func TestTrendCrossContinuationFiresWhenRSIAllows(t *testing.T) {
	st := trendSettings()
	st.TrendContinuation = true
	st.RSIOverbought = 101 // фильтр выключен
	e := NewTrendCross(st)

	sig := e.Evaluate(seriesOf(t, risingCloses(25)))
	require.Equal(t, models.SideBuy, sig.Side)
	assert.False(t, sig.Crossed, "continuation signal is low confidence")
}

func TestTrendCrossRSIBoundaryIsExclusive(t *testing.T) {
	// порог сравнивается строго: rsi == overbought уже подавляет BUY
	closes := risingCloses(25)
	rsi := indicator.RSI(closes, 14)
	require.True(t, rsi.OK)

	st := trendSettings()
	st.TrendContinuation = true

	st.RSIOverbought = rsi.F
	assert.True(t, NewTrendCross(st).Evaluate(seriesOf(t, closes)).Hold())

	st.RSIOverbought = rsi.F + 1e-9
	assert.Equal(t, models.SideBuy, NewTrendCross(st).Evaluate(seriesOf(t, closes)).Side)
}

func TestTrendCrossBuyOnFreshCross(t *testing.T) {
	// длинный спуск держит быструю EMA под медленной, резкий скачок
	// на последнем баре перебрасывает её наверх
	closes := make([]float64, 30)
	for i := 0; i < 29; i++ {
		closes[i] = 200 - float64(i)
	}
	closes[29] = 300

	fast := indicator.EMAValues(closes, 9)
	slow := indicator.EMAValues(closes, 21)
	require.LessOrEqual(t, fast[28], slow[28], "no cross before the jump")
	require.Greater(t, fast[29], slow[29], "jump must cross the EMAs")

	st := trendSettings()
	st.RSIOverbought = 101 // интересует сам кросс, не фильтр
	sig := NewTrendCross(st).Evaluate(seriesOf(t, closes))
	require.Equal(t, models.SideBuy, sig.Side)
	assert.True(t, sig.Crossed, "fresh cross is high confidence")
}

func TestTrendCrossSellOnDownCross(t *testing.T) {
	closes := make([]float64, 30)
	for i := 0; i < 29; i++ {
		closes[i] = 100 + float64(i)
	}
	closes[29] = 20

	fast := indicator.EMAValues(closes, 9)
	slow := indicator.EMAValues(closes, 21)
	require.GreaterOrEqual(t, fast[28], slow[28])
	require.Less(t, fast[29], slow[29])

	st := trendSettings()
	st.RSIOversold = -1 // фильтр выключен
	sig := NewTrendCross(st).Evaluate(seriesOf(t, closes))
	require.Equal(t, models.SideSell, sig.Side)
	assert.True(t, sig.Crossed)
}

func TestTrendCrossNoContinuationByDefault(t *testing.T) {
	st := trendSettings()
	st.RSIOverbought = 101
	e := NewTrendCross(st)

	// тренд вверх без свежего кросса
	sig := e.Evaluate(seriesOf(t, risingCloses(25)))
	assert.True(t, sig.Hold())
}
