// Package indicator — чистые функции техиндикаторов над срезом свечей.
// Недостаток истории выражается явным Value{OK:false}, а не нулём.
package indicator

import (
	"math"

	"traydner_bot/internal/models"
)

const rsiEps = 1e-10

// Value — значение индикатора либо "не определено" (мало истории).
type Value struct {
	F  float64
	OK bool
}

var Undefined = Value{}

func Defined(f float64) Value { return Value{F: f, OK: true} }

// SMA — среднее последних window закрытий.
func SMA(closes []float64, window int) Value {
	if window <= 0 || len(closes) < window {
		return Undefined
	}
	sum := 0.0
	for _, c := range closes[len(closes)-window:] {
		sum += c
	}
	return Defined(sum / float64(window))
}

// EMAValues — вся серия EMA c adjust=false: ema[0]=close[0],
// дальше рекуррентно. Определена с первого бара, но до прогрева смещена.
func EMAValues(closes []float64, span int) []float64 {
	if len(closes) == 0 || span <= 0 {
		return nil
	}
	alpha := 2.0 / float64(span+1)
	out := make([]float64, len(closes))
	out[0] = closes[0]
	for i := 1; i < len(closes); i++ {
		out[i] = closes[i]*alpha + out[i-1]*(1-alpha)
	}
	return out
}

func EMA(closes []float64, span int) Value {
	vals := EMAValues(closes, span)
	if len(vals) == 0 {
		return Undefined
	}
	return Defined(vals[len(vals)-1])
}

// RSI — скользящие средние гейнов и лоссов за period диффов;
// не определён, пока диффов меньше period.
func RSI(closes []float64, period int) Value {
	if period <= 0 || len(closes) < period+1 {
		return Undefined
	}
	diffs := closes[len(closes)-period-1:]
	gain, loss := 0.0, 0.0
	for i := 1; i < len(diffs); i++ {
		d := diffs[i] - diffs[i-1]
		if d > 0 {
			gain += d
		} else {
			loss += -d
		}
	}
	avgGain := gain / float64(period)
	avgLoss := loss / float64(period)
	rs := avgGain / (avgLoss + rsiEps)
	return Defined(100 - 100/(1+rs))
}

// Bollinger — SMA ± k*stdev (популяционное отклонение).
func Bollinger(closes []float64, window int, k float64) (mid, upper, lower Value) {
	mid = SMA(closes, window)
	if !mid.OK {
		return Undefined, Undefined, Undefined
	}
	variance := 0.0
	for _, c := range closes[len(closes)-window:] {
		d := c - mid.F
		variance += d * d
	}
	stdev := math.Sqrt(variance / float64(window))
	return mid, Defined(mid.F + k*stdev), Defined(mid.F - k*stdev)
}

// ATR — среднее из window значений true range; каждому бару нужен prev close,
// поэтому истории нужно window+1 свечей.
func ATR(candles []models.Candle, window int) Value {
	if window <= 0 || len(candles) < window+1 {
		return Undefined
	}
	tail := candles[len(candles)-window-1:]
	sum := 0.0
	for i := 1; i < len(tail); i++ {
		sum += trueRange(tail[i], tail[i-1].Close)
	}
	return Defined(sum / float64(window))
}

func trueRange(c models.Candle, prevClose float64) float64 {
	tr := c.High - c.Low
	if v := math.Abs(c.High - prevClose); v > tr {
		tr = v
	}
	if v := math.Abs(c.Low - prevClose); v > tr {
		tr = v
	}
	return tr
}
