package indicator

import "traydner_bot/internal/models"

// Params — окна всех индикаторов, которые считает движок.
type Params struct {
	EMAFast   int
	EMASlow   int
	RSIPeriod int
	BBWindow  int
	BBK       float64
	ATRWindow int
}

// Snapshot — все индикаторы на одном закрытом баре.
type Snapshot struct {
	EMAFast Value
	EMASlow Value
	RSI     Value
	BBMid   Value
	BBUpper Value
	BBLower Value
	ATR     Value
}

// SnapshotAt считает снапшот на баре len-1-back (back=0 — последний бар,
// back=1 — предыдущий). Пересчёт батчем по всей доступной истории.
func SnapshotAt(candles []models.Candle, p Params, back int) Snapshot {
	if back < 0 || back >= len(candles) {
		return Snapshot{
			EMAFast: Undefined, EMASlow: Undefined, RSI: Undefined,
			BBMid: Undefined, BBUpper: Undefined, BBLower: Undefined, ATR: Undefined,
		}
	}
	upto := candles[:len(candles)-back]
	closes := make([]float64, len(upto))
	for i, c := range upto {
		closes[i] = c.Close
	}

	mid, upper, lower := Bollinger(closes, p.BBWindow, p.BBK)
	return Snapshot{
		EMAFast: EMA(closes, p.EMAFast),
		EMASlow: EMA(closes, p.EMASlow),
		RSI:     RSI(closes, p.RSIPeriod),
		BBMid:   mid,
		BBUpper: upper,
		BBLower: lower,
		ATR:     ATR(upto, p.ATRWindow),
	}
}
