package strategy

import (
	"fmt"

	"traydner_bot/internal/indicator"
	"traydner_bot/internal/models"
	"traydner_bot/internal/series"
)

// SMACross — короткая/длинная SMA с порогом волатильности 1.5*ATR
// и фильтром по полосам Боллинджера.
type SMACross struct {
	st Settings
}

const atrThresholdMult = 1.5

func NewSMACross(st Settings) *SMACross {
	return &SMACross{st: st}
}

func (e *SMACross) Name() models.StrategyType { return models.StrategySMACross }

func (e *SMACross) Evaluate(s *series.Series) models.Signal {
	candles := s.Window(s.Len())
	closes := make([]float64, len(candles))
	for i, c := range candles {
		closes[i] = c.Close
	}

	smaShort := indicator.SMA(closes, e.st.SMAShort)
	smaLong := indicator.SMA(closes, e.st.SMALong)
	atr := indicator.ATR(candles, e.st.ATRWindow)
	_, upper, lower := indicator.Bollinger(closes, e.st.BBWindow, e.st.BBK)
	if !smaShort.OK || !smaLong.OK || !atr.OK || !upper.OK || !lower.OK {
		return hold(s, e.Name(), "indicators not ready")
	}

	price := candles[len(candles)-1].Close
	threshold := atrThresholdMult * atr.F

	switch {
	case smaShort.F > smaLong.F+threshold && price < upper.F:
		return models.Signal{
			Symbol: s.Symbol(), Side: models.SideBuy, Price: price,
			Strategy: e.Name(), Crossed: true,
			Reason: fmt.Sprintf("sma %.4f > %.4f+%.4f", smaShort.F, smaLong.F, threshold),
		}
	case smaShort.F < smaLong.F-threshold && price > lower.F:
		return models.Signal{
			Symbol: s.Symbol(), Side: models.SideSell, Price: price,
			Strategy: e.Name(), Crossed: true,
			Reason: fmt.Sprintf("sma %.4f < %.4f-%.4f", smaShort.F, smaLong.F, threshold),
		}
	}
	return hold(s, e.Name(), "no divergence")
}
