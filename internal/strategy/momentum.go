package strategy

import (
	"fmt"

	"traydner_bot/internal/indicator"
	"traydner_bot/internal/models"
	"traydner_bot/internal/series"
)

// Momentum — чистый RSI: перепроданность — BUY, перекупленность — SELL.
type Momentum struct {
	st Settings
}

func NewMomentum(st Settings) *Momentum {
	return &Momentum{st: st}
}

func (e *Momentum) Name() models.StrategyType { return models.StrategyMomentum }

func (e *Momentum) Evaluate(s *series.Series) models.Signal {
	rsi := indicator.RSI(s.Closes(s.Len()), e.st.RSIPeriod)
	if !rsi.OK {
		return hold(s, e.Name(), "rsi not ready")
	}

	last, _ := s.Last()
	switch {
	case rsi.F < e.st.RSIOversold:
		return models.Signal{
			Symbol: s.Symbol(), Side: models.SideBuy, Price: last.Close,
			Strategy: e.Name(), Crossed: true,
			Reason: fmt.Sprintf("rsi %.2f oversold", rsi.F),
		}
	case rsi.F > e.st.RSIOverbought:
		return models.Signal{
			Symbol: s.Symbol(), Side: models.SideSell, Price: last.Close,
			Strategy: e.Name(), Crossed: true,
			Reason: fmt.Sprintf("rsi %.2f overbought", rsi.F),
		}
	}
	return hold(s, e.Name(), "rsi neutral")
}
