package strategy

import (
	"fmt"

	"traydner_bot/internal/indicator"
	"traydner_bot/internal/models"
	"traydner_bot/internal/series"
)

// MeanReversion — возврат к среднему по полосам Боллинджера:
// цена ниже нижней полосы — BUY, выше верхней — SELL.
type MeanReversion struct {
	st Settings
}

func NewMeanReversion(st Settings) *MeanReversion {
	return &MeanReversion{st: st}
}

func (e *MeanReversion) Name() models.StrategyType { return models.StrategyMeanRev }

func (e *MeanReversion) Evaluate(s *series.Series) models.Signal {
	candles := s.Window(s.Len())
	snap := indicator.SnapshotAt(candles, e.st.params(), 0)
	if !snap.BBUpper.OK || !snap.BBLower.OK {
		return hold(s, e.Name(), "insufficient history")
	}

	price := candles[len(candles)-1].Close
	switch {
	case price < snap.BBLower.F:
		return models.Signal{
			Symbol: s.Symbol(), Side: models.SideBuy, Price: price,
			Strategy: e.Name(), Crossed: true,
			Reason: fmt.Sprintf("price %.4f below lower band %.4f", price, snap.BBLower.F),
		}
	case price > snap.BBUpper.F:
		return models.Signal{
			Symbol: s.Symbol(), Side: models.SideSell, Price: price,
			Strategy: e.Name(), Crossed: true,
			Reason: fmt.Sprintf("price %.4f above upper band %.4f", price, snap.BBUpper.F),
		}
	}
	return hold(s, e.Name(), "inside bands")
}
