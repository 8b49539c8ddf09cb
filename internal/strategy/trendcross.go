package strategy

import (
	"fmt"

	"traydner_bot/internal/indicator"
	"traydner_bot/internal/models"
	"traydner_bot/internal/series"
)

// TrendCross — пересечение быстрой/медленной EMA с RSI-фильтром.
// Свежий кросс (prev против last) — сигнал высокой уверенности; опционально
// включается continuation-режим: текущее взаимное положение EMA без кросса,
// чтобы не терять входы между опросами. Кросс всегда приоритетнее.
type TrendCross struct {
	st Settings
}

func NewTrendCross(st Settings) *TrendCross {
	return &TrendCross{st: st}
}

func (e *TrendCross) Name() models.StrategyType { return models.StrategyTrendCross }

func (e *TrendCross) Evaluate(s *series.Series) models.Signal {
	candles := s.Window(s.Len())
	if len(candles) < 2 {
		return hold(s, e.Name(), "insufficient history")
	}

	p := e.st.params()
	last := indicator.SnapshotAt(candles, p, 0)
	prev := indicator.SnapshotAt(candles, p, 1)

	// EMA определена с первого бара, RSI держит прогрев: пока он не созрел,
	// решения нет.
	if !last.EMAFast.OK || !last.EMASlow.OK || !last.RSI.OK ||
		!prev.EMAFast.OK || !prev.EMASlow.OK || !prev.RSI.OK {
		return hold(s, e.Name(), "indicators not ready")
	}

	price := candles[len(candles)-1].Close

	crossUp := prev.EMAFast.F <= prev.EMASlow.F && last.EMAFast.F > last.EMASlow.F
	crossDown := prev.EMAFast.F >= prev.EMASlow.F && last.EMAFast.F < last.EMASlow.F

	switch {
	case crossUp && last.RSI.F < e.st.RSIOverbought:
		return models.Signal{
			Symbol: s.Symbol(), Side: models.SideBuy, Price: price,
			Strategy: e.Name(), Crossed: true,
			Reason: fmt.Sprintf("EMA cross up, rsi=%.2f", last.RSI.F),
		}
	case crossDown && last.RSI.F > e.st.RSIOversold:
		return models.Signal{
			Symbol: s.Symbol(), Side: models.SideSell, Price: price,
			Strategy: e.Name(), Crossed: true,
			Reason: fmt.Sprintf("EMA cross down, rsi=%.2f", last.RSI.F),
		}
	}

	if !e.st.TrendContinuation {
		return hold(s, e.Name(), "no cross")
	}

	// continuation: вход по направлению тренда без свежего кросса.
	switch {
	case last.EMAFast.F > last.EMASlow.F && last.RSI.F < e.st.RSIOverbought:
		return models.Signal{
			Symbol: s.Symbol(), Side: models.SideBuy, Price: price,
			Strategy: e.Name(),
			Reason: fmt.Sprintf("trend continuation up, rsi=%.2f", last.RSI.F),
		}
	case last.EMAFast.F < last.EMASlow.F && last.RSI.F > e.st.RSIOversold:
		return models.Signal{
			Symbol: s.Symbol(), Side: models.SideSell, Price: price,
			Strategy: e.Name(),
			Reason: fmt.Sprintf("trend continuation down, rsi=%.2f", last.RSI.F),
		}
	}
	return hold(s, e.Name(), "no trend")
}
