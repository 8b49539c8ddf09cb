package strategy

import (
	"traydner_bot/internal/indicator"
	"traydner_bot/internal/models"
	"traydner_bot/internal/series"
)

// Engine — то, что раннер дергает раз в цикл по каждому символу.
// Evaluate — чистая функция серии: батч-пересчёт, никакого внутреннего стейта.
type Engine interface {
	Name() models.StrategyType
	Evaluate(s *series.Series) models.Signal
}

// Settings — параметры всех вариантов стратегий; какие поля читаются,
// зависит от выбранного варианта.
type Settings struct {
	Strategy string

	EMAFast           int
	EMASlow           int
	RSIPeriod         int
	RSIOverbought     float64
	RSIOversold       float64
	TrendContinuation bool

	SMAShort int
	SMALong  int

	BBWindow  int
	BBK       float64
	ATRWindow int
}

func (st Settings) params() indicator.Params {
	return indicator.Params{
		EMAFast:   st.EMAFast,
		EMASlow:   st.EMASlow,
		RSIPeriod: st.RSIPeriod,
		BBWindow:  st.BBWindow,
		BBK:       st.BBK,
		ATRWindow: st.ATRWindow,
	}
}

// hold — единый ответ "нет решения".
func hold(s *series.Series, name models.StrategyType, reason string) models.Signal {
	sig := models.Signal{Symbol: s.Symbol(), Strategy: name, Reason: reason}
	if last, ok := s.Last(); ok {
		sig.Price = last.Close
	}
	return sig
}
