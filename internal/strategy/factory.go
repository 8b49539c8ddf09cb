package strategy

import (
	"fmt"

	"traydner_bot/internal/models"
)

// New выбирает вариант стратегии по конфигу. Закрытый набор вариантов,
// никакой динамики: неизвестное имя — ошибка конфигурации.
func New(st Settings) (Engine, error) {
	switch models.StrategyType(st.Strategy) {
	case models.StrategyTrendCross, "":
		return NewTrendCross(st), nil
	case models.StrategyMeanRev:
		return NewMeanReversion(st), nil
	case models.StrategyMomentum:
		return NewMomentum(st), nil
	case models.StrategySMACross:
		return NewSMACross(st), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", st.Strategy)
	}
}
