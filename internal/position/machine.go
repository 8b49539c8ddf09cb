// Package position — чистая логика переходов позиции и сайзинга.
// Исполнение заявок и персист — дело раннера; здесь только решения.
package position

import "traydner_bot/internal/models"

type Action int

const (
	ActionNone Action = iota
	ActionOpenLong
	ActionOpenShort
)

// Причины риск-выхода; попадают в журнал как тип события.
const (
	ExitStopLoss   = "stop_loss"
	ExitTakeProfit = "take_profit"
)

// CheckRiskExit проверяет стоп/тейк по текущей цене. Границы включительные:
// ровно -stop_loss_pct уже триггерит выход. Шорт — зеркально.
func CheckRiskExit(pos models.Position, price, stopLossPct, takeProfitPct float64) (string, bool) {
	if !pos.Open() || pos.EntryPrice == nil || *pos.EntryPrice == 0 {
		return "", false
	}
	change := (price - *pos.EntryPrice) / *pos.EntryPrice

	switch pos.Side {
	case models.PositionLong:
		if change <= -stopLossPct {
			return ExitStopLoss, true
		}
		if change >= takeProfitPct {
			return ExitTakeProfit, true
		}
	case models.PositionShort:
		if change >= stopLossPct {
			return ExitStopLoss, true
		}
		if change <= -takeProfitPct {
			return ExitTakeProfit, true
		}
	}
	return "", false
}

// Decide переводит сигнал в действие с учётом текущей позиции:
//   - повтор последнего принятого сигнала — no-op (идемпотентность);
//   - сигнал в сторону открытой позиции — no-op (без пирамидинга);
//   - сигнал против открытой позиции — no-op: разворот двухшаговый,
//     сначала позицию должен закрыть стоп/тейк, вход — следующим циклом;
//   - из Flat — открытие соответствующей стороны.
func Decide(pos models.Position, side models.Side) Action {
	if side == models.SideNone {
		return ActionNone
	}
	if side == pos.LastSignal {
		return ActionNone
	}
	if pos.Side != models.PositionFlat {
		return ActionNone
	}
	if side == models.SideBuy {
		return ActionOpenLong
	}
	return ActionOpenShort
}
