package runner

import (
	"context"

	"github.com/opentracing/opentracing-go"

	"traydner_bot/internal/models"
	"traydner_bot/internal/position"
	"traydner_bot/pkg/logger"
)

// evalSymbol — один проход по символу: статус рынка -> история -> цена ->
// риск-выход -> сигнал -> сайзинг -> сделка -> персист. Любая ошибка
// деградирует в Hold для этого символа и не трогает остальные.
func (r *Runner) evalSymbol(ctx context.Context, symbol string) {
	defer func() {
		if p := recover(); p != nil {
			logger.Error("[%s] panic in evaluation: %v", symbol, p)
			_ = r.jrnl.Append(symbol, "error", map[string]interface{}{"msg": "panic", "detail": p})
		}
	}()

	span, ctx := opentracing.StartSpanFromContext(ctx, "evaluate")
	span.SetTag("symbol", symbol)
	defer span.Finish()

	st := r.symbols[symbol]
	st.mu.Lock()
	defer st.mu.Unlock()

	open, err := r.api.MarketStatus(ctx, symbol)
	if err != nil {
		r.fail(symbol, "market_status failed", err)
		return
	}
	if !open {
		// закрытый рынок — это не ошибка данных, отдельное событие
		_ = r.jrnl.Append(symbol, "market_closed", nil)
		return
	}

	candles, err := r.api.History(ctx, symbol, r.cfg.Resolution, r.cfg.HistoryLimit)
	if err != nil {
		r.fail(symbol, "history failed", err)
		return
	}
	if len(candles) == 0 {
		_ = r.jrnl.Append(symbol, "no_candles", nil)
		return
	}
	st.series.ReplaceHistory(candles)

	price, err := r.api.Price(ctx, symbol)
	if err != nil {
		r.fail(symbol, "price failed", err)
		return
	}

	// стоп/тейк приоритетнее сигнала; после выхода сигнал этого же цикла
	// всё ещё оценивается — дедуп решит, можно ли перезайти
	if reason, exit := position.CheckRiskExit(st.pos, price, r.cfg.StopLossPct, r.cfg.TakeProfitPct); exit {
		r.closePosition(ctx, st, price, reason)
	}

	sig := r.stg.Evaluate(st.series)
	if sig.Hold() {
		return
	}
	logger.Info("[%s] signal %s @ %.4f (%s)", symbol, sig.Side, sig.Price, sig.Reason)
	_ = r.jrnl.Append(symbol, "signal", map[string]interface{}{
		"side": sig.Side, "price": price, "reason": sig.Reason, "crossed": sig.Crossed,
	})

	switch position.Decide(st.pos, sig.Side) {
	case position.ActionOpenLong:
		r.openPosition(ctx, st, models.PositionLong, price, sig)
	case position.ActionOpenShort:
		r.openPosition(ctx, st, models.PositionShort, price, sig)
	}
}

func (r *Runner) fail(symbol, msg string, err error) {
	logger.Warn("[%s] %s: %v", symbol, msg, err)
	_ = r.jrnl.Append(symbol, "error", map[string]interface{}{"msg": msg, "detail": err.Error()})
}
