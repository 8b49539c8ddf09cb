package runner

import (
	"context"
	"time"

	"traydner_bot/internal/models"
	"traydner_bot/internal/position"
	"traydner_bot/pkg/logger"
)

// openPosition открывает сторону из Flat: сайзинг от баланса, сделка,
// и только после подтверждения — мутация позиции и персист.
func (r *Runner) openPosition(ctx context.Context, st *symbolState, side models.PositionSide, price float64, sig models.Signal) {
	symbol := st.pos.Symbol

	bal, err := r.api.Balance(ctx)
	if err != nil {
		r.fail(symbol, "balance failed", err)
		return
	}

	var qty float64
	var orderSide string
	if side == models.PositionLong {
		orderSide = "buy"
		qty = position.BuyQuantity(bal.Cash, r.cfg.CapitalFraction, price)
	} else {
		// шорт на спотовом счёте — продажа всего холдинга
		orderSide = "sell"
		qty = position.RoundQty(bal.Holding(models.Market(r.cfg.Market), symbol))
	}

	if position.TooSmall(qty, r.cfg.MinQty) {
		logger.Info("[%s] qty too small: %.8f < %.8f, order suppressed", symbol, qty, r.cfg.MinQty)
		_ = r.jrnl.Append(symbol, "qty_too_small", map[string]interface{}{"qty": qty, "min": r.cfg.MinQty})
		return
	}

	res, err := r.api.Trade(ctx, symbol, orderSide, qty)
	if err != nil {
		// заявка не подтверждена — позицию не двигаем
		r.fail(symbol, "trade failed", err)
		return
	}

	entry := res.Price
	if entry <= 0 {
		entry = price
	}
	st.pos = models.Position{
		Symbol:     symbol,
		Side:       side,
		EntryPrice: &entry,
		LastSignal: sig.Side,
		Updated:    time.Now(),
	}
	r.persist(ctx, st.pos)

	_ = r.jrnl.Append(symbol, orderSide, map[string]interface{}{
		"qty": qty, "price": entry, "reason": sig.Reason,
	})
	logger.Info("[%s] OPEN %s %.6f @ %.4f", symbol, st.pos.Side, qty, entry)
	r.n.Sendf("✅ [%s] OPEN %s %.6f @ %.4f | %s", symbol, st.pos.Side, qty, entry, sig.Reason)
}

// closePosition — риск-выход: закрываем весь объём. Позиция становится
// Flat (и last_signal сбрасывается) только после подтверждения заявки.
func (r *Runner) closePosition(ctx context.Context, st *symbolState, price float64, reason string) {
	symbol := st.pos.Symbol
	entry := *st.pos.EntryPrice

	bal, err := r.api.Balance(ctx)
	if err != nil {
		r.fail(symbol, "balance failed", err)
		return
	}

	var qty float64
	var orderSide string
	if st.pos.Side == models.PositionLong {
		orderSide = "sell"
		qty = position.RoundQty(bal.Holding(models.Market(r.cfg.Market), symbol))
	} else {
		orderSide = "buy"
		qty = position.BuyQuantity(bal.Cash, r.cfg.CapitalFraction, price)
	}

	if position.TooSmall(qty, r.cfg.MinQty) {
		logger.Warn("[%s] %s exit qty too small: %.8f", symbol, reason, qty)
		_ = r.jrnl.Append(symbol, "qty_too_small", map[string]interface{}{"qty": qty, "min": r.cfg.MinQty, "exit": reason})
		return
	}

	if _, err := r.api.Trade(ctx, symbol, orderSide, qty); err != nil {
		r.fail(symbol, "exit trade failed", err)
		return
	}

	st.pos = models.NewFlatPosition(symbol)
	r.persist(ctx, st.pos)

	_ = r.jrnl.Append(symbol, reason, map[string]interface{}{
		"price": price, "entry": entry, "qty": qty,
	})
	logger.Info("[%s] %s exit @ %.4f (entry %.4f)", symbol, reason, price, entry)
	r.n.Sendf("⛔️ [%s] %s @ %.4f (entry %.4f)", symbol, reason, price, entry)
}

// persist пишет стейт сразу после подтверждённой сделки: окно между
// исполнением и записью — единственная невосстановимая несогласованность,
// держим его минимальным.
func (r *Runner) persist(ctx context.Context, pos models.Position) {
	if err := r.store.Save(ctx, pos); err != nil {
		logger.Error("[%s] state write failed after trade: %v", pos.Symbol, err)
		_ = r.jrnl.Append(pos.Symbol, "state_write_failed", map[string]interface{}{"detail": err.Error()})
	}
}
