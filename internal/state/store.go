// Package state — durable-снапшот позиций по символам.
// Загружается один раз на старте, перезаписывается после каждого перехода.
package state

import (
	"context"

	"traydner_bot/internal/models"
)

type Store interface {
	// Load возвращает все сохранённые позиции; отсутствие стейта — не ошибка.
	Load(ctx context.Context) (map[string]models.Position, error)
	// Save фиксирует позицию одного символа сразу после перехода.
	Save(ctx context.Context, pos models.Position) error
}

// record — формат одной записи стейта: position -1|0|1,
// entry_price и last_signal допускают null.
type record struct {
	Position   int      `json:"position"`
	EntryPrice *float64 `json:"entry_price"`
	LastSignal *string  `json:"last_signal"`
}

func toRecord(p models.Position) record {
	r := record{Position: int(p.Side), EntryPrice: p.EntryPrice}
	if p.LastSignal != models.SideNone {
		s := string(p.LastSignal)
		r.LastSignal = &s
	}
	return r
}

func fromRecord(symbol string, r record) models.Position {
	p := models.Position{
		Symbol:     symbol,
		Side:       models.PositionSide(r.Position),
		EntryPrice: r.EntryPrice,
	}
	if r.LastSignal != nil {
		p.LastSignal = models.Side(*r.LastSignal)
	}
	// битая запись не должна нарушать инвариант entry_price <-> side
	if p.Side == models.PositionFlat {
		p.EntryPrice = nil
	}
	return p
}
