package state

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"traydner_bot/internal/models"
	"traydner_bot/pkg/db"
)

const createStateTable = `
CREATE TABLE IF NOT EXISTS bot_positions (
	symbol      TEXT PRIMARY KEY,
	position    INT NOT NULL,
	entry_price DOUBLE PRECISION,
	last_signal TEXT,
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
)`

const upsertPosition = `
INSERT INTO bot_positions (symbol, position, entry_price, last_signal, updated_at)
VALUES ($1, $2, $3, $4, now())
ON CONFLICT (symbol) DO UPDATE
SET position = EXCLUDED.position,
    entry_price = EXCLUDED.entry_price,
    last_signal = EXCLUDED.last_signal,
    updated_at = now()`

const selectPositions = `
SELECT symbol, position, entry_price, last_signal FROM bot_positions`

// PgStore — стейт в Postgres, по строке на символ.
type PgStore struct {
	db db.TxManager
}

func NewPgStore(ctx context.Context, txm db.TxManager) (*PgStore, error) {
	if _, err := txm.Conn().Exec(ctx, createStateTable); err != nil {
		return nil, fmt.Errorf("PgStore: ensure schema: %w", err)
	}
	return &PgStore{db: txm}, nil
}

func (s *PgStore) Load(ctx context.Context) (out map[string]models.Position, err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("PgStore.Load: %w", err)
		}
	}()

	rows, err := s.db.Conn().Query(ctx, selectPositions)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out = make(map[string]models.Position)
	for rows.Next() {
		var (
			symbol string
			r      record
		)
		if err = rows.Scan(&symbol, &r.Position, &r.EntryPrice, &r.LastSignal); err != nil {
			return nil, err
		}
		out[symbol] = fromRecord(symbol, r)
	}
	return out, rows.Err()
}

func (s *PgStore) Save(ctx context.Context, pos models.Position) (err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("PgStore.Save: %w", err)
		}
	}()

	r := toRecord(pos)
	return s.db.Run(ctx, func(ctxTx context.Context, tx pgx.Tx) error {
		_, err := tx.Exec(ctxTx, upsertPosition, pos.Symbol, r.Position, r.EntryPrice, r.LastSignal)
		return err
	})
}
