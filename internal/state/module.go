package state

import (
	"context"
	"traydner_bot/internal/modules/config"
	"traydner_bot/pkg/db"

	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module("state",
		fx.Provide(
			func(ctx context.Context, cfg *config.Config, txm *db.PgTxManager) (Store, error) {
				if txm != nil {
					return NewPgStore(ctx, txm)
				}
				return NewFileStore(cfg.StatePath), nil
			},
		),
	)
}
