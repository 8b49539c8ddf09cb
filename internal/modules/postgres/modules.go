package postgres

import (
	"context"
	"fmt"
	"traydner_bot/internal/modules/config"
	"traydner_bot/pkg/db"

	"go.uber.org/fx"
)

// Module даёт менеджер транзакций, когда настроен db_dsn;
// без DSN возвращает nil — стейт тогда живёт в файле.
func Module() fx.Option {
	return fx.Module("postgres",
		fx.Provide(
			func(ctx context.Context, cfg *config.Config) (*db.PgTxManager, error) {
				if cfg.DB == "" {
					return nil, nil
				}
				pool, err := db.NewPool(ctx, db.PoolConfig{
					DSN: cfg.DB,
				})
				if err != nil {
					return nil, fmt.Errorf("failed to create pool: %w", err)
				}

				if err = pool.Ping(ctx); err != nil {
					return nil, err
				}

				return db.NewPgTxManager(pool), nil
			},
		),
	)
}
