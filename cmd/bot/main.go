package main

import (
	"context"
	"log"

	"traydner_bot/internal/modules/config"
	"traydner_bot/internal/modules/postgres"
	"traydner_bot/internal/runner"
	"traydner_bot/internal/state"
	"traydner_bot/pkg/logger"
	"traydner_bot/pkg/tracing"

	"go.uber.org/fx"
)

const serviceName = "traydner_bot"

func main() {
	if err := logger.Init(); err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()
	logger.SetServiceName(serviceName)
	tracing.SetServiceName(serviceName)

	app := fx.New(
		fx.Provide(
			func() context.Context {
				return context.Background()
			},
		),
		config.Module(),
		postgres.Module(),
		state.Module(),
		runner.Module(),
		fx.Invoke(func(lc fx.Lifecycle, cfg *config.Config) error {
			_, closer, err := tracing.InitTracer(tracing.Config{
				Host: cfg.Jaeger.Host,
				Port: cfg.Jaeger.Port,
			})
			if err != nil {
				return err
			}
			lc.Append(fx.Hook{
				OnStop: func(context.Context) error {
					closer()
					return nil
				},
			})
			return nil
		}),
	)
	app.Run()
}
