package runner

import (
	"context"

	"go.uber.org/fx"

	"traydner_bot/internal/journal"
	"traydner_bot/internal/modules/config"
	"traydner_bot/internal/notify"
	"traydner_bot/internal/strategy"
	"traydner_bot/internal/traydner"
	"traydner_bot/pkg/logger"
)

func Module() fx.Option {
	return fx.Module("runner",
		fx.Provide(
			newAPI,
			newStrategy,
			newJournal,
			newNotifier,
			New,
		),
		fx.Invoke(func(lc fx.Lifecycle, r *Runner, jrnl *journal.Journal, ctx context.Context) {
			lc.Append(fx.Hook{
				OnStart: func(context.Context) error {
					return r.Start(ctx)
				},
				OnStop: func(context.Context) error {
					r.Stop()
					return jrnl.Close()
				},
			})
		}),
	)
}

func newAPI(cfg *config.Config) MarketAPI {
	return traydner.NewClient(traydner.Config{
		BaseURL: cfg.API.BaseURL,
		APIKey:  cfg.API.Key,
		Timeout: cfg.API.Timeout,
	})
}

func newStrategy(cfg *config.Config) (strategy.Engine, error) {
	return strategy.New(strategy.Settings{
		Strategy:          cfg.Strategy,
		EMAFast:           cfg.EMAFast,
		EMASlow:           cfg.EMASlow,
		RSIPeriod:         cfg.RSIPeriod,
		RSIOverbought:     cfg.RSIOverbought,
		RSIOversold:       cfg.RSIOversold,
		TrendContinuation: cfg.TrendContinuation,
		SMAShort:          cfg.SMAShort,
		SMALong:           cfg.SMALong,
		BBWindow:          cfg.BBWindow,
		BBK:               cfg.BBK,
		ATRWindow:         cfg.ATRWindow,
	})
}

func newJournal(cfg *config.Config) (*journal.Journal, error) {
	return journal.Open(cfg.JournalPath)
}

func newNotifier(cfg *config.Config) notify.Notifier {
	if cfg.Telegram.Token == "" || cfg.Telegram.ChatID == 0 {
		return notify.Nop{}
	}
	tg, err := notify.NewTelegram(cfg.Telegram.Token, cfg.Telegram.ChatID)
	if err != nil {
		logger.Warn("telegram notifier disabled: %v", err)
		return notify.Nop{}
	}
	return tg
}
