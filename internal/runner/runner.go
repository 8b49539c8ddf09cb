package runner

import (
	"context"
	"sync"
	"time"

	"github.com/opentracing/opentracing-go"

	"traydner_bot/internal/journal"
	"traydner_bot/internal/models"
	"traydner_bot/internal/modules/config"
	"traydner_bot/internal/notify"
	"traydner_bot/internal/series"
	"traydner_bot/internal/state"
	"traydner_bot/internal/strategy"
	"traydner_bot/pkg/logger"
)

// MarketAPI — внешний торговый API; см. internal/traydner.
type MarketAPI interface {
	Price(ctx context.Context, symbol string) (float64, error)
	History(ctx context.Context, symbol, resolution string, limit int) ([]models.Candle, error)
	Balance(ctx context.Context) (models.Balance, error)
	Trade(ctx context.Context, symbol, side string, quantity float64) (models.TradeResult, error)
	MarketStatus(ctx context.Context, symbol string) (bool, error)
}

// symbolState — всё изменяемое по одному символу. Серия и позиция
// принадлежат задаче символа; мьютекс нужен только ради health-лога,
// между собой задачи разных символов ничего не делят.
type symbolState struct {
	mu     sync.Mutex
	series *series.Series
	pos    models.Position
}

type Runner struct {
	ctx    context.Context
	cancel context.CancelFunc

	cfg   *config.Config
	api   MarketAPI
	stg   strategy.Engine
	store state.Store
	jrnl  *journal.Journal
	n     notify.Notifier

	symbols map[string]*symbolState
}

func New(
	cfg *config.Config,
	api MarketAPI,
	stg strategy.Engine,
	store state.Store,
	jrnl *journal.Journal,
	n notify.Notifier,
) *Runner {
	return &Runner{
		cfg:     cfg,
		api:     api,
		stg:     stg,
		store:   store,
		jrnl:    jrnl,
		n:       n,
		symbols: make(map[string]*symbolState),
	}
}

// Start восстанавливает позиции из стора и запускает цикл опроса.
// Карта символов после этого только читается, мутируют её содержимое.
func (r *Runner) Start(parent context.Context) error {
	r.ctx, r.cancel = context.WithCancel(parent)

	restored, err := r.store.Load(r.ctx)
	if err != nil {
		return err
	}
	for _, sym := range r.cfg.Symbols {
		pos, ok := restored[sym]
		if !ok {
			pos = models.NewFlatPosition(sym)
		}
		if pos.Open() {
			logger.Info("[%s] restored %s position, entry=%.4f", sym, pos.Side, *pos.EntryPrice)
		}
		r.symbols[sym] = &symbolState{
			series: series.New(sym, r.cfg.Resolution, r.cfg.MaxSeries),
			pos:    pos,
		}
	}

	_ = r.jrnl.Append("system", "start", map[string]interface{}{
		"symbols":    r.cfg.Symbols,
		"resolution": r.cfg.Resolution,
		"strategy":   r.stg.Name(),
	})
	logger.Info("runner started: %d symbols, strategy=%s, poll=%s",
		len(r.symbols), r.stg.Name(), r.cfg.PollInterval)
	r.n.Sendf("🤖 Bot started: %d symbols, strategy=%s", len(r.symbols), r.stg.Name())

	go r.loop(r.ctx)
	go r.healthLoop(r.ctx)
	return nil
}

// Stop мягко гасит раннер.
func (r *Runner) Stop() {
	if r.cancel != nil {
		r.cancel()
	}
}

// loop: батч по всем символам, барьер, сон. Батчи не перекрываются,
// один символ никогда не оценивается конкурентно с самим собой.
func (r *Runner) loop(ctx context.Context) {
	for {
		r.runBatch(ctx)
		select {
		case <-ctx.Done():
			return
		case <-time.After(r.cfg.PollInterval):
		}
	}
}

// runBatch раздаёт символы пулу воркеров фиксированного размера
// и ждёт завершения всех задач батча.
func (r *Runner) runBatch(ctx context.Context) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "poll_cycle")
	defer span.Finish()

	jobs := make(chan string)
	var wg sync.WaitGroup
	wg.Add(len(r.symbols))

	workers := r.cfg.Workers
	if workers > len(r.symbols) {
		workers = len(r.symbols)
	}
	for i := 0; i < workers; i++ {
		go func() {
			for sym := range jobs {
				r.evalSymbol(ctx, sym)
				wg.Done()
			}
		}()
	}

	for sym := range r.symbols {
		select {
		case <-ctx.Done():
			wg.Done()
			continue
		case jobs <- sym:
		}
	}
	close(jobs)
	wg.Wait()
}

func (r *Runner) healthLoop(ctx context.Context) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			open := 0
			for _, st := range r.symbols {
				st.mu.Lock()
				if st.pos.Open() {
					open++
				}
				st.mu.Unlock()
			}
			logger.Info("health: symbols=%d openPositions=%d", len(r.symbols), open)
		}
	}
}
