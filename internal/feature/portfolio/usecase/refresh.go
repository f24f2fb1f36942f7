package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"crypto_dashboard/internal/feature/portfolio/domain/entity"
)

// DefaultRefreshInterval is how often the dashboard data is re-fetched.
const DefaultRefreshInterval = 10 * time.Minute

// RefreshOption configures a RefreshController.
type RefreshOption func(*RefreshController)

// WithInterval sets the periodic refresh interval. Non-positive values are ignored.
func WithInterval(d time.Duration) RefreshOption {
	return func(c *RefreshController) {
		if d > 0 {
			c.interval = d
		}
	}
}

// WithPerformanceSimulation enables the simulated performance series (seeded history plus one point per tick).
func WithPerformanceSimulation(enabled bool) RefreshOption {
	return func(c *RefreshController) {
		c.simulate = enabled
	}
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) RefreshOption {
	return func(c *RefreshController) {
		c.now = now
	}
}

// cycleResult is everything a successful cycle commits.
type cycleResult struct {
	coins        []entity.Coin
	cashBalance  float64
	transactions []entity.Transaction
}

// RefreshController runs refresh cycles (fetch, transform, commit) and owns the dashboard state.
// At most one cycle runs at a time; a commit replaces all view entities at once.
type RefreshController struct {
	api         PortfolioAPI
	transformer *Transformer
	series      *PerformanceSeries
	interval    time.Duration
	simulate    bool
	now         func() time.Time

	busy atomic.Bool

	mu           sync.RWMutex
	state        entity.RefreshState
	lastErr      string
	coins        []entity.Coin
	cashBalance  float64
	transactions []entity.Transaction
	refreshedAt  time.Time

	runMu  sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewRefreshController creates a controller in the Idle state.
func NewRefreshController(api PortfolioAPI, transformer *Transformer, series *PerformanceSeries, opts ...RefreshOption) *RefreshController {
	c := &RefreshController{
		api:         api,
		transformer: transformer,
		series:      series,
		interval:    DefaultRefreshInterval,
		now:         time.Now,
		state:       entity.StateIdle,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Refresh runs one cycle. The three fetches run concurrently and the cycle commits only
// when all of them succeed and every record transforms cleanly; otherwise the previous
// data is kept and the controller moves to Failed.
// It returns ErrRefreshInProgress without side effects when another cycle is running.
func (c *RefreshController) Refresh(ctx context.Context) error {
	if !c.busy.CompareAndSwap(false, true) {
		return ErrRefreshInProgress
	}
	defer c.busy.Store(false)

	log := slog.With("cycle_id", uuid.NewString())
	started := time.Now()
	c.setLoading()
	log.Debug("refresh cycle started")

	res, err := c.runCycle(ctx)
	if err != nil {
		c.fail(err)
		log.Error("refresh cycle failed", "error", err, "duration_ms", time.Since(started).Milliseconds())
		return err
	}

	c.commit(res)
	log.Info("refresh cycle completed",
		"coins", len(res.coins),
		"transactions", len(res.transactions),
		"duration_ms", time.Since(started).Milliseconds(),
	)
	return nil
}

func (c *RefreshController) runCycle(ctx context.Context) (cycleResult, error) {
	var (
		portfolio []entity.PortfolioRecord
		holdings  []entity.HoldingRecord
		txns      []entity.TransactionRecord
	)

	// errgroup returns the first failure and cancels the remaining calls.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		portfolio, err = c.api.FetchPortfolio(gctx)
		return err
	})
	g.Go(func() (err error) {
		holdings, err = c.api.FetchHoldings(gctx)
		return err
	})
	g.Go(func() (err error) {
		txns, err = c.api.FetchTransactions(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return cycleResult{}, err
	}

	cash, err := cashBalance(portfolio)
	if err != nil {
		return cycleResult{}, err
	}

	views, err := c.transformer.TransformTransactions(txns)
	if err != nil {
		return cycleResult{}, err
	}

	return cycleResult{
		coins:        c.transformer.TransformHoldings(ctx, holdings),
		cashBalance:  cash,
		transactions: views,
	}, nil
}

// cashBalance takes the balance of the first portfolio record; an empty list means zero.
func cashBalance(records []entity.PortfolioRecord) (float64, error) {
	if len(records) == 0 {
		return 0, nil
	}
	v := records[0].CashBalance
	if v < 0 {
		return 0, fmt.Errorf("%w: %v", ErrNegativeCashBalance, v)
	}
	return v, nil
}

func (c *RefreshController) setLoading() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = entity.StateLoading
	c.lastErr = ""
}

func (c *RefreshController) fail(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = entity.StateFailed
	c.lastErr = err.Error()
}

func (c *RefreshController) commit(res cycleResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.coins = res.coins
	c.cashBalance = res.cashBalance
	c.transactions = res.transactions
	c.refreshedAt = c.now()
	c.state = entity.StateReady
	c.lastErr = ""
}

// Snapshot returns a copy of the current dashboard state.
func (c *RefreshController) Snapshot() entity.Dashboard {
	c.mu.RLock()
	d := entity.Dashboard{
		Coins:           slices.Clone(c.coins),
		CashBalance:     c.cashBalance,
		Transactions:    slices.Clone(c.transactions),
		LastRefreshedAt: c.refreshedAt,
		IsLoading:       c.state == entity.StateLoading,
		Error:           c.lastErr,
		State:           c.state,
	}
	c.mu.RUnlock()

	d.Performance = c.series.Points()
	return d
}

// State returns the current lifecycle state.
func (c *RefreshController) State() entity.RefreshState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Status returns the state name, for health reporting.
func (c *RefreshController) Status() string {
	return c.State().String()
}

// Start runs a refresh immediately and then on every interval tick until Stop is called
// or ctx is cancelled. Calling Start on a running controller does nothing.
func (c *RefreshController) Start(ctx context.Context) {
	c.runMu.Lock()
	defer c.runMu.Unlock()

	if c.cancel != nil {
		return
	}
	if c.simulate {
		c.series.Seed(c.now())
	}

	ctx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.done = make(chan struct{})
	go c.loop(ctx, c.done)
}

// Stop cancels the periodic loop together with any cycle it has in flight and waits for it to exit.
func (c *RefreshController) Stop() {
	c.runMu.Lock()
	cancel, done := c.cancel, c.done
	c.cancel, c.done = nil, nil
	c.runMu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (c *RefreshController) loop(ctx context.Context, done chan<- struct{}) {
	defer close(done)

	c.trigger(ctx)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("refresh loop stopping")
			return
		case <-ticker.C:
			if c.simulate {
				p := c.series.Append(c.now())
				slog.Debug("performance point appended", "value", p.Value)
			}
			c.trigger(ctx)
		}
	}
}

func (c *RefreshController) trigger(ctx context.Context) {
	if err := c.Refresh(ctx); errors.Is(err, ErrRefreshInProgress) {
		slog.Debug("skipping tick, refresh already in progress")
	}
}
