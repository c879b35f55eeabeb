package loadout

import (
	"log/slog"
	"math/big"
	"sync"
	"sync/atomic"
	"time"

	"github.com/KirkDiggler/rpg-gearset/internal/optimizer"
	"github.com/KirkDiggler/rpg-gearset/internal/pkg/clock"
)

// progressReporter logs search progress at most once per interval
type progressReporter struct {
	runID    string
	clock    clock.Clock
	interval time.Duration
	logger   *slog.Logger

	done atomic.Uint64

	mu      sync.Mutex
	total   *big.Int
	started time.Time
	last    time.Time
}

var _ optimizer.Reporter = (*progressReporter)(nil)

func newProgressReporter(runID string, c clock.Clock, interval time.Duration, logger *slog.Logger) *progressReporter {
	return &progressReporter{
		runID:    runID,
		clock:    c,
		interval: interval,
		logger:   logger,
	}
}

func (p *progressReporter) Start(total *big.Int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.total = new(big.Int).Set(total)
	p.started = p.clock.Now()
	p.last = p.started
}

func (p *progressReporter) Advance(n uint64) {
	done := p.done.Add(n)
	now := p.clock.Now()

	p.mu.Lock()
	if now.Sub(p.last) < p.interval {
		p.mu.Unlock()
		return
	}
	p.last = now
	total := p.total
	elapsed := now.Sub(p.started)
	p.mu.Unlock()

	p.logger.Info("item set search progress",
		"run_id", p.runID,
		"evaluated", done,
		"total", total.String(),
		"percent", percent(done, total),
		"elapsed", elapsed)
}

func (p *progressReporter) Finish() {
	p.mu.Lock()
	elapsed := p.clock.Now().Sub(p.started)
	p.mu.Unlock()

	p.logger.Debug("item set search stopped",
		"run_id", p.runID,
		"evaluated", p.done.Load(),
		"elapsed", elapsed)
}

// percent returns done/total as a percentage rounded to one decimal
func percent(done uint64, total *big.Int) float64 {
	if total == nil || total.Sign() == 0 {
		return 0
	}
	ratio := new(big.Rat).SetFrac(new(big.Int).SetUint64(done), total)
	f, _ := ratio.Float64()
	return float64(int64(f*1000+0.5)) / 10
}
