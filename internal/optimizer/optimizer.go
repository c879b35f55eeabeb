// Package optimizer searches every combination of a character's eligible
// items for the highest-valued item set.
package optimizer

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/rpg-gearset/internal/character"
	"github.com/KirkDiggler/rpg-gearset/internal/entities/gear"
	"github.com/KirkDiggler/rpg-gearset/internal/errors"
)

const (
	// MaxWorkers caps Config.Workers
	MaxWorkers = 256

	// progressBatch is how many item sets are evaluated between progress
	// reports and cancellation checks
	progressBatch = 1 << 14
)

// FindBestItemSet evaluates every item set the character can wear and
// returns the one with the highest value. On a tie the first set in
// enumeration order wins.
func FindBestItemSet(ch *character.Character) (*ItemSet, error) {
	return bestOf(context.Background(), NewEnumerator(ch.SlotPools()), nopReporter{})
}

// Config holds the settings for an Optimizer
type Config struct {
	// Workers splits the first slot's pool across goroutines. Zero or one
	// runs the search on the calling goroutine.
	Workers int
	// Reporter is optional
	Reporter Reporter
}

// Validate ensures the config is usable
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRange("Workers", c.Workers, 0, MaxWorkers, vb)
	return vb.Build()
}

// Optimizer is the configurable form of FindBestItemSet. Its result is
// identical to FindBestItemSet regardless of the worker count.
type Optimizer struct {
	workers  int
	reporter Reporter
}

// New creates an Optimizer
func New(cfg *Config) (*Optimizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &Optimizer{
		workers:  max(cfg.Workers, 1),
		reporter: cfg.Reporter,
	}
	if o.reporter == nil {
		o.reporter = nopReporter{}
	}
	return o, nil
}

// Run searches the character's item sets. Cancelling ctx stops the search
// with a CANCELED or DEADLINE_EXCEEDED error.
func (o *Optimizer) Run(ctx context.Context, ch *character.Character) (*ItemSet, error) {
	return o.search(ctx, ch.SlotPools())
}

func (o *Optimizer) search(ctx context.Context, pools [][]*gear.Item) (*ItemSet, error) {
	o.reporter.Start(Combinations(pools))
	defer o.reporter.Finish()

	chunks := partition(pools, o.workers)
	if len(chunks) <= 1 {
		return bestOf(ctx, NewEnumerator(pools), o.reporter)
	}

	type partial struct {
		best  ItemSet
		found bool
	}
	partials := make([]partial, len(chunks))

	g, gctx := errgroup.WithContext(ctx)
	for i, chunk := range chunks {
		g.Go(func() error {
			best, found, err := fold(gctx, NewEnumerator(chunk), o.reporter)
			if err != nil {
				return err
			}
			partials[i] = partial{best: best, found: found}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Chunks cover consecutive ranges of the enumeration, so merging them in
	// order with a strict comparison keeps the first-seen tie rule.
	var (
		best  ItemSet
		found bool
	)
	for _, p := range partials {
		if !p.found {
			continue
		}
		if !found || p.best.value > best.value {
			best = p.best
			found = true
		}
	}
	if !found {
		return nil, NoCombinations()
	}
	return &best, nil
}

// partition splits the first pool into at most n contiguous, non-empty
// ranges. Each returned pool list shares every other pool with the input.
func partition(pools [][]*gear.Item, n int) [][][]*gear.Item {
	if len(pools) == 0 || n <= 1 || len(pools[0]) <= 1 {
		return [][][]*gear.Item{pools}
	}

	first := pools[0]
	n = min(n, len(first))
	chunks := make([][][]*gear.Item, 0, n)
	for k := range n {
		lo := k * len(first) / n
		hi := (k + 1) * len(first) / n
		chunk := make([][]*gear.Item, len(pools))
		copy(chunk, pools)
		chunk[0] = first[lo:hi:hi]
		chunks = append(chunks, chunk)
	}
	return chunks
}

func bestOf(ctx context.Context, enum *Enumerator, reporter Reporter) (*ItemSet, error) {
	best, found, err := fold(ctx, enum, reporter)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, NoCombinations()
	}
	return &best, nil
}

// fold keeps the highest-valued item set, replacing it only on a strictly
// greater value. Cancellation is observed before the first set and between
// batches; a fully enumerated search always returns its result.
func fold(ctx context.Context, enum *Enumerator, reporter Reporter) (ItemSet, bool, error) {
	var (
		best    ItemSet
		found   bool
		pending uint64
	)

	if err := ctx.Err(); err != nil {
		return ItemSet{}, false, errors.Wrap(err, "item set search interrupted")
	}

	for {
		tuple, ok := enum.Next()
		if !ok {
			break
		}

		set, err := NewItemSet(tuple)
		if err != nil {
			return ItemSet{}, false, err
		}
		if !found || set.value > best.value {
			best = set
			found = true
		}

		pending++
		if pending == progressBatch {
			reporter.Advance(pending)
			pending = 0
			if err := ctx.Err(); err != nil {
				return ItemSet{}, false, errors.Wrap(err, "item set search interrupted")
			}
		}
	}

	if pending > 0 {
		reporter.Advance(pending)
	}
	return best, found, nil
}
