package optimizer

import (
	"math/big"

	"github.com/KirkDiggler/rpg-gearset/internal/entities/gear"
)

// Enumerator walks the cartesian product of a list of pools like an
// odometer: the first pool varies slowest and the last pool fastest, so
// tuples come out in lexicographic order of pool indices. Only one tuple
// is held at a time.
type Enumerator struct {
	pools   [][]*gear.Item
	indices []int
	tuple   []*gear.Item
	started bool
	done    bool
}

// NewEnumerator creates an enumerator over pools. If any pool is empty, or
// there are no pools at all, the product is empty.
func NewEnumerator(pools [][]*gear.Item) *Enumerator {
	e := &Enumerator{
		pools:   pools,
		indices: make([]int, len(pools)),
		tuple:   make([]*gear.Item, len(pools)),
	}
	e.Reset()
	return e
}

// Reset rewinds the enumerator to the first tuple
func (e *Enumerator) Reset() {
	clear(e.indices)
	e.started = false
	e.done = len(e.pools) == 0
	for _, pool := range e.pools {
		if len(pool) == 0 {
			e.done = true
		}
	}
}

// Next returns the next tuple, one item per pool. The returned slice is
// reused by the following call; copy it to keep it.
func (e *Enumerator) Next() ([]*gear.Item, bool) {
	if e.done {
		return nil, false
	}

	if !e.started {
		e.started = true
		for i, pool := range e.pools {
			e.tuple[i] = pool[0]
		}
		return e.tuple, true
	}

	for i := len(e.indices) - 1; i >= 0; i-- {
		e.indices[i]++
		if e.indices[i] < len(e.pools[i]) {
			e.tuple[i] = e.pools[i][e.indices[i]]
			return e.tuple, true
		}
		e.indices[i] = 0
		e.tuple[i] = e.pools[i][0]
	}

	e.done = true
	return nil, false
}

// Total returns the number of tuples the enumerator yields from the start
func (e *Enumerator) Total() *big.Int {
	return Combinations(e.pools)
}

// Combinations returns the product of the pool sizes, zero when there are
// no pools
func Combinations(pools [][]*gear.Item) *big.Int {
	if len(pools) == 0 {
		return new(big.Int)
	}
	total := big.NewInt(1)
	size := new(big.Int)
	for _, pool := range pools {
		total.Mul(total, size.SetInt64(int64(len(pool))))
	}
	return total
}
