package optimizer

import "math/big"

// Reporter receives progress of a search. Advance may be called from
// several goroutines at once.
type Reporter interface {
	// Start is called once with the number of item sets to evaluate
	Start(total *big.Int)
	// Advance reports that n more item sets were evaluated
	Advance(n uint64)
	// Finish is called once when the search ends, successfully or not
	Finish()
}

type nopReporter struct{}

func (nopReporter) Start(*big.Int) {}
func (nopReporter) Advance(uint64) {}
func (nopReporter) Finish()        {}
