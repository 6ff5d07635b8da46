package search

import (
	"context"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Grid is the execution-context provider for the exhaustive engine: it
// launches independent workers over a contiguous candidate index space and
// waits for the whole grid to retire. Workers share no state and may run
// in any order; any cross-worker reduction must go through a MinCell.
type Grid struct {
	// Workers is the number of concurrent workers; defaults to
	// GOMAXPROCS when zero.
	Workers int
}

// Run partitions [0, span) into one contiguous stride per worker and
// invokes fn with each stride. It returns the first worker error, after
// all workers have stopped.
func (g Grid) Run(ctx context.Context, span uint64, fn func(ctx context.Context, lo, hi uint64) error) error {
	workers := g.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if uint64(workers) > span {
		workers = int(span)
	}
	if workers == 0 {
		return nil
	}

	stride := span / uint64(workers)
	eg, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		lo := uint64(w) * stride
		hi := lo + stride
		if w == workers-1 {
			hi = span
		}
		eg.Go(func() error {
			return fn(ctx, lo, hi)
		})
	}
	return eg.Wait()
}

// MinCell is a shared reduction cell holding the lowest value offered so
// far. Offer is the only write path; minimum is commutative and
// associative, so the final value is independent of worker interleaving.
type MinCell struct {
	v atomic.Uint64
}

// Reset initialises the cell to sentinel, which must be larger than any
// value that will be offered so that "nothing offered" stays observable.
func (c *MinCell) Reset(sentinel uint64) {
	c.v.Store(sentinel)
}

// Offer lowers the cell to val if val is smaller than the current value.
func (c *MinCell) Offer(val uint64) {
	for {
		cur := c.v.Load()
		if val >= cur {
			return
		}
		if c.v.CompareAndSwap(cur, val) {
			return
		}
	}
}

// Load returns the current minimum, or the sentinel if nothing was offered.
func (c *MinCell) Load() uint64 {
	return c.v.Load()
}
