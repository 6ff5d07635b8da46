package search

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGridCoversSpanExactly(t *testing.T) {
	testCases := []struct {
		name    string
		span    uint64
		workers int
	}{
		{"Even Split", 100, 4},
		{"Uneven Split", 100, 7},
		{"More Workers Than Span", 3, 16},
		{"Single Worker", 50, 1},
		{"Empty Span", 0, 4},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var mu sync.Mutex
			seen := make(map[uint64]int)

			err := Grid{Workers: tc.workers}.Run(context.Background(), tc.span,
				func(_ context.Context, lo, hi uint64) error {
					mu.Lock()
					defer mu.Unlock()
					for gid := lo; gid < hi; gid++ {
						seen[gid]++
					}
					return nil
				})
			assert.NoError(t, err)

			assert.Len(t, seen, int(tc.span))
			for gid, count := range seen {
				assert.Equal(t, 1, count, "gid %d visited more than once", gid)
			}
		})
	}
}

func TestGridPropagatesWorkerError(t *testing.T) {
	err := Grid{Workers: 4}.Run(context.Background(), 100,
		func(_ context.Context, lo, _ uint64) error {
			if lo == 0 {
				return ErrNoCandidate
			}
			return nil
		})
	assert.ErrorIs(t, err, ErrNoCandidate)
}

func TestMinCellReduction(t *testing.T) {
	var cell MinCell
	cell.Reset(1 << 16)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for v := uint64(w); v < 1024; v += 8 {
				cell.Offer(1023 - v)
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, uint64(0), cell.Load(), "lowest offered value wins regardless of interleaving")
}

func TestMinCellSentinelSurvives(t *testing.T) {
	var cell MinCell
	cell.Reset(256)
	assert.Equal(t, uint64(256), cell.Load())

	cell.Offer(300) // above sentinel, must not lower the cell
	assert.Equal(t, uint64(256), cell.Load())
}

func TestGridObservesContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int64
	err := Grid{Workers: 2}.Run(ctx, 10,
		func(ctx context.Context, _, _ uint64) error {
			calls.Add(1)
			return ctx.Err()
		})
	assert.Error(t, err)
	assert.LessOrEqual(t, calls.Load(), int64(2))
}
