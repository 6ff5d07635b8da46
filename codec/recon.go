package codec

import (
	"context"
	"fmt"

	"github.com/zhengshuai-xiao/SCCodec/internal"
)

var logger = internal.GetLogger("codec")

// Solver reconstructs one block from its digest record. Implementations
// return search.ErrNoCandidate when the record has no preimage inside
// their candidate space.
type Solver interface {
	SolveBlock(ctx context.Context, rec DigestRecord, blockSize int) ([]byte, error)
}

// BatchSolver is an optional fast path for engines that sweep the
// candidate space for many blocks in a single launch. The result slice is
// index-aligned with recs.
type BatchSolver interface {
	SolveBlocks(ctx context.Context, recs []DigestRecord, blockSize int) ([][]byte, error)
}

// MemoStore caches solved blocks keyed by (blockSize, record). Stores are
// best effort: a miss only costs a search, and only fully reduced winning
// candidates may be saved, so a hit is always the block the engine would
// have produced.
type MemoStore interface {
	Lookup(ctx context.Context, blockSize int, rec DigestRecord) ([]byte, bool)
	Save(ctx context.Context, blockSize int, rec DigestRecord, block []byte)
}

// Reconstruct solves every record of s in stream order, concatenates the
// winning candidates, and strips the trailing zero padding added by
// Encode. The first unsolved block fails the whole payload: no partial or
// best-guess output is ever returned.
//
// store may be nil. When solver also implements BatchSolver, all records
// missing from the store are handed over in one batch.
func Reconstruct(ctx context.Context, s *DigestStream, solver Solver, store MemoStore) ([]byte, error) {
	blocks := make([][]byte, len(s.Records))

	var missing []int
	for i, rec := range s.Records {
		if store != nil {
			if block, ok := store.Lookup(ctx, s.BlockSize, rec); ok {
				blocks[i] = block
				continue
			}
		}
		missing = append(missing, i)
	}
	if store != nil && len(missing) < len(s.Records) {
		logger.Debugf("memo store resolved %d of %d blocks", len(s.Records)-len(missing), len(s.Records))
	}

	if batch, ok := solver.(BatchSolver); ok && len(missing) > 0 {
		recs := make([]DigestRecord, len(missing))
		for j, i := range missing {
			recs[j] = s.Records[i]
		}
		solved, err := batch.SolveBlocks(ctx, recs, s.BlockSize)
		if err != nil {
			return nil, err
		}
		for j, i := range missing {
			blocks[i] = solved[j]
		}
	} else {
		for _, i := range missing {
			block, err := solver.SolveBlock(ctx, s.Records[i], s.BlockSize)
			if err != nil {
				return nil, fmt.Errorf("block %d: %w", i, err)
			}
			blocks[i] = block
		}
	}
	if store != nil {
		for _, i := range missing {
			store.Save(ctx, s.BlockSize, s.Records[i], blocks[i])
		}
	}

	payload := make([]byte, 0, len(s.Records)*s.BlockSize)
	for _, block := range blocks {
		payload = append(payload, block...)
	}
	return StripPadding(payload), nil
}
