package search

import (
	"context"
	"fmt"
	"math"

	"github.com/zhengshuai-xiao/SCCodec/codec"
)

// Bounded is the sequential engine: it enumerates alphabet^N in
// lexicographic order and returns the first candidate matching the target
// record. Worst case is |alphabet|^N digest evaluations, so it is only
// viable for small block sizes or small alphabets (95^2 for two printable
// bytes is cheap; 95^4 is not).
type Bounded struct {
	alphabet Alphabet
}

func NewBounded(alphabet Alphabet) (*Bounded, error) {
	if len(alphabet) == 0 {
		return nil, fmt.Errorf("empty alphabet")
	}
	return &Bounded{alphabet: alphabet}, nil
}

// SolveBlock enumerates candidates until one digests to rec. It checks ctx
// between evaluation strides, so callers can impose timeouts or abort a
// runaway search; an aborted search reports ErrCancelled.
func (b *Bounded) SolveBlock(ctx context.Context, rec codec.DigestRecord, blockSize int) ([]byte, error) {
	if blockSize < 1 {
		return nil, fmt.Errorf("block size %d: %w", blockSize, ErrUnsupportedBlockSize)
	}
	if cost := math.Pow(float64(len(b.alphabet)), float64(blockSize)); cost > 1e9 {
		logger.Warnf("bounded search space %.3g candidates (|alphabet|=%d, N=%d), this may take a very long time",
			cost, len(b.alphabet), blockSize)
	}

	// odometer over alphabet indices, most significant position slowest
	digits := make([]int, blockSize)
	candidate := make([]byte, blockSize)
	for i := range candidate {
		candidate[i] = b.alphabet[0]
	}

	evaluated := 0
	for {
		if rec.Matches(candidate) {
			out := make([]byte, blockSize)
			copy(out, candidate)
			return out, nil
		}

		evaluated++
		if evaluated%cancelStride == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrCancelled, err)
			}
		}

		// advance the least significant position, carrying left
		pos := blockSize - 1
		for pos >= 0 {
			digits[pos]++
			if digits[pos] < len(b.alphabet) {
				candidate[pos] = b.alphabet[digits[pos]]
				break
			}
			digits[pos] = 0
			candidate[pos] = b.alphabet[0]
			pos--
		}
		if pos < 0 {
			// odometer wrapped: space exhausted
			return nil, ErrNoCandidate
		}
	}
}
