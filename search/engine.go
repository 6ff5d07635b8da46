// Package search reconstructs blocks from digest records by enumerating
// candidate byte sequences until one digests to the target. Checksums are
// many-to-one, so the engines recover the lowest-valued colliding block
// under a fixed enumeration order, not necessarily the original bytes.
package search

import (
	"errors"
	"fmt"

	"github.com/zhengshuai-xiao/SCCodec/internal"
)

var logger = internal.GetLogger("search")

var (
	// ErrNoCandidate means the engine exhausted its candidate space
	// without a match. Expected when the source data lies outside a
	// restricted alphabet, e.g. zero padding in a printable-only search.
	ErrNoCandidate = errors.New("no candidate matches the target digest")

	// ErrUnsupportedBlockSize means the requested block size is outside
	// the engine's structural limit.
	ErrUnsupportedBlockSize = errors.New("unsupported block size")

	// ErrCancelled means the caller aborted the search before the
	// candidate space was exhausted.
	ErrCancelled = errors.New("search cancelled")
)

// cancelStride is how many candidates an engine evaluates between
// cooperative cancellation checks.
const cancelStride = 4096

// Alphabet is the ordered set of byte values a bounded search enumerates.
// The order is the enumeration order: candidates are generated as the
// Cartesian product alphabet^N with the most significant position varying
// slowest, so a sorted alphabet yields lexicographically sorted candidates.
type Alphabet []byte

// PrintableAlphabet covers printable ASCII, byte values 32-126 inclusive.
func PrintableAlphabet() Alphabet {
	a := make(Alphabet, 0, 95)
	for c := byte(32); c <= 126; c++ {
		a = append(a, c)
	}
	return a
}

// FullAlphabet covers every byte value.
func FullAlphabet() Alphabet {
	a := make(Alphabet, 256)
	for i := range a {
		a[i] = byte(i)
	}
	return a
}

// RangeAlphabet covers the inclusive byte range [lo, hi].
func RangeAlphabet(lo, hi byte) (Alphabet, error) {
	if lo > hi {
		return nil, fmt.Errorf("invalid alphabet range %d-%d", lo, hi)
	}
	a := make(Alphabet, 0, int(hi)-int(lo)+1)
	for c := lo; ; c++ {
		a = append(a, c)
		if c == hi {
			break
		}
	}
	return a, nil
}
