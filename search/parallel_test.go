package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zhengshuai-xiao/SCCodec/codec"
	"github.com/zhengshuai-xiao/SCCodec/internal"
)

var (
	_ codec.Solver      = (*Parallel)(nil)
	_ codec.BatchSolver = (*Parallel)(nil)
)

func TestParallelSolveBlocks(t *testing.T) {
	p := NewParallel(8)

	originals := [][]byte{
		[]byte("AB"),
		[]byte("zz"),
		{0x00, 0x00},
		{0xFF, 0xFE},
	}
	recs := make([]codec.DigestRecord, len(originals))
	for i, b := range originals {
		recs[i] = codec.Digest(b)
	}

	got, err := p.SolveBlocks(context.Background(), recs, 2)
	assert.NoError(t, err)
	assert.Len(t, got, len(recs))
	for i, block := range got {
		assert.True(t, recs[i].Matches(block), "block %d must digest to its target", i)
		assert.LessOrEqual(t, internal.BlockToIndexBigEndian(block), internal.BlockToIndexBigEndian(originals[i]),
			"winner is the lowest matching candidate, never above the original")
	}

	// candidate index 0 digests to its own record, so the all-zero block
	// must come back exactly
	assert.Equal(t, []byte{0x00, 0x00}, got[2])
}

func TestParallelTieBreakDeterminism(t *testing.T) {
	recs := []codec.DigestRecord{
		codec.Digest([]byte("Go")),
		codec.Digest([]byte{0x01, 0x80}),
	}

	first, err := NewParallel(7).SolveBlocks(context.Background(), recs, 2)
	assert.NoError(t, err)
	second, err := NewParallel(3).SolveBlocks(context.Background(), recs, 2)
	assert.NoError(t, err)

	assert.Equal(t, first, second, "winning candidates are scheduling independent")
}

func TestParallelSingleByteBlocks(t *testing.T) {
	p := NewParallel(0) // default worker count

	rec := codec.Digest([]byte{0x41})
	got, err := p.SolveBlock(context.Background(), rec, 1)
	assert.NoError(t, err)
	assert.True(t, rec.Matches(got))
}

func TestParallelNoCandidate(t *testing.T) {
	// sum16 of one byte is at most 0xFF
	unreachable := codec.DigestRecord{CRC: 0x0000, Sum: 0x0100}

	_, err := NewParallel(4).SolveBlocks(context.Background(), []codec.DigestRecord{unreachable}, 1)
	assert.ErrorIs(t, err, ErrNoCandidate)
}

func TestParallelUnsupportedBlockSize(t *testing.T) {
	p := NewParallel(4)
	for _, n := range []int{0, -1, 5, 8} {
		_, err := p.SolveBlocks(context.Background(), []codec.DigestRecord{{}}, n)
		assert.ErrorIs(t, err, ErrUnsupportedBlockSize, "N=%d", n)
	}
}

func TestParallelEmptyBatch(t *testing.T) {
	got, err := NewParallel(4).SolveBlocks(context.Background(), nil, 2)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestParallelCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// 256^3 candidates; cancelled workers must bail out at a stride
	// boundary instead of sweeping the space
	rec := codec.DigestRecord{CRC: 0x1234, Sum: 0x5678}
	_, err := NewParallel(4).SolveBlocks(ctx, []codec.DigestRecord{rec}, 3)
	assert.ErrorIs(t, err, ErrCancelled)
}
