// Copyright 2024 zhengshuai.xiao@outlook.com
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and

package search

import (
	"context"
	"fmt"

	"github.com/zhengshuai-xiao/SCCodec/codec"
	"github.com/zhengshuai-xiao/SCCodec/internal"
)

// MaxParallelBlockSize caps the exhaustive engine at 4-byte blocks: a
// worker holds all candidate bytes in fixed local storage and the
// per-block candidate count 256^N must stay within a launchable index
// width (256^4 is already 4.3 billion).
const MaxParallelBlockSize = 4

// Parallel is the exhaustive engine. It sweeps the entire byte-value
// space for every target record in a single grid launch: candidate index
// gid in [0, 256^N) decodes to the big-endian base-256 digits of gid, and
// each (gid, block) pair whose digest matches competes for the block's
// MinCell. The surviving value is the lowest matching gid, which makes the
// result reproducible regardless of how workers are scheduled.
type Parallel struct {
	grid Grid
}

func NewParallel(workers int) *Parallel {
	return &Parallel{grid: Grid{Workers: workers}}
}

// SolveBlocks reconstructs every record of recs in one sweep. All blocks
// share the single pass over the candidate space: a worker digests each
// candidate once and compares it against every target.
func (p *Parallel) SolveBlocks(ctx context.Context, recs []codec.DigestRecord, blockSize int) ([][]byte, error) {
	if blockSize < 1 || blockSize > MaxParallelBlockSize {
		return nil, fmt.Errorf("block size %d: %w", blockSize, ErrUnsupportedBlockSize)
	}
	if len(recs) == 0 {
		return nil, nil
	}

	span := uint64(1) << (8 * blockSize)
	sentinel := span
	cells := make([]MinCell, len(recs))
	for i := range cells {
		cells[i].Reset(sentinel)
	}

	logger.Debugf("launching grid: %d candidates x %d blocks (N=%d)", span, len(recs), blockSize)

	err := p.grid.Run(ctx, span, func(ctx context.Context, lo, hi uint64) error {
		candidate := make([]byte, blockSize)
		for gid := lo; gid < hi; gid++ {
			if gid%cancelStride == 0 && gid != lo {
				if err := ctx.Err(); err != nil {
					return fmt.Errorf("%w: %v", ErrCancelled, err)
				}
			}
			internal.IndexToBlockBigEndian(candidate, gid)
			got := codec.Digest(candidate)
			for b := range recs {
				if got == recs[b] {
					cells[b].Offer(gid)
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Architecturally a CRC16+sum16 pair nearly always outnumbers 256^N
	// for small N, but an unreachable record must still fail loudly.
	out := make([][]byte, len(recs))
	for i := range recs {
		gid := cells[i].Load()
		if gid == sentinel {
			return nil, fmt.Errorf("block %d (%s): %w", i, recs[i].TextString(), ErrNoCandidate)
		}
		block := make([]byte, blockSize)
		internal.IndexToBlockBigEndian(block, gid)
		out[i] = block
	}
	return out, nil
}

// SolveBlock reconstructs a single record; it is the Solver adapter over
// SolveBlocks.
func (p *Parallel) SolveBlock(ctx context.Context, rec codec.DigestRecord, blockSize int) ([]byte, error) {
	blocks, err := p.SolveBlocks(ctx, []codec.DigestRecord{rec}, blockSize)
	if err != nil {
		return nil, err
	}
	return blocks[0], nil
}
