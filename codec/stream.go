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

// Package codec digests fixed-size byte blocks into (CRC-16-CCITT, sum16)
// record pairs and reconstructs payloads from them. The digest is a
// many-to-one mapping: reconstruction recovers the lowest-valued colliding
// block, not necessarily the original bytes.
package codec

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

const (
	// recordSize is the wire size of one digest record: crc16 + sum16,
	// both big-endian.
	recordSize = 4

	// MaxBlockSize bounds the block-size header byte. Individual engines
	// impose tighter limits (the exhaustive engine caps at 4).
	MaxBlockSize = 255
)

// DigestRecord is the pair of checksums kept per block. For a fixed block
// size it may have zero, one, or many preimages; collisions are expected.
type DigestRecord struct {
	CRC uint16
	Sum uint16
}

// Digest computes the record for a block.
func Digest(block []byte) DigestRecord {
	return DigestRecord{CRC: CRC16CCITT(block), Sum: Sum16(block)}
}

// Matches reports whether block digests to r.
func (r DigestRecord) Matches(block []byte) bool {
	return Digest(block) == r
}

// DigestStream is the sole persisted artifact of the codec: the block size
// and one record per block, in payload order.
type DigestStream struct {
	BlockSize int
	Records   []DigestRecord
}

// FormatError reports a malformed digest stream. It is surfaced
// immediately and never retried.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return "digest stream format error: " + e.Reason
}

// Encode splits payload into consecutive blockSize-byte blocks, zero-pads
// the final block, and digests each one. The stream always holds
// ceil(len(payload)/blockSize) records.
func Encode(payload []byte, blockSize int) (*DigestStream, error) {
	if blockSize < 1 || blockSize > MaxBlockSize {
		return nil, &FormatError{Reason: fmt.Sprintf("block size %d out of range [1,%d]", blockSize, MaxBlockSize)}
	}

	s := &DigestStream{BlockSize: blockSize}
	block := make([]byte, blockSize)
	for off := 0; off < len(payload); off += blockSize {
		end := off + blockSize
		if end > len(payload) {
			// last block, right-padded with zero bytes
			for i := range block {
				block[i] = 0
			}
			copy(block, payload[off:])
		} else {
			copy(block, payload[off:end])
		}
		s.Records = append(s.Records, Digest(block))
	}
	return s, nil
}

// Marshal serializes the stream: one header byte for the block size, then
// fixed 4-byte big-endian records back to back. Record size is fixed and
// known from the header, so no markers or framing are needed.
func (s *DigestStream) Marshal() []byte {
	buf := make([]byte, 1+recordSize*len(s.Records))
	buf[0] = byte(s.BlockSize)
	off := 1
	for _, rec := range s.Records {
		binary.BigEndian.PutUint16(buf[off:], rec.CRC)
		binary.BigEndian.PutUint16(buf[off+2:], rec.Sum)
		off += recordSize
	}
	return buf
}

// Unmarshal parses a serialized digest stream. maxBlockSize is the limit
// of the engine the caller intends to reconstruct with; a stream declaring
// a larger block size fails fast here instead of deep inside a search.
func Unmarshal(data []byte, maxBlockSize int) (*DigestStream, error) {
	if len(data) < 1 {
		return nil, &FormatError{Reason: "missing block size header"}
	}
	n := int(data[0])
	if n == 0 {
		return nil, &FormatError{Reason: "block size is zero"}
	}
	if maxBlockSize > 0 && n > maxBlockSize {
		return nil, &FormatError{Reason: fmt.Sprintf("block size %d exceeds engine maximum %d", n, maxBlockSize)}
	}
	body := data[1:]
	if len(body)%recordSize != 0 {
		return nil, &FormatError{Reason: fmt.Sprintf("body length %d is not a multiple of %d", len(body), recordSize)}
	}

	s := &DigestStream{
		BlockSize: n,
		Records:   make([]DigestRecord, 0, len(body)/recordSize),
	}
	for off := 0; off < len(body); off += recordSize {
		s.Records = append(s.Records, DigestRecord{
			CRC: binary.BigEndian.Uint16(body[off:]),
			Sum: binary.BigEndian.Uint16(body[off+2:]),
		})
	}
	return s, nil
}

// Equal reports whether two streams are identical.
func (s *DigestStream) Equal(o *DigestStream) bool {
	if s.BlockSize != o.BlockSize || len(s.Records) != len(o.Records) {
		return false
	}
	for i := range s.Records {
		if s.Records[i] != o.Records[i] {
			return false
		}
	}
	return true
}

// StripPadding removes the trailing zero bytes appended by Encode. This is
// lossy when the original payload itself ended in zero bytes; that is an
// accepted limitation of the scheme, not something to silently repair.
func StripPadding(payload []byte) []byte {
	return bytes.TrimRight(payload, "\x00")
}
