package internal

import "encoding/binary"

// IndexToBlockBigEndian writes the base-256 digits of idx into dst,
// most significant digit first. dst defines the block size; idx must be
// below 256^len(dst), higher digits are discarded.
func IndexToBlockBigEndian(dst []byte, idx uint64) {
	for i := len(dst) - 1; i >= 0; i-- {
		dst[i] = byte(idx & 0xff)
		idx >>= 8
	}
}

// BlockToIndexBigEndian reads a block as a big-endian base-256 integer.
// Blocks longer than 8 bytes would overflow uint64 and are not supported
// by the callers (the candidate index space caps out far earlier).
func BlockToIndexBigEndian(b []byte) uint64 {
	var idx uint64
	for _, c := range b {
		idx = idx<<8 | uint64(c)
	}
	return idx
}

func UInt16ToBytesBigEndian(v uint16) [2]byte {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	return b
}

func BytesToUInt16BigEndian(b [2]byte) uint16 {
	return binary.BigEndian.Uint16(b[:])
}
