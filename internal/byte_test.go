package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexBlockRoundTrip(t *testing.T) {
	testCases := []struct {
		name  string
		idx   uint64
		size  int
		block []byte
	}{
		{"Zero", 0, 2, []byte{0x00, 0x00}},
		{"Single Digit", 0x41, 1, []byte{0x41}},
		{"Big Endian Order", 258, 2, []byte{0x01, 0x02}},
		{"Three Bytes", 0x0a0b0c, 3, []byte{0x0a, 0x0b, 0x0c}},
		{"Max Four Bytes", 0xffffffff, 4, []byte{0xff, 0xff, 0xff, 0xff}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := make([]byte, tc.size)
			IndexToBlockBigEndian(got, tc.idx)
			assert.Equal(t, tc.block, got)
			assert.Equal(t, tc.idx, BlockToIndexBigEndian(got))
		})
	}
}

func TestIndexToBlockDiscardsHighDigits(t *testing.T) {
	got := make([]byte, 1)
	IndexToBlockBigEndian(got, 0x1234)
	assert.Equal(t, []byte{0x34}, got)
}

func TestUInt16BigEndian(t *testing.T) {
	b := UInt16ToBytesBigEndian(0x29b1)
	assert.Equal(t, [2]byte{0x29, 0xb1}, b)
	assert.Equal(t, uint16(0x29b1), BytesToUInt16BigEndian(b))
}
