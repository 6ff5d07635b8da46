package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// crc16Reference is an independent bit-by-bit implementation used to pin
// CRC16CCITT against. Kept deliberately naive.
func crc16Reference(data []byte) uint16 {
	crc := 0xFFFF
	for _, b := range data {
		for bit := 7; bit >= 0; bit-- {
			in := (int(b) >> bit) & 1
			top := (crc >> 15) & 1
			crc = (crc << 1) & 0xFFFF
			if top^in != 0 {
				crc ^= 0x1021
			}
		}
	}
	return uint16(crc)
}

func TestCRC16CCITT(t *testing.T) {
	testCases := []struct {
		name     string
		data     []byte
		expected uint16
	}{
		// Published check value for CRC-16/CCITT-FALSE.
		{"Check String", []byte("123456789"), 0x29B1},
		{"Single A", []byte("A"), 0xB915},
		{"Empty", []byte{}, 0xFFFF},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CRC16CCITT(tc.data))
		})
	}
}

func TestCRC16AgainstReference(t *testing.T) {
	testCases := [][]byte{
		{},
		{0x00},
		{0x00, 0x00, 0x00, 0x00},
		{0xDE, 0xAD, 0xBE, 0xEF},
		[]byte("AB"),
		[]byte("hello, world"),
		{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF},
	}

	for _, data := range testCases {
		assert.Equal(t, crc16Reference(data), CRC16CCITT(data), "data=%x", data)
	}
}

func TestSum16(t *testing.T) {
	testCases := []struct {
		name     string
		data     []byte
		expected uint16
	}{
		{"Empty", []byte{}, 0},
		{"AB", []byte("AB"), 0x0083},
		{"Single Max", []byte{0xFF}, 0x00FF},
		{"Wraps Modulo 65536", make([]byte, 300), 0},
	}
	for i := range testCases[3].data {
		testCases[3].data[i] = 0xFF
	}
	testCases[3].expected = uint16(300 * 255 % 65536)

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Sum16(tc.data))
		})
	}
}

func TestDigestIsPure(t *testing.T) {
	block := []byte{0x12, 0x34, 0x56, 0x78}
	first := Digest(block)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Digest(block))
	}
	assert.True(t, first.Matches(block))
	assert.False(t, first.Matches([]byte{0x12, 0x34, 0x56, 0x79}))
}
