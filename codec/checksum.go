package codec

// CRC16CCITT computes the CRC-16-CCITT checksum of data: polynomial 0x1021,
// initial value 0xFFFF, MSB-first, no final XOR. This is the exact register
// algorithm the wire format is pinned to, so it is implemented here rather
// than borrowed from a CRC-32 package.
func CRC16CCITT(data []byte) uint16 {
	crc := uint16(0xFFFF)
	for _, b := range data {
		crc ^= uint16(b) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}

// Sum16 computes the arithmetic sum of the bytes, truncated to 16 bits.
func Sum16(data []byte) uint16 {
	var sum uint16
	for _, b := range data {
		sum += uint16(b)
	}
	return sum
}
