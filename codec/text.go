package codec

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseDigestText parses the textual digest form "CRC:SUM", two hex values
// separated by a colon, e.g. "29B1:0083". This is the interchange form the
// solve command accepts; the binary stream format never uses it.
func ParseDigestText(s string) (DigestRecord, error) {
	crcStr, sumStr, found := strings.Cut(strings.TrimSpace(s), ":")
	if !found {
		return DigestRecord{}, fmt.Errorf("invalid digest %q: expected CRC:SUM", s)
	}
	crc, err := strconv.ParseUint(crcStr, 16, 16)
	if err != nil {
		return DigestRecord{}, fmt.Errorf("invalid crc16 %q: %w", crcStr, err)
	}
	sum, err := strconv.ParseUint(sumStr, 16, 16)
	if err != nil {
		return DigestRecord{}, fmt.Errorf("invalid sum16 %q: %w", sumStr, err)
	}
	return DigestRecord{CRC: uint16(crc), Sum: uint16(sum)}, nil
}

// TextString renders r in the form ParseDigestText accepts.
func (r DigestRecord) TextString() string {
	return fmt.Sprintf("%04X:%04X", r.CRC, r.Sum)
}
