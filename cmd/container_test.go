package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zhengshuai-xiao/SCCodec/search"
	"github.com/zhengshuai-xiao/SCCodec/transform"
)

func TestContainerRoundTrip(t *testing.T) {
	stream := []byte{0x02, 0x29, 0xB1, 0x00, 0x83}
	blob := wrapContainer(transform.Transform_dict, stream)

	trType, got, err := unwrapContainer(blob)
	assert.NoError(t, err)
	assert.Equal(t, transform.Transform_dict, trType)
	assert.Equal(t, stream, got)
}

func TestUnwrapContainerErrors(t *testing.T) {
	_, _, err := unwrapContainer([]byte("SCC"))
	assert.Error(t, err)

	_, _, err = unwrapContainer([]byte("XXXX\x00\x01\x02"))
	assert.Error(t, err)
}

func TestParseAlphabet(t *testing.T) {
	a, err := parseAlphabet("printable")
	assert.NoError(t, err)
	assert.Equal(t, search.PrintableAlphabet(), a)

	a, err = parseAlphabet("full")
	assert.NoError(t, err)
	assert.Len(t, a, 256)

	a, err = parseAlphabet("65-90")
	assert.NoError(t, err)
	assert.Equal(t, byte('A'), a[0])
	assert.Equal(t, byte('Z'), a[len(a)-1])

	for _, bad := range []string{"", "letters", "90-65", "0-999"} {
		_, err := parseAlphabet(bad)
		assert.Error(t, err, "spec %q", bad)
	}
}
