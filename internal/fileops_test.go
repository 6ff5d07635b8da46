package internal

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blob.bin")
	content := []byte{0x00, 0x29, 0xb1, 0xff, 0x41, 0x42}

	assert.NoError(t, StoreFile(path, content))

	got, err := LoadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.bin"))
	assert.Error(t, err)
}
