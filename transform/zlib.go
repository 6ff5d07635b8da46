package transform

import (
	"bytes"
	"compress/zlib"
	"io"
)

// ZlibTransformer implements the Transformer interface using Zlib.
type ZlibTransformer struct{}

// NewZlib returns a new ZlibTransformer.
func NewZlib() *ZlibTransformer {
	return &ZlibTransformer{}
}

func (t *ZlibTransformer) Type() TransformType {
	return Transform_zlib
}

// TypeString returns the transform type string.
func (t *ZlibTransformer) TypeString() string {
	return "zlib"
}

// Apply compresses data using Zlib.
func (t *ZlibTransformer) Apply(data []byte) ([]byte, error) {
	var b bytes.Buffer
	w := zlib.NewWriter(&b)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// Revert decompresses data using Zlib.
func (t *ZlibTransformer) Revert(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return io.ReadAll(r)
}
