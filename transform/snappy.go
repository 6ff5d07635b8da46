package transform

import "github.com/golang/snappy"

// SnappyTransformer implements the Transformer interface using Snappy.
type SnappyTransformer struct{}

// NewSnappy returns a new SnappyTransformer.
func NewSnappy() *SnappyTransformer {
	return &SnappyTransformer{}
}

// Type returns the transform type.
func (t *SnappyTransformer) Type() TransformType {
	return Transform_snappy
}

// TypeString returns the transform type string.
func (t *SnappyTransformer) TypeString() string {
	return "snappy"
}

// Apply compresses data using Snappy.
func (t *SnappyTransformer) Apply(data []byte) ([]byte, error) {
	return snappy.Encode(nil, data), nil
}

// Revert decompresses data using Snappy.
func (t *SnappyTransformer) Revert(data []byte) ([]byte, error) {
	decoded, err := snappy.Decode(nil, data)
	if err != nil {
		return nil, err
	}
	if decoded == nil {
		return []byte{}, nil
	}
	return decoded, nil
}
