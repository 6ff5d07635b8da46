// Package transform provides reversible payload pre-transforms applied
// before digest encoding and reverted after reconstruction. Each
// transform is tagged with a type byte recorded in the file container.
package transform

import "errors"

type TransformType byte

const (
	Transform_none   TransformType = iota //0
	Transform_snappy                      //1
	Transform_zlib                        //2
	Transform_dict                        //3
)

var ErrInvalidTransformType = errors.New("invalid transform type")

var TransformMethods = map[string]TransformType{
	"none":   Transform_none,
	"snappy": Transform_snappy,
	"zlib":   Transform_zlib,
	"dict":   Transform_dict,
}

// Transformer defines a reversible byte-level payload transform.
type Transformer interface {
	// Apply transforms the payload before digest encoding.
	Apply(data []byte) ([]byte, error)

	// Revert restores the original payload after reconstruction.
	Revert(data []byte) ([]byte, error)

	// Type returns the container type byte, e.g. "snappy", "dict".
	TypeString() string
	Type() TransformType
}

func GetTransformerViaString(transformStr string) (Transformer, error) {
	transformType, ok := TransformMethods[transformStr]
	if !ok {
		return nil, ErrInvalidTransformType
	}
	return GetTransformerViaType(transformType)
}

func GetTransformerViaType(transformType TransformType) (Transformer, error) {
	switch transformType {
	case Transform_none:
		return NewNone(), nil
	case Transform_snappy:
		return NewSnappy(), nil
	case Transform_zlib:
		return NewZlib(), nil
	case Transform_dict:
		return NewDict(), nil
	default:
		return nil, ErrInvalidTransformType
	}
}

// NoneTransformer passes the payload through untouched.
type NoneTransformer struct{}

func NewNone() *NoneTransformer {
	return &NoneTransformer{}
}

func (t *NoneTransformer) Type() TransformType {
	return Transform_none
}

func (t *NoneTransformer) TypeString() string {
	return "none"
}

func (t *NoneTransformer) Apply(data []byte) ([]byte, error) {
	return data, nil
}

func (t *NoneTransformer) Revert(data []byte) ([]byte, error) {
	return data, nil
}
