package transform

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetTransformer(t *testing.T) {
	t.Run("GetTransformerViaString", func(t *testing.T) {
		for name, expected := range TransformMethods {
			tr, err := GetTransformerViaString(name)
			assert.NoError(t, err)
			assert.Equal(t, expected, tr.Type())
			assert.Equal(t, name, tr.TypeString())
		}

		tr, err := GetTransformerViaString("invalid")
		assert.Error(t, err)
		assert.Equal(t, ErrInvalidTransformType, err)
		assert.Nil(t, tr)
	})

	t.Run("GetTransformerViaType", func(t *testing.T) {
		tr, err := GetTransformerViaType(Transform_snappy)
		assert.NoError(t, err)
		assert.IsType(t, &SnappyTransformer{}, tr)

		tr, err = GetTransformerViaType(Transform_dict)
		assert.NoError(t, err)
		assert.IsType(t, &DictTransformer{}, tr)

		tr, err = GetTransformerViaType(TransformType(200))
		assert.Error(t, err)
		assert.Nil(t, tr)
	})
}

func TestTransformRoundTrips(t *testing.T) {
	payloads := map[string][]byte{
		"Empty":       {},
		"Short":       []byte("Hi"),
		"Repetitive":  bytes.Repeat([]byte("checksum search codec "), 40),
		"Binary":      {0xDE, 0xAD, 0xBE, 0xEF, 0x00, 0x00, 0xCA, 0xFE},
		"Single Byte": {0x41},
	}

	for name := range TransformMethods {
		tr, err := GetTransformerViaString(name)
		assert.NoError(t, err)

		for pname, payload := range payloads {
			t.Run(name+"/"+pname, func(t *testing.T) {
				applied, err := tr.Apply(payload)
				assert.NoError(t, err)

				reverted, err := tr.Revert(applied)
				assert.NoError(t, err)
				if len(payload) == 0 {
					assert.Len(t, reverted, 0)
				} else {
					assert.Equal(t, payload, reverted)
				}
			})
		}
	}
}
