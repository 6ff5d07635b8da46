package cmd

import (
	"bytes"
	"fmt"

	"github.com/zhengshuai-xiao/SCCodec/transform"
)

// containerMagic heads every compressed artifact. The container wraps the
// digest stream with the transform that was applied to the payload; the
// stream wire format itself stays envelope-free.
var containerMagic = []byte("SCC1")

func wrapContainer(trType transform.TransformType, stream []byte) []byte {
	out := make([]byte, 0, len(containerMagic)+1+len(stream))
	out = append(out, containerMagic...)
	out = append(out, byte(trType))
	return append(out, stream...)
}

func unwrapContainer(blob []byte) (transform.TransformType, []byte, error) {
	if len(blob) < len(containerMagic)+1 {
		return 0, nil, fmt.Errorf("artifact too short to be an sccodec container")
	}
	if !bytes.Equal(blob[:len(containerMagic)], containerMagic) {
		return 0, nil, fmt.Errorf("bad container magic %q", blob[:len(containerMagic)])
	}
	return transform.TransformType(blob[len(containerMagic)]), blob[len(containerMagic)+1:], nil
}
