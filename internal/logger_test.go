package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMethodName(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"Standard function", "github.com/zhengshuai-xiao/SCCodec/search.(*Parallel).SolveBlocks", "SolveBlocks"},
		{"Method with pointer receiver", "github.com/zhengshuai-xiao/SCCodec/codec.(*DigestStream).Marshal", "Marshal"},
		{"Anonymous function", "github.com/zhengshuai-xiao/SCCodec/search.(*Parallel).SolveBlocks.func1", "SolveBlocks"},
		{"Simple function", "main.main", "main"},
		{"No package path", "MyFunction", "MyFunction"},
		{"Empty string", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := MethodName(tc.input)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestGetLoggerIsCached(t *testing.T) {
	l1 := GetLogger("test_cached")
	l2 := GetLogger("test_cached")
	assert.Same(t, l1, l2)
}
