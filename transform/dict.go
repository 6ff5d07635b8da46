package transform

import (
	"bytes"
	"fmt"
	"sort"
)

const (
	// dictMaxEntries caps the substitution table; the count header is a
	// single byte.
	dictMaxEntries = 64

	// dictMinSavings is the minimum net byte gain before a token earns a
	// table entry.
	dictMinSavings = 2
)

// dictTokenLengths are the substring window sizes considered for the
// table, longest first so big repeats win their codes before their own
// fragments do.
var dictTokenLengths = []int{8, 4}

// DictTransformer substitutes repeated substrings with single spare byte
// values. The substitution table is explicit in the output header and
// codes are drawn only from byte values absent from the payload, so
// reverting is exact: no in-band markers, no escape handling.
//
// Output layout:
//
//	[entry count: 1]
//	per entry: [code: 1][token length: 1][token bytes]
//	[transformed payload]
type DictTransformer struct{}

func NewDict() *DictTransformer {
	return &DictTransformer{}
}

func (t *DictTransformer) Type() TransformType {
	return Transform_dict
}

func (t *DictTransformer) TypeString() string {
	return "dict"
}

type dictEntry struct {
	code    byte
	token   []byte
	savings int
}

// Apply builds the table and substitutes tokens in order. Replacement is
// a left-to-right non-overlapping scan per token; occurrences destroyed
// by an earlier entry simply stop matching, which costs ratio, never
// correctness.
func (t *DictTransformer) Apply(data []byte) ([]byte, error) {
	freeCodes := unusedBytes(data)
	entries := selectEntries(data, freeCodes)

	out := make([]byte, 0, len(data)+1)
	out = append(out, byte(len(entries)))
	for _, e := range entries {
		out = append(out, e.code, byte(len(e.token)))
		out = append(out, e.token...)
	}

	transformed := data
	for _, e := range entries {
		transformed = bytes.ReplaceAll(transformed, e.token, []byte{e.code})
	}
	return append(out, transformed...), nil
}

// Revert parses the table and expands codes in reverse application
// order. Tokens are substrings of the original payload and therefore
// contain no code bytes, so expansion cannot cascade.
func (t *DictTransformer) Revert(data []byte) ([]byte, error) {
	if len(data) < 1 {
		return nil, fmt.Errorf("dict transform: missing table header")
	}
	count := int(data[0])
	off := 1

	entries := make([]dictEntry, 0, count)
	for i := 0; i < count; i++ {
		if off+2 > len(data) {
			return nil, fmt.Errorf("dict transform: truncated table entry %d", i)
		}
		code := data[off]
		tokenLen := int(data[off+1])
		off += 2
		if tokenLen == 0 || off+tokenLen > len(data) {
			return nil, fmt.Errorf("dict transform: invalid token length %d in entry %d", tokenLen, i)
		}
		token := make([]byte, tokenLen)
		copy(token, data[off:off+tokenLen])
		off += tokenLen
		entries = append(entries, dictEntry{code: code, token: token})
	}

	payload := data[off:]
	for i := len(entries) - 1; i >= 0; i-- {
		payload = bytes.ReplaceAll(payload, []byte{entries[i].code}, entries[i].token)
	}
	return payload, nil
}

// unusedBytes returns every byte value not present in data, ascending.
func unusedBytes(data []byte) []byte {
	var present [256]bool
	for _, b := range data {
		present[b] = true
	}
	var free []byte
	for v := 0; v < 256; v++ {
		if !present[v] {
			free = append(free, byte(v))
		}
	}
	return free
}

// selectEntries picks the most profitable repeated substrings that fit
// the available spare codes.
func selectEntries(data []byte, freeCodes []byte) []dictEntry {
	budget := len(freeCodes)
	if budget > dictMaxEntries {
		budget = dictMaxEntries
	}
	if budget == 0 || len(data) == 0 {
		return nil
	}

	var candidates []dictEntry
	for _, tokenLen := range dictTokenLengths {
		if tokenLen > len(data) {
			continue
		}
		counts := make(map[string]int)
		for off := 0; off+tokenLen <= len(data); off++ {
			counts[string(data[off:off+tokenLen])]++
		}
		for token, n := range counts {
			// each occurrence shrinks to one byte; the table entry
			// costs 2+len(token)
			savings := n*(tokenLen-1) - (2 + tokenLen)
			if savings >= dictMinSavings {
				candidates = append(candidates, dictEntry{token: []byte(token), savings: savings})
			}
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].savings != candidates[j].savings {
			return candidates[i].savings > candidates[j].savings
		}
		return bytes.Compare(candidates[i].token, candidates[j].token) < 0
	})

	var entries []dictEntry
	for _, cand := range candidates {
		if len(entries) == budget {
			break
		}
		if overlapsChosen(entries, cand.token) {
			continue
		}
		cand.code = freeCodes[len(entries)]
		entries = append(entries, cand)
	}
	return entries
}

// overlapsChosen rejects a candidate that contains or is contained by an
// already chosen token; such pairs fight over the same payload bytes and
// the earlier, more profitable entry keeps them.
func overlapsChosen(entries []dictEntry, token []byte) bool {
	for _, e := range entries {
		if bytes.Contains(e.token, token) || bytes.Contains(token, e.token) {
			return true
		}
	}
	return false
}
