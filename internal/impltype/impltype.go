// Package impltype classifies kernel implementation names into
// capability flags by lexical matching. It is stateless and shares no
// data model with the layout descriptors.
package impltype

import "strings"

// Type is a bitmask of capability flags found in an implementation name.
type Type uint32

// Unknown means no flag matched.
const Unknown Type = 0

// Capability flags.
const (
	Ref Type = 1 << iota
	JIT
	GEMM
	BLAS
	SSE42
	AVX2
	AVX512
	Any
	Conv1x1
	Depthwise
	Reorder
	Winograd
)

// searchWords maps name fragments to the flag each one implies. Order
// matters only for String output, not for matching.
var searchWords = []struct {
	word string
	flag Type
}{
	{"ref", Ref},
	{"jit", JIT},
	{"gemm", GEMM},
	{"blas", BLAS},
	{"sse42", SSE42},
	{"avx2", AVX2},
	{"avx512", AVX512},
	{"any", Any},
	{"_1x1", Conv1x1},
	{"_dw", Depthwise},
	{"reorder", Reorder},
	{"nchw", Ref},
	{"wino", Winograd},
}

var flagNames = []struct {
	flag Type
	name string
}{
	{Ref, "ref"},
	{JIT, "jit"},
	{GEMM, "gemm"},
	{BLAS, "blas"},
	{SSE42, "sse42"},
	{AVX2, "avx2"},
	{AVX512, "avx512"},
	{Any, "any"},
	{Conv1x1, "1x1"},
	{Depthwise, "dw"},
	{Reorder, "reorder"},
	{Winograd, "winograd"},
}

// Parse tags an implementation name with every capability flag whose
// fragment appears in it. Names it cannot place return Unknown.
func Parse(name string) Type {
	res := Unknown
	for _, w := range searchWords {
		if strings.Contains(name, w.word) {
			res |= w.flag
		}
	}
	return res
}

// Has reports whether every bit of flag is set.
func (t Type) Has(flag Type) bool {
	return t&flag == flag
}

// String returns the set flags joined by underscores, or "unknown".
func (t Type) String() string {
	var parts []string
	for _, f := range flagNames {
		if t.Has(f.flag) {
			parts = append(parts, f.name)
		}
	}
	if len(parts) == 0 {
		return "unknown"
	}
	return strings.Join(parts, "_")
}
