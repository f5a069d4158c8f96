package impltype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		want Type
	}{
		{"jit_avx512_1x1", JIT | AVX512 | Conv1x1},
		{"jit_avx2_dw", JIT | AVX2 | Depthwise},
		{"jit_sse42", JIT | SSE42},
		{"gemm_blas", GEMM | BLAS},
		{"ref_any", Ref | Any},
		{"reorder", Reorder},
		// Plain format names imply the reference implementation.
		{"nchw", Ref},
		{"ref_nchw", Ref},
		// Winograd convolutions carry no other marker.
		{"jit_avx512_winograd", JIT | AVX512 | Winograd},
		{"wino", Winograd},
		{"", Unknown},
		{"cudnn", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.name))
		})
	}
}

func TestHas(t *testing.T) {
	parsed := Parse("jit_avx512_1x1")

	assert.True(t, parsed.Has(JIT))
	assert.True(t, parsed.Has(AVX512))
	assert.True(t, parsed.Has(JIT|AVX512))
	assert.False(t, parsed.Has(GEMM))
	assert.False(t, parsed.Has(JIT|GEMM), "Has must require every bit")
}

func TestString(t *testing.T) {
	assert.Equal(t, "jit_avx512_1x1", (JIT | AVX512 | Conv1x1).String())
	assert.Equal(t, "ref", Ref.String())
	assert.Equal(t, "unknown", Unknown.String())
}
