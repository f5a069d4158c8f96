// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package impltype provides the public API for classifying kernel
// implementation names into capability flags.
//
// Classification is a stateless substring match over the name, e.g.
// "jit_avx512_1x1" carries the JIT, AVX512 and Conv1x1 flags. It is
// independent of the layout descriptors and shares no data with them.
package impltype

import "github.com/born-ml/layouts/internal/impltype"

// Type is a bitmask of capability flags found in an implementation name.
type Type = impltype.Type

// Capability flags.
const (
	Unknown   Type = impltype.Unknown
	Ref       Type = impltype.Ref
	JIT       Type = impltype.JIT
	GEMM      Type = impltype.GEMM
	BLAS      Type = impltype.BLAS
	SSE42     Type = impltype.SSE42
	AVX2      Type = impltype.AVX2
	AVX512    Type = impltype.AVX512
	Any       Type = impltype.Any
	Conv1x1   Type = impltype.Conv1x1
	Depthwise Type = impltype.Depthwise
	Reorder   Type = impltype.Reorder
	Winograd  Type = impltype.Winograd
)

// Parse tags an implementation name with every capability flag whose
// fragment appears in it.
func Parse(name string) Type {
	return impltype.Parse(name)
}
