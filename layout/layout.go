// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package layout

import (
	"github.com/born-ml/layouts/internal/layout"
	"github.com/born-ml/layouts/internal/precision"
)

// Type aliases for public API

// Dims holds tensor dimension sizes, one entry per axis.
// Example: Dims{1, 3, 224, 224} is a 4D NCHW-shaped tensor.
type Dims = layout.Dims

// Layout names a canonical memory arrangement for tensor data.
type Layout = layout.Layout

// Symbolic layout tags.
const (
	Any     Layout = layout.Any
	C       Layout = layout.C
	NC      Layout = layout.NC
	CN      Layout = layout.CN
	HW      Layout = layout.HW
	CHW     Layout = layout.CHW
	NCHW    Layout = layout.NCHW
	NHWC    Layout = layout.NHWC
	OIHW    Layout = layout.OIHW
	Blocked Layout = layout.Blocked
)

// BlockingDesc describes the physical memory arrangement of a tensor.
type BlockingDesc = layout.BlockingDesc

// TensorDesc pairs logical dims and a precision tag with a BlockingDesc.
type TensorDesc = layout.TensorDesc

// OffsetCounter resolves coordinates for the two dense 4-D layouts.
type OffsetCounter = layout.OffsetCounter

// DescError is the typed failure returned by descriptor operations.
type DescError = layout.DescError

// ErrKind classifies descriptor failures.
type ErrKind = layout.ErrKind

// Descriptor error kinds.
const (
	ErrMalformedDesc      ErrKind = layout.ErrMalformedDesc
	ErrDimsFormatMismatch ErrKind = layout.ErrDimsFormatMismatch
	ErrUndefinedLayout    ErrKind = layout.ErrUndefinedLayout
	ErrNonReshapable      ErrKind = layout.ErrNonReshapable
)

// Precision identifies the element type of a tensor. The tag comes from
// an external type registry; descriptors carry and compare it only.
type Precision = precision.Precision

// Precision constants.
const (
	Unspecified Precision = precision.Unspecified
	FP32        Precision = precision.FP32
	FP16        Precision = precision.FP16
	BF16        Precision = precision.BF16
	I8          Precision = precision.I8
	U8          Precision = precision.U8
	I16         Precision = precision.I16
	U16         Precision = precision.U16
	I32         Precision = precision.I32
	I64         Precision = precision.I64
	Bool        Precision = precision.Bool
)

// NewBlockingDesc builds a descriptor from block dims and order with
// dense strides and zero paddings.
func NewBlockingDesc(blockDims, order Dims) (BlockingDesc, error) {
	return layout.NewBlockingDesc(blockDims, order)
}

// NewBlockingDescPadded is NewBlockingDesc with an explicit base offset
// and per-axis leading paddings.
func NewBlockingDescPadded(blockDims, order Dims, offsetPadding int, dimOffsets Dims) (BlockingDesc, error) {
	return layout.NewBlockingDescPadded(blockDims, order, offsetPadding, dimOffsets)
}

// NewBlockingDescStrided is NewBlockingDescPadded with explicit strides.
func NewBlockingDescStrided(blockDims, order Dims, offsetPadding int, dimOffsets, strides Dims) (BlockingDesc, error) {
	return layout.NewBlockingDescStrided(blockDims, order, offsetPadding, dimOffsets, strides)
}

// BlockingDescFor builds the canonical descriptor a symbolic layout
// implies for the given dims.
func BlockingDescFor(dims Dims, l Layout) (BlockingDesc, error) {
	return layout.BlockingDescFor(dims, l)
}

// NewTensorDesc builds a descriptor from logical dims and a symbolic
// layout. Nil dims leave the blocking descriptor undefined.
func NewTensorDesc(p Precision, dims Dims, l Layout) (TensorDesc, error) {
	return layout.NewTensorDesc(p, dims, l)
}

// NewTensorDescFromBlocking builds a descriptor around an explicit
// BlockingDesc, inferring the symbolic layout where a canonical pattern
// matches and falling back to Blocked otherwise.
func NewTensorDescFromBlocking(p Precision, dims Dims, bd BlockingDesc) (TensorDesc, error) {
	return layout.NewTensorDescFromBlocking(p, dims, bd)
}

// NewOffsetCounter builds a fixed-table offset resolver for NCHW or NHWC.
func NewOffsetCounter(l Layout, dims Dims) (OffsetCounter, error) {
	return layout.NewOffsetCounter(l, dims)
}

// LayoutForDims returns the default dense layout for a dimension count.
func LayoutForDims(dims Dims) Layout {
	return layout.LayoutForDims(dims)
}
