// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package layout provides the public API for tensor memory layout
// descriptors in the Born ML framework.
//
// The package maps logical tensor coordinates onto flat linear memory
// under physical arrangements that may permute dimensions, pad them, or
// split them into fixed-size blocks:
//   - BlockingDesc: block sizes, dimension order, strides and paddings,
//     the single source of truth for how a tensor sits in memory
//   - TensorDesc: logical dims plus a precision tag and a symbolic
//     layout tag bound to a BlockingDesc, with offset resolution for
//     coordinates and flat indices
//   - OffsetCounter: a fixed-table offset resolver for the two dense
//     4-D layouts, independent of the general algorithm
//
// The package only computes addresses. It never touches tensor buffers
// and never chooses layouts; both belong to the caller.
//
// Example:
//
//	desc, err := layout.NewTensorDesc(layout.FP32, layout.Dims{1, 3, 4, 4}, layout.NCHW)
//	if err != nil {
//		// dims and layout disagree
//	}
//	off, err := desc.Offset(layout.Dims{0, 1, 2, 3}) // == 27
package layout
