// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package layout_test

import (
	"testing"

	"github.com/born-ml/layouts/layout"
)

// The public facade only aliases and forwards; one end-to-end pass over
// the exported surface is enough here, the real coverage lives in
// internal/layout.
func TestPublicAPI(t *testing.T) {
	desc, err := layout.NewTensorDesc(layout.FP32, layout.Dims{1, 3, 4, 4}, layout.NCHW)
	if err != nil {
		t.Fatalf("NewTensorDesc failed: %v", err)
	}

	off, err := desc.Offset(layout.Dims{0, 1, 2, 3})
	if err != nil {
		t.Fatalf("Offset failed: %v", err)
	}
	if off != 27 {
		t.Errorf("Offset = %d, want 27", off)
	}

	counter, err := layout.NewOffsetCounter(layout.NCHW, layout.Dims{1, 3, 4, 4})
	if err != nil {
		t.Fatalf("NewOffsetCounter failed: %v", err)
	}
	if got := counter.Offset(layout.Dims{0, 1, 2, 3}); got != off {
		t.Errorf("counter offset = %d, general offset = %d", got, off)
	}

	bd, err := layout.BlockingDescFor(layout.Dims{1, 3, 4, 4}, layout.NHWC)
	if err != nil {
		t.Fatalf("BlockingDescFor failed: %v", err)
	}
	redone, err := layout.NewTensorDescFromBlocking(layout.FP32, layout.Dims{1, 3, 4, 4}, bd)
	if err != nil {
		t.Fatalf("NewTensorDescFromBlocking failed: %v", err)
	}
	if redone.Layout() != layout.NHWC {
		t.Errorf("detected layout = %v, want NHWC", redone.Layout())
	}

	if layout.LayoutForDims(layout.Dims{2, 3}) != layout.NC {
		t.Error("LayoutForDims(2-D) != NC")
	}
}
