package layout

import "github.com/born-ml/layouts/internal/precision"

// TensorDesc pairs logical tensor dims and an element precision tag with
// the blocking descriptor that says how the tensor actually sits in
// memory, plus a symbolic layout tag for fast dispatch.
//
// TensorDesc is a plain value: copies are independent, nothing is shared,
// and no operation mutates a descriptor other than through its own
// pointer receiver. Concurrent mutation of one instance must be
// serialized by the caller.
type TensorDesc struct {
	dims      Dims
	precision precision.Precision
	layout    Layout
	blocking  BlockingDesc
}

// NewTensorDesc builds a descriptor from logical dims and a symbolic
// layout; the blocking descriptor is derived canonically. Nil or empty
// dims are accepted and leave the blocking descriptor undefined until
// SetDims is called.
func NewTensorDesc(p precision.Precision, dims Dims, l Layout) (TensorDesc, error) {
	bd, err := BlockingDescFor(dims, l)
	if err != nil {
		return TensorDesc{}, err
	}
	return TensorDesc{
		dims:      dims.Clone(),
		precision: p,
		layout:    l,
		blocking:  bd,
	}, nil
}

// NewTensorDescFromBlocking builds a descriptor around an explicit
// blocking descriptor. The symbolic layout is inferred by matching the
// descriptor against the canonical patterns; anything that matches no
// named pattern is Blocked. That fallback is deliberate, not a failure.
func NewTensorDescFromBlocking(p precision.Precision, dims Dims, bd BlockingDesc) (TensorDesc, error) {
	if len(dims) != bd.order.Max()+1 {
		return TensorDesc{}, errMismatch("cannot create tensor descriptor: blocked dims are inconsistent with original dims (%d dims, max order %d)", len(dims), bd.order.Max())
	}
	return TensorDesc{
		dims:      dims.Clone(),
		precision: p,
		layout:    detectLayout(dims, bd),
		blocking:  bd,
	}, nil
}

// detectLayout pattern-matches a blocking descriptor back to a symbolic
// tag. Canonical tags have exactly one physical axis per logical
// dimension, and each axis must block the full logical dim it
// represents, so permuted layouts (NHWC, CN) round-trip too.
func detectLayout(dims Dims, bd BlockingDesc) Layout {
	if len(bd.order) != len(dims) {
		return Blocked
	}
	for i, o := range bd.order {
		if o >= len(dims) || bd.blockDims[i] != dims[o] {
			return Blocked
		}
	}
	switch len(dims) {
	case 1:
		return C
	case 2:
		if bd.order[0] == 0 && bd.order[1] == 1 {
			return NC
		}
		return CN
	case 3:
		if bd.order[0] == 0 && bd.order[1] == 1 && bd.order[2] == 2 {
			return CHW
		}
	case 4:
		if bd.order[0] == 0 && bd.order[1] == 1 && bd.order[2] == 2 && bd.order[3] == 3 {
			return NCHW
		}
		if bd.order[0] == 0 && bd.order[1] == 2 && bd.order[2] == 3 && bd.order[3] == 1 {
			return NHWC
		}
	}
	return Blocked
}

// Dims returns the logical dimension sizes. Callers must not mutate the
// returned slice.
func (t TensorDesc) Dims() Dims { return t.dims }

// Precision returns the element type tag. The tag is carried and
// compared, never interpreted.
func (t TensorDesc) Precision() precision.Precision { return t.precision }

// Layout returns the symbolic layout tag.
func (t TensorDesc) Layout() Layout { return t.layout }

// Blocking returns the blocking descriptor.
func (t TensorDesc) Blocking() BlockingDesc { return t.blocking }

// SetDims replaces the logical dims and rebuilds the blocking
// descriptor. Blocked descriptors keep their custom block dims and order
// when present; canonical layouts are re-derived from the new dims.
func (t *TensorDesc) SetDims(dims Dims) error {
	var bd BlockingDesc
	var err error
	if t.layout == Blocked {
		blockDims := t.blocking.blockDims
		order := t.blocking.order
		if len(blockDims) == 0 {
			blockDims = dims
		}
		if len(order) == 0 {
			order = make(Dims, len(blockDims))
			for i := range order {
				order[i] = i
			}
		}
		bd, err = NewBlockingDesc(blockDims, order)
	} else {
		bd, err = BlockingDescFor(dims, t.layout)
	}
	if err != nil {
		return err
	}
	t.dims = dims.Clone()
	t.blocking = bd
	return nil
}

// Offset maps a full logical coordinate to a linear element offset.
//
// The coordinate carries one index per logical dimension in logical
// order, innermost-fastest dimension last (N,C,H,W for 4-D). Each
// logical index is split into a remainder inside the current block and a
// quotient carried to the next coarser physical axis of the same logical
// dimension, then the remainders are folded against the strides.
func (t TensorDesc) Offset(pos Dims) (int, error) {
	if t.layout == Any {
		return 0, &DescError{Kind: ErrUndefinedLayout, Details: "cannot calculate offset for any format"}
	}
	blockDims := t.blocking.blockDims
	strides := t.blocking.strides
	order := t.blocking.order

	n := len(order)
	if len(blockDims) != n || len(strides) != n {
		return 0, errMalformed("cannot calculate offset: incorrect primitive descriptor")
	}
	if len(pos) != len(t.dims) {
		return 0, errMismatch("cannot calculate offset: got %d indices for %d dims", len(pos), len(t.dims))
	}

	rem := pos.Clone()
	shift := make(Dims, n)
	for i := n - 1; i >= 0; i-- {
		d := order[i]
		shift[i] = rem[d] % blockDims[i]
		rem[d] /= blockDims[i]
	}
	offset := t.blocking.offsetPadding
	for i := 0; i < n; i++ {
		offset += (shift[i] + t.blocking.offsetPaddingToData[i]) * strides[i]
	}
	return offset, nil
}

// LinearOffset maps a flat logical index to a linear element offset by
// decomposing it against the dims, last dimension fastest, and
// resolving the resulting coordinate.
func (t TensorDesc) LinearOffset(l int) (int, error) {
	pos := make(Dims, len(t.dims))
	for d := len(t.dims) - 1; d >= 0; d-- {
		pos[d] = l % t.dims[d]
		l /= t.dims[d]
	}
	return t.Offset(pos)
}

// Reshape replaces dims and layout, rebuilding the blocking descriptor
// canonically. Passing Any keeps the current symbolic layout. Reshape is
// only valid while no leading data padding is set.
func (t *TensorDesc) Reshape(dims Dims, l Layout) error {
	for _, pad := range t.blocking.offsetPaddingToData {
		if pad != 0 {
			return &DescError{Kind: ErrNonReshapable, Details: "cannot reshape a non-packaged blob"}
		}
	}
	target := l
	if target == Any {
		target = t.layout
	}
	bd, err := BlockingDescFor(dims, target)
	if err != nil {
		return err
	}
	t.blocking = bd
	if l != Any {
		t.layout = l
	}
	t.dims = dims.Clone()
	return nil
}

// ReshapeWithBlocking unconditionally replaces the blocking descriptor
// and dims. The layout becomes Blocked; no pattern re-detection happens.
func (t *TensorDesc) ReshapeWithBlocking(dims Dims, bd BlockingDesc) {
	t.blocking = bd
	t.dims = dims.Clone()
	t.layout = Blocked
}

// Equal checks structural equality over blocking, precision, layout and
// dims together.
func (t TensorDesc) Equal(other TensorDesc) bool {
	return t.blocking.Equal(other.blocking) &&
		t.precision == other.precision &&
		t.layout == other.layout &&
		t.dims.Equal(other.dims)
}
