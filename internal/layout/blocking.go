package layout

// BlockingDesc describes how a tensor is physically laid out in memory:
// the block size of every physical axis, which logical dimension each
// physical axis represents, the linear stride of each axis, and the
// leading padding before real data starts (global and per-axis).
//
// The zero value is the undefined state: all sequences empty, zero
// offset. It is a legal value meaning "layout not yet known".
type BlockingDesc struct {
	blockDims           Dims
	order               Dims
	strides             Dims
	offsetPadding       int
	offsetPaddingToData Dims
}

// NewBlockingDesc builds a descriptor from physical block dims and the
// order mapping each physical axis to its logical dimension. Strides are
// derived as the dense right-to-left cumulative product and all paddings
// are zero.
//
// Both sequences empty yields the undefined descriptor, not an error;
// exactly one empty is a malformed request.
func NewBlockingDesc(blockDims, order Dims) (BlockingDesc, error) {
	var bd BlockingDesc
	if len(blockDims) == 0 && len(order) == 0 {
		return bd, nil
	}
	if err := bd.fill(blockDims, order); err != nil {
		return BlockingDesc{}, err
	}
	return bd, nil
}

// NewBlockingDescPadded is NewBlockingDesc with a caller-supplied scalar
// base offset and per-axis leading paddings.
func NewBlockingDescPadded(blockDims, order Dims, offsetPadding int, dimOffsets Dims) (BlockingDesc, error) {
	bd, err := NewBlockingDesc(blockDims, order)
	if err != nil {
		return BlockingDesc{}, err
	}
	bd.offsetPadding = offsetPadding
	if len(blockDims) != len(dimOffsets) {
		return BlockingDesc{}, errMalformed("offsets are not initialized for all dimensions: %d offsets for %d dims", len(dimOffsets), len(blockDims))
	}
	bd.offsetPaddingToData = dimOffsets.Clone()
	return bd, nil
}

// NewBlockingDescStrided is NewBlockingDescPadded with explicit strides
// replacing the derived dense ones. Supplied strides are accepted as-is;
// keeping them consistent with the block dims is the caller's business.
func NewBlockingDescStrided(blockDims, order Dims, offsetPadding int, dimOffsets, strides Dims) (BlockingDesc, error) {
	bd, err := NewBlockingDesc(blockDims, order)
	if err != nil {
		return BlockingDesc{}, err
	}
	bd.offsetPadding = offsetPadding
	if len(blockDims) != len(strides) {
		return BlockingDesc{}, errMalformed("strides are not initialized for all dimensions: %d strides for %d dims", len(strides), len(blockDims))
	}
	bd.strides = strides.Clone()
	if len(blockDims) != len(dimOffsets) {
		return BlockingDesc{}, errMalformed("offsets are not initialized for all dimensions: %d offsets for %d dims", len(dimOffsets), len(blockDims))
	}
	bd.offsetPaddingToData = dimOffsets.Clone()
	return bd, nil
}

// BlockingDescFor builds the canonical descriptor a symbolic layout
// implies for the given logical dims. Empty dims or the Any layout yield
// the undefined descriptor.
func BlockingDescFor(dims Dims, l Layout) (BlockingDesc, error) {
	var bd BlockingDesc
	if len(dims) == 0 {
		return bd, nil
	}

	var order, blockDims Dims
	switch l {
	case Any:
		return bd, nil
	case C:
		if err := checkArity(dims, 1); err != nil {
			return BlockingDesc{}, err
		}
		order = Dims{0}
		blockDims = dims
	case NC, HW:
		if err := checkArity(dims, 2); err != nil {
			return BlockingDesc{}, err
		}
		order = Dims{0, 1}
		blockDims = dims
	case CN:
		if err := checkArity(dims, 2); err != nil {
			return BlockingDesc{}, err
		}
		order = Dims{1, 0}
		blockDims = Dims{dims[1], dims[0]}
	case CHW:
		if err := checkArity(dims, 3); err != nil {
			return BlockingDesc{}, err
		}
		order = Dims{0, 1, 2}
		blockDims = dims
	case NCHW, OIHW:
		if err := checkArity(dims, 4); err != nil {
			return BlockingDesc{}, err
		}
		order = Dims{0, 1, 2, 3}
		blockDims = dims
	case NHWC:
		if err := checkArity(dims, 4); err != nil {
			return BlockingDesc{}, err
		}
		order = Dims{0, 2, 3, 1}
		blockDims = Dims{dims[0], dims[2], dims[3], dims[1]}
	case Blocked:
		order = make(Dims, len(dims))
		for i := range order {
			order[i] = i
		}
		blockDims = dims
	default:
		return BlockingDesc{}, errMismatch("unknown layout %v", l)
	}

	if err := bd.fill(blockDims, order); err != nil {
		return BlockingDesc{}, err
	}
	return bd, nil
}

func checkArity(dims Dims, want int) error {
	if len(dims) != want {
		return errMismatch("dims and format are inconsistent: got %d dims, layout requires %d", len(dims), want)
	}
	return nil
}

// fill sets every field from blockDims and order: canonical dense
// strides, zero paddings. A failed fill leaves the receiver untouched.
func (bd *BlockingDesc) fill(blockDims, order Dims) error {
	if len(order) != len(blockDims) {
		return errMalformed("cannot fill descriptor: size of dimensions (%d) and order (%d) don't match", len(blockDims), len(order))
	}
	if len(blockDims) == 0 {
		return errMalformed("cannot fill descriptor: dimensions and order are empty")
	}
	bd.blockDims = blockDims.Clone()
	bd.order = order.Clone()
	bd.strides = blockDims.Strides()
	bd.offsetPadding = 0
	bd.offsetPaddingToData = make(Dims, len(order))
	return nil
}

// BlockDims returns the physical block sizes. Callers must not mutate
// the returned slice.
func (bd BlockingDesc) BlockDims() Dims { return bd.blockDims }

// Order returns, for each physical axis, the logical dimension index it
// represents. An order may repeat a logical index when a dimension is
// split across blocking levels.
func (bd BlockingDesc) Order() Dims { return bd.order }

// Strides returns the linear-memory stride of each physical axis,
// in elements.
func (bd BlockingDesc) Strides() Dims { return bd.strides }

// OffsetPadding returns the scalar base offset added to every address.
func (bd BlockingDesc) OffsetPadding() int { return bd.offsetPadding }

// OffsetPaddingToData returns the per-axis leading padding skipped
// before real data starts.
func (bd BlockingDesc) OffsetPaddingToData() Dims { return bd.offsetPaddingToData }

// Defined reports whether the descriptor holds a concrete layout.
func (bd BlockingDesc) Defined() bool { return len(bd.blockDims) > 0 }

// Equal checks structural equality across all five fields.
func (bd BlockingDesc) Equal(other BlockingDesc) bool {
	return bd.blockDims.Equal(other.blockDims) &&
		bd.strides.Equal(other.strides) &&
		bd.offsetPaddingToData.Equal(other.offsetPaddingToData) &&
		bd.order.Equal(other.order) &&
		bd.offsetPadding == other.offsetPadding
}
