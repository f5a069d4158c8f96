package layout

// Logical axis positions of a 4-D tensor.
const (
	posN = 0
	posC = 1
	posH = 2
	posW = 3
)

// dimPositions lists, per supported layout, the logical axes from
// fastest to slowest varying in memory.
var dimPositions = map[Layout]Dims{
	NCHW: {posW, posH, posC, posN},
	NHWC: {posC, posW, posH, posN},
}

// OffsetCounter resolves coordinates to linear offsets for exactly two
// hard-coded dense 4-D layouts. It has no padding or blocking support
// and shares nothing with TensorDesc; the multiplier table is fixed at
// construction and Offset never fails.
type OffsetCounter struct {
	layout Layout
	dims   Dims
	muls   Dims
}

// NewOffsetCounter builds the per-dimension multiplier table for the
// given layout and dims. Only NCHW and NHWC are supported.
func NewOffsetCounter(l Layout, dims Dims) (OffsetCounter, error) {
	positions, ok := dimPositions[l]
	if !ok {
		return OffsetCounter{}, errMismatch("offset counter supports NCHW and NHWC only, got %v", l)
	}
	if len(dims) != len(positions) {
		return OffsetCounter{}, errMismatch("dims and format are inconsistent: got %d dims, layout requires %d", len(dims), len(positions))
	}

	muls := make(Dims, len(dims))
	mul := 1
	for i := range dims {
		index := positions[i]
		muls[index] = mul
		mul *= dims[index]
	}
	return OffsetCounter{layout: l, dims: dims.Clone(), muls: muls}, nil
}

// Layout returns the layout the counter was built for.
func (c OffsetCounter) Layout() Layout { return c.layout }

// Dims returns the dims the counter was built for.
func (c OffsetCounter) Dims() Dims { return c.dims }

// Offset resolves a coordinate, given in logical order with the
// innermost-fastest dimension last (N,C,H,W), to a linear offset.
func (c OffsetCounter) Offset(pos Dims) int {
	res := 0
	for i := range pos {
		res += pos[i] * c.muls[i]
	}
	return res
}
