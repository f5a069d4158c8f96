// Package layout maps logical tensor coordinates onto flat linear memory
// under permuted, padded and blocked physical arrangements.
package layout

// Layout names a canonical memory arrangement for tensor data.
type Layout int

// Symbolic layout tags.
const (
	// Any means the layout has not been established yet.
	Any Layout = iota
	// C is the scalar / 1-D dense layout.
	C
	// NC is the 2-D row-major layout.
	NC
	// CN is the 2-D column-major layout.
	CN
	// HW is the 2-D row-major layout for spatial pairs.
	HW
	// CHW is the 3-D packed layout.
	CHW
	// NCHW is the 4-D row-major layout (batch, channel, height, width).
	NCHW
	// NHWC is the 4-D channel-last layout.
	NHWC
	// OIHW is the 4-D row-major layout for convolution weights.
	OIHW
	// Blocked is any arrangement that matches no canonical named pattern.
	Blocked
)

// String returns a human-readable name for the layout.
func (l Layout) String() string {
	switch l {
	case Any:
		return "ANY"
	case C:
		return "C"
	case NC:
		return "NC"
	case CN:
		return "CN"
	case HW:
		return "HW"
	case CHW:
		return "CHW"
	case NCHW:
		return "NCHW"
	case NHWC:
		return "NHWC"
	case OIHW:
		return "OIHW"
	case Blocked:
		return "BLOCKED"
	default:
		return "UNKNOWN"
	}
}

// LayoutForDims returns the default dense layout for a dimension count.
func LayoutForDims(dims Dims) Layout {
	switch len(dims) {
	case 1:
		return C
	case 2:
		return NC
	case 3:
		return CHW
	case 4:
		return NCHW
	default:
		return Blocked
	}
}
