// Package precision defines the element type tags carried by tensor
// descriptors. The layout core stores and compares tags; it never
// interprets their semantics.
package precision

// Precision identifies the element type of a tensor.
type Precision int

// Supported element precisions.
const (
	Unspecified Precision = iota
	FP32
	FP16
	BF16
	I8
	U8
	I16
	U16
	I32
	I64
	Bool
)

// Size returns the byte size of one element.
func (p Precision) Size() int {
	switch p {
	case FP32, I32:
		return 4
	case FP16, BF16, I16, U16:
		return 2
	case I64:
		return 8
	case I8, U8, Bool:
		return 1
	case Unspecified:
		return 0
	default:
		panic("unknown precision")
	}
}

// String returns a human-readable name for the precision.
func (p Precision) String() string {
	switch p {
	case Unspecified:
		return "UNSPECIFIED"
	case FP32:
		return "FP32"
	case FP16:
		return "FP16"
	case BF16:
		return "BF16"
	case I8:
		return "I8"
	case U8:
		return "U8"
	case I16:
		return "I16"
	case U16:
		return "U16"
	case I32:
		return "I32"
	case I64:
		return "I64"
	case Bool:
		return "BOOL"
	default:
		return "UNKNOWN"
	}
}

// IsFloat reports whether the precision is a floating-point type.
func (p Precision) IsFloat() bool {
	switch p {
	case FP32, FP16, BF16:
		return true
	default:
		return false
	}
}
