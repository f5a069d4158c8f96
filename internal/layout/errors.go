package layout

import "fmt"

// ErrKind classifies descriptor failures.
type ErrKind int

// Descriptor error kinds.
const (
	// ErrMalformedDesc: block dims, order, strides and padding sequences
	// disagree in length, or a required sequence is missing.
	ErrMalformedDesc ErrKind = iota
	// ErrDimsFormatMismatch: dims length disagrees with the arity a layout
	// requires, or with max(order)+1 for an explicit blocking descriptor.
	ErrDimsFormatMismatch
	// ErrUndefinedLayout: offset requested before a layout was established.
	ErrUndefinedLayout
	// ErrNonReshapable: reshape requested while leading data padding is set.
	ErrNonReshapable
)

// String returns a short name for the error kind.
func (k ErrKind) String() string {
	switch k {
	case ErrMalformedDesc:
		return "malformed descriptor"
	case ErrDimsFormatMismatch:
		return "dims/format mismatch"
	case ErrUndefinedLayout:
		return "undefined layout"
	case ErrNonReshapable:
		return "non-reshapable descriptor"
	default:
		return "unknown error"
	}
}

// DescError reports a descriptor construction or query failure.
// Failures are synchronous and deterministic: the same inputs fail the
// same way on every call, so there is nothing to retry.
type DescError struct {
	Kind    ErrKind
	Details string
}

// Error implements the error interface.
func (e *DescError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Details)
}

func errMalformed(format string, args ...any) error {
	return &DescError{Kind: ErrMalformedDesc, Details: fmt.Sprintf(format, args...)}
}

func errMismatch(format string, args ...any) error {
	return &DescError{Kind: ErrDimsFormatMismatch, Details: fmt.Sprintf(format, args...)}
}
