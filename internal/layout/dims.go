package layout

import "fmt"

// Dims holds tensor dimension sizes, one entry per axis.
// The same type carries logical dims, block dims, orders and strides,
// mirroring the single size-vector convention used across the library.
type Dims []int

// NumElements returns the total number of elements spanned by the dims.
func (d Dims) NumElements() int {
	if len(d) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range d {
		n *= dim
	}
	return n
}

// Validate checks that every dimension is positive.
func (d Dims) Validate() error {
	for i, dim := range d {
		if dim <= 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two dim sequences are equal element-wise.
func (d Dims) Equal(other Dims) bool {
	if len(d) != len(other) {
		return false
	}
	for i := range d {
		if d[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the dims.
func (d Dims) Clone() Dims {
	if d == nil {
		return nil
	}
	clone := make(Dims, len(d))
	copy(clone, d)
	return clone
}

// Strides calculates dense row-major strides for the dims.
// The last axis has stride 1; each preceding axis's stride is the next
// stride times the next axis's size.
func (d Dims) Strides() Dims {
	strides := make(Dims, len(d))
	if len(d) == 0 {
		return strides
	}

	strides[len(d)-1] = 1
	for i := len(d) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * d[i+1]
	}
	return strides
}

// Max returns the largest entry, or -1 for an empty sequence.
func (d Dims) Max() int {
	max := -1
	for _, v := range d {
		if v > max {
			max = v
		}
	}
	return max
}
