package precision

import "testing"

func TestPrecisionSize(t *testing.T) {
	tests := []struct {
		prec Precision
		size int
	}{
		{Unspecified, 0},
		{FP32, 4},
		{FP16, 2},
		{BF16, 2},
		{I8, 1},
		{U8, 1},
		{I16, 2},
		{U16, 2},
		{I32, 4},
		{I64, 8},
		{Bool, 1},
	}

	for _, tt := range tests {
		if got := tt.prec.Size(); got != tt.size {
			t.Errorf("%s.Size() = %d, want %d", tt.prec, got, tt.size)
		}
	}
}

func TestPrecisionString(t *testing.T) {
	tests := []struct {
		prec Precision
		str  string
	}{
		{Unspecified, "UNSPECIFIED"},
		{FP32, "FP32"},
		{FP16, "FP16"},
		{BF16, "BF16"},
		{I8, "I8"},
		{U8, "U8"},
		{I32, "I32"},
		{I64, "I64"},
		{Bool, "BOOL"},
	}

	for _, tt := range tests {
		if got := tt.prec.String(); got != tt.str {
			t.Errorf("String() = %q, want %q", got, tt.str)
		}
	}
}

func TestPrecisionIsFloat(t *testing.T) {
	floats := []Precision{FP32, FP16, BF16}
	for _, p := range floats {
		if !p.IsFloat() {
			t.Errorf("%s.IsFloat() = false, want true", p)
		}
	}

	ints := []Precision{Unspecified, I8, U8, I16, U16, I32, I64, Bool}
	for _, p := range ints {
		if p.IsFloat() {
			t.Errorf("%s.IsFloat() = true, want false", p)
		}
	}
}
