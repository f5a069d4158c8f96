package layout

import "testing"

func TestDimsNumElements(t *testing.T) {
	tests := []struct {
		dims Dims
		want int
	}{
		{Dims{}, 1},
		{Dims{5}, 5},
		{Dims{2, 3}, 6},
		{Dims{1, 3, 4, 4}, 48},
	}

	for _, tt := range tests {
		if got := tt.dims.NumElements(); got != tt.want {
			t.Errorf("Dims%v.NumElements() = %d, want %d", tt.dims, got, tt.want)
		}
	}
}

func TestDimsStrides(t *testing.T) {
	tests := []struct {
		dims Dims
		want Dims
	}{
		{Dims{}, Dims{}},
		{Dims{7}, Dims{1}},
		{Dims{2, 3}, Dims{3, 1}},
		{Dims{1, 3, 4, 4}, Dims{48, 16, 4, 1}},
		{Dims{1, 2, 4, 4, 8}, Dims{256, 128, 32, 8, 1}},
	}

	for _, tt := range tests {
		if got := tt.dims.Strides(); !got.Equal(tt.want) {
			t.Errorf("Dims%v.Strides() = %v, want %v", tt.dims, got, tt.want)
		}
	}
}

func TestDimsValidate(t *testing.T) {
	if err := (Dims{1, 3, 4}).Validate(); err != nil {
		t.Errorf("valid dims rejected: %v", err)
	}
	if err := (Dims{1, 0, 4}).Validate(); err == nil {
		t.Error("zero dimension accepted")
	}
	if err := (Dims{-2}).Validate(); err == nil {
		t.Error("negative dimension accepted")
	}
}

func TestDimsCloneIndependent(t *testing.T) {
	orig := Dims{1, 2, 3}
	clone := orig.Clone()
	clone[0] = 9
	if orig[0] != 1 {
		t.Errorf("Clone shares backing array: orig = %v", orig)
	}
}

func TestDimsMax(t *testing.T) {
	tests := []struct {
		dims Dims
		want int
	}{
		{Dims{}, -1},
		{Dims{0}, 0},
		{Dims{0, 2, 3, 1}, 3},
		{Dims{0, 1, 2, 3, 1}, 3},
	}

	for _, tt := range tests {
		if got := tt.dims.Max(); got != tt.want {
			t.Errorf("Dims%v.Max() = %d, want %d", tt.dims, got, tt.want)
		}
	}
}
