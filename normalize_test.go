package penguinplot

import (
	"math"
	"testing"
)

func TestNormalize_MapsIntoRange(t *testing.T) {
	nan := math.NaN()

	tests := []struct {
		name   string
		values []float64
		lo, hi float64
		want   []float64
	}{
		{
			name:   "linear spread",
			values: []float64{0, 5, 10},
			lo:     0.7, hi: 1.3,
			want: []float64{0.7, 1.0, 1.3},
		},
		{
			name:   "constant column uses midpoint",
			values: []float64{4, 4, 4},
			lo:     0.5, hi: 1.5,
			want: []float64{1.0, 1.0, 1.0},
		},
		{
			name:   "single value is degenerate",
			values: []float64{42},
			lo:     0.7, hi: 1.3,
			want: []float64{1.0},
		},
		{
			name:   "all missing falls back to lo",
			values: []float64{nan, nan, nan},
			lo:     0.7, hi: 1.3,
			want: []float64{0.7, 0.7, 0.7},
		},
		{
			name:   "missing positions fall back to lo",
			values: []float64{0, nan, 10},
			lo:     0.7, hi: 1.3,
			want: []float64{0.7, 0.7, 1.3},
		},
		{
			name:   "degenerate range includes missing positions",
			values: []float64{7, nan, 7},
			lo:     0.7, hi: 1.3,
			want: []float64{1.0, 1.0, 1.0},
		},
		{
			name:   "inverted range still holds algebraically",
			values: []float64{0, 10},
			lo:     1.3, hi: 0.7,
			want: []float64{1.3, 0.7},
		},
		{
			name:   "empty input",
			values: nil,
			lo:     0.7, hi: 1.3,
			want: []float64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.values, tt.lo, tt.hi)
			if len(got) != len(tt.values) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.values))
			}
			for i := range tt.want {
				if math.Abs(got[i]-tt.want[i]) > 1e-12 {
					t.Errorf("out[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestNormalize_OutputBoundedAndMonotonic(t *testing.T) {
	values := []float64{3.1, -2, 7.7, 0, 7.7, 4.4, -2}
	lo, hi := 0.5, 1.5

	got := Normalize(values, lo, hi)
	for i, v := range got {
		if v < lo || v > hi {
			t.Errorf("out[%d] = %v outside [%v, %v]", i, v, lo, hi)
		}
	}
	for i := range values {
		for j := range values {
			if values[i] <= values[j] && got[i] > got[j]+1e-12 {
				t.Errorf("order violated: v[%d]=%v <= v[%d]=%v but out %v > %v",
					i, values[i], j, values[j], got[i], got[j])
			}
		}
	}
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	values := []float64{1, 2, 3}
	Normalize(values, 0.7, 1.3)
	if values[0] != 1 || values[1] != 2 || values[2] != 3 {
		t.Errorf("input mutated: %v", values)
	}
}
