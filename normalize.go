package penguinplot

import "math"

// Normalize maps a numeric vector into the visual-scale range [lo, hi].
// Missing values are represented as NaN. The output always has the same
// length as the input and the input is never mutated.
//
// Rules:
//   - every value missing: constant lo for every position
//   - max == min over the non-missing values: constant (lo+hi)/2 for every
//     position, missing ones included
//   - otherwise each non-missing v maps to lo + (v-min)/(max-min)*(hi-lo),
//     which is monotonic non-decreasing in v; missing positions fall back
//     to lo
//
// An inverted range (lo > hi) is accepted; the formula holds algebraically.
func Normalize(values []float64, lo, hi float64) []float64 {
	out := make([]float64, len(values))

	min, max := math.NaN(), math.NaN()
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(min) || v < min {
			min = v
		}
		if math.IsNaN(max) || v > max {
			max = v
		}
	}

	if math.IsNaN(min) {
		// Entirely missing column.
		for i := range out {
			out[i] = lo
		}
		return out
	}

	if min == max {
		mid := (lo + hi) / 2
		for i := range out {
			out[i] = mid
		}
		return out
	}

	span := max - min
	for i, v := range values {
		if math.IsNaN(v) {
			out[i] = lo
			continue
		}
		out[i] = lo + (v-min)/span*(hi-lo)
	}
	return out
}
