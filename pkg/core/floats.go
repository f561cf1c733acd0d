package core

// FarAway is the sentinel distance for rays that intersect nothing. It is
// large enough to lose every pairwise-minimum against a real hit, which keeps
// the per-ray nearest-hit selection branchless.
const FarAway = 1.0e39

// Fill returns a slice of n copies of v.
func Fill(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// MinInto lowers each dst element to the matching src element where src is
// smaller. Both slices must have the same length.
func MinInto(dst, src []float64) {
	for i, v := range src {
		if v < dst[i] {
			dst[i] = v
		}
	}
}

// GatherFloats returns the elements of src at the given indices.
func GatherFloats(src []float64, indices []int) []float64 {
	out := make([]float64, len(indices))
	for i, idx := range indices {
		out[i] = src[idx]
	}
	return out
}
