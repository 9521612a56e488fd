package tilecode

import "github.com/bits-and-blooms/bitset"

// ActiveSet materializes tile indices as a one-hot activation vector over
// [0, size). Useful when a consumer wants set operations (intersection
// with eligibility masks, popcount) rather than the raw index list.
func ActiveSet(indices []int, size uint) *bitset.BitSet {
	b := bitset.New(size)
	for _, idx := range indices {
		b.Set(uint(idx))
	}
	return b
}

// SparseDot computes the inner product of the sparse binary vector given
// by indices with a dense weight vector: the value estimate of a linear
// learner over tile features. Indices must be within len(weights).
func SparseDot(indices []int, weights []float64) float64 {
	var sum float64
	for _, idx := range indices {
		sum += weights[idx]
	}
	return sum
}
