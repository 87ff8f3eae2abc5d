package langid

import "math"

// Vector is a sparse feature vector. Indices are sorted ascending and hold
// the positions of non-zero values; Size is the full dimensionality of the
// fitted feature space.
type Vector struct {
	Indices []int
	Values  []float64
	Size    int
}

// Dense expands the vector into a []float64 of length Size.
func (v Vector) Dense() []float64 {
	out := make([]float64, v.Size)
	for i, idx := range v.Indices {
		out[idx] = v.Values[i]
	}
	return out
}

// Norm returns the Euclidean norm of the vector.
func (v Vector) Norm() float64 {
	var sum float64
	for _, val := range v.Values {
		sum += val * val
	}
	return math.Sqrt(sum)
}

// Scale multiplies every value in place by f.
func (v Vector) Scale(f float64) {
	for i := range v.Values {
		v.Values[i] *= f
	}
}

// NNZ returns the number of non-zero entries.
func (v Vector) NNZ() int {
	return len(v.Indices)
}
