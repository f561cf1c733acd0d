package core

import (
	"fmt"
	"math"
)

// Vec3Batch is a structure-of-arrays batch of 3D vectors: one vector per ray,
// stored as three parallel component slices of identical length. Every
// operation is element-wise across the batch and produces a new batch, so the
// same formulas apply to a single ray and to width*height rays at once.
//
// Binary operations accept operands of equal length, or a length-1 operand
// that broadcasts against the other. A length mismatch beyond that is a
// programming error and panics.
type Vec3Batch struct {
	X, Y, Z []float64
}

// NewVec3Batch creates a zeroed batch of n vectors.
func NewVec3Batch(n int) Vec3Batch {
	return Vec3Batch{
		X: make([]float64, n),
		Y: make([]float64, n),
		Z: make([]float64, n),
	}
}

// Splat creates a batch of n copies of v.
func Splat(v Vec3, n int) Vec3Batch {
	b := NewVec3Batch(n)
	for i := 0; i < n; i++ {
		b.X[i], b.Y[i], b.Z[i] = v.X, v.Y, v.Z
	}
	return b
}

// Len returns the number of vectors in the batch.
func (b Vec3Batch) Len() int {
	return len(b.X)
}

// At returns the vector at index i.
func (b Vec3Batch) At(i int) Vec3 {
	return Vec3{X: b.X[i], Y: b.Y[i], Z: b.Z[i]}
}

// Set stores v at index i.
func (b Vec3Batch) Set(i int, v Vec3) {
	b.X[i], b.Y[i], b.Z[i] = v.X, v.Y, v.Z
}

// broadcastLen returns the common element count of two operand lengths.
func broadcastLen(a, b int) int {
	switch {
	case a == b:
		return a
	case a == 1:
		return b
	case b == 1:
		return a
	}
	panic(fmt.Sprintf("core: mismatched batch lengths %d and %d", a, b))
}

// bidx maps a broadcast element index onto an operand of length n.
func bidx(i, n int) int {
	if n == 1 {
		return 0
	}
	return i
}

// Add returns the element-wise sum of two batches
func (b Vec3Batch) Add(other Vec3Batch) Vec3Batch {
	n := broadcastLen(b.Len(), other.Len())
	out := NewVec3Batch(n)
	for i := 0; i < n; i++ {
		j, k := bidx(i, b.Len()), bidx(i, other.Len())
		out.X[i] = b.X[j] + other.X[k]
		out.Y[i] = b.Y[j] + other.Y[k]
		out.Z[i] = b.Z[j] + other.Z[k]
	}
	return out
}

// Sub returns the element-wise difference of two batches
func (b Vec3Batch) Sub(other Vec3Batch) Vec3Batch {
	n := broadcastLen(b.Len(), other.Len())
	out := NewVec3Batch(n)
	for i := 0; i < n; i++ {
		j, k := bidx(i, b.Len()), bidx(i, other.Len())
		out.X[i] = b.X[j] - other.X[k]
		out.Y[i] = b.Y[j] - other.Y[k]
		out.Z[i] = b.Z[j] - other.Z[k]
	}
	return out
}

// Scale returns the batch with every vector scaled by a single scalar
func (b Vec3Batch) Scale(scalar float64) Vec3Batch {
	n := b.Len()
	out := NewVec3Batch(n)
	for i := 0; i < n; i++ {
		out.X[i] = b.X[i] * scalar
		out.Y[i] = b.Y[i] * scalar
		out.Z[i] = b.Z[i] * scalar
	}
	return out
}

// ScaleFloats returns the batch with each vector scaled by its own scalar
func (b Vec3Batch) ScaleFloats(scalars []float64) Vec3Batch {
	n := broadcastLen(b.Len(), len(scalars))
	out := NewVec3Batch(n)
	for i := 0; i < n; i++ {
		j, k := bidx(i, b.Len()), bidx(i, len(scalars))
		out.X[i] = b.X[j] * scalars[k]
		out.Y[i] = b.Y[j] * scalars[k]
		out.Z[i] = b.Z[j] * scalars[k]
	}
	return out
}

// Dot returns one dot product per ray
func (b Vec3Batch) Dot(other Vec3Batch) []float64 {
	n := broadcastLen(b.Len(), other.Len())
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		j, k := bidx(i, b.Len()), bidx(i, other.Len())
		out[i] = b.X[j]*other.X[k] + b.Y[j]*other.Y[k] + b.Z[j]*other.Z[k]
	}
	return out
}

// AddScaled returns b + dir*t with one t per ray, the point-along-ray form
func (b Vec3Batch) AddScaled(dir Vec3Batch, t []float64) Vec3Batch {
	n := broadcastLen(broadcastLen(b.Len(), dir.Len()), len(t))
	out := NewVec3Batch(n)
	for i := 0; i < n; i++ {
		j, k, m := bidx(i, b.Len()), bidx(i, dir.Len()), bidx(i, len(t))
		out.X[i] = b.X[j] + dir.X[k]*t[m]
		out.Y[i] = b.Y[j] + dir.Y[k]*t[m]
		out.Z[i] = b.Z[j] + dir.Z[k]*t[m]
	}
	return out
}

// NormSquared returns each vector's squared magnitude, its dot with itself
func (b Vec3Batch) NormSquared() []float64 {
	n := b.Len()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = b.X[i]*b.X[i] + b.Y[i]*b.Y[i] + b.Z[i]*b.Z[i]
	}
	return out
}

// Normalize returns each vector scaled to unit length. A zero-length vector
// gets a substitute magnitude of 1 and stays zero instead of producing NaNs.
func (b Vec3Batch) Normalize() Vec3Batch {
	n := b.Len()
	out := NewVec3Batch(n)
	for i := 0; i < n; i++ {
		mag := math.Sqrt(b.X[i]*b.X[i] + b.Y[i]*b.Y[i] + b.Z[i]*b.Z[i])
		if mag == 0 {
			mag = 1
		}
		out.X[i] = b.X[i] / mag
		out.Y[i] = b.Y[i] / mag
		out.Z[i] = b.Z[i] / mag
	}
	return out
}

// Gather returns a new batch holding the vectors at the given indices.
// Length-1 batches broadcast, so a splatted origin gathers to itself.
func (b Vec3Batch) Gather(indices []int) Vec3Batch {
	out := NewVec3Batch(len(indices))
	for i, idx := range indices {
		j := bidx(idx, b.Len())
		out.X[i] = b.X[j]
		out.Y[i] = b.Y[j]
		out.Z[i] = b.Z[j]
	}
	return out
}
