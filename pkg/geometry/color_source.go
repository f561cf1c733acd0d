package geometry

import (
	"math"

	"github.com/IndaPlus23/nilsmal-raytracer/pkg/core"
)

// ColorSource provides the diffuse color of a surface as a function of
// position. Spheres differ only in this one capability, so the checker
// variant is a second implementation rather than a subtype.
type ColorSource interface {
	// ColorAt returns one diffuse color per point in the batch
	ColorAt(points core.Vec3Batch) core.Vec3Batch
}

// SolidColor is a uniform diffuse color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// ColorAt returns the solid color for every point
func (s *SolidColor) ColorAt(points core.Vec3Batch) core.Vec3Batch {
	return core.Splat(s.Color, points.Len())
}

// CheckerColor alternates between a base color and black on a world-space
// checkerboard: a point keeps the base color where floor(2x) and floor(2z)
// share parity, and goes black where they differ.
type CheckerColor struct {
	Color core.Vec3
}

// NewCheckerColor creates a new checkerboard color source
func NewCheckerColor(color core.Vec3) *CheckerColor {
	return &CheckerColor{Color: color}
}

// ColorAt returns the checkered color for every point
func (c *CheckerColor) ColorAt(points core.Vec3Batch) core.Vec3Batch {
	out := core.NewVec3Batch(points.Len())
	for i := 0; i < points.Len(); i++ {
		if checkerParity(points.X[i]) == checkerParity(points.Z[i]) {
			out.Set(i, c.Color)
		}
	}
	return out
}

// checkerParity returns floor(2v) mod 2, in {0, 1} for negative v too.
func checkerParity(v float64) int {
	m := int(math.Floor(2*v)) % 2
	if m < 0 {
		m += 2
	}
	return m
}
