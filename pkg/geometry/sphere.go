package geometry

import (
	"fmt"
	"math"

	"github.com/IndaPlus23/nilsmal-raytracer/pkg/core"
)

// Sphere represents a sphere shape with a diffuse color source and a mirror
// reflectivity in [0, 1]. Spheres are immutable once the scene is built.
type Sphere struct {
	Center  core.Vec3
	Radius  float64
	Diffuse ColorSource
	Mirror  float64
}

// NewSphere creates a sphere with a uniform diffuse color
func NewSphere(center core.Vec3, radius float64, diffuse core.Vec3, mirror float64) *Sphere {
	return &Sphere{
		Center:  center,
		Radius:  radius,
		Diffuse: NewSolidColor(diffuse),
		Mirror:  mirror,
	}
}

// NewCheckeredSphere creates a sphere with a procedural checkerboard diffuse color
func NewCheckeredSphere(center core.Vec3, radius float64, diffuse core.Vec3, mirror float64) *Sphere {
	return &Sphere{
		Center:  center,
		Radius:  radius,
		Diffuse: NewCheckerColor(diffuse),
		Mirror:  mirror,
	}
}

// Validate reports whether the sphere is well-formed
func (s *Sphere) Validate() error {
	if s.Radius <= 0 {
		return fmt.Errorf("sphere radius must be positive, got %g", s.Radius)
	}
	if s.Mirror < 0 || s.Mirror > 1 {
		return fmt.Errorf("sphere mirror must be in [0, 1], got %g", s.Mirror)
	}
	if s.Diffuse == nil {
		return fmt.Errorf("sphere is missing a diffuse color source")
	}
	return nil
}

// Intersect tests every ray in the batch against the sphere and returns one
// parametric distance per ray, or core.FarAway for rays that miss.
//
// Quadratic ray-sphere form: with oc = origin - center, b = 2*dir·oc and
// c = oc·oc - r², the roots are h = (-b ± sqrt(b²-4c))/2. The nearer positive
// root wins; when the near root lies behind the origin the far root is used,
// so a ray starting inside the sphere hits its exit point. Tangent rays
// (zero discriminant) count as misses: the strict disc > 0 and h > 0
// inequalities are intentional policy, not an oversight.
func (s *Sphere) Intersect(origin, dir core.Vec3Batch) []float64 {
	oc := origin.Sub(core.Splat(s.Center, 1))
	b := dir.Dot(oc)
	c := oc.Dot(oc)
	rr := s.Radius * s.Radius

	dist := make([]float64, dir.Len())
	for i := range dist {
		ci := c[0]
		if len(c) > 1 {
			ci = c[i]
		}
		bi := 2 * b[i]

		disc := bi*bi - 4*(ci-rr)
		h := core.FarAway
		if disc > 0 {
			sq := math.Sqrt(disc)
			h0 := (-bi - sq) / 2
			h1 := (-bi + sq) / 2
			h = h1
			if h0 > 0 && h0 < h1 {
				h = h0
			}
			if h <= 0 {
				h = core.FarAway
			}
		}
		dist[i] = h
	}
	return dist
}
