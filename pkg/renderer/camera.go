package renderer

import (
	"github.com/IndaPlus23/nilsmal-raytracer/pkg/core"
)

// ScreenBounds is the camera-plane rectangle the image maps onto, in
// camera-plane units. Top may exceed Bottom; rows run top to bottom.
type ScreenBounds struct {
	Left, Top, Right, Bottom float64
}

// ScreenForAspect returns the default screen rectangle for an image aspect
// ratio: unit-wide, with the slight upward offset the classic scene uses.
func ScreenForAspect(aspect float64) ScreenBounds {
	return ScreenBounds{
		Left:   -1,
		Top:    1/aspect + 0.25,
		Right:  1,
		Bottom: -1/aspect + 0.25,
	}
}

// Camera generates the primary ray batch covering every pixel. The screen
// plane sits at unit distance in front of the camera along +z.
type Camera struct {
	position core.Vec3
	config   Config
}

// NewCamera creates a camera at the given position
func NewCamera(position core.Vec3, config Config) *Camera {
	return &Camera{position: position, config: config}
}

// Rays returns the origin and direction batches for pixel rows
// [rowStart, rowEnd). Pixels are laid out row-major with x varying fastest,
// matching the image buffer. The origin is a length-1 batch that broadcasts
// across the directions.
func (c *Camera) Rays(rowStart, rowEnd int) (origin, dir core.Vec3Batch) {
	w, h := c.config.Width, c.config.Height
	s := c.config.Screen
	planeZ := c.position.Z + 1

	pixels := core.NewVec3Batch((rowEnd - rowStart) * w)
	i := 0
	for y := rowStart; y < rowEnd; y++ {
		py := linspace(s.Top, s.Bottom, h, y)
		for x := 0; x < w; x++ {
			px := linspace(s.Left, s.Right, w, x)
			pixels.Set(i, core.NewVec3(px, py, planeZ))
			i++
		}
	}

	origin = core.Splat(c.position, 1)
	dir = pixels.Sub(origin).Normalize()
	return origin, dir
}

// linspace returns the i-th of n evenly spaced values from a to b inclusive
func linspace(a, b float64, n, i int) float64 {
	if n <= 1 {
		return a
	}
	return a + (b-a)*float64(i)/float64(n-1)
}
