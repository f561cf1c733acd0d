package renderer

import (
	"fmt"
	"math"

	"github.com/IndaPlus23/nilsmal-raytracer/pkg/core"
	"github.com/IndaPlus23/nilsmal-raytracer/pkg/geometry"
)

const (
	// surfaceEpsilon nudges shadow and reflection origins off the surface
	// along the normal to avoid immediate self-intersection (shadow acne).
	surfaceEpsilon = 1e-4

	// specularExponent is the Blinn-Phong highlight exponent
	specularExponent = 50.0
)

var (
	ambientColor  = core.NewVec3(0.05, 0.05, 0.05)
	specularColor = core.NewVec3(1, 1, 1)
)

// Config contains rendering configuration
type Config struct {
	Width      int          // Image width in pixels
	Height     int          // Image height in pixels
	Screen     ScreenBounds // Camera-plane rectangle the image maps onto
	MaxBounces int          // Reflection bounces beyond the primary ray
	NumWorkers int          // Parallel render workers (0 = CPU count)
}

// Validate reports whether the configuration can produce an image
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("image dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Screen.Left == c.Screen.Right || c.Screen.Top == c.Screen.Bottom {
		return fmt.Errorf("screen rectangle %+v is empty", c.Screen)
	}
	if c.MaxBounces < 0 {
		return fmt.Errorf("max bounces must be non-negative, got %d", c.MaxBounces)
	}
	return nil
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:      400,
		Height:     400,
		Screen:     ScreenForAspect(1),
		MaxBounces: 2,
	}
}

// Scene interface to avoid circular imports
type Scene interface {
	GetSpheres() []*geometry.Sphere
	GetLightPosition() core.Vec3
	GetCameraPosition() core.Vec3
}

// Raytracer renders a scene by tracing every pixel's primary ray in
// lock-step: distances, masks and colors are parallel arrays over the whole
// ray batch rather than per-ray values.
type Raytracer struct {
	scene  Scene
	config Config
	logger core.Logger
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene Scene, config Config, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Raytracer{scene: scene, config: config, logger: logger}
}

// Trace returns one accumulated color per ray. bounce counts reflection
// levels, zero for camera rays. Rays that hit nothing stay black; an empty
// scene therefore renders pure black.
func (rt *Raytracer) Trace(origin, dir core.Vec3Batch, bounce int) core.Vec3Batch {
	n := dir.Len()
	color := core.NewVec3Batch(n)

	spheres := rt.scene.GetSpheres()
	if len(spheres) == 0 {
		return color
	}

	// Per-ray nearest hit across the scene, a pairwise-minimum reduction
	distances := make([][]float64, len(spheres))
	nearest := core.Fill(n, core.FarAway)
	for si, sphere := range spheres {
		distances[si] = sphere.Intersect(origin, dir)
		core.MinInto(nearest, distances[si])
	}

	// The first sphere in scene order wins exact-distance ties, keeping the
	// resolution deterministic under floating-point equality.
	winner := make([]int, n)
	for i := range winner {
		winner[i] = -1
	}
	for si := range spheres {
		for i, d := range distances[si] {
			if winner[i] < 0 && d != core.FarAway && d == nearest[i] {
				winner[i] = si
			}
		}
	}

	// Each sphere shades only the compacted subset of rays it won; the
	// results scatter back into the full-width color batch.
	for si, sphere := range spheres {
		rays := wonRays(winner, si)
		if len(rays) == 0 {
			continue
		}
		shaded := rt.shade(si, sphere,
			origin.Gather(rays), dir.Gather(rays),
			core.GatherFloats(distances[si], rays), bounce)
		for gi, ri := range rays {
			color.Set(ri, shaded.At(gi))
		}
	}

	return color
}

// wonRays collects the ray indices whose nearest hit belongs to sphere si
func wonRays(winner []int, si int) []int {
	var rays []int
	for i, w := range winner {
		if w == si {
			rays = append(rays, i)
		}
	}
	return rays
}

// shade computes the lighting for the subset of rays sphere si won: ambient,
// shadow-masked Lambert diffuse, a recursive mirror term, and a shadow-masked
// Blinn-Phong highlight. Values accumulate unclamped; clamping happens once
// at image assembly.
func (rt *Raytracer) shade(si int, sphere *geometry.Sphere, origin, dir core.Vec3Batch, dist []float64, bounce int) core.Vec3Batch {
	spheres := rt.scene.GetSpheres()
	n := dir.Len()

	point := origin.AddScaled(dir, dist)
	normal := point.Sub(core.Splat(sphere.Center, 1)).Scale(1 / sphere.Radius)
	toLight := core.Splat(rt.scene.GetLightPosition(), 1).Sub(point).Normalize()
	toCamera := core.Splat(rt.scene.GetCameraPosition(), 1).Sub(point).Normalize()
	nudged := point.Add(normal.Scale(surfaceEpsilon))

	// Shadow test: a point sees the light only if this sphere's own hit from
	// the nudged point is the scene-wide nearest along the shadow ray. The
	// sphere identifies itself by its scene index, so identically defined
	// spheres cannot shadow-mask each other by mistake.
	lightNearest := core.Fill(n, core.FarAway)
	var own []float64
	for sj, other := range spheres {
		d := other.Intersect(nudged, toLight)
		core.MinInto(lightNearest, d)
		if sj == si {
			own = d
		}
	}
	lit := make([]float64, n)
	for i := range lit {
		if own[i] == lightNearest[i] {
			lit[i] = 1
		}
	}

	// Ambient
	color := core.Splat(ambientColor, n)

	// Lambert diffuse, zeroed where the point is shadowed
	lambert := normal.Dot(toLight)
	for i := range lambert {
		lambert[i] = math.Max(lambert[i], 0) * lit[i]
	}
	color = color.Add(sphere.Diffuse.ColorAt(point).ScaleFloats(lambert))

	// Mirror reflection, re-entering the tracer one bounce deeper. A zero
	// mirror coefficient skips the recursion entirely instead of tracing a
	// bounce just to multiply it away.
	if bounce < rt.config.MaxBounces && sphere.Mirror > 0 {
		twoDot := dir.Dot(normal)
		for i := range twoDot {
			twoDot[i] *= 2
		}
		reflected := dir.Sub(normal.ScaleFloats(twoDot)).Normalize()
		color = color.Add(rt.Trace(nudged, reflected, bounce+1).Scale(sphere.Mirror))
	}

	// Blinn-Phong specular highlight on the half-vector, shadow-masked
	half := toLight.Add(toCamera).Normalize()
	phong := normal.Dot(half)
	for i := range phong {
		p := math.Min(math.Max(phong[i], 0), 1)
		phong[i] = math.Pow(p, specularExponent) * lit[i]
	}
	color = color.Add(core.Splat(specularColor, 1).ScaleFloats(phong))

	return color
}

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}
