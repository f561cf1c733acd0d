package scene

import (
	"github.com/IndaPlus23/nilsmal-raytracer/pkg/core"
	"github.com/IndaPlus23/nilsmal-raytracer/pkg/geometry"
	"github.com/IndaPlus23/nilsmal-raytracer/pkg/renderer"
)

// NewDefaultScene creates the classic scene: three glossy spheres floating
// over a giant checkered floor sphere, lit from above and behind the camera.
func NewDefaultScene() *Scene {
	config := renderer.Config{
		Width:      400,
		Height:     400,
		MaxBounces: 2,
	}
	config.Screen = renderer.ScreenForAspect(float64(config.Width) / float64(config.Height))

	return &Scene{
		Spheres: []*geometry.Sphere{
			geometry.NewSphere(core.NewVec3(0.75, 0.1, 1), 0.6, core.NewVec3(0, 0, 1), 0.7),
			geometry.NewSphere(core.NewVec3(-0.75, 0.1, 2.25), 0.6, core.NewVec3(0.3, 0.123, 0.321), 0.7),
			geometry.NewSphere(core.NewVec3(-2.75, 0.1, 3.5), 0.6, core.NewVec3(1, 0.5, 0.25), 0.7),
			// The floor is a sphere so large its top looks flat from the camera
			geometry.NewCheckeredSphere(core.NewVec3(0, -99999.5, 0), 99999, core.NewVec3(0.75, 0.75, 0.75), 0.25),
		},
		LightPosition:  core.NewVec3(5, 5, -10),
		CameraPosition: core.NewVec3(0, 0.35, -1),
		Config:         config,
	}
}

// NewSingleSphereScene creates a matte red sphere straight ahead of the
// camera with the light directly overhead, useful for sanity checks.
func NewSingleSphereScene() *Scene {
	return &Scene{
		Spheres: []*geometry.Sphere{
			geometry.NewSphere(core.NewVec3(0, 0, 5), 1, core.NewVec3(1, 0, 0), 0),
		},
		LightPosition:  core.NewVec3(0, 5, 5),
		CameraPosition: core.NewVec3(0, 0, 0),
		Config: renderer.Config{
			Width:      400,
			Height:     400,
			Screen:     renderer.ScreenBounds{Left: -1, Top: 1, Right: 1, Bottom: -1},
			MaxBounces: 2,
		},
	}
}
