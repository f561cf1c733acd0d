package scene

import (
	"fmt"

	"github.com/IndaPlus23/nilsmal-raytracer/pkg/core"
	"github.com/IndaPlus23/nilsmal-raytracer/pkg/geometry"
	"github.com/IndaPlus23/nilsmal-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering: an ordered sphere
// list, one point light, the camera position, and the render configuration.
// It is built once and never mutated during rendering.
type Scene struct {
	Spheres        []*geometry.Sphere
	LightPosition  core.Vec3
	CameraPosition core.Vec3
	Config         renderer.Config
}

// GetSpheres returns the ordered sphere list
func (s *Scene) GetSpheres() []*geometry.Sphere {
	return s.Spheres
}

// GetLightPosition returns the point light position
func (s *Scene) GetLightPosition() core.Vec3 {
	return s.LightPosition
}

// GetCameraPosition returns the camera position
func (s *Scene) GetCameraPosition() core.Vec3 {
	return s.CameraPosition
}

// Validate checks the scene and its configuration before rendering starts,
// so malformed input fails fast instead of mid-batch.
func (s *Scene) Validate() error {
	for i, sphere := range s.Spheres {
		if err := sphere.Validate(); err != nil {
			return fmt.Errorf("sphere %d: %w", i, err)
		}
	}
	if err := s.Config.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Resize sets the output dimensions and rescales the screen rectangle to the
// new aspect ratio, keeping its vertical center.
func (s *Scene) Resize(width, height int) {
	centerY := (s.Config.Screen.Top + s.Config.Screen.Bottom) / 2
	aspect := float64(width) / float64(height)

	s.Config.Width = width
	s.Config.Height = height
	s.Config.Screen = renderer.ScreenBounds{
		Left:   -1,
		Top:    1/aspect + centerY,
		Right:  1,
		Bottom: -1/aspect + centerY,
	}
}
