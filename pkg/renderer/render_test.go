package renderer

import (
	"bytes"
	"testing"

	"github.com/IndaPlus23/nilsmal-raytracer/pkg/core"
	"github.com/IndaPlus23/nilsmal-raytracer/pkg/geometry"
)

func renderTestScene() *testScene {
	return &testScene{
		spheres: []*geometry.Sphere{
			geometry.NewSphere(core.NewVec3(0, 0, 5), 1, core.NewVec3(1, 0, 0), 0.5),
			geometry.NewSphere(core.NewVec3(1.5, 0, 6), 1, core.NewVec3(0, 0, 1), 0),
		},
		light:  core.NewVec3(0, 5, 0),
		camera: core.NewVec3(0, 0, 0),
	}
}

func TestRender_ImageDimensions(t *testing.T) {
	config := Config{
		Width:      64,
		Height:     48,
		Screen:     ScreenForAspect(64.0 / 48.0),
		MaxBounces: 2,
		NumWorkers: 2,
	}
	rt := NewRaytracer(renderTestScene(), config, discardLogger{})

	img, stats, err := rt.Render()
	if err != nil {
		t.Fatalf("Unexpected render error: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 64 || bounds.Dy() != 48 {
		t.Errorf("Expected 64x48 image, got %dx%d", bounds.Dx(), bounds.Dy())
	}
	if stats.TotalRays != 64*48 {
		t.Errorf("Expected %d primary rays, got %d", 64*48, stats.TotalRays)
	}
	if stats.Bands != 3 {
		t.Errorf("Expected 3 row bands for 48 rows, got %d", stats.Bands)
	}
}

func TestRender_DeterministicAcrossWorkerCounts(t *testing.T) {
	config := Config{
		Width:      32,
		Height:     32,
		Screen:     ScreenForAspect(1),
		MaxBounces: 2,
	}

	config.NumWorkers = 1
	imgSerial, _, err := NewRaytracer(renderTestScene(), config, discardLogger{}).Render()
	if err != nil {
		t.Fatalf("Unexpected render error: %v", err)
	}

	config.NumWorkers = 4
	imgParallel, _, err := NewRaytracer(renderTestScene(), config, discardLogger{}).Render()
	if err != nil {
		t.Fatalf("Unexpected render error: %v", err)
	}

	if !bytes.Equal(imgSerial.Pix, imgParallel.Pix) {
		t.Error("Expected identical pixels regardless of worker count")
	}
}

func TestRender_InvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		config Config
	}{
		{"zero width", Config{Width: 0, Height: 10, Screen: ScreenForAspect(1)}},
		{"negative height", Config{Width: 10, Height: -1, Screen: ScreenForAspect(1)}},
		{"empty screen", Config{Width: 10, Height: 10}},
		{"negative bounces", Config{Width: 10, Height: 10, Screen: ScreenForAspect(1), MaxBounces: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := NewRaytracer(renderTestScene(), tt.config, discardLogger{})
			if _, _, err := rt.Render(); err == nil {
				t.Error("Expected config validation error, got none")
			}
		})
	}
}
