package renderer

import (
	"image"
	"image/color"
	"time"

	"github.com/IndaPlus23/nilsmal-raytracer/pkg/core"
)

// bandRows is the row height of one worker task
const bandRows = 16

// RenderStats summarizes a completed render
type RenderStats struct {
	TotalRays int           // Primary rays traced (width * height)
	Bands     int           // Row bands rendered
	Workers   int           // Workers used
	Elapsed   time.Duration // Wall-clock render time
}

// Render traces the primary ray batch for every pixel across the worker pool
// and assembles the final image. Colors are clamped to [0, 1] and scaled to
// 8-bit only here, at the hand-off.
func (rt *Raytracer) Render() (*image.RGBA, RenderStats, error) {
	if err := rt.config.Validate(); err != nil {
		return nil, RenderStats{}, err
	}

	start := time.Now()
	w, h := rt.config.Width, rt.config.Height
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	numBands := (h + bandRows - 1) / bandRows
	camera := NewCamera(rt.scene.GetCameraPosition(), rt.config)
	pool := NewWorkerPool(rt, camera, rt.config.NumWorkers, numBands)

	for b := 0; b < numBands; b++ {
		rowEnd := (b + 1) * bandRows
		if rowEnd > h {
			rowEnd = h
		}
		pool.SubmitTask(BandTask{TaskID: b, RowStart: b * bandRows, RowEnd: rowEnd})
	}

	for b := 0; b < numBands; b++ {
		res := pool.GetResult()
		i := 0
		for y := res.RowStart; y < res.RowEnd; y++ {
			for x := 0; x < w; x++ {
				img.SetRGBA(x, y, vec3ToColor(res.Colors.At(i)))
				i++
			}
		}
	}
	pool.Stop()

	stats := RenderStats{
		TotalRays: w * h,
		Bands:     numBands,
		Workers:   pool.GetNumWorkers(),
		Elapsed:   time.Since(start),
	}
	rt.logger.Printf("Traced %d rays in %d bands with %d workers in %v\n",
		stats.TotalRays, stats.Bands, stats.Workers, stats.Elapsed)

	return img, stats, nil
}

// vec3ToColor converts an accumulated color to 8-bit RGBA with clamping
func vec3ToColor(c core.Vec3) color.RGBA {
	c = c.Clamp(0, 1)
	return color.RGBA{
		R: uint8(255 * c.X),
		G: uint8(255 * c.Y),
		B: uint8(255 * c.Z),
		A: 255,
	}
}
