package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fogleman/gg"

	"github.com/IndaPlus23/nilsmal-raytracer/pkg/renderer"
	"github.com/IndaPlus23/nilsmal-raytracer/pkg/scene"
)

// createScene returns the named built-in scene
func createScene(name string) (*scene.Scene, error) {
	switch name {
	case "default":
		return scene.NewDefaultScene(), nil
	case "single":
		return scene.NewSingleSphereScene(), nil
	}
	return nil, fmt.Errorf("unknown scene type: %s", name)
}

func main() {
	sceneType := flag.String("scene", "default", "Scene type: 'default' or 'single'")
	width := flag.Int("width", 0, "Image width in pixels (0 = scene default)")
	height := flag.Int("height", 0, "Image height in pixels (0 = scene default)")
	workers := flag.Int("workers", 0, "Number of render workers (0 = CPU count)")
	output := flag.String("out", "", "Output PNG path (default output/<scene>/render_<timestamp>.png)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Batch Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default - Three glossy spheres over a checkered floor")
		fmt.Println("  single  - Single matte red sphere, light overhead")
		return
	}

	logger := renderer.NewDefaultLogger()

	selectedScene, err := createScene(*sceneType)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *width > 0 && *height > 0 {
		selectedScene.Resize(*width, *height)
	}
	selectedScene.Config.NumWorkers = *workers

	if err := selectedScene.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid scene: %v\n", err)
		os.Exit(1)
	}

	logger.Printf("Rendering %s scene at %dx%d...\n",
		*sceneType, selectedScene.Config.Width, selectedScene.Config.Height)

	raytracer := renderer.NewRaytracer(selectedScene, selectedScene.Config, logger)
	img, stats, err := raytracer.Render()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Render failed: %v\n", err)
		os.Exit(1)
	}
	logger.Printf("Render completed in %v\n", stats.Elapsed)

	filename := *output
	if filename == "" {
		timestamp := time.Now().Format("20060102_150405")
		filename = filepath.Join("output", *sceneType, fmt.Sprintf("render_%s.png", timestamp))
	}
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
			os.Exit(1)
		}
	}

	dc := gg.NewContextForRGBA(img)
	if err := dc.SavePNG(filename); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving PNG: %v\n", err)
		os.Exit(1)
	}

	logger.Printf("Render saved as %s\n", filename)
}
