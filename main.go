package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/calebmartin/go-whitted-raytracer/pkg/scene"
)

func main() {
	sceneType := flag.String("scene", "default", "Scene type: 'default' or 'glass'")
	width := flag.Int("width", 800, "Image width in pixels")
	height := flag.Int("height", 450, "Image height in pixels")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Whitted Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default - Patterned spheres and a glass sphere on a checkered floor")
		fmt.Println("  glass   - Hollow glass sphere over a checkered floor")
		fmt.Println()
		fmt.Println("Output will be saved to output/<scene_type>/render_<timestamp>.png")
		return
	}

	var selectedScene scene.Scene
	switch *sceneType {
	case "glass":
		fmt.Println("Using glass scene...")
		selectedScene = scene.NewGlassScene(*width, *height)
	case "default":
		fmt.Println("Using default scene...")
		selectedScene = scene.NewDefaultScene(*width, *height)
	default:
		fmt.Printf("Unknown scene type: %s. Using default scene.\n", *sceneType)
		selectedScene = scene.NewDefaultScene(*width, *height)
		*sceneType = "default"
	}

	outputDir := filepath.Join("output", *sceneType)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		return
	}

	fmt.Printf("Rendering %dx%d...\n", *width, *height)
	startTime := time.Now()
	img := selectedScene.Render()
	fmt.Printf("Render completed in %v\n", time.Since(startTime))

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		fmt.Printf("Error creating file: %v\n", err)
		return
	}
	defer file.Close()

	if err := png.Encode(file, img.ToImage()); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		return
	}

	fmt.Printf("Render saved as %s\n", filename)
}
