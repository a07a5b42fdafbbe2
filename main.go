package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mhollis/tracepath/pkg/imageio"
	"github.com/mhollis/tracepath/pkg/renderer"
	"github.com/mhollis/tracepath/pkg/scene"
)

// Config holds all the configuration for the raytracer.
type Config struct {
	SceneType     string
	Width         int
	AspectRatio   float64
	Samples       int
	MaxDepth      int
	Workers       int
	Seed          int64
	Denoise       bool
	OutputPath    string
	ThumbnailPath string
	Help          bool
}

func main() {
	config := parseFlags()
	if config.Help {
		showHelp()
		return
	}

	fmt.Println("Starting path tracer...")
	startTime := time.Now()

	sceneObj, err := createScene(config)
	if err != nil {
		fmt.Printf("Error creating scene: %v\n", err)
		os.Exit(1)
	}

	logger := renderer.NewDefaultLogger()
	result := renderer.Render(sceneObj, renderer.RenderConfig{
		SamplesPerPixel: config.Samples,
		MaxDepth:        config.MaxDepth,
		WorkerCount:     config.Workers,
		Logger:          logger,
	})

	var den imageio.Denoiser
	if config.Denoise {
		den = imageio.PassthroughDenoiser{}
	}
	final := imageio.Denoise(result, den, logger)

	if err := imageio.WriteImage(final, config.OutputPath); err != nil {
		fmt.Printf("Error writing image: %v\n", err)
		os.Exit(1)
	}
	if err := imageio.WriteThumbnail(final, config.ThumbnailPath); err != nil {
		fmt.Printf("Error writing thumbnail: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render completed in %v\n", time.Since(startTime))
	fmt.Printf("Samples per pixel: %d\n", config.Samples)
	fmt.Printf("Render saved as %s\n", config.OutputPath)
}

// parseFlags parses command line flags and returns configuration.
func parseFlags() Config {
	config := Config{}
	flag.StringVar(&config.SceneType, "scene", "random-spheres", "Scene identifier or path to a YAML scene file")
	flag.IntVar(&config.Width, "width", 400, "Output image width in pixels")
	flag.Float64Var(&config.AspectRatio, "aspect", 16.0/9.0, "Image aspect ratio (width / height)")
	flag.IntVar(&config.Samples, "samples", 100, "Samples per pixel")
	flag.IntVar(&config.MaxDepth, "max-depth", 10, "Maximum ray bounce depth")
	flag.IntVar(&config.Workers, "workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	flag.Int64Var(&config.Seed, "seed", 42, "Scene construction seed")
	flag.BoolVar(&config.Denoise, "denoise", false, "Run the auxiliary denoiser pass on the output")
	flag.StringVar(&config.OutputPath, "output", "", "Output PNG path (defaults to output/<scene>/render_<timestamp>.png)")
	flag.BoolVar(&config.Help, "help", false, "Show help information")
	flag.Parse()

	if config.OutputPath == "" {
		dir := filepath.Join("output", sceneDirName(config.SceneType))
		timestamp := time.Now().Format("20060102_150405")
		config.OutputPath = filepath.Join(dir, fmt.Sprintf("render_%s.png", timestamp))
	}
	config.ThumbnailPath = thumbnailPathFor(config.OutputPath)

	return config
}

// sceneDirName extracts a filesystem-friendly name for a scene identifier,
// which may itself be a YAML file path.
func sceneDirName(sceneType string) string {
	if filepath.Ext(sceneType) == ".yaml" || filepath.Ext(sceneType) == ".yml" {
		base := filepath.Base(sceneType)
		return base[:len(base)-len(filepath.Ext(base))]
	}
	return sceneType
}

// thumbnailPathFor derives a "_thumb" suffixed path alongside the main
// output file.
func thumbnailPathFor(outputPath string) string {
	ext := filepath.Ext(outputPath)
	return outputPath[:len(outputPath)-len(ext)] + "_thumb" + ext
}

// showHelp displays help information.
func showHelp() {
	fmt.Println("Path Tracer")
	fmt.Println("Usage: tracepath [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Built-in scenes:")
	fmt.Println("  random-spheres - Field of randomly placed diffuse/metal/glass spheres")
	fmt.Println("  cornell        - Classic Cornell box with a smoke volume")
	fmt.Println("  Or a path to a YAML scene description file (see pkg/scene for the format)")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  tracepath --scene=cornell --samples=200 --workers=4")
	fmt.Println("  tracepath --scene=scenes/my-scene.yaml --denoise")
}

// createScene builds the scene named by config.SceneType, falling back to
// a YAML preset load if it names a file.
func createScene(config Config) (*scene.Scene, error) {
	height := int(float64(config.Width) / config.AspectRatio)
	logger := renderer.NewDefaultLogger()

	switch config.SceneType {
	case "cornell":
		fmt.Println("Using Cornell box scene...")
		return scene.NewCornellBox(config.Width, height, logger), nil
	case "random-spheres":
		fmt.Println("Using random spheres scene...")
		return scene.NewRandomSpheres(config.Width, height, config.Seed, logger), nil
	default:
		if _, err := os.Stat(config.SceneType); err == nil {
			fmt.Printf("Loading scene file: %s...\n", config.SceneType)
			return scene.LoadPreset(config.SceneType, logger)
		}
		return nil, fmt.Errorf("unknown scene: %s", config.SceneType)
	}
}
