package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jlope384/Proyecto-2-Graficas/pkg/renderer"
	"github.com/jlope384/Proyecto-2-Graficas/pkg/scene"
	"github.com/jlope384/Proyecto-2-Graficas/pkg/sky"
)

// Frame cap when the render can never settle (scene rotation) and no count was given
const rotatingFrameLimit = 120

// Config holds the command line options of a headless render
type Config struct {
	Scene       string
	Sky         string
	Assets      string
	OutputDir   string
	Width       int
	Height      int
	Frames      int     // 0 runs until progressive refinement completes
	Orbit       float64 // Camera yaw in degrees per frame during the first OrbitFrames frames
	OrbitFrames int
	Rotate      float64 // Scene rotation in degrees per frame, 0 = static
	Workers     int
	HUD         bool
}

func main() {
	var config Config
	flag.StringVar(&config.Scene, "scene", "skyblock", "Scene: a built-in name, file:<name> from scenes/, or a .json path")
	flag.StringVar(&config.Sky, "sky", "", "Sky and light preset: "+strings.Join(sky.Names(), ", "))
	flag.StringVar(&config.Assets, "assets", "", "Directory with <texture id>.png files replacing generated textures")
	flag.StringVar(&config.OutputDir, "output", "output", "Output directory")
	flag.IntVar(&config.Width, "width", 0, "Image width (0 = scene default)")
	flag.IntVar(&config.Height, "height", 0, "Image height (0 = scene default)")
	flag.IntVar(&config.Frames, "frames", 0, "Frames to run (0 = until refinement completes)")
	flag.Float64Var(&config.Orbit, "orbit", 0, "Camera orbit in degrees per frame during the first frames")
	flag.IntVar(&config.OrbitFrames, "orbit-frames", 10, "Number of frames the camera orbits for")
	flag.Float64Var(&config.Rotate, "rotate", 0, "Scene rotation in degrees per frame")
	flag.IntVar(&config.Workers, "workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	flag.BoolVar(&config.HUD, "hud", false, "Draw a status caption on the saved image")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	fmt.Println("Starting Cube Raytracer...")
	filename, err := run(config)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Render saved as %s\n", filename)
}

func showHelp() {
	fmt.Println("Cube Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	fmt.Println("  skyblock - Brick platform with floating rubber, ivory and glass cubes")
	fmt.Println("  diorama  - Floating island with water, lava, a tree, a tower and gems")
	if files, err := scene.ListConfigScenes(); err == nil {
		for _, info := range files {
			fmt.Printf("  %s - %s\n", info.ID, info.Description)
		}
	}
	fmt.Println()
	fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.png")
}

// createScene resolves a scene name. Bare names that are not built in are
// looked up in the scenes directory.
func createScene(name string) (*scene.Scene, error) {
	if name == "" {
		return nil, fmt.Errorf("no scene given")
	}
	if _, ok := scene.Builtins[name]; !ok && !strings.Contains(name, ":") && filepath.Ext(name) == "" {
		name = "file:" + name
	}
	return scene.Load(name)
}

// run renders the configured scene through the frame scheduler and saves
// the final frame. It returns the written file name.
func run(config Config) (string, error) {
	s, err := createScene(config.Scene)
	if err != nil {
		return "", err
	}
	fmt.Printf("Using %s scene (%d cubes)...\n", s.Name, s.GetPrimitiveCount())

	if config.Sky != "" {
		env, err := scene.EnvironmentByName(config.Sky)
		if err != nil {
			return "", err
		}
		s.SetEnvironment(env)
	}
	if config.Assets != "" {
		if err := s.LoadTextures(config.Assets); err != nil {
			return "", fmt.Errorf("failed to load assets: %w", err)
		}
	}
	if config.Width > 0 {
		s.Width = config.Width
	}
	if config.Height > 0 {
		s.Height = config.Height
	}
	if err := s.Validate(); err != nil {
		return "", err
	}

	sessionConfig := s.SessionConfig()
	sessionConfig.NumWorkers = config.Workers
	if config.Rotate != 0 {
		sessionConfig.RotationSpeed = mgl64.DegToRad(config.Rotate)
	}

	session := renderer.NewSession(s.World(), s.Camera, sessionConfig, renderer.NewDefaultLogger())
	defer session.Close()
	session.SetRotating(config.Rotate != 0)

	frames := config.Frames
	if frames <= 0 && config.Rotate != 0 {
		frames = rotatingFrameLimit
	}
	orbit := mgl64.DegToRad(config.Orbit)

	startTime := time.Now()
	var result renderer.FrameResult
	for frame := 1; ; frame++ {
		if orbit != 0 && frame <= config.OrbitFrames {
			session.Camera.Orbit(orbit, 0)
		}
		result = session.Step()

		if frames > 0 && frame >= frames {
			break
		}
		if frames <= 0 && result.Phase == renderer.PhaseProgressive && result.Complete {
			break
		}
	}
	stats := session.Stats()
	fmt.Printf("Render completed in %v (%d frames, %d rays, %.0f rays/s)\n",
		time.Since(startTime), stats.Frames, stats.PixelsTraced, stats.RaysPerSecond())

	caption := ""
	if config.HUD {
		caption = fmt.Sprintf("%s | %s", s.Name, renderer.Caption(result, stats))
	}
	img := renderer.Snapshot(session.Framebuffer(), caption)

	timestamp := time.Now().Format("20060102_150405")
	sceneDir := strings.ReplaceAll(strings.ToLower(s.Name), " ", "-")
	filename := filepath.Join(config.OutputDir, sceneDir, fmt.Sprintf("render_%s.png", timestamp))
	if err := renderer.SavePNG(img, filename); err != nil {
		return "", err
	}
	return filename, nil
}
