package main

import (
	"flag"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jlope384/Proyecto-2-Graficas/pkg/scene"
	"github.com/jlope384/Proyecto-2-Graficas/pkg/sky"
)

func main() {
	sceneName := flag.String("scene", "skyblock", "Scene: a built-in name, file:<name> from scenes/, or a .json path")
	skyName := flag.String("sky", "", "Initial sky and light preset: "+strings.Join(sky.Names(), ", "))
	assets := flag.String("assets", "", "Directory with <texture id>.png files replacing generated textures")
	width := flag.Int("width", 0, "Render width (0 = scene default)")
	height := flag.Int("height", 0, "Render height (0 = scene default)")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	screenshots := flag.String("screenshots", "screenshots", "Directory for P screenshots")
	flag.Parse()

	s, err := scene.Load(*sceneName)
	if err != nil {
		log.Fatal(err)
	}
	if *width > 0 {
		s.Width = *width
	}
	if *height > 0 {
		s.Height = *height
	}
	if *assets != "" {
		if err := s.LoadTextures(*assets); err != nil {
			log.Fatal(err)
		}
	}
	if err := s.Validate(); err != nil {
		log.Fatal(err)
	}

	config := s.SessionConfig()
	config.NumWorkers = *workers

	game := NewGame(s, config, *screenshots)
	defer game.Close()
	if *skyName != "" {
		env, err := scene.EnvironmentByName(*skyName)
		if err != nil {
			log.Fatal(err)
		}
		game.applyEnvironment(env)
	}

	log.Printf("Rendering %s (%d cubes) at %dx%d\n", s.Name, s.GetPrimitiveCount(), s.Width, s.Height)
	ebiten.SetWindowSize(s.Width, s.Height)
	ebiten.SetWindowTitle("Cube Raytracer - " + s.Name)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
