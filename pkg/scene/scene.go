package scene

import (
	"fmt"
	"math"

	"github.com/jlope384/Proyecto-2-Graficas/pkg/core"
	"github.com/jlope384/Proyecto-2-Graficas/pkg/geometry"
	"github.com/jlope384/Proyecto-2-Graficas/pkg/lights"
	"github.com/jlope384/Proyecto-2-Graficas/pkg/material"
	"github.com/jlope384/Proyecto-2-Graficas/pkg/renderer"
)

// Default window and interaction settings shared by the built-in scenes
const (
	DefaultWidth         = 1300
	DefaultHeight        = 900
	DefaultRotationSpeed = math.Pi / 100
	DefaultZoomSpeed     = 0.1
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name          string
	Camera        *renderer.Camera
	Primitives    []geometry.Primitive // Objects in the scene
	Light         *lights.PointLight
	Sky           core.Sky
	Textures      *material.TextureManager
	Pivot         core.Vec3 // Scene rotation axis passes through this point
	RotationSpeed float64   // Radians per frame while the scene rotates
	Width         int       // Image width
	Height        int       // Image height
}

// newScene creates an empty scene with the default sky, the default light and
// the preset textures registered
func newScene(name string, camera *renderer.Camera) *Scene {
	textures := material.NewTextureManager()
	material.RegisterPresetTextures(textures, material.DefaultTextureSize)

	env, _ := EnvironmentByName("default")
	return &Scene{
		Name:          name,
		Camera:        camera,
		Primitives:    make([]geometry.Primitive, 0),
		Light:         env.Light(),
		Sky:           env.Sky(),
		Textures:      textures,
		RotationSpeed: DefaultRotationSpeed,
		Width:         DefaultWidth,
		Height:        DefaultHeight,
	}
}

// AddCube adds an axis-aligned cube to the scene
func (s *Scene) AddCube(center core.Vec3, size float64, mat *material.Material) {
	s.Primitives = append(s.Primitives, geometry.NewCube(center, size, mat))
}

// World returns the renderable view of the scene
func (s *Scene) World() renderer.World {
	return renderer.World{
		Primitives: s.Primitives,
		Light:      s.Light,
		Sky:        s.Sky,
		Textures:   s.Textures,
	}
}

// SessionConfig returns the interactive session settings for this scene
func (s *Scene) SessionConfig() renderer.SessionConfig {
	config := renderer.DefaultSessionConfig(s.Width, s.Height)
	config.RotationSpeed = s.RotationSpeed
	config.ZoomSpeed = DefaultZoomSpeed
	config.Pivot = s.Pivot
	return config
}

// SetEnvironment applies a sky and light preset
func (s *Scene) SetEnvironment(env Environment) {
	s.Sky = env.Sky()
	s.Light = env.Light()
}

// LoadTextures replaces generated preset textures with "<dir>/<id>.png" files where present
func (s *Scene) LoadTextures(dir string) error {
	return material.LoadPresetTextures(s.Textures, dir, material.DefaultTextureSize)
}

// Materials returns the material of every cube in the scene
func (s *Scene) Materials() []*material.Material {
	materials := make([]*material.Material, 0, len(s.Primitives))
	for _, p := range s.Primitives {
		if cube, ok := p.(*geometry.Cube); ok {
			materials = append(materials, cube.Material)
		}
	}
	return materials
}

// Validate checks that the scene can be rendered: it has a camera, a light
// and a sky, and every texture id its materials reference is loaded
func (s *Scene) Validate() error {
	if s.Camera == nil {
		return fmt.Errorf("scene %q has no camera", s.Name)
	}
	if s.Light == nil {
		return fmt.Errorf("scene %q has no light", s.Name)
	}
	if s.Sky == nil {
		return fmt.Errorf("scene %q has no sky", s.Name)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("scene %q has invalid size %dx%d", s.Name, s.Width, s.Height)
	}
	if err := s.Textures.Validate(s.Materials()...); err != nil {
		return fmt.Errorf("scene %q: %w", s.Name, err)
	}
	return nil
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Primitives)
}
