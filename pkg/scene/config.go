package scene

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jlope384/Proyecto-2-Graficas/pkg/core"
	"github.com/jlope384/Proyecto-2-Graficas/pkg/lights"
	"github.com/jlope384/Proyecto-2-Graficas/pkg/material"
	"github.com/jlope384/Proyecto-2-Graficas/pkg/renderer"
)

// MaxTextureSize bounds the side of a procedural texture
const MaxTextureSize = 4096

// SceneConfig is the JSON form of an authored scene
type SceneConfig struct {
	Name        string                    `json:"name"`
	Description string                    `json:"description,omitempty"`
	Group       string                    `json:"group,omitempty"`
	Width       int                       `json:"width,omitempty"`
	Height      int                       `json:"height,omitempty"`
	Sky         string                    `json:"sky,omitempty"`
	Camera      CameraConfig              `json:"camera"`
	Light       *LightConfig              `json:"light,omitempty"` // nil uses the sky's environment light
	RotationDeg float64                   `json:"rotationDeg,omitempty"`
	Pivot       *[3]float64               `json:"pivot,omitempty"`
	Textures    []TextureConfig           `json:"textures,omitempty"`
	Materials   map[string]MaterialConfig `json:"materials,omitempty"`
	Cubes       []CubeConfig              `json:"cubes"`

	baseDir string // Relative texture paths resolve against this
}

// CameraConfig places the orbit camera
type CameraConfig struct {
	Eye    [3]float64 `json:"eye"`
	Center [3]float64 `json:"center"`
	Up     [3]float64 `json:"up"`
}

// LightConfig describes the point light
type LightConfig struct {
	Position  [3]float64 `json:"position"`
	Color     [3]float64 `json:"color"`
	Intensity float64    `json:"intensity"`
}

// TextureConfig registers one texture id. Exactly one of Path, Procedural
// and NormalFrom must be set.
type TextureConfig struct {
	ID         string       `json:"id"`
	Path       string       `json:"path,omitempty"`
	Procedural string       `json:"procedural,omitempty"` // checker, gradient, bricks or noise
	Colors     [][3]float64 `json:"colors,omitempty"`
	Size       int          `json:"size,omitempty"`
	NormalFrom string       `json:"normalFrom,omitempty"` // Derive a normal map from this texture's luminance
	Strength   float64      `json:"strength,omitempty"`
}

// MaterialConfig defines a named material, either from scratch or as a preset with overrides
type MaterialConfig struct {
	Preset          string      `json:"preset,omitempty"`
	Diffuse         *[3]float64 `json:"diffuse,omitempty"`
	Albedo          *[4]float64 `json:"albedo,omitempty"`
	Specular        float64     `json:"specular,omitempty"`
	RefractiveIndex float64     `json:"refractiveIndex,omitempty"`
	Texture         string      `json:"texture,omitempty"`
	NormalMap       string      `json:"normalMap,omitempty"`
}

// CubeConfig places one cube. Material names a config material or a preset.
type CubeConfig struct {
	Center   [3]float64 `json:"center"`
	Size     float64    `json:"size"`
	Material string     `json:"material"`
}

// LoadConfig reads a scene configuration from a JSON file
func LoadConfig(path string) (*SceneConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer f.Close()

	var config SceneConfig
	decoder := json.NewDecoder(f)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&config); err != nil {
		return nil, fmt.Errorf("failed to parse scene file %s: %w", path, err)
	}
	config.baseDir = filepath.Dir(path)

	if config.Name == "" {
		config.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return &config, nil
}

// LoadScene reads and builds a scene file
func LoadScene(path string) (*Scene, error) {
	config, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	return config.Build()
}

// Build validates the configuration and constructs the scene
func (c *SceneConfig) Build() (*Scene, error) {
	camera, err := c.Camera.build()
	if err != nil {
		return nil, err
	}

	skyName := c.Sky
	if skyName == "" {
		skyName = "default"
	}
	env, err := EnvironmentByName(skyName)
	if err != nil {
		return nil, err
	}

	s := newScene(c.Name, camera)
	s.SetEnvironment(env)

	if c.Light != nil {
		if s.Light, err = c.Light.build(); err != nil {
			return nil, err
		}
	}

	if c.Width < 0 || c.Height < 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", c.Width, c.Height)
	}
	if c.Width > 0 {
		s.Width = c.Width
	}
	if c.Height > 0 {
		s.Height = c.Height
	}
	if c.RotationDeg != 0 {
		s.RotationSpeed = mgl64.DegToRad(c.RotationDeg)
	}
	if c.Pivot != nil {
		s.Pivot = vec(*c.Pivot)
	}

	for i, tc := range c.Textures {
		if err := c.loadTexture(s.Textures, tc); err != nil {
			return nil, fmt.Errorf("texture %d: %w", i, err)
		}
	}

	materials := make(map[string]*material.Material, len(c.Materials))
	for name, mc := range c.Materials {
		m, err := mc.build()
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", name, err)
		}
		materials[name] = m
	}

	if len(c.Cubes) == 0 {
		return nil, fmt.Errorf("scene %q has no cubes", c.Name)
	}
	for i, cc := range c.Cubes {
		if cc.Size <= 0 {
			return nil, fmt.Errorf("cube %d: size must be positive, got %g", i, cc.Size)
		}
		m, ok := materials[cc.Material]
		if !ok {
			ctor, ok := material.Presets[cc.Material]
			if !ok {
				return nil, fmt.Errorf("cube %d: unknown material %q", i, cc.Material)
			}
			m = ctor()
			materials[cc.Material] = m
		}
		s.AddCube(vec(cc.Center), cc.Size, m)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (cc CameraConfig) build() (*renderer.Camera, error) {
	eye, center, up := vec(cc.Eye), vec(cc.Center), vec(cc.Up)
	if eye == center {
		return nil, fmt.Errorf("camera eye and center must differ")
	}
	if up.LengthSquared() == 0 {
		up = core.NewVec3(0, 1, 0)
	}
	if center.Subtract(eye).Cross(up).LengthSquared() == 0 {
		return nil, fmt.Errorf("camera up vector is parallel to the view direction")
	}
	return renderer.NewCamera(eye, center, up), nil
}

func (lc LightConfig) build() (*lights.PointLight, error) {
	if lc.Intensity < 0 {
		return nil, fmt.Errorf("light intensity must not be negative, got %g", lc.Intensity)
	}
	color := vec(lc.Color)
	if color.LengthSquared() == 0 {
		color = core.NewVec3(1, 1, 1)
	}
	return lights.NewPointLight(vec(lc.Position), color, lc.Intensity), nil
}

func (mc MaterialConfig) build() (*material.Material, error) {
	var m *material.Material
	if mc.Preset != "" {
		ctor, ok := material.Presets[mc.Preset]
		if !ok {
			return nil, fmt.Errorf("unknown preset %q", mc.Preset)
		}
		m = ctor()
		if mc.Diffuse != nil {
			m = m.WithDiffuse(vec(*mc.Diffuse))
		}
	} else {
		if mc.Diffuse == nil || mc.Albedo == nil {
			return nil, fmt.Errorf("diffuse and albedo are required without a preset")
		}
		m = material.NewMaterial(vec(*mc.Diffuse), mc.Specular, *mc.Albedo, mc.RefractiveIndex, "", "")
	}

	if mc.Texture != "" || mc.NormalMap != "" {
		textureID, normalID := m.TextureID, m.NormalMapID
		if mc.Texture != "" {
			textureID = mc.Texture
		}
		if mc.NormalMap != "" {
			normalID = mc.NormalMap
		}
		m = m.WithTextures(textureID, normalID)
	}
	return m, nil
}

func (c *SceneConfig) loadTexture(tm *material.TextureManager, tc TextureConfig) error {
	if tc.ID == "" {
		return fmt.Errorf("missing id")
	}

	set := 0
	for _, s := range []string{tc.Path, tc.Procedural, tc.NormalFrom} {
		if s != "" {
			set++
		}
	}
	if set != 1 {
		return fmt.Errorf("%q: exactly one of path, procedural and normalFrom must be set", tc.ID)
	}

	switch {
	case tc.Path != "":
		path := tc.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(c.baseDir, path)
		}
		return tm.Load(tc.ID, path)

	case tc.NormalFrom != "":
		height, ok := tm.Get(tc.NormalFrom)
		if !ok {
			return fmt.Errorf("%q: height texture %q is not defined before it", tc.ID, tc.NormalFrom)
		}
		strength := tc.Strength
		if strength == 0 {
			strength = 2
		}
		tm.Add(tc.ID, material.NewNormalMapFromHeight(height, strength))
		return nil

	default:
		texture, err := proceduralTexture(tc)
		if err != nil {
			return fmt.Errorf("%q: %w", tc.ID, err)
		}
		tm.Add(tc.ID, texture)
		return nil
	}
}

func proceduralTexture(tc TextureConfig) (*material.ImageTexture, error) {
	size := tc.Size
	if size <= 0 {
		size = material.DefaultTextureSize
	}
	if size > MaxTextureSize {
		return nil, fmt.Errorf("size %d exceeds %d", size, MaxTextureSize)
	}

	colors := []core.Vec3{core.NewVec3(0.9, 0.9, 0.9), core.NewVec3(0.1, 0.1, 0.1)}
	if len(tc.Colors) > 0 {
		if len(tc.Colors) != 2 {
			return nil, fmt.Errorf("procedural textures take 2 colors, got %d", len(tc.Colors))
		}
		colors = []core.Vec3{vec(tc.Colors[0]), vec(tc.Colors[1])}
	}

	switch tc.Procedural {
	case "checker":
		return material.NewCheckerboardTexture(size, size, max(1, size/8), colors[0], colors[1]), nil
	case "gradient":
		return material.NewGradientTexture(size, size, colors[0], colors[1]), nil
	case "bricks":
		return material.NewBrickTexture(size, size, max(2, size/4), max(2, size/8), max(1, size/64), colors[0], colors[1]), nil
	case "noise":
		return material.NewNoiseTexture(size, size, max(1, size/16), colors[0], colors[1]), nil
	default:
		return nil, fmt.Errorf("unknown procedural texture %q", tc.Procedural)
	}
}

func vec(a [3]float64) core.Vec3 {
	return core.NewVec3(a[0], a[1], a[2])
}
