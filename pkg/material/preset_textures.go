package material

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jlope384/Proyecto-2-Graficas/pkg/core"
)

// DefaultTextureSize is the edge length of generated preset textures
const DefaultTextureSize = 128

// presetTexture generates the diffuse texture for a preset id
type presetTexture struct {
	id       string
	normalID string
	strength float64
	generate func(size int) *ImageTexture
}

var presetTextures = []presetTexture{
	{TextureBall, TextureBallNormal, 2, func(size int) *ImageTexture {
		return NewCheckerboardTexture(size, size, max(1, size/8), core.NewVec3(0.8, 0.15, 0.1), core.NewVec3(0.95, 0.9, 0.85))
	}},
	{TextureBricks, TextureBricksNormal, 4, func(size int) *ImageTexture {
		return NewBrickTexture(size, size, max(2, size/4), max(2, size/8), max(1, size/64), core.NewVec3(0.7, 0.25, 0.15), core.NewVec3(0.75, 0.72, 0.68))
	}},
	{TextureGrassDirt, TextureGrassDirtNormal, 3, func(size int) *ImageTexture {
		return NewNoiseTexture(size, size, max(1, size/16), core.NewVec3(0.25, 0.5, 0.15), core.NewVec3(0.45, 0.33, 0.2))
	}},
	{TextureCastleStone, TextureCastleStoneNormal, 4, func(size int) *ImageTexture {
		return NewBrickTexture(size, size, max(2, size/2), max(2, size/4), max(1, size/32), core.NewVec3(0.55, 0.55, 0.6), core.NewVec3(0.3, 0.3, 0.32))
	}},
	{TextureWaterWaves, TextureWaterNormal, 1.5, func(size int) *ImageTexture {
		return NewNoiseTexture(size, size, max(1, size/6), core.NewVec3(0.1, 0.3, 0.75), core.NewVec3(0.5, 0.75, 0.95))
	}},
	{TextureLavaBubbles, TextureLavaNormal, 2.5, func(size int) *ImageTexture {
		return NewNoiseTexture(size, size, max(1, size/10), core.NewVec3(1.0, 0.25, 0.05), core.NewVec3(1.0, 0.8, 0.2))
	}},
}

// RegisterPresetTextures generates every texture id used by the preset
// materials. Normal maps are derived from the luminance of their diffuse texture.
func RegisterPresetTextures(tm *TextureManager, size int) {
	for _, p := range presetTextures {
		diffuse := p.generate(size)
		tm.Add(p.id, diffuse)
		tm.Add(p.normalID, NewNormalMapFromHeight(diffuse, p.strength))
	}
}

// LoadPresetTextures loads "<dir>/<id>.png" for every preset id that has a
// file on disk and generates the rest. Missing files are not an error;
// undecodable ones are.
func LoadPresetTextures(tm *TextureManager, dir string, size int) error {
	RegisterPresetTextures(tm, size)
	if dir == "" {
		return nil
	}

	for _, p := range presetTextures {
		for _, id := range []string{p.id, p.normalID} {
			path := filepath.Join(dir, id+".png")
			if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
				continue
			}
			if err := tm.Load(id, path); err != nil {
				return err
			}
		}
	}
	return nil
}
