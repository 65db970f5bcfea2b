package material

import (
	"fmt"
	"sort"

	"github.com/jlope384/Proyecto-2-Graficas/pkg/core"
	"github.com/jlope384/Proyecto-2-Graficas/pkg/loaders"
)

// TextureManager owns every texture and normal map a scene references,
// keyed by id. It is filled during scene setup and only read while rendering.
type TextureManager struct {
	textures map[string]*ImageTexture
}

// NewTextureManager creates an empty texture manager
func NewTextureManager() *TextureManager {
	return &TextureManager{textures: make(map[string]*ImageTexture)}
}

// Add registers a texture under id, replacing any previous one
func (tm *TextureManager) Add(id string, texture *ImageTexture) {
	tm.textures[id] = texture
}

// Load decodes an image file and registers it under id
func (tm *TextureManager) Load(id, path string) error {
	data, err := loaders.LoadImage(path)
	if err != nil {
		return fmt.Errorf("texture %q: %w", id, err)
	}
	tm.Add(id, NewImageTexture(data.Width, data.Height, data.Pixels))
	return nil
}

// Get returns the texture registered under id
func (tm *TextureManager) Get(id string) (*ImageTexture, bool) {
	texture, ok := tm.textures[id]
	return texture, ok
}

// Has reports whether id resolves to a texture
func (tm *TextureManager) Has(id string) bool {
	_, ok := tm.textures[id]
	return ok
}

// IDs returns all registered ids in sorted order
func (tm *TextureManager) IDs() []string {
	ids := make([]string, 0, len(tm.textures))
	for id := range tm.textures {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Dimensions implements core.TextureLookup
func (tm *TextureManager) Dimensions(id string) (int, int, bool) {
	texture, ok := tm.textures[id]
	if !ok {
		return 0, 0, false
	}
	return texture.Width, texture.Height, true
}

// PixelColor implements core.TextureLookup. Unknown ids sample as black.
func (tm *TextureManager) PixelColor(id string, x, y int) core.Vec3 {
	texture, ok := tm.textures[id]
	if !ok {
		return core.Vec3{}
	}
	return texture.At(x, y)
}

// NormalFromMap implements core.TextureLookup. The texel color is decoded
// from [0,1] into a unit tangent-space normal.
func (tm *TextureManager) NormalFromMap(id string, x, y int) (core.Vec3, bool) {
	texture, ok := tm.textures[id]
	if !ok {
		return core.Vec3{}, false
	}
	n := DecodeNormal(texture.At(x, y))
	if n.LengthSquared() == 0 {
		return core.Vec3{}, false
	}
	return n, true
}

// Validate checks that every texture and normal map referenced by the
// materials resolves. Rendering assumes this holds.
func (tm *TextureManager) Validate(materials ...*Material) error {
	for _, m := range materials {
		if m.HasTexture() && !tm.Has(m.TextureID) {
			return fmt.Errorf("texture %q is not loaded", m.TextureID)
		}
		if m.HasNormalMap() && !tm.Has(m.NormalMapID) {
			return fmt.Errorf("normal map %q is not loaded", m.NormalMapID)
		}
	}
	return nil
}
