package material

import (
	"github.com/jlope384/Proyecto-2-Graficas/pkg/core"
)

// Albedo weight indices
const (
	AlbedoDiffuse  = 0
	AlbedoSpecular = 1
	AlbedoReflect  = 2
	AlbedoTransmit = 3
)

// Material describes how a surface responds to light. Materials are built
// once at scene setup and shared by pointer; they are never mutated afterwards.
type Material struct {
	Diffuse         core.Vec3  // Base color, used when no texture is set
	Albedo          [4]float64 // Diffuse, specular, reflective and transmissive weights
	Specular        float64    // Phong shininess exponent
	RefractiveIndex float64
	TextureID       string // Texture id for the diffuse color ("" = none)
	NormalMapID     string // Normal map id ("" = none)
}

// NewMaterial creates a new material
func NewMaterial(diffuse core.Vec3, specular float64, albedo [4]float64, refractiveIndex float64, textureID, normalMapID string) *Material {
	return &Material{
		Diffuse:         diffuse,
		Albedo:          albedo,
		Specular:        specular,
		RefractiveIndex: refractiveIndex,
		TextureID:       textureID,
		NormalMapID:     normalMapID,
	}
}

var black = &Material{}

// Black returns the inert material: zero color and zero albedo.
// It is shared and must not be modified.
func Black() *Material {
	return black
}

// HasTexture reports whether the diffuse color comes from a texture
func (m *Material) HasTexture() bool {
	return m.TextureID != ""
}

// HasNormalMap reports whether the material perturbs normals with a normal map
func (m *Material) HasNormalMap() bool {
	return m.NormalMapID != ""
}

// Reflectivity returns the weight of the mirror-reflected contribution
func (m *Material) Reflectivity() float64 {
	return m.Albedo[AlbedoReflect]
}

// Transparency returns the weight of the refracted contribution
func (m *Material) Transparency() float64 {
	return m.Albedo[AlbedoTransmit]
}

// WithDiffuse returns a copy of the material with a different base color
func (m *Material) WithDiffuse(diffuse core.Vec3) *Material {
	c := *m
	c.Diffuse = diffuse
	return &c
}

// WithTextures returns a copy of the material with different texture ids
func (m *Material) WithTextures(textureID, normalMapID string) *Material {
	c := *m
	c.TextureID = textureID
	c.NormalMapID = normalMapID
	return &c
}
