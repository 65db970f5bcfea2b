package lights

import (
	"github.com/jlope384/Proyecto-2-Graficas/pkg/core"
)

// PointLight is an infinitesimal light with no falloff
type PointLight struct {
	Position  core.Vec3
	Color     core.Vec3 // Linear RGB in [0,1]
	Intensity float64
}

// NewPointLight creates a new point light
func NewPointLight(position, color core.Vec3, intensity float64) *PointLight {
	return &PointLight{
		Position:  position,
		Color:     color,
		Intensity: intensity,
	}
}

// DirectionFrom returns the unit direction from point toward the light and the distance to it
func (pl *PointLight) DirectionFrom(point core.Vec3) (core.Vec3, float64) {
	toLight := pl.Position.Subtract(point)
	return toLight.Normalize(), toLight.Length()
}

// Radiance returns the light color scaled by its intensity
func (pl *PointLight) Radiance() core.Vec3 {
	return pl.Color.Multiply(pl.Intensity)
}
