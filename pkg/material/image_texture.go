package material

import (
	"github.com/jlope384/Proyecto-2-Graficas/pkg/core"
)

// ImageTexture is a row-major grid of linear RGB texels
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x]
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// At returns the texel at integer coordinates, clamped to the image bounds
func (t *ImageTexture) At(x, y int) core.Vec3 {
	x = max(0, min(t.Width-1, x))
	y = max(0, min(t.Height-1, y))
	return t.Pixels[y*t.Width+x]
}

// Luminance returns the texel luminance at integer coordinates (clamped)
func (t *ImageTexture) Luminance(x, y int) float64 {
	return t.At(x, y).Luminance()
}
