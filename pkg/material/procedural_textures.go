package material

import (
	"math"

	"github.com/jlope384/Proyecto-2-Graficas/pkg/core"
)

// NewCheckerboardTexture creates a procedural checkerboard pattern texture
func NewCheckerboardTexture(width, height, checkSize int, color1, color2 core.Vec3) *ImageTexture {
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			checkX := x / checkSize
			checkY := y / checkSize

			var color core.Vec3
			if (checkX+checkY)%2 == 0 {
				color = color1
			} else {
				color = color2
			}

			pixels[y*width+x] = color
		}
	}

	return NewImageTexture(width, height, pixels)
}

// NewGradientTexture creates a vertical gradient from color1 (top) to color2 (bottom)
func NewGradientTexture(width, height int, color1, color2 core.Vec3) *ImageTexture {
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		t := float64(y) / float64(max(1, height-1))
		color := color1.Multiply(1.0 - t).Add(color2.Multiply(t))

		for x := 0; x < width; x++ {
			pixels[y*width+x] = color
		}
	}

	return NewImageTexture(width, height, pixels)
}

// NewBrickTexture creates a running-bond brick wall. Every other row is
// shifted by half a brick; mortar lines are mortarWidth texels wide.
func NewBrickTexture(width, height, brickWidth, brickHeight, mortarWidth int, brick, mortar core.Vec3) *ImageTexture {
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		row := y / brickHeight
		offset := 0
		if row%2 == 1 {
			offset = brickWidth / 2
		}
		for x := 0; x < width; x++ {
			bx := (x + offset) % brickWidth
			by := y % brickHeight

			color := mortar
			if bx >= mortarWidth && by >= mortarWidth {
				// Vary each brick a little so the wall doesn't look flat
				brickIndex := (x+offset)/brickWidth + row*131
				shade := 0.85 + 0.3*hashNoise(brickIndex, row)
				color = brick.Multiply(shade)
			}
			pixels[y*width+x] = color
		}
	}

	return NewImageTexture(width, height, pixels)
}

// NewNoiseTexture blends between two colors using smoothed value noise.
// cellSize controls the feature size in texels.
func NewNoiseTexture(width, height, cellSize int, color1, color2 core.Vec3) *ImageTexture {
	pixels := make([]core.Vec3, width*height)
	cell := float64(max(1, cellSize))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			n := valueNoise(float64(x)/cell, float64(y)/cell)*0.65 +
				valueNoise(float64(x)*2/cell, float64(y)*2/cell)*0.35
			pixels[y*width+x] = color1.Lerp(color2, n)
		}
	}

	return NewImageTexture(width, height, pixels)
}

// NewNormalMapFromHeight derives a tangent-space normal map from the
// luminance of a height texture. Normals are encoded as (n+1)/2 per channel.
func NewNormalMapFromHeight(height *ImageTexture, strength float64) *ImageTexture {
	pixels := make([]core.Vec3, height.Width*height.Height)

	for y := 0; y < height.Height; y++ {
		for x := 0; x < height.Width; x++ {
			dx := height.Luminance(x+1, y) - height.Luminance(x-1, y)
			dy := height.Luminance(x, y+1) - height.Luminance(x, y-1)

			n := core.NewVec3(-dx*strength, -dy*strength, 1).Normalize()
			pixels[y*height.Width+x] = EncodeNormal(n)
		}
	}

	return NewImageTexture(height.Width, height.Height, pixels)
}

// EncodeNormal maps a unit normal from [-1,1] to the [0,1] color range
func EncodeNormal(n core.Vec3) core.Vec3 {
	return n.Add(core.NewVec3(1, 1, 1)).Multiply(0.5)
}

// DecodeNormal maps a normal-map color back to a unit vector
func DecodeNormal(c core.Vec3) core.Vec3 {
	return c.Multiply(2).Subtract(core.NewVec3(1, 1, 1)).Normalize()
}

// hashNoise returns a deterministic pseudo-random value in [0,1] for a lattice point
func hashNoise(x, y int) float64 {
	h := uint32(x)*374761393 + uint32(y)*668265263
	h = (h ^ (h >> 13)) * 1274126177
	h ^= h >> 16
	return float64(h) / float64(math.MaxUint32)
}

// valueNoise bilinearly interpolates lattice hash values with smoothstep weights
func valueNoise(x, y float64) float64 {
	x0, y0 := math.Floor(x), math.Floor(y)
	fx, fy := x-x0, y-y0
	ix, iy := int(x0), int(y0)

	fx = fx * fx * (3 - 2*fx)
	fy = fy * fy * (3 - 2*fy)

	top := hashNoise(ix, iy)*(1-fx) + hashNoise(ix+1, iy)*fx
	bottom := hashNoise(ix, iy+1)*(1-fx) + hashNoise(ix+1, iy+1)*fx
	return top*(1-fy) + bottom*fy
}
