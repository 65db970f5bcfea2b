package geometry

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/jlope384/Proyecto-2-Graficas/pkg/core"
)

// RotateAroundY returns a copy of prims with every movable primitive's
// position rotated by angle radians about the vertical axis through pivot.
// Cubes stay axis-aligned; only their centers move. Primitives that are not
// Movable are passed through unchanged.
func RotateAroundY(prims []Primitive, pivot core.Vec3, angle float64) []Primitive {
	rotation := mgl64.Rotate3DY(angle)

	out := make([]Primitive, len(prims))
	for i, p := range prims {
		m, ok := p.(Movable)
		if !ok {
			out[i] = p
			continue
		}
		out[i] = m.WithPosition(rotateAbout(rotation, m.Position(), pivot))
	}
	return out
}

// RotatePointY rotates a single point about the vertical axis through pivot
func RotatePointY(point, pivot core.Vec3, angle float64) core.Vec3 {
	return rotateAbout(mgl64.Rotate3DY(angle), point, pivot)
}

func rotateAbout(rotation mgl64.Mat3, point, pivot core.Vec3) core.Vec3 {
	local := point.Subtract(pivot)
	r := rotation.Mul3x1(mgl64.Vec3{local.X, local.Y, local.Z})
	return core.NewVec3(r[0], r[1], r[2]).Add(pivot)
}
