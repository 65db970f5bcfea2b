package geometry

import (
	"math"

	"github.com/jlope384/Proyecto-2-Graficas/pkg/core"
	"github.com/jlope384/Proyecto-2-Graficas/pkg/material"
)

const (
	// parallelEpsilon is the direction magnitude below which an axis is treated as parallel
	parallelEpsilon = 1e-6
	// parallelInverse replaces 1/d for parallel axes so slab math stays finite
	parallelInverse = 1e6
	// uvFaceThreshold selects the UV face from the hit normal
	uvFaceThreshold = 0.9
)

// Cube is an axis-aligned cube with a uniform edge length
type Cube struct {
	Center   core.Vec3
	Size     float64 // Edge length
	Material *material.Material
}

// NewCube creates a new cube
func NewCube(center core.Vec3, size float64, mat *material.Material) *Cube {
	return &Cube{
		Center:   center,
		Size:     size,
		Material: mat,
	}
}

// Position implements Movable
func (c *Cube) Position() core.Vec3 {
	return c.Center
}

// WithPosition implements Movable. The clone shares the material.
func (c *Cube) WithPosition(center core.Vec3) Primitive {
	return NewCube(center, c.Size, c.Material)
}

// Bounds returns the min and max corners of the cube
func (c *Cube) Bounds() (core.Vec3, core.Vec3) {
	half := c.Size / 2
	h := core.NewVec3(half, half, half)
	return c.Center.Subtract(h), c.Center.Add(h)
}

// RayIntersect tests the ray against the cube with the slab method
func (c *Cube) RayIntersect(origin, direction core.Vec3) Intersect {
	lo, hi := c.Bounds()

	invDir := core.NewVec3(safeInverse(direction.X), safeInverse(direction.Y), safeInverse(direction.Z))

	t1 := (lo.X - origin.X) * invDir.X
	t2 := (hi.X - origin.X) * invDir.X
	t3 := (lo.Y - origin.Y) * invDir.Y
	t4 := (hi.Y - origin.Y) * invDir.Y
	t5 := (lo.Z - origin.Z) * invDir.Z
	t6 := (hi.Z - origin.Z) * invDir.Z

	tmin := math.Max(math.Max(math.Min(t1, t2), math.Min(t3, t4)), math.Min(t5, t6))
	tmax := math.Min(math.Min(math.Max(t1, t2), math.Max(t3, t4)), math.Max(t5, t6))

	// Whole box is behind the origin
	if tmax < 0 {
		return EmptyIntersect()
	}
	// Slabs don't overlap
	if tmin > tmax {
		return EmptyIntersect()
	}

	// Origin inside the box hits the exit face
	t := tmax
	if tmin > 0 {
		t = tmin
	}
	if t <= 0 {
		return EmptyIntersect()
	}

	point := origin.Add(direction.Multiply(t))
	normal := c.faceNormal(point)
	u, v := c.uv(point, normal)

	return NewIntersect(point, normal, t, c.Material, u, v)
}

// faceNormal picks the axis with the largest local component; ties go to x, then y, then z
func (c *Cube) faceNormal(point core.Vec3) core.Vec3 {
	local := point.Subtract(c.Center)
	ax, ay, az := math.Abs(local.X), math.Abs(local.Y), math.Abs(local.Z)

	switch {
	case ax > ay && ax > az:
		return core.NewVec3(math.Copysign(1, local.X), 0, 0)
	case ay > az:
		return core.NewVec3(0, math.Copysign(1, local.Y), 0)
	default:
		return core.NewVec3(0, 0, math.Copysign(1, local.Z))
	}
}

// uv maps the hit point onto the face selected by the normal, with v flipped for image rows
func (c *Cube) uv(point, normal core.Vec3) (float64, float64) {
	half := c.Size / 2
	local := point.Subtract(c.Center)

	var u, v float64
	switch {
	case math.Abs(normal.X) > uvFaceThreshold:
		u = (local.Z + half) / c.Size
		v = (local.Y + half) / c.Size
	case math.Abs(normal.Y) > uvFaceThreshold:
		u = (local.X + half) / c.Size
		v = (local.Z + half) / c.Size
	default:
		u = (local.X + half) / c.Size
		v = (local.Y + half) / c.Size
	}
	return u, 1 - v
}

func safeInverse(d float64) float64 {
	if math.Abs(d) < parallelEpsilon {
		return parallelInverse
	}
	return 1 / d
}
