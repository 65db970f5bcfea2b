package geometry

import (
	"github.com/jlope384/Proyecto-2-Graficas/pkg/core"
	"github.com/jlope384/Proyecto-2-Graficas/pkg/material"
)

// Primitive is anything a ray can be tested against
type Primitive interface {
	RayIntersect(origin, direction core.Vec3) Intersect
}

// Movable primitives can be repositioned without touching their local axes.
// Scene rotation builds a clone of the primitive list through this interface.
type Movable interface {
	Primitive
	Position() core.Vec3
	WithPosition(center core.Vec3) Primitive
}

// Intersect records the result of a ray/primitive test
type Intersect struct {
	Point          core.Vec3
	Normal         core.Vec3 // Unit, pointing out of the surface
	Distance       float64   // Ray parameter t
	IsIntersecting bool
	Material       *material.Material
	U, V           float64 // Surface parameterization in [0,1]x[0,1]
}

// NewIntersect creates a hit record
func NewIntersect(point, normal core.Vec3, distance float64, mat *material.Material, u, v float64) Intersect {
	return Intersect{
		Point:          point,
		Normal:         normal,
		Distance:       distance,
		IsIntersecting: true,
		Material:       mat,
		U:              u,
		V:              v,
	}
}

// EmptyIntersect returns the no-hit sentinel. Its material is the inert
// black material so reading it before checking IsIntersecting is safe.
func EmptyIntersect() Intersect {
	return Intersect{Material: material.Black()}
}
