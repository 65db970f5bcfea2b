package renderer

import (
	"math"

	"github.com/jlope384/Proyecto-2-Graficas/pkg/core"
)

// MaxPitch bounds the orbit elevation so the camera never reaches the poles
const MaxPitch = 1.5

// MinZoomDistance is the closest the eye gets to the center when zooming in
const MinZoomDistance = 0.1

// Camera is an orbit camera looking from Eye toward Center
type Camera struct {
	Eye     core.Vec3
	Center  core.Vec3
	Up      core.Vec3
	Forward core.Vec3
	Right   core.Vec3
	changed bool
}

// NewCamera creates a camera and derives its basis. A new camera reports changed.
func NewCamera(eye, center, up core.Vec3) *Camera {
	c := &Camera{
		Eye:    eye,
		Center: center,
		Up:     up,
	}
	c.UpdateBasisVectors()
	return c
}

// UpdateBasisVectors re-derives an orthonormal forward/right/up basis from eye, center and up
func (c *Camera) UpdateBasisVectors() {
	c.Forward = c.Center.Subtract(c.Eye).Normalize()
	c.Right = c.Forward.Cross(c.Up).Normalize()
	c.Up = c.Right.Cross(c.Forward)
	c.changed = true
}

// Orbit rotates the eye around the center by yaw and pitch radians. Pitch is
// clamped to [-MaxPitch, MaxPitch]. The eye must not coincide with the center.
func (c *Camera) Orbit(yaw, pitch float64) {
	rel := c.Eye.Subtract(c.Center)
	radius := rel.Length()

	currentYaw := math.Atan2(rel.Z, rel.X)
	currentPitch := math.Asin(math.Max(-1, math.Min(1, rel.Y/radius)))

	newYaw := currentYaw + yaw
	newPitch := math.Max(-MaxPitch, math.Min(MaxPitch, currentPitch+pitch))

	cosPitch := math.Cos(newPitch)
	c.Eye = c.Center.Add(core.NewVec3(
		radius*cosPitch*math.Cos(newYaw),
		radius*math.Sin(newPitch),
		radius*cosPitch*math.Sin(newYaw),
	))
	c.UpdateBasisVectors()
}

// Zoom moves the eye along the view direction; positive amounts move toward
// the center and stop MinZoomDistance short of it
func (c *Camera) Zoom(amount float64) {
	if amount > 0 {
		amount = min(amount, max(0, c.Distance()-MinZoomDistance))
	}
	forward := c.Center.Subtract(c.Eye).Normalize()
	c.Eye = c.Eye.Add(forward.Multiply(amount))
	c.UpdateBasisVectors()
}

// ZoomIn moves the eye toward the center by speed
func (c *Camera) ZoomIn(speed float64) {
	c.Zoom(speed)
}

// ZoomOut moves the eye away from the center by speed
func (c *Camera) ZoomOut(speed float64) {
	c.Zoom(-speed)
}

// BasisChange maps a camera-space direction (x right, y up, z backward) into world space
func (c *Camera) BasisChange(v core.Vec3) core.Vec3 {
	return c.Right.Multiply(v.X).
		Add(c.Up.Multiply(v.Y)).
		Subtract(c.Forward.Multiply(v.Z))
}

// IsChanged reports whether the camera moved since the last call and clears the flag
func (c *Camera) IsChanged() bool {
	changed := c.changed
	c.changed = false
	return changed
}

// MarkChanged sets the dirty flag without moving the camera
func (c *Camera) MarkChanged() {
	c.changed = true
}

// Pitch returns the current elevation angle of the eye above the center
func (c *Camera) Pitch() float64 {
	rel := c.Eye.Subtract(c.Center)
	return math.Asin(math.Max(-1, math.Min(1, rel.Y/rel.Length())))
}

// Distance returns the distance from the eye to the center
func (c *Camera) Distance() float64 {
	return c.Eye.Subtract(c.Center).Length()
}
