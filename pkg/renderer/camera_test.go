package renderer

import (
	"math"
	"testing"

	"github.com/jlope384/Proyecto-2-Graficas/pkg/core"
)

const epsilon = 1e-9

func checkOrthonormal(t *testing.T, c *Camera) {
	t.Helper()
	for name, v := range map[string]core.Vec3{"forward": c.Forward, "right": c.Right, "up": c.Up} {
		if math.Abs(v.Length()-1) > epsilon {
			t.Errorf("%s has length %f, expected 1", name, v.Length())
		}
	}
	if d := c.Forward.Dot(c.Right); math.Abs(d) > epsilon {
		t.Errorf("forward·right = %e, expected 0", d)
	}
	if d := c.Forward.Dot(c.Up); math.Abs(d) > epsilon {
		t.Errorf("forward·up = %e, expected 0", d)
	}
	if d := c.Right.Dot(c.Up); math.Abs(d) > epsilon {
		t.Errorf("right·up = %e, expected 0", d)
	}
}

func newTestCamera() *Camera {
	return NewCamera(core.NewVec3(-5, 8, 8), core.NewVec3(0, 2, 0), core.NewVec3(0, 1, 0))
}

func TestCamera_Basis(t *testing.T) {
	c := NewCamera(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))

	if c.Forward.Subtract(core.NewVec3(0, 0, -1)).Length() > epsilon {
		t.Errorf("Expected forward (0,0,-1), got %v", c.Forward)
	}
	if c.Right.Subtract(core.NewVec3(1, 0, 0)).Length() > epsilon {
		t.Errorf("Expected right (1,0,0), got %v", c.Right)
	}
	if c.Up.Subtract(core.NewVec3(0, 1, 0)).Length() > epsilon {
		t.Errorf("Expected up (0,1,0), got %v", c.Up)
	}
	checkOrthonormal(t, c)
}

func TestCamera_BasisChange(t *testing.T) {
	c := newTestCamera()

	tests := []struct {
		name     string
		input    core.Vec3
		expected core.Vec3
	}{
		{"Camera right", core.NewVec3(1, 0, 0), c.Right},
		{"Camera up", core.NewVec3(0, 1, 0), c.Up},
		{"Camera backward", core.NewVec3(0, 0, 1), c.Forward.Negate()},
		{"Straight ahead", core.NewVec3(0, 0, -1), c.Forward},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.BasisChange(tt.input)
			if got.Subtract(tt.expected).Length() > epsilon {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestCamera_OrthonormalAfterMotion(t *testing.T) {
	c := newTestCamera()
	speed := math.Pi / 100

	moves := []func(){
		func() { c.Orbit(speed, 0) },
		func() { c.Orbit(-speed, 0) },
		func() { c.Orbit(0, speed) },
		func() { c.Orbit(0, -speed) },
		func() { c.Zoom(0.1) },
		func() { c.Zoom(-0.1) },
	}

	for i := 0; i < 600; i++ {
		moves[(i*7+i/3)%len(moves)]()
		checkOrthonormal(t, c)
		if t.Failed() {
			t.Fatalf("Basis lost orthonormality after %d moves", i+1)
		}
	}
}

func TestCamera_PitchClamp(t *testing.T) {
	tests := []struct {
		name  string
		delta float64
	}{
		{"Upward", 0.2},
		{"Downward", -0.2},
		{"Huge step up", 10},
		{"Huge step down", -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCamera()
			for i := 0; i < 50; i++ {
				c.Orbit(0, tt.delta)
				if p := c.Pitch(); p > MaxPitch+epsilon || p < -MaxPitch-epsilon {
					t.Fatalf("Pitch %f escaped the clamp after %d steps", p, i+1)
				}
			}
			if math.Abs(math.Abs(c.Pitch())-MaxPitch) > 1e-6 {
				t.Errorf("Expected pitch to settle at the clamp, got %f", c.Pitch())
			}
			checkOrthonormal(t, c)
		})
	}
}

func TestCamera_OrbitKeepsRadius(t *testing.T) {
	c := newTestCamera()
	radius := c.Distance()

	for i := 0; i < 100; i++ {
		c.Orbit(math.Pi/100, math.Pi/300)
	}
	if math.Abs(c.Distance()-radius) > 1e-6 {
		t.Errorf("Expected radius %f, got %f", radius, c.Distance())
	}
	if c.Center != core.NewVec3(0, 2, 0) {
		t.Errorf("Orbit should not move the center, got %v", c.Center)
	}
}

func TestCamera_Zoom(t *testing.T) {
	c := NewCamera(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))

	c.ZoomIn(1)
	if c.Eye.Subtract(core.NewVec3(0, 0, 4)).Length() > epsilon {
		t.Errorf("Expected eye at (0,0,4) after zoom in, got %v", c.Eye)
	}
	c.ZoomOut(2)
	if c.Eye.Subtract(core.NewVec3(0, 0, 6)).Length() > epsilon {
		t.Errorf("Expected eye at (0,0,6) after zoom out, got %v", c.Eye)
	}
}

func TestCamera_ZoomStopsShortOfCenter(t *testing.T) {
	c := NewCamera(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))

	// Overshooting and repeated zooms both stop at the minimum distance
	c.ZoomIn(10)
	for i := 0; i < 20; i++ {
		c.ZoomIn(0.5)
	}
	if math.Abs(c.Distance()-MinZoomDistance) > epsilon {
		t.Errorf("Expected distance %f, got %f", MinZoomDistance, c.Distance())
	}
	if !c.Eye.IsFinite() || c.Eye.Z <= 0 {
		t.Errorf("Eye should stay in front of the center, got %v", c.Eye)
	}
	checkOrthonormal(t, c)

	// The camera still orbits and zooms out normally
	c.Orbit(0.3, 0.2)
	c.ZoomOut(1)
	if math.Abs(c.Distance()-(MinZoomDistance+1)) > 1e-6 {
		t.Errorf("Expected distance %f after zoom out, got %f", MinZoomDistance+1, c.Distance())
	}
	checkOrthonormal(t, c)
}

func TestCamera_IsChanged(t *testing.T) {
	c := newTestCamera()

	if !c.IsChanged() {
		t.Error("New camera should report changed")
	}
	if c.IsChanged() {
		t.Error("Flag should clear after being read")
	}

	c.Orbit(0.1, 0)
	if !c.IsChanged() {
		t.Error("Orbit should set the flag")
	}
	c.Zoom(0.1)
	if !c.IsChanged() {
		t.Error("Zoom should set the flag")
	}
	c.MarkChanged()
	if !c.IsChanged() {
		t.Error("MarkChanged should set the flag")
	}
	if c.IsChanged() {
		t.Error("Flag should stay clear without motion")
	}
}
