package core

import (
	"math"
	"testing"
)

func TestVec3_Cross(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec3
		expected Vec3
	}{
		{"X cross Y", NewVec3(1, 0, 0), NewVec3(0, 1, 0), NewVec3(0, 0, 1)},
		{"Y cross Z", NewVec3(0, 1, 0), NewVec3(0, 0, 1), NewVec3(1, 0, 0)},
		{"Z cross X", NewVec3(0, 0, 1), NewVec3(1, 0, 0), NewVec3(0, 1, 0)},
		{"Parallel vectors", NewVec3(2, 0, 0), NewVec3(5, 0, 0), NewVec3(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.a.Cross(tt.b)
			if result.Subtract(tt.expected).Length() > 1e-12 {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 4, 12).Normalize()
	if math.Abs(v.Length()-1.0) > 1e-12 {
		t.Errorf("Expected unit length, got %f", v.Length())
	}

	// Zero vector stays zero instead of producing NaN
	zero := Vec3{}.Normalize()
	if zero != (Vec3{}) {
		t.Errorf("Expected zero vector, got %v", zero)
	}
	if !zero.IsFinite() {
		t.Error("Normalized zero vector should be finite")
	}
}

func TestVec3_Lerp(t *testing.T) {
	a := NewVec3(0, 0, 0)
	b := NewVec3(2, 4, 6)

	mid := a.Lerp(b, 0.5)
	if mid != NewVec3(1, 2, 3) {
		t.Errorf("Expected (1,2,3), got %v", mid)
	}

	// t is clamped to [0,1]
	if a.Lerp(b, 2.0) != b {
		t.Errorf("Expected lerp past 1 to clamp to %v", b)
	}
	if a.Lerp(b, -1.0) != a {
		t.Errorf("Expected lerp below 0 to clamp to %v", a)
	}
}

func TestVec3_Component(t *testing.T) {
	v := NewVec3(7, 8, 9)
	for axis, expected := range []float64{7, 8, 9} {
		if got := v.Component(axis); got != expected {
			t.Errorf("Axis %d: expected %f, got %f", axis, expected, got)
		}
	}
}

func TestVec3_IsFinite(t *testing.T) {
	if !NewVec3(1, 2, 3).IsFinite() {
		t.Error("Expected finite vector")
	}
	if NewVec3(math.NaN(), 0, 0).IsFinite() {
		t.Error("NaN component should not be finite")
	}
	if NewVec3(0, math.Inf(1), 0).IsFinite() {
		t.Error("Inf component should not be finite")
	}
}
