package sky

import (
	"math"

	"github.com/jlope384/Proyecto-2-Graficas/pkg/core"
)

// Kind selects the procedural model a Skybox evaluates
type Kind int

const (
	Solid Kind = iota
	Gradient
	AtmosphericSunset
	StarryNight
	CloudySky
	Space
)

// String returns the kind name used in logs
func (k Kind) String() string {
	switch k {
	case Solid:
		return "solid"
	case Gradient:
		return "gradient"
	case AtmosphericSunset:
		return "sunset"
	case StarryNight:
		return "starry-night"
	case CloudySky:
		return "cloudy"
	case Space:
		return "space"
	default:
		return "unknown"
	}
}

// Skybox maps ray directions to background colors. A Skybox is immutable
// once built; the With* methods return modified copies.
type Skybox struct {
	Kind         Kind
	Top          core.Vec3 // Solid color, or the zenith color of a gradient
	Bottom       core.Vec3 // Nadir color of a gradient
	SunDirection core.Vec3 // Unit vector toward the sun
	TimeOfDay    float64   // 0 = midnight, 0.5 = noon, 1 = midnight
}

var defaultSunDirection = core.NewVec3(0.3, 0.8, 0.5).Normalize()

// New creates a skybox of the given kind with the default sun
func New(kind Kind) *Skybox {
	return &Skybox{
		Kind:         kind,
		SunDirection: defaultSunDirection,
		TimeOfDay:    0.6,
	}
}

// NewSolid creates a single-color sky
func NewSolid(color core.Vec3) *Skybox {
	s := New(Solid)
	s.Top = color
	return s
}

// NewGradient creates a vertical gradient sky
func NewGradient(top, bottom core.Vec3) *Skybox {
	s := New(Gradient)
	s.Top = top
	s.Bottom = bottom
	return s
}

// WithSunDirection returns a copy with a new (normalized) sun direction
func (s *Skybox) WithSunDirection(direction core.Vec3) *Skybox {
	c := *s
	c.SunDirection = direction.Normalize()
	return &c
}

// WithTimeOfDay returns a copy with the time of day clamped to [0,1]
func (s *Skybox) WithTimeOfDay(t float64) *Skybox {
	c := *s
	c.TimeOfDay = math.Max(0, math.Min(1, t))
	return &c
}

// Color implements core.Sky
func (s *Skybox) Color(direction core.Vec3) core.Vec3 {
	d := direction.Normalize()
	switch s.Kind {
	case Gradient:
		return s.gradient(d)
	case AtmosphericSunset:
		return s.sunset(d)
	case StarryNight:
		return s.starryNight(d)
	case CloudySky:
		return s.cloudy(d)
	case Space:
		return s.space(d)
	default:
		return s.Top
	}
}

func (s *Skybox) gradient(d core.Vec3) core.Vec3 {
	t := (d.Y + 1) * 0.5
	return s.Bottom.Lerp(s.Top, t)
}

var (
	horizonColor = core.NewVec3(1.0, 0.6, 0.3)
	zenithColor  = core.NewVec3(0.3, 0.7, 1.0)
	sunColor     = core.NewVec3(1.0, 0.9, 0.7)
	groundColor  = core.NewVec3(0.4, 0.3, 0.5)
	hazeColor    = core.NewVec3(1.0, 0.4, 0.2)
)

func (s *Skybox) sunset(d core.Vec3) core.Vec3 {
	height := (d.Y + 1) * 0.5

	color := groundColor
	if d.Y > 0 {
		color = zenithColor.Lerp(horizonColor, math.Pow(1-height, 0.8))
	}

	sunDot := math.Max(0, d.Dot(s.SunDirection))
	color = color.Add(sunColor.Multiply(math.Pow(sunDot, 32) * 2))
	color = color.Add(horizonColor.Multiply(math.Pow(sunDot, 4) * 0.3))

	// Haze thickens toward the horizon
	haze := math.Pow(1-math.Abs(d.Y), 2)
	return color.Add(hazeColor.Multiply(haze * 0.1))
}

var (
	nightColor    = core.NewVec3(0.02, 0.02, 0.08)
	starColor     = core.NewVec3(1.0, 1.0, 0.9)
	moonColor     = core.NewVec3(0.8, 0.8, 0.9)
	moonDirection = core.NewVec3(-0.3, 0.7, 0.6).Normalize()
)

func (s *Skybox) starryNight(d core.Vec3) core.Vec3 {
	height := (d.Y + 1) * 0.5
	color := nightColor.Multiply(0.5 + height*0.5)

	if density := Noise(d.Multiply(100)); density > 0.98 {
		brightness := (density - 0.98) / 0.02
		color = color.Add(starColor.Multiply(brightness * 0.8))
	}

	moonDot := math.Max(0, d.Dot(moonDirection))
	if moon := math.Pow(moonDot, 128); moon > 0.3 {
		color = color.Add(moonColor.Multiply(moon * 0.5))
	}
	return color
}

var (
	overcastColor  = core.NewVec3(0.6, 0.7, 0.9)
	cloudColor     = core.NewVec3(0.9, 0.9, 0.95)
	darkCloudColor = core.NewVec3(0.4, 0.4, 0.45)
)

func (s *Skybox) cloudy(d core.Vec3) core.Vec3 {
	height := (d.Y + 1) * 0.5
	color := overcastColor.Multiply(0.7 + height*0.3)

	// Three octaves, weights 1, 0.5, 0.25
	cover := (Noise(d.Multiply(5)) + Noise(d.Multiply(12))*0.5 + Noise(d.Multiply(25))*0.25) / 1.75
	if cover <= 0.3 {
		return color
	}

	strength := math.Min(1, (cover-0.3)/0.7)
	cloud := cloudColor
	if cover > 0.6 {
		cloud = cloudColor.Lerp(darkCloudColor, (cover-0.6)*2.5)
	}
	return color.Lerp(cloud, strength)
}

var (
	spaceColor   = core.NewVec3(0.01, 0.01, 0.03)
	nebulaPurple = core.NewVec3(0.8, 0.2, 0.6)
	nebulaBlue   = core.NewVec3(0.2, 0.6, 0.9)
	white        = core.NewVec3(1, 1, 1)
)

func (s *Skybox) space(d core.Vec3) core.Vec3 {
	color := spaceColor

	fine := Noise(d.Multiply(7)) * 0.5
	if nebula := Noise(d.Multiply(3)) + fine; nebula > 0.3 {
		tint := nebulaPurple.Lerp(nebulaBlue, fine)
		color = color.Add(tint.Multiply((nebula - 0.3) * 0.4))
	}

	if stars := Noise(d.Multiply(150)); stars > 0.95 {
		color = color.Add(white.Multiply((stars - 0.95) / 0.05))
	}
	if Noise(d.Multiply(300)) > 0.98 {
		color = color.Add(white.Multiply(0.3))
	}
	return color
}
