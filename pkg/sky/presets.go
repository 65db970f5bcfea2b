package sky

import (
	"fmt"
	"sort"

	"github.com/jlope384/Proyecto-2-Graficas/pkg/core"
)

// DefaultColor is the flat backdrop used when no preset is chosen
var DefaultColor = core.NewVec3(0.26, 0.55, 0.89)

// Default returns the solid default sky
func Default() *Skybox {
	return NewSolid(DefaultColor)
}

// Sunset is an atmospheric sky with a low sun
func Sunset() *Skybox {
	return New(AtmosphericSunset).
		WithSunDirection(core.NewVec3(0.5, 0.3, 0.8)).
		WithTimeOfDay(0.8)
}

// Midday is a blue gradient with the sun overhead
func Midday() *Skybox {
	return NewGradient(core.NewVec3(0.3, 0.7, 1.0), core.NewVec3(0.6, 0.8, 1.0)).
		WithSunDirection(core.NewVec3(0, 1, 0))
}

// Night is a dark sky with stars and a moon
func Night() *Skybox {
	return New(StarryNight).WithTimeOfDay(0)
}

// Overcast is a grey-blue sky with procedural clouds
func Overcast() *Skybox {
	return New(CloudySky).WithTimeOfDay(0.5)
}

// Cosmic is deep space with nebulae and stars
func Cosmic() *Skybox {
	return New(Space)
}

// Presets maps preset names to their constructors
var Presets = map[string]func() *Skybox{
	"default":  Default,
	"sunset":   Sunset,
	"midday":   Midday,
	"night":    Night,
	"overcast": Overcast,
	"cosmic":   Cosmic,
}

// ByName returns a new skybox for a preset name
func ByName(name string) (*Skybox, error) {
	ctor, ok := Presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown sky preset %q (available: %v)", name, Names())
	}
	return ctor(), nil
}

// Names returns the preset names in sorted order
func Names() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
