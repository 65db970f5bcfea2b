package scene

import (
	"fmt"

	"github.com/jlope384/Proyecto-2-Graficas/pkg/core"
	"github.com/jlope384/Proyecto-2-Graficas/pkg/lights"
	"github.com/jlope384/Proyecto-2-Graficas/pkg/sky"
)

// Environment pairs a sky preset with a light that suits it
type Environment struct {
	Name  string
	Sky   func() *sky.Skybox
	Light func() *lights.PointLight
}

func pointLight(x, y, z float64, color core.Vec3, intensity float64) func() *lights.PointLight {
	return func() *lights.PointLight {
		return lights.NewPointLight(core.NewVec3(x, y, z), color, intensity)
	}
}

// Environments lists the presets in the order of the viewer's number keys
var Environments = []Environment{
	{"default", sky.Default, pointLight(5, 10, 5, core.NewVec3(1, 1, 1), 2)},
	{"sunset", sky.Sunset, pointLight(6, 3.6, 9.6, core.NewVec3(1, 0.7, 0.4), 2)},
	{"midday", sky.Midday, pointLight(0, 15, 0, core.NewVec3(1, 1, 0.95), 2.5)},
	{"night", sky.Night, pointLight(-6, 10, -4, core.NewVec3(0.6, 0.7, 1), 1.2)},
	{"overcast", sky.Overcast, pointLight(2, 12, 3, core.NewVec3(0.85, 0.85, 0.9), 1.5)},
	{"cosmic", sky.Cosmic, pointLight(-4, 8, 6, core.NewVec3(0.8, 0.6, 1), 1.8)},
}

// EnvironmentByName returns the environment preset with the given name
func EnvironmentByName(name string) (Environment, error) {
	for _, env := range Environments {
		if env.Name == name {
			return env, nil
		}
	}
	return Environment{}, fmt.Errorf("unknown environment %q (available: %v)", name, sky.Names())
}

// EnvironmentByKey returns the preset bound to number key n, counting from 1
func EnvironmentByKey(n int) (Environment, bool) {
	if n < 1 || n > len(Environments) {
		return Environment{}, false
	}
	return Environments[n-1], true
}
