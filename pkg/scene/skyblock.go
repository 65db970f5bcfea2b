package scene

import (
	"github.com/jlope384/Proyecto-2-Graficas/pkg/core"
	"github.com/jlope384/Proyecto-2-Graficas/pkg/material"
	"github.com/jlope384/Proyecto-2-Graficas/pkg/renderer"
)

// NewSkyblockCamera returns the camera both built-in scenes start from
func NewSkyblockCamera() *renderer.Camera {
	return renderer.NewCamera(
		core.NewVec3(-5, 8, 8),
		core.NewVec3(0, 2, 0),
		core.NewVec3(0, 1, 0),
	)
}

// NewSkyblockScene creates a brick platform with floating cubes at different heights
func NewSkyblockScene() *Scene {
	s := newScene("skyblock", NewSkyblockCamera())

	rubber := material.NewRubber()
	bricks := material.NewBricks()
	ivory := material.NewIvory()
	glass := material.NewGlass()

	// Base platform
	s.AddCube(core.NewVec3(0, -2, 0), 2, bricks)
	s.AddCube(core.NewVec3(2, -2, 0), 2, bricks)
	s.AddCube(core.NewVec3(-2, -2, 0), 2, bricks)
	s.AddCube(core.NewVec3(0, -2, 2), 2, bricks)
	s.AddCube(core.NewVec3(0, -2, -2), 2, bricks)

	// Floating cubes
	s.AddCube(core.NewVec3(3, 0, 1), 1.5, rubber)
	s.AddCube(core.NewVec3(-3, 1, -1), 1.2, ivory)
	s.AddCube(core.NewVec3(1, 2, 3), 1, glass)
	s.AddCube(core.NewVec3(-1.5, 3, 2), 0.8, rubber)
	s.AddCube(core.NewVec3(2.5, 1.5, -2.5), 1.3, bricks)

	s.AddCube(core.NewVec3(-2.5, 4, 0.5), 1, ivory)
	s.AddCube(core.NewVec3(0.5, 5, -1.5), 0.7, glass)
	s.AddCube(core.NewVec3(4, 2.5, -0.5), 1.1, rubber)
	s.AddCube(core.NewVec3(-1, 6, 1), 0.6, bricks)
	s.AddCube(core.NewVec3(1.5, 3.5, 2.5), 0.9, ivory)

	return s
}
