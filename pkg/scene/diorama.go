package scene

import (
	"github.com/jlope384/Proyecto-2-Graficas/pkg/core"
	"github.com/jlope384/Proyecto-2-Graficas/pkg/material"
)

// NewDioramaScene creates a floating island: a grass and stone base, a water
// pool, a lava vent, a small tree, a castle tower and three gems
func NewDioramaScene() *Scene {
	s := newScene("diorama", NewSkyblockCamera())

	grass := material.NewGrassDirt()
	stone := material.NewCastleStone()
	dark := material.NewDarkStone()
	water := material.NewWater()
	lava := material.NewLava()
	wood := material.NewWood()
	leaves := material.NewLeaves()

	// 3x3 grass top over a dark stone underside
	for x := -1; x <= 1; x++ {
		for z := -1; z <= 1; z++ {
			top := grass
			switch {
			case x == 1 && z == 1:
				top = water
			case x == -1 && z == 1:
				top = lava
			}
			s.AddCube(core.NewVec3(float64(x)*2, -2, float64(z)*2), 2, top)
		}
	}
	s.AddCube(core.NewVec3(0, -4, 0), 2, dark)
	s.AddCube(core.NewVec3(0, -5.5, 0), 1, dark)

	// Tree
	s.AddCube(core.NewVec3(-2, 0, -2), 1, wood)
	s.AddCube(core.NewVec3(-2, 1, -2), 1, wood)
	s.AddCube(core.NewVec3(-2, 2.25, -2), 1.5, leaves)

	// Tower
	s.AddCube(core.NewVec3(2, 0, -2), 1.2, stone)
	s.AddCube(core.NewVec3(2, 1.2, -2), 1.2, stone)
	s.AddCube(core.NewVec3(2, 2.2, -2), 0.8, dark)

	// Gems floating above the island
	s.AddCube(core.NewVec3(0, 3, 0), 0.6, material.NewEmerald())
	s.AddCube(core.NewVec3(-1.2, 4, 1.2), 0.5, material.NewRuby())
	s.AddCube(core.NewVec3(1.2, 5, 1.2), 0.5, material.NewSapphire())

	return s
}
