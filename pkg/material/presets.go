package material

import (
	"github.com/jlope384/Proyecto-2-Graficas/pkg/core"
)

// Texture ids used by the preset materials. Scenes that use a preset must
// register these ids with their TextureManager.
const (
	TextureBall              = "ball"
	TextureBallNormal        = "ball_normal"
	TextureBricks            = "bricks"
	TextureBricksNormal      = "bricks_normal"
	TextureGrassDirt         = "grass_dirt"
	TextureGrassDirtNormal   = "grass_dirt_normal"
	TextureCastleStone       = "castle_stone"
	TextureCastleStoneNormal = "castle_stone_normal"
	TextureWaterWaves        = "water_waves"
	TextureWaterNormal       = "water_normal"
	TextureLavaBubbles       = "lava_bubbles"
	TextureLavaNormal        = "lava_normal"
)

// NewRubber creates a matte textured rubber material
func NewRubber() *Material {
	return NewMaterial(core.NewVec3(0.3, 0.1, 0.1), 10, [4]float64{0.9, 0.1, 0, 0}, 0, TextureBall, TextureBallNormal)
}

// NewBricks creates a textured brick material
func NewBricks() *Material {
	return NewMaterial(core.NewVec3(0.8, 0.2, 0.1), 20, [4]float64{0.8, 0.2, 0, 0}, 0, TextureBricks, TextureBricksNormal)
}

// NewIvory creates a slightly reflective untextured ivory material
func NewIvory() *Material {
	return NewMaterial(core.NewVec3(0.4, 0.4, 0.3), 50, [4]float64{0.6, 0.3, 0.1, 0}, 0, "", "")
}

// NewGlass creates a mostly transparent glass material
func NewGlass() *Material {
	return NewMaterial(core.NewVec3(0.6, 0.7, 0.8), 125, [4]float64{0, 0.5, 0.1, 0.8}, 1.5, "", "")
}

// NewGrassDirt creates a natural green-brown ground material with low reflectivity
func NewGrassDirt() *Material {
	return NewMaterial(core.NewVec3(0.4, 0.6, 0.2), 15, [4]float64{0.8, 0.1, 0.05, 0}, 1.0, TextureGrassDirt, TextureGrassDirtNormal)
}

// NewCastleStone creates a sturdy grey stone with a medium highlight
func NewCastleStone() *Material {
	return NewMaterial(core.NewVec3(0.5, 0.5, 0.55), 35, [4]float64{0.7, 0.2, 0.08, 0}, 1.0, TextureCastleStone, TextureCastleStoneNormal)
}

// NewWater creates a translucent blue material that both reflects and refracts strongly
func NewWater() *Material {
	return NewMaterial(core.NewVec3(0.1, 0.3, 0.8), 80, [4]float64{0.1, 0.1, 0.7, 0.8}, 1.33, TextureWaterWaves, TextureWaterNormal)
}

// NewLava creates a bright orange material with a high diffuse weight
func NewLava() *Material {
	return NewMaterial(core.NewVec3(1.0, 0.3, 0.1), 25, [4]float64{0.9, 0.3, 0.05, 0}, 1.0, TextureLavaBubbles, TextureLavaNormal)
}

// NewCrystalGem creates a polished, highly transparent crystal
func NewCrystalGem() *Material {
	return NewMaterial(core.NewVec3(0.9, 0.9, 1.0), 150, [4]float64{0.05, 0.1, 0.8, 0.95}, 1.5, "", "")
}

// NewEmerald creates a green crystal
func NewEmerald() *Material {
	return NewCrystalGem().WithDiffuse(core.NewVec3(0.1, 0.9, 0.3))
}

// NewRuby creates a red crystal
func NewRuby() *Material {
	return NewCrystalGem().WithDiffuse(core.NewVec3(0.9, 0.1, 0.2))
}

// NewSapphire creates a blue crystal
func NewSapphire() *Material {
	return NewCrystalGem().WithDiffuse(core.NewVec3(0.1, 0.3, 0.9))
}

// NewWood creates a rough brown trunk material
func NewWood() *Material {
	return NewMaterial(core.NewVec3(0.6, 0.4, 0.2), 10, [4]float64{0.8, 0.15, 0.05, 0}, 1.0, "", "")
}

// NewLeaves creates a vivid, almost purely diffuse foliage material
func NewLeaves() *Material {
	return NewMaterial(core.NewVec3(0.2, 0.8, 0.3), 5, [4]float64{0.9, 0.1, 0, 0}, 1.0, "", "")
}

// NewDarkStone creates a weathered dark stone that reuses the castle textures
func NewDarkStone() *Material {
	return NewMaterial(core.NewVec3(0.3, 0.3, 0.35), 20, [4]float64{0.6, 0.3, 0.1, 0}, 1.0, TextureCastleStone, TextureCastleStoneNormal)
}

// Presets maps preset names to constructors. Used by JSON scene files.
var Presets = map[string]func() *Material{
	"rubber":       NewRubber,
	"bricks":       NewBricks,
	"ivory":        NewIvory,
	"glass":        NewGlass,
	"grass-dirt":   NewGrassDirt,
	"castle-stone": NewCastleStone,
	"water":        NewWater,
	"lava":         NewLava,
	"crystal":      NewCrystalGem,
	"emerald":      NewEmerald,
	"ruby":         NewRuby,
	"sapphire":     NewSapphire,
	"wood":         NewWood,
	"leaves":       NewLeaves,
	"dark-stone":   NewDarkStone,
}
