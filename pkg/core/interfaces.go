package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// Sky maps a unit ray direction to a background color.
// Implementations must be pure and defined for every unit vector.
type Sky interface {
	Color(direction Vec3) Vec3
}

// TextureLookup resolves texture and normal-map ids referenced by materials.
// Texel coordinates are integers in [0,width)x[0,height); implementations
// clamp anything outside that range.
type TextureLookup interface {
	Dimensions(id string) (width, height int, ok bool)
	PixelColor(id string, x, y int) Vec3
	NormalFromMap(id string, x, y int) (Vec3, bool)
}
