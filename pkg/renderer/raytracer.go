package renderer

import (
	"image/color"
	"math"

	"github.com/jlope384/Proyecto-2-Graficas/pkg/core"
	"github.com/jlope384/Proyecto-2-Graficas/pkg/geometry"
	"github.com/jlope384/Proyecto-2-Graficas/pkg/lights"
	"github.com/jlope384/Proyecto-2-Graficas/pkg/material"
)

const (
	// MaxDepth is the deepest recursion level that still shades; deeper rays return the sky
	MaxDepth = 3
	// OriginBias nudges secondary ray origins off the surface
	OriginBias = 1e-4
)

// World is everything a ray can see during one frame. It is read-only while
// a pass renders, so it can be shared across workers.
type World struct {
	Primitives []geometry.Primitive
	Light      *lights.PointLight
	Sky        core.Sky
	Textures   core.TextureLookup
}

// CastRay returns the color seen along a ray. Depth counts recursion levels
// from the primary ray (0).
func (w *World) CastRay(origin, direction core.Vec3, depth int) core.Vec3 {
	if depth > MaxDepth {
		return w.Sky.Color(direction)
	}

	hit := w.nearestHit(origin, direction)
	if !hit.IsIntersecting {
		return w.Sky.Color(direction)
	}

	mat := hit.Material
	lightDir, _ := w.Light.DirectionFrom(hit.Point)
	viewDir := origin.Subtract(hit.Point).Normalize()
	normal := w.shadingNormal(hit)

	lightIntensity := w.Light.Intensity * (1 - w.castShadow(hit))

	diffuseColor := mat.Diffuse
	if mat.HasTexture() {
		tx, ty := w.texel(mat.TextureID, hit.U, hit.V)
		diffuseColor = w.Textures.PixelColor(mat.TextureID, tx, ty)
	}
	diffuse := diffuseColor.Multiply(math.Max(0, normal.Dot(lightDir)) * lightIntensity)

	reflectDir := Reflect(lightDir.Negate(), normal).Normalize()
	specularIntensity := math.Pow(math.Max(0, viewDir.Dot(reflectDir)), mat.Specular) * lightIntensity
	specular := w.Light.Color.Multiply(specularIntensity)

	phong := diffuse.Multiply(mat.Albedo[material.AlbedoDiffuse]).
		Add(specular.Multiply(mat.Albedo[material.AlbedoSpecular]))

	reflectivity := mat.Reflectivity()
	var reflectColor core.Vec3
	if reflectivity > 0 {
		reflectColor = w.castReflection(hit, direction, normal, depth)
	}

	transparency := mat.Transparency()
	var refractColor core.Vec3
	if transparency > 0 {
		if dir, ok := Refract(direction, normal, mat.RefractiveIndex); ok {
			refractColor = w.CastRay(offsetOrigin(hit, dir), dir, depth+1)
		} else {
			// Total internal reflection
			refractColor = w.castReflection(hit, direction, normal, depth)
		}
	}

	return phong.Multiply(1 - reflectivity - transparency).
		Add(reflectColor.Multiply(reflectivity)).
		Add(refractColor.Multiply(transparency))
}

// nearestHit scans every primitive; the first one wins on an exact tie
func (w *World) nearestHit(origin, direction core.Vec3) geometry.Intersect {
	nearest := geometry.EmptyIntersect()
	zbuffer := math.Inf(1)

	for _, p := range w.Primitives {
		hit := p.RayIntersect(origin, direction)
		if hit.IsIntersecting && hit.Distance < zbuffer {
			zbuffer = hit.Distance
			nearest = hit
		}
	}
	return nearest
}

// shadingNormal perturbs the geometric normal with the material's normal map, if any
func (w *World) shadingNormal(hit geometry.Intersect) core.Vec3 {
	normal := hit.Normal
	if !hit.Material.HasNormalMap() {
		return normal
	}

	id := hit.Material.NormalMapID
	tx, ty := w.texel(id, hit.U, hit.V)
	texNormal, ok := w.Textures.NormalFromMap(id, tx, ty)
	if !ok {
		return normal
	}

	// Tangent is degenerate for z-facing normals; Normalize leaves it zero
	tangent := core.NewVec3(normal.Y, -normal.X, 0).Normalize()
	bitangent := normal.Cross(tangent)

	return tangent.Multiply(texNormal.X).
		Add(bitangent.Multiply(texNormal.Y)).
		Add(normal.Multiply(texNormal.Z)).
		Normalize()
}

// texel truncates (u,v) to integer texel coordinates for a texture id
func (w *World) texel(id string, u, v float64) (int, int) {
	width, height, _ := w.Textures.Dimensions(id)
	return int(u * float64(width)), int(v * float64(height))
}

// castShadow returns 1 when any primitive blocks the segment to the light, else 0.
// It uses the geometric normal for the origin offset.
func (w *World) castShadow(hit geometry.Intersect) float64 {
	lightDir, lightDistance := w.Light.DirectionFrom(hit.Point)
	origin := offsetOrigin(hit, lightDir)

	for _, p := range w.Primitives {
		shadow := p.RayIntersect(origin, lightDir)
		if shadow.IsIntersecting && shadow.Distance < lightDistance {
			return 1
		}
	}
	return 0
}

func (w *World) castReflection(hit geometry.Intersect, direction, normal core.Vec3, depth int) core.Vec3 {
	dir := Reflect(direction, normal).Normalize()
	return w.CastRay(offsetOrigin(hit, dir), dir, depth+1)
}

// offsetOrigin moves the hit point along the geometric normal to the side the ray leaves from
func offsetOrigin(hit geometry.Intersect, direction core.Vec3) core.Vec3 {
	offset := hit.Normal.Multiply(OriginBias)
	if direction.Dot(hit.Normal) < 0 {
		return hit.Point.Subtract(offset)
	}
	return hit.Point.Add(offset)
}

// Reflect mirrors incident about normal: I - 2(I·N)N
func Reflect(incident, normal core.Vec3) core.Vec3 {
	return incident.Subtract(normal.Multiply(2 * incident.Dot(normal)))
}

// Refract bends incident through a surface with the given refractive index
// (the other side is assumed to be air). Rays leaving the surface, with
// incident·normal > 0, swap the indices and flip the normal. Returns false on
// total internal reflection.
func Refract(incident, normal core.Vec3, refractiveIndex float64) (core.Vec3, bool) {
	cosi := math.Max(-1, math.Min(1, incident.Dot(normal)))
	etai, etat := 1.0, refractiveIndex
	n := normal

	if cosi > 0 {
		etai, etat = etat, etai
		n = n.Negate()
	} else {
		cosi = -cosi
	}

	eta := etai / etat
	k := 1 - eta*eta*(1-cosi*cosi)
	if k < 0 {
		return core.Vec3{}, false
	}
	return incident.Multiply(eta).Add(n.Multiply(eta*cosi - math.Sqrt(k))), true
}

// vec3ToColor converts a linear color to RGBA by scaling to [0,255] and clamping.
// No gamma correction is applied.
func vec3ToColor(c core.Vec3) color.RGBA {
	return color.RGBA{
		R: toByte(c.X),
		G: toByte(c.Y),
		B: toByte(c.Z),
		A: 255,
	}
}

func toByte(v float64) uint8 {
	scaled := v * 255
	switch {
	case math.IsNaN(scaled) || scaled <= 0:
		return 0
	case scaled >= 255:
		return 255
	default:
		return uint8(scaled)
	}
}
