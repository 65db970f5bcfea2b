package renderer

import (
	"image/color"
	"math"

	"github.com/jlope384/Proyecto-2-Graficas/pkg/core"
)

const (
	// FieldOfView is the vertical field of view in radians
	FieldOfView = math.Pi / 3
	// BlendAlpha is the weight of a new sample in the jittered LOD 2 tier
	BlendAlpha = 0.7
	// EdgeFactor darkens the border pixels of a splatted block
	EdgeFactor = 0.8
)

var jitterPattern = [4][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}

// PassRenderer is what the frame scheduler drives each frame
type PassRenderer interface {
	Clear()
	RenderAdaptive(lod int) int
	RenderFull() int
	RenderProgressive(samples int, cursor *int) (int, bool)
}

// Renderer traces primary rays from a camera into a surface. World may be
// swapped between frames; it must not change while a pass runs.
type Renderer struct {
	World   *World
	Camera  *Camera
	Surface Surface
	pool    *WorkerPool // nil renders inline
}

// NewRenderer creates a renderer. numWorkers == 1 renders inline; 0 uses one worker per CPU.
func NewRenderer(world *World, camera *Camera, surface Surface, numWorkers int) *Renderer {
	r := &Renderer{
		World:   world,
		Camera:  camera,
		Surface: surface,
	}
	if numWorkers != 1 {
		r.pool = NewWorkerPool(numWorkers)
		r.pool.Start()
	}
	return r
}

// Close stops the worker pool, if any
func (r *Renderer) Close() {
	if r.pool != nil {
		r.pool.Stop()
		r.pool = nil
	}
}

// Clear resets the surface to its background color
func (r *Renderer) Clear() {
	r.Surface.Clear()
}

// PrimaryRay returns the world-space direction through pixel (x,y)
func (r *Renderer) PrimaryRay(x, y int) core.Vec3 {
	width := float64(r.Surface.Width())
	height := float64(r.Surface.Height())
	aspect := width / height
	scale := math.Tan(FieldOfView * 0.5)

	sx := (2*float64(x)/width - 1) * aspect * scale
	sy := (-(2 * float64(y) / height) + 1) * scale

	return r.Camera.BasisChange(core.NewVec3(sx, sy, -1).Normalize())
}

// TracePixel shades pixel (x,y) and returns its display color
func (r *Renderer) TracePixel(x, y int) color.RGBA {
	return vec3ToColor(r.World.CastRay(r.Camera.Eye, r.PrimaryRay(x, y), 0))
}

// RenderFull traces every pixel once, painting over the existing contents
func (r *Renderer) RenderFull() int {
	width := r.Surface.Width()
	return r.runBands(r.Surface.Height(), func(start, end int) int {
		for y := start; y < end; y++ {
			for x := 0; x < width; x++ {
				r.Surface.SetPixel(x, y, r.TracePixel(x, y))
			}
		}
		return (end - start) * width
	})
}

// StepForLOD returns the pixel stride of an adaptive tier
func StepForLOD(lod int) int {
	switch {
	case lod <= 2:
		return 1
	case lod == 3:
		return 2
	case lod == 4:
		return 3
	default:
		return 4
	}
}

// RenderAdaptive renders one pass at a quality tier. LOD 1 traces every
// pixel; LOD 2 traces every pixel with a jitter offset and blends into the
// buffer; LOD 3, 4 and 5+ trace every 2nd/3rd/4th pixel and splat a block with
// darkened edges. The surface is not cleared here.
func (r *Renderer) RenderAdaptive(lod int) int {
	width, height := r.Surface.Width(), r.Surface.Height()
	step := StepForLOD(lod)

	var jx, jy int
	if lod == 2 {
		j := jitterPattern[lod%4]
		jx, jy = j[0], j[1]
	}

	rows := (height + step - 1) / step
	return r.runBands(rows, func(start, end int) int {
		traced := 0
		for row := start; row < end; row++ {
			y := row * step
			for x := 0; x < width; x += step {
				switch {
				case lod <= 1:
					r.Surface.SetPixel(x, y, r.TracePixel(x, y))
				case lod == 2:
					ax, ay := min(x+jx, width-1), min(y+jy, height-1)
					r.Surface.BlendPixel(ax, ay, r.TracePixel(ax, ay), BlendAlpha)
				default:
					fillAdaptiveBlock(r.Surface, x, y, r.TracePixel(x, y), step)
				}
				traced++
			}
		}
		return traced
	})
}

// RenderFast clears the surface and traces every scale-th pixel, upscaling
// each sample to a scale×scale block
func (r *Renderer) RenderFast(scale int) int {
	scale = max(1, scale)
	width, height := r.Surface.Width(), r.Surface.Height()
	r.Surface.Clear()

	rows := (height + scale - 1) / scale
	return r.runBands(rows, func(start, end int) int {
		traced := 0
		for row := start; row < end; row++ {
			y := row * scale
			for x := 0; x < width; x += scale {
				c := r.TracePixel(x, y)
				for dy := 0; dy < scale && y+dy < height; dy++ {
					for dx := 0; dx < scale && x+dx < width; dx++ {
						r.Surface.SetPixel(x+dx, y+dy, c)
					}
				}
				traced++
			}
		}
		return traced
	})
}

// RenderProgressive traces the next chunk of up to samples pixels in raster
// order starting at *cursor, advances the cursor and reports whether the
// whole frame has been covered
func (r *Renderer) RenderProgressive(samples int, cursor *int) (int, bool) {
	width := r.Surface.Width()
	total := width * r.Surface.Height()

	start := *cursor
	end := min(start+max(samples, 0), total)

	traced := 0
	if end > start {
		traced = r.runBands(end-start, func(from, to int) int {
			for i := start + from; i < start+to; i++ {
				x, y := i%width, i/width
				r.Surface.SetPixel(x, y, r.TracePixel(x, y))
			}
			return to - from
		})
	}

	*cursor = max(end, start)
	return traced, *cursor >= total
}

func (r *Renderer) runBands(n int, render func(start, end int) int) int {
	if r.pool == nil {
		return render(0, n)
	}
	return r.pool.RunBands(n, render)
}

// fillAdaptiveBlock splats c into a size×size block at (x,y); border pixels
// are scaled by EdgeFactor
func fillAdaptiveBlock(s Surface, x, y int, c color.RGBA, size int) {
	edge := color.RGBA{
		R: uint8(float64(c.R) * EdgeFactor),
		G: uint8(float64(c.G) * EdgeFactor),
		B: uint8(float64(c.B) * EdgeFactor),
		A: c.A,
	}
	width, height := s.Width(), s.Height()
	for dy := 0; dy < size && y+dy < height; dy++ {
		for dx := 0; dx < size && x+dx < width; dx++ {
			if dx == 0 || dy == 0 || dx == size-1 || dy == size-1 {
				s.SetPixel(x+dx, y+dy, edge)
			} else {
				s.SetPixel(x+dx, y+dy, c)
			}
		}
	}
}
