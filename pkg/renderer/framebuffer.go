package renderer

import (
	"image"
	"image/color"
)

// Surface receives pixel writes from the pass renderers
type Surface interface {
	Width() int
	Height() int
	SetPixel(x, y int, c color.RGBA)
	BlendPixel(x, y int, c color.RGBA, alpha float64)
	PixelAt(x, y int) color.RGBA
	Clear()
}

// Framebuffer is an in-memory Surface backed by an RGBA image.
// Writes outside the buffer are ignored.
type Framebuffer struct {
	img        *image.RGBA
	background color.RGBA
}

// NewFramebuffer creates a framebuffer cleared to opaque black
func NewFramebuffer(width, height int) *Framebuffer {
	fb := &Framebuffer{
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		background: color.RGBA{A: 255},
	}
	fb.Clear()
	return fb
}

func (fb *Framebuffer) Width() int  { return fb.img.Rect.Dx() }
func (fb *Framebuffer) Height() int { return fb.img.Rect.Dy() }

// SetBackgroundColor sets the color used by Clear
func (fb *Framebuffer) SetBackgroundColor(c color.RGBA) {
	fb.background = c
}

// BackgroundColor returns the color used by Clear
func (fb *Framebuffer) BackgroundColor() color.RGBA {
	return fb.background
}

// Clear fills the buffer with the background color
func (fb *Framebuffer) Clear() {
	pix := fb.img.Pix
	if len(pix) == 0 {
		return
	}
	pix[0], pix[1], pix[2], pix[3] = fb.background.R, fb.background.G, fb.background.B, fb.background.A
	// Doubling copy fills the rest
	for filled := 4; filled < len(pix); filled *= 2 {
		copy(pix[filled:], pix[:filled])
	}
}

// SetPixel writes one pixel
func (fb *Framebuffer) SetPixel(x, y int, c color.RGBA) {
	if !fb.inBounds(x, y) {
		return
	}
	i := fb.img.PixOffset(x, y)
	fb.img.Pix[i], fb.img.Pix[i+1], fb.img.Pix[i+2], fb.img.Pix[i+3] = c.R, c.G, c.B, c.A
}

// BlendPixel mixes c into the existing pixel: existing*(1-alpha) + c*alpha,
// truncated per channel
func (fb *Framebuffer) BlendPixel(x, y int, c color.RGBA, alpha float64) {
	if !fb.inBounds(x, y) {
		return
	}
	cur := fb.PixelAt(x, y)
	fb.SetPixel(x, y, color.RGBA{
		R: blendChannel(cur.R, c.R, alpha),
		G: blendChannel(cur.G, c.G, alpha),
		B: blendChannel(cur.B, c.B, alpha),
		A: blendChannel(cur.A, c.A, alpha),
	})
}

// PixelAt reads one pixel; out-of-range reads return transparent black
func (fb *Framebuffer) PixelAt(x, y int) color.RGBA {
	if !fb.inBounds(x, y) {
		return color.RGBA{}
	}
	i := fb.img.PixOffset(x, y)
	return color.RGBA{R: fb.img.Pix[i], G: fb.img.Pix[i+1], B: fb.img.Pix[i+2], A: fb.img.Pix[i+3]}
}

// BlitRegion copies a width×height rectangle from (srcX,srcY) to (dstX,dstY)
// within the buffer. Pixels whose source or destination falls outside the
// buffer are skipped. Overlapping regions copy as if through a temporary.
func (fb *Framebuffer) BlitRegion(srcX, srcY, width, height, dstX, dstY int) {
	if width <= 0 || height <= 0 {
		return
	}
	src := make([]color.RGBA, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			src[y*width+x] = fb.PixelAt(srcX+x, srcY+y)
		}
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !fb.inBounds(srcX+x, srcY+y) {
				continue
			}
			fb.SetPixel(dstX+x, dstY+y, src[y*width+x])
		}
	}
}

// Image exposes the backing image for presentation. Callers must not keep it
// across frames if they need a stable copy; use Snapshot for that.
func (fb *Framebuffer) Image() *image.RGBA {
	return fb.img
}

// Snapshot returns a copy of the current contents
func (fb *Framebuffer) Snapshot() *image.RGBA {
	c := image.NewRGBA(fb.img.Rect)
	copy(c.Pix, fb.img.Pix)
	return c
}

func (fb *Framebuffer) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < fb.Width() && y < fb.Height()
}

func blendChannel(cur, next uint8, alpha float64) uint8 {
	return uint8(float64(cur)*(1-alpha) + float64(next)*alpha)
}
