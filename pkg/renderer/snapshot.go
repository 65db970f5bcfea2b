package renderer

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/fogleman/gg"
)

const (
	hudHeight  = 18
	hudPadding = 6
)

// Caption formats a one-line status for a frame
func Caption(result FrameResult, stats *RenderStats) string {
	return fmt.Sprintf("%s LOD %d | %d rays | frame %d | %v/frame",
		result.Phase, result.LOD, result.PixelsTraced, stats.Frames, stats.AverageFrameTime().Round(100*time.Microsecond))
}

// Snapshot copies the framebuffer and, when caption is not empty, draws it
// on a translucent bar along the top edge
func Snapshot(fb *Framebuffer, caption string) *image.RGBA {
	img := fb.Snapshot()
	if caption == "" {
		return img
	}

	dc := gg.NewContextForRGBA(img)
	dc.SetRGBA(0, 0, 0, 0.55)
	dc.DrawRectangle(0, 0, float64(fb.Width()), hudHeight)
	dc.Fill()
	dc.SetRGB(1, 1, 1)
	dc.DrawStringAnchored(caption, hudPadding, hudHeight/2, 0, 0.35)
	return img
}

// SavePNG writes img to path, creating parent directories as needed
func SavePNG(img image.Image, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}
