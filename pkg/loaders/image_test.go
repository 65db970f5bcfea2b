package loaders

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/jlope384/Proyecto-2-Graficas/pkg/core"
)

func writeTestPNG(t *testing.T, path string) {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	img.Set(1, 0, color.RGBA{R: 255, G: 0, B: 0, A: 255})
	img.Set(0, 1, color.RGBA{R: 0, G: 255, B: 0, A: 255})
	img.Set(1, 1, color.RGBA{R: 0, G: 0, B: 255, A: 255})

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("Failed to encode PNG: %v", err)
	}
}

// TestLoadImage creates a test PNG and verifies loading
func TestLoadImage(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "test.png")
	writeTestPNG(t, testFile)

	imageData, err := LoadImage(testFile)
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}

	if imageData.Width != 2 || imageData.Height != 2 {
		t.Errorf("Expected 2x2 image, got %dx%d", imageData.Width, imageData.Height)
	}
	if len(imageData.Pixels) != 4 {
		t.Errorf("Expected 4 pixels, got %d", len(imageData.Pixels))
	}
	if imageData.Format != "png" {
		t.Errorf("Expected png format, got %q", imageData.Format)
	}

	checkColor := func(name string, got, expected core.Vec3) {
		const tolerance = 0.01
		if got.Subtract(expected).Length() > tolerance {
			t.Errorf("%s: expected %v, got %v", name, expected, got)
		}
	}

	// Row-major, top-left origin
	checkColor("Top-left (white)", imageData.Pixels[0], core.NewVec3(1, 1, 1))
	checkColor("Top-right (red)", imageData.Pixels[1], core.NewVec3(1, 0, 0))
	checkColor("Bottom-left (green)", imageData.Pixels[2], core.NewVec3(0, 1, 0))
	checkColor("Bottom-right (blue)", imageData.Pixels[3], core.NewVec3(0, 0, 1))
}

// TestLoadImageNotFound verifies error handling for missing files
func TestLoadImageNotFound(t *testing.T) {
	_, err := LoadImage("nonexistent.png")
	if err == nil {
		t.Error("Expected error for non-existent file, got nil")
	}
}

func TestDecodeImageGarbage(t *testing.T) {
	_, err := DecodeImage(bytes.NewReader([]byte("definitely not an image")))
	if err == nil {
		t.Error("Expected decode error for garbage input, got nil")
	}
}
