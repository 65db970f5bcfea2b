package main

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jlope384/Proyecto-2-Graficas/pkg/renderer"
	"github.com/jlope384/Proyecto-2-Graficas/pkg/scene"
)

var environmentKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
}

// Game drives a render session from the ebiten loop: one scheduler step per
// Update, one framebuffer upload per Draw
type Game struct {
	scene         *scene.Scene
	session       *renderer.Session
	frame         *ebiten.Image
	last          renderer.FrameResult
	environment   string
	showHUD       bool
	screenshotDir string
}

// NewGame creates a game rendering s with the given session settings
func NewGame(s *scene.Scene, config renderer.SessionConfig, screenshotDir string) *Game {
	return &Game{
		scene:         s,
		session:       renderer.NewSession(s.World(), s.Camera, config, &ViewerLogger{}),
		frame:         ebiten.NewImage(config.Width, config.Height),
		environment:   "default",
		showHUD:       true,
		screenshotDir: screenshotDir,
	}
}

// Update applies held and pressed keys, then renders one scheduler step
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	// Held keys move the camera every frame
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.session.OrbitLeft()
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.session.OrbitRight()
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.session.OrbitUp()
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.session.OrbitDown()
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		g.session.ZoomIn()
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		g.session.ZoomOut()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.ToggleRotation()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	for i, key := range environmentKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.setEnvironment(i + 1)
		}
	}

	g.last = g.session.Step()

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.saveScreenshot()
	}
	return nil
}

// Draw uploads the framebuffer and overlays the status text
func (g *Game) Draw(screen *ebiten.Image) {
	g.frame.WritePixels(g.session.Framebuffer().Image().Pix)
	screen.DrawImage(g.frame, nil)

	if g.showHUD {
		ebitenutil.DebugPrint(screen, g.status())
	}
}

// Layout keeps the logical screen at the framebuffer size; ebiten scales it to the window
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	config := g.session.Config()
	return config.Width, config.Height
}

// Close releases the render workers
func (g *Game) Close() {
	g.session.Close()
}

func (g *Game) setEnvironment(key int) {
	if env, ok := scene.EnvironmentByKey(key); ok && env.Name != g.environment {
		g.applyEnvironment(env)
	}
}

func (g *Game) applyEnvironment(env scene.Environment) {
	g.environment = env.Name
	g.session.SetEnvironment(env.Sky(), env.Light())
	log.Printf("Environment: %s\n", env.Name)
}

func (g *Game) status() string {
	stats := g.session.Stats()
	rotation := "off"
	if g.session.Rotating() {
		rotation = fmt.Sprintf("%.0f°", mgl64.RadToDeg(g.session.RotationAngle()))
	}
	return fmt.Sprintf("%s | %s\nsky: %s  rotation: %s  FPS: %.0f\n%s",
		g.scene.Name, renderer.Caption(g.last, stats), g.environment, rotation, ebiten.ActualFPS(),
		"arrows orbit  W/S zoom  R rotate  1-6 sky  P screenshot  H hud  Esc quit")
}

func (g *Game) saveScreenshot() {
	caption := ""
	if g.showHUD {
		caption = fmt.Sprintf("%s | %s", g.scene.Name, renderer.Caption(g.last, g.session.Stats()))
	}
	img := renderer.Snapshot(g.session.Framebuffer(), caption)

	filename := filepath.Join(g.screenshotDir, fmt.Sprintf("screenshot_%s.png", time.Now().Format("20060102_150405")))
	if err := renderer.SavePNG(img, filename); err != nil {
		log.Printf("Screenshot failed: %v\n", err)
		return
	}
	log.Printf("Screenshot saved as %s\n", filename)
}

// ViewerLogger routes session messages through the standard logger
type ViewerLogger struct{}

func (vl *ViewerLogger) Printf(format string, args ...interface{}) {
	log.Printf(format, args...)
}
