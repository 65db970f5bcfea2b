package renderer

import (
	"math"
	"time"

	"github.com/jlope384/Proyecto-2-Graficas/pkg/core"
	"github.com/jlope384/Proyecto-2-Graficas/pkg/geometry"
	"github.com/jlope384/Proyecto-2-Graficas/pkg/lights"
)

// SessionConfig contains configuration for an interactive render session
type SessionConfig struct {
	Width, Height int
	NumWorkers    int       // Parallel workers per pass (0 = CPU count, 1 = inline)
	OrbitSpeed    float64   // Camera orbit step in radians
	ZoomSpeed     float64   // Camera zoom step in world units
	RotationSpeed float64   // Scene rotation per frame in radians while rotating
	Pivot         core.Vec3 // Scene rotation axis passes through this point
	Scheduler     SchedulerConfig
}

// DefaultSessionConfig returns sensible default values for a width×height session
func DefaultSessionConfig(width, height int) SessionConfig {
	return SessionConfig{
		Width:         width,
		Height:        height,
		NumWorkers:    0,
		OrbitSpeed:    math.Pi / 100,
		ZoomSpeed:     0.1,
		RotationSpeed: math.Pi / 100,
		Scheduler:     DefaultSchedulerConfig(width, height),
	}
}

// Session owns the per-frame state of an interactive render: camera, scene
// rotation, scheduler and framebuffer. Step is called once per displayed frame.
type Session struct {
	Camera *Camera

	config      SessionConfig
	base        World // Unrotated scene
	frame       World // What the current frame renders
	angle       float64
	rotating    bool
	envChanged  bool
	framebuffer *Framebuffer
	renderer    *Renderer
	scheduler   *FrameScheduler
	stats       *RenderStats
	logger      core.Logger
}

// NewSession creates a session rendering world through camera
func NewSession(world World, camera *Camera, config SessionConfig, logger core.Logger) *Session {
	fb := NewFramebuffer(config.Width, config.Height)
	s := &Session{
		Camera:      camera,
		config:      config,
		base:        world,
		frame:       world,
		framebuffer: fb,
		scheduler:   NewFrameScheduler(config.Scheduler),
		stats:       NewRenderStats(),
		logger:      logger,
	}
	s.renderer = NewRenderer(&s.frame, camera, fb, config.NumWorkers)
	return s
}

// Step renders one frame's worth of work and returns what was done
func (s *Session) Step() FrameResult {
	start := time.Now()

	changed := s.Camera.IsChanged()
	if s.envChanged {
		changed = true
		s.envChanged = false
	}
	if s.rotating {
		s.angle = math.Mod(s.angle+s.config.RotationSpeed, 2*math.Pi)
		s.frame.Primitives = geometry.RotateAroundY(s.base.Primitives, s.config.Pivot, s.angle)
		changed = true
	}

	result := s.scheduler.Step(changed, s.renderer)
	s.stats.Record(result, changed, time.Since(start))

	if result.Phase == PhaseProgressive && result.Complete {
		s.logger.Printf("Refinement complete after %d frames (%d rays, avg %v/frame)\n",
			s.scheduler.FramesSinceChange, s.stats.PixelsTraced, s.stats.AverageFrameTime())
	}
	return result
}

// OrbitLeft, OrbitRight, OrbitUp and OrbitDown move the camera by the configured orbit speed
func (s *Session) OrbitLeft()  { s.Camera.Orbit(s.config.OrbitSpeed, 0) }
func (s *Session) OrbitRight() { s.Camera.Orbit(-s.config.OrbitSpeed, 0) }
func (s *Session) OrbitUp()    { s.Camera.Orbit(0, -s.config.OrbitSpeed) }
func (s *Session) OrbitDown()  { s.Camera.Orbit(0, s.config.OrbitSpeed) }

// ZoomIn moves the camera toward its target by the configured zoom speed
func (s *Session) ZoomIn() { s.Camera.ZoomIn(s.config.ZoomSpeed) }

// ZoomOut moves the camera away from its target by the configured zoom speed
func (s *Session) ZoomOut() { s.Camera.ZoomOut(s.config.ZoomSpeed) }

// SetRotating starts or stops the scene rotation. The current angle is kept.
func (s *Session) SetRotating(on bool) {
	if s.rotating == on {
		return
	}
	s.rotating = on
	state := "stopped"
	if on {
		state = "started"
	}
	s.logger.Printf("Scene rotation %s at %.1f°\n", state, s.angle*180/math.Pi)
}

// ToggleRotation flips the scene rotation and returns the new state
func (s *Session) ToggleRotation() bool {
	s.SetRotating(!s.rotating)
	return s.rotating
}

// Rotating reports whether the scene rotates each frame
func (s *Session) Rotating() bool {
	return s.rotating
}

// RotationAngle returns the current scene rotation in radians
func (s *Session) RotationAngle() float64 {
	return s.angle
}

// SetEnvironment swaps the sky and light between frames and restarts refinement
func (s *Session) SetEnvironment(sky core.Sky, light *lights.PointLight) {
	s.base.Sky, s.frame.Sky = sky, sky
	s.base.Light, s.frame.Light = light, light
	s.envChanged = true
}

// World returns the world rendered by the current frame
func (s *Session) World() *World {
	return &s.frame
}

// Framebuffer returns the surface the session renders into
func (s *Session) Framebuffer() *Framebuffer {
	return s.framebuffer
}

// Renderer returns the pass renderer, for one-off passes such as RenderFast
func (s *Session) Renderer() *Renderer {
	return s.renderer
}

// Scheduler exposes the scheduler state for display
func (s *Session) Scheduler() *FrameScheduler {
	return s.scheduler
}

// Stats returns the accumulated frame statistics
func (s *Session) Stats() *RenderStats {
	return s.stats
}

// Config returns the session configuration
func (s *Session) Config() SessionConfig {
	return s.config
}

// Close releases the render workers
func (s *Session) Close() {
	s.renderer.Close()
}
