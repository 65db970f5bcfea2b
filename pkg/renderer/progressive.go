package renderer

import (
	"fmt"

	"github.com/jlope384/Proyecto-2-Graficas/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// clearLOD is the coarsest tier at which an adaptive pass starts from a cleared surface
const clearLOD = 4

// SchedulerConfig contains configuration for the frame scheduler
type SchedulerConfig struct {
	SamplesPerFrame int // Pixels traced per progressive frame
	ResetLOD        int // LOD after a camera change
	TargetLOD       int // Finest LOD the adaptive phase converges to
	AdaptiveFrames  int // Frames of adaptive passes after a change
	FullFrames      int // Frame index up to which the single full pass runs
}

// DefaultSchedulerConfig returns the interactive defaults for a width×height surface
func DefaultSchedulerConfig(width, height int) SchedulerConfig {
	return SchedulerConfig{
		SamplesPerFrame: max(1, width*height/120),
		ResetLOD:        4,
		TargetLOD:       1,
		AdaptiveFrames:  8,
		FullFrames:      20,
	}
}

// Phase identifies what a scheduler step rendered
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseAdaptive
	PhaseFull
	PhaseProgressive
)

func (p Phase) String() string {
	switch p {
	case PhaseAdaptive:
		return "adaptive"
	case PhaseFull:
		return "full"
	case PhaseProgressive:
		return "progressive"
	default:
		return "idle"
	}
}

// FrameResult describes one scheduler step
type FrameResult struct {
	Phase        Phase
	LOD          int
	PixelsTraced int
	Cleared      bool // Surface was cleared before the pass
	Complete     bool // Frame fully refined for the current episode
}

// FrameScheduler trades quality for latency after camera motion. Each call to
// Step renders exactly one pass: coarse adaptive tiers right after a change,
// then one full pass, then a progressive refinement in raster-order chunks.
type FrameScheduler struct {
	config            SchedulerConfig
	FramesSinceChange int
	CurrentLOD        int
	TargetLOD         int
	RenderComplete    bool
	Progressive       bool
	Cursor            int // Next pixel index of the progressive pass
}

// NewFrameScheduler creates a scheduler in the reset state. Progressive
// chunks trace at least one pixel.
func NewFrameScheduler(config SchedulerConfig) *FrameScheduler {
	config.SamplesPerFrame = max(1, config.SamplesPerFrame)
	s := &FrameScheduler{config: config}
	s.Reset()
	return s
}

// Config returns the scheduler configuration
func (s *FrameScheduler) Config() SchedulerConfig {
	return s.config
}

// Reset starts a new episode and discards any in-progress progressive state
func (s *FrameScheduler) Reset() {
	s.FramesSinceChange = 0
	s.CurrentLOD = s.config.ResetLOD
	s.TargetLOD = s.config.TargetLOD
	s.RenderComplete = false
	s.Progressive = false
	s.Cursor = 0
}

// Step advances the scheduler by one displayed frame and runs the selected pass on r
func (s *FrameScheduler) Step(changed bool, r PassRenderer) FrameResult {
	if changed {
		s.Reset()
	}

	// Refine one tier every other frame
	if s.FramesSinceChange%2 == 0 && s.CurrentLOD > s.TargetLOD {
		s.CurrentLOD = max(s.CurrentLOD-1, s.TargetLOD)
	}

	s.FramesSinceChange++

	switch {
	case s.FramesSinceChange <= s.config.AdaptiveFrames:
		result := FrameResult{Phase: PhaseAdaptive, LOD: s.CurrentLOD}
		if s.CurrentLOD >= clearLOD && s.Cursor == 0 {
			r.Clear()
			result.Cleared = true
		}
		result.PixelsTraced = r.RenderAdaptive(s.CurrentLOD)
		return result

	case s.FramesSinceChange <= s.config.FullFrames:
		if s.RenderComplete {
			return s.idle()
		}
		traced := r.RenderFull()
		s.RenderComplete = true
		return FrameResult{Phase: PhaseFull, LOD: s.CurrentLOD, PixelsTraced: traced, Complete: true}

	default:
		if !s.Progressive {
			s.Cursor = 0
			s.RenderComplete = false
			s.Progressive = true
		}
		if s.RenderComplete {
			return s.idle()
		}
		traced, complete := r.RenderProgressive(s.config.SamplesPerFrame, &s.Cursor)
		s.RenderComplete = complete
		return FrameResult{Phase: PhaseProgressive, LOD: s.CurrentLOD, PixelsTraced: traced, Complete: complete}
	}
}

func (s *FrameScheduler) idle() FrameResult {
	return FrameResult{Phase: PhaseIdle, LOD: s.CurrentLOD, Complete: s.RenderComplete}
}
