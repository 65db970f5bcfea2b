package renderer

import "time"

// RenderStats accumulates per-frame scheduler results
type RenderStats struct {
	Frames       int           // Scheduler steps taken
	PixelsTraced int           // Primary rays traced over all frames
	PhaseFrames  map[Phase]int // Frames spent in each phase
	Resets       int           // Episodes started by a change
	LastFrame    FrameResult
	LastDuration time.Duration
	TotalTime    time.Duration
}

// NewRenderStats creates empty statistics
func NewRenderStats() *RenderStats {
	return &RenderStats{PhaseFrames: make(map[Phase]int)}
}

// Record adds one frame
func (rs *RenderStats) Record(result FrameResult, reset bool, elapsed time.Duration) {
	rs.Frames++
	rs.PixelsTraced += result.PixelsTraced
	rs.PhaseFrames[result.Phase]++
	if reset {
		rs.Resets++
	}
	rs.LastFrame = result
	rs.LastDuration = elapsed
	rs.TotalTime += elapsed
}

// AverageFrameTime returns the mean time per frame
func (rs *RenderStats) AverageFrameTime() time.Duration {
	if rs.Frames == 0 {
		return 0
	}
	return rs.TotalTime / time.Duration(rs.Frames)
}

// RaysPerSecond returns the primary ray throughput
func (rs *RenderStats) RaysPerSecond() float64 {
	if rs.TotalTime <= 0 {
		return 0
	}
	return float64(rs.PixelsTraced) / rs.TotalTime.Seconds()
}
