package renderer

import (
	"testing"
)

// MockPassRenderer records which passes the scheduler asked for
type MockPassRenderer struct {
	Total         int // Pixels in the frame
	Clears        int
	AdaptiveLODs  []int
	FullPasses    int
	Progressive   int
	ProgressiveAt []int // Cursor at the start of each progressive call
}

func (m *MockPassRenderer) Clear() {
	m.Clears++
}

func (m *MockPassRenderer) RenderAdaptive(lod int) int {
	m.AdaptiveLODs = append(m.AdaptiveLODs, lod)
	return m.Total / (StepForLOD(lod) * StepForLOD(lod))
}

func (m *MockPassRenderer) RenderFull() int {
	m.FullPasses++
	return m.Total
}

func (m *MockPassRenderer) RenderProgressive(samples int, cursor *int) (int, bool) {
	m.Progressive++
	m.ProgressiveAt = append(m.ProgressiveAt, *cursor)
	end := min(*cursor+samples, m.Total)
	traced := end - *cursor
	*cursor = end
	return traced, end >= m.Total
}

func TestDefaultSchedulerConfig(t *testing.T) {
	config := DefaultSchedulerConfig(800, 600)

	if config.SamplesPerFrame != 4000 {
		t.Errorf("Expected 4000 samples per frame, got %d", config.SamplesPerFrame)
	}
	if config.ResetLOD != 4 || config.TargetLOD != 1 {
		t.Errorf("Expected LOD range 4 to 1, got %d to %d", config.ResetLOD, config.TargetLOD)
	}
	if config.AdaptiveFrames != 8 || config.FullFrames != 20 {
		t.Errorf("Expected phase limits 8/20, got %d/%d", config.AdaptiveFrames, config.FullFrames)
	}

	if tiny := DefaultSchedulerConfig(5, 5); tiny.SamplesPerFrame != 1 {
		t.Errorf("Tiny surfaces should still trace at least one pixel per frame, got %d", tiny.SamplesPerFrame)
	}
}

func TestFrameScheduler_Reset(t *testing.T) {
	s := NewFrameScheduler(DefaultSchedulerConfig(10, 10))
	s.FramesSinceChange = 30
	s.CurrentLOD = 1
	s.RenderComplete = true
	s.Progressive = true
	s.Cursor = 42

	s.Reset()

	if s.FramesSinceChange != 0 {
		t.Errorf("Expected 0 frames since change, got %d", s.FramesSinceChange)
	}
	if s.CurrentLOD != 4 {
		t.Errorf("Expected LOD 4, got %d", s.CurrentLOD)
	}
	if s.RenderComplete || s.Progressive || s.Cursor != 0 {
		t.Errorf("Reset should discard progressive state, got complete=%v progressive=%v cursor=%d",
			s.RenderComplete, s.Progressive, s.Cursor)
	}
}

func TestFrameScheduler_PhaseSequence(t *testing.T) {
	mock := &MockPassRenderer{Total: 100}
	s := NewFrameScheduler(SchedulerConfig{
		SamplesPerFrame: 30,
		ResetLOD:        4,
		TargetLOD:       1,
		AdaptiveFrames:  8,
		FullFrames:      20,
	})

	var results []FrameResult
	for frame := 1; frame <= 25; frame++ {
		results = append(results, s.Step(frame == 1, mock))
	}

	expectedLODs := []int{3, 3, 2, 2, 1, 1, 1, 1}
	for i, lod := range expectedLODs {
		r := results[i]
		if r.Phase != PhaseAdaptive || r.LOD != lod {
			t.Errorf("Frame %d: expected adaptive LOD %d, got %s LOD %d", i+1, lod, r.Phase, r.LOD)
		}
	}
	if len(mock.AdaptiveLODs) != 8 {
		t.Errorf("Expected 8 adaptive passes, got %d", len(mock.AdaptiveLODs))
	}

	if r := results[8]; r.Phase != PhaseFull || !r.Complete || r.PixelsTraced != 100 {
		t.Errorf("Frame 9: expected complete full pass, got %+v", r)
	}
	if mock.FullPasses != 1 {
		t.Errorf("Expected exactly one full pass, got %d", mock.FullPasses)
	}

	for i := 9; i < 20; i++ {
		if r := results[i]; r.Phase != PhaseIdle || r.PixelsTraced != 0 || !r.Complete {
			t.Errorf("Frame %d: expected idle complete frame, got %+v", i+1, r)
		}
	}

	// 100 pixels in chunks of 30: frames 21 to 24, then idle
	for i := 20; i < 24; i++ {
		if r := results[i]; r.Phase != PhaseProgressive {
			t.Errorf("Frame %d: expected progressive pass, got %s", i+1, r.Phase)
		}
	}
	if !results[23].Complete || results[22].Complete {
		t.Error("Expected progressive refinement to complete on frame 24")
	}
	if r := results[24]; r.Phase != PhaseIdle || !r.Complete {
		t.Errorf("Frame 25: expected idle after refinement, got %+v", r)
	}
	if got := mock.ProgressiveAt; len(got) != 4 || got[0] != 0 || got[3] != 90 {
		t.Errorf("Unexpected progressive cursors %v", got)
	}

	if mock.Clears != 0 {
		t.Errorf("Default configuration should never clear, got %d clears", mock.Clears)
	}
}

func TestFrameScheduler_ClearPolicy(t *testing.T) {
	tests := []struct {
		name       string
		resetLOD   int
		wantClears []bool
	}{
		{"Default reset LOD never clears", 4, []bool{false, false, false, false}},
		{"Coarse reset LOD clears while LOD 4", 5, []bool{true, true, false, false}},
		{"Coarser reset LOD", 6, []bool{true, true, true, true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultSchedulerConfig(10, 10)
			config.ResetLOD = tt.resetLOD
			s := NewFrameScheduler(config)
			mock := &MockPassRenderer{Total: 100}

			for i, want := range tt.wantClears {
				r := s.Step(i == 0, mock)
				if r.Cleared != want {
					t.Errorf("Frame %d (LOD %d): expected cleared=%v", i+1, r.LOD, want)
				}
			}
		})
	}
}

func TestFrameScheduler_ChangeRestartsEpisode(t *testing.T) {
	mock := &MockPassRenderer{Total: 1000}
	s := NewFrameScheduler(SchedulerConfig{
		SamplesPerFrame: 100,
		ResetLOD:        4,
		TargetLOD:       1,
		AdaptiveFrames:  8,
		FullFrames:      20,
	})

	for frame := 1; frame <= 23; frame++ {
		s.Step(frame == 1, mock)
	}
	if !s.Progressive || s.Cursor != 300 {
		t.Fatalf("Expected progressive pass at cursor 300, got progressive=%v cursor=%d", s.Progressive, s.Cursor)
	}

	r := s.Step(true, mock)
	if r.Phase != PhaseAdaptive || r.LOD != 3 {
		t.Errorf("Change should restart at adaptive LOD 3, got %s LOD %d", r.Phase, r.LOD)
	}
	if s.Progressive || s.Cursor != 0 || s.FramesSinceChange != 1 {
		t.Errorf("Change should discard progressive state, got progressive=%v cursor=%d frames=%d",
			s.Progressive, s.Cursor, s.FramesSinceChange)
	}
}

func TestFrameScheduler_ProgressiveCoversFrameOnce(t *testing.T) {
	const width, height, samples = 10, 7, 9

	surface := NewCountingSurface(width, height)
	r := NewRenderer(newSceneWorld(), newSceneCamera(), surface, 1)

	config := DefaultSchedulerConfig(width, height)
	config.SamplesPerFrame = samples
	s := NewFrameScheduler(config)

	for frame := 1; frame <= config.FullFrames; frame++ {
		s.Step(frame == 1, r)
	}
	surface.resetCounts()

	// The full pass left RenderComplete set; the first progressive step clears it
	steps := 0
	for {
		result := s.Step(false, r)
		if result.Phase != PhaseProgressive {
			t.Fatalf("Expected progressive pass, got %s", result.Phase)
		}
		steps++
		if result.Complete {
			break
		}
		if steps > width*height {
			t.Fatal("Progressive refinement never completed")
		}
	}

	// ceil(70 / 9)
	if steps != 8 {
		t.Errorf("Expected 8 progressive steps, got %d", steps)
	}
	for i, n := range surface.writes {
		if n != 1 {
			t.Errorf("Pixel (%d,%d) written %d times, expected 1", i%width, i/width, n)
		}
	}

	if result := s.Step(false, r); result.Phase != PhaseIdle || result.PixelsTraced != 0 {
		t.Errorf("Expected idle frame after refinement, got %+v", result)
	}
}

func TestFrameScheduler_NonPositiveSamplesStillProgress(t *testing.T) {
	for _, samples := range []int{0, -3} {
		mock := &MockPassRenderer{Total: 5}
		s := NewFrameScheduler(SchedulerConfig{
			SamplesPerFrame: samples,
			ResetLOD:        4,
			TargetLOD:       1,
			AdaptiveFrames:  8,
			FullFrames:      20,
		})
		if got := s.Config().SamplesPerFrame; got != 1 {
			t.Errorf("SamplesPerFrame %d: expected clamp to 1, got %d", samples, got)
		}

		// One pixel per progressive frame: frames 21..25 cover the 5 pixels
		var last FrameResult
		for frame := 1; frame <= 25; frame++ {
			last = s.Step(frame == 1, mock)
		}
		if last.Phase != PhaseProgressive || !last.Complete {
			t.Errorf("SamplesPerFrame %d: expected progressive completion on frame 25, got %+v", samples, last)
		}
		if mock.Progressive != 5 {
			t.Errorf("SamplesPerFrame %d: expected 5 progressive chunks, got %d", samples, mock.Progressive)
		}
	}
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase Phase
		want  string
	}{
		{PhaseIdle, "idle"},
		{PhaseAdaptive, "adaptive"},
		{PhaseFull, "full"},
		{PhaseProgressive, "progressive"},
	}
	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.want {
			t.Errorf("Expected %q, got %q", tt.want, got)
		}
	}
}
