package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type sseEvent struct {
	Type string
	Data string
}

// parseSSE splits a recorded event stream into events
func parseSSE(t *testing.T, body string) []sseEvent {
	t.Helper()
	var events []sseEvent
	for _, block := range strings.Split(strings.TrimSpace(body), "\n\n") {
		var event sseEvent
		for _, line := range strings.Split(block, "\n") {
			switch {
			case strings.HasPrefix(line, "event: "):
				event.Type = strings.TrimPrefix(line, "event: ")
			case strings.HasPrefix(line, "data: "):
				event.Data = strings.TrimPrefix(line, "data: ")
			}
		}
		if event.Type == "" {
			t.Fatalf("Malformed SSE block %q", block)
		}
		events = append(events, event)
	}
	return events
}

func serve(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	s := NewServer(0, t.TempDir())
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHealth(t *testing.T) {
	rec := serve(t, "/api/health")

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("Expected status ok, got %v", body)
	}
}

func TestScenes(t *testing.T) {
	rec := serve(t, "/api/scenes")

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var payload ScenesPayload
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if len(payload.Groups) == 0 || payload.Groups[0].Name != "Built-in Scenes" {
		t.Fatalf("Expected built-in scenes first, got %+v", payload.Groups)
	}
	if len(payload.Environments) != 6 || payload.Environments[0] != "default" {
		t.Errorf("Unexpected environments %v", payload.Environments)
	}
}

func TestStaticFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>raytracer</h1>"), 0644); err != nil {
		t.Fatal(err)
	}
	s := NewServer(0, dir)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "raytracer") {
		t.Errorf("Expected index page, got %d %q", rec.Code, rec.Body.String())
	}
}

func TestParseRenderRequest(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected RenderRequest
		wantErr  bool
	}{
		{"defaults", "", RenderRequest{Scene: "skyblock"}, false},
		{"all params", "scene=diorama&sky=night&width=320&height=200&frames=30&workers=2",
			RenderRequest{Scene: "diorama", Sky: "night", Width: 320, Height: 200, Frames: 30, Workers: 2}, false},
		{"rotation gets a frame budget", "rotate=1.8", RenderRequest{Scene: "skyblock", Frames: RotatingFrames, Rotate: 1.8}, false},
		{"rotation keeps explicit frames", "rotate=-3&frames=10", RenderRequest{Scene: "skyblock", Frames: 10, Rotate: -3}, false},
		{"width too small", "width=8", RenderRequest{}, true},
		{"height too large", "height=5000", RenderRequest{}, true},
		{"frames not a number", "frames=many", RenderRequest{}, true},
		{"workers zero", "workers=0", RenderRequest{}, true},
		{"rotation too fast", "rotate=90", RenderRequest{}, true},
	}

	s := NewServer(0, "")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := s.parseRenderRequest(httptest.NewRequest(http.MethodGet, "/api/render?"+tt.query, nil))
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error for %q", tt.query)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if *req != tt.expected {
				t.Errorf("Got %+v, want %+v", *req, tt.expected)
			}
		})
	}
}

func TestValidateSceneID(t *testing.T) {
	tests := []struct {
		id      string
		wantErr bool
	}{
		{"skyblock", false},
		{"diorama", false},
		{"castle", true},
		{"", true},
		{"file:", true},
		{"file:..", true},
		{"file:../../../../tmp/x", true},
		{`file:..\x`, true},
		{"/etc/passwd.json", true},
		{"../scenes/glass-garden.json", true},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			err := validateSceneID(tt.id)
			if tt.wantErr && err == nil {
				t.Errorf("Expected %q to be rejected", tt.id)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Expected %q to be accepted, got %v", tt.id, err)
			}
		})
	}
}

func TestRender_UntilComplete(t *testing.T) {
	rec := serve(t, "/api/render?scene=skyblock&width=16&height=12&workers=1")

	if ct := rec.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("Expected event stream, got %q", ct)
	}

	events := parseSSE(t, rec.Body.String())
	counts := map[string]int{}
	for _, e := range events {
		counts[e.Type]++
	}
	if counts["error"] != 0 {
		t.Fatalf("Unexpected error events: %+v", events)
	}
	if counts["console"] == 0 {
		t.Error("Expected console events")
	}
	if counts["frame"] == 0 {
		t.Fatal("Expected frame events")
	}

	last := events[len(events)-1]
	if last.Type != "complete" {
		t.Fatalf("Expected the stream to end with complete, got %q", last.Type)
	}
	var summary RenderSummary
	if err := json.Unmarshal([]byte(last.Data), &summary); err != nil {
		t.Fatalf("Invalid summary: %v", err)
	}

	var first, final FrameUpdate
	seenFirst := false
	for _, e := range events {
		if e.Type != "frame" {
			continue
		}
		var update FrameUpdate
		if err := json.Unmarshal([]byte(e.Data), &update); err != nil {
			t.Fatalf("Invalid frame event: %v", err)
		}
		if update.Phase == "idle" {
			t.Errorf("Idle frame %d should not be streamed", update.Frame)
		}
		if update.RenderID != summary.RenderID {
			t.Errorf("Frame render ID %q differs from summary %q", update.RenderID, summary.RenderID)
		}
		if !seenFirst {
			first, seenFirst = update, true
		}
		final = update
	}

	if first.Frame != 1 || first.Phase != "adaptive" {
		t.Errorf("Expected frame 1 to be adaptive, got %+v", first)
	}
	if final.Phase != "progressive" || !final.Complete {
		t.Errorf("Expected the last frame to complete refinement, got phase %s complete %v", final.Phase, final.Complete)
	}
	if summary.Frames != final.Frame {
		t.Errorf("Summary frames = %d, last frame = %d", summary.Frames, final.Frame)
	}

	data, err := base64.StdEncoding.DecodeString(final.ImageData)
	if err != nil {
		t.Fatalf("Invalid base64: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Invalid PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 12 {
		t.Errorf("Expected 16x12 frame, got %v", b)
	}
}

func TestRender_FrameBudget(t *testing.T) {
	rec := serve(t, "/api/render?scene=diorama&sky=sunset&width=16&height=12&frames=5&workers=2&rotate=1.8")

	frames := 0
	events := parseSSE(t, rec.Body.String())
	for _, e := range events {
		if e.Type == "frame" {
			frames++
		}
	}
	// Rotation changes the scene every frame, so no step is idle
	if frames != 5 {
		t.Errorf("Expected 5 frame events, got %d", frames)
	}
	if events[len(events)-1].Type != "complete" {
		t.Errorf("Expected complete last, got %q", events[len(events)-1].Type)
	}
}

func TestRender_Errors(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		message string
	}{
		{"bad width", "width=abc", "Invalid request"},
		{"unknown scene", "scene=castle", "unknown scene"},
		{"unknown sky", "sky=aurora", "unknown environment"},
		{"absolute json path", "scene=/etc/x.json", "unknown scene"},
		{"relative json path", "scene=scenes/glass-garden.json", "unknown scene"},
		{"file id escaping scenes", "scene=file:../x", "invalid scene name"},
		{"file id with separator", "scene=file:sub/x", "invalid scene name"},
		{"unlisted file id", "scene=file:nonexistent", "unknown scene"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, "/api/render?"+tt.query)

			events := parseSSE(t, rec.Body.String())
			if len(events) != 1 || events[0].Type != "error" {
				t.Fatalf("Expected a single error event, got %+v", events)
			}
			if !strings.Contains(events[0].Data, tt.message) {
				t.Errorf("Expected %q in %q", tt.message, events[0].Data)
			}
		})
	}
}
