package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"net/http"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/jlope384/Proyecto-2-Graficas/pkg/core"
	"github.com/jlope384/Proyecto-2-Graficas/pkg/renderer"
	"github.com/jlope384/Proyecto-2-Graficas/pkg/scene"
)

// FrameUpdate represents a single rendered frame sent via SSE
type FrameUpdate struct {
	RenderID     string `json:"renderId"`
	Frame        int    `json:"frame"`
	Phase        string `json:"phase"`
	LOD          int    `json:"lod"`
	PixelsTraced int    `json:"pixelsTraced"`
	Cleared      bool   `json:"cleared"`
	Complete     bool   `json:"complete"`
	ImageData    string `json:"imageData"` // Base64 encoded PNG of the framebuffer
	ElapsedMs    int64  `json:"elapsedMs"`
}

// RenderSummary is the payload of the final "complete" event
type RenderSummary struct {
	RenderID      string  `json:"renderId"`
	Frames        int     `json:"frames"`
	PixelsTraced  int     `json:"pixelsTraced"`
	Resets        int     `json:"resets"`
	RaysPerSecond float64 `json:"raysPerSecond"`
	ElapsedMs     int64   `json:"elapsedMs"`
}

// SSEEvent represents a unified SSE event for thread-safe writing
type SSEEvent struct {
	Type string `json:"type"` // "console", "frame", "error", "complete"
	Data string `json:"data"` // JSON-encoded data
}

// renderJob is one streamed render: its scene, session and event sink
type renderJob struct {
	id      string
	req     *RenderRequest
	scene   *scene.Scene
	session *renderer.Session
	console chan ConsoleMessage
	events  chan<- SSEEvent
	start   time.Time
}

// handleRender streams scheduler frames of a scene via SSE
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	s.setSSEHeaders(w)
	ctx := r.Context()

	// Single writer goroutine; the handler waits for it before returning
	events := make(chan SSEEvent, 100)
	done := make(chan struct{})
	go func() {
		s.writeSSEEvents(w, events)
		close(done)
	}()
	defer func() {
		close(events)
		<-done
	}()

	req, err := s.parseRenderRequest(r)
	if err != nil {
		sendEvent(ctx, events, "error", fmt.Sprintf("Invalid request: %v", err))
		return
	}

	job, err := s.newRenderJob(req, events)
	if err != nil {
		sendEvent(ctx, events, "error", err.Error())
		return
	}
	defer job.session.Close()

	job.run(ctx)
}

// setSSEHeaders sets the required headers for Server-Sent Events
func (s *Server) setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// writeSSEEvents writes events until the channel is closed. After a failed
// write the remaining events are drained so senders never block.
func (s *Server) writeSSEEvents(w http.ResponseWriter, events <-chan SSEEvent) {
	failed := false
	for event := range events {
		if failed {
			continue
		}
		if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, event.Data); err != nil {
			// Client disconnected during write
			failed = true
			continue
		}
		if flusher, ok := w.(http.Flusher); ok {
			flusher.Flush()
		}
	}
}

// sendEvent queues an event unless the client has gone away
func sendEvent(ctx context.Context, events chan<- SSEEvent, eventType, data string) bool {
	select {
	case events <- SSEEvent{Type: eventType, Data: data}:
		return true
	case <-ctx.Done():
		return false
	}
}

// sendJSON queues an event with a JSON-encoded payload
func sendJSON(ctx context.Context, events chan<- SSEEvent, eventType string, payload interface{}) bool {
	data, err := json.Marshal(payload)
	if err != nil {
		return sendEvent(ctx, events, "error", fmt.Sprintf("failed to encode %s: %v", eventType, err))
	}
	return sendEvent(ctx, events, eventType, string(data))
}

// newRenderJob loads and configures the requested scene and its session
func (s *Server) newRenderJob(req *RenderRequest, events chan<- SSEEvent) (*renderJob, error) {
	id := uuid.NewString()
	console := make(chan ConsoleMessage, 50)
	logger := NewWebLogger(id, console)

	sc, err := s.createScene(req, logger)
	if err != nil {
		return nil, err
	}

	config := sc.SessionConfig()
	config.NumWorkers = req.Workers
	if req.Rotate != 0 {
		config.RotationSpeed = mgl64.DegToRad(req.Rotate)
	}

	job := &renderJob{
		id:      id,
		req:     req,
		scene:   sc,
		session: renderer.NewSession(sc.World(), sc.Camera, config, logger),
		console: console,
		events:  events,
		start:   time.Now(),
	}
	job.session.SetRotating(req.Rotate != 0)
	return job, nil
}

// createScene loads a scene and applies the request overrides
func (s *Server) createScene(req *RenderRequest, logger core.Logger) (*scene.Scene, error) {
	sc, err := scene.Load(req.Scene)
	if err != nil {
		return nil, err
	}
	if req.Sky != "" {
		env, err := scene.EnvironmentByName(req.Sky)
		if err != nil {
			return nil, err
		}
		sc.SetEnvironment(env)
	}
	if req.Width > 0 {
		sc.Width = req.Width
	}
	if req.Height > 0 {
		sc.Height = req.Height
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	logger.Printf("Rendering %s (%d cubes) at %dx%d\n", sc.Name, sc.GetPrimitiveCount(), sc.Width, sc.Height)
	return sc, nil
}

// run steps the session, streaming every frame that changed the image,
// until the frame budget is spent or refinement completes
func (j *renderJob) run(ctx context.Context) {
	for frame := 1; ; frame++ {
		if ctx.Err() != nil {
			return
		}

		result := j.session.Step()
		if !j.flushConsole(ctx) {
			return
		}
		if result.Phase != renderer.PhaseIdle && !j.sendFrame(ctx, frame, result) {
			return
		}

		if j.req.Frames > 0 && frame >= j.req.Frames {
			break
		}
		if j.req.Frames == 0 && result.Phase == renderer.PhaseProgressive && result.Complete {
			break
		}
	}

	stats := j.session.Stats()
	sendJSON(ctx, j.events, "complete", RenderSummary{
		RenderID:      j.id,
		Frames:        stats.Frames,
		PixelsTraced:  stats.PixelsTraced,
		Resets:        stats.Resets,
		RaysPerSecond: stats.RaysPerSecond(),
		ElapsedMs:     time.Since(j.start).Milliseconds(),
	})
}

// flushConsole forwards queued log messages as console events
func (j *renderJob) flushConsole(ctx context.Context) bool {
	for {
		select {
		case msg := <-j.console:
			if !sendJSON(ctx, j.events, "console", msg) {
				return false
			}
		default:
			return true
		}
	}
}

func (j *renderJob) sendFrame(ctx context.Context, frame int, result renderer.FrameResult) bool {
	imageData, err := imageToBase64PNG(j.session.Framebuffer().Image())
	if err != nil {
		sendEvent(ctx, j.events, "error", fmt.Sprintf("failed to encode frame: %v", err))
		return false
	}

	return sendJSON(ctx, j.events, "frame", FrameUpdate{
		RenderID:     j.id,
		Frame:        frame,
		Phase:        result.Phase.String(),
		LOD:          result.LOD,
		PixelsTraced: result.PixelsTraced,
		Cleared:      result.Cleared,
		Complete:     result.Complete,
		ImageData:    imageData,
		ElapsedMs:    time.Since(j.start).Milliseconds(),
	})
}

// imageToBase64PNG converts an image to base64-encoded PNG
func imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
