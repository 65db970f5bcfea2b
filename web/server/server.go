package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/jlope384/Proyecto-2-Graficas/pkg/scene"
)

// Limits on request parameters
const (
	MinSize        = 16
	MaxSize        = 2000
	MaxFrames      = 10000
	MaxWorkers     = 64
	RotatingFrames = 240 // Frames streamed for a rotating scene when none are requested
)

// Server handles web requests for the cube raytracer
type Server struct {
	port      int
	staticDir string
}

// NewServer creates a new web server serving the page from staticDir
func NewServer(port int, staticDir string) *Server {
	return &Server{port: port, staticDir: staticDir}
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene   string  `json:"scene"`   // Scene ID, as listed by /api/scenes
	Sky     string  `json:"sky"`     // Environment preset, empty keeps the scene's own
	Width   int     `json:"width"`   // Image width, 0 = scene default
	Height  int     `json:"height"`  // Image height, 0 = scene default
	Frames  int     `json:"frames"`  // Frames to stream, 0 = until refinement completes
	Workers int     `json:"workers"` // Parallel workers, 0 = CPU count
	Rotate  float64 `json:"rotate"`  // Scene rotation in degrees per frame, 0 = static
}

// ScenesPayload is the /api/scenes response
type ScenesPayload struct {
	scene.ScenesResponse
	Environments []string `json:"environments"`
}

// Handler returns the routes of the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Serve static files
	mux.Handle("/", http.FileServer(http.Dir(s.staticDir)))

	// API endpoints
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/health", s.handleHealth)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleScenes lists built-in and file scenes plus the environment presets
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	scenes, err := scene.ListAllScenes()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}

	payload := ScenesPayload{ScenesResponse: scenes}
	for _, env := range scene.Environments {
		payload.Environments = append(payload.Environments, env.Name)
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(payload)
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: query.Get("scene"), Sky: query.Get("sky")}
	if req.Scene == "" {
		req.Scene = "skyblock"
	}
	if err := validateSceneID(req.Scene); err != nil {
		return nil, err
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 0, MinSize, MaxSize); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 0, MinSize, MaxSize); err != nil {
		return nil, err
	}
	if req.Frames, err = parseIntParam(query, "frames", 0, 1, MaxFrames); err != nil {
		return nil, err
	}
	if req.Workers, err = parseIntParam(query, "workers", 0, 1, MaxWorkers); err != nil {
		return nil, err
	}
	if req.Rotate, err = parseFloatParam(query, "rotate", 0, -45, 45); err != nil {
		return nil, err
	}

	// A rotating scene never settles
	if req.Rotate != 0 && req.Frames == 0 {
		req.Frames = RotatingFrames
	}
	return req, nil
}

// validateSceneID accepts built-in scene names and "file:<name>" ids of files
// listed in the scenes directory. Paths are never accepted from clients.
func validateSceneID(id string) error {
	if _, ok := scene.Builtins[id]; ok {
		return nil
	}

	name, ok := strings.CutPrefix(id, "file:")
	if !ok {
		return fmt.Errorf("unknown scene %q", id)
	}
	if name == "" || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return fmt.Errorf("invalid scene name %q", name)
	}

	files, err := scene.ListConfigScenes()
	if err != nil {
		return fmt.Errorf("failed to list scenes: %w", err)
	}
	for _, info := range files {
		if info.ID == id {
			return nil
		}
	}
	return fmt.Errorf("unknown scene %q", id)
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseFloatParam parses a float parameter from URL query with validation
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %g and %g, got: %g", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}
