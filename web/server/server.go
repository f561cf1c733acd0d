package server

import (
	"encoding/json"
	"fmt"
	"image/png"
	"net/http"
	"strconv"

	"github.com/IndaPlus23/nilsmal-raytracer/pkg/core"
	"github.com/IndaPlus23/nilsmal-raytracer/pkg/renderer"
	"github.com/IndaPlus23/nilsmal-raytracer/pkg/scene"
)

// Server handles web requests for the batch raytracer
type Server struct {
	port   int
	logger core.Logger
}

// NewServer creates a new web server
func NewServer(port int, logger core.Logger) *Server {
	if logger == nil {
		logger = renderer.NewDefaultLogger()
	}
	return &Server{port: port, logger: logger}
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene   string // Scene name (e.g. "default")
	Width   int    // Image width, 0 for the scene default
	Height  int    // Image height, 0 for the scene default
	Workers int    // Render workers, 0 for CPU count
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Printf("Starting web server on http://localhost%s\n", addr)
	return http.ListenAndServe(addr, s.Routes())
}

// Routes builds the HTTP handler; exposed so tests can hit it directly
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/health", s.handleHealth)
	return mux
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleRender renders the requested scene synchronously and responds with
// the finished PNG.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}

	sceneObj, err := createScene(req.Scene)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Width > 0 && req.Height > 0 {
		sceneObj.Resize(req.Width, req.Height)
	}
	sceneObj.Config.NumWorkers = req.Workers

	if err := sceneObj.Validate(); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid scene: %v", err))
		return
	}

	raytracer := renderer.NewRaytracer(sceneObj, sceneObj.Config, s.logger)

	img, stats, err := raytracer.Render()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, fmt.Sprintf("render failed: %v", err))
		return
	}
	s.logger.Printf("Rendered %s (%dx%d) for %s in %v\n",
		req.Scene, sceneObj.Config.Width, sceneObj.Config.Height, r.RemoteAddr, stats.Elapsed)

	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, img); err != nil {
		s.logger.Printf("Error writing PNG response: %v\n", err)
	}
}

// parseRenderRequest extracts render parameters from query string
func (s *Server) parseRenderRequest(r *http.Request) (RenderRequest, error) {
	req := RenderRequest{Scene: "default"}

	query := r.URL.Query()
	if v := query.Get("scene"); v != "" {
		req.Scene = v
	}

	var err error
	if req.Width, err = intParam(query.Get("width"), 0); err != nil {
		return req, fmt.Errorf("width: %w", err)
	}
	if req.Height, err = intParam(query.Get("height"), 0); err != nil {
		return req, fmt.Errorf("height: %w", err)
	}
	if req.Workers, err = intParam(query.Get("workers"), 0); err != nil {
		return req, fmt.Errorf("workers: %w", err)
	}
	return req, nil
}

// intParam parses an optional non-negative integer query parameter
func intParam(value string, defaultValue int) (int, error) {
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("must be non-negative, got %d", n)
	}
	return n, nil
}

// writeError sends a JSON error body with the given status code
func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// createScene returns the named built-in scene
func createScene(name string) (*scene.Scene, error) {
	switch name {
	case "default":
		return scene.NewDefaultScene(), nil
	case "single":
		return scene.NewSingleSphereScene(), nil
	}
	return nil, fmt.Errorf("unknown scene: %s", name)
}
