package server

import (
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
)

// quietLogger keeps render logs out of test output
type quietLogger struct{}

func (quietLogger) Printf(format string, args ...interface{}) {}

func newTestServer() *Server {
	return NewServer(0, quietLogger{})
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()

	s.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("Expected JSON body, got error %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("Expected status ok, got %q", body["status"])
	}
}

func TestHandleRender(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/render?scene=single&width=16&height=12&workers=1", nil)
	rec := httptest.NewRecorder()

	s.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Expected image/png, got %q", ct)
	}

	img, err := png.Decode(rec.Body)
	if err != nil {
		t.Fatalf("Expected a decodable PNG, got %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 16 || bounds.Dy() != 12 {
		t.Errorf("Expected 16x12 image, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestHandleRender_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"unknown scene", "/api/render?scene=nonexistent"},
		{"malformed width", "/api/render?scene=single&width=abc"},
		{"negative height", "/api/render?scene=single&width=10&height=-5"},
	}

	s := newTestServer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rec := httptest.NewRecorder()

			s.Routes().ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("Expected status 400, got %d", rec.Code)
			}

			var body map[string]string
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("Expected JSON error body, got %v", err)
			}
			if body["error"] == "" {
				t.Error("Expected an error message in the body")
			}
		})
	}
}

func TestParseRenderRequest_Defaults(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/render", nil)

	parsed, err := s.parseRenderRequest(req)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if parsed.Scene != "default" {
		t.Errorf("Expected default scene, got %q", parsed.Scene)
	}
	if parsed.Width != 0 || parsed.Height != 0 || parsed.Workers != 0 {
		t.Errorf("Expected zero-value dimensions and workers, got %+v", parsed)
	}
}
