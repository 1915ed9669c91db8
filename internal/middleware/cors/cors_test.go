package cors

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHandlerAllowedOrigin(t *testing.T) {
	m := NewMiddleware([]string{"http://localhost:3000"})
	handler := m.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("Allow-Origin = %q", got)
	}
	if got := rec.Header().Get("Vary"); got != "Origin" {
		t.Errorf("Vary = %q", got)
	}
}

func TestHandlerDisallowedOrigin(t *testing.T) {
	m := NewMiddleware([]string{"http://localhost:3000"})
	handler := m.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Allow-Origin = %q, want empty", got)
	}
}

func TestHandlerAnswersPreflight(t *testing.T) {
	m := NewMiddleware([]string{"http://localhost:3000"})
	var reached bool
	handler := m.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
	}))

	req := httptest.NewRequest(http.MethodOptions, "/api/expenses", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if reached {
		t.Error("preflight must not reach the next handler")
	}
}

func TestAllowed(t *testing.T) {
	m := NewMiddleware([]string{"http://a.example.com"})
	if !m.Allowed("http://a.example.com") {
		t.Error("configured origin should be allowed")
	}
	if m.Allowed("http://b.example.com") {
		t.Error("unknown origin should not be allowed")
	}
}
