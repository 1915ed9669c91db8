package http

import (
	"net/http"
	"time"
)

// handleRoot is the service banner: a basic liveness check with deployment
// metadata.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message":     "Expense Tracker Backend is running",
		"status":      "healthy",
		"environment": s.environment,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
	})
}

// handleHealth reports readiness and uptime.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "OK",
		"uptime":    time.Since(s.startedAt).String(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
