// Package cors applies cross-origin headers for the configured origins.
// Which origins are allowed is deployment configuration, not business logic:
// the development and deployed setups differ only in ALLOWED_ORIGINS.
package cors

import "net/http"

const (
	allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
	allowedHeaders = "Content-Type, Authorization"
)

// Middleware handles CORS for a fixed set of allowed origins.
type Middleware struct {
	origins map[string]struct{}
}

func NewMiddleware(allowedOrigins []string) *Middleware {
	origins := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		origins[o] = struct{}{}
	}
	return &Middleware{origins: origins}
}

// Handler sets CORS headers on every response whose Origin is allowed and
// answers preflight OPTIONS requests directly.
func (m *Middleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if _, ok := m.origins[origin]; ok {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
			w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Vary", "Origin")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Allowed reports whether the origin is in the configured set.
func (m *Middleware) Allowed(origin string) bool {
	_, ok := m.origins[origin]
	return ok
}
