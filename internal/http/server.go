// Package http exposes the expense store over a JSON REST API.
package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"expensetracker/internal/middleware/cors"
	"expensetracker/internal/middleware/ratelimit"
	"expensetracker/internal/middleware/trace"
	"expensetracker/internal/store"
)

// Options configures the server beyond its collaborators.
type Options struct {
	Addr           string
	Environment    string
	AllowedOrigins []string
}

type Server struct {
	http.Server

	environment string
	startedAt   time.Time

	expWriter     store.ExpenseWriter
	expLister     store.ExpenseLister
	expAggregator store.ExpenseAggregator
	expDeleter    store.ExpenseDeleter

	rateLimiter  *ratelimit.Limiter
	shutdownOnce sync.Once
}

// NewServer configures routes and middleware, returning a ready-to-run server.
func NewServer(opts Options, ew store.ExpenseWriter, el store.ExpenseLister, ea store.ExpenseAggregator, ed store.ExpenseDeleter) *Server {
	s := &Server{
		environment:   opts.Environment,
		startedAt:     time.Now(),
		expWriter:     ew,
		expLister:     el,
		expAggregator: ea,
		expDeleter:    ed,
		rateLimiter:   ratelimit.NewLimiter(ratelimit.DefaultConfig()),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /api/expenses", s.handleCreateExpense)
	mux.HandleFunc("GET /api/expenses", s.handleListExpenses)
	mux.HandleFunc("GET /api/expenses/analytics", s.handleExpenseAnalytics)
	mux.HandleFunc("DELETE /api/expenses/{id}", s.handleDeleteExpense)

	corsMW := cors.NewMiddleware(opts.AllowedOrigins)
	traceMW := trace.NewMiddleware(trace.ClientIP)
	limitMW := s.rateLimiter.Middleware(trace.ClientIP)

	handler := corsMW.Handler(traceMW.Middleware(limitMW(securityHeaders(mux))))

	s.Server = http.Server{
		Addr:    opts.Addr,
		Handler: handler,
	}

	return s
}

// Shutdown stops the HTTP server and the rate limiter's cleanup goroutine.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		if s.rateLimiter != nil {
			s.rateLimiter.Stop()
		}
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}

func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}
