// Package server exposes the search system over HTTP as a JSON API.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	optisearch "github.com/Sanjay1766/OptiSearch-AI"
)

// Server wraps an http.Server around the search API routes.
type Server struct {
	server *http.Server
	router *chi.Mux
	system *optisearch.System
	logger *slog.Logger
}

// Config holds the HTTP server settings.
type Config struct {
	Port   int
	Logger *slog.Logger

	// AllowedOrigins restricts CORS. Empty allows any origin.
	AllowedOrigins []string
}

// New builds the router and the underlying http.Server. Requests answer
// 503 until the system's model is built or restored.
func New(system *optisearch.System, cfg Config) (*Server, error) {
	if system == nil {
		return nil, ErrSystemRequired
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{system: system, logger: logger}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(requestLogging(logger))
	router.Use(middleware.Recoverer)
	router.Use(corsHeaders(cfg.AllowedOrigins))

	router.Route("/api", func(r chi.Router) {
		r.Post("/search", s.handleSearch)
		r.Post("/search-by-location", s.handleSearchByLocation)
		r.Post("/search-by-skills", s.handleSearchBySkills)
		r.Post("/search-by-category", s.handleSearchByCategory)
		r.Get("/locations", s.handleLocations)
		r.Get("/categories", s.handleCategories)
		r.Get("/health", s.handleHealth)
	})

	s.router = router
	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return s, nil
}

// Handler returns the configured router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves requests until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", "address", s.server.Addr)

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}
	return nil
}

// Shutdown stops accepting new connections and drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("HTTP server shutdown error: %w", err)
	}
	s.logger.Info("HTTP server stopped")
	return nil
}

// requestLogging writes one log line per request.
func requestLogging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}

// corsHeaders answers preflight requests and sets the CORS response
// headers for allowed origins.
func corsHeaders(allowedOrigins []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			allowed := len(allowedOrigins) == 0
			if allowed {
				origin = "*"
			}
			for _, o := range allowedOrigins {
				if o == "*" || o == origin {
					allowed = true
					break
				}
			}

			if allowed && origin != "" {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, X-Request-ID")
				w.Header().Set("Access-Control-Max-Age", "86400")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
