// Package server provides the HTTP JSON API for the portfolio site:
// resume parsing, the contact form, and read-only site content.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/daniel/portfolio-site/internal/content"
	"github.com/daniel/portfolio-site/internal/db"
	"github.com/daniel/portfolio-site/internal/resume"
	"github.com/daniel/portfolio-site/internal/server/middleware"
	"github.com/daniel/portfolio-site/internal/server/ratelimit"
)

// Config holds server configuration.
type Config struct {
	Port        int
	DatabaseURL string // optional: without it the contact form is disabled
	ContentDir  string
	JWTSecret   string // optional: without it admin endpoints are disabled
}

// Server is the HTTP server for the portfolio API.
type Server struct {
	httpServer  *http.Server
	parser      *resume.Parser
	contentDB   *content.Store
	db          *db.DB
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService
}

// New creates a server instance. The content directory is loaded and
// validated eagerly so a bad deployment fails at startup, not per request.
func New(cfg Config) (*Server, error) {
	store, err := content.Load(cfg.ContentDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load site content: %w", err)
	}

	s := &Server{
		parser:      resume.NewParser(),
		contentDB:   store,
		rateLimiter: ratelimit.NewLimiter(nil),
	}

	if cfg.DatabaseURL != "" {
		database, err := db.Connect(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := database.EnsureSchema(context.Background()); err != nil {
			database.Close()
			return nil, err
		}
		s.db = database
	}

	if cfg.JWTSecret != "" {
		jwtService, err := NewJWTService(cfg.JWTSecret, 24*time.Hour)
		if err != nil {
			return nil, err
		}
		s.jwtService = jwtService
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/resume/parse", s.handleParseResume)
	mux.HandleFunc("POST /api/contact", s.handleContact)
	mux.HandleFunc("GET /api/content/profile", s.handleProfile)
	mux.HandleFunc("GET /api/content/case-studies", s.handleCaseStudies)
	mux.HandleFunc("GET /api/content/metrics", s.handleMetrics)
	mux.HandleFunc("GET /health", s.handleHealth)
	if s.jwtService != nil {
		mux.Handle("GET /api/admin/messages",
			middleware.RequireAuth(s.jwtService, http.HandlerFunc(s.handleListMessages)))
	}

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           s.rateLimitMiddleware(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s, nil
}

// Start runs the server until SIGINT/SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		log.Printf("received %s, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	if s.db != nil {
		s.db.Close()
	}
	return nil
}

// Handler exposes the configured handler for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// rateLimitMiddleware applies the per-client limiter to every request.
func (s *Server) rateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.rateLimiter.Allow(clientIP(r), r.URL.Path, r.Method) {
			s.errorResponse(w, http.StatusTooManyRequests, "Rate limit exceeded, try again later")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP extracts the client address, preferring X-Forwarded-For when a
// proxy set it.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if idx := strings.IndexByte(fwd, ','); idx > 0 {
			return strings.TrimSpace(fwd[:idx])
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response with the given status code.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
