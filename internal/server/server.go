// Package server exposes preview, dry-run, validation and health checks as
// a JSON HTTP API for the web layer.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/newkub/templates/internal/dryrun"
	"github.com/newkub/templates/internal/preview"
	"github.com/newkub/templates/internal/registry"
	"github.com/newkub/templates/internal/validation"
)

// RequestIDHeader carries the per-request id on responses.
const RequestIDHeader = "X-Request-ID"

// Server holds the services behind the API handlers. Handlers keep no state
// between requests.
type Server struct {
	Registry  *registry.Registry
	Previews  *preview.Service
	DryRuns   *dryrun.Service
	Validator *validation.Validator
}

// New wires a Server for templates in reg, resolving project names against
// workDir.
func New(reg *registry.Registry, workDir string) *Server {
	return &Server{
		Registry:  reg,
		Previews:  preview.NewService(reg),
		DryRuns:   dryrun.NewService(reg, workDir),
		Validator: validation.New(reg, workDir),
	}
}

// NewRouter builds the chi router with all API routes.
func NewRouter(s *Server) http.Handler {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/templates", s.ListTemplates)
		r.Route("/templates/{name}", func(r chi.Router) {
			r.Get("/preview", s.PreviewTemplate)
			r.Post("/dry-run", s.DryRunTemplate)
			r.Get("/validate", s.ValidateTemplate)
			r.Post("/validate", s.ValidateTemplate)
			r.Get("/health", s.CheckHealth)
		})
	})

	return r
}

// ListenAndServe serves the API on addr until ctx is cancelled.
func ListenAndServe(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving on %s: %w", addr, err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down server: %w", err)
		}
		return nil
	}
}

// requestID tags every response with a request id, reusing the caller's
// when one is sent.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(RequestIDHeader, id)
		ctx := context.WithValue(r.Context(), middleware.RequestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
