// Package web provides the HTTP API for the contact ingestion service.
// The upload UI (a separate frontend) drives the mapping workflow entirely
// through these JSON endpoints.
package web

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/BytesPlatform/contact-ingest/internal/config"
	"github.com/BytesPlatform/contact-ingest/internal/core"
)

// Server is the HTTP server for the contact ingestion API.
type Server struct {
	service *core.Service
	cfg     *config.Config
	router  *chi.Mux
	server  *http.Server
}

// NewServer creates a new Server instance.
func NewServer(service *core.Service, cfg *config.Config) *Server {
	s := &Server{
		service: service,
		cfg:     cfg,
		router:  chi.NewRouter(),
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// setupMiddleware configures middleware for all routes.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(middleware.Timeout(s.cfg.Server.RequestTimeout))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.Get("/healthz", s.handleHealth)

	s.router.Route("/api", func(r chi.Router) {
		// Mapping sessions
		r.Post("/mappings", s.handleCreateMapping)
		r.Get("/mappings/{sessionID}", s.handleGetMapping)
		r.Put("/mappings/{sessionID}/fields/{field}", s.handleOverrideMapping)
		r.Post("/mappings/{sessionID}/confirm", s.handleConfirmMapping)

		// One-off engine calls
		r.Post("/validate", s.handleValidateColumn)
		r.Post("/phone/normalize", s.handleNormalizePhone)

		// Batch rollback
		r.Delete("/batches/{batchID}", s.handleRollbackBatch)

		// Import templates
		r.Get("/import-templates", s.handleListTemplates)
		r.Get("/import-templates/match", s.handleMatchTemplates)
		r.Get("/import-templates/{id}", s.handleGetTemplate)
		r.Post("/import-templates", s.handleCreateTemplate)
		r.Delete("/import-templates/{id}", s.handleDeleteTemplate)
	})
}

// Start begins listening for HTTP requests.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		IdleTimeout:  s.cfg.Server.IdleTimeout,
	}
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Router returns the underlying chi router for testing.
func (s *Server) Router() *chi.Mux {
	return s.router
}
