// Package server provides the HTTP API over the name resolution engine.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/Mohammed-Abed-Alkareem/LLM-Institution-Profiler-sub001/internal/autocomplete"
	"github.com/Mohammed-Abed-Alkareem/LLM-Institution-Profiler-sub001/internal/config"
)

// Server is the HTTP server exposing the engine's query operations.
type Server struct {
	engine *autocomplete.Engine
	config *config.ServerConfig
	logger *zap.Logger
	server *http.Server
}

// NewServer creates a server with the given dependencies.
func NewServer(engine *autocomplete.Engine, cfg *config.ServerConfig, logger *zap.Logger) *Server {
	return &Server{
		engine: engine,
		config: cfg,
		logger: logger,
	}
}

// Router builds the chi router with all routes and middleware.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.Compress(5))

	r.Get("/api/v1/autocomplete", s.handleAutocomplete)
	r.Get("/api/v1/spell-corrections", s.handleSpellCorrections)
	r.Get("/api/v1/status", s.handleStatus)
	r.Post("/api/v1/reload", s.handleReload)
	r.Get("/health", s.handleHealth)
	return r
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.Router(),
	}
	s.logger.Info("Starting server", zap.String("addr", addr))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
