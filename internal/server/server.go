package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/pageza/recipebook/config"
	"github.com/pageza/recipebook/internal/logger"
	"github.com/pageza/recipebook/internal/middleware"
)

// Server represents the HTTP server
type Server struct {
	config  *config.Config
	handler http.Handler
	http    *http.Server
}

// New creates a server that serves handler on the configured address
func New(cfg *config.Config, handler http.Handler) *Server {
	wrapped := middleware.ErrorHandler(handler)
	return &Server{
		config:  cfg,
		handler: wrapped,
		http: &http.Server{
			Addr:              net.JoinHostPort(cfg.ServerHost, cfg.ServerPort),
			Handler:           wrapped,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Addr returns the listen address
func (s *Server) Addr() string {
	return s.http.Addr
}

// Handler returns the fully wrapped HTTP handler
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start serves until the server is shut down. It returns nil after a
// graceful shutdown.
func (s *Server) Start() error {
	logger.Info("starting server", "addr", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server, waiting at most five seconds
// for in-flight requests
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.http.Shutdown(ctx)
}
