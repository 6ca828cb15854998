// Package server defines the core Server struct that composes the app's main dependencies.
//
// It contains the initialization logic to spin up the HTTP server
// and handles graceful shutdowns.
//
// It owns the lifecycle of:
//   - configuration
//   - the root logger
//   - http.Server
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/reqvalidate/internal/config"
	"github.com/rs/zerolog"
)

// ErrNotInitialized is returned by Start and Shutdown before SetupHTTPServer.
var ErrNotInitialized = errors.New("HTTP server not initialized")

// Server is the application container that holds shared resources.
//
// It is not the HTTP server itself. It holds:
//   - the config
//   - the logger
//   - an internal *http.Server used to listen and serve requests
type Server struct {
	// Config holds all environment/config values for the app.
	Config *config.Config

	// Logger is the application's main structured logger.
	Logger *zerolog.Logger

	// httpServer is configured in SetupHTTPServer and started in Start().
	httpServer *http.Server
}

// New constructs a Server. It does not start listening.
func New(cfg *config.Config, logger *zerolog.Logger) *Server {
	return &Server{
		Config: cfg,
		Logger: logger,
	}
}

// SetupHTTPServer configures the internal net/http server.
//
// The router is passed in as handler. Config stores timeouts as
// seconds.
func (s *Server) SetupHTTPServer(handler http.Handler) {
	s.httpServer = &http.Server{
		Addr:         ":" + s.Config.Server.Port,
		Handler:      handler,
		ReadTimeout:  time.Duration(s.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.Config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.Config.Server.IdleTimeout) * time.Second,
	}
}

// Start runs the HTTP server and blocks until it stops.
//
// It requires SetupHTTPServer to be called first. A graceful Shutdown is
// not reported as an error.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return ErrNotInitialized
	}

	s.Logger.Info().
		Str("port", s.Config.Server.Port).
		Str("env", s.Config.Primary.Env).
		Msg("starting server")

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve HTTP: %w", err)
	}
	return nil
}

// Shutdown stops accepting new connections and waits for inflight
// requests until ctx is done.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return ErrNotInitialized
	}

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	s.Logger.Info().Msg("server stopped")
	return nil
}

// ShutdownTimeout is the configured grace period for Shutdown.
func (s *Server) ShutdownTimeout() time.Duration {
	return time.Duration(s.Config.Server.ShutdownTimeout) * time.Second
}
