package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/deppfellow/reqvalidate/internal/config"
	"github.com/deppfellow/reqvalidate/internal/handler"
	"github.com/deppfellow/reqvalidate/internal/logger"
	"github.com/deppfellow/reqvalidate/internal/router"
	"github.com/deppfellow/reqvalidate/internal/server"
	"github.com/spf13/cobra"
)

// serveFlags override values loaded from the environment.
type serveFlags struct {
	port string
}

func newServeCmd() *cobra.Command {
	var f serveFlags

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server until SIGINT/SIGTERM",
		Example: `  # Defaults from the environment
  reqvalidate serve

  # Override the port
  reqvalidate serve --port 9090`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), f)
		},
	}

	cmd.Flags().StringVarP(&f.port, "port", "p", "", "HTTP server port (overrides REQVALIDATE_SERVER__PORT)")

	return cmd
}

func runServe(parent context.Context, f serveFlags) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if f.port != "" {
		cfg.Server.Port = f.port
	}

	log := logger.New(cfg.Observability)

	srv := server.New(cfg, &log)
	srv.SetupHTTPServer(router.NewRouter(srv, handler.NewHandlers(srv)))

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Start()
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), srv.ShutdownTimeout())
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	return <-serveErr
}
