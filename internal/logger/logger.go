// Package logger configures the application's structured logging.
//
// It uses *ZeroLog* and builds one root logger from the observability
// config. Request-scoped children are derived from it by the middleware
// package and carried on the request context.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/deppfellow/reqvalidate/internal/config"
	"github.com/rs/zerolog"
)

// New builds the root logger writing to stderr.
func New(cfg *config.ObservabilityConfig) zerolog.Logger {
	return NewWithWriter(cfg, os.Stderr)
}

// NewWithWriter builds the root logger writing to out.
//
// Format "console" renders human-friendly lines; any other format emits
// JSON. The service name and environment are attached to every entry.
func NewWithWriter(cfg *config.ObservabilityConfig, out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.GetLogLevel())
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	var writer io.Writer = out
	if cfg.Logging.Format == "console" {
		writer = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	return zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Logger()
}
