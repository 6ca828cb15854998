package middleware

import (
	"github.com/deppfellow/reqvalidate/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// LoggerKey is the Echo context key holding the request-scoped logger.
const LoggerKey = "logger"

// ContextEnhancer builds a request-scoped logger and makes it available
// to handlers and to context-only code.
type ContextEnhancer struct {
	server *server.Server
}

// NewContextEnhancer creates a new ContextEnhancer using the app Server container.
func NewContextEnhancer(s *server.Server) *ContextEnhancer {
	return &ContextEnhancer{server: s}
}

// EnhanceContext returns an Echo middleware.
//
// For every request, it:
//  1. gets the request ID (from the RequestID middleware)
//  2. creates a child logger with request_id, method, path and ip
//  3. stores that logger in the Echo context
//  4. attaches it to the request context, so zerolog.Ctx(ctx) finds it
//     (the validation middleware logs through that path)
func (ce *ContextEnhancer) EnhanceContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			contextLogger := ce.server.Logger.With().
				Str("request_id", GetRequestID(c)).
				Str("method", c.Request().Method).
				Str("path", c.Path()). // route template, e.g. "/params/:foo/:bar"
				Str("ip", c.RealIP()).
				Logger()

			c.Set(LoggerKey, &contextLogger)

			ctx := contextLogger.WithContext(c.Request().Context())
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// GetLogger retrieves the request-scoped logger from Echo context.
//
// If EnhanceContext didn't run, it returns a no-op logger.
func GetLogger(c echo.Context) *zerolog.Logger {
	if logger, ok := c.Get(LoggerKey).(*zerolog.Logger); ok {
		return logger
	}

	logger := zerolog.Nop()
	return &logger
}
