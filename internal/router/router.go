// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and the global error handler, and maps
// paths to their corresponding handlers.
package router

import (
	"github.com/deppfellow/reqvalidate/internal/handler"
	"github.com/deppfellow/reqvalidate/internal/middleware"
	"github.com/deppfellow/reqvalidate/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter builds the Echo instance serving the whole API.
//
// Middleware order matters:
//  1. RequestID runs first so every later layer can log the ID
//  2. ContextEnhancer attaches the request-scoped logger
//  3. RequestLogger wraps everything below it, so it sees final errors
//  4. Recover turns panics into errors for the global handler
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	r := echo.New()
	r.HideBanner = true
	r.HidePort = true

	r.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	r.Use(
		middleware.RequestID(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middlewares.Global.BodyLimit(),
	)

	registerSystemRoutes(r, h)
	registerValidatedRoutes(r, h)

	return r
}
