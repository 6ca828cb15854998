package router

import (
	"github.com/deppfellow/reqvalidate/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers endpoints that are not part of the
// validated API surface.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	// Health status endpoint (used by load balancers and monitors).
	r.GET("/status", h.Health.CheckHealth)
}
