package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/reqvalidate/internal/middleware"
	"github.com/deppfellow/reqvalidate/internal/server"
	"github.com/labstack/echo/v4"
)

// HealthHandler exposes a "system" endpoint that load balancers and uptime
// monitors can use to verify the service is alive.
type HealthHandler struct {
	Handler
}

// NewHealthHandler constructs a HealthHandler with access to shared app dependencies.
func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// CheckHealth returns 200 with the overall status, the UTC timestamp and
// the configured environment. The service is stateless, so a process
// able to answer is healthy.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := map[string]any{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
	}

	if err := c.JSON(http.StatusOK, response); err != nil {
		logger.Error().Err(err).Msg("failed to write JSON response")
		return fmt.Errorf("failed to write JSON response: %w", err)
	}

	logger.Debug().Msg("health check passed")
	return nil
}
