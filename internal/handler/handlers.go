package handler

import (
	"github.com/deppfellow/reqvalidate/internal/server"
)

// Handlers is a container that groups all HTTP handlers, so router setup
// passes one object around instead of many.
type Handlers struct {
	Health *HealthHandler // Health serves the liveness endpoint.
	Locals *LocalsHandler // Locals echoes validated request values.
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server) *Handlers {
	return &Handlers{
		Health: NewHealthHandler(s),
		Locals: NewLocalsHandler(s),
	}
}
