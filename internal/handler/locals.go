package handler

import (
	"net/http"

	"github.com/deppfellow/reqvalidate/internal/server"
	"github.com/deppfellow/reqvalidate/internal/validation"
	"github.com/labstack/echo/v4"
)

// LocalsHandler answers with whatever the validation middleware stored.
type LocalsHandler struct {
	Handler
}

// NewLocalsHandler constructs a LocalsHandler.
func NewLocalsHandler(s *server.Server) *LocalsHandler {
	return &LocalsHandler{
		Handler: NewHandler(s),
	}
}

// Respond returns a 200 handler whose body is the request path plus one
// key per populated location:
//
//	{"path": "/query", "query": {"foo": 1, "bar": "query"}}
func (h *LocalsHandler) Respond() echo.HandlerFunc {
	return Handle(h.Handler, h.respond, http.StatusOK)
}

func (h *LocalsHandler) respond(c echo.Context, locals validation.Locals) (map[string]any, error) {
	payload := map[string]any{"path": c.Request().URL.Path}
	for loc, values := range locals {
		payload[string(loc)] = values
	}
	return payload, nil
}
