package handler

import (
	"time"

	"github.com/deppfellow/reqvalidate/internal/middleware"
	"github.com/deppfellow/reqvalidate/internal/server"
	"github.com/deppfellow/reqvalidate/internal/validation"
	"github.com/labstack/echo/v4"
)

// Handler is the base handler type that holds shared application dependencies.
//
// Concrete handlers embed it to reach config and logger via *server.Server.
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// HandlerFunc is a typed endpoint function. It receives the Locals the
// validation middleware collected and returns a response or an error.
type HandlerFunc[Res any] func(c echo.Context, locals validation.Locals) (Res, error)

// ResponseHandler defines how a successful handler result is written.
type ResponseHandler interface {
	// Handle writes the HTTP response for the given result.
	Handle(c echo.Context, result any) error

	// GetOperation returns an operation name used for structured logging.
	GetOperation() string
}

// JSONResponseHandler writes JSON responses with a given status code.
type JSONResponseHandler struct {
	status int
}

func (h JSONResponseHandler) Handle(c echo.Context, result any) error {
	return c.JSON(h.status, result)
}

func (h JSONResponseHandler) GetOperation() string {
	return "handler"
}

// handleRequest is the shared execution pipeline for typed handlers.
//
// It centralizes request-scoped logging, timing and response writing.
// Input validation already happened in the validation middleware, so the
// handler only ever sees Locals.
func handleRequest(
	c echo.Context,
	handler func(c echo.Context, locals validation.Locals) (any, error),
	responseHandler ResponseHandler,
) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", responseHandler.GetOperation()).
		Str("route", c.Path()).
		Logger()

	logger.Debug().Msg("handling request")

	result, err := handler(c, validation.GetLocals(c))
	handlerDuration := time.Since(start)

	if err != nil {
		logger.Error().
			Err(err).
			Dur("handler_duration", handlerDuration).
			Msg("handler execution failed")

		// The global error handler formats the response.
		return err
	}

	logger.Debug().
		Dur("handler_duration", handlerDuration).
		Msg("request completed successfully")

	return responseHandler.Handle(c, result)
}

// Handle wraps a typed handler with logging, timing and JSON response
// writing. It returns an echo.HandlerFunc so it can be registered directly
// on routes:
//
//	r.POST("/x", handler.Handle(h, myHandlerFn, http.StatusOK), validation.Body(s, opts))
func Handle[Res any](h Handler, handler HandlerFunc[Res], status int) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(c, func(c echo.Context, locals validation.Locals) (any, error) {
			return handler(c, locals)
		}, JSONResponseHandler{status: status})
	}
}
