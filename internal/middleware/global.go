package middleware

import (
	"net/http"

	"github.com/deppfellow/reqvalidate/internal/errs"
	"github.com/deppfellow/reqvalidate/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// GlobalMiddlewares groups "global" middleware and the global error handler.
//
// The struct carries *server.Server so every middleware can read config
// values (CORS origins, body limit) and the root logger.
type GlobalMiddlewares struct {
	server *server.Server
}

// NewGlobalMiddlewares constructs the middleware bundle.
func NewGlobalMiddlewares(s *server.Server) *GlobalMiddlewares {
	return &GlobalMiddlewares{
		server: s,
	}
}

// CORS returns Echo's CORS middleware configured by the server config.
func (global *GlobalMiddlewares) CORS() echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: global.server.Config.Server.CORSAllowedOrigins,
	})
}

// BodyLimit rejects request bodies larger than the configured size with a 413.
func (global *GlobalMiddlewares) BodyLimit() echo.MiddlewareFunc {
	return middleware.BodyLimit(global.server.Config.Server.BodyLimit)
}

// statusOf derives the response status from a handler error.
//
// When a handler returns an error, Echo has not written the final status yet;
// GlobalErrorHandler decides it later. Reading it from the error avoids
// logging status=200 for a failed request.
// Reference: https://github.com/labstack/echo/issues/2310#issuecomment-1288196898
func statusOf(err error, fallback int) int {
	var httpErr *errs.HTTPError
	var echoErr *echo.HTTPError

	switch {
	case errors.As(err, &httpErr):
		return httpErr.Status
	case errors.As(err, &echoErr):
		return echoErr.Code
	case err != nil:
		return http.StatusInternalServerError
	default:
		return fallback
	}
}

// RequestLogger returns Echo's request logger middleware emitting one
// structured "API" line per request, with severity based on status:
//   - 5xx = server fault -> Error
//   - 4xx = client fault -> Warn
//   - otherwise -> Info
func (global *GlobalMiddlewares) RequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogError:   true,
		LogLatency: true,
		LogHost:    true,
		LogMethod:  true,
		LogURIPath: true,

		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			statusCode := statusOf(v.Error, v.Status)

			logger := GetLogger(c)

			var e *zerolog.Event
			switch {
			case statusCode >= 500:
				e = logger.Error().Err(v.Error)
			case statusCode >= 400:
				e = logger.Warn()
			default:
				e = logger.Info()
			}

			if requestID := GetRequestID(c); requestID != "" {
				e = e.Str("request_id", requestID)
			}

			e.
				Dur("latency", v.Latency).
				Int("status", statusCode).
				Str("method", v.Method).
				Str("uri", v.URI).
				Str("host", v.Host).
				Str("ip", c.RealIP()).
				Str("user_agent", c.Request().UserAgent()).
				Msg("API")

			return nil
		},
	})
}

// Recover turns handler panics into errors handled by GlobalErrorHandler.
func (global *GlobalMiddlewares) Recover() echo.MiddlewareFunc {
	return middleware.Recover()
}

// Secure returns Echo's secure headers middleware.
func (global *GlobalMiddlewares) Secure() echo.MiddlewareFunc {
	return middleware.Secure()
}

// toHTTPError normalizes any error into the client-facing shape.
//
//   - *errs.HTTPError passes through unchanged (validation failures land here)
//   - Echo's route 404 becomes "Route not found"
//   - other *echo.HTTPError keep their status and string message
//   - anything else is a 500 that hides the underlying message
func toHTTPError(err error) *errs.HTTPError {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	var echoErr *echo.HTTPError
	if !errors.As(err, &echoErr) {
		return errs.NewInternalServerError()
	}

	if echoErr.Code == http.StatusNotFound {
		return errs.NewNotFoundError("Route not found", nil)
	}

	message, ok := echoErr.Message.(string)
	if !ok {
		message = http.StatusText(echoErr.Code)
	}

	return &errs.HTTPError{
		Code:    errs.MakeUpperCaseWithUnderscores(http.StatusText(echoErr.Code)),
		Title:   http.StatusText(echoErr.Code),
		Message: message,
		Status:  echoErr.Code,
	}
}

// GlobalErrorHandler is the final error funnel for the entire HTTP server.
//
// Every error returned by a handler or middleware ends up here and is
// rendered as errs.HTTPError JSON. The original error is logged with the
// request-scoped logger.
func (global *GlobalMiddlewares) GlobalErrorHandler(err error, c echo.Context) {
	httpErr := toHTTPError(err)

	logger := GetLogger(c)

	e := logger.Warn()
	if httpErr.Status >= http.StatusInternalServerError {
		e = logger.Error().Stack()
	}
	e.Err(err).
		Int("status", httpErr.Status).
		Str("error_code", httpErr.Code).
		Msg(httpErr.Message)

	if c.Response().Committed {
		return
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(httpErr.Status)
	} else {
		err = c.JSON(httpErr.Status, httpErr)
	}
	if err != nil {
		logger.Error().Err(err).Msg("failed to write error response")
	}
}
