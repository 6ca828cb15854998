package validation

import (
	"errors"
	"time"

	"github.com/deppfellow/reqvalidate/internal/errs"
	"github.com/deppfellow/reqvalidate/internal/schema"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// forcedDefaults sit between caller options and the schema library defaults:
// unknown keys are stripped unless the caller says otherwise.
var forcedDefaults = schema.Options{StripUnknown: schema.Bool(true)}

// Run performs one validation pass over req.
//
// Flow:
//  1. Resolve ReadFrom/WriteTo (configured value, else the method default).
//  2. Read the mapping at ReadFrom.
//  3. Validate it with caller options layered over {StripUnknown: true}.
//  4. On rejection return a 400 *errs.HTTPError carrying the validator's
//     message and details. locals is left untouched.
//  5. On success merge the coerced mapping into locals at WriteTo.
//
// Errors that are not validation failures (unreadable body, unusable schema)
// are returned as-is.
func Run(req Request, locals Locals, s schema.Schema, opts schema.Options, cfg Config) error {
	cfg = cfg.resolve(req.Method())

	input, err := req.Read(cfg.ReadFrom)
	if err != nil {
		return err
	}

	if s == nil {
		s = schema.Keys{}
	}

	value, err := s.Validate(input, opts.Merge(forcedDefaults))
	if err != nil {
		var validationErr *schema.ValidationError
		if errors.As(err, &validationErr) {
			return newValidationFailure(validationErr)
		}
		return err
	}

	locals.Merge(cfg.WriteTo, value)

	return nil
}

// newValidationFailure converts a schema rejection into the client-facing error.
func newValidationFailure(err *schema.ValidationError) *errs.HTTPError {
	fieldErrors := make([]errs.FieldError, len(err.Details))
	for i, d := range err.Details {
		fieldErrors[i] = errs.FieldError{
			Field: d.Field(),
			Error: d.Message,
			Type:  d.Type,
		}
	}

	return errs.NewBadRequestError(err.Message, nil, fieldErrors)
}

// Validate returns Echo middleware validating the request against s.
//
// A nil s is the empty schema. Caller options take precedence over the
// {StripUnknown: true} default. Empty Config fields are resolved per request
// from the HTTP method (GET/DELETE -> query, POST/PUT/PATCH -> body, anything
// else -> query).
//
// It panics if cfg names a location other than body, params or query.
func Validate(s schema.Schema, opts schema.Options, cfg Config) echo.MiddlewareFunc {
	if err := cfg.validate(); err != nil {
		panic(err)
	}

	if s == nil {
		s = schema.Keys{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			resolved := cfg.resolve(c.Request().Method)

			// Request-scoped logger attached by the context enhancer, disabled if absent.
			logger := zerolog.Ctx(c.Request().Context()).With().
				Str("read_from", string(resolved.ReadFrom)).
				Str("write_to", string(resolved.WriteTo)).
				Logger()

			if err := Run(NewEchoRequest(c), GetLocals(c), s, opts, resolved); err != nil {
				logger.Debug().
					Err(err).
					Dur("validation_duration", time.Since(start)).
					Msg("request validation failed")

				return err
			}

			logger.Debug().
				Dur("validation_duration", time.Since(start)).
				Msg("request validation successful")

			return next(c)
		}
	}
}

// Body validates the request body and writes to Locals[body].
func Body(s schema.Schema, opts schema.Options) echo.MiddlewareFunc {
	return Validate(s, opts, Config{ReadFrom: LocationBody, WriteTo: LocationBody})
}

// Params validates the path parameters and writes to Locals[params].
func Params(s schema.Schema, opts schema.Options) echo.MiddlewareFunc {
	return Validate(s, opts, Config{ReadFrom: LocationParams, WriteTo: LocationParams})
}

// Query validates the query string and writes to Locals[query].
func Query(s schema.Schema, opts schema.Options) echo.MiddlewareFunc {
	return Validate(s, opts, Config{ReadFrom: LocationQuery, WriteTo: LocationQuery})
}
