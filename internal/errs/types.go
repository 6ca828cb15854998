// Package errs define custom error types and utilities.
//
// Its purpose is to create specific error structures..
// (e.g. FieldError for validation details or HTTPError for API responses)..
// to ensure the client receive meaningful, actionable, and consistent..
// error messages.
//
// - Return consistent error shapes to API clients (JSON).
// - Support field-level validation details for rejected requests.
// - Provide errors that play nicely with Go's standard errors package.
package errs

import "strings"

// FieldError represents a single field-level validation failure.
// Example:
//
//	{ "field": "foo", "error": "\"foo\" must be a number", "type": "number.base" }
type FieldError struct {
	// Field is the dotted path of the offending key (e.g. "address.city").
	Field string `json:"field"`

	// Error is the human-readable error message produced by the validator.
	Error string `json:"error"`

	// Type is the machine-friendly failure kind reported by the validator.
	Type string `json:"type,omitempty"`
}

// HTTPError is the main custom error type for API responses.
//
// It implements the `error` interface via Error().
// It is designed to be serialized directly to JSON:
//
//	{"code":"BAD_REQUEST","error":"Bad Request","message":"...","statusCode":400,"errors":[...]}
//
// Fields:
//   - Code: machine-friendly error code (e.g. "BAD_REQUEST").
//   - Title: HTTP status text (e.g. "Bad Request").
//   - Message: human-friendly message.
//   - Status: HTTP status code.
//   - Errors: list of per-field errors (validation).
type HTTPError struct {
	Code    string `json:"code"`
	Title   string `json:"error"`
	Message string `json:"message"`
	Status  int    `json:"statusCode"`

	// Errors holds field-level validation errors, empty for non-validation failures.
	Errors []FieldError `json:"errors,omitempty"`
}

// Error makes *HTTPError satisfy the built-in `error` interface.
//
// It returns the Message, so printing/logging the error shows the message.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is customizes how errors.Is(...) treats HTTPError.
//
// This implementation returns true if `target` is also a *HTTPError.
// It does NOT compare Code/Status/etc, only the type.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)

	return ok
}

// WithMessage returns a *copy* of this HTTPError with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:    e.Code,
		Title:   e.Title,
		Message: message,
		Status:  e.Status,
		Errors:  e.Errors,
	}
}

// MakeUpperCaseWithUnderscores converts a string into an UPPER_CASE_WITH_UNDERSCORES format.
//
// Example:
//
//	"Bad Request" -> "BAD_REQUEST"
//
// Used to create stable machine-readable error codes from HTTP status text.
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
