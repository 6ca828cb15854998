package errs

import (
	"net/http"
)

// newHTTPError fills Code and Title from the status text.
func newHTTPError(status int, message string) *HTTPError {
	return &HTTPError{
		// http.StatusText(400) => "Bad Request" => "BAD_REQUEST"
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(status)),
		Title:   http.StatusText(status),
		Message: message,
		Status:  status,
	}
}

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// This supports extra payload:
//   - code: optional custom code string (if nil, defaults to "BAD_REQUEST")
//   - errors: optional slice of field errors (validation details)
//
// This is designed for validation failures and “you sent garbage” cases.
func NewBadRequestError(message string, code *string, errors []FieldError) *HTTPError {
	err := newHTTPError(http.StatusBadRequest, message)

	// If caller supplies custom code pointer, use it as-is.
	if code != nil {
		err.Code = *code
	}

	err.Errors = errors

	return err
}

// NewNotFoundError creates a 404 Not Found HTTPError.
//
// Supports optional custom code override similar to NewBadRequestError.
func NewNotFoundError(message string, code *string) *HTTPError {
	err := newHTTPError(http.StatusNotFound, message)

	if code != nil {
		err.Code = *code
	}

	return err
}

// NewInternalServerError creates a 500 Internal Server Error HTTPError.
//
// Note:
//   - message is the generic status text, not the real internal error message.
//   - clients don’t need your stack traces.
func NewInternalServerError() *HTTPError {
	return newHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}
