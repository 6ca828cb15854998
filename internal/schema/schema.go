// Package schema describes the expected shape of request data and checks
// incoming mappings against it.
//
// It does not implement rules of its own. Rule checks (min, max, email, ...)
// are handled by go-playground/validator, value coercion by spf13/cast, and
// JSON Schema documents by santhosh-tekuri/jsonschema. This package adapts
// them to one contract: take a mapping, return the coerced mapping or a
// ValidationError carrying a summary message and per-field details.
package schema

import "strings"

// Schema validates and coerces a key-value mapping.
//
// On rejection Validate returns a *ValidationError. Any other error means the
// schema itself is unusable and should be surfaced as-is.
type Schema interface {
	Validate(input map[string]any, opts Options) (map[string]any, error)
}

// Options controls validator behavior. A nil field means "use the library
// default":
//
//	StripUnknown false, AllowUnknown false, Convert true, AbortEarly true
type Options struct {
	// StripUnknown drops keys that are not declared in the schema.
	StripUnknown *bool

	// AllowUnknown keeps undeclared keys instead of rejecting them.
	// StripUnknown takes precedence.
	AllowUnknown *bool

	// Convert enables coercion, e.g. "3" -> 3 for number fields.
	Convert *bool

	// AbortEarly stops at the first rejected key.
	AbortEarly *bool
}

// Bool returns a pointer to b, for filling Options literals.
func Bool(b bool) *bool {
	return &b
}

// Merge returns o with every unset field taken from defaults.
// Fields already set on o always win.
func (o Options) Merge(defaults Options) Options {
	if o.StripUnknown == nil {
		o.StripUnknown = defaults.StripUnknown
	}
	if o.AllowUnknown == nil {
		o.AllowUnknown = defaults.AllowUnknown
	}
	if o.Convert == nil {
		o.Convert = defaults.Convert
	}
	if o.AbortEarly == nil {
		o.AbortEarly = defaults.AbortEarly
	}
	return o
}

// settings is Options with the library defaults applied.
type settings struct {
	stripUnknown bool
	allowUnknown bool
	convert      bool
	abortEarly   bool
}

func (o Options) settings() settings {
	return settings{
		stripUnknown: valueOr(o.StripUnknown, false),
		allowUnknown: valueOr(o.AllowUnknown, false),
		convert:      valueOr(o.Convert, true),
		abortEarly:   valueOr(o.AbortEarly, true),
	}
}

func valueOr(b *bool, fallback bool) bool {
	if b == nil {
		return fallback
	}
	return *b
}

// Detail describes one rejected value.
type Detail struct {
	// Message is the human-readable reason, e.g. `"foo" must be a number`.
	Message string `json:"message"`

	// Path locates the value inside the validated mapping.
	Path []string `json:"path"`

	// Type is a machine-friendly failure kind, e.g. "number.base".
	Type string `json:"type"`
}

// Field returns the dotted form of Path.
func (d Detail) Field() string {
	return strings.Join(d.Path, ".")
}

// ValidationError is returned when a mapping does not satisfy a schema.
type ValidationError struct {
	Message string
	Details []Detail
}

func (e *ValidationError) Error() string {
	return e.Message
}
