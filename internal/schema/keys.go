package schema

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Keys is an object schema: every declared key maps to the Field describing
// its value. The empty Keys declares nothing, so every input key is unknown.
type Keys map[string]Field

// failure is one rejected key, with the leaf details found beneath it.
type failure struct {
	message string
	details []Detail
}

// walker carries the resolved options through one validation pass.
type walker struct {
	settings settings
}

// Validate checks input against the declared keys and returns a fresh mapping
// holding the coerced values. input is never modified; a nil input is treated
// as empty.
func (k Keys) Validate(input map[string]any, opts Options) (map[string]any, error) {
	w := walker{settings: opts.settings()}

	value, failures := w.object(k, input, nil)
	if len(failures) > 0 {
		return nil, newValidationError(failures)
	}

	return value, nil
}

func (w walker) object(keys Keys, input map[string]any, path []string) (map[string]any, []failure) {
	out := make(map[string]any, len(keys))
	var failures []failure

	for _, name := range slices.Sorted(maps.Keys(keys)) {
		field := keys[name]
		fieldPath := appendPath(path, name)

		raw, present := input[name]
		if !present {
			switch {
			case field.required:
				failures = append(failures, childFailure(name, []failure{
					leafFailure(name, fieldPath, "any.required", "is required"),
				}))
				if w.settings.abortEarly {
					return nil, failures
				}
			case field.hasDefault:
				out[name] = field.def
			}
			continue
		}

		value, fieldFailures := w.field(name, field, raw, fieldPath)
		if len(fieldFailures) > 0 {
			failures = append(failures, childFailure(name, fieldFailures))
			if w.settings.abortEarly {
				return nil, failures
			}
			continue
		}

		out[name] = value
	}

	// Unknown keys are reported together, even when aborting early.
	for _, name := range slices.Sorted(maps.Keys(input)) {
		if _, declared := keys[name]; declared {
			continue
		}

		switch {
		case w.settings.stripUnknown:
		case w.settings.allowUnknown:
			out[name] = input[name]
		default:
			failures = append(failures, leafFailure(name, appendPath(path, name), "object.allowUnknown", "is not allowed"))
		}
	}

	if len(failures) > 0 {
		return nil, failures
	}

	return out, nil
}

func (w walker) field(name string, f Field, raw any, path []string) (any, []failure) {
	value, ok := f.coerce(raw, w.settings.convert)
	if !ok {
		kind := f.Kind()
		return nil, []failure{leafFailure(name, path, string(kind)+".base", baseMessages[kind])}
	}

	switch f.Kind() {
	case KindObject:
		nested, failures := w.object(f.keys, value.(map[string]any), path)
		if len(failures) > 0 {
			return nil, failures
		}
		value = nested

	case KindArray:
		list, failures := w.items(name, f, value.([]any), path)
		if len(failures) > 0 {
			return nil, failures
		}
		value = list
	}

	if f.rules != "" {
		if err := engine.Var(value, f.rules); err != nil {
			return nil, []failure{ruleFailure(name, path, err)}
		}
	}

	return value, nil
}

func (w walker) items(name string, f Field, list []any, path []string) ([]any, []failure) {
	itemField := Any()
	if f.items != nil {
		itemField = *f.items
	}

	out := make([]any, len(list))
	var failures []failure

	for i, item := range list {
		position := strconv.Itoa(i)

		value, itemFailures := w.field(position, itemField, item, appendPath(path, position))
		if len(itemFailures) > 0 {
			failures = append(failures, failure{
				message: fmt.Sprintf("%q at position %d fails because [%s]", name, i, joinMessages(itemFailures)),
				details: collectDetails(itemFailures),
			})
			if w.settings.abortEarly {
				return nil, failures
			}
			continue
		}

		out[i] = value
	}

	return out, failures
}

// leafFailure builds the failure for a single rejected value, e.g.
// `"foo" must be a number`.
func leafFailure(name string, path []string, kind, reason string) failure {
	message := fmt.Sprintf("%q %s", name, reason)
	return failure{
		message: message,
		details: []Detail{{Message: message, Path: path, Type: kind}},
	}
}

// childFailure wraps the failures found under a declared key, e.g.
// `child "foo" fails because ["foo" must be a number]`.
func childFailure(name string, inner []failure) failure {
	return failure{
		message: fmt.Sprintf("child %q fails because [%s]", name, joinMessages(inner)),
		details: collectDetails(inner),
	}
}

func newValidationError(failures []failure) *ValidationError {
	return &ValidationError{
		Message: joinMessages(failures),
		Details: collectDetails(failures),
	}
}

func joinMessages(failures []failure) string {
	messages := make([]string, len(failures))
	for i, f := range failures {
		messages[i] = f.message
	}
	return strings.Join(messages, ". ")
}

func collectDetails(failures []failure) []Detail {
	var details []Detail
	for _, f := range failures {
		details = append(details, f.details...)
	}
	return details
}

// appendPath returns a new slice so sibling paths never share a backing array.
func appendPath(path []string, elem string) []string {
	out := make([]string, len(path), len(path)+1)
	copy(out, path)
	return append(out, elem)
}
