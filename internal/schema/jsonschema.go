package schema

import (
	"bytes"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// JSONSchema is a compiled JSON Schema document describing an object.
type JSONSchema struct {
	compiled *jsonschema.Schema
}

// CompileJSONSchema compiles doc (draft 2020-12 unless the document says
// otherwise). name identifies the resource in compiler errors.
func CompileJSONSchema(name string, doc []byte) (*JSONSchema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	if err := compiler.AddResource(name, bytes.NewReader(doc)); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}

	compiled, err := compiler.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	return &JSONSchema{compiled: compiled}, nil
}

// MustCompileJSONSchema is like CompileJSONSchema but panics on error.
// It is meant for package-level schema variables.
func MustCompileJSONSchema(name string, doc []byte) *JSONSchema {
	s, err := CompileJSONSchema(name, doc)
	if err != nil {
		panic(err)
	}
	return s
}

// Validate coerces top-level string values to the types their properties
// declare, strips undeclared keys when asked to, and checks the result against
// the document. Undeclared keys that are not stripped are judged by the
// document's own additionalProperties.
func (s *JSONSchema) Validate(input map[string]any, opts Options) (map[string]any, error) {
	cfg := opts.settings()
	properties := resolve(s.compiled).Properties

	value := make(map[string]any, len(input))
	for name, raw := range input {
		property, declared := properties[name]
		if !declared && cfg.stripUnknown {
			continue
		}
		if declared && cfg.convert {
			raw = coerceJSON(raw, resolve(property).Types)
		}
		value[name] = raw
	}

	err := s.compiled.Validate(value)
	if err == nil {
		return value, nil
	}

	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return nil, err
	}

	details := flattenCauses(validationErr, nil)
	if cfg.abortEarly && len(details) > 1 {
		details = details[:1]
	}

	messages := make([]string, len(details))
	for i, d := range details {
		messages[i] = d.Message
	}

	return nil, &ValidationError{
		Message: strings.Join(messages, ". "),
		Details: details,
	}
}

// Properties lists the declared top-level property names in sorted order.
func (s *JSONSchema) Properties() []string {
	return slices.Sorted(maps.Keys(resolve(s.compiled).Properties))
}

// resolve follows $ref chains to the schema that carries the keywords.
func resolve(s *jsonschema.Schema) *jsonschema.Schema {
	for s != nil && s.Ref != nil {
		s = s.Ref
	}
	if s == nil {
		return &jsonschema.Schema{}
	}
	return s
}

// coerceJSON converts a string to the first non-string type the property
// allows. Values that do not convert are returned unchanged so the document
// reports the type mismatch.
func coerceJSON(raw any, types []string) any {
	if _, isString := raw.(string); !isString || slices.Contains(types, "string") {
		return raw
	}

	for _, t := range types {
		switch t {
		case "number", "integer":
			// integer stays float64: jsonschema checks whole-ness on the number itself.
			if n, ok := toNumber(raw, true); ok {
				return n
			}
		case "boolean":
			if b, ok := toBoolean(raw, true); ok {
				return b
			}
		}
	}

	return raw
}

// flattenCauses collects the leaf causes of a jsonschema error tree.
func flattenCauses(err *jsonschema.ValidationError, details []Detail) []Detail {
	if len(err.Causes) == 0 {
		path := pointerPath(err.InstanceLocation)

		message := err.Message
		if len(path) > 0 {
			message = fmt.Sprintf("%q %s", path[len(path)-1], err.Message)
		}

		return append(details, Detail{
			Message: message,
			Path:    path,
			Type:    "jsonschema." + lastSegment(err.KeywordLocation),
		})
	}

	for _, cause := range err.Causes {
		details = flattenCauses(cause, details)
	}
	return details
}

// pointerPath splits a JSON Pointer ("/a/b~1c") into its unescaped segments.
func pointerPath(pointer string) []string {
	pointer = strings.TrimPrefix(pointer, "/")
	if pointer == "" {
		return []string{}
	}

	segments := strings.Split(pointer, "/")
	for i, s := range segments {
		segments[i] = strings.ReplaceAll(strings.ReplaceAll(s, "~1", "/"), "~0", "~")
	}
	return segments
}

func lastSegment(pointer string) string {
	if i := strings.LastIndex(pointer, "/"); i >= 0 {
		return pointer[i+1:]
	}
	return pointer
}
