package schema

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/spf13/cast"
)

// Kind is the expected type of a single value.
type Kind string

const (
	KindAny     Kind = "any"
	KindString  Kind = "string"
	KindNumber  Kind = "number"
	KindInteger Kind = "integer"
	KindBoolean Kind = "boolean"
	KindArray   Kind = "array"
	KindObject  Kind = "object"
)

// baseMessages is the rejection text used when a value does not fit its kind.
var baseMessages = map[Kind]string{
	KindString:  "must be a string",
	KindNumber:  "must be a number",
	KindInteger: "must be an integer",
	KindBoolean: "must be a boolean",
	KindArray:   "must be an array",
	KindObject:  "must be an object",
}

// Field describes one key of an object schema.
//
// Field values are immutable: Required, Default and Rules return modified copies,
// so a base field can be shared between schemas.
type Field struct {
	kind       Kind
	required   bool
	hasDefault bool
	def        any
	rules      string
	items      *Field
	keys       Keys
}

// Any accepts every value unchanged.
func Any() Field { return Field{kind: KindAny} }

// String accepts strings only.
func String() Field { return Field{kind: KindString} }

// Number accepts numbers and, when converting, numeric strings. Values are
// normalized to float64.
func Number() Field { return Field{kind: KindNumber} }

// Integer is Number restricted to whole values. Values are normalized to int64.
func Integer() Field { return Field{kind: KindInteger} }

// Boolean accepts booleans and, when converting, boolean strings.
func Boolean() Field { return Field{kind: KindBoolean} }

// Array accepts lists whose items each satisfy items.
func Array(items Field) Field { return Field{kind: KindArray, items: &items} }

// Object accepts nested mappings validated against keys.
func Object(keys Keys) Field { return Field{kind: KindObject, keys: keys} }

// Required rejects input where the key is missing.
func (f Field) Required() Field {
	f.required = true
	return f
}

// Default fills the key with v when it is missing from the input.
func (f Field) Default(v any) Field {
	f.hasDefault = true
	f.def = v
	return f
}

// Rules attaches a go-playground/validator tag (e.g. "min=3,max=10") checked
// after the value has been coerced.
func (f Field) Rules(tag string) Field {
	f.rules = tag
	return f
}

// Kind reports the expected kind. The zero Field is KindAny.
func (f Field) Kind() Kind {
	if f.kind == "" {
		return KindAny
	}
	return f.kind
}

// coerce converts value to the field's kind. ok is false when the value does
// not fit, in which case the returned value is meaningless.
func (f Field) coerce(value any, convert bool) (any, bool) {
	switch f.Kind() {
	case KindString:
		s, ok := value.(string)
		return s, ok
	case KindNumber:
		return toNumber(value, convert)
	case KindInteger:
		n, ok := toNumber(value, convert)
		if !ok || math.Trunc(n) != n || n >= math.MaxInt64 || n < math.MinInt64 {
			return nil, false
		}
		return int64(n), true
	case KindBoolean:
		return toBoolean(value, convert)
	case KindArray:
		return toList(value)
	case KindObject:
		return toMapping(value)
	default:
		return value, true
	}
}

func toNumber(value any, convert bool) (float64, bool) {
	var (
		n   float64
		err error
	)

	switch v := value.(type) {
	case float64:
		n = v
	case float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, json.Number:
		n, err = cast.ToFloat64E(v)
	case string:
		if !convert {
			return 0, false
		}
		n, err = cast.ToFloat64E(strings.TrimSpace(v))
	default:
		return 0, false
	}

	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

func toBoolean(value any, convert bool) (any, bool) {
	switch v := value.(type) {
	case bool:
		return v, true
	case string:
		if !convert {
			return nil, false
		}
		b, err := cast.ToBoolE(strings.TrimSpace(v))
		if err != nil {
			return nil, false
		}
		return b, true
	default:
		return nil, false
	}
}

func toList(value any) (any, bool) {
	switch v := value.(type) {
	case []any:
		return v, true
	case []string:
		list := make([]any, len(v))
		for i, s := range v {
			list[i] = s
		}
		return list, true
	default:
		return nil, false
	}
}

func toMapping(value any) (any, bool) {
	switch v := value.(type) {
	case map[string]any:
		return v, true
	case map[string]string:
		mapping := make(map[string]any, len(v))
		for k, s := range v {
			mapping[k] = s
		}
		return mapping, true
	default:
		return nil, false
	}
}
