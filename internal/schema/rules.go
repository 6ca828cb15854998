package schema

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// engine is shared by every schema. validator.Validate caches parsed tags and
// is safe for concurrent use.
var engine = validator.New()

// ruleFailure converts the error returned by engine.Var into a leaf failure.
func ruleFailure(name string, path []string, err error) failure {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return leafFailure(name, path, "rule.invalid", err.Error())
	}

	fe := validationErrors[0]
	return leafFailure(name, path, "rule."+fe.Tag(), ruleMessage(fe))
}

// ruleMessage turns a validator tag failure into a user-friendly reason.
func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"

	case "min", "gte":
		// min means minimum length for strings/lists and minimum value for numbers.
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		case reflect.Slice, reflect.Map:
			return fmt.Sprintf("must contain at least %s items", fe.Param())
		default:
			return fmt.Sprintf("must be at least %s", fe.Param())
		}

	case "max", "lte":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("must not exceed %s characters", fe.Param())
		case reflect.Slice, reflect.Map:
			return fmt.Sprintf("must not contain more than %s items", fe.Param())
		default:
			return fmt.Sprintf("must not exceed %s", fe.Param())
		}

	case "len":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be exactly %s characters", fe.Param())
		}
		return fmt.Sprintf("must have length %s", fe.Param())

	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())

	case "lt":
		return fmt.Sprintf("must be less than %s", fe.Param())

	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())

	case "email":
		return "must be a valid email address"

	case "e164":
		return "must be a valid phone number with country code"

	case "uuid", "uuid4":
		return "must be a valid UUID"

	case "url", "uri":
		return "must be a valid URL"

	default:
		// Fallback for tags not explicitly handled above.
		if fe.Param() != "" {
			return fmt.Sprintf("failed rule %s:%s", fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("failed rule %s", fe.Tag())
	}
}
