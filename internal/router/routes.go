package router

import (
	"github.com/deppfellow/reqvalidate/internal/handler"
	"github.com/deppfellow/reqvalidate/internal/schema"
	"github.com/deppfellow/reqvalidate/internal/validation"
	"github.com/labstack/echo/v4"
)

// fooBar is the schema every example route validates against.
var fooBar = schema.Keys{
	"foo": schema.Number(),
	"bar": schema.String(),
}

// itemDocument is the JSON Schema flavour of fooBar with a required bar.
const itemDocument = `{
	"type": "object",
	"properties": {
		"foo": {"type": "number"},
		"bar": {"type": "string", "minLength": 1}
	},
	"required": ["bar"],
	"additionalProperties": false
}`

var itemSchema = schema.MustCompileJSONSchema("item.json", []byte(itemDocument))

// registerValidatedRoutes mounts one route per middleware flavour. Each
// answers with the request path and the validated Locals.
func registerValidatedRoutes(r *echo.Echo, h *handler.Handlers) {
	respond := h.Locals.Respond()

	r.Any("/validate", respond, validation.Validate(fooBar, schema.Options{}, validation.Config{}))
	r.Any("/body", respond, validation.Body(fooBar, schema.Options{}))
	r.Any("/params/:foo/:bar", respond, validation.Params(fooBar, schema.Options{}))
	r.Any("/query", respond, validation.Query(fooBar, schema.Options{}))

	r.POST("/items", respond, validation.Body(itemSchema, schema.Options{}))
}
