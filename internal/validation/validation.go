// Package validation contains the request validation middleware.
//
// A middleware built here reads one location of the request (query, path
// params or body), validates and coerces it against a schema, and merges the
// coerced values into the request's Locals under the configured write
// location. Rejected input becomes a 400 *errs.HTTPError returned to Echo,
// which hands it to the global error handler.
//
// Typical usage:
//
//	listSchema := schema.Keys{"page": schema.Integer().Default(int64(1))}
//	e.GET("/items", listItems, validation.Query(listSchema, schema.Options{}))
//
// Inside the handler the coerced values are available through
// validation.GetLocals(c).Get(validation.LocationQuery).
package validation
