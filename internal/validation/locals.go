package validation

import (
	"maps"

	"github.com/labstack/echo/v4"
)

// LocalsKey is the Echo context key holding the request's Locals.
const LocalsKey = "locals"

// Locals is the per-request output store. Validated values are merged into
// the mapping of their write location, so validators that target different
// locations on the same route never overwrite each other.
type Locals map[Location]map[string]any

// Merge shallow-merges values into the mapping at loc. Keys already present
// and not redefined by values are kept.
func (l Locals) Merge(loc Location, values map[string]any) {
	existing, ok := l[loc]
	if !ok || existing == nil {
		existing = make(map[string]any, len(values))
		l[loc] = existing
	}
	maps.Copy(existing, values)
}

// Get returns the mapping stored at loc, or nil.
func (l Locals) Get(loc Location) map[string]any {
	return l[loc]
}

// GetLocals returns the Locals attached to the Echo context, creating and
// attaching an empty one on first use.
func GetLocals(c echo.Context) Locals {
	if locals, ok := c.Get(LocalsKey).(Locals); ok && locals != nil {
		return locals
	}

	locals := Locals{}
	c.Set(LocalsKey, locals)
	return locals
}
