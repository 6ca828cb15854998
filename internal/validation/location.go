package validation

import (
	"fmt"
	"net/http"
)

// Location names a part of the request that can be read from, and the
// matching slot of Locals that can be written to.
type Location string

const (
	LocationBody   Location = "body"
	LocationParams Location = "params"
	LocationQuery  Location = "query"
)

// Valid reports whether l is one of body, params or query.
func (l Location) Valid() bool {
	switch l {
	case LocationBody, LocationParams, LocationQuery:
		return true
	default:
		return false
	}
}

// methodDefaults maps HTTP methods to the location validated when a Config
// leaves ReadFrom or WriteTo empty. Methods not listed fall back to query.
var methodDefaults = map[string]Location{
	http.MethodGet:    LocationQuery,
	http.MethodPost:   LocationBody,
	http.MethodPut:    LocationBody,
	http.MethodPatch:  LocationBody,
	http.MethodDelete: LocationQuery,
}

// DefaultLocation returns the location used for method when none is configured.
func DefaultLocation(method string) Location {
	if loc, ok := methodDefaults[method]; ok {
		return loc
	}
	return LocationQuery
}

// Config selects where a middleware reads input and writes output.
// Empty fields are resolved per request with DefaultLocation.
type Config struct {
	ReadFrom Location
	WriteTo  Location
}

// resolve fills empty fields from the request method.
func (cfg Config) resolve(method string) Config {
	if cfg.ReadFrom == "" {
		cfg.ReadFrom = DefaultLocation(method)
	}
	if cfg.WriteTo == "" {
		cfg.WriteTo = DefaultLocation(method)
	}
	return cfg
}

// validate rejects locations other than body, params and query.
func (cfg Config) validate() error {
	for _, loc := range []Location{cfg.ReadFrom, cfg.WriteTo} {
		if loc != "" && !loc.Valid() {
			return &InvalidLocationError{Location: loc}
		}
	}
	return nil
}

// InvalidLocationError reports a Config naming an unknown location.
type InvalidLocationError struct {
	Location Location
}

func (e *InvalidLocationError) Error() string {
	return fmt.Sprintf("validation: invalid location %q (must be one of body, params, query)", string(e.Location))
}
