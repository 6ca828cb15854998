package validation

import (
	"errors"
	"net/http"
	"testing"

	"github.com/deppfellow/reqvalidate/internal/errs"
	"github.com/deppfellow/reqvalidate/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRequest is an in-memory Request.
type fakeRequest struct {
	method string
	data   map[Location]map[string]any
}

func newFakeRequest(method string) *fakeRequest {
	return &fakeRequest{
		method: method,
		data: map[Location]map[string]any{
			LocationBody:   {"foo": float64(1), "bar": "body"},
			LocationParams: {"foo": "2", "bar": "params"},
			LocationQuery:  {"foo": "3", "bar": "query"},
		},
	}
}

func (r *fakeRequest) Method() string { return r.method }

func (r *fakeRequest) Read(loc Location) (map[string]any, error) {
	return r.data[loc], nil
}

// brokenSchema fails without producing a ValidationError.
type brokenSchema struct{}

func (brokenSchema) Validate(map[string]any, schema.Options) (map[string]any, error) {
	return nil, errors.New("schema is unusable")
}

func requireHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()

	require.Error(t, err)
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Bad Request", httpErr.Title)

	return httpErr
}

func TestRun_NoSchema(t *testing.T) {
	locals := Locals{}

	err := Run(newFakeRequest(""), locals, nil, schema.Options{}, Config{})

	require.NoError(t, err)
	assert.Equal(t, Locals{LocationQuery: {}}, locals)
}

func TestRun_CastsWithSchema(t *testing.T) {
	locals := Locals{}

	err := Run(newFakeRequest(""), locals, schema.Keys{"foo": schema.Number()}, schema.Options{}, Config{})

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"foo": float64(3)}, locals.Get(LocationQuery))
}

func TestRun_Invalid(t *testing.T) {
	locals := Locals{}

	err := Run(newFakeRequest(""), locals, schema.Keys{"bar": schema.Boolean()}, schema.Options{}, Config{})

	httpErr := requireHTTPError(t, err)
	assert.Equal(t, `child "bar" fails because ["bar" must be a boolean]`, httpErr.Message)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, errs.FieldError{Field: "bar", Error: `"bar" must be a boolean`, Type: "boolean.base"}, httpErr.Errors[0])
	assert.Empty(t, locals)
}

func TestRun_Options(t *testing.T) {
	t.Run("stripUnknown can be disabled", func(t *testing.T) {
		locals := Locals{}

		err := Run(newFakeRequest(""), locals, schema.Keys{}, schema.Options{StripUnknown: schema.Bool(false)}, Config{})

		httpErr := requireHTTPError(t, err)
		assert.Equal(t, `"bar" is not allowed. "foo" is not allowed`, httpErr.Message)
		assert.Empty(t, locals)
	})

	t.Run("other options pass through", func(t *testing.T) {
		locals := Locals{}

		err := Run(newFakeRequest(""), locals, schema.Keys{"foo": schema.Number()}, schema.Options{Convert: schema.Bool(false)}, Config{})

		httpErr := requireHTTPError(t, err)
		assert.Equal(t, `child "foo" fails because ["foo" must be a number]`, httpErr.Message)
		assert.Empty(t, locals)
	})
}

func TestRun_ReadFrom(t *testing.T) {
	keys := schema.Keys{"bar": schema.String()}

	tests := []struct {
		readFrom Location
		want     string
	}{
		{readFrom: LocationBody, want: "body"},
		{readFrom: LocationQuery, want: "query"},
		{readFrom: LocationParams, want: "params"},
	}

	for _, tt := range tests {
		t.Run(string(tt.readFrom), func(t *testing.T) {
			locals := Locals{}

			err := Run(newFakeRequest(""), locals, keys, schema.Options{}, Config{ReadFrom: tt.readFrom})

			require.NoError(t, err)
			assert.Equal(t, Locals{LocationQuery: {"bar": tt.want}}, locals)
		})
	}
}

func TestRun_WriteTo(t *testing.T) {
	keys := schema.Keys{"bar": schema.String()}

	for _, writeTo := range []Location{LocationBody, LocationParams, LocationQuery} {
		t.Run(string(writeTo), func(t *testing.T) {
			locals := Locals{}

			err := Run(newFakeRequest(""), locals, keys, schema.Options{}, Config{WriteTo: writeTo})

			require.NoError(t, err)
			assert.Equal(t, Locals{writeTo: {"bar": "query"}}, locals)
		})
	}
}

func TestRun_MethodDefaults(t *testing.T) {
	keys := schema.Keys{"bar": schema.String()}

	tests := []struct {
		method string
		want   Locals
	}{
		{method: http.MethodGet, want: Locals{LocationQuery: {"bar": "query"}}},
		{method: http.MethodPost, want: Locals{LocationBody: {"bar": "body"}}},
		{method: http.MethodPut, want: Locals{LocationBody: {"bar": "body"}}},
		{method: http.MethodPatch, want: Locals{LocationBody: {"bar": "body"}}},
		{method: http.MethodDelete, want: Locals{LocationQuery: {"bar": "query"}}},
		{method: http.MethodOptions, want: Locals{LocationQuery: {"bar": "query"}}},
		{method: "PURGE", want: Locals{LocationQuery: {"bar": "query"}}},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			locals := Locals{}

			err := Run(newFakeRequest(tt.method), locals, keys, schema.Options{}, Config{})

			require.NoError(t, err)
			assert.Equal(t, tt.want, locals)
		})
	}
}

func TestRun_ReadQueryWriteBody(t *testing.T) {
	locals := Locals{LocationBody: {}}

	err := Run(newFakeRequest(http.MethodGet), locals, schema.Keys{"bar": schema.String()}, schema.Options{},
		Config{ReadFrom: LocationQuery, WriteTo: LocationBody})

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"bar": "query"}, locals.Get(LocationBody))
}

func TestRun_MergesIntoExistingLocals(t *testing.T) {
	locals := Locals{LocationQuery: {"kept": true, "bar": "old"}}

	err := Run(newFakeRequest(http.MethodGet), locals, schema.Keys{"bar": schema.String()}, schema.Options{}, Config{})

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"kept": true, "bar": "query"}, locals.Get(LocationQuery))
}

func TestRun_AccumulatesAcrossLocations(t *testing.T) {
	locals := Locals{}
	req := newFakeRequest(http.MethodPost)
	keys := schema.Keys{"foo": schema.Number()}

	require.NoError(t, Run(req, locals, keys, schema.Options{}, Config{ReadFrom: LocationParams, WriteTo: LocationParams}))
	require.NoError(t, Run(req, locals, keys, schema.Options{}, Config{}))

	assert.Equal(t, Locals{
		LocationParams: {"foo": float64(2)},
		LocationBody:   {"foo": float64(1)},
	}, locals)
}

func TestRun_NonValidationErrorPassesThrough(t *testing.T) {
	locals := Locals{}

	err := Run(newFakeRequest(http.MethodGet), locals, brokenSchema{}, schema.Options{}, Config{})

	require.EqualError(t, err, "schema is unusable")
	assert.False(t, errors.Is(err, &errs.HTTPError{}))
	assert.Empty(t, locals)
}

func TestValidate_PanicsOnInvalidLocation(t *testing.T) {
	assert.Panics(t, func() {
		Validate(nil, schema.Options{}, Config{ReadFrom: "headers"})
	})
	assert.NotPanics(t, func() {
		Validate(nil, schema.Options{}, Config{})
	})
}

func TestDefaultLocation(t *testing.T) {
	assert.Equal(t, LocationQuery, DefaultLocation(http.MethodGet))
	assert.Equal(t, LocationBody, DefaultLocation(http.MethodPost))
	assert.Equal(t, LocationBody, DefaultLocation(http.MethodPut))
	assert.Equal(t, LocationBody, DefaultLocation(http.MethodPatch))
	assert.Equal(t, LocationQuery, DefaultLocation(http.MethodDelete))
	assert.Equal(t, LocationQuery, DefaultLocation(http.MethodHead))
	assert.Equal(t, LocationQuery, DefaultLocation(""))
}

func TestLocation_Valid(t *testing.T) {
	assert.True(t, LocationBody.Valid())
	assert.True(t, LocationParams.Valid())
	assert.True(t, LocationQuery.Valid())
	assert.False(t, Location("headers").Valid())
	assert.False(t, Location("").Valid())
}
