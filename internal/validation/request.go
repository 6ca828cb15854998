package validation

import (
	"net/url"
	"strings"

	"github.com/deppfellow/reqvalidate/internal/errs"
	"github.com/labstack/echo/v4"
)

// Request is the view of an incoming request the validator needs.
type Request interface {
	// Method returns the HTTP method, used to pick default locations.
	Method() string

	// Read returns the key-value mapping stored at loc.
	Read(loc Location) (map[string]any, error)
}

// bodyKey caches the decoded body on the Echo context, so every validator on
// a route sees the same data even though the request body is read only once.
const bodyKey = "validation.body"

// EchoRequest adapts an echo.Context to Request.
//
//   - query: c.QueryParams()
//   - params: c.ParamNames() / c.ParamValues()
//   - body: JSON, urlencoded form or multipart form, by Content-Type
//
// Single values are returned as strings and repeated values as []any.
type EchoRequest struct {
	c echo.Context
}

// NewEchoRequest wraps c.
func NewEchoRequest(c echo.Context) EchoRequest {
	return EchoRequest{c: c}
}

func (r EchoRequest) Method() string {
	return r.c.Request().Method
}

func (r EchoRequest) Read(loc Location) (map[string]any, error) {
	switch loc {
	case LocationQuery:
		return fromValues(r.c.QueryParams()), nil

	case LocationParams:
		names := r.c.ParamNames()
		values := r.c.ParamValues()

		params := make(map[string]any, len(names))
		for i, name := range names {
			if i < len(values) {
				params[name] = values[i]
			}
		}
		return params, nil

	case LocationBody:
		return r.body()

	default:
		return nil, &InvalidLocationError{Location: loc}
	}
}

func (r EchoRequest) body() (map[string]any, error) {
	if cached, ok := r.c.Get(bodyKey).(map[string]any); ok {
		return cached, nil
	}

	body, err := decodeBody(r.c)
	if err != nil {
		return nil, err
	}

	r.c.Set(bodyKey, body)
	return body, nil
}

// decodeBody parses the request body into a mapping. An empty body yields an
// empty mapping.
func decodeBody(c echo.Context) (map[string]any, error) {
	req := c.Request()
	if req.ContentLength == 0 {
		return map[string]any{}, nil
	}

	ctype := req.Header.Get(echo.HeaderContentType)

	switch {
	case strings.HasPrefix(ctype, echo.MIMEApplicationJSON):
		var body map[string]any
		if err := c.Echo().JSONSerializer.Deserialize(c, &body); err != nil {
			return nil, errs.NewBadRequestError("Request body must be a valid JSON object", nil, nil)
		}
		if body == nil {
			body = map[string]any{}
		}
		return body, nil

	case strings.HasPrefix(ctype, echo.MIMEApplicationForm), strings.HasPrefix(ctype, echo.MIMEMultipartForm):
		// FormParams parses the body; PostForm holds the body values without
		// the URL query that Form mixes in.
		if _, err := c.FormParams(); err != nil {
			return nil, errs.NewBadRequestError("Request body must be a valid form", nil, nil)
		}
		return fromValues(req.PostForm), nil

	default:
		return nil, echo.ErrUnsupportedMediaType
	}
}

func fromValues(values url.Values) map[string]any {
	mapping := make(map[string]any, len(values))
	for key, vs := range values {
		switch len(vs) {
		case 0:
		case 1:
			mapping[key] = vs[0]
		default:
			list := make([]any, len(vs))
			for i, v := range vs {
				list[i] = v
			}
			mapping[key] = list
		}
	}
	return mapping
}
