package dispatcher

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// parseParams flattens the request into a single key-value map: URL query
// parameters first, then the body, which may be JSON or form-encoded. Body
// values win over query values, matching the original contract.
func parseParams(r *http.Request) map[string]string {
	params := map[string]string{}
	for k, vs := range r.URL.Query() {
		if len(vs) > 0 {
			params[k] = vs[0]
		}
	}

	if r.Body == nil {
		return params
	}
	body, err := io.ReadAll(r.Body)
	if err != nil || len(body) == 0 {
		return params
	}

	var decoded map[string]any
	if err := json.Unmarshal(body, &decoded); err == nil {
		for k, v := range decoded {
			params[k] = stringify(v)
		}
		return params
	}

	// Not JSON; try form-encoded.
	if form, err := url.ParseQuery(string(body)); err == nil {
		for k, vs := range form {
			if len(vs) > 0 {
				params[k] = vs[0]
			}
		}
	}
	return params
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case nil:
		return ""
	case float64:
		// Avoid scientific notation for ordinary payload numbers.
		return fmt.Sprintf("%g", t)
	default:
		return fmt.Sprint(t)
	}
}
