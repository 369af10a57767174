package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/mediacloud/waybacknews-go/internal/types"
)

// Do centralizes request construction for every endpoint so HTTP comms stay
// easy to maintain and test. GET sends params as a query string; POST sends
// them as a JSON body. Any other method is rejected before a request is
// built.
func Do(ctx context.Context, httpClient *http.Client, method, url string, params map[string]any) (*http.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var httpReq *http.Request
	switch method {
	case http.MethodGet:
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		for k, v := range params {
			q.Set(k, fmt.Sprint(v))
		}
		req.URL.RawQuery = q.Encode()
		httpReq = req
	case http.MethodPost:
		if params == nil {
			params = map[string]any{}
		}
		body, err := json.Marshal(params)
		if err != nil {
			return nil, err
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		httpReq = req
	default:
		return nil, fmt.Errorf("%w %q", types.ErrUnsupportedMethod, method)
	}
	return httpClient.Do(httpReq)
}

// decodeJSON decodes the response body into v and closes it.
//
// Status codes are deliberately not checked first: the service reports soft
// failures (including the no-results sentinel) as JSON detail bodies on
// non-2xx statuses, so gating on status would break that path. A response
// that is not JSON at all surfaces here as a decode error.
func decodeJSON(resp *http.Response, v any) error {
	defer func() { _ = resp.Body.Close() }()
	return json.NewDecoder(resp.Body).Decode(v)
}
