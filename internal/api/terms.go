package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/mediacloud/waybacknews-go/internal/types"
)

// Terms fetches a term aggregation over a document field. field and
// aggregation are passed through unvalidated; the service owns that
// contract.
func Terms(ctx context.Context, httpClient *http.Client, baseURL, collection, field, aggregation string, params map[string]any) (types.Envelope, error) {
	endpoint := fmt.Sprintf("%s/%s/terms/%s/%s", baseURL, url.PathEscape(collection), url.PathEscape(field), url.PathEscape(aggregation))
	resp, err := Do(ctx, httpClient, http.MethodGet, endpoint, params)
	if err != nil {
		return nil, err
	}
	var env types.Envelope
	if err := decodeJSON(resp, &env); err != nil {
		return nil, fmt.Errorf("terms: %w", err)
	}
	return env, nil
}
