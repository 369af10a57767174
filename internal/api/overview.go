package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/mediacloud/waybacknews-go/internal/types"
)

// Overview runs a search/overview query against the collection and returns
// the decoded envelope. Callers are expected to consult NoResults before
// reading aggregate fields.
func Overview(ctx context.Context, httpClient *http.Client, baseURL, collection string, params map[string]any) (*types.Overview, error) {
	endpoint := fmt.Sprintf("%s/%s/search/overview", baseURL, url.PathEscape(collection))
	resp, err := Do(ctx, httpClient, http.MethodPost, endpoint, params)
	if err != nil {
		return nil, err
	}
	var ov types.Overview
	if err := decodeJSON(resp, &ov); err != nil {
		return nil, fmt.Errorf("overview: %w", err)
	}
	return &ov, nil
}
