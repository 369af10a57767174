package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/mediacloud/waybacknews-go/internal/types"
)

// Article fetches a single document by its ID.
func Article(ctx context.Context, httpClient *http.Client, baseURL, collection, itemID string) (types.Document, error) {
	endpoint := fmt.Sprintf("%s/%s/article/%s", baseURL, url.PathEscape(collection), url.PathEscape(itemID))
	resp, err := Do(ctx, httpClient, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	var doc types.Document
	if err := decodeJSON(resp, &doc); err != nil {
		return nil, fmt.Errorf("article: %w", err)
	}
	return doc, nil
}
