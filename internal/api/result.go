package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/mediacloud/waybacknews-go/internal/types"
)

// resumeTokenHeader carries the opaque cursor for the next result page.
const resumeTokenHeader = "x-resume-token"

// Result fetches one page of search results and returns the resume token
// for the next page. An empty token means the result set is exhausted.
func Result(ctx context.Context, httpClient *http.Client, baseURL, collection string, params map[string]any) (types.ResultPage, string, error) {
	endpoint := fmt.Sprintf("%s/%s/search/result", baseURL, url.PathEscape(collection))
	resp, err := Do(ctx, httpClient, http.MethodPost, endpoint, params)
	if err != nil {
		return nil, "", err
	}
	var page types.ResultPage
	if err := decodeJSON(resp, &page); err != nil {
		return nil, "", fmt.Errorf("result page: %w", err)
	}
	return page, resp.Header.Get(resumeTokenHeader), nil
}
