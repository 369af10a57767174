package waybacknews

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/mediacloud/waybacknews-go/internal/api"
	"github.com/mediacloud/waybacknews-go/internal/types"
)

// Version pins the API access path; the URL is versioned for future
// compatibility and maintenance.
const Version = "v1"

// DefaultBaseURL points at the public wayback news search deployment.
const DefaultBaseURL = "http://colsearch.sawood-dev.us.archive.org:8000/" + Version

// Fields and aggregations the terms endpoint documents. The service accepts
// arbitrary values; these are the ones it publishes.
const (
	TermFieldTitle   = "title"
	TermFieldSnippet = "snippet"

	TermAggregationTop         = "top"
	TermAggregationSignificant = "significant"
	TermAggregationRare        = "rare"
)

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client queries one collection of the wayback news full-text search API.
// It holds no mutable state, so a single Client is safe for concurrent use
// across goroutines; individual ItemPagers are not.
type Client struct {
	collection string
	baseURL    string
	http       *http.Client
}

// New constructs a Client for the given collection. Additional options can
// be provided via functional arguments.
func New(collection string, opts ...Option) *Client {
	if collection == "" {
		panic("collection cannot be empty")
	}

	c := &Client{
		collection: collection,
		baseURL:    DefaultBaseURL,
		http:       &http.Client{Timeout: 30 * time.Second},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			panic(err)
		}
	}

	c.wrapTransport()

	return c
}

// wrapTransport layers the request-ID and metrics round-trippers on top of
// whatever transport the options installed, so they observe every request.
func (c *Client) wrapTransport() {
	base := c.http.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	c.http.Transport = &metricsTransport{base: &requestIDTransport{base: base}}
}

// requestIDTransport stamps every outgoing request with a fresh X-Request-Id
// so server-side logs can be correlated with client debug output.
type requestIDTransport struct{ base http.RoundTripper }

func (t *requestIDTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original.
	cloned := req.Clone(req.Context())
	cloned.Header.Set("X-Request-Id", uuid.NewString())
	return t.base.RoundTrip(cloned)
}

// --------------------------------------------------------------------
// Query construction
// --------------------------------------------------------------------

const dayLayout = "2006-01-02"

// dateQueryClause renders the calendar-day range filter the service's query
// language expects. Time-of-day components are truncated.
func dateQueryClause(start, end time.Time) string {
	return fmt.Sprintf("publication_date:[%s TO %s]", start.Format(dayLayout), end.Format(dayLayout))
}

// queryParams builds the q parameter and merges caller extras over it.
// Extras win on key collisions, including an explicit q.
func (c *Client) queryParams(query string, start, end time.Time, extra map[string]any) map[string]any {
	params := map[string]any{
		"q": fmt.Sprintf("%s AND %s", query, dateQueryClause(start, end)),
	}
	for k, v := range extra {
		params[k] = v
	}
	return params
}

func (c *Client) overview(ctx context.Context, query string, start, end time.Time, extra map[string]any) (*types.Overview, error) {
	requestsTotal.WithLabelValues(endpointOverview).Inc()
	return api.Overview(ctx, c.http, c.baseURL, c.collection, c.queryParams(query, start, end, extra))
}

// --------------------------------------------------------------------
// Overview-backed queries
// --------------------------------------------------------------------

// Sample returns a set of documents matching the query within the date
// range. extra entries are merged verbatim into the request parameters.
func (c *Client) Sample(ctx context.Context, query string, start, end time.Time, extra map[string]any) ([]Document, error) {
	ov, err := c.overview(ctx, query, start, end, extra)
	if err != nil {
		return nil, err
	}
	if ov.NoResults() {
		return []Document{}, nil
	}
	if !ov.Has("matches") {
		return nil, fmt.Errorf("sample: %w %q", ErrMissingField, "matches")
	}
	return ov.Matches, nil
}

// TopSources returns the domains matching the query most often, as ordered
// name/value records.
func (c *Client) TopSources(ctx context.Context, query string, start, end time.Time, extra map[string]any) (NamedCounts, error) {
	ov, err := c.overview(ctx, query, start, end, extra)
	if err != nil {
		return nil, err
	}
	if ov.NoResults() {
		return NamedCounts{}, nil
	}
	if !ov.Has("topdomains") {
		return nil, fmt.Errorf("top sources: %w %q", ErrMissingField, "topdomains")
	}
	return ov.TopDomains, nil
}

// TopTLDs returns the top-level domains matching the query most often.
func (c *Client) TopTLDs(ctx context.Context, query string, start, end time.Time, extra map[string]any) (NamedCounts, error) {
	ov, err := c.overview(ctx, query, start, end, extra)
	if err != nil {
		return nil, err
	}
	if ov.NoResults() {
		return NamedCounts{}, nil
	}
	if !ov.Has("toptlds") {
		return nil, fmt.Errorf("top tlds: %w %q", ErrMissingField, "toptlds")
	}
	return ov.TopTLDs, nil
}

// TopLanguages returns the languages of matching documents, most common
// first.
func (c *Client) TopLanguages(ctx context.Context, query string, start, end time.Time, extra map[string]any) (NamedCounts, error) {
	ov, err := c.overview(ctx, query, start, end, extra)
	if err != nil {
		return nil, err
	}
	if ov.NoResults() {
		return NamedCounts{}, nil
	}
	if !ov.Has("toplangs") {
		return nil, fmt.Errorf("top languages: %w %q", ErrMissingField, "toplangs")
	}
	return ov.TopLangs, nil
}

// Count returns the total number of documents matching the query within the
// date range.
func (c *Client) Count(ctx context.Context, query string, start, end time.Time, extra map[string]any) (int64, error) {
	ov, err := c.overview(ctx, query, start, end, extra)
	if err != nil {
		return 0, err
	}
	if ov.NoResults() {
		return 0, nil
	}
	if !ov.Has("total") {
		return 0, fmt.Errorf("count: %w %q", ErrMissingField, "total")
	}
	return ov.Total, nil
}

// CountOverTime returns per-day match counts across the date range. Each
// entry carries the day at midnight UTC, its epoch seconds, and the count.
func (c *Client) CountOverTime(ctx context.Context, query string, start, end time.Time, extra map[string]any) (*CountOverTime, error) {
	ov, err := c.overview(ctx, query, start, end, extra)
	if err != nil {
		return nil, err
	}
	if ov.NoResults() {
		return &CountOverTime{}, nil
	}
	if !ov.Has("dailycounts") {
		return nil, fmt.Errorf("count over time: %w %q", ErrMissingField, "dailycounts")
	}
	series, err := ov.DailyCounts.Series()
	if err != nil {
		return nil, fmt.Errorf("count over time: %w", err)
	}
	return series, nil
}

// --------------------------------------------------------------------
// Direct endpoints
// --------------------------------------------------------------------

// Item fetches a single document by ID. The envelope is returned as-is,
// with no no-results handling.
func (c *Client) Item(ctx context.Context, itemID string) (Document, error) {
	requestsTotal.WithLabelValues(endpointArticle).Inc()
	return api.Article(ctx, c.http, c.baseURL, c.collection, itemID)
}

// Terms runs a term aggregation over a document field and returns the raw
// envelope. See the TermField and TermAggregation constants for the values
// the service documents.
func (c *Client) Terms(ctx context.Context, query string, start, end time.Time, field, aggregation string, extra map[string]any) (Envelope, error) {
	requestsTotal.WithLabelValues(endpointTerms).Inc()
	return api.Terms(ctx, c.http, c.baseURL, c.collection, field, aggregation, c.queryParams(query, start, end, extra))
}

// AllItems returns a pager over every page of results for the query. Pages
// are fetched lazily, one per Next call; the sequence is single-pass and a
// pager must not be shared across goroutines.
func (c *Client) AllItems(query string, start, end time.Time, extra map[string]any) *ItemPager {
	return &ItemPager{
		http:       c.http,
		baseURL:    c.baseURL,
		collection: c.collection,
		params:     c.queryParams(query, start, end, extra),
	}
}
