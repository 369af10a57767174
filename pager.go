package waybacknews

import (
	"context"
	"net/http"

	"github.com/mediacloud/waybacknews-go/internal/api"
)

// ItemPager walks a paginated result set one page at a time. The service
// drives continuation through the x-resume-token response header; the pager
// owns the current token and stops when a page arrives without one.
type ItemPager struct {
	http       *http.Client
	baseURL    string
	collection string
	params     map[string]any
	resume     string
	done       bool
}

// More reports whether Next may yield another page.
func (p *ItemPager) More() bool { return !p.done }

// Next fetches the next page and returns it unmodified. It returns
// ErrPagerExhausted once the set is consumed. A transport or decode error
// also ends the sequence; pagers are not restartable.
func (p *ItemPager) Next(ctx context.Context) (ResultPage, error) {
	if p.done {
		return nil, ErrPagerExhausted
	}
	if p.resume != "" {
		p.params["resume"] = p.resume
	}
	requestsTotal.WithLabelValues(endpointResult).Inc()
	page, token, err := api.Result(ctx, p.http, p.baseURL, p.collection, p.params)
	if err != nil {
		p.done = true
		return nil, err
	}
	pagesTotal.Inc()
	if token == "" {
		p.done = true
	} else {
		p.resume = token
	}
	return page, nil
}
