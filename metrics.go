package waybacknews

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	endpointOverview = "search/overview"
	endpointResult   = "search/result"
	endpointArticle  = "article"
	endpointTerms    = "terms"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "waybacknews_client",
			Name:      "requests_total",
			Help:      "API calls issued, by endpoint.",
		},
		[]string{"endpoint"},
	)

	pagesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "waybacknews_client",
			Name:      "result_pages_total",
			Help:      "Result pages fetched by pagers.",
		},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "waybacknews_client",
			Name:      "request_duration_seconds",
			Help:      "Wall time per HTTP request.",
		},
		[]string{"method", "code"},
	)
)

// metricsTransport observes every request's latency and outcome.
type metricsTransport struct{ base http.RoundTripper }

func (t *metricsTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.base.RoundTrip(req)
	code := "error"
	if err == nil {
		code = strconv.Itoa(resp.StatusCode)
	}
	requestDuration.WithLabelValues(req.Method, code).Observe(time.Since(start).Seconds())
	return resp, err
}
