package api

import (
	"fmt"
	"net/http"
)

// errRT is an http.RoundTripper that always returns an error (simulates
// network failure) and records how often it was reached.
type errRT struct{ calls int }

func (e *errRT) RoundTrip(*http.Request) (*http.Response, error) {
	e.calls++
	return nil, fmt.Errorf("boom")
}
