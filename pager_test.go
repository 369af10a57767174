package waybacknews

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAllItemsPaginates(t *testing.T) {
	var bodies []map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("body decode: %v", err)
		}
		bodies = append(bodies, body)
		if len(bodies) == 1 {
			w.Header().Set("x-resume-token", "abc")
		}
		_, _ = w.Write([]byte(`{"matches":[{"id":"1"}]}`))
	}))
	defer srv.Close()

	c := New("col", WithHTTPClient(srv.Client()), WithBaseURL(srv.URL))
	pager := c.AllItems("apple", testStart, testEnd, nil)
	ctx := context.Background()

	page, err := pager.Next(ctx)
	if err != nil {
		t.Fatalf("first page: %v", err)
	}
	if _, ok := page["matches"]; !ok {
		t.Fatalf("page not passed through: %+v", page)
	}
	if !pager.More() {
		t.Fatal("expected another page after resume token")
	}

	if _, err := pager.Next(ctx); err != nil {
		t.Fatalf("second page: %v", err)
	}
	if pager.More() {
		t.Fatal("expected exhaustion after tokenless page")
	}
	if _, err := pager.Next(ctx); !IsPagerExhausted(err) {
		t.Fatalf("expected ErrPagerExhausted, got %v", err)
	}

	if len(bodies) != 2 {
		t.Fatalf("expected exactly 2 requests, got %d", len(bodies))
	}
	if _, ok := bodies[0]["resume"]; ok {
		t.Fatalf("first request carried a resume token: %v", bodies[0])
	}
	if bodies[1]["resume"] != "abc" {
		t.Fatalf("second request resume = %v, want abc", bodies[1]["resume"])
	}
}

func TestPagerEndsOnTransportError(t *testing.T) {
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return nil, context.DeadlineExceeded
	})
	c := New("col", WithHTTPClient(&http.Client{Transport: rt}))
	pager := c.AllItems("apple", testStart, testEnd, nil)

	if _, err := pager.Next(context.Background()); err == nil {
		t.Fatal("expected transport error")
	}
	if pager.More() {
		t.Fatal("pager should be done after an error")
	}
}
