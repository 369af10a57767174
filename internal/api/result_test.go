package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResult_ReturnsResumeToken(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/col/search/result" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Header().Set("x-resume-token", "abc")
		_, _ = w.Write([]byte(`{"matches":[{"id":"1"}]}`))
	}))
	defer srv.Close()

	page, token, err := Result(context.Background(), srv.Client(), srv.URL, "col", map[string]any{"q": "x"})
	if err != nil {
		t.Fatalf("Result: %v", err)
	}
	if token != "abc" {
		t.Fatalf("token = %q", token)
	}
	if _, ok := page["matches"]; !ok {
		t.Fatalf("page passed through without matches: %+v", page)
	}
}

func TestResult_NoTokenMeansExhausted(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"matches":[]}`))
	}))
	defer srv.Close()

	_, token, err := Result(context.Background(), srv.Client(), srv.URL, "col", nil)
	if err != nil {
		t.Fatalf("Result: %v", err)
	}
	if token != "" {
		t.Fatalf("token = %q, want empty", token)
	}
}

func TestResult_TransportError(t *testing.T) {
	t.Parallel()
	hc := &http.Client{Transport: &errRT{}}
	if _, _, err := Result(context.Background(), hc, "http://example.com", "col", nil); err == nil {
		t.Fatal("expected transport error")
	}
}
