package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestTerms_BuildsPathAndQuery(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/col/terms/title/top" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if r.Method != http.MethodGet {
			t.Errorf("method = %s", r.Method)
		}
		if got := r.URL.Query().Get("q"); got != "apple" {
			t.Errorf("q = %q", got)
		}
		_, _ = w.Write([]byte(`{"apple":12,"pie":4}`))
	}))
	defer srv.Close()

	env, err := Terms(context.Background(), srv.Client(), srv.URL, "col", "title", "top", map[string]any{"q": "apple"})
	if err != nil {
		t.Fatalf("Terms: %v", err)
	}
	if env["apple"] != float64(12) {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}

func TestTerms_TransportError(t *testing.T) {
	t.Parallel()
	hc := &http.Client{Transport: &errRT{}}
	if _, err := Terms(context.Background(), hc, "http://example.com", "col", "title", "top", nil); err == nil {
		t.Fatal("expected transport error")
	}
}
