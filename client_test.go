package waybacknews

import (
	"strings"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	if New("mediacloud") == nil {
		t.Fatalf("expected client")
	}
}

func TestNewPanicsOnEmptyCollection(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	New("")
}

func TestDateQueryClause(t *testing.T) {
	t.Parallel()
	// Time-of-day components must be truncated to the calendar day.
	start := time.Date(2023, 11, 1, 13, 45, 12, 0, time.UTC)
	end := time.Date(2023, 12, 31, 1, 2, 3, 0, time.UTC)
	got := dateQueryClause(start, end)
	want := "publication_date:[2023-11-01 TO 2023-12-31]"
	if got != want {
		t.Fatalf("clause = %q, want %q", got, want)
	}
}

func TestQueryParams(t *testing.T) {
	t.Parallel()
	c := New("col")
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC)

	params := c.queryParams("apple", start, end, nil)
	q, ok := params["q"].(string)
	if !ok || !strings.HasPrefix(q, "apple AND publication_date:[") {
		t.Fatalf("q = %v", params["q"])
	}

	// Caller extras are merged verbatim and win on collisions, q included.
	params = c.queryParams("apple", start, end, map[string]any{"limit": 10, "q": "override"})
	if params["q"] != "override" {
		t.Fatalf("q = %v, want caller override", params["q"])
	}
	if params["limit"] != 10 {
		t.Fatalf("limit = %v", params["limit"])
	}
}
