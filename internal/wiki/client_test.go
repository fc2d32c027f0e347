package wiki

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"pecheck/internal/cache"
	"pecheck/internal/testutil"
)

// fakeWikiAPI emulates the small slice of the MediaWiki action API the
// client uses.
func fakeWikiAPI(t *testing.T, pages map[string]string) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		switch {
		case q.Get("action") == "opensearch":
			search := q.Get("search")
			if _, ok := pages[search]; ok {
				fmt.Fprintf(w, `["%s",["%s"],[""],[""]]`, search, search)
				return
			}
			fmt.Fprintf(w, `["%s",[],[],[]]`, search)

		case q.Get("list") == "search":
			fmt.Fprint(w, `{"query":{"search":[]}}`)

		case q.Get("prop") == "extracts":
			title := q.Get("titles")
			if extract, ok := pages[title]; ok {
				fmt.Fprintf(w, `{"query":{"pages":{"100":{"pageid":100,"title":"%s","extract":"%s"}}}}`, title, extract)
				return
			}
			fmt.Fprint(w, `{"query":{"pages":{"-1":{"title":"missing","missing":""}}}}`)

		default:
			t.Errorf("unexpected request: %s", r.URL.String())
			w.WriteHeader(http.StatusBadRequest)
		}
	}
}

func newTestClient(url string, store cache.Store) *Client {
	return NewClient(testutil.TestConfig(url), store)
}

func TestLookupResolvesArticle(t *testing.T) {
	pages := map[string]string{
		"Example Corp": "Example Corp is a portfolio company of Acme Capital Partners.",
	}
	srv := httptest.NewServer(fakeWikiAPI(t, pages))
	defer srv.Close()

	c := newTestClient(srv.URL, cache.Noop{})

	article, err := c.Lookup(context.Background(), "Example Corp")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if article.Title != "Example Corp" {
		t.Errorf("title = %q", article.Title)
	}
	if article.Summary != pages["Example Corp"] {
		t.Errorf("summary = %q", article.Summary)
	}
	if article.URL != "https://en.wikipedia.org/wiki/Example_Corp" {
		t.Errorf("url = %q", article.URL)
	}
}

func TestLookupNotFound(t *testing.T) {
	srv := httptest.NewServer(fakeWikiAPI(t, nil))
	defer srv.Close()

	c := newTestClient(srv.URL, cache.Noop{})

	if _, err := c.Lookup(context.Background(), "No Such Company"); !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestSummaryMissingPage(t *testing.T) {
	srv := httptest.NewServer(fakeWikiAPI(t, nil))
	defer srv.Close()

	c := newTestClient(srv.URL, cache.Noop{})

	if _, err := c.Summary(context.Background(), "Missing Title"); !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestGetRetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32
	pages := map[string]string{"Example Corp": "An office supply retailer."}
	inner := fakeWikiAPI(t, pages)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		inner(w, r)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, cache.Noop{})

	article, err := c.Summary(context.Background(), "Example Corp")
	if err != nil {
		t.Fatalf("Summary should succeed after a retry: %v", err)
	}
	if article.Title != "Example Corp" {
		t.Errorf("title = %q", article.Title)
	}
	if calls.Load() < 2 {
		t.Errorf("expected a retry, got %d calls", calls.Load())
	}
}

func TestGetGivesUpAfterRetries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, cache.Noop{})

	if _, err := c.Summary(context.Background(), "Example Corp"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("error = %v, want ErrUnavailable", err)
	}
}

func TestSummaryUsesCache(t *testing.T) {
	var calls atomic.Int32
	pages := map[string]string{"Example Corp": "An office supply retailer."}
	inner := fakeWikiAPI(t, pages)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		inner(w, r)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, testutil.NewMemoryStore())

	for i := 0; i < 3; i++ {
		article, err := c.Summary(context.Background(), "Example Corp")
		if err != nil {
			t.Fatalf("Summary failed on call %d: %v", i, err)
		}
		if article.Summary != pages["Example Corp"] {
			t.Errorf("summary = %q", article.Summary)
		}
	}

	if calls.Load() != 1 {
		t.Errorf("expected 1 upstream call with a warm cache, got %d", calls.Load())
	}
}

func TestUserAgentHeader(t *testing.T) {
	var gotUA atomic.Value
	pages := map[string]string{"Example Corp": "An office supply retailer."}
	inner := fakeWikiAPI(t, pages)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA.Store(r.Header.Get("User-Agent"))
		inner(w, r)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, cache.Noop{})
	if _, err := c.Summary(context.Background(), "Example Corp"); err != nil {
		t.Fatalf("Summary failed: %v", err)
	}

	if ua, _ := gotUA.Load().(string); ua != "pecheck-test/1.0" {
		t.Errorf("user agent = %q", ua)
	}
}
