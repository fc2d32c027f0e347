// Package wiki implements the Wikipedia search and summary client used to
// resolve company names to articles.
package wiki

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pecheck/internal/cache"
	"pecheck/internal/config"
	"pecheck/internal/models"
)

// Client talks to the MediaWiki action API.
type Client struct {
	apiURL    string
	baseURL   string
	userAgent string
	retries   int
	client    *http.Client
	cache     cache.Store
	cacheTTL  time.Duration
}

// NewClient creates a Wikipedia client from the application config.
// The cache store may be cache.Noop; lookups never depend on it.
func NewClient(cfg *config.Config, store cache.Store) *Client {
	return &Client{
		apiURL:    cfg.WikiAPIURL,
		baseURL:   cfg.WikiBaseURL,
		userAgent: cfg.UserAgent,
		retries:   cfg.LookupRetries,
		client: &http.Client{
			Timeout: cfg.LookupTimeout,
		},
		cache:    store,
		cacheTTL: cfg.CacheTTL,
	}
}

// Lookup resolves a free-text company name to an Article.
// Returns ErrNotFound when nothing matches and ErrUnavailable on
// transient API failures.
func (c *Client) Lookup(ctx context.Context, query string) (*models.Article, error) {
	title, err := c.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	return c.Summary(ctx, title)
}

// Search finds the best article title for a query. The opensearch endpoint
// is tried first; the full-text search API is the fallback (the top hit
// wins in both cases, which also handles redirects and disambiguation).
func (c *Client) Search(ctx context.Context, query string) (string, error) {
	key := "wiki:title:" + strings.ToLower(query)
	if hit, err := c.cache.Get(key); err == nil {
		return string(hit), nil
	}

	title, osErr := c.opensearch(ctx, query)
	if osErr != nil {
		title, osErr = c.fullTextSearch(ctx, query)
	}
	if osErr != nil {
		return "", osErr
	}

	if err := c.cache.Set(key, []byte(title), c.cacheTTL); err != nil {
		slog.Warn("failed to cache search result", "query", query, "error", err)
	}
	return title, nil
}

func (c *Client) opensearch(ctx context.Context, query string) (string, error) {
	params := url.Values{}
	params.Set("action", "opensearch")
	params.Set("search", query)
	params.Set("limit", "1")
	params.Set("namespace", "0")
	params.Set("format", "json")

	body, err := c.get(ctx, params)
	if err != nil {
		return "", err
	}

	// Opensearch replies with a 4-element array; element 1 holds titles.
	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || len(raw) < 2 {
		return "", fmt.Errorf("%w: malformed opensearch response", ErrUnavailable)
	}
	var titles []string
	if err := json.Unmarshal(raw[1], &titles); err != nil {
		return "", fmt.Errorf("%w: malformed opensearch response", ErrUnavailable)
	}
	if len(titles) == 0 {
		return "", ErrNotFound
	}
	return titles[0], nil
}

func (c *Client) fullTextSearch(ctx context.Context, query string) (string, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("list", "search")
	params.Set("srsearch", query)
	params.Set("srlimit", "1")
	params.Set("format", "json")

	body, err := c.get(ctx, params)
	if err != nil {
		return "", err
	}

	var resp struct {
		Query struct {
			Search []struct {
				Title string `json:"title"`
			} `json:"search"`
		} `json:"query"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("%w: malformed search response", ErrUnavailable)
	}
	if len(resp.Query.Search) == 0 {
		return "", ErrNotFound
	}
	return resp.Query.Search[0].Title, nil
}

// Summary fetches the plain-text intro extract for a title.
func (c *Client) Summary(ctx context.Context, title string) (*models.Article, error) {
	key := "wiki:summary:" + title
	if hit, err := c.cache.Get(key); err == nil {
		var article models.Article
		if err := json.Unmarshal(hit, &article); err == nil {
			return &article, nil
		}
	}

	params := url.Values{}
	params.Set("action", "query")
	params.Set("prop", "extracts")
	params.Set("exintro", "1")
	params.Set("explaintext", "1")
	params.Set("redirects", "1")
	params.Set("titles", title)
	params.Set("format", "json")

	body, err := c.get(ctx, params)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Query struct {
			Pages map[string]struct {
				PageID  int    `json:"pageid"`
				Title   string `json:"title"`
				Extract string `json:"extract"`
			} `json:"pages"`
		} `json:"query"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: malformed extract response", ErrUnavailable)
	}

	for _, page := range resp.Query.Pages {
		// A missing page comes back under key "-1" with no pageid.
		if page.PageID == 0 {
			continue
		}
		article := &models.Article{
			Title:   page.Title,
			Summary: strings.TrimSpace(page.Extract),
			URL:     c.PageURL(page.Title),
		}
		if data, err := json.Marshal(article); err == nil {
			if err := c.cache.Set(key, data, c.cacheTTL); err != nil {
				slog.Warn("failed to cache summary", "title", title, "error", err)
			}
		}
		return article, nil
	}

	return nil, ErrNotFound
}

// Categories returns the article's non-hidden category names, with the
// "Category:" prefix stripped.
func (c *Client) Categories(ctx context.Context, title string) ([]string, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("prop", "categories")
	params.Set("clshow", "!hidden")
	params.Set("cllimit", "50")
	params.Set("redirects", "1")
	params.Set("titles", title)
	params.Set("format", "json")

	body, err := c.get(ctx, params)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Query struct {
			Pages map[string]struct {
				Categories []struct {
					Title string `json:"title"`
				} `json:"categories"`
			} `json:"pages"`
		} `json:"query"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: malformed categories response", ErrUnavailable)
	}

	var cats []string
	for _, page := range resp.Query.Pages {
		for _, cat := range page.Categories {
			cats = append(cats, strings.TrimPrefix(cat.Title, "Category:"))
		}
	}
	return cats, nil
}

// CategoryMembers returns up to limit mainspace article titles in a category.
func (c *Client) CategoryMembers(ctx context.Context, category string, limit int) ([]string, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("list", "categorymembers")
	params.Set("cmtitle", "Category:"+category)
	params.Set("cmlimit", fmt.Sprintf("%d", limit))
	params.Set("cmnamespace", "0")
	params.Set("format", "json")

	body, err := c.get(ctx, params)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Query struct {
			CategoryMembers []struct {
				Title string `json:"title"`
			} `json:"categorymembers"`
		} `json:"query"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: malformed categorymembers response", ErrUnavailable)
	}

	var titles []string
	for _, m := range resp.Query.CategoryMembers {
		titles = append(titles, m.Title)
	}
	return titles, nil
}

// PageURL returns the canonical article URL for a title.
func (c *Client) PageURL(title string) string {
	return c.baseURL + strings.ReplaceAll(title, " ", "_")
}

// get performs a GET against the action API with retry on transient
// failures (403/429/5xx and network errors), backing off exponentially.
// Hosted environments get throttled by Wikipedia occasionally, so 403 is
// treated as transient.
func (c *Client) get(ctx context.Context, params url.Values) ([]byte, error) {
	backoff := 800 * time.Millisecond
	var lastErr error

	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("%w: %v", ErrUnavailable, ctx.Err())
			case <-time.After(backoff):
			}
			backoff = backoff * 9 / 5
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"?"+params.Encode(), nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		req.Header.Set("User-Agent", c.userAgent)

		resp, err := c.client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}

		switch {
		case resp.StatusCode == http.StatusOK:
			return body, nil
		case resp.StatusCode == http.StatusForbidden,
			resp.StatusCode == http.StatusTooManyRequests,
			resp.StatusCode >= 500:
			lastErr = fmt.Errorf("HTTP %s", resp.Status)
			continue
		default:
			return nil, fmt.Errorf("%w: HTTP %s", ErrUnavailable, resp.Status)
		}
	}

	return nil, fmt.Errorf("%w: %v", ErrUnavailable, lastErr)
}
