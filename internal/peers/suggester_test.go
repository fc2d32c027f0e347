package peers

import (
	"context"
	"fmt"
	"testing"

	"pecheck/internal/classifier"
	"pecheck/internal/config"
	"pecheck/internal/models"
	"pecheck/internal/wiki"
)

// fakeSource serves canned category and summary data.
type fakeSource struct {
	categories map[string][]string
	members    map[string][]string
	summaries  map[string]string
	failures   map[string]error
}

func (f *fakeSource) Categories(_ context.Context, title string) ([]string, error) {
	return f.categories[title], nil
}

func (f *fakeSource) CategoryMembers(_ context.Context, category string, _ int) ([]string, error) {
	return f.members[category], nil
}

func (f *fakeSource) Summary(_ context.Context, title string) (*models.Article, error) {
	if err, ok := f.failures[title]; ok {
		return nil, err
	}
	summary, ok := f.summaries[title]
	if !ok {
		return nil, wiki.ErrNotFound
	}
	return &models.Article{Title: title, Summary: summary, URL: "https://en.wikipedia.org/wiki/" + title}, nil
}

func newSuggester(source Source, maxPeers int) *Suggester {
	cls := classifier.New(config.DefaultSignals())
	return New(source, cls, 1000, maxPeers, 2)
}

func TestSuggestFiltersPositiveVerdicts(t *testing.T) {
	source := &fakeSource{
		categories: map[string][]string{
			"Example Corp": {"Office supply companies", "1986 establishments in the United States"},
		},
		members: map[string][]string{
			"Office supply companies": {"Alpha Inc", "Beta Holdings", "Gamma Ltd"},
		},
		summaries: map[string]string{
			"Alpha Inc":     "Alpha Inc is a publicly traded office supply retailer.",
			"Beta Holdings": "Beta Holdings is a portfolio company of Acme Capital Partners.",
			"Gamma Ltd":     "Gamma Ltd is a family-owned stationery business.",
		},
	}

	s := newSuggester(source, 5)
	peers := s.Suggest(context.Background(), &models.Article{Title: "Example Corp"})

	if len(peers) != 2 {
		t.Fatalf("expected 2 peers, got %d: %+v", len(peers), peers)
	}
	// Beta Holdings trips the heuristics and is dropped; survivors keep
	// their candidate order.
	if peers[0].Title != "Alpha Inc" || peers[1].Title != "Gamma Ltd" {
		t.Errorf("peers out of order: %q, %q", peers[0].Title, peers[1].Title)
	}
}

func TestSuggestSkipsFailedCandidates(t *testing.T) {
	source := &fakeSource{
		categories: map[string][]string{
			"Example Corp": {"Office supply companies"},
		},
		members: map[string][]string{
			"Office supply companies": {"Alpha Inc", "Broken Co", "Gamma Ltd"},
		},
		summaries: map[string]string{
			"Alpha Inc": "Alpha Inc is a publicly traded office supply retailer.",
			"Gamma Ltd": "Gamma Ltd is a family-owned stationery business.",
		},
		failures: map[string]error{
			"Broken Co": fmt.Errorf("%w: HTTP 503", wiki.ErrUnavailable),
		},
	}

	s := newSuggester(source, 5)
	peers := s.Suggest(context.Background(), &models.Article{Title: "Example Corp"})

	if len(peers) != 2 {
		t.Fatalf("a failed candidate should not abort the scan, got %d peers", len(peers))
	}
	if peers[0].Title != "Alpha Inc" || peers[1].Title != "Gamma Ltd" {
		t.Errorf("peers out of order: %q, %q", peers[0].Title, peers[1].Title)
	}
}

func TestSuggestExcludesSeedAndDuplicates(t *testing.T) {
	source := &fakeSource{
		categories: map[string][]string{
			"Example Corp": {"Office supply companies", "Retail companies of the United States"},
		},
		members: map[string][]string{
			"Office supply companies":                 {"Example Corp", "Alpha Inc"},
			"Retail companies of the United States":   {"Alpha Inc", "Gamma Ltd"},
		},
		summaries: map[string]string{
			"Alpha Inc": "Alpha Inc is a publicly traded office supply retailer.",
			"Gamma Ltd": "Gamma Ltd is a family-owned stationery business.",
		},
	}

	s := newSuggester(source, 5)
	peers := s.Suggest(context.Background(), &models.Article{Title: "Example Corp"})

	if len(peers) != 2 {
		t.Fatalf("expected 2 peers after dedup, got %d", len(peers))
	}
	for _, p := range peers {
		if p.Title == "Example Corp" {
			t.Error("seed article must not appear in its own peer list")
		}
	}
}

func TestSuggestRespectsCap(t *testing.T) {
	members := make([]string, 10)
	summaries := make(map[string]string, 10)
	for i := range members {
		title := fmt.Sprintf("Company %d", i)
		members[i] = title
		summaries[title] = title + " is an independent retailer."
	}

	source := &fakeSource{
		categories: map[string][]string{"Example Corp": {"Retail companies"}},
		members:    map[string][]string{"Retail companies": members},
		summaries:  summaries,
	}

	s := newSuggester(source, 3)
	peers := s.Suggest(context.Background(), &models.Article{Title: "Example Corp"})

	if len(peers) != 3 {
		t.Errorf("expected peer list capped at 3, got %d", len(peers))
	}
}

func TestSuggestIgnoresNonIndustryCategories(t *testing.T) {
	source := &fakeSource{
		categories: map[string][]string{
			"Example Corp": {"1986 establishments in California", "Living people"},
		},
		members: map[string][]string{
			"1986 establishments in California": {"Alpha Inc"},
			"Living people":                     {"Some Person"},
		},
		summaries: map[string]string{
			"Alpha Inc": "Alpha Inc is a publicly traded office supply retailer.",
		},
	}

	s := newSuggester(source, 5)
	peers := s.Suggest(context.Background(), &models.Article{Title: "Example Corp"})

	if len(peers) != 0 {
		t.Errorf("non-industry categories should yield no candidates, got %+v", peers)
	}
}
