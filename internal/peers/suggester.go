// Package peers suggests comparable companies for a resolved article and
// filters out the ones that trip the ownership heuristics.
package peers

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"golang.org/x/time/rate"

	"pecheck/internal/classifier"
	"pecheck/internal/metrics"
	"pecheck/internal/models"
	"pecheck/internal/wiki"
)

// industryTerms mark a category as a plausible peer source. Wikipedia
// company articles carry many categories; only industry-shaped ones yield
// competitor lists.
var industryTerms = []string{
	"companies", "manufacturers", "retail", "technology", "software",
	"telecommunications", "energy", "food", "beverage", "transport",
	"healthcare", "pharmaceutical", "financial", "bank", "insurance",
}

// Source provides the article data the suggester needs. *wiki.Client
// satisfies it.
type Source interface {
	Categories(ctx context.Context, title string) ([]string, error)
	CategoryMembers(ctx context.Context, category string, limit int) ([]string, error)
	Summary(ctx context.Context, title string) (*models.Article, error)
}

// Suggester finds peer candidates and runs each through the classifier.
type Suggester struct {
	source        Source
	classifier    *classifier.Classifier
	limiter       *rate.Limiter
	maxPeers      int
	maxCategories int
}

// New creates a Suggester. perSecond bounds the candidate lookup rate so
// peer scanning stays polite to the API.
func New(source Source, cls *classifier.Classifier, perSecond float64, maxPeers, maxCategories int) *Suggester {
	return &Suggester{
		source:        source,
		classifier:    cls,
		limiter:       rate.NewLimiter(rate.Limit(perSecond), 1),
		maxPeers:      maxPeers,
		maxCategories: maxCategories,
	}
}

// Suggest returns peers of the article that show no ownership signals, in
// candidate order. Individual candidate failures are skipped; the method
// itself never fails, it just returns fewer peers.
func (s *Suggester) Suggest(ctx context.Context, article *models.Article) []models.Peer {
	candidates := s.candidates(ctx, article)

	var peers []models.Peer
	for _, title := range candidates {
		if len(peers) >= s.maxPeers {
			break
		}
		if err := s.limiter.Wait(ctx); err != nil {
			break
		}

		candidate, err := s.source.Summary(ctx, title)
		if err != nil {
			// A failed candidate never aborts the scan.
			metrics.RecordLookup(metrics.KindPeer, outcomeFor(err))
			slog.Debug("skipping peer candidate", "title", title, "error", err)
			continue
		}
		metrics.RecordLookup(metrics.KindPeer, models.OutcomeResolved)

		verdict := s.classifier.Classify(candidate.Summary)
		if verdict.PEOwned {
			continue
		}

		peers = append(peers, models.Peer{
			Title:   candidate.Title,
			URL:     candidate.URL,
			Excerpt: candidate.Excerpt(160),
			Verdict: verdict,
		})
	}
	return peers
}

// candidates collects peer candidate titles from the article's industry
// categories, de-duplicated and with the seed article removed.
func (s *Suggester) candidates(ctx context.Context, article *models.Article) []string {
	cats, err := s.source.Categories(ctx, article.Title)
	if err != nil {
		slog.Debug("failed to fetch categories", "title", article.Title, "error", err)
		return nil
	}

	industry := filterIndustryCategories(cats)
	if len(industry) > s.maxCategories {
		industry = industry[:s.maxCategories]
	}

	// Pull more members than maxPeers since PE-positive and failed
	// candidates are dropped later.
	perCategory := s.maxPeers * 3

	var out []string
	seen := map[string]bool{article.Title: true}
	for _, cat := range industry {
		members, err := s.source.CategoryMembers(ctx, cat, perCategory)
		if err != nil {
			slog.Debug("failed to fetch category members", "category", cat, "error", err)
			continue
		}
		for _, title := range members {
			if title == "" || seen[title] {
				continue
			}
			seen[title] = true
			out = append(out, title)
		}
	}
	return out
}

func filterIndustryCategories(cats []string) []string {
	var out []string
	for _, cat := range cats {
		lower := strings.ToLower(cat)
		for _, term := range industryTerms {
			if strings.Contains(lower, term) {
				out = append(out, cat)
				break
			}
		}
	}
	return out
}

func outcomeFor(err error) string {
	switch {
	case err == nil:
		return models.OutcomeResolved
	case errors.Is(err, wiki.ErrNotFound):
		return models.OutcomeNotFound
	default:
		return models.OutcomeUnavailable
	}
}
