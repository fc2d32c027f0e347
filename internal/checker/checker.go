// Package checker orchestrates one ownership check: resolve the company,
// classify its summary, then gather non-PE peers. Each check owns its own
// data; nothing is shared or retained across requests.
package checker

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"pecheck/internal/classifier"
	"pecheck/internal/metrics"
	"pecheck/internal/models"
	"pecheck/internal/validation"
	"pecheck/internal/wiki"
)

// ErrEmptyQuery means the user submitted no company name. Rejected before
// any network call.
var ErrEmptyQuery = errors.New("empty query")

// Resolver resolves a free-text query to an article. *wiki.Client
// satisfies it.
type Resolver interface {
	Lookup(ctx context.Context, query string) (*models.Article, error)
}

// Suggester produces the filtered peer list for a resolved article.
type Suggester interface {
	Suggest(ctx context.Context, article *models.Article) []models.Peer
}

// Checker runs the full lookup → classify → peers pipeline.
type Checker struct {
	resolver   Resolver
	classifier *classifier.Classifier
	peers      Suggester
}

// New creates a Checker.
func New(resolver Resolver, cls *classifier.Classifier, peers Suggester) *Checker {
	return &Checker{resolver: resolver, classifier: cls, peers: peers}
}

// Check performs one complete interaction for a company name query.
// Returns ErrEmptyQuery for blank input, wiki.ErrNotFound when the name
// resolves to nothing, and wiki.ErrUnavailable when the primary lookup
// fails transiently. Peer failures never surface; they only shrink the
// peer list.
func (c *Checker) Check(ctx context.Context, query string) (*models.Result, error) {
	start := time.Now()
	defer func() { metrics.ObserveCheckDuration(time.Since(start)) }()

	query = validation.NormalizeQuery(query)
	if ok, _ := validation.ValidateQuery(query); !ok {
		return nil, ErrEmptyQuery
	}

	article, err := c.resolver.Lookup(ctx, query)
	if err != nil {
		switch {
		case errors.Is(err, wiki.ErrNotFound):
			metrics.RecordLookup(metrics.KindPrimary, models.OutcomeNotFound)
		default:
			metrics.RecordLookup(metrics.KindPrimary, models.OutcomeUnavailable)
		}
		return nil, err
	}
	metrics.RecordLookup(metrics.KindPrimary, models.OutcomeResolved)

	verdict := c.classifier.Classify(article.Summary)
	metrics.RecordVerdict(verdict.PEOwned)

	result := &models.Result{
		ID:      uuid.New(),
		Query:   query,
		Article: article,
		Verdict: verdict,
		Peers:   c.peers.Suggest(ctx, article),
	}

	slog.Info("check completed",
		"id", result.ID,
		"query", query,
		"title", article.Title,
		"pe_owned", verdict.PEOwned,
		"peers", len(result.Peers),
		"duration", time.Since(start),
	)

	return result, nil
}
