// Package search implements the catalog search core: text normalization,
// synonym-aware tag matching, opening-hours evaluation and per-content-type
// filtering. Everything here is a pure function over an in-memory catalog
// snapshot; callers own caching and persistence.
package search

import (
	"time"

	"procura_uai/internal/domain"
)

// Query is one search invocation: free text plus the active filter chips,
// evaluated at Now (zero means wall-clock time).
type Query struct {
	Text    string
	Filters []string
	Now     time.Time
}

// Results holds one bucket per content type, each preserving the catalog's
// relative order (stable filter, never sorted).
type Results struct {
	Businesses []domain.Business
	Listings   []domain.Listing
	Deals      []domain.Deal
	Events     []domain.Event
	News       []domain.News
}

type Engine struct {
	cat domain.Catalog
}

func NewEngine(cat domain.Catalog) *Engine {
	return &Engine{cat: cat}
}

// Search runs all five content filters over the snapshot.
func (e *Engine) Search(q Query) Results {
	now := q.Now
	if now.IsZero() {
		now = time.Now()
	}
	return Results{
		Businesses: FilterBusinesses(e.cat.Businesses, q.Text, q.Filters, now),
		Listings:   FilterListings(e.cat.Listings, q.Text, q.Filters),
		Deals:      FilterDeals(e.cat.Deals, q.Text, q.Filters, now),
		Events:     FilterEvents(e.cat.Events, q.Text, q.Filters, now),
		News:       FilterNews(e.cat.News, q.Text),
	}
}
