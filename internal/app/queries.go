package app

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"procura_uai/internal/domain"
	"procura_uai/internal/search"
)

type QueryService struct {
	repo     domain.CatalogRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewQueryService(r domain.CatalogRepository, c domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{repo: r, cache: c, cacheTTL: ttl}
}

// Search loads the catalog snapshot and runs the engine, caching the result
// per (query, filters, time bucket). The 15-minute bucket keeps time-derived
// chips (open now, today, weekend) from serving stale answers across a
// window boundary while still getting cache hits between keystrokes.
func (s *QueryService) Search(ctx context.Context, q string, filters []string) (search.Results, error) {
	now := time.Now()
	key := searchKey(q, filters, now)
	var out search.Results
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out, nil
	}
	cat, err := s.snapshot(ctx)
	if err != nil {
		return search.Results{}, err
	}
	out = search.NewEngine(cat).Search(search.Query{Text: q, Filters: filters, Now: now})
	_ = s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds()))
	return out, nil
}

func (s *QueryService) GetBusiness(ctx context.Context, id string) (domain.Business, error) {
	key := "business:" + id
	var b domain.Business
	if ok, _ := s.cache.Get(ctx, key, &b); ok {
		return b, nil
	}
	b, err := s.repo.GetBusiness(ctx, id)
	if err != nil {
		return domain.Business{}, err
	}
	_ = s.cache.Set(ctx, key, b, int(s.cacheTTL.Seconds()))
	return b, nil
}

// BusinessOpenState evaluates a business's hours against wall-clock time.
func (s *QueryService) BusinessOpenState(ctx context.Context, id string) (search.OpenState, domain.Business, error) {
	b, err := s.GetBusiness(ctx, id)
	if err != nil {
		return search.StateUnknown, domain.Business{}, err
	}
	hours := ""
	if b.Hours != nil {
		hours = *b.Hours
	}
	return search.IsOpenAt(hours, time.Now()), b, nil
}

// snapshot fetches the full catalog, cached under a single key that
// ingestion invalidates after every run.
func (s *QueryService) snapshot(ctx context.Context) (domain.Catalog, error) {
	var cat domain.Catalog
	if ok, _ := s.cache.Get(ctx, snapshotKey, &cat); ok {
		return cat, nil
	}
	cat, err := s.repo.Snapshot(ctx)
	if err != nil {
		return domain.Catalog{}, err
	}
	_ = s.cache.Set(ctx, snapshotKey, cat, int(s.cacheTTL.Seconds()))
	return cat, nil
}

const snapshotKey = "catalog:snapshot"

func searchKey(q string, filters []string, now time.Time) string {
	bucket := now.Truncate(15 * time.Minute).Format("200601021504")
	sig := strings.Join(append([]string{search.Normalize(q), bucket}, filters...), "|")
	sum := sha1.Sum([]byte(sig))
	return fmt.Sprintf("search:%s", hex.EncodeToString(sum[:]))
}
