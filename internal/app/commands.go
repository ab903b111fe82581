package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"procura_uai/internal/domain"
)

type IngestionService struct {
	content domain.ContentClient
	repo    domain.CatalogRepository
	cache   domain.Cache
}

func NewIngestionService(c domain.ContentClient, r domain.CatalogRepository, cache domain.Cache) *IngestionService {
	return &IngestionService{content: c, repo: r, cache: cache}
}

// IngestCollection pulls one export collection, maps each payload and
// upserts it. Known upstream failures (404/401/403) are recorded as misses
// and stop the collection gracefully; anything else bubbles up.
func (s *IngestionService) IngestCollection(ctx context.Context, name string) error {
	items, err := s.content.GetCollection(ctx, name)
	if err != nil {
		low := strings.ToLower(err.Error())

		if errors.Is(err, domain.ErrNotFound) || strings.Contains(low, "not found") {
			_ = s.repo.LogMiss(ctx, name, 404, "not found")
			s.invalidate(ctx)
			return nil
		}
		if strings.Contains(low, "403") || strings.Contains(low, "forbidden") ||
			strings.Contains(low, "401") || strings.Contains(low, "unauthorized") {
			_ = s.repo.LogMiss(ctx, name, 403, "inactive")
			s.invalidate(ctx)
			return nil
		}
		return err
	}

	for _, raw := range items {
		if err := s.upsertOne(ctx, name, raw); err != nil {
			return fmt.Errorf("upsert %s item failed: %w", name, err)
		}
	}

	// always invalidate after a successful pull, even when empty, so the
	// snapshot never outlives a shrunk collection
	s.invalidate(ctx)
	return nil
}

func (s *IngestionService) upsertOne(ctx context.Context, collection string, raw map[string]any) error {
	switch collection {
	case "businesses":
		b := mapBusiness(raw)
		if err := s.repo.UpsertBusiness(ctx, b); err != nil {
			return err
		}
		if s.cache != nil && b.ID != "" {
			_ = s.cache.Del(ctx, "business:"+b.ID)
		}
		return nil
	case "listings":
		return s.repo.UpsertListing(ctx, mapListing(raw))
	case "deals":
		return s.repo.UpsertDeal(ctx, mapDeal(raw))
	case "events":
		return s.repo.UpsertEvent(ctx, mapEvent(raw))
	case "news":
		return s.repo.UpsertNews(ctx, mapNews(raw))
	default:
		return fmt.Errorf("unknown collection %q", collection)
	}
}

// invalidate drops the catalog snapshot. Per-business views are evicted as
// they are upserted; search result entries expire on their own TTL.
func (s *IngestionService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Del(ctx, snapshotKey)
}
