package domain

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("catalog: not found")

type CatalogRepository interface {
	// Write paths
	UpsertBusiness(ctx context.Context, b Business) error
	UpsertListing(ctx context.Context, l Listing) error
	UpsertDeal(ctx context.Context, d Deal) error
	UpsertEvent(ctx context.Context, e Event) error
	UpsertNews(ctx context.Context, n News) error
	LogMiss(ctx context.Context, collection string, status int, reason string) error

	// Read paths
	GetBusiness(ctx context.Context, id string) (Business, error)
	Snapshot(ctx context.Context) (Catalog, error)
}

// ContentClient pulls raw collection payloads from the upstream content
// export (the mobile app's static data, republished as JSON).
type ContentClient interface {
	GetCollection(ctx context.Context, name string) ([]map[string]any, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// Collections lists the upstream export collections in ingest order.
var Collections = []string{"businesses", "listings", "deals", "events", "news"}
