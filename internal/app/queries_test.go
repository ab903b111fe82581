package app_test

import (
	"context"
	"testing"
	"time"

	"procura_uai/internal/app"
	"procura_uai/internal/domain"
	"procura_uai/internal/search"
)

// ---- fakes ----

type fakeRepo struct {
	cat           domain.Catalog
	snapshotCalls int
}

func (f *fakeRepo) UpsertBusiness(ctx context.Context, b domain.Business) error { return nil }
func (f *fakeRepo) UpsertListing(ctx context.Context, l domain.Listing) error   { return nil }
func (f *fakeRepo) UpsertDeal(ctx context.Context, d domain.Deal) error         { return nil }
func (f *fakeRepo) UpsertEvent(ctx context.Context, e domain.Event) error       { return nil }
func (f *fakeRepo) UpsertNews(ctx context.Context, n domain.News) error         { return nil }
func (f *fakeRepo) LogMiss(ctx context.Context, collection string, status int, reason string) error {
	return nil
}
func (f *fakeRepo) GetBusiness(ctx context.Context, id string) (domain.Business, error) {
	for _, b := range f.cat.Businesses {
		if b.ID == id {
			return b, nil
		}
	}
	return domain.Business{}, domain.ErrNotFound
}
func (f *fakeRepo) Snapshot(ctx context.Context) (domain.Catalog, error) {
	f.snapshotCalls++
	return f.cat, nil
}

type fakeCache struct {
	store map[string]any
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	if c.store == nil {
		return false, nil
	}
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	switch d := dst.(type) {
	case *search.Results:
		*d = v.(search.Results)
	case *domain.Catalog:
		*d = v.(domain.Catalog)
	case *domain.Business:
		*d = v.(domain.Business)
	}
	return true, nil
}
func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string]any{}
	}
	c.store[key] = v
	return nil
}
func (c *fakeCache) Del(ctx context.Context, key string) error {
	delete(c.store, key)
	return nil
}

func strp(s string) *string { return &s }

// ---- tests ----

func TestSearch_CacheMissThenHit(t *testing.T) {
	repo := &fakeRepo{cat: domain.Catalog{
		Businesses: []domain.Business{{ID: "pizzaria", Name: "Pizzaria do Zé"}},
	}}
	cache := &fakeCache{}
	q := app.NewQueryService(repo, cache, 10*time.Minute)

	out, err := q.Search(context.Background(), "pizza", nil)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(out.Businesses) != 1 || out.Businesses[0].ID != "pizzaria" {
		t.Fatalf("unexpected results: %+v", out.Businesses)
	}

	// mutate repo to prove the second call is served from cache
	repo.cat.Businesses[0].Name = "SHOULD NOT SEE THIS"

	out2, err := q.Search(context.Background(), "pizza", nil)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if out2.Businesses[0].Name != "Pizzaria do Zé" {
		t.Fatalf("expected cached name, got %s", out2.Businesses[0].Name)
	}
}

func TestSearch_SnapshotIsReused(t *testing.T) {
	repo := &fakeRepo{cat: domain.Catalog{
		Businesses: []domain.Business{{ID: "a", Name: "Açougue"}, {ID: "b", Name: "Bar"}},
	}}
	cache := &fakeCache{}
	q := app.NewQueryService(repo, cache, 10*time.Minute)

	if _, err := q.Search(context.Background(), "bar", nil); err != nil {
		t.Fatalf("err: %v", err)
	}
	if _, err := q.Search(context.Background(), "acougue", nil); err != nil {
		t.Fatalf("err: %v", err)
	}
	if repo.snapshotCalls != 1 {
		t.Fatalf("expected one repo snapshot, got %d", repo.snapshotCalls)
	}
}

func TestGetBusiness_NotFound(t *testing.T) {
	q := app.NewQueryService(&fakeRepo{}, &fakeCache{}, time.Minute)
	if _, err := q.GetBusiness(context.Background(), "nope"); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestBusinessOpenState(t *testing.T) {
	repo := &fakeRepo{cat: domain.Catalog{Businesses: []domain.Business{
		{ID: "sempre", Name: "Farmácia", Hours: strp("24 horas")},
		{ID: "sem-horario", Name: "Ateliê"},
	}}}
	q := app.NewQueryService(repo, &fakeCache{}, time.Minute)

	st, b, err := q.BusinessOpenState(context.Background(), "sempre")
	if err != nil || st != search.StateOpen || b.ID != "sempre" {
		t.Fatalf("got state=%v business=%+v err=%v", st, b, err)
	}

	st, _, err = q.BusinessOpenState(context.Background(), "sem-horario")
	if err != nil || st != search.StateUnknown {
		t.Fatalf("missing hours should be unknown, got %v (%v)", st, err)
	}
}
