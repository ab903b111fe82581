package httpserver_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpserver "procura_uai/internal/adapters/http_server"
	"procura_uai/internal/app"
	"procura_uai/internal/domain"
)

type stubRepo struct{ cat domain.Catalog }

func (s *stubRepo) UpsertBusiness(ctx context.Context, b domain.Business) error { return nil }
func (s *stubRepo) UpsertListing(ctx context.Context, l domain.Listing) error   { return nil }
func (s *stubRepo) UpsertDeal(ctx context.Context, d domain.Deal) error         { return nil }
func (s *stubRepo) UpsertEvent(ctx context.Context, e domain.Event) error       { return nil }
func (s *stubRepo) UpsertNews(ctx context.Context, n domain.News) error         { return nil }
func (s *stubRepo) LogMiss(ctx context.Context, c string, st int, rs string) error {
	return nil
}
func (s *stubRepo) GetBusiness(ctx context.Context, id string) (domain.Business, error) {
	for _, b := range s.cat.Businesses {
		if b.ID == id {
			return b, nil
		}
	}
	return domain.Business{}, domain.ErrNotFound
}
func (s *stubRepo) Snapshot(ctx context.Context) (domain.Catalog, error) { return s.cat, nil }

type nopCache struct{}

func (nopCache) Get(ctx context.Context, key string, dst any) (bool, error) { return false, nil }
func (nopCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	return nil
}
func (nopCache) Del(ctx context.Context, key string) error { return nil }

func newTestServer(cat domain.Catalog) *httptest.Server {
	q := app.NewQueryService(&stubRepo{cat: cat}, nopCache{}, time.Minute)
	srv := httpserver.New()
	srv.MountHandlers(&httpserver.Handlers{Q: q})
	return httptest.NewServer(srv.Mux())
}

func TestSearchEndpoint(t *testing.T) {
	ts := newTestServer(domain.Catalog{
		Businesses: []domain.Business{
			{ID: "pizzaria-do-ze", Name: "Pizzaria do Zé", Category: "Pizzaria"},
			{ID: "padaria", Name: "Padaria da Esquina", Category: "Padaria"},
		},
	})
	defer ts.Close()

	res, err := http.Get(ts.URL + "/v1/search?q=pizza")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status %d", res.StatusCode)
	}
	if res.Header.Get("ETag") == "" {
		t.Fatal("expected ETag header")
	}

	var body struct {
		Businesses []struct{ ID, Name string }
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Businesses) != 1 || body.Businesses[0].ID != "pizzaria-do-ze" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestBusinessOpenEndpoint(t *testing.T) {
	hours := "18h às 23h"
	ts := newTestServer(domain.Catalog{
		Businesses: []domain.Business{{ID: "pizzaria-do-ze", Name: "Pizzaria do Zé", Hours: &hours}},
	})
	defer ts.Close()

	res, err := http.Get(ts.URL + "/v1/businesses/pizzaria-do-ze/open")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status %d", res.StatusCode)
	}
	var body struct {
		ID    string `json:"id"`
		State string `json:"state"`
		Hours string `json:"hours"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.ID != "pizzaria-do-ze" {
		t.Fatalf("unexpected body: %+v", body)
	}
	if body.Hours != "Horário: 18h às 23h" {
		t.Fatalf("hours = %q", body.Hours)
	}
	switch body.State {
	case "open", "closed":
		// depends on wall-clock time; either is fine for a parsable window
	default:
		t.Fatalf("state = %q, want open or closed", body.State)
	}
}

func TestBusinessNotFound(t *testing.T) {
	ts := newTestServer(domain.Catalog{})
	defer ts.Close()

	res, err := http.Get(ts.URL + "/v1/businesses/nope")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("status %d, want 404", res.StatusCode)
	}
	if ct := res.Header.Get("Content-Type"); ct != "application/problem+json" {
		t.Fatalf("content type %q", ct)
	}
}
