package content_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"procura_uai/internal/adapters/content"
)

func TestClient_GetCollection_RetriesThenSuccess(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch atomic.AddInt32(&hits, 1) {
		case 1, 2:
			// two transient failures
			w.WriteHeader(500)
		default:
			w.WriteHeader(200)
			_ = json.NewEncoder(w).Encode([]map[string]any{{"id": "pizzaria-do-ze"}})
		}
	}))
	defer ts.Close()

	cl, err := content.New(ts.URL, "test-key", 100) // high RPS for tests
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	got, err := cl.GetCollection(ctx, "businesses")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 || got[0]["id"] != "pizzaria-do-ze" {
		t.Fatalf("unexpected payload: %+v", got)
	}
	if atomic.LoadInt32(&hits) < 3 {
		t.Fatalf("expected at least 3 calls due to retries, got %d", hits)
	}
}

func TestClient_GetCollection_LegacyFallback(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/export/deals.json" {
			_ = json.NewEncoder(w).Encode([]map[string]any{{"id": "d1"}})
			return
		}
		w.WriteHeader(404)
	}))
	defer ts.Close()

	cl, err := content.New(ts.URL, "", 100)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	got, err := cl.GetCollection(context.Background(), "deals")
	if err != nil {
		t.Fatalf("expected legacy layout fallback, got %v", err)
	}
	if len(got) != 1 || got[0]["id"] != "d1" {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestClient_GetCollection_404(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()

	cl, err := content.New(ts.URL, "", 100)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if _, err = cl.GetCollection(ctx, "news"); err == nil {
		t.Fatalf("expected error for 404")
	}
}
