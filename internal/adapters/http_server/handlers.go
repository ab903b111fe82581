package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"procura_uai/internal/adapters/observability"
	"procura_uai/internal/app"
	"procura_uai/internal/search"
)

type Handlers struct{ Q *app.QueryService }

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/search", h.search)
	s.mux.Get("/v1/businesses/{id}", h.getBusiness)
	s.mux.Get("/v1/businesses/{id}/open", h.businessOpen)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag) // include ETag on 304
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}

// parseFilters splits the filters query param on commas, keeping the chip
// labels as sent; normalization happens inside the search core.
func parseFilters(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func (h *Handlers) search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	filters := parseFilters(r.URL.Query().Get("filters"))

	res, err := h.Q.Search(r.Context(), q, filters)
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Search failed", err.Error())
		return
	}

	observability.ObserveSearch("businesses", len(res.Businesses))
	observability.ObserveSearch("listings", len(res.Listings))
	observability.ObserveSearch("deals", len(res.Deals))
	observability.ObserveSearch("events", len(res.Events))
	observability.ObserveSearch("news", len(res.News))

	writeJSON(w, r, res)
}

func (h *Handlers) getBusiness(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id is required")
		return
	}
	b, err := h.Q.GetBusiness(r.Context(), id)
	if err != nil {
		writeProblem(w, http.StatusNotFound, "Not Found", "business not found")
		return
	}
	writeJSON(w, r, b)
}

type openResponse struct {
	ID    string  `json:"id"`
	State string  `json:"state"` // open|closed|unknown
	Hours *string `json:"hours,omitempty"`
}

func (h *Handlers) businessOpen(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	st, b, err := h.Q.BusinessOpenState(r.Context(), id)
	if err != nil {
		writeProblem(w, http.StatusNotFound, "Not Found", "business not found")
		return
	}
	var hours *string
	if b.Hours != nil {
		display := search.FormatHours(*b.Hours)
		hours = &display
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(openResponse{ID: b.ID, State: st.String(), Hours: hours}); err != nil {
		log.Error().Err(err).Msg("failed to write businessOpen body")
	}
}
