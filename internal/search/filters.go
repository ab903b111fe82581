package search

import (
	"strings"
	"time"

	"procura_uai/internal/domain"
)

// matchesText reports whether the normalized query is a substring of any of
// the normalized fields. An empty query matches everything.
func matchesText(query string, fields ...string) bool {
	q := Normalize(query)
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(Normalize(f), q) {
			return true
		}
	}
	return false
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// FilterBusinesses keeps businesses matching the free-text query over name,
// category, neighborhood and effective tags, and satisfying every active
// filter (open-now bound to the business's own hours string).
func FilterBusinesses(items []domain.Business, query string, active []string, now time.Time) []domain.Business {
	var out []domain.Business
	for _, b := range items {
		tags := EffectiveTags(b)
		fields := append([]string{b.Name, b.Category, deref(b.Neighborhood)}, tags...)
		if !matchesText(query, fields...) {
			continue
		}
		if !MatchesAllFilters(tags, active, FilterOptions{Hours: b.Hours, CheckOpenNow: true, Now: now}) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// MatchesListingFilter enforces donation/sale semantics for the listing
// chips. "novo"/"usado" only discriminate the transaction type: listings
// carry no condition attribute, so both resolve to sale-only.
func MatchesListingFilter(l domain.Listing, active []string) bool {
	for _, f := range active {
		switch Normalize(f) {
		case "doacao":
			if l.Type != domain.ListingDonation {
				return false
			}
		case "novo", "usado":
			if l.Type != domain.ListingSale {
				return false
			}
		}
	}
	return true
}

func FilterListings(items []domain.Listing, query string, active []string) []domain.Listing {
	var out []domain.Listing
	for _, l := range items {
		if !matchesText(query, l.Title, deref(l.Neighborhood)) {
			continue
		}
		if !MatchesListingFilter(l, active) {
			continue
		}
		out = append(out, l)
	}
	return out
}

// FilterDeals handles the two deal-specific chips and routes anything else
// through the tag matcher over an empty tag list (deals have no tags, so an
// unrecognized chip excludes every deal).
func FilterDeals(items []domain.Deal, query string, active []string, now time.Time) []domain.Deal {
	today := now.Format("2006-01-02")
	var out []domain.Deal
	for _, d := range items {
		if !matchesText(query, d.Title, deref(d.BusinessName)) {
			continue
		}
		ok := true
		for _, f := range active {
			switch Normalize(f) {
			case "valido hoje":
				// lexical ISO compare: valid through the end of ValidUntil
				if d.ValidUntil < today {
					ok = false
				}
			case "entrega":
				text := Normalize(d.Title + " " + deref(d.Subtitle))
				if !strings.Contains(text, "entrega") && !strings.Contains(text, "delivery") {
					ok = false
				}
			default:
				if !MatchesTag(nil, f) {
					ok = false
				}
			}
			if !ok {
				break
			}
		}
		if ok {
			out = append(out, d)
		}
	}
	return out
}

// freeEntryMarkers are the price-text phrases that count as free admission.
var freeEntryMarkers = []string{"gratuito", "gratuita", "gratis", "free", "entrada franca"}

func FilterEvents(items []domain.Event, query string, active []string, now time.Time) []domain.Event {
	today := now.Format("2006-01-02")
	var out []domain.Event
	for _, e := range items {
		fields := append([]string{e.Title, e.Location}, e.Tags...)
		if !matchesText(query, fields...) {
			continue
		}
		ok := true
		var rest []string
		for _, f := range active {
			switch Normalize(f) {
			case "entrada gratuita":
				price := Normalize(e.PriceText)
				found := false
				for _, m := range freeEntryMarkers {
					if strings.Contains(price, m) {
						found = true
						break
					}
				}
				if !found {
					ok = false
				}
			case "hoje":
				if !strings.HasPrefix(e.StartsAt, today) {
					ok = false
				}
			case "fim de semana":
				if !onWeekend(e.StartsAt) {
					ok = false
				}
			default:
				rest = append(rest, f)
			}
			if !ok {
				break
			}
		}
		if ok && len(rest) > 0 {
			ok = MatchesAllFilters(e.Tags, rest, FilterOptions{Now: now})
		}
		if ok {
			out = append(out, e)
		}
	}
	return out
}

// onWeekend parses the date prefix of an ISO date-time and checks for
// Saturday or Sunday. Unparsable dates never pass the weekend chip.
func onWeekend(startsAt string) bool {
	if len(startsAt) < 10 {
		return false
	}
	t, err := time.Parse("2006-01-02", startsAt[:10])
	if err != nil {
		return false
	}
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// FilterNews is text-only: the news feed has no filter chips.
func FilterNews(items []domain.News, query string) []domain.News {
	var out []domain.News
	for _, n := range items {
		if matchesText(query, n.Title, n.Tag, n.Snippet) {
			out = append(out, n)
		}
	}
	return out
}
