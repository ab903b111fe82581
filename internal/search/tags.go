package search

import (
	"strings"
	"time"

	"procura_uai/internal/domain"
)

// MatchesTag reports whether any synonym of filter matches any of the item's
// tags. Containment runs in both directions so that free-form tags like
// "tele-entrega rápida" still match the "entrega" chip. The looseness is
// deliberate: tags are authored text, not a controlled vocabulary.
func MatchesTag(tags []string, filter string) bool {
	syns := SynonymsFor(filter)
	for _, tag := range tags {
		nt := Normalize(tag)
		if nt == "" {
			continue
		}
		for _, syn := range syns {
			if syn == "" {
				continue
			}
			if strings.Contains(nt, syn) || strings.Contains(syn, nt) {
				return true
			}
		}
	}
	return false
}

// flagTags pairs each structured business flag with the canonical tag it
// contributes to the effective tag set.
var flagTags = []struct {
	set func(domain.Business) bool
	tag string
}{
	{func(b domain.Business) bool { return b.AcceptsCard }, "aceita cartao"},
	{func(b domain.Business) bool { return b.Delivery }, "entrega"},
	{func(b domain.Business) bool { return b.EatNow }, "para comer agora"},
	{func(b domain.Business) bool { return b.HomeService }, "atende em domicilio"},
	{func(b domain.Business) bool { return b.FreeQuote }, "orcamento gratis"},
	{func(b domain.Business) bool { return b.Service24h }, "24 horas"},
	{func(b domain.Business) bool { return b.PetFriendly }, "aceita pet"},
}

// EffectiveTags unions a business's authored tags with the canonical tags
// derived from its structured flags, so the matcher sees one uniform list.
func EffectiveTags(b domain.Business) []string {
	out := make([]string, 0, len(b.Tags)+len(flagTags))
	out = append(out, b.Tags...)
	for _, ft := range flagTags {
		if ft.set(b) {
			out = append(out, ft.tag)
		}
	}
	return out
}

// FilterOptions carries the per-item context the combinator needs beyond the
// tag list.
type FilterOptions struct {
	Hours        *string // free-form hours text, for the open-now filter
	CheckOpenNow bool
	Now          time.Time
}

// MatchesAllFilters AND-combines every active filter. The open-now filter
// consults the hours evaluator when enabled; an Unknown schedule never
// excludes the item. Every other filter goes through the tag matcher.
func MatchesAllFilters(tags []string, active []string, opt FilterOptions) bool {
	for _, f := range active {
		if Normalize(f) == openNowKey && opt.CheckOpenNow {
			hours := ""
			if opt.Hours != nil {
				hours = *opt.Hours
			}
			if IsOpenAt(hours, opt.Now) == StateClosed {
				return false
			}
			continue
		}
		if !MatchesTag(tags, f) {
			return false
		}
	}
	return true
}
