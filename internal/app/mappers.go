package app

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"procura_uai/internal/domain"
)

/********** alias registries (single source of truth) **********/

var businessAliases = map[string][]string{
	"id":           {"id", "slug", "business_id"},
	"name":         {"name", "nome", "title"},
	"category":     {"category", "categoria"},
	"categorySlug": {"category_slug", "categorySlug", "categoria_slug"},
	"neighborhood": {"neighborhood", "bairro", "district"},
	"hours":        {"hours", "horario", "horario_funcionamento", "opening_hours"},
	"phone":        {"phone", "telefone", "tel"},
	"whatsapp":     {"whatsapp", "whats", "zap"},
	"description":  {"description", "descricao", "about"},
	"address":      {"address", "endereco", "full_address"},
}

var listingAliases = map[string][]string{
	"id":           {"id", "listing_id"},
	"title":        {"title", "titulo"},
	"type":         {"type", "tipo"},
	"neighborhood": {"neighborhood", "bairro"},
	"whatsapp":     {"whatsapp", "contact", "contato"},
	"createdAt":    {"created_at", "createdAt", "data"},
}

var dealAliases = map[string][]string{
	"id":           {"id", "deal_id"},
	"title":        {"title", "titulo"},
	"subtitle":     {"subtitle", "subtitulo"},
	"priceText":    {"price", "price_text", "preco"},
	"validUntil":   {"valid_until", "validUntil", "validade"},
	"businessId":   {"business_id", "businessId"},
	"businessName": {"business_name", "businessName", "loja"},
	"image":        {"image", "imagem", "cover"},
	"whatsapp":     {"whatsapp", "contact", "contato"},
}

var eventAliases = map[string][]string{
	"id":        {"id", "event_id"},
	"title":     {"title", "titulo"},
	"startsAt":  {"date", "starts_at", "startsAt", "data"},
	"location":  {"location", "local", "place"},
	"priceText": {"price", "price_text", "preco", "entrada"},
	"image":     {"image", "imagem", "cover"},
	"contact":   {"contact", "contato", "whatsapp"},
}

var newsAliases = map[string][]string{
	"id":      {"id", "news_id"},
	"title":   {"title", "titulo"},
	"tag":     {"tag", "category", "categoria"},
	"snippet": {"snippet", "resumo", "summary"},
	"date":    {"date", "data"},
	"image":   {"image", "imagem"},
}

/********** tiny helpers **********/

// lookupAny: safe nested lookup with dot paths on maps.
func lookupAny(m map[string]any, path string) any {
	cur := any(m)
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		v, ok := obj[part]
		if !ok {
			return nil
		}
		cur = v
	}
	return cur
}

func lookupStr(m map[string]any, path string) string {
	if v := lookupAny(m, path); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// firstNonEmptyAlias: first non-empty string for a named alias set.
func firstNonEmptyAlias(m map[string]any, aliases map[string][]string, key string) *string {
	for _, p := range aliases[key] {
		if s := lookupStr(m, p); s != "" {
			return &s
		}
	}
	return nil
}

func strAlias(m map[string]any, aliases map[string][]string, key string) string {
	if s := firstNonEmptyAlias(m, aliases, key); s != nil {
		return *s
	}
	return ""
}

// getFloatFlexible: number from several paths (float64/int/string like "8,0").
func getFloatFlexible(m map[string]any, paths ...string) *float64 {
	for _, k := range paths {
		switch v := lookupAny(m, k).(type) {
		case float64:
			f := v
			return &f
		case int:
			f := float64(v)
			return &f
		case string:
			s := strings.TrimSpace(strings.ReplaceAll(v, ",", "."))
			if s == "" {
				continue
			}
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				return &f
			}
		}
	}
	return nil
}

// getBoolFlexible: true for bool true, "true"/"sim"/"1", or numeric 1.
func getBoolFlexible(m map[string]any, paths ...string) bool {
	for _, k := range paths {
		switch v := lookupAny(m, k).(type) {
		case bool:
			if v {
				return true
			}
		case float64:
			if v == 1 {
				return true
			}
		case string:
			s := strings.ToLower(strings.TrimSpace(v))
			if s == "true" || s == "sim" || s == "1" {
				return true
			}
		}
	}
	return false
}

// firstSliceStrings: accept []any with either strings or {url/src/name}.
func firstSliceStrings(m map[string]any, paths ...string) []string {
	for _, k := range paths {
		if raw, ok := lookupAny(m, k).([]any); ok {
			out := make([]string, 0, len(raw))
			for _, it := range raw {
				switch t := it.(type) {
				case string:
					if t != "" {
						out = append(out, t)
					}
				case map[string]any:
					if u, ok := t["url"].(string); ok && u != "" {
						out = append(out, u)
						continue
					}
					if u, ok := t["src"].(string); ok && u != "" {
						out = append(out, u)
						continue
					}
					if n, ok := t["name"].(string); ok && n != "" {
						out = append(out, n)
						continue
					}
				}
			}
			if len(out) > 0 {
				return out
			}
		}
	}
	return nil
}

func mustRaw(context string, m map[string]any) []byte {
	raw, err := json.Marshal(m)
	if err != nil {
		log.Error().Err(err).Str("context", context).Msg("marshal payload failed")
	}
	return raw
}

/********** business mapper **********/

// descriptions often end with an opportunistic "4,8 (120)" rating pair
var ratingRe = regexp.MustCompile(`(\d[.,]\d)\s*\((\d+)\)`)

// extractRating pulls a "rating (count)" pair out of free description text.
func extractRating(desc string) (*float64, *int) {
	m := ratingRe.FindStringSubmatch(desc)
	if m == nil {
		return nil, nil
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
	if err != nil {
		return nil, nil
	}
	n, err := strconv.Atoi(m[2])
	if err != nil {
		return &f, nil
	}
	return &f, &n
}

func mapBusiness(p map[string]any) domain.Business {
	b := domain.Business{
		ID:           strAlias(p, businessAliases, "id"),
		Name:         strAlias(p, businessAliases, "name"),
		Category:     strAlias(p, businessAliases, "category"),
		CategorySlug: strAlias(p, businessAliases, "categorySlug"),
		Tags:         firstSliceStrings(p, "tags", "etiquetas"),
		Neighborhood: firstNonEmptyAlias(p, businessAliases, "neighborhood"),
		Hours:        firstNonEmptyAlias(p, businessAliases, "hours"),
		Phone:        firstNonEmptyAlias(p, businessAliases, "phone"),
		WhatsApp:     firstNonEmptyAlias(p, businessAliases, "whatsapp"),
		Images:       firstSliceStrings(p, "images", "photos", "fotos"),
		Verified:     getBoolFlexible(p, "verified", "verificado"),
		Description:  firstNonEmptyAlias(p, businessAliases, "description"),
		Address:      firstNonEmptyAlias(p, businessAliases, "address"),
		AcceptsCard:  getBoolFlexible(p, "accepts_card", "aceita_cartao", "acceptsCard"),
		Delivery:     getBoolFlexible(p, "delivery", "entrega", "tele_entrega"),
		EatNow:       getBoolFlexible(p, "eat_now", "comer_agora", "eatNow"),
		HomeService:  getBoolFlexible(p, "home_service", "atende_domicilio", "homeService"),
		FreeQuote:    getBoolFlexible(p, "free_quote", "orcamento_gratis", "freeQuote"),
		Service24h:   getBoolFlexible(p, "service_24h", "24h", "plantao"),
		PetFriendly:  getBoolFlexible(p, "pet_friendly", "aceita_pet", "petFriendly"),
		RawJSON:      mustRaw("mapBusiness", p),
	}
	if b.Description != nil {
		b.Rating, b.RatingCount = extractRating(*b.Description)
	}
	return b
}

/********** classified listing mapper **********/

func mapListing(p map[string]any) domain.Listing {
	l := domain.Listing{
		ID:           strAlias(p, listingAliases, "id"),
		Title:        strAlias(p, listingAliases, "title"),
		Neighborhood: firstNonEmptyAlias(p, listingAliases, "neighborhood"),
		Images:       firstSliceStrings(p, "images", "fotos"),
		WhatsApp:     firstNonEmptyAlias(p, listingAliases, "whatsapp"),
		CreatedAt:    firstNonEmptyAlias(p, listingAliases, "createdAt"),
		Highlight:    getBoolFlexible(p, "highlight", "destaque"),
		RawJSON:      mustRaw("mapListing", p),
	}
	switch strings.ToLower(strAlias(p, listingAliases, "type")) {
	case "doacao", "doação", "donation":
		l.Type = domain.ListingDonation
	default:
		l.Type = domain.ListingSale
		l.Price = getFloatFlexible(p, "price", "preco", "valor")
	}
	return l
}

/********** deal mapper **********/

func mapDeal(p map[string]any) domain.Deal {
	return domain.Deal{
		ID:           strAlias(p, dealAliases, "id"),
		Title:        strAlias(p, dealAliases, "title"),
		Subtitle:     firstNonEmptyAlias(p, dealAliases, "subtitle"),
		PriceText:    strAlias(p, dealAliases, "priceText"),
		ValidUntil:   strAlias(p, dealAliases, "validUntil"),
		BusinessID:   firstNonEmptyAlias(p, dealAliases, "businessId"),
		BusinessName: firstNonEmptyAlias(p, dealAliases, "businessName"),
		Image:        firstNonEmptyAlias(p, dealAliases, "image"),
		WhatsApp:     firstNonEmptyAlias(p, dealAliases, "whatsapp"),
		Sponsored:    getBoolFlexible(p, "sponsored", "patrocinado"),
		RawJSON:      mustRaw("mapDeal", p),
	}
}

/********** event mapper **********/

func mapEvent(p map[string]any) domain.Event {
	return domain.Event{
		ID:        strAlias(p, eventAliases, "id"),
		Title:     strAlias(p, eventAliases, "title"),
		StartsAt:  strAlias(p, eventAliases, "startsAt"),
		Location:  strAlias(p, eventAliases, "location"),
		PriceText: strAlias(p, eventAliases, "priceText"),
		Tags:      firstSliceStrings(p, "tags"),
		Image:     firstNonEmptyAlias(p, eventAliases, "image"),
		Contact:   firstNonEmptyAlias(p, eventAliases, "contact"),
		RawJSON:   mustRaw("mapEvent", p),
	}
}

/********** news mapper **********/

func mapNews(p map[string]any) domain.News {
	return domain.News{
		ID:      strAlias(p, newsAliases, "id"),
		Title:   strAlias(p, newsAliases, "title"),
		Tag:     strAlias(p, newsAliases, "tag"),
		Snippet: strAlias(p, newsAliases, "snippet"),
		Date:    strAlias(p, newsAliases, "date"),
		Image:   firstNonEmptyAlias(p, newsAliases, "image"),
		RawJSON: mustRaw("mapNews", p),
	}
}
