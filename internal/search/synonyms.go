package search

// openNowKey is the canonical form of the "open now" chip; it is the only
// filter the combinator does not resolve through the tag matcher.
const openNowKey = "aberto agora"

// filterSynonyms maps a canonical filter key to the normalized phrases
// accepted as equivalent. Keys and variants must already be in Normalize()
// form; each list includes the key itself. Filters without an entry fall
// back to plain substring matching of their own normalized text.
var filterSynonyms = map[string][]string{
	"entrega":             {"entrega", "delivery", "tele entrega", "disk entrega"},
	"aceita cartao":       {"aceita cartao", "cartao", "cartao de credito", "credito", "debito"},
	"24 horas":            {"24 horas", "24h", "24hrs", "plantao"},
	"aceita pet":          {"aceita pet", "pet friendly", "pet", "aceita animais"},
	"orcamento gratis":    {"orcamento gratis", "orcamento gratuito", "orcamento sem custo"},
	"atende em domicilio": {"atende em domicilio", "a domicilio", "domicilio", "em casa"},
	"para comer agora":    {"para comer agora", "comer agora", "pronta entrega", "na hora"},
	"promocao":            {"promocao", "oferta", "desconto", "liquidacao"},
	"estacionamento":      {"estacionamento", "vagas", "parking"},
	"wifi":                {"wifi", "wi fi", "internet"},
}

// SynonymsFor resolves a filter's display label to its accepted variants.
func SynonymsFor(filter string) []string {
	key := Normalize(filter)
	if vs, ok := filterSynonyms[key]; ok {
		return vs
	}
	return []string{key}
}
