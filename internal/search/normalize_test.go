package search_test

import (
	"testing"

	"procura_uai/internal/search"
)

func TestNormalize(t *testing.T) {
	cases := []struct{ in, want string }{
		{"  Pizzaria do Zé!  ", "pizzaria do ze"},
		{"AÇOUGUE São João", "acougue sao joao"},
		{"tele-entrega", "tele entrega"},
		{"café,   pão & cia", "cafe pao cia"},
		{"", ""},
		{"   ", ""},
	}
	for _, c := range cases {
		if got := search.Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Pizzaria do Zé", "AÇAÍ & Cia.", "orçamento grátis!!!", "já normalizado", "",
	}
	for _, in := range inputs {
		once := search.Normalize(in)
		if twice := search.Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
