package search_test

import (
	"testing"
	"time"

	"procura_uai/internal/search"
)

func at(hour, min int) time.Time {
	return time.Date(2025, 6, 2, hour, min, 0, 0, time.Local)
}

func TestParseHoursSentinels(t *testing.T) {
	cases := []struct {
		in   string
		kind search.ScheduleKind
	}{
		{"", search.ScheduleUnknown},
		{"   ", search.ScheduleUnknown},
		{"Consultar", search.ScheduleUnknown},
		{"Sob agendamento", search.ScheduleUnknown},
		{"sob consulta", search.ScheduleUnknown},
		{"Fechado para reforma", search.ScheduleUnknown},
		{"24 horas", search.ScheduleAlwaysOpen},
		{"Aberto 24h", search.ScheduleAlwaysOpen},
		{"qualquer coisa ilegível", search.ScheduleUnknown},
	}
	for _, c := range cases {
		if got := search.ParseHours(c.in).Kind; got != c.kind {
			t.Errorf("ParseHours(%q).Kind = %v, want %v", c.in, got, c.kind)
		}
	}
}

func TestIsOpenAt_BrazilianRange(t *testing.T) {
	if got := search.IsOpenAt("7h às 23h", at(12, 0)); got != search.StateOpen {
		t.Errorf("7h às 23h at 12:00 = %v, want open", got)
	}
	if got := search.IsOpenAt("07h-23h", at(6, 0)); got != search.StateClosed {
		t.Errorf("07h-23h at 06:00 = %v, want closed", got)
	}
	if got := search.IsOpenAt("Horário: 7h30 as 22h", at(7, 29)); got != search.StateClosed {
		t.Errorf("7h30 at 07:29 = %v, want closed", got)
	}
}

func TestIsOpenAt_OvernightWrap(t *testing.T) {
	if got := search.IsOpenAt("18h às 2h", at(23, 0)); got != search.StateOpen {
		t.Errorf("18h às 2h at 23:00 = %v, want open", got)
	}
	if got := search.IsOpenAt("18h às 2h", at(10, 0)); got != search.StateClosed {
		t.Errorf("18h às 2h at 10:00 = %v, want closed", got)
	}
	if got := search.IsOpenAt("18h às 2h", at(1, 30)); got != search.StateOpen {
		t.Errorf("18h às 2h at 01:30 = %v, want open", got)
	}
}

func TestIsOpenAt_AMPM(t *testing.T) {
	if got := search.IsOpenAt("9AM-6PM", at(12, 0)); got != search.StateOpen {
		t.Errorf("9AM-6PM at 12:00 = %v, want open", got)
	}
	if got := search.IsOpenAt("9AM - 6PM", at(20, 0)); got != search.StateClosed {
		t.Errorf("9AM-6PM at 20:00 = %v, want closed", got)
	}
	// partial range: opening meridiem inferred from the closing one
	if got := search.IsOpenAt("7-11PM", at(22, 0)); got != search.StateOpen {
		t.Errorf("7-11PM at 22:00 = %v, want open", got)
	}
	if got := search.IsOpenAt("7-11PM", at(12, 0)); got != search.StateClosed {
		t.Errorf("7-11PM at 12:00 = %v, want closed", got)
	}
	// larger opening numeral wraps the noon boundary
	if got := search.IsOpenAt("11-2PM", at(11, 30)); got != search.StateOpen {
		t.Errorf("11-2PM at 11:30 = %v, want open", got)
	}
}

func TestIsOpenAt_UnknownNeverExcludes(t *testing.T) {
	for _, in := range []string{"", "Consultar", "texto livre"} {
		if got := search.IsOpenAt(in, at(12, 0)); got != search.StateUnknown {
			t.Errorf("IsOpenAt(%q) = %v, want unknown", in, got)
		}
	}
}

func TestFormatHours(t *testing.T) {
	cases := []struct{ in, want string }{
		{"7h às 21h", "Horário: 7h às 21h"},
		{"horário: 07h-23h", "Horário: 7h às 23h"},
		{"9AM-6PM", "Horário: 9h às 18h"},
		{"24 horas", "Horário: 24 horas"},
		{"Consultar", "Consultar"},
		{"  texto solto  ", "texto solto"},
	}
	for _, c := range cases {
		if got := search.FormatHours(c.in); got != c.want {
			t.Errorf("FormatHours(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
