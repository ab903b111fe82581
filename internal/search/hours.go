package search

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// OpenState is the three-state result of evaluating opening hours. Callers
// must treat StateUnknown as "do not exclude", never as closed.
type OpenState int

const (
	StateUnknown OpenState = iota
	StateOpen
	StateClosed
)

func (s OpenState) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// ScheduleKind discriminates the parsed schedule union.
type ScheduleKind int

const (
	ScheduleUnknown ScheduleKind = iota
	ScheduleAlwaysOpen
	ScheduleWindow
)

// Schedule is the structured form of a free-form hours string, parsed once
// at ingestion or first evaluation. A Window with Close < Open crosses
// midnight.
type Schedule struct {
	Kind        ScheduleKind
	Open, Close int // minutes since midnight, Window only
}

var (
	reLabel = regexp.MustCompile(`^(?:horario|abre|funciona)\s*:?\s*`)

	// "9am-6pm", "9:30am - 6pm"
	reFullAMPM = regexp.MustCompile(`(\d{1,2})(?::(\d{2}))?\s*(am|pm)\s*[-–]\s*(\d{1,2})(?::(\d{2}))?\s*(am|pm)`)
	// "7-11pm": only the closing time carries a meridiem
	rePartAMPM = regexp.MustCompile(`(\d{1,2})(?::(\d{2}))?\s*[-–]\s*(\d{1,2})(?::(\d{2}))?\s*(am|pm)`)
	// "7h às 23h", "07h-23h", "7h30 as 22h"
	reBR = regexp.MustCompile(`(\d{1,2})h(\d{2})?\s*(?:as|a|[-–])\s*(\d{1,2})h(\d{2})?`)
)

// markers that make the whole string uninterpretable
var unknownMarkers = []string{"consultar", "fechado", "sob agendamento", "sob consulta"}

// ParseHours turns a human-written hours string into a Schedule. Best
// effort and total: anything it cannot read becomes ScheduleUnknown.
func ParseHours(text string) Schedule {
	s := strings.TrimSpace(text)
	if s == "" {
		return Schedule{Kind: ScheduleUnknown}
	}
	// fold case and accents, keep digits and separators intact
	s = stripDiacritics(strings.ToLower(s))

	if strings.Contains(s, "24 horas") || strings.Contains(s, "24h") {
		return Schedule{Kind: ScheduleAlwaysOpen}
	}
	for _, m := range unknownMarkers {
		if strings.Contains(s, m) {
			return Schedule{Kind: ScheduleUnknown}
		}
	}
	s = reLabel.ReplaceAllString(s, "")

	if m := reFullAMPM.FindStringSubmatch(s); m != nil {
		open := clockMinute(m[1], m[2], m[3])
		close := clockMinute(m[4], m[5], m[6])
		return Schedule{Kind: ScheduleWindow, Open: open, Close: close}
	}
	if m := rePartAMPM.FindStringSubmatch(s); m != nil {
		openH, _ := strconv.Atoi(m[1])
		closeH, _ := strconv.Atoi(m[3])
		closeMer := m[5]
		// Meridiem of the opening time is inferred: a larger opening numeral
		// means the range wraps a noon boundary ("11-2pm" -> 11am), else both
		// sides share the closing meridiem ("7-11pm" -> 7pm).
		openMer := closeMer
		if openH > closeH {
			openMer = oppositeMeridiem(closeMer)
		}
		return Schedule{
			Kind:  ScheduleWindow,
			Open:  clockMinute(m[1], m[2], openMer),
			Close: clockMinute(m[3], m[4], closeMer),
		}
	}
	if m := reBR.FindStringSubmatch(s); m != nil {
		return Schedule{
			Kind:  ScheduleWindow,
			Open:  clockMinute24(m[1], m[2]),
			Close: clockMinute24(m[3], m[4]),
		}
	}
	return Schedule{Kind: ScheduleUnknown}
}

// StateAt evaluates the schedule against wall-clock time t.
func (s Schedule) StateAt(t time.Time) OpenState {
	switch s.Kind {
	case ScheduleAlwaysOpen:
		return StateOpen
	case ScheduleWindow:
		now := t.Hour()*60 + t.Minute()
		if s.Close >= s.Open {
			if now >= s.Open && now < s.Close {
				return StateOpen
			}
			return StateClosed
		}
		// window crosses midnight
		if now >= s.Open || now < s.Close {
			return StateOpen
		}
		return StateClosed
	default:
		return StateUnknown
	}
}

// IsOpenAt parses and evaluates in one shot.
func IsOpenAt(hoursText string, t time.Time) OpenState {
	return ParseHours(hoursText).StateAt(t)
}

// FormatHours renders a normalized display string ("Horário: 7h às 21h").
// Unparsable input is echoed back unchanged.
func FormatHours(text string) string {
	sched := ParseHours(text)
	switch sched.Kind {
	case ScheduleAlwaysOpen:
		return "Horário: 24 horas"
	case ScheduleWindow:
		return fmt.Sprintf("Horário: %s às %s", minuteLabel(sched.Open), minuteLabel(sched.Close))
	default:
		return strings.TrimSpace(text)
	}
}

func minuteLabel(m int) string {
	h, mm := m/60, m%60
	if mm == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh%02d", h, mm)
}

// clockMinute converts a 12h clock reading to minutes since midnight.
func clockMinute(hs, ms, meridiem string) int {
	h, _ := strconv.Atoi(hs)
	m := 0
	if ms != "" {
		m, _ = strconv.Atoi(ms)
	}
	h = h % 12
	if meridiem == "pm" {
		h += 12
	}
	return h*60 + m
}

func clockMinute24(hs, ms string) int {
	h, _ := strconv.Atoi(hs)
	m := 0
	if ms != "" {
		m, _ = strconv.Atoi(ms)
	}
	return (h%24)*60 + m
}

func oppositeMeridiem(m string) string {
	if m == "pm" {
		return "am"
	}
	return "pm"
}
