package timegrid

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ogulcan/coursepilot/internal/pkg/apperrors"
)

// Weekday identifies a teaching day. Weekend meetings are not modeled.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
)

var weekdayNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// String returns the full English day name.
func (d Weekday) String() string {
	if d < Monday || d > Friday {
		return "Unknown"
	}
	return weekdayNames[d]
}

// DaySet is a set of weekdays encoded as a bitmask.
type DaySet uint8

// NewDaySet builds a set from the given days.
func NewDaySet(days ...Weekday) DaySet {
	var s DaySet
	for _, d := range days {
		s = s.Add(d)
	}
	return s
}

// Add returns the set with d included.
func (s DaySet) Add(d Weekday) DaySet {
	return s | (1 << uint(d))
}

// Contains reports whether d is in the set.
func (s DaySet) Contains(d Weekday) bool {
	return s&(1<<uint(d)) != 0
}

// Intersects reports whether the two sets share at least one day.
func (s DaySet) Intersects(o DaySet) bool {
	return s&o != 0
}

// IsEmpty reports whether the set has no days.
func (s DaySet) IsEmpty() bool {
	return s == 0
}

// Days lists the members in Monday..Friday order.
func (s DaySet) Days() []Weekday {
	var out []Weekday
	for d := Monday; d <= Friday; d++ {
		if s.Contains(d) {
			out = append(out, d)
		}
	}
	return out
}

// Names lists the members as full day names in Monday..Friday order.
func (s DaySet) Names() []string {
	var out []string
	for _, d := range s.Days() {
		out = append(out, d.String())
	}
	return out
}

// dayTokens maps the catalog's day abbreviations to weekdays, in the order
// the fallback below probes them. Thursday is the odd one out: the
// registrar feed uses both TH and R. Short codes come before full names so
// a truncated token resolves the same way the feed's own abbreviations do.
var dayTokens = []struct {
	code string
	day  Weekday
}{
	{"M", Monday},
	{"T", Tuesday},
	{"W", Wednesday},
	{"TH", Thursday},
	{"R", Thursday},
	{"F", Friday},
	{"MONDAY", Monday},
	{"TUESDAY", Tuesday},
	{"WEDNESDAY", Wednesday},
	{"THURSDAY", Thursday},
	{"FRIDAY", Friday},
}

// ParseDay resolves a raw day token to a weekday. Exact tokens are matched
// first; unknown tokens then fall back to mutual-prefix containment against
// the known codes, probed in a fixed order so the same token always
// resolves to the same day. The fallback is lossy for unusual campus
// abbreviations and is kept only for compatibility with the registrar feed.
func ParseDay(token string) (Weekday, error) {
	t := strings.ToUpper(strings.TrimSpace(token))
	if t == "" {
		return 0, apperrors.ErrUnparseableDay
	}
	for _, e := range dayTokens {
		if t == e.code {
			return e.day, nil
		}
	}
	for _, e := range dayTokens {
		if strings.HasPrefix(t, e.code) || strings.HasPrefix(e.code, t) {
			return e.day, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", apperrors.ErrUnparseableDay, token)
}

// ParseClock converts a clock string to minutes since midnight.
// Accepted forms: 24-hour "H:MM"/"HH:MM" and 12-hour "H:MM AM"/"H:MMPM"
// (case-insensitive). A bare "H:MM" with a valid hour in [0,24) is always
// read as 24-hour time; afternoon is never guessed from a small hour.
func ParseClock(s string) (int, error) {
	t := strings.ToUpper(strings.TrimSpace(s))
	if t == "" {
		return 0, apperrors.ErrUnparseableTime
	}

	meridiem := ""
	switch {
	case strings.HasSuffix(t, "AM"):
		meridiem = "AM"
		t = strings.TrimSpace(strings.TrimSuffix(t, "AM"))
	case strings.HasSuffix(t, "PM"):
		meridiem = "PM"
		t = strings.TrimSpace(strings.TrimSuffix(t, "PM"))
	}

	hh, mm, ok := strings.Cut(t, ":")
	if !ok {
		return 0, fmt.Errorf("%w: %q", apperrors.ErrUnparseableTime, s)
	}
	// Registrar exports sometimes carry seconds; drop them.
	if rest, _, found := strings.Cut(mm, ":"); found {
		mm = rest
	}

	h, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", apperrors.ErrUnparseableTime, s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || len(mm) != 2 || m < 0 || m > 59 {
		return 0, fmt.Errorf("%w: %q", apperrors.ErrUnparseableTime, s)
	}

	switch meridiem {
	case "AM":
		if h < 1 || h > 12 {
			return 0, fmt.Errorf("%w: %q", apperrors.ErrUnparseableTime, s)
		}
		if h == 12 {
			h = 0
		}
	case "PM":
		if h < 1 || h > 12 {
			return 0, fmt.Errorf("%w: %q", apperrors.ErrUnparseableTime, s)
		}
		if h != 12 {
			h += 12
		}
	default:
		if h < 0 || h > 23 {
			return 0, fmt.Errorf("%w: %q", apperrors.ErrUnparseableTime, s)
		}
	}

	return h*60 + m, nil
}

// Format24 renders minutes since midnight as "HH:MM".
func Format24(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Format12 renders minutes since midnight as "H:MM AM|PM".
func Format12(minutes int) string {
	h, m := minutes/60, minutes%60
	period := "AM"
	if h >= 12 {
		period = "PM"
	}
	if h > 12 {
		h -= 12
	} else if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d %s", h, m, period)
}
