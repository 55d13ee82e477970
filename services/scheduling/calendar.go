package scheduling

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Weekday numbering used across the whole module: 1=Monday .. 7=Sunday.
// Every conversion from a calendar primitive goes through WeekdayOf; no
// call site derives a weekday on its own.
const (
	Monday    = 1
	Tuesday   = 2
	Wednesday = 3
	Thursday  = 4
	Friday    = 5
	Saturday  = 6
	Sunday    = 7
)

const dateLayout = "2006-01-02"

// ParseCalendarDate parses a strict "yyyy-mm-dd" calendar date. Inputs that
// time.Parse would silently accept in a looser form (e.g. "2025-1-2") are
// rejected.
func ParseCalendarDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid calendar date %q: %w", s, err)
	}
	if t.Format(dateLayout) != s {
		return time.Time{}, fmt.Errorf("invalid calendar date %q: not in yyyy-mm-dd form", s)
	}
	return t, nil
}

// ParseClockTime parses a 24-hour "HH:mm" clock time into minutes from
// midnight. A single-digit hour is accepted ("8:30"); the minute part must
// be exactly two digits.
func ParseClockTime(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock time %q: want HH:mm", s)
	}
	if len(parts[0]) < 1 || len(parts[0]) > 2 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("invalid clock time %q: want HH:mm", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid clock time %q: out of range", s)
	}
	return hour*60 + minute, nil
}

// FormatClockTime renders minutes from midnight as "HH:mm".
func FormatClockTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// WeekdayOf returns the weekday (1=Monday .. 7=Sunday) of a "yyyy-mm-dd"
// date string.
func WeekdayOf(date string) (int, error) {
	t, err := ParseCalendarDate(date)
	if err != nil {
		return 0, err
	}
	// time.Weekday is 0=Sunday .. 6=Saturday.
	return (int(t.Weekday())+6)%7 + 1, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsPast reports whether date falls strictly before referenceNow at day
// granularity. The time of day of referenceNow never leaks into the
// comparison.
func IsPast(date time.Time, referenceNow time.Time) bool {
	return startOfDay(date).Before(startOfDay(referenceNow))
}

// IsWithinHorizon reports whether date is no later than referenceNow plus
// maxMonthsAhead months, at day granularity.
func IsWithinHorizon(date time.Time, referenceNow time.Time, maxMonthsAhead int) bool {
	limit := startOfDay(referenceNow).AddDate(0, maxMonthsAhead, 0)
	return !startOfDay(date).After(limit)
}

// IsTimeWithinWindow reports whether a clock time (minutes from midnight)
// falls within the half-open window [start, end). The end of the window is
// the close of the consultation, not a bookable instant.
func IsTimeWithinWindow(t, start, end int) bool {
	return t >= start && t < end
}

// CombineDateTime anchors a clock time (minutes from midnight) onto a
// calendar date in the date's location.
func CombineDateTime(date time.Time, minutes int) time.Time {
	return startOfDay(date).Add(time.Duration(minutes) * time.Minute)
}
