// Package clock holds the quantized time math shared by the grid, the
// composer, and the CLI. Everything works in integer minutes of day; display
// strings are produced and parsed only here.
package clock

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"timegrid/internal/domain"
)

const (
	// IncrementMinutes is one grid row worth of time.
	IncrementMinutes = domain.IncrementMinutes

	// RowsPerDay partitions the day into 96 rows.
	RowsPerDay = domain.MinutesPerDay / IncrementMinutes

	dateLayout = "2006-01-02"
)

// MinutesToRow maps a minute of day to its grid row, rounding to the nearest
// row so near-boundary values land predictably.
func MinutesToRow(minutes int) int {
	return (minutes + IncrementMinutes/2) / IncrementMinutes
}

// RowToMinutes is the exact inverse of MinutesToRow for integer rows.
func RowToMinutes(row int) int { return row * IncrementMinutes }

// MinutesToClock formats a minute of day as zero-padded "HH:MM".
func MinutesToClock(minutes int) (string, error) {
	if minutes < 0 || minutes >= domain.MinutesPerDay {
		return "", fmt.Errorf("%w: %d minutes outside [0,%d)", domain.ErrInvalidInput, minutes, domain.MinutesPerDay)
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60), nil
}

// ClockToMinutes parses "HH:MM" into minutes of day. "24:00" is accepted as
// end-of-day (1440) so intervals can close at midnight.
func ClockToMinutes(text string) (int, error) {
	h, m, ok := splitClock(text)
	if !ok {
		return 0, fmt.Errorf("%w: %q is not HH:MM", domain.ErrInvalidInput, text)
	}
	if h == 24 && m == 0 {
		return domain.MinutesPerDay, nil
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("%w: %q has out-of-range hour or minute", domain.ErrInvalidInput, text)
	}
	return h*60 + m, nil
}

func splitClock(text string) (h, m int, ok bool) {
	hh, mm, found := strings.Cut(text, ":")
	if !found || hh == "" || mm == "" {
		return 0, 0, false
	}
	h, err := strconv.Atoi(hh)
	if err != nil {
		return 0, 0, false
	}
	m, err = strconv.Atoi(mm)
	if err != nil {
		return 0, 0, false
	}
	return h, m, true
}

// FormatRange renders "HH:MM–HH:MM" for display. End-of-day shows as 24:00.
func FormatRange(start, end int) string {
	s, _ := MinutesToClock(start)
	e := "24:00"
	if end < domain.MinutesPerDay {
		e, _ = MinutesToClock(end)
	}
	return s + "–" + e
}

// FormatDate renders a time as the YYYY-MM-DD date key.
func FormatDate(t time.Time) string { return t.Format(dateLayout) }

// ParseDate parses a YYYY-MM-DD date key.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q is not YYYY-MM-DD", domain.ErrInvalidInput, s)
	}
	return t, nil
}

// DatesBetween lists every date key in the closed range [from, to], in
// chronological order.
func DatesBetween(from, to string) ([]string, error) {
	start, err := ParseDate(from)
	if err != nil {
		return nil, err
	}
	end, err := ParseDate(to)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: range %s..%s is reversed", domain.ErrInvalidInput, from, to)
	}
	var out []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		out = append(out, FormatDate(d))
	}
	return out, nil
}
