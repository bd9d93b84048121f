package clock

import (
	"fmt"
	"time"

	"timegrid/internal/domain"
)

// Range presets accepted by the summary command, relative to a reference
// date (normally today).
const (
	RangeToday = "today"
	RangeWeek  = "week"
	RangeLast7 = "last7"
	RangeMonth = "month"
	RangeYear  = "year"
)

// PresetRange resolves a named preset to a closed [from, to] date range.
// Weeks start on Monday.
func PresetRange(preset string, ref time.Time) (from, to string, err error) {
	day := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	switch preset {
	case RangeToday:
		return FormatDate(day), FormatDate(day), nil
	case RangeWeek:
		offset := (int(day.Weekday()) + 6) % 7
		start := day.AddDate(0, 0, -offset)
		return FormatDate(start), FormatDate(start.AddDate(0, 0, 6)), nil
	case RangeLast7:
		return FormatDate(day.AddDate(0, 0, -6)), FormatDate(day), nil
	case RangeMonth:
		start := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
		return FormatDate(start), FormatDate(start.AddDate(0, 1, -1)), nil
	case RangeYear:
		start := time.Date(day.Year(), 1, 1, 0, 0, 0, 0, day.Location())
		return FormatDate(start), FormatDate(time.Date(day.Year(), 12, 31, 0, 0, 0, 0, day.Location())), nil
	}
	return "", "", fmt.Errorf("%w: unknown range %q", domain.ErrInvalidInput, preset)
}
