package domain

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

const (
	// IncrementMinutes is the quantization unit; every entry boundary is a
	// multiple of it.
	IncrementMinutes = 15

	// MinutesPerDay bounds entry intervals: 0 <= start < end <= 1440.
	MinutesPerDay = 24 * 60

	// MaxLabelLength caps the free-text label.
	MaxLabelLength = 120
)

// Entry is a single time-tagged interval of activity on one calendar date.
// Start and End are minutes of day aligned to the 15-minute grid. Entries on
// the same date may overlap; summaries simply sum durations, so overlapping
// time is counted once per entry.
type Entry struct {
	ID       string `json:"id"`
	Date     string `json:"date"` // YYYY-MM-DD, local wall clock
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Category string `json:"category"`
	Label    string `json:"label,omitempty"`
}

// Duration returns the entry length in minutes.
func (e Entry) Duration() int { return e.End - e.Start }

// Validate checks the interval invariants. Misaligned boundaries are
// rejected, never rounded.
func (e Entry) Validate() error {
	if e.Start >= e.End {
		return fmt.Errorf("%w: start %d must be before end %d", ErrInvalidInterval, e.Start, e.End)
	}
	if e.Start < 0 || e.End > MinutesPerDay {
		return fmt.Errorf("%w: interval [%d,%d) outside day bounds", ErrInvalidInput, e.Start, e.End)
	}
	if e.Start%IncrementMinutes != 0 || e.End%IncrementMinutes != 0 {
		return fmt.Errorf("%w: interval [%d,%d) not aligned to %d minutes", ErrInvalidInput, e.Start, e.End, IncrementMinutes)
	}
	if len(e.Label) > MaxLabelLength {
		return fmt.Errorf("%w: label longer than %d characters", ErrInvalidInput, MaxLabelLength)
	}
	if _, err := time.Parse("2006-01-02", e.Date); err != nil {
		return fmt.Errorf("%w: date %q is not YYYY-MM-DD", ErrInvalidInput, e.Date)
	}
	return nil
}

// NewEntryID returns a fresh storage-key-safe entry id.
func NewEntryID() string { return uuid.NewString() }

// SortEntries orders a date bucket into canonical display order:
// start ascending, ties by end then id.
func SortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Start != entries[j].Start {
			return entries[i].Start < entries[j].Start
		}
		if entries[i].End != entries[j].End {
			return entries[i].End < entries[j].End
		}
		return entries[i].ID < entries[j].ID
	})
}
