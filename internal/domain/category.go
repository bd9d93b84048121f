package domain

import (
	"fmt"
	"strings"
)

// Category is a named, colored tag applied to entries. Entries reference
// categories by id only; a dangling id degrades to a fallback name and color
// at display time.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Fallback display metadata for entries whose category id is unknown.
const (
	FallbackCategoryColor = "#666"
	FallbackBlockColor    = "#888"
)

// DefaultCategories returns the seed set used on first run of the local
// backend.
func DefaultCategories() []Category {
	return []Category{
		{ID: "work", Name: "Work", Color: "#58c4ff"},
		{ID: "exercise", Name: "Exercise", Color: "#60db95"},
		{ID: "break", Name: "Break", Color: "#ffb86b"},
		{ID: "personal", Name: "Personal", Color: "#d7a6ff"},
		{ID: "sleep", Name: "Sleep", Color: "#8892ff"},
		{ID: "other", Name: "Other", Color: "#ffd166"},
	}
}

// CategoryID derives a stable id from a display name: lowercase slug,
// suffixed with a counter until taken reports it free.
func CategoryID(name string, taken func(string) bool) string {
	var b strings.Builder
	lastDash := true // suppress leading dashes
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}
	base := strings.Trim(b.String(), "-")
	if base == "" {
		base = "cat"
	}
	id := base
	for n := 1; taken(id); n++ {
		id = fmt.Sprintf("%s-%d", base, n)
	}
	return id
}
