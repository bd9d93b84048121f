package ports

import (
	"context"

	"timegrid/internal/domain"
)

// Store is the persistence contract for categories and entries. Exactly one
// implementation is live per process, selected from configuration at startup;
// switching backends is an explicit export/import step, never automatic.
//
// Reads on missing underlying records return empty results, since an empty
// day or empty category list is a valid first-run state.
type Store interface {
	// ListCategories returns all categories ordered by name.
	ListCategories(ctx context.Context) ([]domain.Category, error)

	// AddCategory inserts a category, failing with domain.ErrDuplicateID
	// when the id is already present.
	AddCategory(ctx context.Context, c domain.Category) (domain.Category, error)

	// EntriesForDate returns the date's bucket sorted by start.
	EntriesForDate(ctx context.Context, date string) ([]domain.Entry, error)

	// EntriesInRange returns entries whose date falls in the closed range
	// [from, to]; cross-day order is unspecified.
	EntriesInRange(ctx context.Context, from, to string) ([]domain.Entry, error)

	// UpsertEntry validates the entry, then replaces by id or inserts,
	// keeping the date bucket in start-ascending order.
	UpsertEntry(ctx context.Context, e domain.Entry) (domain.Entry, error)

	// DeleteEntry removes the entry by id from its date bucket; a missing
	// entry is a no-op, not an error.
	DeleteEntry(ctx context.Context, e domain.Entry) error

	// AllEntries returns every date bucket, keyed by date. Used by export.
	AllEntries(ctx context.Context) (map[string][]domain.Entry, error)

	// ReplaceCategories wholesale-replaces the category list. Used by import.
	ReplaceCategories(ctx context.Context, categories []domain.Category) error

	// ReplaceEntries wholesale-replaces every date bucket. Used by import.
	ReplaceEntries(ctx context.Context, entries map[string][]domain.Entry) error
}
