// Package local implements ports.Store on durable on-disk storage. The whole
// data set lives in two keyed JSON records, one for the category list and one
// for the per-date entry buckets, so the layout stays trivially exportable.
package local

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/peterbourgon/diskv/v3"

	"timegrid/internal/domain"
)

const (
	entriesKey    = "entries"
	categoriesKey = "categories"
)

// Store keeps the canonical copy of categories and entries in a diskv base
// directory. Mutations are read-modify-write under a mutex so a concurrent
// read never observes a half-updated bucket.
type Store struct {
	mu  sync.Mutex
	d   *diskv.Diskv
	log *slog.Logger
}

// New opens (or creates) the data directory.
func New(basePath string, log *slog.Logger) (*Store, error) {
	if basePath == "" {
		return nil, errors.New("local: data directory is required")
	}
	d := diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    func(string) []string { return []string{} },
		CacheSizeMax: 1024 * 1024, // 1MB
	})
	return &Store{d: d, log: log}, nil
}

// loadEntries reads the entries record. Absent or corrupt records degrade to
// an empty state; first run is not an error.
func (s *Store) loadEntries() map[string][]domain.Entry {
	val, err := s.d.Read(entriesKey)
	if err != nil {
		return map[string][]domain.Entry{}
	}
	var all map[string][]domain.Entry
	if err := json.Unmarshal(val, &all); err != nil {
		s.log.Warn("entries record unreadable, treating as empty", slog.String("error", err.Error()))
		return map[string][]domain.Entry{}
	}
	if all == nil {
		all = map[string][]domain.Entry{}
	}
	return all
}

func (s *Store) saveEntries(all map[string][]domain.Entry) error {
	data, err := json.Marshal(all)
	if err != nil {
		return err
	}
	return s.d.Write(entriesKey, data)
}

// loadCategories reads the category record, falling back to the default seed
// set when the record is absent or corrupt.
func (s *Store) loadCategories() []domain.Category {
	val, err := s.d.Read(categoriesKey)
	if err != nil {
		return domain.DefaultCategories()
	}
	var cats []domain.Category
	if err := json.Unmarshal(val, &cats); err != nil {
		s.log.Warn("categories record unreadable, using defaults", slog.String("error", err.Error()))
		return domain.DefaultCategories()
	}
	return cats
}

func (s *Store) saveCategories(cats []domain.Category) error {
	data, err := json.Marshal(cats)
	if err != nil {
		return err
	}
	return s.d.Write(categoriesKey, data)
}

func (s *Store) ListCategories(ctx context.Context) ([]domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cats := s.loadCategories()
	sort.Slice(cats, func(i, j int) bool { return cats[i].Name < cats[j].Name })
	return cats, nil
}

func (s *Store) AddCategory(ctx context.Context, c domain.Category) (domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cats := s.loadCategories()
	for _, existing := range cats {
		if existing.ID == c.ID {
			return domain.Category{}, fmt.Errorf("%w: category %q", domain.ErrDuplicateID, c.ID)
		}
	}
	cats = append(cats, c)
	if err := s.saveCategories(cats); err != nil {
		return domain.Category{}, err
	}
	return c, nil
}

func (s *Store) EntriesForDate(ctx context.Context, date string) ([]domain.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	bucket := s.loadEntries()[date]
	out := make([]domain.Entry, len(bucket))
	copy(out, bucket)
	domain.SortEntries(out)
	return out, nil
}

func (s *Store) EntriesInRange(ctx context.Context, from, to string) ([]domain.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Entry
	// Date keys are YYYY-MM-DD, so lexicographic compare is chronological.
	for date, bucket := range s.loadEntries() {
		if date >= from && date <= to {
			out = append(out, bucket...)
		}
	}
	return out, nil
}

func (s *Store) UpsertEntry(ctx context.Context, e domain.Entry) (domain.Entry, error) {
	if err := e.Validate(); err != nil {
		return domain.Entry{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	all := s.loadEntries()
	bucket := all[e.Date]
	replaced := false
	for i := range bucket {
		if bucket[i].ID == e.ID {
			bucket[i] = e
			replaced = true
			break
		}
	}
	if !replaced {
		bucket = append(bucket, e)
	}
	domain.SortEntries(bucket)
	all[e.Date] = bucket
	if err := s.saveEntries(all); err != nil {
		return domain.Entry{}, err
	}
	return e, nil
}

func (s *Store) DeleteEntry(ctx context.Context, e domain.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	all := s.loadEntries()
	bucket := all[e.Date]
	kept := bucket[:0]
	for _, existing := range bucket {
		if existing.ID != e.ID {
			kept = append(kept, existing)
		}
	}
	if len(kept) == len(bucket) {
		return nil // already absent
	}
	all[e.Date] = kept
	return s.saveEntries(all)
}

func (s *Store) AllEntries(ctx context.Context) (map[string][]domain.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all := s.loadEntries()
	out := make(map[string][]domain.Entry, len(all))
	for date, bucket := range all {
		cp := make([]domain.Entry, len(bucket))
		copy(cp, bucket)
		out[date] = cp
	}
	return out, nil
}

func (s *Store) ReplaceCategories(ctx context.Context, categories []domain.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveCategories(categories)
}

func (s *Store) ReplaceEntries(ctx context.Context, entries map[string][]domain.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	normalized := make(map[string][]domain.Entry, len(entries))
	for date, bucket := range entries {
		cp := make([]domain.Entry, len(bucket))
		copy(cp, bucket)
		domain.SortEntries(cp)
		normalized[date] = cp
	}
	return s.saveEntries(normalized)
}
