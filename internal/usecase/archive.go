package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"timegrid/internal/domain"
	"timegrid/internal/ports"
)

// ExportVersion is the current export file format version.
const ExportVersion = 1

// ExportPayload is the JSON shape written by export and accepted by import.
type ExportPayload struct {
	Version    int                       `json:"version"`
	Categories []domain.Category         `json:"categories"`
	Entries    map[string][]domain.Entry `json:"entries"`
	ExportedAt time.Time                 `json:"exportedAt"`
}

// Archive moves whole data sets in and out of the store. It is the only
// supported way to migrate between backends.
type Archive struct {
	Log   *slog.Logger
	Store ports.Store
}

// Export writes the full store contents as indented JSON.
func (a *Archive) Export(ctx context.Context, w io.Writer) error {
	categories, err := a.Store.ListCategories(ctx)
	if err != nil {
		return err
	}
	entries, err := a.Store.AllEntries(ctx)
	if err != nil {
		return err
	}
	payload := ExportPayload{
		Version:    ExportVersion,
		Categories: categories,
		Entries:    entries,
		ExportedAt: time.Now().UTC(),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

// Import applies an export payload. A present categories array
// wholesale-replaces the category list; a present entries map
// wholesale-replaces every date bucket; omitted fields leave existing data
// untouched. Any failure leaves the store unchanged.
func (a *Archive) Import(ctx context.Context, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	var payload ExportPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrImportFormat, err)
	}
	if payload.Categories == nil && payload.Entries == nil {
		return fmt.Errorf("%w: neither categories nor entries present", domain.ErrImportFormat)
	}
	// Validate everything before touching the store.
	for date, bucket := range payload.Entries {
		for _, e := range bucket {
			if e.Date != date {
				return fmt.Errorf("%w: entry %s filed under %s but dated %s", domain.ErrImportFormat, e.ID, date, e.Date)
			}
			if err := e.Validate(); err != nil {
				return fmt.Errorf("%w: entry %s: %v", domain.ErrImportFormat, e.ID, err)
			}
		}
	}

	if payload.Categories != nil {
		if err := a.Store.ReplaceCategories(ctx, payload.Categories); err != nil {
			return err
		}
	}
	if payload.Entries != nil {
		if err := a.Store.ReplaceEntries(ctx, payload.Entries); err != nil {
			return err
		}
	}
	a.Log.Info("import applied",
		slog.Int("categories", len(payload.Categories)),
		slog.Int("days", len(payload.Entries)))
	return nil
}
