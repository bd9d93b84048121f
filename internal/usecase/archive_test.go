package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	localstore "timegrid/internal/adapter/local"
	"timegrid/internal/domain"
)

func newArchive(t *testing.T) (*Archive, *localstore.Store) {
	t.Helper()
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	store, err := localstore.New(t.TempDir(), log)
	require.NoError(t, err)
	return &Archive{Log: log, Store: store}, store
}

func TestExportImportRoundTrip(t *testing.T) {
	a, store := newArchive(t)
	ctx := context.Background()

	_, err := store.UpsertEntry(ctx, domain.Entry{ID: "e1", Date: "2024-01-01", Start: 540, End: 600, Category: "work", Label: "standup"})
	require.NoError(t, err)
	_, err = store.UpsertEntry(ctx, domain.Entry{ID: "e2", Date: "2024-01-02", Start: 600, End: 660, Category: "break"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, a.Export(ctx, &buf))

	var payload ExportPayload
	require.NoError(t, json.Unmarshal(buf.Bytes(), &payload))
	assert.Equal(t, ExportVersion, payload.Version)
	assert.False(t, payload.ExportedAt.IsZero())
	assert.Len(t, payload.Entries, 2)

	// Import into a fresh store reproduces the data.
	b, fresh := newArchive(t)
	require.NoError(t, b.Import(ctx, bytes.NewReader(buf.Bytes())))

	entries, err := fresh.EntriesForDate(ctx, "2024-01-01")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "e1", entries[0].ID)
	assert.Equal(t, "standup", entries[0].Label)
}

func TestImportMalformedLeavesDataUntouched(t *testing.T) {
	a, store := newArchive(t)
	ctx := context.Background()

	_, err := store.UpsertEntry(ctx, domain.Entry{ID: "keep", Date: "2024-01-01", Start: 540, End: 600, Category: "work"})
	require.NoError(t, err)

	tests := []struct {
		name    string
		payload string
	}{
		{"not json", "{nope"},
		{"wrong shape", `{"entries": ["a", "b"]}`},
		{"empty object", `{"version": 1}`},
		{"invalid entry", `{"entries": {"2024-01-01": [{"id":"x","date":"2024-01-01","start":600,"end":540,"category":"work"}]}}`},
		{"entry filed under wrong date", `{"entries": {"2024-01-02": [{"id":"x","date":"2024-01-01","start":540,"end":600,"category":"work"}]}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := a.Import(ctx, strings.NewReader(tt.payload))
			assert.ErrorIs(t, err, domain.ErrImportFormat)

			entries, err := store.EntriesForDate(ctx, "2024-01-01")
			require.NoError(t, err)
			require.Len(t, entries, 1)
			assert.Equal(t, "keep", entries[0].ID)
		})
	}
}

func TestImportEmptyEntriesClearsButKeepsCategories(t *testing.T) {
	a, store := newArchive(t)
	ctx := context.Background()

	_, err := store.UpsertEntry(ctx, domain.Entry{ID: "gone", Date: "2024-01-01", Start: 540, End: 600, Category: "work"})
	require.NoError(t, err)
	before, err := store.ListCategories(ctx)
	require.NoError(t, err)

	// entries present but empty, categories omitted
	require.NoError(t, a.Import(ctx, strings.NewReader(`{"version":1,"entries":{}}`)))

	entries, err := store.EntriesForDate(ctx, "2024-01-01")
	require.NoError(t, err)
	assert.Empty(t, entries)

	after, err := store.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after, "omitted categories stay untouched")
}

func TestImportCategoriesOnlyReplacesList(t *testing.T) {
	a, store := newArchive(t)
	ctx := context.Background()

	_, err := store.UpsertEntry(ctx, domain.Entry{ID: "keep", Date: "2024-01-01", Start: 540, End: 600, Category: "work"})
	require.NoError(t, err)

	require.NoError(t, a.Import(ctx, strings.NewReader(`{"version":1,"categories":[{"id":"deep","name":"Deep Work","color":"#123456"}]}`)))

	cats, err := store.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, "deep", cats[0].ID)

	entries, err := store.EntriesForDate(ctx, "2024-01-01")
	require.NoError(t, err)
	assert.Len(t, entries, 1, "omitted entries stay untouched")
}
