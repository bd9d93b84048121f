package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryValidate(t *testing.T) {
	valid := Entry{ID: "e1", Date: "2024-01-01", Start: 540, End: 600, Category: "work"}

	tests := []struct {
		name    string
		mutate  func(e Entry) Entry
		wantErr error
	}{
		{"valid", func(e Entry) Entry { return e }, nil},
		{"start equals end", func(e Entry) Entry { e.End = e.Start; return e }, ErrInvalidInterval},
		{"start after end", func(e Entry) Entry { e.Start, e.End = 600, 540; return e }, ErrInvalidInterval},
		{"negative start", func(e Entry) Entry { e.Start = -15; return e }, ErrInvalidInput},
		{"end past midnight", func(e Entry) Entry { e.End = 1455; return e }, ErrInvalidInput},
		{"end at midnight ok", func(e Entry) Entry { e.Start, e.End = 1380, 1440; return e }, nil},
		{"misaligned start rejected not rounded", func(e Entry) Entry { e.Start = 541; return e }, ErrInvalidInput},
		{"misaligned end rejected not rounded", func(e Entry) Entry { e.End = 599; return e }, ErrInvalidInput},
		{"label too long", func(e Entry) Entry { e.Label = string(make([]byte, 121)); return e }, ErrInvalidInput},
		{"bad date", func(e Entry) Entry { e.Date = "01/01/2024"; return e }, ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.mutate(valid).Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestSortEntries(t *testing.T) {
	entries := []Entry{
		{ID: "c", Start: 600, End: 660},
		{ID: "a", Start: 540, End: 600},
		{ID: "b", Start: 540, End: 555},
	}
	SortEntries(entries)
	assert.Equal(t, []string{"b", "a", "c"}, []string{entries[0].ID, entries[1].ID, entries[2].ID})
}

func TestNewEntryID(t *testing.T) {
	a, b := NewEntryID(), NewEntryID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}

func TestCategoryID(t *testing.T) {
	none := func(string) bool { return false }

	assert.Equal(t, "deep-work", CategoryID("Deep Work", none))
	assert.Equal(t, "side-project", CategoryID("  Side/Project!  ", none))
	assert.Equal(t, "cat", CategoryID("???", none))

	taken := map[string]bool{"work": true, "work-1": true}
	id := CategoryID("Work", func(id string) bool { return taken[id] })
	assert.Equal(t, "work-2", id)
}

func TestDefaultCategoriesStable(t *testing.T) {
	cats := DefaultCategories()
	require.Len(t, cats, 6)
	assert.Equal(t, "work", cats[0].ID)
	for _, c := range cats {
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.Color)
	}
}
