package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timegrid/internal/domain"
)

func testCategories() []domain.Category {
	return []domain.Category{
		{ID: "work", Name: "Work", Color: "#58c4ff"},
		{ID: "break", Name: "Break", Color: "#ffb86b"},
	}
}

func TestAggregateSingleDay(t *testing.T) {
	entries := []domain.Entry{
		{ID: "a", Date: "2024-01-01", Start: 540, End: 600, Category: "work"},
		{ID: "b", Date: "2024-01-01", Start: 600, End: 615, Category: "break"},
	}

	s, err := Aggregate(entries, testCategories(), "2024-01-01", "2024-01-01")
	require.NoError(t, err)

	assert.Equal(t, 75, s.TotalMinutes)
	require.Len(t, s.PerCategory, 2)
	assert.Equal(t, CategoryTotal{ID: "work", Name: "Work", Color: "#58c4ff", Minutes: 60}, s.PerCategory[0])
	assert.Equal(t, CategoryTotal{ID: "break", Name: "Break", Color: "#ffb86b", Minutes: 15}, s.PerCategory[1])
	require.Len(t, s.PerDay, 1)
	assert.Equal(t, DayTotal{Date: "2024-01-01", Minutes: 75}, s.PerDay[0])
}

func TestAggregateZeroFillsEmptyDays(t *testing.T) {
	entries := []domain.Entry{
		{ID: "a", Date: "2024-01-01", Start: 540, End: 600, Category: "work"},
		{ID: "b", Date: "2024-01-03", Start: 540, End: 570, Category: "work"},
	}

	s, err := Aggregate(entries, testCategories(), "2024-01-01", "2024-01-03")
	require.NoError(t, err)

	require.Len(t, s.PerDay, 3)
	assert.Equal(t, DayTotal{Date: "2024-01-01", Minutes: 60}, s.PerDay[0])
	assert.Equal(t, DayTotal{Date: "2024-01-02", Minutes: 0}, s.PerDay[1])
	assert.Equal(t, DayTotal{Date: "2024-01-03", Minutes: 30}, s.PerDay[2])
}

func TestAggregateIsAdditiveOverDisjointRanges(t *testing.T) {
	entries := []domain.Entry{
		{ID: "a", Date: "2024-01-01", Start: 0, End: 120, Category: "work"},
		{ID: "b", Date: "2024-01-01", Start: 300, End: 330, Category: "break"},
		{ID: "c", Date: "2024-01-02", Start: 60, End: 150, Category: "work"},
	}
	day1 := entries[:2]
	day2 := entries[2:]

	s1, err := Aggregate(day1, testCategories(), "2024-01-01", "2024-01-01")
	require.NoError(t, err)
	s2, err := Aggregate(day2, testCategories(), "2024-01-02", "2024-01-02")
	require.NoError(t, err)
	combined, err := Aggregate(entries, testCategories(), "2024-01-01", "2024-01-02")
	require.NoError(t, err)

	assert.Equal(t, s1.TotalMinutes+s2.TotalMinutes, combined.TotalMinutes)

	sum := func(s Summary) map[string]int {
		m := make(map[string]int)
		for _, ct := range s.PerCategory {
			m[ct.ID] = ct.Minutes
		}
		return m
	}
	want := sum(s1)
	for id, mins := range sum(s2) {
		want[id] += mins
	}
	assert.Equal(t, want, sum(combined))
}

func TestAggregateUnknownCategoryKept(t *testing.T) {
	entries := []domain.Entry{
		{ID: "a", Date: "2024-01-01", Start: 540, End: 600, Category: "deleted-cat"},
	}

	s, err := Aggregate(entries, testCategories(), "2024-01-01", "2024-01-01")
	require.NoError(t, err)

	require.Len(t, s.PerCategory, 1)
	assert.Equal(t, "deleted-cat", s.PerCategory[0].ID)
	assert.Equal(t, "deleted-cat", s.PerCategory[0].Name)
	assert.Equal(t, domain.FallbackCategoryColor, s.PerCategory[0].Color)
	assert.Equal(t, 60, s.TotalMinutes)
}

func TestAggregateSortsDescendingWithFirstSeenTies(t *testing.T) {
	entries := []domain.Entry{
		{ID: "a", Date: "2024-01-01", Start: 0, End: 30, Category: "break"},
		{ID: "b", Date: "2024-01-01", Start: 60, End: 90, Category: "work"},
		{ID: "c", Date: "2024-01-01", Start: 120, End: 240, Category: "sleep"},
	}

	s, err := Aggregate(entries, nil, "2024-01-01", "2024-01-01")
	require.NoError(t, err)

	require.Len(t, s.PerCategory, 3)
	assert.Equal(t, "sleep", s.PerCategory[0].ID)
	// break and work tie at 30 minutes; first-seen order is preserved
	assert.Equal(t, "break", s.PerCategory[1].ID)
	assert.Equal(t, "work", s.PerCategory[2].ID)
}

func TestAggregateOverlapDoubleCounts(t *testing.T) {
	// Overlap is permitted; totals sum the duration of every entry.
	entries := []domain.Entry{
		{ID: "a", Date: "2024-01-01", Start: 540, End: 600, Category: "work"},
		{ID: "b", Date: "2024-01-01", Start: 570, End: 630, Category: "work"},
	}
	s, err := Aggregate(entries, testCategories(), "2024-01-01", "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, 120, s.TotalMinutes)
}

func TestAggregateBadRange(t *testing.T) {
	_, err := Aggregate(nil, nil, "2024-01-02", "2024-01-01")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
