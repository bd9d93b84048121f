package usecase

import (
	"context"
	"log/slog"
	"sort"

	"timegrid/internal/clock"
	"timegrid/internal/domain"
	"timegrid/internal/ports"
)

// CategoryTotal is one slice of the category breakdown.
type CategoryTotal struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Color   string `json:"color"`
	Minutes int    `json:"minutes"`
}

// DayTotal is one point of the per-day series.
type DayTotal struct {
	Date    string `json:"date"`
	Minutes int    `json:"minutes"`
}

// Summary aggregates a closed date range. PerCategory is sorted by descending
// minutes (ties keep first-seen order); PerDay covers every day of the
// requested span in chronological order, zero for empty days so chart axes
// stay contiguous. Overlapping entries each contribute their full duration.
type Summary struct {
	From         string          `json:"from"`
	To           string          `json:"to"`
	PerCategory  []CategoryTotal `json:"perCategory"`
	PerDay       []DayTotal      `json:"perDay"`
	TotalMinutes int             `json:"totalMinutes"`
}

// Aggregate computes the summary in a single pass over the entries. Unknown
// category ids are kept under their raw id with fallback metadata so the
// totals always account for every entry.
func Aggregate(entries []domain.Entry, categories []domain.Category, from, to string) (Summary, error) {
	days, err := clock.DatesBetween(from, to)
	if err != nil {
		return Summary{}, err
	}

	byCat := make(map[string]int)
	var catOrder []string
	byDay := make(map[string]int)
	total := 0
	for _, e := range entries {
		dur := e.Duration()
		if _, seen := byCat[e.Category]; !seen {
			catOrder = append(catOrder, e.Category)
		}
		byCat[e.Category] += dur
		byDay[e.Date] += dur
		total += dur
	}

	meta := make(map[string]domain.Category, len(categories))
	for _, c := range categories {
		meta[c.ID] = c
	}

	perCategory := make([]CategoryTotal, 0, len(catOrder))
	for _, id := range catOrder {
		c, ok := meta[id]
		if !ok {
			c = domain.Category{ID: id, Name: id, Color: domain.FallbackCategoryColor}
		}
		perCategory = append(perCategory, CategoryTotal{ID: id, Name: c.Name, Color: c.Color, Minutes: byCat[id]})
	}
	sort.SliceStable(perCategory, func(i, j int) bool {
		return perCategory[i].Minutes > perCategory[j].Minutes
	})

	perDay := make([]DayTotal, 0, len(days))
	for _, d := range days {
		perDay = append(perDay, DayTotal{Date: d, Minutes: byDay[d]})
	}

	return Summary{From: from, To: to, PerCategory: perCategory, PerDay: perDay, TotalMinutes: total}, nil
}

// SummaryUseCase fetches a range from the store and aggregates it.
type SummaryUseCase struct {
	Log   *slog.Logger
	Store ports.Store
}

func (uc *SummaryUseCase) Run(ctx context.Context, from, to string) (Summary, error) {
	entries, err := uc.Store.EntriesInRange(ctx, from, to)
	if err != nil {
		return Summary{}, err
	}
	categories, err := uc.Store.ListCategories(ctx)
	if err != nil {
		return Summary{}, err
	}
	summary, err := Aggregate(entries, categories, from, to)
	if err != nil {
		return Summary{}, err
	}
	uc.Log.Debug("aggregated range",
		slog.String("from", from),
		slog.String("to", to),
		slog.Int("entries", len(entries)),
		slog.Int("totalMinutes", summary.TotalMinutes))
	return summary, nil
}
