package usecase

import (
	"context"
	"log/slog"

	"timegrid/internal/clock"
	"timegrid/internal/domain"
	"timegrid/internal/ports"
)

// Vertical layout constants for rendered day blocks.
const (
	// RowHeightPx is the pixel height of one 15-minute row.
	RowHeightPx = 20
	// BlockInsetPx leaves a visible gap between adjacent blocks.
	BlockInsetPx = 2
	// MinBlockHeightPx keeps a one-row block readable.
	MinBlockHeightPx = 18
)

// Block is one renderable entry of a day view: a vertical pixel span plus
// resolved display metadata. Overlapping entries keep their natural top and
// height and will overlap visually; there is no lane layout.
type Block struct {
	Entry  domain.Entry `json:"entry"`
	TopPx  int          `json:"topPx"`
	Height int          `json:"heightPx"`
	Label  string       `json:"label"`
	Time   string       `json:"time"`
	Color  string       `json:"color"`
}

// ComposeDay turns one date's entries (already sorted by start) into
// renderable blocks, joining category metadata with graceful fallbacks.
func ComposeDay(entries []domain.Entry, categories []domain.Category) []Block {
	meta := make(map[string]domain.Category, len(categories))
	for _, c := range categories {
		meta[c.ID] = c
	}

	blocks := make([]Block, 0, len(entries))
	for _, e := range entries {
		top := clock.MinutesToRow(e.Start) * RowHeightPx
		bottom := clock.MinutesToRow(e.End) * RowHeightPx
		height := bottom - top - BlockInsetPx
		if height < MinBlockHeightPx {
			height = MinBlockHeightPx
		}

		name, color := e.Category, domain.FallbackBlockColor
		if c, ok := meta[e.Category]; ok {
			name, color = c.Name, c.Color
		}
		label := e.Label
		if label == "" {
			label = name
		}
		if label == "" {
			label = "Entry"
		}

		blocks = append(blocks, Block{
			Entry:  e,
			TopPx:  top + BlockInsetPx,
			Height: height,
			Label:  label,
			Time:   clock.FormatRange(e.Start, e.End),
			Color:  color,
		})
	}
	return blocks
}

// DayViewUseCase fetches one date and composes its blocks.
type DayViewUseCase struct {
	Log   *slog.Logger
	Store ports.Store
}

func (uc *DayViewUseCase) Run(ctx context.Context, date string) ([]Block, error) {
	entries, err := uc.Store.EntriesForDate(ctx, date)
	if err != nil {
		return nil, err
	}
	categories, err := uc.Store.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	uc.Log.Debug("composed day", slog.String("date", date), slog.Int("entries", len(entries)))
	return ComposeDay(entries, categories), nil
}
