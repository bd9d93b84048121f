// Package grid turns raw pointer coordinates over the 96-row day grid into
// quantized minute intervals. It is pure state: the host feeds it pointer
// events and converts the emitted interval into an entry draft.
package grid

import (
	"timegrid/internal/clock"
)

// DefaultRowHeightPx matches the composer's row height for pixel hosts;
// terminal hosts use a row height of one cell.
const DefaultRowHeightPx = 20

// Grid describes the selectable area: Rows rows of RowHeight units each.
type Grid struct {
	Rows      int
	RowHeight int
}

// Day returns the standard 96-row day grid at the given row height.
func Day(rowHeight int) Grid {
	return Grid{Rows: clock.RowsPerDay, RowHeight: rowHeight}
}

// RowAt maps a vertical offset from the grid's origin (scroll already folded
// in) to a row index. Offsets outside the grid report ok=false; the machine
// ignores pointer-down events there.
func (g Grid) RowAt(y int) (row int, ok bool) {
	if y < 0 || y >= g.Rows*g.RowHeight {
		return 0, false
	}
	row = y / g.RowHeight
	if row > g.Rows-1 {
		row = g.Rows - 1
	}
	return row, true
}

// Interval is a half-open minute interval emitted by a completed drag.
type Interval struct {
	Start int // minutes of day, inclusive
	End   int // minutes of day, exclusive
}

// Drag is the pointer-drag state machine: Idle until a pointer-down on a
// valid row, then Dragging until the pointer is released. Moves are clamped
// to the grid so a drag that exits the bounds is pinned, not lost.
type Drag struct {
	rows     int
	dragging bool
	start    int
	current  int
}

// NewDrag returns an Idle machine over a grid with the given row count.
func NewDrag(rows int) *Drag {
	return &Drag{rows: rows}
}

// Active reports whether a drag is in progress.
func (d *Drag) Active() bool { return d.dragging }

// Down starts a drag anchored at row. Callers must already have resolved the
// pointer position to a valid row (see Grid.RowAt); an out-of-bounds press
// never reaches the machine.
func (d *Drag) Down(row int) {
	d.dragging = true
	d.start = row
	d.current = row
}

// Move updates the tracked row, clamping to [0, rows-1]. Moves arriving
// while Idle are ignored; moves from outside the grid are accepted so a fast
// drag that momentarily leaves the grid is not dropped.
func (d *Drag) Move(row int) {
	if !d.dragging {
		return
	}
	if row < 0 {
		row = 0
	}
	if row > d.rows-1 {
		row = d.rows - 1
	}
	d.current = row
}

// Up completes the drag. The row under the final pointer position is part of
// the selection, so the emitted interval is [min(a,b), max(a,b)+1) rows,
// converted to minutes. Releasing always returns to Idle; an empty span
// (defensively checked) emits nothing.
func (d *Drag) Up() (Interval, bool) {
	if !d.dragging {
		return Interval{}, false
	}
	a, b := d.start, d.current
	if b < a {
		a, b = b, a
	}
	b++ // include the row under the pointer
	d.dragging = false
	if b-a < 1 {
		return Interval{}, false
	}
	return Interval{Start: clock.RowToMinutes(a), End: clock.RowToMinutes(b)}, true
}

// Cancel abandons the drag without emitting, for hosts that bind an escape
// gesture.
func (d *Drag) Cancel() { d.dragging = false }

// Span returns the currently selected inclusive row range for rendering
// feedback while dragging.
func (d *Drag) Span() (first, last int, ok bool) {
	if !d.dragging {
		return 0, 0, false
	}
	first, last = d.start, d.current
	if last < first {
		first, last = last, first
	}
	return first, last, true
}
