package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timegrid/internal/clock"
)

func TestRowAt(t *testing.T) {
	g := Day(20)

	row, ok := g.RowAt(0)
	require.True(t, ok)
	assert.Equal(t, 0, row)

	row, ok = g.RowAt(39) // just inside the second row
	require.True(t, ok)
	assert.Equal(t, 1, row)

	row, ok = g.RowAt(96*20 - 1)
	require.True(t, ok)
	assert.Equal(t, 95, row)

	_, ok = g.RowAt(-1)
	assert.False(t, ok, "press above the grid starts nothing")
	_, ok = g.RowAt(96 * 20)
	assert.False(t, ok, "press below the grid starts nothing")
}

func TestDragEmitsInclusiveEndRow(t *testing.T) {
	// Drag from row 36 (09:00) to row 39 (09:45); the row under the pointer
	// is included, so the interval runs to 10:00.
	d := NewDrag(clock.RowsPerDay)
	d.Down(36)
	d.Move(37)
	d.Move(39)
	iv, ok := d.Up()
	require.True(t, ok)
	assert.Equal(t, Interval{Start: 540, End: 600}, iv)
	assert.False(t, d.Active())
}

func TestDragSingleRowClick(t *testing.T) {
	d := NewDrag(clock.RowsPerDay)
	d.Down(4)
	iv, ok := d.Up()
	require.True(t, ok)
	assert.Equal(t, Interval{Start: 60, End: 75}, iv)
}

func TestDragUpward(t *testing.T) {
	d := NewDrag(clock.RowsPerDay)
	d.Down(40)
	d.Move(36)
	iv, ok := d.Up()
	require.True(t, ok)
	// min(a,b) .. max(a,b)+1 regardless of direction
	assert.Equal(t, Interval{Start: 540, End: 615}, iv)
}

func TestDragMoveClampsOutsideGrid(t *testing.T) {
	d := NewDrag(clock.RowsPerDay)
	d.Down(90)
	d.Move(200) // fast drag exits the bottom; pinned to the last row
	iv, ok := d.Up()
	require.True(t, ok)
	assert.Equal(t, clock.RowToMinutes(90), iv.Start)
	assert.Equal(t, clock.RowToMinutes(96), iv.End)

	d.Down(5)
	d.Move(-10)
	iv, ok = d.Up()
	require.True(t, ok)
	assert.Equal(t, 0, iv.Start)
	assert.Equal(t, clock.RowToMinutes(6), iv.End)
}

func TestDragIgnoredWhileIdle(t *testing.T) {
	d := NewDrag(clock.RowsPerDay)
	d.Move(10)
	_, ok := d.Up()
	assert.False(t, ok)
}

func TestDragCancel(t *testing.T) {
	d := NewDrag(clock.RowsPerDay)
	d.Down(10)
	d.Move(20)
	d.Cancel()
	assert.False(t, d.Active())
	_, ok := d.Up()
	assert.False(t, ok, "cancel must not emit")
}

func TestDragSpan(t *testing.T) {
	d := NewDrag(clock.RowsPerDay)
	_, _, ok := d.Span()
	assert.False(t, ok)

	d.Down(20)
	d.Move(12)
	first, last, ok := d.Span()
	require.True(t, ok)
	assert.Equal(t, 12, first)
	assert.Equal(t, 20, last)
}
