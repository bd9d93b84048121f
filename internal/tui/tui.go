// Package tui renders the interactive day grid: 96 quarter-hour rows, one
// terminal row each, with mouse drag selecting a new entry interval.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"timegrid/internal/app"
	"timegrid/internal/clock"
	"timegrid/internal/domain"
	"timegrid/internal/grid"
)

const (
	gridTop    = 1 // header line above the grid
	timeColumn = 6 // "HH:MM "
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6b7089"))

	hourRuleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#2a2f45"))

	selectionStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#3a4163"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9aa0b8"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	promptStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#874BFD")).
			Padding(0, 2)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F7DC6F")).
			Bold(true)
)

type mode int

const (
	modeGrid mode = iota
	modePrompt
)

// Model is the bubbletea model for the day grid.
type Model struct {
	app *app.App

	date       string
	entries    []domain.Entry
	categories []domain.Category

	g      grid.Grid
	drag   *grid.Drag
	scroll int

	width  int
	height int

	mode    mode
	pending grid.Interval
	catIdx  int
	label   string

	status string
	err    string
}

// New builds the model showing today.
func New(a *app.App) Model {
	g := grid.Day(1) // one terminal row per grid row
	return Model{
		app:    a,
		date:   clock.FormatDate(time.Now()),
		g:      g,
		drag:   grid.NewDrag(g.Rows),
		scroll: clock.MinutesToRow(8 * 60), // open on the working morning
	}
}

// Run starts the program with mouse tracking enabled.
func Run(ctx context.Context, a *app.App) error {
	p := tea.NewProgram(New(a),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	return err
}

type loadedMsg struct {
	entries    []domain.Entry
	categories []domain.Category
}

type savedMsg struct{}

type errMsg struct{ err error }

func (m Model) loadCmd() tea.Cmd {
	a, date := m.app, m.date
	return func() tea.Msg {
		entries, err := a.Store.EntriesForDate(context.Background(), date)
		if err != nil {
			return errMsg{err}
		}
		categories, err := a.Store.ListCategories(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return loadedMsg{entries: entries, categories: categories}
	}
}

func (m Model) saveCmd(e domain.Entry) tea.Cmd {
	a := m.app
	return func() tea.Msg {
		if _, err := a.Store.UpsertEntry(context.Background(), e); err != nil {
			return errMsg{err}
		}
		return savedMsg{}
	}
}

func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case loadedMsg:
		m.entries = msg.entries
		m.categories = msg.categories
		m.err = ""
		return m, nil

	case savedMsg:
		m.status = "saved"
		return m, m.loadCmd()

	case errMsg:
		m.err = msg.err.Error()
		return m, nil

	case tea.KeyMsg:
		if m.mode == modePrompt {
			return m.updatePrompt(msg)
		}
		return m.updateGrid(msg)

	case tea.MouseMsg:
		if m.mode != modeGrid {
			return m, nil
		}
		return m.updateMouse(msg)
	}
	return m, nil
}

func (m Model) updateGrid(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		// Abandon an in-flight drag without emitting.
		m.drag.Cancel()
		return m, nil
	case "left", "h":
		m.date = shiftDate(m.date, -1)
		return m, m.loadCmd()
	case "right", "l":
		m.date = shiftDate(m.date, 1)
		return m, m.loadCmd()
	case "t":
		m.date = clock.FormatDate(time.Now())
		return m, m.loadCmd()
	case "up", "k":
		m.scrollBy(-1)
	case "down", "j":
		m.scrollBy(1)
	case "pgup":
		m.scrollBy(-m.viewRows())
	case "pgdown":
		m.scrollBy(m.viewRows())
	}
	return m, nil
}

func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	y := msg.Y - gridTop + m.scroll
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if row, ok := m.g.RowAt(y); ok {
			m.drag.Down(row)
		}
	case msg.Action == tea.MouseActionMotion:
		// Moves outside the grid clamp rather than drop the drag.
		m.drag.Move(y)
	case msg.Action == tea.MouseActionRelease:
		if iv, ok := m.drag.Up(); ok {
			if len(m.categories) == 0 {
				m.err = "no categories available"
				return m, nil
			}
			m.pending = iv
			m.catIdx = 0
			m.label = ""
			m.mode = modePrompt
		}
	}
	return m, nil
}

func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeGrid
		return m, nil
	case "enter":
		entry := domain.Entry{
			ID:       domain.NewEntryID(),
			Date:     m.date,
			Start:    m.pending.Start,
			End:      m.pending.End,
			Category: m.categories[m.catIdx].ID,
			Label:    strings.TrimSpace(m.label),
		}
		m.mode = modeGrid
		m.status = "saving…"
		return m, m.saveCmd(entry)
	case "up":
		if m.catIdx > 0 {
			m.catIdx--
		}
		return m, nil
	case "down":
		if m.catIdx < len(m.categories)-1 {
			m.catIdx++
		}
		return m, nil
	case "backspace":
		if m.label != "" {
			m.label = m.label[:len(m.label)-1]
		}
		return m, nil
	}
	if msg.Type == tea.KeyRunes {
		for _, r := range msg.Runes {
			if unicode.IsPrint(r) && len(m.label) < domain.MaxLabelLength {
				m.label += string(r)
			}
		}
	}
	if msg.Type == tea.KeySpace && len(m.label) < domain.MaxLabelLength {
		m.label += " "
	}
	return m, nil
}

func (m *Model) viewRows() int {
	rows := m.height - 2 // header + status line
	if m.mode == modePrompt {
		rows -= len(m.categories) + 4
	}
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m *Model) scrollBy(delta int) {
	m.scroll += delta
	max := m.g.Rows - m.viewRows()
	if max < 0 {
		max = 0
	}
	if m.scroll > max {
		m.scroll = max
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("timegrid %s", m.date)))
	b.WriteString(statusStyle.Render("  ←/→ day · t today · drag to add · q quit"))
	b.WriteString("\n")

	selFirst, selLast, selecting := m.drag.Span()
	viewRows := m.viewRows()
	for i := 0; i < viewRows; i++ {
		row := m.scroll + i
		if row >= m.g.Rows {
			break
		}
		b.WriteString(m.renderRow(row, selecting, selFirst, selLast))
		b.WriteString("\n")
	}

	if m.mode == modePrompt {
		b.WriteString(m.renderPrompt())
		b.WriteString("\n")
	}

	switch {
	case m.err != "":
		b.WriteString(errStyle.Render("error: " + m.err))
	case m.status != "":
		b.WriteString(statusStyle.Render(m.status))
	}
	return b.String()
}

func (m Model) renderRow(row int, selecting bool, selFirst, selLast int) string {
	minutes := clock.RowToMinutes(row)

	label := strings.Repeat(" ", timeColumn)
	if minutes%60 == 0 {
		hhmm, _ := clock.MinutesToClock(minutes)
		label = timeStyle.Render(hhmm) + " "
	}

	cellWidth := m.width - timeColumn
	if cellWidth < 10 {
		cellWidth = 10
	}

	if selecting && row >= selFirst && row <= selLast {
		return label + selectionStyle.Render(pad("", cellWidth))
	}

	if e, first := m.entryAt(row); e != nil {
		text := ""
		if first {
			name := e.Category
			if c := m.category(e.Category); c != nil {
				name = c.Name
			}
			if e.Label != "" {
				name = e.Label
			}
			text = fmt.Sprintf(" %s %s", clock.FormatRange(e.Start, e.End), name)
		}
		style := lipgloss.NewStyle().
			Background(blockColor(m.category(e.Category))).
			Foreground(lipgloss.Color("#101018"))
		return label + style.Render(pad(text, cellWidth))
	}

	if minutes%60 == 0 {
		return label + hourRuleStyle.Render(strings.Repeat("─", cellWidth))
	}
	return label
}

func (m Model) renderPrompt() string {
	start, end := m.pending.Start, m.pending.End
	var b strings.Builder
	b.WriteString(fmt.Sprintf("New entry %s\n", clock.FormatRange(start, end)))
	for i, c := range m.categories {
		line := "  " + c.Name
		if i == m.catIdx {
			line = cursorStyle.Render("> " + c.Name)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString(fmt.Sprintf("label: %s▏\n", m.label))
	b.WriteString(statusStyle.Render("↑/↓ category · type label · enter save · esc cancel"))
	return promptStyle.Render(b.String())
}

// entryAt returns the entry covering the row and whether this is its first
// row. Overlapping entries keep natural order; the earliest wins the cell.
func (m Model) entryAt(row int) (*domain.Entry, bool) {
	for i := range m.entries {
		e := &m.entries[i]
		first := clock.MinutesToRow(e.Start)
		last := clock.MinutesToRow(e.End)
		if row >= first && row < last {
			return e, row == first
		}
	}
	return nil, false
}

func (m Model) category(id string) *domain.Category {
	for i := range m.categories {
		if m.categories[i].ID == id {
			return &m.categories[i]
		}
	}
	return nil
}

func blockColor(c *domain.Category) lipgloss.Color {
	if c != nil && strings.HasPrefix(c.Color, "#") {
		return lipgloss.Color(c.Color)
	}
	return lipgloss.Color(domain.FallbackBlockColor)
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}

func shiftDate(date string, days int) string {
	t, err := clock.ParseDate(date)
	if err != nil {
		return date
	}
	return clock.FormatDate(t.AddDate(0, 0, days))
}
