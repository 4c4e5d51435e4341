// Package palette is the two-row grid of color swatches. Each entry carries
// its own hovered flag; tooltips are driven from that flag only.
package palette

import (
	"github.com/zam-dot/tintype/internal/markup"
)

// Layout, in terminal cells, relative to the palette's top-left corner:
//
//	line 0  "Foreground"
//	line 1  fg swatches
//	line 2  "Background"
//	line 3  bg swatches
//	line 4  tooltip
const (
	SwatchWidth = 4
	swatchGap   = 1
	cellWidth   = SwatchWidth + swatchGap
	Height      = 5
)

// Entry is one swatch in the grid.
type Entry struct {
	Swatch  markup.Swatch
	Target  markup.Target
	Hovered bool
}

// Model holds the grid, the keyboard cursor and focus.
type Model struct {
	rows    [2][]Entry
	row     int
	col     int
	focused bool
}

func New() Model {
	var m Model
	for r, target := range []markup.Target{markup.Foreground, markup.Background} {
		for _, sw := range markup.Catalog(target) {
			m.rows[r] = append(m.rows[r], Entry{Swatch: sw, Target: target})
		}
	}
	return m
}

func (m *Model) Focus() {
	m.focused = true
	m.hoverOnly(m.row, m.col)
}

func (m *Model) Blur() {
	m.focused = false
	m.clearHover()
}

func (m Model) Focused() bool { return m.focused }

// Cursor returns the keyboard cursor position.
func (m Model) Cursor() (row, col int) { return m.row, m.col }

// Move shifts the keyboard cursor, clamped to the grid, and hovers the
// entry under it.
func (m *Model) Move(dRow, dCol int) {
	m.row = clamp(m.row+dRow, 0, len(m.rows)-1)
	m.col = clamp(m.col+dCol, 0, len(m.rows[m.row])-1)
	m.hoverOnly(m.row, m.col)
}

// SetTarget puts the keyboard cursor on the first swatch of target's row.
func (m *Model) SetTarget(t markup.Target) {
	m.row, m.col = 0, 0
	if t == markup.Background {
		m.row = 1
	}
	if m.focused {
		m.hoverOnly(m.row, m.col)
	}
}

// Selected returns the entry under the keyboard cursor.
func (m Model) Selected() Entry {
	return m.rows[m.row][m.col]
}

// Entry returns the entry at row/col.
func (m Model) Entry(row, col int) (Entry, bool) {
	if row < 0 || row >= len(m.rows) || col < 0 || col >= len(m.rows[row]) {
		return Entry{}, false
	}
	return m.rows[row][col], true
}

// Swatch returns the i-th swatch for target.
func (m Model) Swatch(t markup.Target, i int) (markup.Swatch, bool) {
	e, ok := m.Entry(rowFor(t), i)
	return e.Swatch, ok
}

// Hovered returns the entry with its hovered flag set, if any.
func (m Model) Hovered() (Entry, bool) {
	for _, row := range m.rows {
		for _, e := range row {
			if e.Hovered {
				return e, true
			}
		}
	}
	return Entry{}, false
}

// At maps a cell relative to the palette origin to a grid entry. Gaps
// between swatches and label lines map to nothing.
func (m Model) At(x, y int) (row, col int, ok bool) {
	switch y {
	case 1:
		row = 0
	case 3:
		row = 1
	default:
		return 0, 0, false
	}
	if x < 0 || x%cellWidth >= SwatchWidth {
		return 0, 0, false
	}
	col = x / cellWidth
	if col >= len(m.rows[row]) {
		return 0, 0, false
	}
	return row, col, true
}

// Hover updates hovered flags for a pointer at (x, y). Leaving every swatch
// clears all flags. It reports whether any flag changed.
func (m *Model) Hover(x, y int) bool {
	before, hadBefore := m.hoveredPos()
	row, col, ok := m.At(x, y)
	if !ok {
		m.clearHover()
		return hadBefore
	}
	m.hoverOnly(row, col)
	return !hadBefore || before != [2]int{row, col}
}

func (m *Model) hoveredPos() ([2]int, bool) {
	for r, row := range m.rows {
		for c, e := range row {
			if e.Hovered {
				return [2]int{r, c}, true
			}
		}
	}
	return [2]int{}, false
}

func (m *Model) hoverOnly(row, col int) {
	for r := range m.rows {
		for c := range m.rows[r] {
			m.rows[r][c].Hovered = r == row && c == col
		}
	}
}

func (m *Model) clearHover() {
	for r := range m.rows {
		for c := range m.rows[r] {
			m.rows[r][c].Hovered = false
		}
	}
}

func rowFor(t markup.Target) int {
	if t == markup.Background {
		return 1
	}
	return 0
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
