// Package selection tracks a cursor and a highlighted range over plain text.
//
// Positions are grapheme cluster indexes in [0, len(clusters)].
package selection

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Selector is the current highlight over a text. The selected range is
// [min(anchor, cursor), max(anchor, cursor)).
type Selector struct {
	clusters []string
	cursor   int
	anchor   int
	active   bool
}

func New(text string) Selector {
	return Selector{clusters: split(text)}
}

func split(text string) []string {
	if text == "" {
		return nil
	}
	out := make([]string, 0, len(text))
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// SetText replaces the text, clears the selection and clamps the cursor.
func (s *Selector) SetText(text string) {
	s.clusters = split(text)
	s.active = false
	s.cursor = clamp(s.cursor, 0, len(s.clusters))
	s.anchor = s.cursor
}

func (s Selector) Text() string { return strings.Join(s.clusters, "") }
func (s Selector) Len() int     { return len(s.clusters) }
func (s Selector) Cursor() int  { return s.cursor }

// Clusters returns a copy of the grapheme clusters.
func (s Selector) Clusters() []string {
	out := make([]string, len(s.clusters))
	copy(out, s.clusters)
	return out
}

// Range returns the selected [start, end). ok is false for an empty
// selection.
func (s Selector) Range() (start, end int, ok bool) {
	if !s.active || s.anchor == s.cursor {
		return s.cursor, s.cursor, false
	}
	start, end = s.anchor, s.cursor
	if start > end {
		start, end = end, start
	}
	return start, end, true
}

// Selected returns the highlighted text, or "" when nothing is selected.
func (s Selector) Selected() string {
	start, end, ok := s.Range()
	if !ok {
		return ""
	}
	return strings.Join(s.clusters[start:end], "")
}

// Clear drops the selection but keeps the cursor.
func (s *Selector) Clear() {
	s.active = false
	s.anchor = s.cursor
}

// SelectAll highlights the whole text and leaves the cursor at the end.
func (s *Selector) SelectAll() {
	s.anchor = 0
	s.cursor = len(s.clusters)
	s.active = len(s.clusters) > 0
}

// Move shifts the cursor by delta clusters. With extend the selection grows
// from the position the cursor had when extending started.
func (s *Selector) Move(delta int, extend bool) {
	s.moveTo(s.cursor+delta, extend)
}

// MoveLine moves the cursor delta lines up or down, keeping the column where
// the target line is long enough.
func (s *Selector) MoveLine(delta int, extend bool) {
	starts := s.lineStarts()
	line := lineOf(starts, s.cursor)
	col := s.cursor - starts[line]

	target := line + delta
	switch {
	case target < 0:
		s.moveTo(0, extend)
		return
	case target >= len(starts):
		s.moveTo(len(s.clusters), extend)
		return
	}
	s.moveTo(starts[target]+min(col, s.lineLen(starts, target)), extend)
}

// LineStart moves the cursor to the start of its line.
func (s *Selector) LineStart(extend bool) {
	starts := s.lineStarts()
	s.moveTo(starts[lineOf(starts, s.cursor)], extend)
}

// LineEnd moves the cursor before the line break ending its line.
func (s *Selector) LineEnd(extend bool) {
	starts := s.lineStarts()
	line := lineOf(starts, s.cursor)
	s.moveTo(starts[line]+s.lineLen(starts, line), extend)
}

func (s *Selector) moveTo(pos int, extend bool) {
	pos = clamp(pos, 0, len(s.clusters))
	switch {
	case extend && !s.active:
		s.anchor = s.cursor
		s.active = true
	case !extend:
		s.active = false
	}
	s.cursor = pos
	if !s.active {
		s.anchor = pos
	}
}

// lineStarts returns the cluster index each line begins at. It always has
// at least one entry.
func (s Selector) lineStarts() []int {
	starts := []int{0}
	for i, c := range s.clusters {
		if isNewline(c) {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// lineLen is the number of clusters on line, excluding its line break.
func (s Selector) lineLen(starts []int, line int) int {
	end := len(s.clusters)
	if line+1 < len(starts) {
		end = starts[line+1] - 1
	}
	return end - starts[line]
}

func lineOf(starts []int, pos int) int {
	line := 0
	for i, st := range starts {
		if st > pos {
			break
		}
		line = i
	}
	return line
}

// uniseg keeps "\r\n" as a single cluster.
func isNewline(c string) bool {
	return c == "\n" || c == "\r\n" || c == "\r"
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
