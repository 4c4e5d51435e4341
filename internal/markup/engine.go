// Package markup applies inline color wrappers to text and converts the
// resulting HTML fragment into plain text, terminal previews and Discord
// ANSI blocks.
//
// Matching is a literal substring search over the current markup, not over
// the rendered text. The first occurrence wins, and a selection that also
// appears inside an earlier wrapper's attributes or spans a wrapper
// boundary is matched as-is.
package markup

import (
	"errors"
	"strings"

	"github.com/zam-dot/tintype/internal/notify"
)

// ErrEmptySelection is returned when a color is applied with nothing
// selected.
var ErrEmptySelection = errors.New("markup: empty selection")

const (
	msgEmptySelection = "Please select some text to style!"
	msgApplied        = "Style applied successfully!"
	msgReset          = "All styles have been reset!"
)

// Wrap returns text enclosed in a single inline color wrapper.
func Wrap(text, color string, t Target) string {
	return "<span style='" + t.Property() + ": " + color + ";'>" + text + "</span>"
}

// ApplyColor wraps the first occurrence of selection in markup. Existing
// wrappers are left alone, so repeated calls nest.
func ApplyColor(markup, selection, color string, t Target) (string, error) {
	if selection == "" {
		return markup, ErrEmptySelection
	}
	return strings.Replace(markup, selection, Wrap(selection, color, t), 1), nil
}

// Document pairs the plain source text with its styled markup.
type Document struct {
	plain  string
	styled string
}

func NewDocument(plain string) Document {
	return Document{plain: plain, styled: plain}
}

func (d Document) Plain() string  { return d.plain }
func (d Document) Markup() string { return d.styled }

// Styled reports whether any wrapper survives in the markup.
func (d Document) Styled() bool { return d.styled != d.plain }

// SetSource replaces the plain text and discards all styling.
func (d *Document) SetSource(text string) {
	d.plain = text
	d.styled = text
}

// Reset discards all styling.
func (d *Document) Reset() notify.Notification {
	d.styled = d.plain
	return notify.NewInfo(msgReset)
}

// ApplyColor wraps selection in the current markup.
func (d *Document) ApplyColor(selection, color string, t Target) notify.Notification {
	styled, err := ApplyColor(d.styled, selection, color, t)
	if errors.Is(err, ErrEmptySelection) {
		return notify.NewError(msgEmptySelection)
	}
	d.styled = styled
	return notify.NewSuccess(msgApplied)
}
