package main

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/zam-dot/tintype/internal/clipboard"
	"github.com/zam-dot/tintype/internal/markup"
	"github.com/zam-dot/tintype/internal/notify"
	"github.com/zam-dot/tintype/internal/palette"
	"github.com/zam-dot/tintype/internal/selection"
)

// focus is the pane that receives keys.
type focus int

const (
	focusEditor focus = iota
	focusSelect
	focusPalette
	focusCount
)

func (f focus) String() string {
	switch f {
	case focusSelect:
		return "select"
	case focusPalette:
		return "palette"
	}
	return "edit"
}

// model holds all the state for the TUI application. The markup document is
// the single owner of the styled text; the textarea is the source buffer.
type model struct {
	config Config
	keys   keyMap
	help   help.Model

	editor     textarea.Model  // Source buffer
	selector   selection.Selector
	palette    palette.Model
	doc        markup.Document // Plain and styled text
	banner     notify.Banner
	markupView viewport.Model // Raw HTML markup
	clip       clipboard.Clipboard
	renderer   *lipgloss.Renderer

	focus    focus
	showHelp bool
	helpText string
	width    int
	height   int
	ready    bool
}

func newModel(config Config, clip clipboard.Clipboard) *model {
	ta := textarea.New()
	ta.Placeholder = "Type some text, then press tab to select part of it..."
	ta.CharLimit = config.CharLimit
	ta.ShowLineNumbers = false
	ta.SetValue(config.Text)
	ta.Focus()

	h := help.New()

	pal := palette.New()
	if target, err := markup.ParseTarget(config.DefaultTarget); err == nil {
		pal.SetTarget(target)
	}

	return &model{
		config:     config,
		keys:       defaultKeyMap(),
		help:       h,
		editor:     ta,
		selector:   selection.New(ta.Value()),
		palette:    pal,
		doc:        markup.NewDocument(ta.Value()),
		banner:     notify.NewBanner(config.NotifyDelay),
		markupView: viewport.New(0, 0),
		clip:       clip,
		renderer:   lipgloss.DefaultRenderer(),
		focus:      focusEditor,
	}
}
