package main

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zam-dot/tintype/internal/clipboard"
	"github.com/zam-dot/tintype/internal/logger"
	"github.com/zam-dot/tintype/internal/markup"
	"github.com/zam-dot/tintype/internal/notify"
)

const (
	msgCopied     = "Copied to clipboard!"
	msgCopyFailed = "Could not copy to clipboard!"
)

// copyKind selects what a copy action puts on the clipboard.
type copyKind int

const (
	copyText copyKind = iota
	copyMarkup
	copyDiscord
)

func (k copyKind) String() string {
	switch k {
	case copyMarkup:
		return "markup"
	case copyDiscord:
		return "discord"
	}
	return "text"
}

// Handle key messages
func (m *model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		return m.handleToggleHelp()
	case key.Matches(msg, m.keys.Escape):
		return m.handleEscape()
	case key.Matches(msg, m.keys.NextFocus):
		return m.handleFocus((m.focus + 1) % focusCount)
	case key.Matches(msg, m.keys.PrevFocus):
		return m.handleFocus((m.focus + focusCount - 1) % focusCount)
	case key.Matches(msg, m.keys.Reset):
		return m.handleReset()
	case key.Matches(msg, m.keys.CopyText):
		return m.handleCopy(copyText)
	case key.Matches(msg, m.keys.CopyMarkup):
		return m.handleCopy(copyMarkup)
	case key.Matches(msg, m.keys.CopyDiscord):
		return m.handleCopy(copyDiscord)
	}

	if m.showHelp {
		return m, nil
	}

	switch m.focus {
	case focusSelect:
		return m.handleSelectKey(msg)
	case focusPalette:
		return m.handlePaletteKey(msg)
	default:
		return m.handleEditorKey(msg)
	}
}

// handleEditorKey forwards typing to the textarea. Any change to the text
// discards all styling.
func (m *model) handleEditorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	if text := m.editor.Value(); text != m.doc.Plain() {
		m.handleSourceChange(text)
	}
	return m, cmd
}

func (m *model) handleSourceChange(text string) {
	m.doc.SetSource(text)
	m.selector.SetText(text)
	m.refreshMarkup()
}

func (m *model) handleSelectKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left):
		m.selector.Move(-1, false)
	case key.Matches(msg, m.keys.Right):
		m.selector.Move(1, false)
	case key.Matches(msg, m.keys.Up):
		m.selector.MoveLine(-1, false)
	case key.Matches(msg, m.keys.Down):
		m.selector.MoveLine(1, false)
	case key.Matches(msg, m.keys.ShiftLeft):
		m.selector.Move(-1, true)
	case key.Matches(msg, m.keys.ShiftRight):
		m.selector.Move(1, true)
	case key.Matches(msg, m.keys.ShiftUp):
		m.selector.MoveLine(-1, true)
	case key.Matches(msg, m.keys.ShiftDown):
		m.selector.MoveLine(1, true)
	case key.Matches(msg, m.keys.Home):
		m.selector.LineStart(false)
	case key.Matches(msg, m.keys.End):
		m.selector.LineEnd(false)
	case key.Matches(msg, m.keys.ShiftHome):
		m.selector.LineStart(true)
	case key.Matches(msg, m.keys.ShiftEnd):
		m.selector.LineEnd(true)
	case key.Matches(msg, m.keys.SelectAll):
		m.selector.SelectAll()
	case key.Matches(msg, m.keys.Apply):
		e := m.palette.Selected()
		return m.handleApply(e.Swatch, e.Target)
	default:
		return m.handleSwatchShortcut(msg)
	}
	return m, nil
}

func (m *model) handlePaletteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left):
		m.palette.Move(0, -1)
	case key.Matches(msg, m.keys.Right):
		m.palette.Move(0, 1)
	case key.Matches(msg, m.keys.Up):
		m.palette.Move(-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.palette.Move(1, 0)
	case key.Matches(msg, m.keys.Apply):
		e := m.palette.Selected()
		return m.handleApply(e.Swatch, e.Target)
	default:
		return m.handleSwatchShortcut(msg)
	}
	return m, nil
}

// handleSwatchShortcut applies swatch N for "N" (foreground) or "alt+N"
// (background).
func (m *model) handleSwatchShortcut(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	target := markup.Foreground
	switch {
	case key.Matches(msg, m.keys.ApplyFg):
	case key.Matches(msg, m.keys.ApplyBg):
		target = markup.Background
	default:
		return m, nil
	}
	s := msg.String()
	idx := int(s[len(s)-1] - '1')
	sw, ok := m.palette.Swatch(target, idx)
	if !ok {
		return m, nil
	}
	return m.handleApply(sw, target)
}

// handleApply colors the current selection. The selection is read fresh
// here and never cached.
func (m *model) handleApply(sw markup.Swatch, target markup.Target) (tea.Model, tea.Cmd) {
	selected := m.selector.Selected()
	n := m.doc.ApplyColor(selected, sw.Color, target)
	logger.Debugf("apply %s %s (%s) to %q: %s", target, sw.Color, sw.Label, selected, n.Kind)
	m.refreshMarkup()
	return m, m.banner.Show(n)
}

func (m *model) handleReset() (tea.Model, tea.Cmd) {
	n := m.doc.Reset()
	logger.Debugf("reset styles")
	m.refreshMarkup()
	return m, m.banner.Show(n)
}

func (m *model) handleCopy(kind copyKind) (tea.Model, tea.Cmd) {
	var (
		text string
		err  error
	)
	switch kind {
	case copyMarkup:
		text = markup.Sanitize(m.doc.Markup())
	case copyDiscord:
		text, err = markup.Discord(m.doc.Markup())
	default:
		text, err = markup.PlainText(m.doc.Markup())
	}
	if err != nil {
		logger.Errorf("convert %s for clipboard: %v", kind, err)
		return m, m.banner.Show(notify.NewError(msgCopyFailed))
	}
	return m, tea.Batch(
		m.banner.Show(notify.NewSuccess(msgCopied)),
		writeClipboard(m.clip, kind, text),
	)
}

// writeClipboard performs the write off the update loop.
func writeClipboard(c clipboard.Clipboard, kind copyKind, text string) tea.Cmd {
	return func() tea.Msg {
		return clipboardResultMsg{what: kind.String(), err: c.WriteText(text)}
	}
}

func (m *model) handleClipboardResult(msg clipboardResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		logger.Warnf("copy %s: %v", msg.what, msg.err)
		return m, m.banner.Show(notify.NewError(msgCopyFailed))
	}
	logger.Debugf("copied %s", msg.what)
	return m, nil
}

func (m *model) handleEscape() (tea.Model, tea.Cmd) {
	switch {
	case m.showHelp:
		m.showHelp = false
	case m.focus != focusEditor:
		m.selector.Clear()
	}
	return m, nil
}

func (m *model) handleFocus(f focus) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.focus == focusEditor && f != focusEditor {
		m.editor.Blur()
	}
	if f == focusEditor && m.focus != focusEditor {
		cmd = m.editor.Focus()
	}
	if f == focusPalette {
		m.palette.Focus()
	} else {
		m.palette.Blur()
	}
	m.focus = f
	logger.Debugf("focus %s", f)
	return m, cmd
}

func (m *model) handleToggleHelp() (tea.Model, tea.Cmd) {
	m.showHelp = !m.showHelp
	if m.showHelp {
		m.helpText = renderHelpPage(m.width)
	}
	return m, nil
}

// handleMouse drives swatch hover and click. Coordinates are translated to
// the palette's origin in the layout drawn by View.
func (m *model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.config.Mouse || m.showHelp {
		return m, nil
	}
	x, y := msg.X-paletteLeft, msg.Y-paletteTop

	switch msg.Action {
	case tea.MouseActionMotion:
		m.palette.Hover(x, y)
		return m, nil
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			break
		}
		row, col, ok := m.palette.At(x, y)
		if !ok {
			return m, nil
		}
		m.palette.Hover(x, y)
		e, _ := m.palette.Entry(row, col)
		return m.handleApply(e.Swatch, e.Target)
	}

	var cmd tea.Cmd
	m.markupView, cmd = m.markupView.Update(msg)
	return m, cmd
}

// Message handlers
func (m *model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	m.help.Width = msg.Width

	inner := paneContentHeight(msg.Height)
	contentWidth := max(msg.Width-paneChrome, 1)

	m.editor.SetWidth(contentWidth)
	m.editor.SetHeight(inner)
	m.markupView.Width = contentWidth
	m.markupView.Height = inner
	m.ready = true
	m.refreshMarkup()

	if m.showHelp {
		m.helpText = renderHelpPage(m.width)
	}
	return m, nil
}

// refreshMarkup pushes the current markup into the raw markup pane.
func (m *model) refreshMarkup() {
	if !m.ready {
		return
	}
	m.markupView.SetContent(markupStyle.Width(m.markupView.Width).Render(m.doc.Markup()))
}
