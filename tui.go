package main

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zam-dot/tintype/internal/notify"
)

// ============================================================================
// MESSAGE TYPES FOR ASYNC OPERATIONS
// ============================================================================

// clipboardResultMsg is sent after a clipboard write finishes. The success
// banner is shown before the write; only failures are reported back.
type clipboardResultMsg struct {
	what string // What was copied, for logging
	err  error  // Nil on success
}

// ============================================================================
// BUBBLE TEA LIFECYCLE METHODS
// ============================================================================

// Init starts the textarea cursor blinking.
func (m *model) Init() tea.Cmd {
	return textarea.Blink
}

// Update dispatches every message to its handler.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case notify.ExpiredMsg:
		m.banner.Update(msg)
		return m, nil
	case clipboardResultMsg:
		return m.handleClipboardResult(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	// Cursor blink and other component messages.
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}
