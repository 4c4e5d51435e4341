package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/zam-dot/tintype/internal/notify"
)

// ============================================================================
// STYLING SYSTEM
// ============================================================================
// Colors follow the Discord dark theme the markup is meant to be pasted into.

var (
	// ============================================================================
	// LAYOUT STYLES
	// ============================================================================

	// titleStyle styles the application title at the top
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#36393F")).
			Padding(0, 1)

	// paneStyle frames the source, preview and markup panes
	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	// activePaneStyle marks the pane that receives keys
	activePaneStyle = paneStyle.BorderForeground(lipgloss.Color("63"))

	// paneTitleStyle labels each pane
	paneTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("246"))

	// ============================================================================
	// SELECTION STYLES
	// ============================================================================

	// selectedStyle highlights the text a color will be applied to
	selectedStyle = lipgloss.NewStyle().Reverse(true)

	// cursorStyle draws the select-mode cursor
	cursorStyle = lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("205"))

	// sourceTextStyle is the plain text color in the source pane
	sourceTextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B9BBBE"))

	// markupStyle renders the raw HTML markup
	markupStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	// ============================================================================
	// NOTIFICATION STYLES
	// ============================================================================

	bannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Padding(0, 2)

	bannerColors = map[notify.Kind]lipgloss.Color{
		notify.Error:   lipgloss.Color("#FF6B6B"),
		notify.Success: lipgloss.Color("#4CAF50"),
		notify.Info:    lipgloss.Color("#2196F3"),
	}
)
