package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/zam-dot/tintype/internal/logger"
	"github.com/zam-dot/tintype/internal/markup"
	"github.com/zam-dot/tintype/internal/palette"
)

// Layout: title (1 line), banner (1 line), palette, three framed panes, help
// footer (1 line). Mouse hit testing depends on these offsets.
const (
	paletteTop  = 2
	paletteLeft = 0

	headerHeight = paletteTop + palette.Height
	footerHeight = 1

	// Each pane has a border on both sides plus one cell of padding.
	paneChrome = 4
	// Each pane has top and bottom border plus a title line.
	paneFrameHeight = 3
	paneCount       = 3
)

// paneContentHeight divides the space left under the header between the
// three panes.
func paneContentHeight(height int) int {
	avail := height - headerHeight - footerHeight
	return max(avail/paneCount-paneFrameHeight, 1)
}

// View composes the whole screen.
func (m *model) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}

	if m.showHelp {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			m.renderTitle(),
			m.renderBanner(),
			m.helpText,
			m.help.View(m.keys),
		)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTitle(),
		m.renderBanner(),
		m.palette.View(),
		m.renderSourcePane(),
		m.renderPreviewPane(),
		m.renderMarkupPane(),
		m.help.View(m.keys),
	)
}

func (m *model) renderTitle() string {
	return titleStyle.Render("Tintype · Discord Text Styler")
}

func (m *model) renderBanner() string {
	n, ok := m.banner.Current()
	if !ok {
		return ""
	}
	return bannerStyle.Background(bannerColors[n.Kind]).Render(n.Message)
}

func (m *model) renderPane(title string, active bool, body string) string {
	style := paneStyle
	if active {
		style = activePaneStyle
	}
	inner := paneContentHeight(m.height)
	body = lipgloss.NewStyle().MaxHeight(inner).Render(body)
	return style.Width(max(m.width-2, 1)).Render(paneTitleStyle.Render(title) + "\n" + body)
}

func (m *model) renderSourcePane() string {
	title := fmt.Sprintf("Source (%s)", m.focus)
	if m.focus == focusEditor {
		return m.renderPane(title, true, m.editor.View())
	}
	if sel := m.selector.Selected(); sel != "" {
		title += fmt.Sprintf(" · %d selected", len([]rune(sel)))
	}
	return m.renderPane(title, m.focus == focusSelect, m.renderSelection())
}

func (m *model) renderPreviewPane() string {
	return m.renderPane("Preview", false, markup.Render(m.renderer, m.doc.Markup()))
}

func (m *model) renderMarkupPane() string {
	return m.renderPane("Markup", false, m.markupView.View())
}

// cellClass is how one grapheme is drawn in select mode.
type cellClass int

const (
	cellPlain cellClass = iota
	cellSelected
	cellCursor
)

// renderSelection draws the plain text with the highlighted range and the
// cursor. Runs of equal class are styled together.
func (m *model) renderSelection() string {
	clusters := m.selector.Clusters()
	start, end, active := m.selector.Range()
	cursor := m.selector.Cursor()

	var (
		b   strings.Builder
		run strings.Builder
		cur cellClass
	)
	flush := func() {
		if run.Len() == 0 {
			return
		}
		switch cur {
		case cellSelected:
			b.WriteString(selectedStyle.Render(run.String()))
		case cellCursor:
			b.WriteString(cursorStyle.Render(run.String()))
		default:
			b.WriteString(sourceTextStyle.Render(run.String()))
		}
		run.Reset()
	}

	for i, c := range clusters {
		class := cellPlain
		switch {
		case i == cursor:
			class = cellCursor
		case active && i >= start && i < end:
			class = cellSelected
		}
		newline := c == "\n" || c == "\r\n" || c == "\r"
		if newline {
			if class == cellCursor {
				flush()
				b.WriteString(cursorStyle.Render(" "))
			}
			flush()
			b.WriteString("\n")
			continue
		}
		if class != cur {
			flush()
			cur = class
		}
		run.WriteString(c)
	}
	flush()
	if cursor == len(clusters) {
		b.WriteString(cursorStyle.Render(" "))
	}
	return b.String()
}

// renderHelpPage renders the help markdown, falling back to the raw text.
func renderHelpPage(width int) string {
	content := loadHelpContent()
	styled, err := renderWithStyle(content, width)
	if err != nil {
		logger.Warnf("render help: %v", err)
		return content
	}
	return styled
}

func renderWithStyle(content string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(max(width-4, 20)),
	)
	if err != nil {
		return "", err
	}
	return r.Render(content)
}

func loadHelpContent() string {
	return `# Tintype

Color parts of your text and paste the result into Discord.

## Panes

- **Source (edit)**: type the plain text. Every edit clears all styling.
- **Source (select)**: move with arrows or hjkl, extend the selection with
  shift+arrows or HJKL, ctrl+a selects everything.
- **Palette**: arrows move between swatches, enter applies the one under
  the cursor. With the mouse, hover a swatch to see its name and click it
  to apply.

## Colors

| keys | action |
|------|--------|
| 1-8 | foreground swatch |
| alt+1-8 | background swatch |
| ctrl+r | reset all styles |

Only the first occurrence of the selected text in the styled markup is
colored. Coloring the same text again nests another wrapper.

## Copy

| keys | copies |
|------|--------|
| ctrl+y | plain text |
| ctrl+s | HTML markup |
| ctrl+x | Discord ` + "`ansi`" + ` code block |

Press **esc** or **ctrl+g** to close this page.
`
}
