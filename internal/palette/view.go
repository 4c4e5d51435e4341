package palette

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	tooltipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#2F3136")).
			Padding(0, 1)
)

// View renders the grid. The output is always Height lines tall.
func (m Model) View() string {
	lines := []string{
		headingStyle.Render("Foreground"),
		m.renderRow(0),
		headingStyle.Render("Background"),
		m.renderRow(1),
		m.renderTooltip(),
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderRow(row int) string {
	var b strings.Builder
	for col, e := range m.rows[row] {
		if col > 0 {
			b.WriteString(strings.Repeat(" ", swatchGap))
		}
		label := " " + e.Swatch.Code + " "
		if m.focused && row == m.row && col == m.col {
			label = "[" + e.Swatch.Code + "]"
		}
		style := lipgloss.NewStyle().
			Background(lipgloss.Color(e.Swatch.Color)).
			Foreground(lipgloss.Color(ContrastText(e.Swatch.Color))).
			Width(SwatchWidth)
		if e.Hovered {
			style = style.Bold(true).Underline(true)
		}
		b.WriteString(style.Render(label))
	}
	return b.String()
}

func (m Model) renderTooltip() string {
	e, ok := m.Hovered()
	if !ok {
		return ""
	}
	return tooltipStyle.Render(fmt.Sprintf("%s · %s · %s", e.Swatch.Label, e.Swatch.Color, e.Target))
}

// ContrastText picks black or white text for a swatch background. Colors
// that cannot be parsed get white.
func ContrastText(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "#ffffff"
	}
	l, _, _ := c.Lab()
	if l > 0.6 {
		return "#000000"
	}
	return "#ffffff"
}
