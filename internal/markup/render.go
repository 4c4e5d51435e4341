package markup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	sgrPrefix = "\x1b[0"
	sgrReset  = "\x1b[0m"
)

// Render draws markup with terminal colors. When the markup cannot be
// parsed the raw text is returned.
func Render(r *lipgloss.Renderer, markup string) string {
	segs, err := Segments(markup)
	if err != nil {
		return markup
	}

	var b strings.Builder
	for _, seg := range segs {
		if seg.Plain() {
			b.WriteString(seg.Text)
			continue
		}
		style := r.NewStyle()
		if seg.Fg != "" {
			style = style.Foreground(lipgloss.Color(seg.Fg))
		}
		if seg.Bg != "" {
			style = style.Background(lipgloss.Color(seg.Bg))
		}
		// Render pads multi-line input to a block; style each line alone.
		for i, line := range strings.Split(seg.Text, "\n") {
			if i > 0 {
				b.WriteByte('\n')
			}
			if line != "" {
				b.WriteString(style.Render(line))
			}
		}
	}
	return b.String()
}

// Discord converts markup into a ```ansi code block using the catalog's SGR
// codes. Colors outside the catalogs are dropped.
func Discord(markup string) (string, error) {
	segs, err := Segments(markup)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("```ansi\n")
	var prev sgr
	for _, seg := range segs {
		cur := sgrFor(seg)
		if cur != prev {
			b.WriteString(cur.String())
			prev = cur
		}
		b.WriteString(seg.Text)
	}
	if prev != (sgr{}) {
		b.WriteString(sgrReset)
	}
	b.WriteString("\n```")
	return b.String(), nil
}

type sgr struct {
	fg, bg string
}

func sgrFor(seg Segment) sgr {
	var s sgr
	if sw, ok := Lookup(Foreground, seg.Fg); ok {
		s.fg = sw.Code
	}
	if sw, ok := Lookup(Background, seg.Bg); ok {
		s.bg = sw.Code
	}
	return s
}

func (s sgr) String() string {
	if s == (sgr{}) {
		return sgrReset
	}
	out := sgrPrefix
	if s.fg != "" {
		out += ";" + s.fg
	}
	if s.bg != "" {
		out += ";" + s.bg
	}
	return out + "m"
}
