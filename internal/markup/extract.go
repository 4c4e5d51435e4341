package markup

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/aymerick/douceur/parser"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Segment is a run of text sharing one foreground and background color.
// Empty colors mean the terminal default.
type Segment struct {
	Text string
	Fg   string
	Bg   string
}

func (s Segment) Plain() bool { return s.Fg == "" && s.Bg == "" }

// fragment parses markup in a <div> context so leading whitespace and bare
// text survive, unlike a full document parse.
func fragment(markup string) (*goquery.Selection, error) {
	root := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(markup), root)
	if err != nil {
		return nil, fmt.Errorf("parse markup: %w", err)
	}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	return goquery.NewDocumentFromNode(root).Selection, nil
}

// PlainText strips all tags from markup and decodes entities.
func PlainText(markup string) (string, error) {
	root, err := fragment(markup)
	if err != nil {
		return "", err
	}
	return root.Text(), nil
}

// Segments flattens markup into colored runs. Inner wrappers override the
// colors of outer ones; adjacent runs with equal colors are merged.
func Segments(markup string) ([]Segment, error) {
	root, err := fragment(markup)
	if err != nil {
		return nil, err
	}
	var segs []Segment
	walk(root, Segment{}, &segs)
	return segs, nil
}

func walk(sel *goquery.Selection, inherited Segment, segs *[]Segment) {
	sel.Contents().Each(func(_ int, s *goquery.Selection) {
		switch goquery.NodeName(s) {
		case "#text":
			appendSegment(segs, Segment{Text: s.Text(), Fg: inherited.Fg, Bg: inherited.Bg})
		case "#comment":
		default:
			walk(s, applyInlineStyle(s, inherited), segs)
		}
	})
}

func appendSegment(segs *[]Segment, seg Segment) {
	if seg.Text == "" {
		return
	}
	if n := len(*segs); n > 0 {
		last := &(*segs)[n-1]
		if last.Fg == seg.Fg && last.Bg == seg.Bg {
			last.Text += seg.Text
			return
		}
	}
	*segs = append(*segs, seg)
}

// applyInlineStyle reads color declarations from the element's style
// attribute. Unparseable styles are ignored.
func applyInlineStyle(s *goquery.Selection, inherited Segment) Segment {
	style, ok := s.Attr("style")
	if !ok || strings.TrimSpace(style) == "" {
		return inherited
	}
	decls, err := parser.ParseDeclarations(style)
	if err != nil {
		return inherited
	}
	out := inherited
	for _, d := range decls {
		value := strings.TrimSpace(d.Value)
		switch strings.ToLower(d.Property) {
		case "color":
			out.Fg = value
		case "background-color", "background":
			out.Bg = value
		}
	}
	return out
}

var hexColor = regexp.MustCompile(`(?i)^#([0-9a-f]{3}|[0-9a-f]{6})$`)

var sanitizer = func() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowAttrs("style").OnElements("span")
	p.AllowStyles("color", "background-color").Matching(hexColor).OnElements("span")
	return p
}()

// Sanitize drops everything except text and span color wrappers.
func Sanitize(markup string) string {
	return sanitizer.Sanitize(markup)
}
