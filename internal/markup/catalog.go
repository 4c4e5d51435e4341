package markup

import (
	"fmt"
	"slices"
	"strings"
)

// Target selects which color property a wrapper sets.
type Target int

const (
	Foreground Target = iota
	Background
)

func (t Target) String() string {
	if t == Background {
		return "bg"
	}
	return "fg"
}

// Property is the CSS property written into the wrapper.
func (t Target) Property() string {
	if t == Background {
		return "background-color"
	}
	return "color"
}

// ParseTarget accepts "fg" or "bg".
func ParseTarget(s string) (Target, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fg", "foreground":
		return Foreground, nil
	case "bg", "background":
		return Background, nil
	}
	return Foreground, fmt.Errorf("markup: unknown target %q", s)
}

// Swatch is one predefined color. Code is the ANSI SGR parameter Discord
// understands for the same color.
type Swatch struct {
	Code  string
	Color string
	Label string
}

var foreground = []Swatch{
	{Code: "30", Color: "#4f545c", Label: "Dark Gray"},
	{Code: "31", Color: "#dc322f", Label: "Red"},
	{Code: "32", Color: "#859900", Label: "Yellowish Green"},
	{Code: "33", Color: "#b58900", Label: "Gold"},
	{Code: "34", Color: "#268bd2", Label: "Light Blue"},
	{Code: "35", Color: "#d33682", Label: "Pink"},
	{Code: "36", Color: "#2aa198", Label: "Teal"},
	{Code: "37", Color: "#ffffff", Label: "White"},
}

var background = []Swatch{
	{Code: "40", Color: "#002b36", Label: "Blueish Black"},
	{Code: "41", Color: "#cb4b16", Label: "Rust Brown"},
	{Code: "42", Color: "#586e75", Label: "Gray (40%)"},
	{Code: "43", Color: "#657b83", Label: "Gray (45%)"},
	{Code: "44", Color: "#839496", Label: "Light Gray (55%)"},
	{Code: "45", Color: "#6c71c4", Label: "Blurple"},
	{Code: "46", Color: "#93a1a1", Label: "Light Gray (60%)"},
	{Code: "47", Color: "#fdf6e3", Label: "Cream White"},
}

// Catalog returns a copy of the swatches for target.
func Catalog(t Target) []Swatch {
	if t == Background {
		return slices.Clone(background)
	}
	return slices.Clone(foreground)
}

// Lookup finds the swatch for a color value, ignoring case.
func Lookup(t Target, color string) (Swatch, bool) {
	list := foreground
	if t == Background {
		list = background
	}
	color = strings.TrimSpace(color)
	for _, sw := range list {
		if strings.EqualFold(sw.Color, color) {
			return sw, true
		}
	}
	return Swatch{}, false
}
