package markup

import (
	"errors"
	"testing"

	"github.com/zam-dot/tintype/internal/notify"
)

func TestApplyColor(t *testing.T) {
	tests := []struct {
		name      string
		markup    string
		selection string
		color     string
		target    Target
		expected  string
	}{
		{
			name:      "Foreground wrap",
			markup:    "Hello World",
			selection: "World",
			color:     "#dc322f",
			target:    Foreground,
			expected:  "Hello <span style='color: #dc322f;'>World</span>",
		},
		{
			name:      "Background wrap",
			markup:    "Hello World",
			selection: "World",
			color:     "#dc322f",
			target:    Background,
			expected:  "Hello <span style='background-color: #dc322f;'>World</span>",
		},
		{
			name:      "First occurrence only",
			markup:    "cat cat",
			selection: "cat",
			color:     "#268bd2",
			target:    Foreground,
			expected:  "<span style='color: #268bd2;'>cat</span> cat",
		},
		{
			name:      "Nested wrappers",
			markup:    "Hello <span style='color: #dc322f;'>World</span>",
			selection: "World",
			color:     "#002b36",
			target:    Background,
			expected:  "Hello <span style='color: #dc322f;'><span style='background-color: #002b36;'>World</span></span>",
		},
		{
			name:      "No occurrence leaves markup alone",
			markup:    "Hello",
			selection: "World",
			color:     "#dc322f",
			target:    Foreground,
			expected:  "Hello",
		},
		{
			name:      "Replacement is literal",
			markup:    "pay $& now",
			selection: "$&",
			color:     "#b58900",
			target:    Foreground,
			expected:  "pay <span style='color: #b58900;'>$&</span> now",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ApplyColor(tt.markup, tt.selection, tt.color, tt.target)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Fatalf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestApplyColor_EmptySelection(t *testing.T) {
	markups := []string{"", "plain", "a <span style='color: #dc322f;'>b</span>"}
	for _, m := range markups {
		got, err := ApplyColor(m, "", "#dc322f", Foreground)
		if !errors.Is(err, ErrEmptySelection) {
			t.Fatalf("err=%v, want ErrEmptySelection", err)
		}
		if got != m {
			t.Fatalf("markup changed: got %q, want %q", got, m)
		}
	}
}

func TestDocument_Notifications(t *testing.T) {
	d := NewDocument("Hello World")

	n := d.ApplyColor("", "#dc322f", Foreground)
	if n.Kind != notify.Error || n.Message != "Please select some text to style!" {
		t.Fatalf("empty selection notification=%+v", n)
	}
	if d.Markup() != "Hello World" {
		t.Fatalf("markup changed on empty selection: %q", d.Markup())
	}

	n = d.ApplyColor("World", "#dc322f", Foreground)
	if n.Kind != notify.Success || n.Message != "Style applied successfully!" {
		t.Fatalf("apply notification=%+v", n)
	}
	if !d.Styled() {
		t.Fatalf("expected styled document")
	}

	n = d.Reset()
	if n.Kind != notify.Info || n.Message != "All styles have been reset!" {
		t.Fatalf("reset notification=%+v", n)
	}
	if d.Markup() != "Hello World" {
		t.Fatalf("reset markup=%q", d.Markup())
	}
}

func TestDocument_ResetAndSourceChangeReturnPlain(t *testing.T) {
	d := NewDocument("one two three")
	d.ApplyColor("two", "#859900", Foreground)
	d.ApplyColor("three", "#6c71c4", Background)
	d.ApplyColor("two", "#cb4b16", Background)

	d.Reset()
	if d.Markup() != "one two three" {
		t.Fatalf("after reset got %q", d.Markup())
	}

	d.ApplyColor("one", "#859900", Foreground)
	d.SetSource("one two three")
	if d.Markup() != "one two three" || d.Plain() != "one two three" {
		t.Fatalf("after source change got markup=%q plain=%q", d.Markup(), d.Plain())
	}
}

func TestDocument_SourceChangeClearsStyling(t *testing.T) {
	d := NewDocument("Hello World")
	d.ApplyColor("World", "#dc322f", Foreground)

	d.SetSource("Hello World!")
	if d.Markup() != "Hello World!" {
		t.Fatalf("got %q, want %q", d.Markup(), "Hello World!")
	}
	if d.Styled() {
		t.Fatalf("expected no residual wrappers")
	}
}
