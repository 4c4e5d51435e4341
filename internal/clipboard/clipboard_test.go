package clipboard

import (
	"bytes"
	"encoding/base64"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestMemory_KeepsLastText(t *testing.T) {
	m := &Memory{}
	if err := m.WriteText("one"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_ = m.WriteText("two")
	if got := m.Text(); got != "two" {
		t.Fatalf("text=%q, want two", got)
	}
}

func TestOSC52_WritesEncodedSequence(t *testing.T) {
	var buf bytes.Buffer
	if err := (OSC52{Out: &buf}).WriteText("Hello World"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "\x1b]52;") {
		t.Fatalf("missing OSC 52 prefix: %q", out)
	}
	if !strings.Contains(out, base64.StdEncoding.EncodeToString([]byte("Hello World"))) {
		t.Fatalf("payload not base64 encoded in %q", out)
	}
}

func TestNew_Kinds(t *testing.T) {
	tests := []struct {
		kind string
		want string
	}{
		{kind: "system", want: "clipboard.System"},
		{kind: "OSC52", want: "clipboard.OSC52"},
		{kind: "memory", want: "*clipboard.Memory"},
	}
	for _, tt := range tests {
		c, err := New(tt.kind, io.Discard)
		if err != nil {
			t.Fatalf("New(%q) error: %v", tt.kind, err)
		}
		if got := typeName(c); got != tt.want {
			t.Fatalf("New(%q)=%s, want %s", tt.kind, got, tt.want)
		}
	}

	if c, err := New("auto", io.Discard); err != nil || c == nil {
		t.Fatalf("New(auto)=%v, %v", c, err)
	}

	_, err := New("carrier-pigeon", io.Discard)
	if !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("err=%v, want ErrUnknownKind", err)
	}
}

func typeName(c Clipboard) string {
	switch c.(type) {
	case System:
		return "clipboard.System"
	case OSC52:
		return "clipboard.OSC52"
	case *Memory:
		return "*clipboard.Memory"
	}
	return "unknown"
}
