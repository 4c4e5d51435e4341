// Package clipboard writes copied text to the system clipboard, to the
// terminal through OSC 52, or to memory.
//
// Errors must not crash the UI; callers log them and move on.
package clipboard

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

// ErrUnknownKind is returned by New for unsupported backend names.
var ErrUnknownKind = errors.New("clipboard: unknown kind")

// Clipboard accepts copied text.
type Clipboard interface {
	WriteText(s string) error
}

// System uses the platform clipboard tools (pbcopy, xclip, wl-copy, ...).
type System struct{}

func (System) WriteText(s string) error {
	if err := clipboard.WriteAll(s); err != nil {
		return fmt.Errorf("system clipboard: %w", err)
	}
	return nil
}

// OSC52 asks the terminal emulator to set its clipboard. It works over SSH
// where no system clipboard is reachable.
type OSC52 struct {
	Out io.Writer
}

func (o OSC52) WriteText(s string) error {
	if _, err := osc52.New(s).WriteTo(o.Out); err != nil {
		return fmt.Errorf("osc52 clipboard: %w", err)
	}
	return nil
}

// Memory keeps the last copied text in process.
type Memory struct {
	mu   sync.Mutex
	text string
}

func (m *Memory) WriteText(s string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = s
	return nil
}

func (m *Memory) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}

// New returns the backend named by kind: "auto", "system", "osc52" or
// "memory". "auto" falls back to OSC 52 when no system clipboard tool is
// installed. out is where OSC 52 sequences are written.
func New(kind string, out io.Writer) (Clipboard, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", "auto":
		if clipboard.Unsupported {
			return OSC52{Out: out}, nil
		}
		return System{}, nil
	case "system":
		return System{}, nil
	case "osc52":
		return OSC52{Out: out}, nil
	case "memory":
		return &Memory{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}
