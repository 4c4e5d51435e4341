package main

import "github.com/charmbracelet/bubbles/key"

// keyMap defines every binding. Global bindings avoid keys the textarea
// already uses (ctrl+a/e/d/f/b/k/u/w/h/n/p/t/v).
type keyMap struct {
	NextFocus, PrevFocus key.Binding
	Reset                key.Binding
	CopyText             key.Binding
	CopyMarkup           key.Binding
	CopyDiscord          key.Binding
	Help                 key.Binding
	Quit                 key.Binding
	Escape               key.Binding

	Left, Right, Up, Down                     key.Binding
	ShiftLeft, ShiftRight, ShiftUp, ShiftDown key.Binding
	Home, End, ShiftHome, ShiftEnd            key.Binding
	SelectAll                                 key.Binding

	Apply   key.Binding
	ApplyFg key.Binding
	ApplyBg key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextFocus:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next pane")),
		PrevFocus:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev pane")),
		Reset:       key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reset styles")),
		CopyText:    key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy text")),
		CopyMarkup:  key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "copy markup")),
		CopyDiscord: key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "copy discord")),
		Help:        key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "help")),
		Quit:        key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Escape:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear selection")),

		Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "down")),

		ShiftLeft:  key.NewBinding(key.WithKeys("shift+left", "H"), key.WithHelp("shift+←", "select left")),
		ShiftRight: key.NewBinding(key.WithKeys("shift+right", "L"), key.WithHelp("shift+→", "select right")),
		ShiftUp:    key.NewBinding(key.WithKeys("shift+up", "K"), key.WithHelp("shift+↑", "select up")),
		ShiftDown:  key.NewBinding(key.WithKeys("shift+down", "J"), key.WithHelp("shift+↓", "select down")),

		Home:      key.NewBinding(key.WithKeys("home", "0"), key.WithHelp("home", "line start")),
		End:       key.NewBinding(key.WithKeys("end", "$"), key.WithHelp("end", "line end")),
		ShiftHome: key.NewBinding(key.WithKeys("shift+home"), key.WithHelp("shift+home", "select to line start")),
		ShiftEnd:  key.NewBinding(key.WithKeys("shift+end"), key.WithHelp("shift+end", "select to line end")),
		SelectAll: key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "select all")),

		Apply:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "apply swatch")),
		ApplyFg: key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8"), key.WithHelp("1-8", "foreground")),
		ApplyBg: key.NewBinding(key.WithKeys("alt+1", "alt+2", "alt+3", "alt+4", "alt+5", "alt+6", "alt+7", "alt+8"), key.WithHelp("alt+1-8", "background")),
	}
}

// ShortHelp is shown in the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextFocus, k.ApplyFg, k.ApplyBg, k.Reset, k.CopyDiscord, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextFocus, k.PrevFocus, k.Escape, k.Help, k.Quit},
		{k.ShiftLeft, k.ShiftRight, k.ShiftUp, k.ShiftDown, k.SelectAll},
		{k.Apply, k.ApplyFg, k.ApplyBg, k.Reset},
		{k.CopyText, k.CopyMarkup, k.CopyDiscord},
	}
}
