package notify

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultDelay is how long a notification stays visible.
const DefaultDelay = time.Second

// State is the banner lifecycle state.
type State int

const (
	Idle State = iota
	Showing
)

func (s State) String() string {
	if s == Showing {
		return "showing"
	}
	return "idle"
}

// ExpiredMsg is delivered when a banner timer elapses. ID identifies the
// notification the timer was started for.
type ExpiredMsg struct {
	ID int
}

// Banner holds at most one visible notification. Every Show supersedes the
// previous one; timers started for older notifications are ignored when
// they fire, so only the newest timer can clear the banner.
type Banner struct {
	delay   time.Duration
	state   State
	current Notification
	id      int
}

// NewBanner returns an idle banner. A non-positive delay uses DefaultDelay.
func NewBanner(delay time.Duration) Banner {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return Banner{delay: delay}
}

// Show makes n the visible notification and returns the command that will
// expire it.
func (b *Banner) Show(n Notification) tea.Cmd {
	b.id++
	b.current = n
	b.state = Showing

	id := b.id
	return tea.Tick(b.delay, func(time.Time) tea.Msg {
		return ExpiredMsg{ID: id}
	})
}

// Update handles ExpiredMsg. It reports whether the banner changed.
func (b *Banner) Update(msg tea.Msg) bool {
	m, ok := msg.(ExpiredMsg)
	if !ok || b.state != Showing || m.ID != b.id {
		return false
	}
	b.state = Idle
	b.current = Notification{}
	return true
}

func (b Banner) State() State         { return b.state }
func (b Banner) Delay() time.Duration { return b.delay }

// Current returns the visible notification, if any.
func (b Banner) Current() (Notification, bool) {
	return b.current, b.state == Showing
}
