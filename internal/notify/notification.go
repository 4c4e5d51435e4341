// Package notify holds the transient status banner shown after user actions.
package notify

// Kind classifies a notification for styling.
type Kind int

const (
	Error Kind = iota
	Success
	Info
)

func (k Kind) String() string {
	switch k {
	case Error:
		return "error"
	case Success:
		return "success"
	case Info:
		return "info"
	}
	return "unknown"
}

// Notification is a (kind, message) pair produced by a user action.
type Notification struct {
	Kind    Kind
	Message string
}

func NewError(msg string) Notification   { return Notification{Kind: Error, Message: msg} }
func NewSuccess(msg string) Notification { return Notification{Kind: Success, Message: msg} }
func NewInfo(msg string) Notification    { return Notification{Kind: Info, Message: msg} }
