package state

import "time"

// ToastKind styles a status message.
type ToastKind int

const (
	ToastInfo ToastKind = iota
	ToastSuccess
	ToastError
)

// Toast is a status message that dismisses itself.
type Toast struct {
	Text    string
	Kind    ToastKind
	Expires time.Time
}

// Show replaces the message.
func (t *Toast) Show(text string, kind ToastKind, now time.Time, ttl time.Duration) {
	t.Text = text
	t.Kind = kind
	t.Expires = now.Add(ttl)
}

// Visible reports whether the message is still showing at now.
func (t *Toast) Visible(now time.Time) bool {
	return t.Text != "" && now.Before(t.Expires)
}

// Dismiss hides the message.
func (t *Toast) Dismiss() {
	t.Text = ""
}
