// Package content provides the built-in window content renderers: the
// chat transcript, the system dashboard, the notes scratchpad, and the
// logbook that tails desktop events. Renderers are pure display; all input
// routing stays in the desktop layer.
package content

import (
	"strings"

	"github.com/daddyholnes/podplay-sanctuary-build/internal/wm"
)

// Window content kinds.
const (
	KindWelcome   = "welcome"
	KindChat      = "chat"
	KindDashboard = "dashboard"
	KindNotes     = "notes"
	KindLogbook   = "logbook"
)

// Kinds lists the known content kinds in display order.
func Kinds() []string {
	return []string{KindChat, KindDashboard, KindLogbook, KindNotes, KindWelcome}
}

// DisplayName returns the human title for a kind, used when naming new
// windows.
func DisplayName(kind string) string {
	normalized, ok := ParseKind(kind)
	if !ok {
		return "Window"
	}
	switch normalized {
	case KindWelcome:
		return "Welcome"
	case KindChat:
		return "Chat"
	case KindDashboard:
		return "Dashboard"
	case KindLogbook:
		return "Logbook"
	default:
		return "Notes"
	}
}

// ParseKind normalizes a kind name, reporting whether it is known.
func ParseKind(s string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case KindWelcome:
		return KindWelcome, true
	case KindChat:
		return KindChat, true
	case KindDashboard, "stats", "system":
		return KindDashboard, true
	case KindNotes, "scratch", "scratchpad":
		return KindNotes, true
	case KindLogbook, "log", "logs":
		return KindLogbook, true
	}
	return "", false
}

// Factory builds renderers by kind. The event feed is shared so every
// logbook window tails the same history.
type Factory struct {
	feed *Feed
}

// NewFactory returns a factory whose logbook windows read from feed.
func NewFactory(feed *Feed) *Factory {
	return &Factory{feed: feed}
}

// New returns a renderer for the kind. Unknown kinds fall back to notes
// so window creation never fails on a typo.
func (f *Factory) New(kind string) wm.Renderer {
	normalized, ok := ParseKind(kind)
	if !ok {
		normalized = KindNotes
	}
	switch normalized {
	case KindWelcome:
		return NewWelcome()
	case KindChat:
		return NewChat()
	case KindDashboard:
		return NewDashboard()
	case KindLogbook:
		return NewLogbook(f.feed)
	default:
		return NewNotes()
	}
}
