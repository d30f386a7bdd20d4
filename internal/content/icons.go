package content

import (
	"github.com/lrstanley/go-nf/glyphs/fa"

	"github.com/daddyholnes/podplay-sanctuary-build/internal/config"
)

// Icon returns the Nerd Font glyph for a content kind, empty in ASCII
// mode. Shown in title bar badges and taskbar items.
func Icon(kind string) string {
	if config.UseASCIIOnly {
		return ""
	}
	normalized, ok := ParseKind(kind)
	if !ok {
		return string(fa.Square)
	}
	switch normalized {
	case KindWelcome:
		return string(fa.Home)
	case KindChat:
		return string(fa.Comment)
	case KindDashboard:
		return string(fa.BarChart)
	case KindLogbook:
		return string(fa.Book)
	default:
		return string(fa.StickyNote)
	}
}
