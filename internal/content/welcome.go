package content

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/daddyholnes/podplay-sanctuary-build/internal/theme"
)

// Welcome is the orientation card, also shown as a full-desktop splash
// when no windows are open.
type Welcome struct{}

// NewWelcome returns the welcome card renderer.
func NewWelcome() *Welcome {
	return &Welcome{}
}

// Render implements wm.Renderer.
func (w *Welcome) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	title := lipgloss.NewStyle().
		Foreground(theme.WelcomeTitle()).
		Bold(true).
		Render("Sanctuary")
	subtitle := lipgloss.NewStyle().
		Foreground(theme.WelcomeSubtitle()).
		Render("a calm little desktop")
	hint := lipgloss.NewStyle().
		Foreground(theme.WelcomeText()).
		Render(strings.Join([]string{
			"",
			"n       open a window",
			"t / c   tile or cascade",
			"p       layout presets",
			"?       help",
		}, "\n"))

	card := lipgloss.JoinVertical(lipgloss.Center, title, subtitle, hint)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
