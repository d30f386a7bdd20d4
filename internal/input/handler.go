// Package input translates bubbletea key and mouse events into desktop
// operations. The app package cannot import this one (it would be a cycle),
// so main registers HandleInput through app.SetInputHandler at startup.
package input

import (
	tea "charm.land/bubbletea/v2"

	"github.com/daddyholnes/podplay-sanctuary-build/internal/app"
)

// HandleInput routes one input message to the keyboard or mouse layer.
func HandleInput(msg tea.Msg, d *app.Desktop) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return HandleKeyPress(msg, d)
	case tea.MouseClickMsg:
		return handleMouseClick(msg, d)
	case tea.MouseMotionMsg:
		return handleMouseMotion(msg, d)
	case tea.MouseReleaseMsg:
		return handleMouseRelease(msg, d)
	case tea.MouseWheelMsg:
		return handleMouseWheel(msg, d)
	case tea.PasteMsg, tea.PasteStartMsg, tea.PasteEndMsg:
		// Bracketed paste has no target on the desktop; swallow it so the
		// chunks never get reinterpreted as key presses.
		return d, nil
	}
	return d, nil
}
