package content

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// Notes is a plain scratchpad. Lines wrap to the window width and the view
// sticks to the top, like a pinned note.
type Notes struct {
	lines []string
}

// NewNotes returns a scratchpad seeded with a short orientation text.
func NewNotes() *Notes {
	return &Notes{
		lines: []string{
			"Scratchpad",
			"",
			"Drag the title bar to move this window, drag any edge or",
			"corner to resize it. The buttons on the right close,",
			"maximize, and minimize.",
			"",
			"Press ? for the full keymap.",
		},
	}
}

// SetText replaces the scratchpad contents.
func (n *Notes) SetText(text string) {
	n.lines = strings.Split(text, "\n")
}

// Append adds a line to the scratchpad.
func (n *Notes) Append(line string) {
	n.lines = append(n.lines, line)
}

// Render implements wm.Renderer.
func (n *Notes) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	body := lipgloss.NewStyle().Width(width).Render(strings.Join(n.lines, "\n"))
	wrapped := strings.Split(body, "\n")
	if len(wrapped) > height {
		wrapped = wrapped[:height]
	}
	for i, line := range wrapped {
		wrapped[i] = ansi.Truncate(line, width, "")
	}
	return strings.Join(wrapped, "\n")
}
