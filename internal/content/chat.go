package content

import (
	"strings"

	"charm.land/lipgloss/v2"
)

type chatMessage struct {
	author string
	text   string
	mine   bool
}

// Chat renders a two-party transcript as aligned bubbles, pinned to the
// newest messages when the window is short.
type Chat struct {
	messages []chatMessage
}

// NewChat returns a chat seeded with a short welcome exchange.
func NewChat() *Chat {
	return &Chat{
		messages: []chatMessage{
			{author: "mama bear", text: "Welcome back to the sanctuary. Everything is where you left it."},
			{author: "you", text: "Thanks! Tiling the windows now.", mine: true},
			{author: "mama bear", text: "Press t to tile, c to cascade, or p to pick a saved layout."},
		},
	}
}

// Say appends a message from the local side.
func (c *Chat) Say(text string) {
	c.messages = append(c.messages, chatMessage{author: "you", text: text, mine: true})
}

// Receive appends a message from the remote side.
func (c *Chat) Receive(author, text string) {
	c.messages = append(c.messages, chatMessage{author: author, text: text})
}

// Render implements wm.Renderer.
func (c *Chat) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	bubbleWidth := width * 3 / 4
	if bubbleWidth < 8 {
		bubbleWidth = width
	}

	theirStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("15")).
		Background(lipgloss.Color("#2a2a3e")).
		Padding(0, 1).
		MaxWidth(bubbleWidth)
	mineStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("15")).
		Background(lipgloss.Color("#4865f2")).
		Padding(0, 1).
		MaxWidth(bubbleWidth)
	authorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	var lines []string
	for _, msg := range c.messages {
		var bubble string
		if msg.mine {
			bubble = mineStyle.Render(msg.text)
		} else {
			bubble = theirStyle.Render(msg.text)
		}
		block := authorStyle.Render(msg.author) + "\n" + bubble
		if msg.mine {
			block = lipgloss.PlaceHorizontal(width, lipgloss.Right, block)
		}
		lines = append(lines, strings.Split(block, "\n")...)
		lines = append(lines, "")
	}

	// Stick to the newest messages
	if len(lines) > height {
		lines = lines[len(lines)-height:]
	}
	return strings.Join(lines, "\n")
}
