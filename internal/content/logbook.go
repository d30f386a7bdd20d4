package content

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// Feed is a bounded, append-only line buffer. The desktop writes window
// manager events into it; logbook windows read it. Everything runs on the
// program goroutine, so no locking.
type Feed struct {
	lines []string
	max   int
}

// NewFeed returns a feed that keeps the most recent max lines.
func NewFeed(max int) *Feed {
	if max <= 0 {
		max = 200
	}
	return &Feed{max: max}
}

// Append adds a line, evicting the oldest once full.
func (f *Feed) Append(line string) {
	f.lines = append(f.lines, line)
	if len(f.lines) > f.max {
		f.lines = f.lines[len(f.lines)-f.max:]
	}
}

// Appendf formats and appends a line.
func (f *Feed) Appendf(format string, args ...any) {
	f.Append(fmt.Sprintf(format, args...))
}

// Lines returns the buffered lines, oldest first.
func (f *Feed) Lines() []string {
	return f.lines
}

// Len returns the number of buffered lines.
func (f *Feed) Len() int {
	return len(f.lines)
}

// Logbook tails the shared event feed, newest entries at the bottom.
type Logbook struct {
	feed *Feed
}

// NewLogbook returns a logbook over the given feed. A nil feed renders an
// empty tail.
func NewLogbook(feed *Feed) *Logbook {
	return &Logbook{feed: feed}
}

// Render implements wm.Renderer.
func (l *Logbook) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	if l.feed == nil || l.feed.Len() == 0 {
		return dim.Render(ansi.Truncate("  no events yet", width, ""))
	}

	lines := l.feed.Lines()
	if len(lines) > height {
		lines = lines[len(lines)-height:]
	}

	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, ansi.Truncate(" "+line, width, "…"))
	}
	return strings.Join(out, "\n")
}
