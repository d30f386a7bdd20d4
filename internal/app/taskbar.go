package app

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/daddyholnes/podplay-sanctuary-build/internal/config"
	"github.com/daddyholnes/podplay-sanctuary-build/internal/theme"
)

// minimizeFlashDuration is how long a freshly minimized window's taskbar
// pill stays highlighted so the eye can follow it down.
const minimizeFlashDuration = 3 * time.Second

// maxTaskbarItems caps the pills shown; entries beyond it collapse into a
// truncation marker. The first nine map onto the 1-9 focus keys.
const maxTaskbarItems = 9

// truncationMarker is appended when pills were dropped for space.
const truncationMarker = " ..."

// TaskbarItem is one clickable pill on the taskbar.
type TaskbarItem struct {
	WindowID string
	Label    string
	X        int // screen column of the pill's left cap
	Width    int // total width including both caps
}

// TaskbarLayout is the computed taskbar geometry. The renderer and mouse
// hit-testing both consume it, so clicks always land on what was drawn.
type TaskbarLayout struct {
	Items     []TaskbarItem
	ModeLabel string // pill text on the left
	InfoText  string // window counters after the mode pill
	RightText string // system stats on the right
	Truncated int    // items dropped for lack of space
}

// CalculateTaskbarLayout measures the taskbar contents at the current
// width: mode pill and counters on the left, minimized-window pills in the
// center, system stats on the right.
func (d *Desktop) CalculateTaskbarLayout() TaskbarLayout {
	var layout TaskbarLayout

	if d.SceneMode {
		layout.ModeLabel = " SCENE "
	} else {
		layout.ModeLabel = " SANCTUARY "
	}

	stats := d.Manager.Stats()
	layout.InfoText = fmt.Sprintf(" %d win", stats.Total)
	if stats.Minimized > 0 {
		layout.InfoText += fmt.Sprintf(" (%d min)", stats.Minimized)
	}

	layout.RightText = d.GetCPUGraph() + " " + d.GetRAMUsage()

	minimized := d.Manager.MinimizedWindows()
	if len(minimized) > maxTaskbarItems {
		layout.Truncated = len(minimized) - maxTaskbarItems
		minimized = minimized[:maxTaskbarItems]
	}

	capWidth := lipgloss.Width(config.GetTaskbarPillLeft()) + lipgloss.Width(config.GetTaskbarPillRight())

	centerWidth := 0
	for i, w := range minimized {
		name := w.Title
		if len(name) > 12 {
			name = name[:9] + "..."
		}
		if w.Icon != "" {
			name = w.Icon + " " + name
		}
		label := fmt.Sprintf(" %d:%s ", i+1, name)

		item := TaskbarItem{
			WindowID: w.ID,
			Label:    label,
			Width:    capWidth + lipgloss.Width(label),
		}
		layout.Items = append(layout.Items, item)

		if i > 0 {
			centerWidth++ // space between pills
		}
		centerWidth += item.Width
	}

	// MarginRight(2) on the stats style plus the pill caps and counters
	leftWidth := capWidth + lipgloss.Width(layout.ModeLabel) + lipgloss.Width(layout.InfoText)
	rightWidth := lipgloss.Width(layout.RightText) + 2

	// The truncation marker takes space too, so dropping a pill must
	// account for it or the centering below drifts off the rendered bar.
	markerWidth := 0
	if layout.Truncated > 0 {
		markerWidth = lipgloss.Width(truncationMarker)
	}

	// Drop pills from the end until the center block fits
	for centerWidth+markerWidth > d.Width-leftWidth-rightWidth && len(layout.Items) > 0 {
		last := layout.Items[len(layout.Items)-1]
		centerWidth -= last.Width
		if len(layout.Items) > 1 {
			centerWidth--
		}
		layout.Items = layout.Items[:len(layout.Items)-1]
		layout.Truncated++
		markerWidth = lipgloss.Width(truncationMarker)
	}
	centerWidth += markerWidth

	// Final x positions, centered in the remaining space
	available := d.Width - leftWidth - rightWidth - centerWidth
	leftSpacer := max(available/2, 0)
	x := leftWidth + leftSpacer
	for i := range layout.Items {
		if i > 0 {
			x++
		}
		layout.Items[i].X = x
		x += layout.Items[i].Width
	}

	return layout
}

// taskbarRow returns the screen row of the clickable bar itself. The
// separator line takes the other row of the taskbar band.
func (d *Desktop) taskbarRow() int {
	if config.TaskbarPosition == "top" {
		return 0
	}
	return max(d.Height-1, 0)
}

// FindTaskbarItem returns the window ID of the pill under the given screen
// position, or "" when the position misses every pill.
func (d *Desktop) FindTaskbarItem(x, y int) string {
	if config.TaskbarPosition == "hidden" || y != d.taskbarRow() {
		return ""
	}
	for _, item := range d.CalculateTaskbarLayout().Items {
		if x >= item.X && x < item.X+item.Width {
			return item.WindowID
		}
	}
	return ""
}

// renderTaskbar draws the taskbar band: a separator line and the bar with
// mode pill, minimized-window pills, and system stats.
func (d *Desktop) renderTaskbar() *lipgloss.Layer {
	layout := d.CalculateTaskbarLayout()

	sysInfoStyle := lipgloss.NewStyle().
		Foreground(theme.TaskbarDimmed()).
		MarginRight(2)

	// Mode pill on the left
	accent := theme.TaskbarAccent()
	if d.SceneMode {
		accent = theme.TaskbarHighlight()
	}

	styledModeText := lipgloss.NewStyle().Foreground(accent).Render(config.GetTaskbarPillLeft()) +
		lipgloss.NewStyle().
			Background(accent).
			Foreground(theme.TaskbarActiveFg()).
			Bold(true).
			Render(layout.ModeLabel) +
		lipgloss.NewStyle().Foreground(accent).Render(config.GetTaskbarPillRight())

	styledInfoText := lipgloss.NewStyle().
		Foreground(theme.TaskbarFg()).
		Bold(true).
		Render(layout.InfoText)

	// Minimized-window pills in the center
	now := time.Now()
	minimized := d.Manager.MinimizedWindows()
	flashing := make(map[string]bool, len(minimized))
	for _, w := range minimized {
		if now.Sub(w.MinimizedAt) < minimizeFlashDuration {
			flashing[w.ID] = true
		}
	}

	var itemsStr string
	for i, item := range layout.Items {
		bg := theme.TaskbarBg()
		fg := theme.TaskbarFg()
		if flashing[item.WindowID] {
			bg = theme.TaskbarHighlight()
			fg = lipgloss.Color("#000000")
		}

		leftCircle := lipgloss.NewStyle().
			Foreground(bg).
			Render(config.GetTaskbarPillLeft())

		nameLabel := lipgloss.NewStyle().
			Background(bg).
			Foreground(fg).
			Bold(flashing[item.WindowID]).
			Render(item.Label)

		rightCircle := lipgloss.NewStyle().
			Foreground(bg).
			Render(config.GetTaskbarPillRight())

		if i > 0 {
			itemsStr += " "
		}
		itemsStr += leftCircle + nameLabel + rightCircle
	}

	if layout.Truncated > 0 {
		itemsStr += lipgloss.NewStyle().
			Foreground(theme.TaskbarDimmed()).
			Render(truncationMarker)
	}

	leftInfo := lipgloss.JoinHorizontal(lipgloss.Top, styledModeText, styledInfoText)
	rightInfo := sysInfoStyle.Render(layout.RightText)

	actualLeftWidth := lipgloss.Width(leftInfo)
	centerWidth := lipgloss.Width(itemsStr)
	rightWidth := lipgloss.Width(rightInfo)

	availableSpace := d.Width - actualLeftWidth - rightWidth - centerWidth
	leftSpacer := availableSpace / 2
	rightSpacer := availableSpace - leftSpacer
	if leftSpacer < 0 {
		leftSpacer = 0
		rightSpacer = 0
	}
	if rightSpacer < 0 {
		rightSpacer = 0
	}

	bar := lipgloss.JoinHorizontal(
		lipgloss.Top,
		leftInfo,
		lipgloss.NewStyle().Width(leftSpacer).Render(""),
		lipgloss.NewStyle().Render(itemsStr),
		lipgloss.NewStyle().Width(rightSpacer).Render(""),
		rightInfo,
	)

	separator := lipgloss.NewStyle().
		Width(d.Width).
		Foreground(theme.TaskbarSeparator()).
		Render(strings.Repeat(config.GetSeparatorChar(), max(d.Width, 0)))

	parts := []string{separator, bar}
	if config.TaskbarPosition == "top" {
		parts[0], parts[1] = parts[1], parts[0]
	}

	full := lipgloss.JoinVertical(lipgloss.Left, parts...)
	return lipgloss.NewLayer(full).X(0).Y(d.taskbarY()).Z(config.ZIndexTaskbar).ID("taskbar")
}
