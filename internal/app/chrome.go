package app

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/daddyholnes/podplay-sanctuary-build/internal/config"
	"github.com/daddyholnes/podplay-sanctuary-build/internal/pool"
	"github.com/daddyholnes/podplay-sanctuary-build/internal/theme"
	"github.com/daddyholnes/podplay-sanctuary-build/internal/wm"
)

// badgeStyle styles text drawn on a border-colored pill. Built per call so
// a live theme reload recolors the chrome.
func badgeStyle(bg color.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.ButtonFg()).Background(bg)
}

// getBorder returns the border set matching the current configuration.
func getBorder() lipgloss.Border {
	return config.GetBorderForStyle()
}

// RightString draws a top border line with str right-aligned against the
// corner. str may be empty, which yields a plain border.
func RightString(str string, width int, color color.Color) string {
	spaces := width - lipgloss.Width(str)
	style := pool.GetStyle()
	defer pool.PutStyle(style)
	fg := style.Foreground(color)

	if spaces < 0 {
		return fg.Render(config.GetWindowBorderTopLeft() + strings.Repeat(config.GetWindowBorderTop(), max(width, 0)) + config.GetWindowBorderTopRight())
	}

	return fg.Render(config.GetWindowBorderTopLeft()+strings.Repeat(config.GetWindowBorderTop(), spaces)) +
		str +
		fg.Render(config.GetWindowBorderTopRight())
}

// makeRounded wraps content in pill caps drawn in the border color.
func makeRounded(content string, color color.Color) string {
	style := pool.GetStyle()
	defer pool.PutStyle(style)
	render := style.Foreground(color).Render
	return render(config.GetWindowPillLeft()) + content + render(config.GetWindowPillRight())
}

// decorateWindow replaces the top and bottom border lines of a rendered box
// with the window chrome: control buttons on the top edge and a centered
// title badge on the bottom edge. content must come from a lipgloss box
// rendered with BorderTop(false) at the window's width.
func decorateWindow(content string, color color.Color, window *wm.Window, isRenaming bool, renameBuffer string) string {
	width := max(
		// Width of the border interior, never negative
		lipgloss.Width(content)-2, 0)

	// Window control buttons, honoring the per-window flags
	var border string
	if !config.HideWindowButtons {
		buttonStyle := badgeStyle(color)

		var buttons string
		if window.Flags.Minimizable {
			buttons += buttonStyle.Render(config.GetWindowButtonMinimize())
		}
		if window.Flags.Maximizable && window.Zone == wm.DockNone {
			buttons += buttonStyle.Render(config.GetWindowButtonMaximize())
		}
		if window.Flags.Closable {
			buttons += buttonStyle.Render(config.GetWindowButtonClose())
		}
		if buttons != "" {
			border = makeRounded(buttons, color)
		}
	}
	centered := RightString(border, width, color)

	// Bottom border with the title badge
	style := pool.GetStyle()
	defer pool.PutStyle(style)
	bottomBorderStyle := style.Foreground(color)

	windowName := window.Title
	if window.Icon != "" {
		windowName = window.Icon + " " + windowName
	}
	if window.Locked {
		windowName = config.GetLockGlyph() + " " + windowName
	}
	if isRenaming {
		windowName = renameBuffer + "_"
	}

	var bottomBorder string
	if windowName != "" {
		// Truncate if too long, leaving space for the pill caps
		maxNameLen := width - 6
		if maxNameLen > 0 && len(windowName) > maxNameLen {
			if maxNameLen > 3 {
				windowName = windowName[:maxNameLen-3] + "..."
			} else {
				windowName = "..."
			}
		}

		nameStyle := badgeStyle(color)

		leftCircle := bottomBorderStyle.Render(config.GetWindowPillLeft())
		nameText := nameStyle.Render(" " + windowName + " ")
		rightCircle := bottomBorderStyle.Render(config.GetWindowPillRight())
		nameBadge := leftCircle + nameText + rightCircle

		badgeWidth := lipgloss.Width(nameBadge)
		totalPadding := width - badgeWidth

		if totalPadding < 0 {
			// Badge wider than the window: fall back to a plain border
			bottomBorder = bottomBorderStyle.Render(config.GetWindowBorderBottomLeft() + strings.Repeat(config.GetWindowBorderBottom(), width) + config.GetWindowBorderBottomRight())
		} else {
			leftPadding := totalPadding / 2
			rightPadding := totalPadding - leftPadding

			bottomBorder = bottomBorderStyle.Render(config.GetWindowBorderBottomLeft()+strings.Repeat(config.GetWindowBorderBottom(), leftPadding)) +
				nameBadge +
				bottomBorderStyle.Render(strings.Repeat(config.GetWindowBorderBottom(), rightPadding)+config.GetWindowBorderBottomRight())
		}
	} else {
		bottomBorder = bottomBorderStyle.Render(config.GetWindowBorderBottomLeft() + strings.Repeat(config.GetWindowBorderBottom(), width) + config.GetWindowBorderBottomRight())
	}

	// Replace the last line (the box's own bottom border) with ours and
	// prepend the custom top line. String concatenation beats JoinVertical
	// here, this runs for every window every frame.
	lines := strings.Split(content, "\n")
	if len(lines) > 0 {
		lines[len(lines)-1] = bottomBorder
	}
	return centered + "\n" + strings.Join(lines, "\n")
}

// WindowButtonAt reports which control button sits at column x on the
// window's top border, in window-area coordinates: "minimize", "maximize",
// "close", or "" on a miss. The walk mirrors decorateWindow, which renders
// the buttons right-aligned in a pill whose right cap ends one cell inside
// the top-right corner.
func WindowButtonAt(w *wm.Window, x int) string {
	if config.HideWindowButtons {
		return ""
	}

	var buttons []string
	if w.Flags.Minimizable {
		buttons = append(buttons, "minimize")
	}
	if w.Flags.Maximizable && w.Zone == wm.DockNone {
		buttons = append(buttons, "maximize")
	}
	if w.Flags.Closable {
		buttons = append(buttons, "close")
	}
	if len(buttons) == 0 {
		return ""
	}

	frame := w.Frame()
	capWidth := lipgloss.Width(config.GetWindowPillRight())
	buttonWidth := lipgloss.Width(config.GetWindowButtonClose())

	// A pill wider than the border interior is not drawn at all
	if 2*capWidth+buttonWidth*len(buttons) > frame.Width-2 {
		return ""
	}

	end := frame.X + frame.Width - 2 - capWidth
	start := end - buttonWidth*len(buttons) + 1
	if x < start || x > end {
		return ""
	}
	return buttons[(x-start)/buttonWidth]
}

// borderColorFor picks the border color from the window's state. Locked
// wins over focus so the constraint is visible at a glance.
func (d *Desktop) borderColorFor(window *wm.Window) color.Color {
	focused := d.Manager.FocusedWindow()
	isFocused := focused != nil && focused.ID == window.ID

	switch {
	case window.Locked:
		return theme.BorderLocked()
	case isFocused:
		return theme.BorderFocused()
	case window.Zone != wm.DockNone:
		return theme.BorderDocked()
	default:
		return theme.BorderUnfocused()
	}
}

// clipWindowContent clips a rendered window against the viewport and
// returns the visible region plus the adjusted layer position. Works on
// whole lines and uses the ansi package's width-aware helpers so escape
// sequences survive horizontal cuts.
func clipWindowContent(content string, x, y, viewportWidth, viewportHeight int) (string, int, int) {
	lines := strings.Split(content, "\n")
	windowHeight := len(lines)

	windowWidth := 0
	if len(lines) > 0 {
		windowWidth = ansi.StringWidth(lines[0])
	}

	// Completely off-screen
	if x+windowWidth <= 0 || x >= viewportWidth || y+windowHeight <= 0 || y >= viewportHeight {
		return "", max(x, 0), max(y, 0)
	}

	clipTop := 0
	clipLeft := 0
	finalX := x
	finalY := y

	if y < 0 {
		clipTop = -y
		finalY = 0
	}
	if x < 0 {
		clipLeft = -x
		finalX = 0
	}

	if clipTop >= len(lines) {
		return "", finalX, finalY
	}
	visibleLines := lines[clipTop:]

	maxVisibleLines := viewportHeight - finalY
	if maxVisibleLines < len(visibleLines) {
		visibleLines = visibleLines[:maxVisibleLines]
	}

	// Horizontal clipping only when the window actually crosses an edge
	if clipLeft > 0 || finalX+windowWidth > viewportWidth {
		maxWidth := viewportWidth - finalX
		clippedLines := make([]string, len(visibleLines))

		result := pool.GetStringBuilder()
		defer pool.PutStringBuilder(result)

		for lineIdx, line := range visibleLines {
			lineWidth := ansi.StringWidth(line)

			if clipLeft >= lineWidth {
				clippedLines[lineIdx] = ""
				continue
			}

			// Cut the right side first so the left skip below only walks
			// what remains.
			tempLine := line
			if lineWidth > maxWidth+clipLeft {
				tempLine = ansi.Truncate(line, maxWidth+clipLeft, "")
			}

			if clipLeft > 0 {
				// Skip the first clipLeft columns, copying escape
				// sequences through without counting them.
				result.Reset()
				pos := 0
				skipCount := clipLeft

				runes := []rune(tempLine)
				runeIdx := 0
				for runeIdx < len(runes) {
					if runes[runeIdx] == '\x1b' {
						seqStart := runeIdx
						runeIdx++

						if runeIdx < len(runes) && runes[runeIdx] == '[' {
							runeIdx++
							for runeIdx < len(runes) && (runes[runeIdx] < 0x40 || runes[runeIdx] > 0x7E) {
								runeIdx++
							}
							if runeIdx < len(runes) {
								runeIdx++
							}
						} else if runeIdx < len(runes) && runes[runeIdx] == ']' {
							runeIdx++
							for runeIdx < len(runes) {
								if runes[runeIdx] == '\x07' || (runes[runeIdx] == '\x1b' && runeIdx+1 < len(runes) && runes[runeIdx+1] == '\\') {
									runeIdx++
									if runeIdx < len(runes) && runes[runeIdx-1] == '\x1b' {
										runeIdx++
									}
									break
								}
								runeIdx++
							}
						}

						if pos >= skipCount {
							result.WriteString(string(runes[seqStart:runeIdx]))
						}
						continue
					}

					if pos >= skipCount {
						result.WriteRune(runes[runeIdx])
					}
					pos++
					runeIdx++
				}

				// Reset so styles cut mid-line cannot leak right
				clippedLines[lineIdx] = result.String() + "\x1b[0m"
			} else {
				clippedLines[lineIdx] = tempLine
				if lineWidth > maxWidth {
					clippedLines[lineIdx] += "\x1b[0m"
				}
			}
		}

		return strings.Join(clippedLines, "\n"), finalX, finalY
	}

	return strings.Join(visibleLines, "\n"), finalX, finalY
}
