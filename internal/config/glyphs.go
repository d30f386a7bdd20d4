package config

import "charm.land/lipgloss/v2"

// Glyph accessors for window chrome. Everything routes through these so
// UseASCIIOnly swaps the whole skin in one place.

// GetBorderForStyle returns the lipgloss border matching the configured
// BorderStyle. ASCII mode wins over any configured style.
func GetBorderForStyle() lipgloss.Border {
	if UseASCIIOnly {
		return lipgloss.ASCIIBorder()
	}
	switch BorderStyle {
	case "normal":
		return lipgloss.NormalBorder()
	case "thick":
		return lipgloss.ThickBorder()
	case "double":
		return lipgloss.DoubleBorder()
	case "hidden":
		return lipgloss.HiddenBorder()
	default:
		return lipgloss.RoundedBorder()
	}
}

// GetWindowBorderTop returns the top edge rune of the configured border.
func GetWindowBorderTop() string {
	return GetBorderForStyle().Top
}

// GetWindowBorderTopLeft returns the top-left corner rune.
func GetWindowBorderTopLeft() string {
	return GetBorderForStyle().TopLeft
}

// GetWindowBorderTopRight returns the top-right corner rune.
func GetWindowBorderTopRight() string {
	return GetBorderForStyle().TopRight
}

// GetWindowBorderBottom returns the bottom edge rune.
func GetWindowBorderBottom() string {
	return GetBorderForStyle().Bottom
}

// GetWindowBorderBottomLeft returns the bottom-left corner rune.
func GetWindowBorderBottomLeft() string {
	return GetBorderForStyle().BottomLeft
}

// GetWindowBorderBottomRight returns the bottom-right corner rune.
func GetWindowBorderBottomRight() string {
	return GetBorderForStyle().BottomRight
}

// GetWindowPillLeft returns the left cap of a title bar badge. Empty in
// ASCII mode; callers concatenate, so the badge degrades to a plain label.
func GetWindowPillLeft() string {
	if UseASCIIOnly {
		return ""
	}
	return string(rune(0xe0b6))
}

// GetWindowPillRight returns the right cap of a title bar badge.
func GetWindowPillRight() string {
	if UseASCIIOnly {
		return ""
	}
	return string(rune(0xe0b4))
}

// GetTaskbarPillLeft returns the left cap of a taskbar item.
func GetTaskbarPillLeft() string {
	return GetWindowPillLeft()
}

// GetTaskbarPillRight returns the right cap of a taskbar item.
func GetTaskbarPillRight() string {
	return GetWindowPillRight()
}

// GetWindowButtonClose returns the close button label.
func GetWindowButtonClose() string {
	if UseASCIIOnly {
		return " x "
	}
	return " ✕ "
}

// GetWindowButtonMaximize returns the maximize button label.
func GetWindowButtonMaximize() string {
	if UseASCIIOnly {
		return " o "
	}
	return " □ "
}

// GetWindowButtonMinimize returns the minimize button label.
func GetWindowButtonMinimize() string {
	if UseASCIIOnly {
		return " - "
	}
	return " — "
}

// GetLockGlyph returns the indicator shown on locked windows.
func GetLockGlyph() string {
	if UseASCIIOnly {
		return "*"
	}
	return string(rune(0xf023))
}

// GetSeparatorChar returns the rune repeated to draw the taskbar separator
// line.
func GetSeparatorChar() string {
	if UseASCIIOnly {
		return "-"
	}
	return "─"
}
