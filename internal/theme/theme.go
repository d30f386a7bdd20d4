// Package theme resolves the desktop palette. Without a configured theme
// every accessor returns a fixed fallback color; with one, the named
// bubbletint tint fills the ANSI slots and the fallbacks only cover
// slots the tint leaves empty.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
	tint "github.com/lrstanley/bubbletint/v2"
)

var enabled bool

// Initialize selects the active tint. An empty name turns tinting off;
// an unknown name falls back to the registry default. Safe to call again
// on config reload.
func Initialize(themeName string) error {
	if themeName == "" {
		enabled = false
		return nil
	}
	enabled = true
	tint.NewDefaultRegistry()
	if ok := tint.SetTintID(themeName); !ok {
		tint.SetTintID("default")
	}
	return nil
}

// tinted resolves a color through the active tint, or the fallback when
// tinting is off.
func tinted(fallback string, slot func(*tint.Tint) color.Color) color.Color {
	if enabled {
		if t := tint.Current(); t != nil {
			return slot(t)
		}
	}
	return lipgloss.Color(fallback)
}

// Window borders. Locked wins over focused so a refused drag is visible
// at a glance.

func BorderUnfocused() color.Color {
	return tinted("#FAAAAA", func(t *tint.Tint) color.Color { return t.Red })
}

func BorderFocused() color.Color {
	return tinted("#AFFFFF", func(t *tint.Tint) color.Color { return t.BrightCyan })
}

func BorderLocked() color.Color {
	return tinted("#cdcd00", func(t *tint.Tint) color.Color { return t.Yellow })
}

func BorderDocked() color.Color {
	return tinted("#5c5cff", func(t *tint.Tint) color.Color { return t.BrightBlue })
}

// ZoneHint highlights a dock zone while a drag hovers over it.
func ZoneHint() color.Color {
	return tinted("#4865f2", func(t *tint.Tint) color.Color { return t.BrightBlue })
}

// ButtonFg is the glyph color on window buttons and title badges, drawn
// over the border color.
func ButtonFg() color.Color {
	return tinted("#000000", func(t *tint.Tint) color.Color { return t.Black })
}

// Status line.

func StatusBg() color.Color { return lipgloss.Color("#1a1a2e") }
func StatusFg() color.Color { return lipgloss.Color("#a0a0b0") }

func StatusPrefixActive() color.Color {
	return tinted("#cd0000", func(t *tint.Tint) color.Color { return t.Red })
}

func StatusPrefixFg() color.Color { return lipgloss.Color("#ffffff") }

// Welcome splash.

func WelcomeTitle() color.Color     { return lipgloss.Color("14") }
func WelcomeSubtitle() color.Color  { return lipgloss.Color("11") }
func WelcomeText() color.Color      { return lipgloss.Color("7") }
func WelcomeHighlight() color.Color { return lipgloss.Color("6") }

// Log viewer.

func LogViewerTitle() color.Color { return lipgloss.Color("14") }
func LogViewerError() color.Color { return lipgloss.Color("9") }
func LogViewerWarn() color.Color  { return lipgloss.Color("11") }
func LogViewerInfo() color.Color  { return lipgloss.Color("10") }
func LogViewerBg() color.Color    { return lipgloss.Color("#1a1a2a") }

// Preset picker.

func PresetTitle() color.Color { return lipgloss.Color("14") }

func PresetSelectedBg() color.Color {
	return tinted("#4865f2", func(t *tint.Tint) color.Color { return t.BrightBlue })
}

func PresetSelectedFg() color.Color  { return lipgloss.Color("#ffffff") }
func PresetDescription() color.Color { return lipgloss.Color("8") }

// Notification toasts, one accent per severity.

func NotificationError() color.Color {
	return tinted("#cd0000", func(t *tint.Tint) color.Color { return t.Red })
}

func NotificationWarning() color.Color {
	return tinted("#cdcd00", func(t *tint.Tint) color.Color { return t.Yellow })
}

func NotificationSuccess() color.Color {
	return tinted("#00cd00", func(t *tint.Tint) color.Color { return t.Green })
}

func NotificationInfo() color.Color {
	return tinted("#0000ee", func(t *tint.Tint) color.Color { return t.Blue })
}

func NotificationBg() color.Color {
	return tinted("#000000", func(t *tint.Tint) color.Color { return t.Bg })
}

// Taskbar.

func TaskbarBg() color.Color        { return lipgloss.Color("#2a2a3e") }
func TaskbarFg() color.Color        { return lipgloss.Color("#a0a0a8") }
func TaskbarActiveFg() color.Color  { return lipgloss.Color("#ffffff") }
func TaskbarDimmed() color.Color    { return lipgloss.Color("#808090") }
func TaskbarAccent() color.Color    { return lipgloss.Color("#a0a0b0") }
func TaskbarSeparator() color.Color { return lipgloss.Color("#303040") }

// TaskbarHighlight flashes a freshly minimized item so the eye can follow
// where the window went.
func TaskbarHighlight() color.Color {
	return tinted("#00ff00", func(t *tint.Tint) color.Color { return t.BrightGreen })
}

// Help overlay.

func HelpKeyBadge() color.Color    { return lipgloss.Color("5") }
func HelpKeyBadgeBg() color.Color  { return lipgloss.Color("0") }
func HelpGray() color.Color        { return lipgloss.Color("8") }
func HelpBorder() color.Color      { return lipgloss.Color("14") }
func HelpSearchFg() color.Color    { return lipgloss.Color("11") }
func HelpSearchBg() color.Color    { return lipgloss.Color("15") }
func HelpTableHeader() color.Color { return lipgloss.Color("12") }
func HelpTableRow() color.Color    { return lipgloss.Color("8") }
func HelpTabActive() color.Color   { return lipgloss.Color("12") }
