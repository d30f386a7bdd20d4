package app

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/daddyholnes/podplay-sanctuary-build/internal/config"
	"github.com/daddyholnes/podplay-sanctuary-build/internal/theme"
	"github.com/daddyholnes/podplay-sanctuary-build/internal/wm"
)

// renderOverlays builds the layers that sit above the windows: status
// indicator, splash screen, dialogs, and notifications. Layer order does
// not matter here, the Z bands decide stacking.
func (d *Desktop) renderOverlays() []*lipgloss.Layer {
	var layers []*lipgloss.Layer

	if layer := d.renderStatus(); layer != nil {
		layers = append(layers, layer)
	}

	// Splash when the desktop is empty
	if len(d.Manager.VisibleWindows()) == 0 {
		layers = append(layers, d.renderSplash())
	}

	// Dock zone hint while a drag hovers near an edge
	if d.Dragging && d.HoverZone != wm.DockNone {
		layers = append(layers, d.renderZoneHint())
	}

	if d.ShowQuitConfirm {
		quitContent, width, height := d.renderQuitConfirmDialog()
		x := (d.Width - width) / 2
		y := (d.Height - height) / 2
		layers = append(layers, lipgloss.NewLayer(quitContent).
			X(x).Y(y).Z(config.ZIndexHelp+1).ID("quit-confirm"))
	}

	if d.ShowHelp {
		helpContent := d.RenderHelpMenu(d.Width, d.Height)
		layers = append(layers, lipgloss.NewLayer(helpContent).
			X(0).Y(0).Z(config.ZIndexHelp).ID("help"))
	}

	if d.ShowLogs {
		layers = append(layers, d.renderLogViewer())
	}

	if d.ShowPresets {
		layers = append(layers, d.renderPresetPicker())
	}

	// Which-key hint once the leader key has been held past the delay
	if d.PrefixActive && !d.ShowHelp && time.Since(d.LastPrefixTime) > config.WhichKeyDelay {
		layers = append(layers, d.renderWhichKey())
	}

	if len(d.Notifications) > 0 {
		layers = append(layers, d.renderNotifications()...)
	}

	return layers
}

// statusRow puts the clock in the corner the taskbar does not occupy.
func (d *Desktop) statusRow() int {
	if config.TaskbarPosition == "top" {
		return max(d.Height-1, 0)
	}
	return 0
}

// renderStatus draws the clock plus prefix and scene indicators. Returns
// nil when there is nothing to show.
func (d *Desktop) renderStatus() *lipgloss.Layer {
	var parts []string

	if d.PrefixActive {
		parts = append(parts, "PREFIX")
	}
	if d.SceneMode && d.ScenePlayer != nil {
		parts = append(parts, d.ScenePlayer.PlaybackStatus())
		if !d.ScenePlayer.IsFinished() {
			parts = append(parts, d.ScenePlayer.CommandStr())
		}
	}
	if !config.HideClock {
		parts = append(parts, time.Now().Format("15:04:05"))
	}
	if len(parts) == 0 {
		return nil
	}

	statusText := strings.Join(parts, " | ")

	statusStyle := lipgloss.NewStyle().
		Foreground(theme.StatusFg()).
		Bold(true).
		Padding(0, 1)

	// The prefix state overrides the palette so an armed leader key is
	// impossible to miss
	if d.PrefixActive {
		statusStyle = statusStyle.
			Background(theme.StatusPrefixActive()).
			Foreground(theme.StatusPrefixFg())
	} else {
		statusStyle = statusStyle.
			Background(theme.StatusBg())
	}

	return lipgloss.NewLayer(statusStyle.Render(statusText)).
		X(1).
		Y(d.statusRow()).
		Z(config.ZIndexStatus).
		ID("status")
}

// renderSplash draws the banner shown when no windows are open.
func (d *Desktop) renderSplash() *lipgloss.Layer {
	asciiArt := ` ████  ███  █   █  ████ █████ █   █  ███  ████  █   █
█     █   █ ██  █ █       █   █   █ █   █ █   █  █ █
 ███  █████ █ █ █ █       █   █   █ █████ ████    █
    █ █   █ █  ██ █       █   █   █ █   █ █  █    █
████  █   █ █   █  ████   █    ███  █   █ █   █   █`

	title := lipgloss.NewStyle().
		Foreground(theme.WelcomeTitle()).
		Bold(true).
		Render(asciiArt)

	// The banner is 54 columns; small terminals get the plain name
	if d.Width < 62 {
		title = lipgloss.NewStyle().
			Foreground(theme.WelcomeTitle()).
			Bold(true).
			Render("SANCTUARY")
	}

	subtitle := lipgloss.NewStyle().
		Foreground(theme.WelcomeSubtitle()).
		Render("a calm little desktop")

	instruction := lipgloss.NewStyle().
		Foreground(theme.WelcomeText()).
		Render("Press 'n' to open a window, '?' for help")

	content := lipgloss.JoinVertical(lipgloss.Center,
		title,
		"",
		subtitle,
		"",
		instruction,
	)

	boxStyle := lipgloss.NewStyle().
		Border(getBorder()).
		BorderForeground(theme.WelcomeHighlight()).
		Padding(1, 2)

	centered := lipgloss.Place(
		d.Width, d.Height,
		lipgloss.Center, lipgloss.Center,
		boxStyle.Render(content),
	)

	return lipgloss.NewLayer(centered).X(0).Y(0).Z(1).ID("splash")
}

// renderZoneHint outlines the strip a drop would dock the window into.
func (d *Desktop) renderZoneHint() *lipgloss.Layer {
	frame := d.Manager.ZoneFrame(d.HoverZone)

	label := lipgloss.NewStyle().
		Foreground(theme.ZoneHint()).
		Bold(true).
		Render("dock " + d.HoverZone.String())

	box := lipgloss.NewStyle().
		Width(frame.Width).
		Height(frame.Height).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Border(getBorder()).
		BorderForeground(theme.ZoneHint()).
		Render(label)

	return lipgloss.NewLayer(box).
		X(frame.X).
		Y(frame.Y + d.topMargin()).
		Z(config.ZIndexZoneHint).
		ID("zone-hint")
}

// renderQuitConfirmDialog returns the dialog box and its dimensions.
func (d *Desktop) renderQuitConfirmDialog() (string, int, int) {
	borderColor := theme.HelpBorder()
	selectedColor := theme.HelpTabActive()
	unselectedColor := theme.HelpGray()

	title := lipgloss.NewStyle().
		Foreground(selectedColor).
		Bold(true).
		Render("Quit Sanctuary?")

	yesButtonContent := "yes"
	noButtonContent := "no"

	var yesButton, noButton string

	if d.QuitConfirmSelection == 0 {
		yesButton = lipgloss.NewStyle().
			Foreground(selectedColor).
			Bold(true).
			Border(lipgloss.NormalBorder()).
			BorderForeground(selectedColor).
			Padding(0, 1).
			Render(yesButtonContent)

		noButton = lipgloss.NewStyle().
			Foreground(unselectedColor).
			Border(lipgloss.NormalBorder()).
			BorderForeground(unselectedColor).
			Padding(0, 1).
			Render(noButtonContent)
	} else {
		yesButton = lipgloss.NewStyle().
			Foreground(unselectedColor).
			Border(lipgloss.NormalBorder()).
			BorderForeground(unselectedColor).
			Padding(0, 1).
			Render(yesButtonContent)

		noButton = lipgloss.NewStyle().
			Foreground(selectedColor).
			Bold(true).
			Border(lipgloss.NormalBorder()).
			BorderForeground(selectedColor).
			Padding(0, 1).
			Render(noButtonContent)
	}

	buttonRow := lipgloss.JoinHorizontal(lipgloss.Center, yesButton, "   ", noButton)

	dialogContent := lipgloss.JoinVertical(
		lipgloss.Center,
		title,
		"",
		buttonRow,
	)

	dialogBox := lipgloss.NewStyle().
		Border(getBorder()).
		BorderForeground(borderColor).
		Padding(1, 3).
		Render(dialogContent)

	return dialogBox, lipgloss.Width(dialogBox), lipgloss.Height(dialogBox)
}

// renderLogViewer draws the scrollable log overlay. The pagination math
// must stay in step with logsPerPage, which the scroll handlers use.
func (d *Desktop) renderLogViewer() *lipgloss.Layer {
	logTitle := lipgloss.NewStyle().
		Foreground(theme.LogViewerTitle()).
		Bold(true).
		Render("Event Log")

	totalLogs := len(d.LogMessages)
	logsPerPage := d.logsPerPage(totalLogs)

	maxScroll := totalLogs - logsPerPage
	if maxScroll < 0 {
		maxScroll = 0
	}
	if d.LogScrollOffset > maxScroll {
		d.LogScrollOffset = maxScroll
	}
	if d.LogScrollOffset < 0 {
		d.LogScrollOffset = 0
	}

	var logLines []string
	logLines = append(logLines, logTitle)
	logLines = append(logLines, "")

	startIdx := d.LogScrollOffset
	displayCount := 0
	for i := startIdx; i < len(d.LogMessages) && displayCount < logsPerPage; i++ {
		msg := d.LogMessages[i]

		var levelColor color.Color
		switch msg.Level {
		case "ERROR":
			levelColor = theme.LogViewerError()
		case "WARN":
			levelColor = theme.LogViewerWarn()
		default:
			levelColor = theme.LogViewerInfo()
		}

		timeStr := msg.Time.Format("15:04:05")
		levelStr := lipgloss.NewStyle().
			Foreground(levelColor).
			Render(fmt.Sprintf("[%s]", msg.Level))

		logLines = append(logLines, fmt.Sprintf("%s %s %s", timeStr, levelStr, msg.Message))
		displayCount++
	}

	if maxScroll > 0 {
		scrollInfo := fmt.Sprintf("Showing %d-%d of %d logs (↑/↓ to scroll)",
			startIdx+1, startIdx+displayCount, len(d.LogMessages))
		logLines = append(logLines, "")
		logLines = append(logLines, lipgloss.NewStyle().
			Foreground(theme.HelpGray()).
			Render(scrollInfo))
	}

	logLines = append(logLines, "")
	logLines = append(logLines, lipgloss.NewStyle().
		Foreground(theme.HelpGray()).
		Render("Press 'q'/'esc' to exit, j/k or ↑/↓ to scroll, g/G for first/last"))

	logContent := strings.Join(logLines, "\n")

	logBox := lipgloss.NewStyle().
		Border(getBorder()).
		BorderForeground(theme.LogViewerTitle()).
		Padding(1, 2).
		Width(80).
		Background(theme.LogViewerBg()).
		Render(logContent)

	centeredLogs := lipgloss.Place(d.Width, d.Height,
		lipgloss.Center, lipgloss.Center, logBox)

	return lipgloss.NewLayer(centeredLogs).
		X(0).Y(0).Z(config.ZIndexLogs).ID("logs")
}

// renderPresetPicker draws the layout preset list with the current
// selection highlighted.
func (d *Desktop) renderPresetPicker() *lipgloss.Layer {
	title := lipgloss.NewStyle().
		Foreground(theme.PresetTitle()).
		Bold(true).
		Render("Layout Presets")

	var lines []string
	lines = append(lines, title)
	lines = append(lines, "")

	if len(d.Presets) == 0 {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.HelpGray()).
			Italic(true).
			Render("No presets found"))
	}

	for i, preset := range d.Presets {
		name := preset.Name
		desc := preset.Description

		var line string
		if i == d.PresetSelection {
			line = lipgloss.NewStyle().
				Background(theme.PresetSelectedBg()).
				Foreground(theme.PresetSelectedFg()).
				Bold(true).
				Render(" " + name + " ")
		} else {
			line = lipgloss.NewStyle().
				Render(" " + name + " ")
		}

		if desc != "" {
			line += lipgloss.NewStyle().
				Foreground(theme.PresetDescription()).
				Render("  " + desc)
		}

		lines = append(lines, line)
	}

	lines = append(lines, "")
	lines = append(lines, lipgloss.NewStyle().
		Foreground(theme.HelpGray()).
		Render("↑/↓ select, Enter apply, Esc cancel"))

	content := strings.Join(lines, "\n")

	box := lipgloss.NewStyle().
		Border(getBorder()).
		BorderForeground(theme.PresetTitle()).
		Padding(1, 2).
		Render(content)

	centered := lipgloss.Place(d.Width, d.Height,
		lipgloss.Center, lipgloss.Center, box)

	return lipgloss.NewLayer(centered).
		X(0).Y(0).Z(config.ZIndexPresets).ID("presets")
}

// renderWhichKey draws the leader key follow-up table in the bottom-right
// corner.
func (d *Desktop) renderWhichKey() *lipgloss.Layer {
	keyStyle := lipgloss.NewStyle().
		Foreground(theme.HelpKeyBadge()).
		Bold(true)
	descStyle := lipgloss.NewStyle().
		Foreground(theme.HelpTableRow())

	bindings := config.GetPrefixKeybindings()

	var helpLines []string
	helpLines = append(helpLines, keyStyle.Render("Prefix Commands:"))
	helpLines = append(helpLines, "")

	maxKeyLen := 0
	for _, binding := range bindings {
		if len(binding.Key) > maxKeyLen {
			maxKeyLen = len(binding.Key)
		}
	}

	for _, binding := range bindings {
		padding := maxKeyLen - len(binding.Key) + 2
		if padding < 2 {
			padding = 2
		}
		helpLines = append(helpLines, keyStyle.Render(binding.Key)+strings.Repeat(" ", padding)+descStyle.Render(binding.Description))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, helpLines...)

	overlayStyle := lipgloss.NewStyle().
		Border(getBorder()).
		BorderForeground(theme.StatusPrefixActive()).
		Background(theme.StatusBg()).
		Padding(1, 2)

	rendered := overlayStyle.Render(content)

	overlayWidth := lipgloss.Width(rendered)
	overlayHeight := lipgloss.Height(rendered)
	overlayX := max(d.Width-overlayWidth-2, 0)
	overlayY := max(d.Height-overlayHeight-config.TaskbarHeight-1, 0)

	return lipgloss.NewLayer(rendered).
		X(overlayX).
		Y(overlayY).
		Z(config.ZIndexHelp).
		ID("whichkey")
}

// renderNotifications stacks the active toasts in the top-right corner.
// At most three are visible; expiring ones keep rendering through the
// fade-out tail.
func (d *Desktop) renderNotifications() []*lipgloss.Layer {
	d.CleanupNotifications()

	var layers []*lipgloss.Layer
	notifY := 1
	notifSpacing := 4
	for i, notif := range d.Notifications {
		if i >= 3 {
			break
		}

		timeLeft := notif.Duration - time.Since(notif.StartTime)
		if timeLeft <= 0 {
			continue
		}

		var bgColor, borderColor, fgColor color.Color
		var icon string
		switch notif.Type {
		case "error":
			borderColor = theme.NotificationError()
			fgColor = theme.NotificationError()
			icon = "✕"
		case "warning":
			borderColor = theme.NotificationWarning()
			fgColor = theme.NotificationWarning()
			icon = "⚠"
		case "success":
			borderColor = theme.NotificationSuccess()
			fgColor = theme.NotificationSuccess()
			icon = "✓"
		default:
			borderColor = theme.NotificationInfo()
			fgColor = theme.NotificationInfo()
			icon = "ℹ"
		}
		bgColor = theme.NotificationBg()
		if config.UseASCIIOnly {
			switch notif.Type {
			case "error":
				icon = "x"
			case "warning":
				icon = "!"
			case "success":
				icon = "+"
			default:
				icon = "i"
			}
		}

		// Dim instead of alpha-fading during the expiry tail; terminal
		// cells have no opacity. Skipped when animations are off.
		if config.GetFastAnimationDuration() > 0 && timeLeft < config.NotificationFadeOutDuration {
			fgColor = theme.HelpGray()
			borderColor = theme.HelpGray()
		}

		// Dynamic width bounded for readability
		maxNotifWidth := min(max(d.Width-8, 20), 60)

		message := notif.Message
		maxMessageLen := maxNotifWidth - 8
		if maxMessageLen > 3 && len(message) > maxMessageLen {
			message = message[:maxMessageLen-3] + "..."
		}

		notifContent := fmt.Sprintf(" %s  %s ", icon, message)

		notifBox := lipgloss.NewStyle().
			Border(getBorder()).
			BorderForeground(borderColor).
			Background(bgColor).
			Foreground(fgColor).
			Padding(0, 1).
			Bold(true).
			MaxWidth(maxNotifWidth).
			Render(notifContent)

		notifX := max(d.Width-lipgloss.Width(notifBox)-2, 0)
		currentY := notifY + (i * notifSpacing)

		layers = append(layers, lipgloss.NewLayer(notifBox).
			X(notifX).Y(currentY).Z(config.ZIndexNotifications).
			ID(fmt.Sprintf("notif-%s", notif.ID)))
	}

	return layers
}
