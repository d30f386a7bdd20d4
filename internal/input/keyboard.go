package input

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/daddyholnes/podplay-sanctuary-build/internal/app"
	"github.com/daddyholnes/podplay-sanctuary-build/internal/wm"
)

// HandleKeyPress resolves a key press against the desktop's input layers in
// priority order: rename capture, modal overlays, the leader prefix, then
// the configurable keybind registry.
func HandleKeyPress(msg tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	// Rename capture owns the keyboard while active
	if d.RenamingWindow {
		return handleRenameKey(msg, d)
	}

	key := msg.String()

	if d.ShowQuitConfirm {
		return handleQuitConfirmKey(key, d)
	}
	if d.ShowHelp {
		return handleHelpKey(key, d)
	}
	if d.ShowLogs {
		return handleLogViewerKey(key, d)
	}
	if d.ShowPresets {
		return handlePresetPickerKey(key, d)
	}

	// Space pauses and resumes a playing scene; every other key stays live
	if d.SceneMode && d.ScenePlayer != nil && (key == "space" || key == " ") {
		d.ScenePlayer.SetPaused(!d.ScenePlayer.IsPaused())
		return d, nil
	}

	// The leader key arms the prefix layer; pressing it again disarms
	if key == d.Config.Keybindings.LeaderKey {
		d.PrefixActive = !d.PrefixActive
		if d.PrefixActive {
			d.LastPrefixTime = time.Now()
		}
		return d, nil
	}

	if d.PrefixActive {
		return handlePrefixCommand(msg, d)
	}

	// Config-driven dispatch
	if d.KeybindRegistry != nil {
		if action := d.KeybindRegistry.GetAction(key); action != "" {
			dispatcher := GetDispatcher()
			if dispatcher.HasAction(action) {
				return dispatcher.Dispatch(action, msg, d)
			}
		}
	}

	// Emergency quit bypasses the config system
	if key == "ctrl+c" {
		return d, tea.Quit
	}

	return d, nil
}

// handleRenameKey edits the rename buffer until it is committed or
// abandoned.
func handleRenameKey(msg tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	key := msg.String()
	switch key {
	case "enter":
		d.CommitRename()
	case "esc":
		d.CancelRename()
	case "backspace":
		if len(d.RenameBuffer) > 0 {
			d.RenameBuffer = d.RenameBuffer[:len(d.RenameBuffer)-1]
		}
	default:
		if len(key) == 1 && key[0] >= 32 && key[0] < 127 {
			d.RenameBuffer += key
		}
	}
	return d, nil
}

// handleQuitConfirmKey drives the yes/no quit dialog.
func handleQuitConfirmKey(key string, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	switch key {
	case "y", "Y":
		d.ShowQuitConfirm = false
		return d, tea.Quit
	case "n", "N", "esc":
		d.ShowQuitConfirm = false
	case "left", "right", "tab", "h", "l":
		d.QuitConfirmSelection = 1 - d.QuitConfirmSelection
	case "enter":
		d.ShowQuitConfirm = false
		if d.QuitConfirmSelection == 0 {
			return d, tea.Quit
		}
	}
	return d, nil
}

// handleHelpKey drives the help overlay: scrolling, category tabs, and the
// fuzzy search line.
func handleHelpKey(key string, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	// Scrolling works in both views. Rows come in entry+gap pairs.
	switch key {
	case "up":
		d.HelpScrollOffset = max(d.HelpScrollOffset-2, 0)
		return d, nil
	case "down":
		d.HelpScrollOffset += 2
		return d, nil
	}

	if d.HelpSearchMode {
		switch key {
		case "esc", "/":
			// Leave search before the overlay itself closes
			d.HelpSearchMode = false
			d.HelpSearchQuery = ""
			d.HelpScrollOffset = 0
		case "backspace":
			if len(d.HelpSearchQuery) > 0 {
				d.HelpSearchQuery = d.HelpSearchQuery[:len(d.HelpSearchQuery)-1]
				d.HelpScrollOffset = 0
			}
		default:
			if len(key) == 1 && key[0] >= 32 && key[0] <= 126 {
				d.HelpSearchQuery += key
				d.HelpScrollOffset = 0
			}
		}
		return d, nil
	}

	switch key {
	case "esc", "q", "?":
		d.ShowHelp = false
		d.HelpScrollOffset = 0
		d.HelpCategory = -1
	case "left":
		d.HelpScrollOffset = 0
		if d.HelpCategory > 0 {
			d.HelpCategory--
		}
	case "right":
		d.HelpScrollOffset = 0
		categories := app.GetHelpCategories(d.KeybindRegistry, d.Config.Keybindings.LeaderKey)
		if d.HelpCategory < len(categories)-1 {
			d.HelpCategory++
		}
	case "/":
		d.HelpSearchMode = true
		d.HelpScrollOffset = 0
	}
	return d, nil
}

// handleLogViewerKey drives the log overlay. The capacity math mirrors the
// viewer's pagination so the scroll bounds match what is on screen.
func handleLogViewerKey(key string, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	if key == "q" || key == "esc" {
		d.ShowLogs = false
		d.LogScrollOffset = 0
		return d, nil
	}

	maxDisplayHeight := max(d.Height-8, 8)
	totalLogs := len(d.LogMessages)
	fixedLines := 4
	if totalLogs > maxDisplayHeight-fixedLines {
		fixedLines = 6
	}
	logsPerPage := max(maxDisplayHeight-fixedLines, 1)
	maxScroll := max(totalLogs-logsPerPage, 0)
	halfPage := max(logsPerPage/2, 1)

	switch key {
	case "up", "k":
		if d.LogScrollOffset > 0 {
			d.LogScrollOffset--
		}
	case "down", "j":
		if d.LogScrollOffset < maxScroll {
			d.LogScrollOffset++
		}
	case "pgup", "ctrl+u":
		d.LogScrollOffset = max(d.LogScrollOffset-halfPage, 0)
	case "pgdown", "ctrl+d":
		d.LogScrollOffset = min(d.LogScrollOffset+halfPage, maxScroll)
	case "g", "home":
		d.LogScrollOffset = 0
	case "G", "end":
		d.LogScrollOffset = maxScroll
	}
	return d, nil
}

// handlePresetPickerKey drives the layout preset picker.
func handlePresetPickerKey(key string, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	switch key {
	case "esc", "q", "p":
		d.ShowPresets = false
	case "up", "k":
		if d.PresetSelection > 0 {
			d.PresetSelection--
		}
	case "down", "j":
		if d.PresetSelection < len(d.Presets)-1 {
			d.PresetSelection++
		}
	case "enter":
		d.ApplySelectedPreset()
	}
	return d, nil
}

// handlePrefixCommand resolves the follow-up key after the leader. The
// prefix disarms no matter what was pressed.
func handlePrefixCommand(msg tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	d.PrefixActive = false

	key := msg.String()
	switch key {
	case "n":
		d.OpenDefaultWindow()
	case "x":
		if w := d.Manager.FocusedWindow(); w != nil {
			d.Manager.CloseWindow(w.ID)
		}
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		d.FocusNth(int(key[0] - '0'))
	case "c":
		d.Manager.ArrangeWindows(wm.ArrangeCascade)
	case "t":
		d.Manager.ArrangeWindows(wm.ArrangeTile)
	case "s":
		d.Manager.ArrangeWindows(wm.ArrangeStack)
	case "p":
		d.ShowPresets = true
		d.PresetSelection = 0
	case "q":
		return handleQuit(msg, d)
	case "esc":
		// Cancelled
	}
	return d, nil
}
