package app

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/daddyholnes/podplay-sanctuary-build/internal/config"
	"github.com/daddyholnes/podplay-sanctuary-build/internal/script"
	"github.com/daddyholnes/podplay-sanctuary-build/internal/theme"
)

// TickerMsg is the frame pulse. One timer drives notification expiry,
// sysinfo sampling, and scene playback.
type TickerMsg time.Time

// SceneCommandMsg carries the next scene command to execute. Routing
// commands through the message loop keeps playback ordered with input.
type SceneCommandMsg struct {
	Command *script.Command
}

// ConfigReloadedMsg is sent when the config file changes on disk.
type ConfigReloadedMsg struct {
	Config *config.UserConfig
	Err    error
}

// InputHandler receives every key and mouse message. The input package
// implements it; it cannot be imported from here without a cycle, so main
// registers it through SetInputHandler before the program starts.
type InputHandler func(msg tea.Msg, d *Desktop) (tea.Model, tea.Cmd)

var inputHandler InputHandler

// SetInputHandler installs the input layer. Must run before Update sees
// its first message.
func SetInputHandler(handler InputHandler) {
	inputHandler = handler
}

// Init starts the tick timer that drives playback, stats, and
// notification cleanup.
func (d *Desktop) Init() tea.Cmd {
	return TickCmd()
}

// TickCmd creates a command that generates tick messages at the normal
// frame rate.
func TickCmd() tea.Cmd {
	return tea.Tick(time.Second/config.NormalFPS, func(t time.Time) tea.Msg {
		return TickerMsg(t)
	})
}

// SlowTickCmd creates a command that generates tick messages at a reduced
// rate. Used during drags and resizes to improve mouse responsiveness.
func SlowTickCmd() tea.Cmd {
	return tea.Tick(time.Second/config.InteractionFPS, func(t time.Time) tea.Msg {
		return TickerMsg(t)
	})
}

// Update handles all incoming messages and updates the desktop state.
func (d *Desktop) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickerMsg:
		d.CleanupNotifications()

		// Update system info for the taskbar
		d.UpdateCPUHistory()
		d.UpdateRAMUsage()

		cmds := []tea.Cmd{TickCmd()}
		if d.SceneMode && d.ScenePlayer != nil && !d.ScenePlayer.IsPaused() {
			if !d.ScenePlayer.IsFinished() {
				// Respect a pending Sleep before advancing
				if !d.SceneSleepUntil.IsZero() && time.Now().Before(d.SceneSleepUntil) {
					return d, TickCmd()
				}
				d.SceneSleepUntil = time.Time{}

				if next := d.ScenePlayer.NextCommand(); next != nil {
					if next.Type == script.CommandType_Sleep && next.Delay > 0 {
						d.SceneSleepUntil = time.Now().Add(next.Delay)
						d.ScenePlayer.Advance()
					} else {
						// Queue the command as a message so it is ordered
						// with any user input
						cmds = append(cmds, func() tea.Msg {
							return SceneCommandMsg{Command: next}
						})
						d.ScenePlayer.Advance()
					}
				}
			} else if d.SceneFinishedTime.IsZero() {
				d.SceneFinishedTime = time.Now()
				d.ShowNotification("scene finished", "success", config.NotificationDuration)
			}
		}

		// Slower ticks while dragging or resizing
		nextTick := TickCmd()
		if d.InteractionMode {
			nextTick = SlowTickCmd()
		}

		if len(cmds) > 1 {
			return d, tea.Sequence(cmds...)
		}
		return d, nextTick

	case SceneCommandMsg:
		if err := script.Apply(msg.Command, d); err != nil {
			d.ShowNotification(fmt.Sprintf("scene error: %v", err), "error", config.NotificationDuration)
		}
		return d, nil

	case ConfigReloadedMsg:
		if msg.Err != nil {
			d.ShowNotification(fmt.Sprintf("config reload failed: %v", msg.Err), "error", config.NotificationDuration)
			return d, nil
		}
		d.Config = msg.Config
		d.KeybindRegistry = config.NewKeybindRegistry(msg.Config)
		// Appearance globals are read by the render path, so they are only
		// ever written here, inside the event loop
		config.ApplyAppearance(msg.Config)
		if err := theme.Initialize(msg.Config.Appearance.Theme); err != nil {
			d.LogWarn("theme %q failed to load: %v", msg.Config.Appearance.Theme, err)
		}
		if presets, err := config.LoadPresets(); err == nil {
			d.Presets = presets
		}
		d.applyViewport()
		d.ShowNotification("configuration reloaded", "success", config.NotificationDuration)
		return d, nil

	case tea.KeyPressMsg, tea.MouseClickMsg, tea.MouseMotionMsg,
		tea.MouseReleaseMsg, tea.MouseWheelMsg, tea.PasteMsg,
		tea.PasteStartMsg, tea.PasteEndMsg:
		if inputHandler != nil {
			return inputHandler(msg, d)
		}
		return d, nil

	case tea.WindowSizeMsg:
		d.Width = msg.Width
		d.Height = msg.Height
		d.applyViewport()
		return d, nil

	case tea.MouseMsg:
		// Remaining mouse event kinds have no desktop meaning
		return d, nil

	case tea.FocusMsg:
		return d, nil

	case tea.BlurMsg:
		return d, nil
	}

	return d, nil
}
