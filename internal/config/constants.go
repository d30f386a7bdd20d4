package config

import "time"

// Frame rates for the render loop. The desktop idles at NormalFPS and drops
// to InteractionFPS while a drag or resize is in flight, when the terminal
// is already being flooded with motion events.
const (
	// NormalFPS is the tick rate while the desktop is idle.
	NormalFPS = 60
	// InteractionFPS is the reduced tick rate during drags and resizes.
	InteractionFPS = 30
)

// Timing constants.
const (
	// NotificationDuration is how long a notification stays on screen.
	NotificationDuration = 2 * time.Second
	// NotificationFadeOutDuration is the tail during which a notification
	// is still rendered but marked expiring.
	NotificationFadeOutDuration = 300 * time.Millisecond
	// StatsUpdateInterval throttles CPU and memory sampling.
	StatsUpdateInterval = 500 * time.Millisecond
	// ReloadDebounce coalesces config file events before a reload.
	// Editors typically fire several writes per save.
	ReloadDebounce = 250 * time.Millisecond
	// WhichKeyDelay is how long the leader key waits before the follow-up
	// hint overlay appears. Fast typists never see it.
	WhichKeyDelay = 500 * time.Millisecond
)

// FastAnimationDuration is for snappy transitions like the notification
// expiry dim. Window geometry itself never tweens; moves and resizes apply
// verbatim.
const FastAnimationDuration = 80 * time.Millisecond

// AnimationsEnabled globally toggles the remaining cosmetic animations.
var AnimationsEnabled = true

// GetFastAnimationDuration returns the fast animation duration, or zero
// when animations are disabled so callers skip the effect entirely.
func GetFastAnimationDuration() time.Duration {
	if !AnimationsEnabled {
		return 0
	}
	return FastAnimationDuration
}

// TaskbarHeight is the number of rows the taskbar occupies: a separator
// line plus the bar itself.
const TaskbarHeight = 2

// MaxLogMessages caps the in-memory log ring.
const MaxLogMessages = 1000

// Z-index bands for overlay layers. Window stacking values are minted from
// a monotonic counter that starts at 1, so overlays sit far above any
// window a session could realistically create.
const (
	// ZIndexTaskbar is the taskbar layer.
	ZIndexTaskbar = 10000
	// ZIndexStatus is the clock and status indicator layer.
	ZIndexStatus = 10050
	// ZIndexZoneHint is the dock zone highlight shown during a drag.
	ZIndexZoneHint = 10075
	// ZIndexNotifications is the notification stack.
	ZIndexNotifications = 10100
	// ZIndexPresets is the layout preset picker.
	ZIndexPresets = 10200
	// ZIndexLogs is the log viewer overlay.
	ZIndexLogs = 10300
	// ZIndexHelp is the help overlay. The quit confirmation renders one
	// above it.
	ZIndexHelp = 10400
)

// Appearance globals mirror the loaded UserConfig so render code does not
// thread the config through every call. They are written once at startup
// and on config reload, both on the program goroutine.
var (
	// UseASCIIOnly disables Unicode glyphs in all chrome.
	UseASCIIOnly = false
	// BorderStyle names the window border set: rounded, normal, thick,
	// double, or hidden.
	BorderStyle = "rounded"
	// TaskbarPosition is bottom, top, or hidden.
	TaskbarPosition = "bottom"
	// HideWindowButtons removes the close/maximize/minimize buttons from
	// window title bars.
	HideWindowButtons = false
	// HideClock removes the clock from the status area.
	HideClock = false
	// LogLines is the number of log lines kept for the log viewer.
	LogLines = MaxLogMessages
)
