// Package app provides the Sanctuary desktop model: window chrome,
// overlays, the taskbar, and the bubbletea update loop that drives them.
package app

import (
	"fmt"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/google/uuid"

	"github.com/daddyholnes/podplay-sanctuary-build/internal/config"
	"github.com/daddyholnes/podplay-sanctuary-build/internal/content"
	"github.com/daddyholnes/podplay-sanctuary-build/internal/script"
	"github.com/daddyholnes/podplay-sanctuary-build/internal/wm"
)

// ResizeHandle identifies which window edge or corner a resize grabs.
type ResizeHandle int

const (
	// HandleNone means no resize is in progress.
	HandleNone ResizeHandle = iota
	// HandleLeft resizes from the left edge.
	HandleLeft
	// HandleRight resizes from the right edge.
	HandleRight
	// HandleTop resizes from the top edge.
	HandleTop
	// HandleBottom resizes from the bottom edge.
	HandleBottom
	// HandleTopLeft resizes from the top-left corner.
	HandleTopLeft
	// HandleTopRight resizes from the top-right corner.
	HandleTopRight
	// HandleBottomLeft resizes from the bottom-left corner.
	HandleBottomLeft
	// HandleBottomRight resizes from the bottom-right corner.
	HandleBottomRight
)

// Desktop is the bubbletea model for a Sanctuary session. It owns the
// window manager, the content feed, and all transient UI state.
type Desktop struct {
	Manager *wm.Manager
	Factory *content.Factory
	Feed    *content.Feed

	Config          *config.UserConfig
	KeybindRegistry *config.KeybindRegistry

	Width  int
	Height int

	// Mouse interaction state
	Dragging        bool
	DragWindowID    string
	DragOffsetX     int
	DragOffsetY     int
	Resizing        bool
	ResizeWindowID  string
	ResizeHandle    ResizeHandle
	ResizeStartX    int
	ResizeStartY    int
	PreResize       wm.Rect     // frame at resize start
	HoverZone       wm.DockZone // dock hint while dragging near an edge
	InteractionMode bool        // true while dragging or resizing
	LastMouseX      int
	LastMouseY      int

	// Window renaming
	RenamingWindow bool
	RenameBuffer   string

	// Prefix key state (tmux style)
	PrefixActive   bool
	LastPrefixTime time.Time

	// Help overlay
	ShowHelp         bool
	HelpScrollOffset int
	HelpCategory     int
	HelpSearchMode   bool
	HelpSearchQuery  string

	// Log overlay
	ShowLogs        bool
	LogMessages     []LogMessage
	LogScrollOffset int

	// Preset picker overlay
	ShowPresets     bool
	PresetSelection int
	Presets         []config.Preset

	// Quit confirmation
	ShowQuitConfirm      bool
	QuitConfirmSelection int // 0 = Yes, 1 = No

	Notifications []Notification

	// System stats for the taskbar
	CPUHistory    []float64
	LastCPUUpdate time.Time
	RAMUsage      float64
	LastRAMUpdate time.Time

	// Scene playback
	ScenePlayer       *script.Player
	SceneMode         bool
	SceneSleepUntil   time.Time
	SceneFinishedTime time.Time

	// SSH mode
	SSHSession ssh.Session
	IsSSHMode  bool

	prevTaskbarPosition string
}

// Notification is a temporary toast message.
type Notification struct {
	ID        string
	Message   string
	Type      string // "info", "success", "warning", "error"
	StartTime time.Time
	Duration  time.Duration
}

// LogMessage is a log entry with timestamp and level.
type LogMessage struct {
	Time    time.Time
	Level   string // INFO, WARN, ERROR
	Message string
}

// Options configures a new Desktop.
type Options struct {
	Config          *config.UserConfig
	KeybindRegistry *config.KeybindRegistry
	Width           int
	Height          int
	ScenePlayer     *script.Player
	SSHSession      ssh.Session
	IsSSHMode       bool
}

// NewDesktop creates a desktop with an empty window collection.
func NewDesktop(opts Options) *Desktop {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	registry := opts.KeybindRegistry
	if registry == nil {
		registry = config.NewKeybindRegistry(cfg)
	}

	feed := content.NewFeed(config.MaxLogMessages)
	factory := content.NewFactory(feed)

	d := &Desktop{
		Factory:         factory,
		Feed:            feed,
		Config:          cfg,
		KeybindRegistry: registry,
		Width:           opts.Width,
		Height:          opts.Height,
		ScenePlayer:     opts.ScenePlayer,
		SceneMode:       opts.ScenePlayer != nil,
		SSHSession:      opts.SSHSession,
		IsSSHMode:       opts.IsSSHMode,
	}

	d.Manager = wm.NewManager(wm.ManagerOptions{
		Viewport:     d.windowArea(),
		CascadeBase:  wm.Position{X: cfg.Behavior.CascadeBaseX, Y: cfg.Behavior.CascadeBaseY},
		CascadeStep:  cfg.Behavior.CascadeStep,
		DefaultSize:  wm.Size{Width: cfg.Behavior.DefaultWidth, Height: cfg.Behavior.DefaultHeight},
		TileGutter:   cfg.Behavior.TileGutter,
		TileMargin:   cfg.Behavior.TileMargin,
		ZoneFraction: cfg.Behavior.ZoneFraction,
		NewContent:   factory.New,
		OnEvent:      d.handleEvent,
	})

	presets, err := config.LoadPresets()
	if err != nil {
		d.LogWarn("failed to load presets: %v", err)
		presets = config.BuiltinPresets()
	}
	d.Presets = presets

	return d
}

func createID() string {
	return uuid.New().String()
}

// handleEvent receives every state change from the window manager and
// fans it out to the activity feed and the log buffer.
func (d *Desktop) handleEvent(ev wm.Event) {
	line := describeEvent(ev)
	d.Feed.Appendf("%s  %s", time.Now().Format("15:04:05"), line)
	d.LogInfo("%s", line)
}

func describeEvent(ev wm.Event) string {
	switch {
	case ev.Title != "" && ev.Detail != "":
		return fmt.Sprintf("%s %q %s", ev.Type, ev.Title, ev.Detail)
	case ev.Title != "":
		return fmt.Sprintf("%s %q", ev.Type, ev.Title)
	case ev.Detail != "":
		return fmt.Sprintf("%s %s", ev.Type, ev.Detail)
	default:
		return ev.Type.String()
	}
}

// windowArea returns the viewport available to windows, which is the
// desktop minus the taskbar strip.
func (d *Desktop) windowArea() wm.Size {
	h := d.Height
	if config.TaskbarPosition != "hidden" {
		h -= config.TaskbarHeight
	}
	if h < 0 {
		h = 0
	}
	return wm.Size{Width: d.Width, Height: h}
}

// topMargin returns the Y offset where the window area starts.
func (d *Desktop) topMargin() int {
	if config.TaskbarPosition == "top" {
		return config.TaskbarHeight
	}
	return 0
}

// taskbarY returns the row where the taskbar is drawn.
func (d *Desktop) taskbarY() int {
	if config.TaskbarPosition == "top" {
		return 0
	}
	return max(d.Height-config.TaskbarHeight, 0)
}

// applyViewport pushes the current window area into the manager. Call
// after the desktop size or the taskbar visibility changes.
func (d *Desktop) applyViewport() {
	d.Manager.SetViewport(d.windowArea())
}

// ToggleTaskbar hides or restores the taskbar and reflows the viewport.
func (d *Desktop) ToggleTaskbar() {
	if config.TaskbarPosition != "hidden" {
		d.prevTaskbarPosition = config.TaskbarPosition
		config.TaskbarPosition = "hidden"
	} else {
		if d.prevTaskbarPosition == "" {
			d.prevTaskbarPosition = "bottom"
		}
		config.TaskbarPosition = d.prevTaskbarPosition
	}
	d.applyViewport()
}

// Log adds a new log message to the log buffer.
func (d *Desktop) Log(level, format string, args ...any) {
	logMsg := LogMessage{
		Time:    time.Now(),
		Level:   level,
		Message: fmt.Sprintf(format, args...),
	}

	// Check if we're at the bottom before adding new log
	wasAtBottom := false
	if d.ShowLogs {
		logsPerPage := d.logsPerPage(len(d.LogMessages))
		maxScroll := max(len(d.LogMessages)-logsPerPage, 0)
		// Within 2 lines of the end counts as bottom
		wasAtBottom = d.LogScrollOffset >= maxScroll-2
	}

	d.LogMessages = append(d.LogMessages, logMsg)
	if len(d.LogMessages) > config.MaxLogMessages {
		d.LogMessages = d.LogMessages[len(d.LogMessages)-config.MaxLogMessages:]
	}

	// Sticky scroll: follow the tail if we were already there
	if wasAtBottom && d.ShowLogs {
		logsPerPage := d.logsPerPage(len(d.LogMessages))
		d.LogScrollOffset = max(len(d.LogMessages)-logsPerPage, 0)
	}
}

// logsPerPage returns how many log lines fit in the viewer for the
// given total count.
func (d *Desktop) logsPerPage(totalLogs int) int {
	maxDisplayHeight := max(d.Height-8, 8)
	// Fixed overhead: title, blank after title, blank before hint, hint
	fixedLines := 4
	if totalLogs > maxDisplayHeight-fixedLines {
		// Scroll indicator adds a blank and an indicator line
		fixedLines = 6
	}
	return max(maxDisplayHeight-fixedLines, 1)
}

// LogInfo logs an informational message.
func (d *Desktop) LogInfo(format string, args ...any) {
	d.Log("INFO", format, args...)
}

// LogWarn logs a warning message.
func (d *Desktop) LogWarn(format string, args ...any) {
	d.Log("WARN", format, args...)
}

// LogError logs an error message.
func (d *Desktop) LogError(format string, args ...any) {
	d.Log("ERROR", format, args...)
}

// ShowNotification displays a temporary notification toast.
func (d *Desktop) ShowNotification(message, notifType string, duration time.Duration) {
	d.Notifications = append(d.Notifications, Notification{
		ID:        createID(),
		Message:   message,
		Type:      notifType,
		StartTime: time.Now(),
		Duration:  duration,
	})

	switch notifType {
	case "error":
		d.LogError("%s", message)
	case "warning":
		d.LogWarn("%s", message)
	default:
		d.LogInfo("%s", message)
	}
}

// CleanupNotifications removes expired notifications.
func (d *Desktop) CleanupNotifications() {
	now := time.Now()
	var active []Notification

	for _, notif := range d.Notifications {
		if now.Sub(notif.StartTime) < notif.Duration {
			active = append(active, notif)
		}
	}

	d.Notifications = active
}

// CycleToNextVisibleWindow moves focus to the next non-minimized window.
func (d *Desktop) CycleToNextVisibleWindow() {
	visible := d.Manager.VisibleWindows()
	if len(visible) == 0 {
		return
	}

	currentPos := -1
	if focused := d.Manager.FocusedWindow(); focused != nil {
		for i, w := range visible {
			if w.ID == focused.ID {
				currentPos = i
				break
			}
		}
	}

	if currentPos >= 0 && currentPos < len(visible)-1 {
		d.Manager.FocusWindow(visible[currentPos+1].ID)
	} else {
		d.Manager.FocusWindow(visible[0].ID)
	}
}

// CycleToPreviousVisibleWindow moves focus to the previous non-minimized window.
func (d *Desktop) CycleToPreviousVisibleWindow() {
	visible := d.Manager.VisibleWindows()
	if len(visible) == 0 {
		return
	}

	currentPos := -1
	if focused := d.Manager.FocusedWindow(); focused != nil {
		for i, w := range visible {
			if w.ID == focused.ID {
				currentPos = i
				break
			}
		}
	}

	if currentPos > 0 {
		d.Manager.FocusWindow(visible[currentPos-1].ID)
	} else {
		d.Manager.FocusWindow(visible[len(visible)-1].ID)
	}
}

// FocusNth focuses the nth window in creation order (1-based), restoring
// it first if minimized.
func (d *Desktop) FocusNth(n int) {
	windows := d.Manager.Windows()
	if n < 1 || n > len(windows) {
		return
	}
	w := windows[n-1]
	if w.State == wm.StateMinimized {
		d.Manager.RestoreWindow(w.ID)
	}
	d.Manager.FocusWindow(w.ID)
}

// OpenDefaultWindow creates a window of the configured default kind with
// a generated title.
func (d *Desktop) OpenDefaultWindow() {
	kind := d.Config.Behavior.DefaultKind
	title := fmt.Sprintf("%s %d", content.DisplayName(kind), d.Manager.Len()+1)
	_, err := d.Manager.CreateWindow(title, nil, wm.Options{
		Kind: kind,
		Icon: content.Icon(kind),
	})
	if err != nil {
		d.ShowNotification(fmt.Sprintf("open failed: %v", err), "error", config.NotificationDuration)
	}
}

// StartRename begins renaming the focused window.
func (d *Desktop) StartRename() {
	w := d.Manager.FocusedWindow()
	if w == nil {
		return
	}
	d.RenamingWindow = true
	d.RenameBuffer = w.Title
}

// CommitRename applies the rename buffer to the focused window.
func (d *Desktop) CommitRename() {
	if w := d.Manager.FocusedWindow(); w != nil && d.RenameBuffer != "" {
		w.Title = d.RenameBuffer
	}
	d.RenamingWindow = false
	d.RenameBuffer = ""
}

// CancelRename abandons the rename buffer.
func (d *Desktop) CancelRename() {
	d.RenamingWindow = false
	d.RenameBuffer = ""
}
