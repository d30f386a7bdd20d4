package input

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/daddyholnes/podplay-sanctuary-build/internal/app"
	"github.com/daddyholnes/podplay-sanctuary-build/internal/config"
	"github.com/daddyholnes/podplay-sanctuary-build/internal/wm"
)

// Nudge steps for keyboard move and resize. Horizontal steps are doubled
// because terminal cells are roughly twice as tall as they are wide.
const (
	nudgeX = 2
	nudgeY = 1
)

// ActionHandler is a function that handles a specific named action.
type ActionHandler func(msg tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd)

// ActionDispatcher maps action names to handler functions.
type ActionDispatcher struct {
	handlers map[string]ActionHandler
}

// NewActionDispatcher creates a dispatcher with all handlers registered.
func NewActionDispatcher() *ActionDispatcher {
	d := &ActionDispatcher{
		handlers: make(map[string]ActionHandler),
	}
	d.registerHandlers()
	return d
}

// registerHandlers registers every action the keybind config can name.
func (d *ActionDispatcher) registerHandlers() {
	// Window management
	d.Register("new_window", handleNewWindow)
	d.Register("close_window", handleCloseWindow)
	d.Register("rename_window", handleRenameWindow)
	d.Register("minimize_window", handleMinimizeWindow)
	d.Register("restore_all", handleRestoreAll)
	d.Register("toggle_maximize", handleToggleMaximize)
	d.Register("next_window", handleNextWindow)
	d.Register("prev_window", handlePrevWindow)

	// Window selection (1-9)
	for i := 1; i <= 9; i++ {
		d.Register(fmt.Sprintf("select_window_%d", i), makeSelectWindowHandler(i))
	}

	// Layout
	d.Register("arrange_cascade", makeArrangeHandler(wm.ArrangeCascade))
	d.Register("arrange_tile", makeArrangeHandler(wm.ArrangeTile))
	d.Register("arrange_stack", makeArrangeHandler(wm.ArrangeStack))
	d.Register("preset_picker", handlePresetPicker)
	d.Register("move_left", makeMoveHandler(-nudgeX, 0))
	d.Register("move_right", makeMoveHandler(nudgeX, 0))
	d.Register("move_up", makeMoveHandler(0, -nudgeY))
	d.Register("move_down", makeMoveHandler(0, nudgeY))
	d.Register("grow_width", makeResizeHandler(nudgeX, 0))
	d.Register("shrink_width", makeResizeHandler(-nudgeX, 0))
	d.Register("grow_height", makeResizeHandler(0, nudgeY))
	d.Register("shrink_height", makeResizeHandler(0, -nudgeY))

	// Panels
	d.Register("toggle_lock", handleToggleLock)
	d.Register("toggle_collapse", handleToggleCollapse)
	d.Register("dock_left", makeDockHandler(wm.DockLeft))
	d.Register("dock_right", makeDockHandler(wm.DockRight))
	d.Register("dock_bottom", makeDockHandler(wm.DockBottom))
	d.Register("undock", handleUndock)

	// Overlays and system
	d.Register("toggle_help", handleToggleHelp)
	d.Register("toggle_logs", handleToggleLogs)
	d.Register("toggle_taskbar", handleToggleTaskbar)
	d.Register("quit", handleQuit)
}

// Register adds an action handler.
func (d *ActionDispatcher) Register(action string, handler ActionHandler) {
	d.handlers[action] = handler
}

// Dispatch executes the handler for a given action.
func (d *ActionDispatcher) Dispatch(action string, msg tea.KeyPressMsg, desk *app.Desktop) (*app.Desktop, tea.Cmd) {
	if handler, ok := d.handlers[action]; ok {
		return handler(msg, desk)
	}
	return desk, nil
}

// HasAction checks if an action is registered.
func (d *ActionDispatcher) HasAction(action string) bool {
	_, ok := d.handlers[action]
	return ok
}

// Global action dispatcher instance.
var globalDispatcher = NewActionDispatcher()

// GetDispatcher returns the global action dispatcher.
func GetDispatcher() *ActionDispatcher {
	return globalDispatcher
}

// ============================================================================
// Window Management Action Handlers
// ============================================================================

func handleNewWindow(msg tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	d.OpenDefaultWindow()
	return d, nil
}

func handleCloseWindow(msg tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	if w := d.Manager.FocusedWindow(); w != nil {
		d.Manager.CloseWindow(w.ID)
	}
	return d, nil
}

func handleRenameWindow(msg tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	d.StartRename()
	return d, nil
}

func handleMinimizeWindow(msg tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	if w := d.Manager.FocusedWindow(); w != nil && w.State != wm.StateMinimized {
		d.Manager.MinimizeWindow(w.ID)
	}
	return d, nil
}

func handleRestoreAll(msg tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	for _, w := range d.Manager.MinimizedWindows() {
		d.Manager.RestoreWindow(w.ID)
	}
	return d, nil
}

func handleToggleMaximize(msg tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	if w := d.Manager.FocusedWindow(); w != nil {
		d.Manager.ToggleMaximize(w.ID)
	}
	return d, nil
}

func handleNextWindow(msg tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	d.CycleToNextVisibleWindow()
	return d, nil
}

func handlePrevWindow(msg tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	d.CycleToPreviousVisibleWindow()
	return d, nil
}

// makeSelectWindowHandler creates a handler focusing the nth window in
// creation order, restoring it first when minimized.
func makeSelectWindowHandler(n int) ActionHandler {
	return func(msg tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
		d.FocusNth(n)
		return d, nil
	}
}

// ============================================================================
// Layout Action Handlers
// ============================================================================

func makeArrangeHandler(mode wm.ArrangeMode) ActionHandler {
	return func(msg tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
		d.Manager.ArrangeWindows(mode)
		return d, nil
	}
}

func handlePresetPicker(msg tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	d.ShowPresets = !d.ShowPresets
	if d.ShowPresets {
		d.PresetSelection = 0
	}
	return d, nil
}

// makeMoveHandler nudges the focused window, honoring the same drag gates
// and position clamps as the pointer path.
func makeMoveHandler(dx, dy int) ActionHandler {
	return func(msg tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
		w := d.Manager.FocusedWindow()
		if w == nil || !w.CanDrag() {
			return d, nil
		}
		frame := w.Frame()
		x, y := w.ClampPosition(frame.X+dx, frame.Y+dy, d.Manager.Viewport())
		d.Manager.SetWindowPosition(w.ID, wm.Position{X: x, Y: y})
		return d, nil
	}
}

// makeResizeHandler grows or shrinks the focused window against its
// min/max bounds, keeping the top-left corner fixed.
func makeResizeHandler(dw, dh int) ActionHandler {
	return func(msg tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
		w := d.Manager.FocusedWindow()
		if w == nil || !w.CanResize() {
			return d, nil
		}
		width, height := w.ClampSize(w.Width+dw, w.Height+dh)
		d.Manager.SetWindowSize(w.ID, wm.Size{Width: width, Height: height})
		return d, nil
	}
}

// ============================================================================
// Panel Action Handlers
// ============================================================================

func handleToggleLock(msg tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	w := d.Manager.FocusedWindow()
	if w == nil {
		return d, nil
	}
	d.Manager.SetLocked(w.ID, !w.Locked)
	if w.Locked {
		d.ShowNotification(fmt.Sprintf("%s locked", w.Title), "info", config.NotificationDuration)
	} else {
		d.ShowNotification(fmt.Sprintf("%s unlocked", w.Title), "info", config.NotificationDuration)
	}
	return d, nil
}

func handleToggleCollapse(msg tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	if w := d.Manager.FocusedWindow(); w != nil {
		d.Manager.SetCollapsed(w.ID, !w.Collapsed)
	}
	return d, nil
}

func makeDockHandler(zone wm.DockZone) ActionHandler {
	return func(msg tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
		if w := d.Manager.FocusedWindow(); w != nil {
			d.Manager.DockWindow(w.ID, zone)
		}
		return d, nil
	}
}

func handleUndock(msg tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	if w := d.Manager.FocusedWindow(); w != nil {
		d.Manager.UndockWindow(w.ID)
	}
	return d, nil
}

// ============================================================================
// Overlay and System Action Handlers
// ============================================================================

func handleToggleHelp(msg tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	d.ShowHelp = !d.ShowHelp
	if d.ShowHelp {
		d.HelpScrollOffset = 0
	}
	return d, nil
}

func handleToggleLogs(msg tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	wasShowing := d.ShowLogs
	d.ShowLogs = !d.ShowLogs
	if d.ShowLogs && !wasShowing {
		d.LogInfo("Log viewer opened")

		// Open at the tail. The capacity math mirrors the log viewer's
		// pagination.
		maxDisplayHeight := max(d.Height-8, 8)
		totalLogs := len(d.LogMessages)
		fixedLines := 4
		if totalLogs > maxDisplayHeight-fixedLines {
			fixedLines = 6
		}
		logsPerPage := max(maxDisplayHeight-fixedLines, 1)
		d.LogScrollOffset = max(totalLogs-logsPerPage, 0)
	}
	return d, nil
}

func handleToggleTaskbar(msg tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	d.ToggleTaskbar()
	return d, nil
}

func handleQuit(msg tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	// Close help if showing
	if d.ShowHelp {
		d.ShowHelp = false
		return d, nil
	}
	if d.Config.Behavior.ConfirmQuit && d.Manager.Len() > 0 {
		d.ShowQuitConfirm = true
		d.QuitConfirmSelection = 0
		return d, nil
	}
	return d, tea.Quit
}
