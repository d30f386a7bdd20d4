// Package wm implements the window management core: a unified window/panel
// model and the manager that owns the authoritative collection, stacking
// order, lifecycle transitions, bulk arrangements, and layout presets.
//
// The package is deliberately free of any rendering or input concern. It is
// single-owner state: all mutation happens through the Manager on one
// goroutine (the UI event loop), so no locking is needed. Interaction layers
// clamp geometry before calling the setters; operations that reference an
// unknown window id are silent no-ops.
package wm

import (
	"fmt"
	"slices"
)

// Geometry defaults used when ManagerOptions leaves a field zero. The
// cascade origin and step match the classic desktop stagger; callers working
// in terminal cells pass their own scale.
const (
	DefaultCascadeBaseX = 100
	DefaultCascadeBaseY = 100
	DefaultCascadeStep  = 30

	DefaultWindowWidth  = 80
	DefaultWindowHeight = 24

	DefaultMinWidth  = 16
	DefaultMinHeight = 4

	DefaultTileGutter = 2
	DefaultTileMargin = 2

	// DefaultZoneFraction divides the viewport for dock zone strips: a
	// docked window takes 1/DefaultZoneFraction of the relevant axis.
	DefaultZoneFraction = 3
)

// EventType identifies a state transition reported by the manager.
type EventType int

const (
	// EventCreated fires after a window joins the collection.
	EventCreated EventType = iota
	// EventFocused fires when a window is raised to the top.
	EventFocused
	// EventClosed fires after a window is removed.
	EventClosed
	// EventMinimized fires when a window moves to the taskbar.
	EventMinimized
	// EventRestored fires when a window returns from the taskbar.
	EventRestored
	// EventMaximized fires when a window fills the viewport.
	EventMaximized
	// EventUnmaximized fires when a maximized window returns to its
	// snapshot geometry.
	EventUnmaximized
	// EventMoved fires on every position update.
	EventMoved
	// EventResized fires on every size update.
	EventResized
	// EventDocked fires when a window docks into an edge zone.
	EventDocked
	// EventUndocked fires when a window leaves its zone.
	EventUndocked
	// EventArranged fires after a bulk arrangement.
	EventArranged
	// EventPresetApplied fires after a layout preset replaces the
	// collection.
	EventPresetApplied
)

// String returns the event name.
func (t EventType) String() string {
	switch t {
	case EventCreated:
		return "created"
	case EventFocused:
		return "focused"
	case EventClosed:
		return "closed"
	case EventMinimized:
		return "minimized"
	case EventRestored:
		return "restored"
	case EventMaximized:
		return "maximized"
	case EventUnmaximized:
		return "unmaximized"
	case EventMoved:
		return "moved"
	case EventResized:
		return "resized"
	case EventDocked:
		return "docked"
	case EventUndocked:
		return "undocked"
	case EventArranged:
		return "arranged"
	case EventPresetApplied:
		return "preset applied"
	}
	return "unknown"
}

// Event is an upward report of a state transition. Windows never mutate
// shared state themselves; the owning application observes these to drive
// notifications and logging.
type Event struct {
	Type     EventType
	WindowID string
	Title    string
	Detail   string
}

// Options configures a window at creation time. Nil geometry fields fall
// back to the manager's defaults (cascade-computed position, default size).
type Options struct {
	Position  *Position
	Size      *Size
	MinSize   *Size
	MaxSize   *Size
	Flags     *Flags
	Kind      string
	Icon      string
	Locked    bool
	Collapsed bool
	Zone      DockZone
}

// ManagerOptions configures a Manager. Zero values take the package
// defaults, which keep the classic pixel-scale stagger; terminal frontends
// pass cell-scale values.
type ManagerOptions struct {
	Viewport     Size
	CascadeBase  Position
	CascadeStep  int
	DefaultSize  Size
	MinSize      Size
	TileGutter   int
	TileMargin   int
	ZoneFraction int

	// NewContent maps a window kind to its content renderer when presets
	// or scripts create windows by kind name. Nil leaves content empty.
	NewContent func(kind string) Renderer

	// OnEvent observes manager state transitions. Nil disables reporting.
	OnEvent func(Event)
}

func (o ManagerOptions) withDefaults() ManagerOptions {
	if o.CascadeBase == (Position{}) {
		o.CascadeBase = Position{X: DefaultCascadeBaseX, Y: DefaultCascadeBaseY}
	}
	if o.CascadeStep == 0 {
		o.CascadeStep = DefaultCascadeStep
	}
	if o.DefaultSize == (Size{}) {
		o.DefaultSize = Size{Width: DefaultWindowWidth, Height: DefaultWindowHeight}
	}
	if o.MinSize == (Size{}) {
		o.MinSize = Size{Width: DefaultMinWidth, Height: DefaultMinHeight}
	}
	if o.TileGutter == 0 {
		o.TileGutter = DefaultTileGutter
	}
	if o.TileMargin == 0 {
		o.TileMargin = DefaultTileMargin
	}
	if o.ZoneFraction == 0 {
		o.ZoneFraction = DefaultZoneFraction
	}
	return o
}

// Manager owns the authoritative window collection. The slice preserves
// insertion order (arrangements index into it); stacking order lives in the
// per-window Z values minted from a counter that increments monotonically
// and is never reused, so newer or refocused windows always sort above
// older ones without renumbering the rest.
type Manager struct {
	windows  []*Window
	zCounter int
	viewport Size
	opts     ManagerOptions
}

// NewManager creates an empty manager with the given options.
func NewManager(opts ManagerOptions) *Manager {
	opts = opts.withDefaults()
	return &Manager{
		viewport: opts.Viewport,
		opts:     opts,
	}
}

func (m *Manager) emit(t EventType, w *Window, detail string) {
	if m.opts.OnEvent == nil {
		return
	}
	ev := Event{Type: t, Detail: detail}
	if w != nil {
		ev.WindowID = w.ID
		ev.Title = w.Title
	}
	m.opts.OnEvent(ev)
}

func (m *Manager) nextZ() int {
	m.zCounter++
	return m.zCounter
}

// Viewport returns the desktop area windows live in.
func (m *Manager) Viewport() Size {
	return m.viewport
}

// SetViewport resizes the desktop area. Maximized and docked windows
// re-frame to the new bounds; floating windows are re-clamped so they stay
// reachable.
func (m *Manager) SetViewport(v Size) {
	m.viewport = v
	for _, w := range m.windows {
		switch {
		case w.State == StateMaximized:
			w.setFrame(Rect{X: 0, Y: 0, Width: v.Width, Height: v.Height})
		case w.Zone != DockNone:
			w.setFrame(m.ZoneFrame(w.Zone))
		case w.State == StateNormal:
			w.X, w.Y = w.ClampPosition(w.X, w.Y, v)
		}
	}
}

// Window returns the window with the given id, or nil.
func (m *Manager) Window(id string) *Window {
	for _, w := range m.windows {
		if w.ID == id {
			return w
		}
	}
	return nil
}

// Windows returns the collection in insertion order. Callers must not
// modify the slice.
func (m *Manager) Windows() []*Window {
	return m.windows
}

// Len returns the number of live windows.
func (m *Manager) Len() int {
	return len(m.windows)
}

// VisibleWindows returns the non-minimized windows in insertion order.
func (m *Manager) VisibleWindows() []*Window {
	var visible []*Window
	for _, w := range m.windows {
		if w.State != StateMinimized {
			visible = append(visible, w)
		}
	}
	return visible
}

// MinimizedWindows returns the taskbar entries ordered by when they were
// minimized.
func (m *Manager) MinimizedWindows() []*Window {
	var minimized []*Window
	for _, w := range m.windows {
		if w.State == StateMinimized {
			minimized = append(minimized, w)
		}
	}
	slices.SortStableFunc(minimized, func(a, b *Window) int {
		return a.MinimizedAt.Compare(b.MinimizedAt)
	})
	return minimized
}

// FocusedWindow returns the visible window with the highest z value, or nil
// when nothing is visible.
func (m *Manager) FocusedWindow() *Window {
	var top *Window
	for _, w := range m.windows {
		if w.State == StateMinimized {
			continue
		}
		if top == nil || w.Z > top.Z {
			top = w
		}
	}
	return top
}

// TopWindowAt returns the topmost visible window whose frame contains the
// point, or nil.
func (m *Manager) TopWindowAt(x, y int) *Window {
	var top *Window
	for _, w := range m.windows {
		if w.State == StateMinimized {
			continue
		}
		if !w.Frame().Contains(x, y) {
			continue
		}
		if top == nil || w.Z > top.Z {
			top = w
		}
	}
	return top
}

// Stats summarizes the collection for status surfaces.
type Stats struct {
	Total     int
	Visible   int
	Minimized int
	Maximized int
	Docked    int
	FocusedID string
}

// Stats returns collection counters.
func (m *Manager) Stats() Stats {
	var s Stats
	s.Total = len(m.windows)
	for _, w := range m.windows {
		switch w.State {
		case StateMinimized:
			s.Minimized++
		case StateMaximized:
			s.Visible++
			s.Maximized++
		default:
			s.Visible++
		}
		if w.Zone != DockNone {
			s.Docked++
		}
	}
	if top := m.FocusedWindow(); top != nil {
		s.FocusedID = top.ID
	}
	return s
}

// CreateWindow adds a window to the collection. Position falls back to the
// cascade default (base plus step times the current window count) so
// successive unconfigured windows visibly stagger; the new window receives
// the next stacking value and is therefore on top. Conflicting size bounds
// fail fast with ErrInvalidBounds.
func (m *Manager) CreateWindow(title string, content Renderer, opts Options) (*Window, error) {
	minSize := m.opts.MinSize
	if opts.MinSize != nil {
		minSize = *opts.MinSize
	}
	var maxSize Size
	if opts.MaxSize != nil {
		maxSize = *opts.MaxSize
	}
	if maxSize.Width > 0 && minSize.Width > maxSize.Width {
		return nil, fmt.Errorf("create %q: width bounds %d > %d: %w", title, minSize.Width, maxSize.Width, ErrInvalidBounds)
	}
	if maxSize.Height > 0 && minSize.Height > maxSize.Height {
		return nil, fmt.Errorf("create %q: height bounds %d > %d: %w", title, minSize.Height, maxSize.Height, ErrInvalidBounds)
	}

	flags := DefaultFlags()
	if opts.Flags != nil {
		flags = *opts.Flags
	}

	w := &Window{
		ID:        newID(),
		Title:     title,
		Kind:      opts.Kind,
		Icon:      opts.Icon,
		MinWidth:  minSize.Width,
		MinHeight: minSize.Height,
		MaxWidth:  maxSize.Width,
		MaxHeight: maxSize.Height,
		Flags:     flags,
		Locked:    opts.Locked,
		Collapsed: opts.Collapsed,
		Content:   content,
	}
	if content == nil && opts.Kind != "" && m.opts.NewContent != nil {
		w.Content = m.opts.NewContent(opts.Kind)
	}

	size := m.opts.DefaultSize
	if opts.Size != nil {
		size = *opts.Size
	}
	w.Width, w.Height = w.ClampSize(size.Width, size.Height)

	if opts.Position != nil {
		w.X, w.Y = opts.Position.X, opts.Position.Y
	} else {
		step := m.opts.CascadeStep * len(m.windows)
		w.X = m.opts.CascadeBase.X + step
		w.Y = m.opts.CascadeBase.Y + step
	}

	w.Z = m.nextZ()
	m.windows = append(m.windows, w)
	m.emit(EventCreated, w, "")

	if opts.Zone != DockNone {
		m.DockWindow(w.ID, opts.Zone)
	}
	return w, nil
}

// FocusWindow raises the window to the top of the stacking order by minting
// a fresh z value for it alone; every other window keeps its value, so the
// relative order of the rest is preserved.
func (m *Manager) FocusWindow(id string) {
	w := m.Window(id)
	if w == nil {
		return
	}
	w.Z = m.nextZ()
	m.emit(EventFocused, w, "")
}

// CloseWindow removes the window permanently. The z counter is not
// compacted. A second call with the same id is a no-op, not an error.
func (m *Manager) CloseWindow(id string) {
	for i, w := range m.windows {
		if w.ID != id {
			continue
		}
		if !w.Flags.Closable {
			return
		}
		m.windows = slices.Delete(m.windows, i, i+1)
		m.emit(EventClosed, w, "")
		return
	}
}

// MinimizeWindow moves the window to the taskbar. Its stored geometry is
// untouched; a maximized window first returns to its snapshot so restoring
// later lands on the normal rectangle. The stacking value is not altered.
func (m *Manager) MinimizeWindow(id string) {
	w := m.Window(id)
	if w == nil || !w.Flags.Minimizable || w.State == StateMinimized {
		return
	}
	if w.State == StateMaximized {
		m.unmaximize(w)
	}
	w.State = StateMinimized
	w.MinimizedAt = nowFunc()
	m.emit(EventMinimized, w, "")
}

// RestoreWindow returns a minimized window to the desktop at its stored
// geometry. Focus is the caller's concern.
func (m *Manager) RestoreWindow(id string) {
	w := m.Window(id)
	if w == nil || w.State != StateMinimized {
		return
	}
	w.State = StateNormal
	w.X, w.Y = w.ClampPosition(w.X, w.Y, m.viewport)
	m.emit(EventRestored, w, "")
}

// MaximizeWindow snapshots the current geometry and fills the viewport. The
// snapshot is taken on every transition, so repeated maximize/restore
// cycles always return to the most recent normal rectangle.
func (m *Manager) MaximizeWindow(id string) {
	w := m.Window(id)
	if w == nil || !w.Flags.Maximizable || w.State == StateMaximized {
		return
	}
	if w.State == StateMinimized {
		w.State = StateNormal
	}
	if w.Zone != DockNone {
		m.UndockWindow(id)
	}
	w.NormalRect = Rect{X: w.X, Y: w.Y, Width: w.Width, Height: w.Height}
	w.setFrame(Rect{X: 0, Y: 0, Width: m.viewport.Width, Height: m.viewport.Height})
	w.State = StateMaximized
	m.emit(EventMaximized, w, "")
}

// UnmaximizeWindow restores the pre-maximize rectangle.
func (m *Manager) UnmaximizeWindow(id string) {
	w := m.Window(id)
	if w == nil || w.State != StateMaximized {
		return
	}
	m.unmaximize(w)
	m.emit(EventUnmaximized, w, "")
}

func (m *Manager) unmaximize(w *Window) {
	w.setFrame(w.NormalRect)
	w.State = StateNormal
	w.Width, w.Height = w.ClampSize(w.Width, w.Height)
	w.X, w.Y = w.ClampPosition(w.X, w.Y, m.viewport)
}

// ToggleMaximize maximizes a normal window and restores a maximized one.
func (m *Manager) ToggleMaximize(id string) {
	w := m.Window(id)
	if w == nil {
		return
	}
	if w.State == StateMaximized {
		m.UnmaximizeWindow(id)
		return
	}
	m.MaximizeWindow(id)
}

// SetWindowPosition applies a position verbatim. Clamping is the
// interaction layer's responsibility and has already happened when this
// fires.
func (m *Manager) SetWindowPosition(id string, p Position) {
	w := m.Window(id)
	if w == nil {
		return
	}
	w.X, w.Y = p.X, p.Y
	m.emit(EventMoved, w, "")
}

// SetWindowSize applies a size verbatim; see SetWindowPosition.
func (m *Manager) SetWindowSize(id string, s Size) {
	w := m.Window(id)
	if w == nil {
		return
	}
	w.Width, w.Height = s.Width, s.Height
	m.emit(EventResized, w, "")
}

// SetLocked locks or unlocks a window. Locked windows refuse drag and
// resize sessions; lifecycle buttons still work.
func (m *Manager) SetLocked(id string, locked bool) {
	w := m.Window(id)
	if w == nil {
		return
	}
	w.Locked = locked
}

// SetCollapsed collapses a window to its header or expands it back. Stored
// geometry is untouched.
func (m *Manager) SetCollapsed(id string, collapsed bool) {
	w := m.Window(id)
	if w == nil || w.State == StateMaximized {
		return
	}
	w.Collapsed = collapsed
}

// ZoneFrame returns the viewport strip a dock zone occupies.
func (m *Manager) ZoneFrame(zone DockZone) Rect {
	v := m.viewport
	frac := m.opts.ZoneFraction
	switch zone {
	case DockLeft:
		return Rect{X: 0, Y: 0, Width: v.Width / frac, Height: v.Height}
	case DockRight:
		zw := v.Width / frac
		return Rect{X: v.Width - zw, Y: 0, Width: zw, Height: v.Height}
	case DockBottom:
		zh := v.Height / frac
		return Rect{X: 0, Y: v.Height - zh, Width: v.Width, Height: zh}
	}
	return Rect{}
}

// DockWindow snaps the window into an edge zone, snapshotting the floating
// geometry so undocking restores it. Docking a maximized window first
// restores it; passing DockNone undocks.
func (m *Manager) DockWindow(id string, zone DockZone) {
	if zone == DockNone {
		m.UndockWindow(id)
		return
	}
	w := m.Window(id)
	if w == nil || !w.Flags.Dockable {
		return
	}
	if w.State == StateMaximized {
		m.unmaximize(w)
	}
	if w.State == StateMinimized {
		w.State = StateNormal
	}
	if w.Zone == DockNone {
		w.NormalRect = Rect{X: w.X, Y: w.Y, Width: w.Width, Height: w.Height}
	}
	w.Zone = zone
	w.setFrame(m.ZoneFrame(zone))
	m.emit(EventDocked, w, zone.String())
}

// UndockWindow floats a docked window at its snapshot geometry.
func (m *Manager) UndockWindow(id string) {
	w := m.Window(id)
	if w == nil || w.Zone == DockNone {
		return
	}
	w.Zone = DockNone
	w.setFrame(w.NormalRect)
	w.Width, w.Height = w.ClampSize(w.Width, w.Height)
	w.X, w.Y = w.ClampPosition(w.X, w.Y, m.viewport)
	m.emit(EventUndocked, w, "")
}
