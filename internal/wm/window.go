package wm

import (
	"time"

	"github.com/google/uuid"
)

// State represents the visual state of a window. Exactly one state holds at
// a time; the normal-state rectangle is preserved across maximize and dock
// transitions so leaving those states restores the prior geometry.
type State int

const (
	// StateNormal is a window at its own position and size.
	StateNormal State = iota
	// StateMinimized hides the window from the desktop; it appears only in
	// the taskbar and keeps its stored geometry untouched.
	StateMinimized
	// StateMaximized overrides the geometry to fill the viewport.
	StateMaximized
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateMinimized:
		return "minimized"
	case StateMaximized:
		return "maximized"
	}
	return "unknown"
}

// DockZone identifies an edge region a window can dock into.
type DockZone int

const (
	// DockNone means the window floats freely.
	DockNone DockZone = iota
	// DockLeft docks the window to the left edge strip.
	DockLeft
	// DockRight docks the window to the right edge strip.
	DockRight
	// DockBottom docks the window to the bottom strip.
	DockBottom
)

// String returns the zone name.
func (z DockZone) String() string {
	switch z {
	case DockNone:
		return "none"
	case DockLeft:
		return "left"
	case DockRight:
		return "right"
	case DockBottom:
		return "bottom"
	}
	return "unknown"
}

// ParseDockZone converts a zone name to a DockZone.
func ParseDockZone(s string) (DockZone, bool) {
	switch s {
	case "none":
		return DockNone, true
	case "left":
		return DockLeft, true
	case "right":
		return DockRight, true
	case "bottom":
		return DockBottom, true
	}
	return DockNone, false
}

// Rect is a rectangle in cell coordinates with a top-left origin.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Contains reports whether the point (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Intersects reports whether two rectangles overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.Width && o.X < r.X+r.Width &&
		r.Y < o.Y+o.Height && o.Y < r.Y+r.Height
}

// Size is a width/height pair.
type Size struct {
	Width  int
	Height int
}

// Position is an x/y pair.
type Position struct {
	X int
	Y int
}

// Flags controls which lifecycle operations a window accepts. Operations
// whose flag is false are silent no-ops.
type Flags struct {
	Resizable   bool
	Draggable   bool
	Closable    bool
	Minimizable bool
	Maximizable bool
	Dockable    bool
}

// DefaultFlags returns the flag set for an ordinary window: everything
// allowed.
func DefaultFlags() Flags {
	return Flags{
		Resizable:   true,
		Draggable:   true,
		Closable:    true,
		Minimizable: true,
		Maximizable: true,
		Dockable:    true,
	}
}

// Renderer produces the content drawn inside a window. Implementations are
// opaque to the manager: it never inspects content, only asks it to render
// at the window's current inner dimensions.
type Renderer interface {
	Render(width, height int) string
}

// CollapsedHeight is the height of a collapsed window: just the header and
// bottom border.
const CollapsedHeight = 2

// Window is a single managed surface. The geometry fields always hold the
// rectangle the window currently occupies; NormalRect carries the suspended
// normal-state geometry while the window is maximized or docked.
type Window struct {
	ID    string
	Title string
	Kind  string
	Icon  string

	X      int
	Y      int
	Width  int
	Height int

	MinWidth  int
	MinHeight int
	MaxWidth  int // 0 means unbounded
	MaxHeight int // 0 means unbounded

	Z     int
	State State
	Flags Flags

	Locked    bool
	Collapsed bool
	Zone      DockZone

	// NormalRect is the geometry restored when the window leaves the
	// maximized or docked state. Valid only while one of those holds.
	NormalRect Rect

	// MinimizedAt orders taskbar entries by when they were minimized.
	MinimizedAt time.Time

	Content Renderer
}

func newID() string {
	return uuid.New().String()
}

// nowFunc is swapped in tests for deterministic taskbar ordering.
var nowFunc = time.Now

// Frame returns the rectangle the window currently occupies, accounting for
// the collapsed header-only form.
func (w *Window) Frame() Rect {
	h := w.Height
	if w.Collapsed && w.State != StateMaximized {
		h = CollapsedHeight
	}
	return Rect{X: w.X, Y: w.Y, Width: w.Width, Height: h}
}

// EffectiveHeight is the number of rows the window renders.
func (w *Window) EffectiveHeight() int {
	if w.Collapsed && w.State != StateMaximized {
		return CollapsedHeight
	}
	return w.Height
}

// CanDrag reports whether a drag may begin on this window.
func (w *Window) CanDrag() bool {
	return w.Flags.Draggable && !w.Locked && w.State != StateMaximized
}

// CanResize reports whether a resize may begin on this window.
func (w *Window) CanResize() bool {
	return w.Flags.Resizable && !w.Locked && !w.Collapsed &&
		w.State != StateMaximized && w.Zone == DockNone
}

// ClampSize clamps a candidate size into the window's min/max bounds.
// Malformed values never propagate: sizes below the minimum snap up, sizes
// above a set maximum snap down.
func (w *Window) ClampSize(width, height int) (int, int) {
	if width < w.MinWidth {
		width = w.MinWidth
	}
	if w.MaxWidth > 0 && width > w.MaxWidth {
		width = w.MaxWidth
	}
	if height < w.MinHeight {
		height = w.MinHeight
	}
	if w.MaxHeight > 0 && height > w.MaxHeight {
		height = w.MaxHeight
	}
	return width, height
}

// ClampPosition clamps a candidate top-left position so the window stays
// fully inside the viewport: 0 <= x <= viewport.Width - window width, and
// likewise for y. Windows larger than the viewport pin to the origin.
func (w *Window) ClampPosition(x, y int, viewport Size) (int, int) {
	f := w.Frame()
	maxX := viewport.Width - f.Width
	maxY := viewport.Height - f.Height
	if x > maxX {
		x = maxX
	}
	if x < 0 {
		x = 0
	}
	if y > maxY {
		y = maxY
	}
	if y < 0 {
		y = 0
	}
	return x, y
}

// setFrame applies a rectangle to the window's geometry fields.
func (w *Window) setFrame(r Rect) {
	w.X = r.X
	w.Y = r.Y
	w.Width = r.Width
	w.Height = r.Height
}
