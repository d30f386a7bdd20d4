package input

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/daddyholnes/podplay-sanctuary-build/internal/app"
	"github.com/daddyholnes/podplay-sanctuary-build/internal/config"
	"github.com/daddyholnes/podplay-sanctuary-build/internal/wm"
)

func click(d *app.Desktop, x, y int) {
	handleMouseClick(tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseLeft}, d)
}

func rightClick(d *app.Desktop, x, y int) {
	handleMouseClick(tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseRight}, d)
}

func motion(d *app.Desktop, x, y int) {
	handleMouseMotion(tea.MouseMotionMsg{X: x, Y: y}, d)
}

func release(d *app.Desktop, x, y int) {
	handleMouseRelease(tea.MouseReleaseMsg{X: x, Y: y, Button: tea.MouseLeft}, d)
}

func wheel(d *app.Desktop, x, y int, btn tea.MouseButton) {
	handleMouseWheel(tea.MouseWheelMsg{X: x, Y: y, Button: btn}, d)
}

// placeWindow creates a window with an explicit frame so hit tests have
// known coordinates.
func placeWindow(t *testing.T, d *app.Desktop, title string, x, y, w, h int) *wm.Window {
	t.Helper()
	win := mustCreate(t, d, title)
	d.Manager.SetWindowSize(win.ID, wm.Size{Width: w, Height: h})
	d.Manager.SetWindowPosition(win.ID, wm.Position{X: x, Y: y})
	return win
}

func TestResizeHandleAt(t *testing.T) {
	frame := wm.Rect{X: 10, Y: 5, Width: 20, Height: 10}

	tests := []struct {
		name string
		x, y int
		want app.ResizeHandle
	}{
		{"top left corner", 10, 5, app.HandleTopLeft},
		{"top right corner", 29, 5, app.HandleTopRight},
		{"bottom left corner", 10, 14, app.HandleBottomLeft},
		{"bottom right corner", 29, 14, app.HandleBottomRight},
		{"bottom edge", 15, 14, app.HandleBottom},
		{"left edge", 10, 9, app.HandleLeft},
		{"right edge", 29, 9, app.HandleRight},
		{"header interior is not a handle", 15, 5, app.HandleNone},
		{"body", 15, 9, app.HandleNone},
		{"outside left", 9, 5, app.HandleNone},
		{"outside bottom", 30, 15, app.HandleNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resizeHandleAt(frame, tt.x, tt.y); got != tt.want {
				t.Errorf("resizeHandleAt(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestNearestCorner(t *testing.T) {
	frame := wm.Rect{X: 10, Y: 5, Width: 20, Height: 10}

	tests := []struct {
		name string
		x, y int
		want app.ResizeHandle
	}{
		{"upper left quadrant", 12, 6, app.HandleTopLeft},
		{"upper right quadrant", 27, 6, app.HandleTopRight},
		{"lower left quadrant", 12, 13, app.HandleBottomLeft},
		{"lower right quadrant", 27, 13, app.HandleBottomRight},
		{"center goes to bottom right", 20, 10, app.HandleBottomRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nearestCorner(frame, tt.x, tt.y); got != tt.want {
				t.Errorf("nearestCorner(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestScreenCoordinateHelpers(t *testing.T) {
	resetAppearance(t)

	tests := []struct {
		position  string
		y         int
		wantArea  int
		wantStrip bool
	}{
		{"bottom", 0, 0, false},
		{"bottom", 37, 37, false},
		{"bottom", 38, 38, true},
		{"bottom", 39, 39, true},
		{"top", 0, -2, true},
		{"top", 1, -1, true},
		{"top", 2, 0, false},
		{"hidden", 39, 39, false},
		{"hidden", 0, 0, false},
	}

	for _, tt := range tests {
		config.TaskbarPosition = tt.position
		if got := windowAreaY(tt.y); got != tt.wantArea {
			t.Errorf("%s taskbar: windowAreaY(%d) = %d, want %d", tt.position, tt.y, got, tt.wantArea)
		}
		if got := onTaskbarStrip(tt.y, 40); got != tt.wantStrip {
			t.Errorf("%s taskbar: onTaskbarStrip(%d) = %v, want %v", tt.position, tt.y, got, tt.wantStrip)
		}
	}
}

func TestHoverZone(t *testing.T) {
	d := newTestDesktop(t)
	viewport := d.Manager.Viewport()
	w := mustCreate(t, d, "panel")

	tests := []struct {
		name string
		x, y int
		want wm.DockZone
	}{
		{"left edge", 0, 10, wm.DockLeft},
		{"right edge", viewport.Width - 1, 10, wm.DockRight},
		{"bottom edge", 50, viewport.Height - 1, wm.DockBottom},
		{"interior", 50, 20, wm.DockNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hoverZone(w, tt.x, tt.y, viewport); got != tt.want {
				t.Errorf("hoverZone(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}

	t.Run("undockable window has no zones", func(t *testing.T) {
		flags := wm.DefaultFlags()
		flags.Dockable = false
		pinned, err := d.Manager.CreateWindow("pinned", nil, wm.Options{Flags: &flags})
		if err != nil {
			t.Fatalf("CreateWindow: %v", err)
		}
		if got := hoverZone(pinned, 0, 10, viewport); got != wm.DockNone {
			t.Errorf("hoverZone = %v, want %v", got, wm.DockNone)
		}
	})
}

func TestHeaderDragLifecycle(t *testing.T) {
	d := newTestDesktop(t)
	w := placeWindow(t, d, "note", 20, 5, 40, 12)

	click(d, 30, 5)
	if !d.Dragging {
		t.Fatal("header press did not start a drag")
	}
	if d.DragWindowID != w.ID {
		t.Errorf("DragWindowID = %q, want %q", d.DragWindowID, w.ID)
	}
	if d.DragOffsetX != 10 || d.DragOffsetY != 0 {
		t.Errorf("drag offset = (%d,%d), want (10,0)", d.DragOffsetX, d.DragOffsetY)
	}
	if !d.InteractionMode {
		t.Error("interaction mode not set")
	}
	if got := d.Manager.FocusedWindow(); got == nil || got.ID != w.ID {
		t.Error("press did not focus the window")
	}

	motion(d, 35, 8)
	if w.X != 25 || w.Y != 8 {
		t.Errorf("window at (%d,%d) after motion, want (25,8)", w.X, w.Y)
	}
	if d.HoverZone != wm.DockNone {
		t.Errorf("HoverZone = %v, want %v", d.HoverZone, wm.DockNone)
	}

	release(d, 35, 8)
	if w.X != 25 || w.Y != 8 {
		t.Errorf("window at (%d,%d) after release, want (25,8)", w.X, w.Y)
	}
	if d.Dragging || d.DragWindowID != "" || d.InteractionMode {
		t.Error("drag session not cleared on release")
	}
}

func TestDragClampsToViewport(t *testing.T) {
	d := newTestDesktop(t)
	w := placeWindow(t, d, "note", 20, 5, 40, 12)

	click(d, 30, 5)
	motion(d, 0, 0)
	if w.X != 0 || w.Y != 0 {
		t.Errorf("window at (%d,%d), want clamp to (0,0)", w.X, w.Y)
	}

	// Viewport is 120x38; the frame can go no further than (80,26)
	motion(d, 110, 30)
	if w.X != 80 || w.Y != 26 {
		t.Errorf("window at (%d,%d), want clamp to (80,26)", w.X, w.Y)
	}
	release(d, 110, 30)
}

func TestDragToEdgeDocks(t *testing.T) {
	d := newTestDesktop(t)
	w := placeWindow(t, d, "panel", 20, 5, 40, 12)

	click(d, 30, 5)
	motion(d, 0, 10)
	if d.HoverZone != wm.DockLeft {
		t.Fatalf("HoverZone = %v, want %v", d.HoverZone, wm.DockLeft)
	}

	release(d, 0, 10)
	if w.Zone != wm.DockLeft {
		t.Errorf("Zone = %v, want %v", w.Zone, wm.DockLeft)
	}
	if d.Dragging || d.HoverZone != wm.DockNone {
		t.Error("session not cleared after dock")
	}
}

func TestDragUndockableWindowNeverDocks(t *testing.T) {
	d := newTestDesktop(t)
	flags := wm.DefaultFlags()
	flags.Dockable = false
	w, err := d.Manager.CreateWindow("pinned", nil, wm.Options{Flags: &flags})
	if err != nil {
		t.Fatalf("CreateWindow: %v", err)
	}
	d.Manager.SetWindowSize(w.ID, wm.Size{Width: 40, Height: 12})
	d.Manager.SetWindowPosition(w.ID, wm.Position{X: 20, Y: 5})

	click(d, 30, 5)
	motion(d, 0, 10)
	if d.HoverZone != wm.DockNone {
		t.Fatalf("HoverZone = %v, want %v", d.HoverZone, wm.DockNone)
	}
	release(d, 0, 10)
	if w.Zone != wm.DockNone {
		t.Errorf("Zone = %v, want %v", w.Zone, wm.DockNone)
	}
	if w.X != 0 || w.Y != 10 {
		t.Errorf("window at (%d,%d), want plain move to (0,10)", w.X, w.Y)
	}
}

func TestDockedHeaderDragTearsOff(t *testing.T) {
	d := newTestDesktop(t)
	w := placeWindow(t, d, "panel", 20, 5, 40, 12)

	d.Manager.DockWindow(w.ID, wm.DockBottom)
	strip := w.Frame()
	if strip != d.Manager.ZoneFrame(wm.DockBottom) {
		t.Fatalf("docked frame = %+v, want zone frame", strip)
	}

	// Grab the docked header mid-strip
	click(d, 60, strip.Y)
	if !d.Dragging {
		t.Fatal("drag did not start on docked header")
	}
	if w.Zone != wm.DockNone {
		t.Fatalf("Zone = %v, want %v after tear-off", w.Zone, wm.DockNone)
	}
	if w.Width != 40 || w.Height != 12 {
		t.Errorf("torn-off size = %dx%d, want 40x12", w.Width, w.Height)
	}
	if 60 < w.X || 60 >= w.X+w.Width {
		t.Errorf("grab point x=60 outside torn-off header [%d,%d)", w.X, w.X+w.Width)
	}

	motion(d, 30, 10)
	if want := 30 - d.DragOffsetX; w.X != want || w.Y != 10 {
		t.Errorf("window at (%d,%d), want (%d,10)", w.X, w.Y, want)
	}

	release(d, 30, 10)
	if w.Zone != wm.DockNone {
		t.Errorf("Zone = %v, want %v after floating drop", w.Zone, wm.DockNone)
	}
	if d.Dragging {
		t.Error("session not cleared")
	}
}

// buttonColumn scans the top border for the first cell mapped to the given
// control button.
func buttonColumn(t *testing.T, w *wm.Window, button string) int {
	t.Helper()
	frame := w.Frame()
	for x := frame.X; x < frame.X+frame.Width; x++ {
		if app.WindowButtonAt(w, x) == button {
			return x
		}
	}
	t.Fatalf("no %q button on window %q", button, w.Title)
	return -1
}

func TestWindowButtonClicks(t *testing.T) {
	t.Run("close", func(t *testing.T) {
		d := newTestDesktop(t)
		w := placeWindow(t, d, "note", 20, 5, 40, 12)
		click(d, buttonColumn(t, w, "close"), 5)
		if d.Manager.Window(w.ID) != nil {
			t.Error("window still present after close click")
		}
		if d.Dragging || d.Resizing || d.InteractionMode {
			t.Error("button click left a session behind")
		}
	})

	t.Run("minimize", func(t *testing.T) {
		d := newTestDesktop(t)
		w := placeWindow(t, d, "note", 20, 5, 40, 12)
		click(d, buttonColumn(t, w, "minimize"), 5)
		if w.State != wm.StateMinimized {
			t.Errorf("state = %v, want %v", w.State, wm.StateMinimized)
		}
	})

	t.Run("maximize toggles", func(t *testing.T) {
		d := newTestDesktop(t)
		w := placeWindow(t, d, "note", 20, 5, 40, 12)
		click(d, buttonColumn(t, w, "maximize"), 5)
		if w.State != wm.StateMaximized {
			t.Fatalf("state = %v, want %v", w.State, wm.StateMaximized)
		}

		// The maximized frame has its own button geometry
		frame := w.Frame()
		click(d, buttonColumn(t, w, "maximize"), frame.Y)
		if w.State != wm.StateNormal {
			t.Errorf("state = %v, want %v", w.State, wm.StateNormal)
		}
	})
}

func TestRightDragResizesNearestCorner(t *testing.T) {
	d := newTestDesktop(t)
	w := placeWindow(t, d, "note", 20, 5, 40, 12)

	// (50,12) falls in the lower right quadrant
	rightClick(d, 50, 12)
	if !d.Resizing {
		t.Fatal("right press did not start a resize")
	}
	if d.ResizeHandle != app.HandleBottomRight {
		t.Errorf("handle = %v, want %v", d.ResizeHandle, app.HandleBottomRight)
	}
	if d.PreResize != (wm.Rect{X: 20, Y: 5, Width: 40, Height: 12}) {
		t.Errorf("PreResize = %+v", d.PreResize)
	}

	motion(d, 56, 15)
	if w.Width != 46 || w.Height != 15 {
		t.Errorf("size = %dx%d, want 46x15", w.Width, w.Height)
	}
	if w.X != 20 || w.Y != 5 {
		t.Errorf("position drifted to (%d,%d)", w.X, w.Y)
	}

	release(d, 56, 15)
	if d.Resizing || d.ResizeWindowID != "" || d.ResizeHandle != app.HandleNone {
		t.Error("resize session not cleared")
	}
	if w.Width != 46 || w.Height != 15 {
		t.Errorf("size after release = %dx%d, want 46x15", w.Width, w.Height)
	}
}

func TestLeftEdgeResizeKeepsRightEdgeFixed(t *testing.T) {
	d := newTestDesktop(t)
	w := placeWindow(t, d, "note", 20, 5, 40, 12)

	click(d, 20, 9)
	if !d.Resizing || d.ResizeHandle != app.HandleLeft {
		t.Fatalf("session = %v handle %v, want left resize", d.Resizing, d.ResizeHandle)
	}

	motion(d, 15, 9)
	if w.X != 15 || w.Width != 45 {
		t.Errorf("frame x=%d width=%d, want x=15 width=45", w.X, w.Width)
	}

	// Shrinking below the minimum pins the right edge while the clamp
	// holds the width
	motion(d, 50, 9)
	if w.Width != wm.DefaultMinWidth {
		t.Errorf("width = %d, want minimum %d", w.Width, wm.DefaultMinWidth)
	}
	if w.X+w.Width != 60 {
		t.Errorf("right edge at %d, want 60", w.X+w.Width)
	}

	release(d, 50, 9)
}

func TestTopLeftCornerResize(t *testing.T) {
	d := newTestDesktop(t)
	w := placeWindow(t, d, "note", 20, 5, 40, 12)

	click(d, 20, 5)
	if !d.Resizing || d.ResizeHandle != app.HandleTopLeft {
		t.Fatalf("corner press handle = %v, want %v", d.ResizeHandle, app.HandleTopLeft)
	}

	motion(d, 17, 3)
	if w.X != 17 || w.Y != 3 || w.Width != 43 || w.Height != 14 {
		t.Errorf("frame = (%d,%d) %dx%d, want (17,3) 43x14", w.X, w.Y, w.Width, w.Height)
	}
	if w.X+w.Width != 60 || w.Y+w.Height != 17 {
		t.Errorf("opposite edges moved: right %d bottom %d", w.X+w.Width, w.Y+w.Height)
	}

	release(d, 17, 3)
}

func TestClickFocusesTopWindow(t *testing.T) {
	d := newTestDesktop(t)
	back := placeWindow(t, d, "back", 20, 5, 40, 12)
	front := placeWindow(t, d, "front", 30, 8, 40, 12)

	// In the overlap the higher z wins
	click(d, 35, 10)
	if got := d.Manager.FocusedWindow(); got.ID != front.ID {
		t.Errorf("focused %q, want %q", got.Title, front.Title)
	}
	if d.Dragging || d.Resizing {
		t.Error("body click started a session")
	}
	if d.InteractionMode {
		t.Error("interaction mode left on after a body click")
	}

	// A click where only the back window sits brings it forward
	click(d, 25, 9)
	if got := d.Manager.FocusedWindow(); got.ID != back.ID {
		t.Errorf("focused %q, want %q", got.Title, back.Title)
	}
}

func TestClickOnEmptyDesktop(t *testing.T) {
	d := newTestDesktop(t)
	placeWindow(t, d, "corner", 0, 0, 20, 6)

	click(d, 80, 25)
	if d.Dragging || d.Resizing || d.InteractionMode {
		t.Error("click on empty space started a session")
	}
}

func TestNonDraggableHeader(t *testing.T) {
	d := newTestDesktop(t)
	flags := wm.DefaultFlags()
	flags.Draggable = false
	w, err := d.Manager.CreateWindow("fixed", nil, wm.Options{Flags: &flags})
	if err != nil {
		t.Fatalf("CreateWindow: %v", err)
	}
	d.Manager.SetWindowSize(w.ID, wm.Size{Width: 40, Height: 12})
	d.Manager.SetWindowPosition(w.ID, wm.Position{X: 20, Y: 5})

	click(d, 30, 5)
	if d.Dragging {
		t.Error("non-draggable window started a drag")
	}
	if got := d.Manager.FocusedWindow(); got == nil || got.ID != w.ID {
		t.Error("window not focused")
	}
}

func TestLockedWindowIgnoresResize(t *testing.T) {
	d := newTestDesktop(t)
	w := placeWindow(t, d, "panel", 20, 5, 40, 12)
	d.Manager.SetLocked(w.ID, true)

	rightClick(d, 50, 12)
	if d.Resizing {
		t.Error("locked window started a resize from right press")
	}
	click(d, 20, 9)
	if d.Resizing {
		t.Error("locked window started a resize from edge press")
	}
	if d.InteractionMode {
		t.Error("interaction mode left on")
	}
}

func TestTaskbarClickRestores(t *testing.T) {
	d := newTestDesktop(t)
	w := mustCreate(t, d, "alpha")
	d.Manager.MinimizeWindow(w.ID)

	// Items sit on the last screen row with the taskbar at the bottom
	itemX := -1
	for x := 0; x < d.Width; x++ {
		if d.FindTaskbarItem(x, 39) == w.ID {
			itemX = x
			break
		}
	}
	if itemX < 0 {
		t.Fatal("minimized window has no taskbar pill")
	}

	click(d, itemX, 39)
	if w.State != wm.StateNormal {
		t.Errorf("state = %v, want %v", w.State, wm.StateNormal)
	}
	if got := d.Manager.FocusedWindow(); got == nil || got.ID != w.ID {
		t.Error("restored window not focused")
	}
	if d.Dragging || d.InteractionMode {
		t.Error("taskbar click started a session")
	}
}

func TestWheelBehavior(t *testing.T) {
	t.Run("raises the window under the pointer", func(t *testing.T) {
		d := newTestDesktop(t)
		back := placeWindow(t, d, "back", 20, 5, 40, 12)
		placeWindow(t, d, "front", 70, 5, 40, 12)

		wheel(d, 25, 9, tea.MouseWheelUp)
		if got := d.Manager.FocusedWindow(); got.ID != back.ID {
			t.Errorf("focused %q, want %q", got.Title, back.Title)
		}
	})

	t.Run("ignores the taskbar strip", func(t *testing.T) {
		d := newTestDesktop(t)
		placeWindow(t, d, "back", 20, 5, 40, 12)
		front := placeWindow(t, d, "front", 70, 5, 40, 12)

		wheel(d, 25, 39, tea.MouseWheelUp)
		if got := d.Manager.FocusedWindow(); got.ID != front.ID {
			t.Errorf("focused %q, want %q", got.Title, front.Title)
		}
	})

	t.Run("scrolls the help overlay", func(t *testing.T) {
		d := newTestDesktop(t)
		d.ShowHelp = true
		wheel(d, 0, 0, tea.MouseWheelDown)
		wheel(d, 0, 0, tea.MouseWheelDown)
		if d.HelpScrollOffset != 2 {
			t.Errorf("offset = %d, want 2", d.HelpScrollOffset)
		}
		for i := 0; i < 5; i++ {
			wheel(d, 0, 0, tea.MouseWheelUp)
		}
		if d.HelpScrollOffset != 0 {
			t.Errorf("offset = %d, want clamp at 0", d.HelpScrollOffset)
		}
	})

	t.Run("scrolls the log overlay", func(t *testing.T) {
		d := newTestDesktop(t)
		d.ShowLogs = true
		d.LogScrollOffset = 5
		wheel(d, 0, 0, tea.MouseWheelUp)
		if d.LogScrollOffset != 4 {
			t.Errorf("offset = %d, want 4", d.LogScrollOffset)
		}
		wheel(d, 0, 0, tea.MouseWheelDown)
		if d.LogScrollOffset != 5 {
			t.Errorf("offset = %d, want 5", d.LogScrollOffset)
		}
	})
}

func TestReleaseWithoutSession(t *testing.T) {
	d := newTestDesktop(t)
	placeWindow(t, d, "note", 20, 5, 40, 12)

	release(d, 30, 8)
	if d.Dragging || d.Resizing || d.InteractionMode {
		t.Error("release invented a session")
	}
}

func TestMotionTracksPointer(t *testing.T) {
	d := newTestDesktop(t)
	w := placeWindow(t, d, "note", 20, 5, 40, 12)

	motion(d, 77, 13)
	if d.LastMouseX != 77 || d.LastMouseY != 13 {
		t.Errorf("pointer = (%d,%d), want (77,13)", d.LastMouseX, d.LastMouseY)
	}
	if w.X != 20 || w.Y != 5 {
		t.Error("motion without a session moved a window")
	}
}
