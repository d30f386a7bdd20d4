package input

import (
	tea "charm.land/bubbletea/v2"

	"github.com/daddyholnes/podplay-sanctuary-build/internal/app"
	"github.com/daddyholnes/podplay-sanctuary-build/internal/config"
	"github.com/daddyholnes/podplay-sanctuary-build/internal/wm"
)

// windowAreaY converts a screen row to window-area coordinates. The window
// area starts below the taskbar when the taskbar sits on top.
func windowAreaY(y int) int {
	if config.TaskbarPosition == "top" {
		return y - config.TaskbarHeight
	}
	return y
}

// onTaskbarStrip reports whether a screen row lands on the taskbar.
func onTaskbarStrip(y, height int) bool {
	switch config.TaskbarPosition {
	case "top":
		return y < config.TaskbarHeight
	case "bottom":
		return y >= height-config.TaskbarHeight
	}
	return false
}

func handleMouseClick(msg tea.MouseClickMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	mouse := msg.Mouse()
	x, y := mouse.X, mouse.Y

	// The taskbar strip consumes every click, on an item or not
	if onTaskbarStrip(y, d.Height) {
		if id := d.FindTaskbarItem(x, y); id != "" {
			d.Manager.RestoreWindow(id)
			d.Manager.FocusWindow(id)
		}
		return d, nil
	}

	wy := windowAreaY(y)
	w := d.Manager.TopWindowAt(x, wy)
	if w == nil {
		return d, nil
	}

	// Focus first so the click gives feedback even when nothing else happens
	d.Manager.FocusWindow(w.ID)
	d.InteractionMode = true

	frame := w.Frame()

	if mouse.Button == tea.MouseLeft && wy == frame.Y {
		switch app.WindowButtonAt(w, x) {
		case "close":
			d.InteractionMode = false
			d.Manager.CloseWindow(w.ID)
			return d, nil
		case "maximize":
			d.InteractionMode = false
			d.Manager.ToggleMaximize(w.ID)
			return d, nil
		case "minimize":
			d.InteractionMode = false
			d.Manager.MinimizeWindow(w.ID)
			return d, nil
		}
	}

	switch mouse.Button {
	case tea.MouseRight:
		// Right-button drag resizes from the corner nearest the grab point
		if !w.CanResize() {
			d.InteractionMode = false
			return d, nil
		}
		startResize(d, w, nearestCorner(frame, x, wy), x, wy)
	case tea.MouseLeft:
		if handle := resizeHandleAt(frame, x, wy); handle != app.HandleNone {
			if !w.CanResize() {
				d.InteractionMode = false
				return d, nil
			}
			startResize(d, w, handle, x, wy)
			return d, nil
		}
		if wy == frame.Y && w.CanDrag() {
			d.Dragging = true
			d.DragWindowID = w.ID
			d.DragOffsetX = x - frame.X
			d.DragOffsetY = wy - frame.Y
			if w.Zone != wm.DockNone {
				tearOff(d, w, x, wy, frame)
			}
			return d, nil
		}
		d.InteractionMode = false
	default:
		d.InteractionMode = false
	}
	return d, nil
}

// startResize opens a resize session anchored on the pre-resize frame.
func startResize(d *app.Desktop, w *wm.Window, handle app.ResizeHandle, x, y int) {
	d.Resizing = true
	d.ResizeWindowID = w.ID
	d.ResizeHandle = handle
	d.ResizeStartX = x
	d.ResizeStartY = y
	d.PreResize = w.Frame()
}

// resizeHandleAt maps a window-area cell on the window border to a resize
// handle. The top border's interior is the drag header, so only its corner
// cells resize.
func resizeHandleAt(frame wm.Rect, x, y int) app.ResizeHandle {
	if !frame.Contains(x, y) {
		return app.HandleNone
	}
	left := x == frame.X
	right := x == frame.X+frame.Width-1
	top := y == frame.Y
	bottom := y == frame.Y+frame.Height-1

	switch {
	case top && left:
		return app.HandleTopLeft
	case top && right:
		return app.HandleTopRight
	case bottom && left:
		return app.HandleBottomLeft
	case bottom && right:
		return app.HandleBottomRight
	case bottom:
		return app.HandleBottom
	case left:
		return app.HandleLeft
	case right:
		return app.HandleRight
	}
	return app.HandleNone
}

// nearestCorner picks the corner handle for the quadrant the point falls in.
func nearestCorner(frame wm.Rect, x, y int) app.ResizeHandle {
	midX := frame.X + frame.Width/2
	midY := frame.Y + frame.Height/2
	if y < midY {
		if x < midX {
			return app.HandleTopLeft
		}
		return app.HandleTopRight
	}
	if x < midX {
		return app.HandleBottomLeft
	}
	return app.HandleBottomRight
}

func handleMouseMotion(msg tea.MouseMotionMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	mouse := msg.Mouse()
	d.LastMouseX = mouse.X
	d.LastMouseY = mouse.Y

	if !d.Dragging && !d.Resizing {
		return d, nil
	}

	x, wy := mouse.X, windowAreaY(mouse.Y)

	if d.Dragging {
		w := d.Manager.Window(d.DragWindowID)
		if w == nil {
			clearSession(d)
			return d, nil
		}
		newX, newY := w.ClampPosition(x-d.DragOffsetX, wy-d.DragOffsetY, d.Manager.Viewport())
		w.X, w.Y = newX, newY
		d.HoverZone = hoverZone(w, x, wy, d.Manager.Viewport())
		return d, nil
	}

	w := d.Manager.Window(d.ResizeWindowID)
	if w == nil {
		clearSession(d)
		return d, nil
	}
	applyResize(d, w, x-d.ResizeStartX, wy-d.ResizeStartY)
	return d, nil
}

// applyResize sizes the window from the pre-resize snapshot so deltas do not
// accumulate rounding across motion events. Left and top handles shift the
// position to keep the opposite edge fixed, including when the clamp kicks
// in.
func applyResize(d *app.Desktop, w *wm.Window, dx, dy int) {
	pre := d.PreResize

	newW := pre.Width
	switch d.ResizeHandle {
	case app.HandleLeft, app.HandleTopLeft, app.HandleBottomLeft:
		newW = pre.Width - dx
	case app.HandleRight, app.HandleTopRight, app.HandleBottomRight:
		newW = pre.Width + dx
	}

	newH := pre.Height
	switch d.ResizeHandle {
	case app.HandleTop, app.HandleTopLeft, app.HandleTopRight:
		newH = pre.Height - dy
	case app.HandleBottom, app.HandleBottomLeft, app.HandleBottomRight:
		newH = pre.Height + dy
	}

	newW, newH = w.ClampSize(newW, newH)

	newX, newY := pre.X, pre.Y
	switch d.ResizeHandle {
	case app.HandleLeft, app.HandleTopLeft, app.HandleBottomLeft:
		newX = pre.X + pre.Width - newW
	}
	switch d.ResizeHandle {
	case app.HandleTop, app.HandleTopLeft, app.HandleTopRight:
		newY = pre.Y + pre.Height - newH
	}

	w.Width, w.Height = newW, newH
	newX, newY = w.ClampPosition(newX, newY, d.Manager.Viewport())
	w.X, w.Y = newX, newY
}

// hoverZone reports the dock zone a drag point is hovering, if the window
// can dock there.
func hoverZone(w *wm.Window, x, y int, viewport wm.Size) wm.DockZone {
	if !w.Flags.Dockable {
		return wm.DockNone
	}
	switch {
	case x <= 0:
		return wm.DockLeft
	case x >= viewport.Width-1:
		return wm.DockRight
	case y >= viewport.Height-1:
		return wm.DockBottom
	}
	return wm.DockNone
}

// tearOff undocks a window the moment a drag grabs its header. The floating
// size comes back from the dock snapshot; the grab offset is scaled into the
// restored width so the header stays under the cursor instead of jumping to
// the snapshot position.
func tearOff(d *app.Desktop, w *wm.Window, x, wy int, docked wm.Rect) {
	d.Manager.UndockWindow(w.ID)
	f := w.Frame()
	if docked.Width > 0 {
		d.DragOffsetX = d.DragOffsetX * f.Width / docked.Width
	}
	w.X, w.Y = w.ClampPosition(x-d.DragOffsetX, wy-d.DragOffsetY, d.Manager.Viewport())
}

func handleMouseRelease(msg tea.MouseReleaseMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	if d.Dragging {
		if w := d.Manager.Window(d.DragWindowID); w != nil {
			if d.HoverZone != wm.DockNone {
				d.Manager.DockWindow(w.ID, d.HoverZone)
			} else {
				// One moved event per gesture, not per motion sample
				d.Manager.SetWindowPosition(w.ID, wm.Position{X: w.X, Y: w.Y})
			}
		}
	}
	if d.Resizing {
		if w := d.Manager.Window(d.ResizeWindowID); w != nil {
			d.Manager.SetWindowSize(w.ID, wm.Size{Width: w.Width, Height: w.Height})
		}
	}
	clearSession(d)
	return d, nil
}

// clearSession drops all drag and resize state. Runs on every release so a
// stray button-up can never leave a stuck session behind.
func clearSession(d *app.Desktop) {
	d.Dragging = false
	d.DragWindowID = ""
	d.Resizing = false
	d.ResizeWindowID = ""
	d.ResizeHandle = app.HandleNone
	d.HoverZone = wm.DockNone
	d.InteractionMode = false
}

func handleMouseWheel(msg tea.MouseWheelMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	if d.ShowHelp {
		switch msg.Button {
		case tea.MouseWheelUp:
			d.HelpScrollOffset = max(d.HelpScrollOffset-1, 0)
		case tea.MouseWheelDown:
			d.HelpScrollOffset++
		}
		return d, nil
	}
	if d.ShowLogs {
		switch msg.Button {
		case tea.MouseWheelUp:
			d.LogScrollOffset = max(d.LogScrollOffset-1, 0)
		case tea.MouseWheelDown:
			// The viewer clamps to its own maximum when rendering
			d.LogScrollOffset++
		}
		return d, nil
	}

	mouse := msg.Mouse()
	if onTaskbarStrip(mouse.Y, d.Height) {
		return d, nil
	}
	// Wheel over a window raises and focuses it
	if w := d.Manager.TopWindowAt(mouse.X, windowAreaY(mouse.Y)); w != nil {
		d.Manager.FocusWindow(w.ID)
	}
	return d, nil
}
