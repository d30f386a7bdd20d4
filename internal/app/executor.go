package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/daddyholnes/podplay-sanctuary-build/internal/config"
	"github.com/daddyholnes/podplay-sanctuary-build/internal/content"
	"github.com/daddyholnes/podplay-sanctuary-build/internal/theme"
	"github.com/daddyholnes/podplay-sanctuary-build/internal/wm"
)

// The following methods implement the script.Executor interface so a
// desktop can be driven by scene playback. Scenes address windows by
// title; a miss is an error so typos surface during playback instead of
// silently skipping steps.

func (d *Desktop) findWindow(title string) *wm.Window {
	for _, w := range d.Manager.Windows() {
		if w.Title == title {
			return w
		}
	}
	for _, w := range d.Manager.Windows() {
		if strings.EqualFold(w.Title, title) {
			return w
		}
	}
	return nil
}

func errNoWindow(title string) error {
	return fmt.Errorf("no window titled %q", title)
}

// OpenWindow creates a window. Negative coordinates cascade; negative
// dimensions use the default size.
func (d *Desktop) OpenWindow(title, kind string, x, y, width, height int) error {
	if kind == "" {
		kind = d.Config.Behavior.DefaultKind
	}
	normalized, ok := content.ParseKind(kind)
	if !ok {
		return fmt.Errorf("unknown content kind %q", kind)
	}
	kind = normalized

	opts := wm.Options{
		Kind: kind,
		Icon: content.Icon(kind),
	}
	if x >= 0 && y >= 0 {
		opts.Position = &wm.Position{X: x, Y: y}
	}
	if width > 0 && height > 0 {
		opts.Size = &wm.Size{Width: width, Height: height}
	}

	_, err := d.Manager.CreateWindow(title, nil, opts)
	return err
}

// CloseWindow closes the window with the given title.
func (d *Desktop) CloseWindow(title string) error {
	w := d.findWindow(title)
	if w == nil {
		return errNoWindow(title)
	}
	d.Manager.CloseWindow(w.ID)
	return nil
}

// FocusWindow raises and focuses the window with the given title.
func (d *Desktop) FocusWindow(title string) error {
	w := d.findWindow(title)
	if w == nil {
		return errNoWindow(title)
	}
	d.Manager.FocusWindow(w.ID)
	return nil
}

// MoveWindow repositions a window, clamped to the viewport.
func (d *Desktop) MoveWindow(title string, x, y int) error {
	w := d.findWindow(title)
	if w == nil {
		return errNoWindow(title)
	}
	if !w.CanDrag() {
		return fmt.Errorf("window %q cannot move", title)
	}
	cx, cy := w.ClampPosition(x, y, d.Manager.Viewport())
	d.Manager.SetWindowPosition(w.ID, wm.Position{X: cx, Y: cy})
	return nil
}

// ResizeWindow resizes a window, respecting its size limits.
func (d *Desktop) ResizeWindow(title string, width, height int) error {
	w := d.findWindow(title)
	if w == nil {
		return errNoWindow(title)
	}
	if !w.CanResize() {
		return fmt.Errorf("window %q cannot resize", title)
	}
	cw, ch := w.ClampSize(width, height)
	d.Manager.SetWindowSize(w.ID, wm.Size{Width: cw, Height: ch})
	return nil
}

// MinimizeWindow minimizes the window with the given title.
func (d *Desktop) MinimizeWindow(title string) error {
	w := d.findWindow(title)
	if w == nil {
		return errNoWindow(title)
	}
	d.Manager.MinimizeWindow(w.ID)
	return nil
}

// RestoreWindow restores a minimized window.
func (d *Desktop) RestoreWindow(title string) error {
	w := d.findWindow(title)
	if w == nil {
		return errNoWindow(title)
	}
	d.Manager.RestoreWindow(w.ID)
	return nil
}

// MaximizeWindow maximizes the window with the given title.
func (d *Desktop) MaximizeWindow(title string) error {
	w := d.findWindow(title)
	if w == nil {
		return errNoWindow(title)
	}
	d.Manager.MaximizeWindow(w.ID)
	return nil
}

// UnmaximizeWindow restores a maximized window to its normal frame.
func (d *Desktop) UnmaximizeWindow(title string) error {
	w := d.findWindow(title)
	if w == nil {
		return errNoWindow(title)
	}
	d.Manager.UnmaximizeWindow(w.ID)
	return nil
}

// CollapseWindow rolls a window up to its title bar.
func (d *Desktop) CollapseWindow(title string) error {
	w := d.findWindow(title)
	if w == nil {
		return errNoWindow(title)
	}
	d.Manager.SetCollapsed(w.ID, true)
	return nil
}

// ExpandWindow unrolls a collapsed window.
func (d *Desktop) ExpandWindow(title string) error {
	w := d.findWindow(title)
	if w == nil {
		return errNoWindow(title)
	}
	d.Manager.SetCollapsed(w.ID, false)
	return nil
}

// LockWindow pins a window in place.
func (d *Desktop) LockWindow(title string) error {
	w := d.findWindow(title)
	if w == nil {
		return errNoWindow(title)
	}
	d.Manager.SetLocked(w.ID, true)
	return nil
}

// UnlockWindow releases a pinned window.
func (d *Desktop) UnlockWindow(title string) error {
	w := d.findWindow(title)
	if w == nil {
		return errNoWindow(title)
	}
	d.Manager.SetLocked(w.ID, false)
	return nil
}

// DockWindow snaps a window into an edge zone.
func (d *Desktop) DockWindow(title, zone string) error {
	w := d.findWindow(title)
	if w == nil {
		return errNoWindow(title)
	}
	z, ok := wm.ParseDockZone(zone)
	if !ok {
		return fmt.Errorf("unknown dock zone %q", zone)
	}
	d.Manager.DockWindow(w.ID, z)
	return nil
}

// UndockWindow returns a docked window to its floating frame.
func (d *Desktop) UndockWindow(title string) error {
	w := d.findWindow(title)
	if w == nil {
		return errNoWindow(title)
	}
	d.Manager.UndockWindow(w.ID)
	return nil
}

// Arrange applies a layout mode to all visible windows.
func (d *Desktop) Arrange(mode string) error {
	m, err := wm.ParseArrangeMode(mode)
	if err != nil {
		return err
	}
	d.Manager.ArrangeWindows(m)
	return nil
}

// ApplyPreset replaces the desktop with a named preset layout.
func (d *Desktop) ApplyPreset(name string) error {
	return d.ApplyPresetByName(name)
}

// SetOption adjusts a desktop option during playback.
func (d *Desktop) SetOption(key, value string) error {
	switch key {
	case "theme":
		if err := theme.Initialize(value); err != nil {
			return err
		}
	case "border_style":
		config.BorderStyle = value
	case "taskbar_position":
		switch value {
		case "top", "bottom", "hidden":
			config.TaskbarPosition = value
			d.applyViewport()
		default:
			return fmt.Errorf("unknown taskbar position %q", value)
		}
	case "hide_window_buttons":
		v, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("hide_window_buttons wants true or false, got %q", value)
		}
		config.HideWindowButtons = v
	case "hide_clock":
		v, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("hide_clock wants true or false, got %q", value)
		}
		config.HideClock = v
	case "animations":
		v, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("animations wants true or false, got %q", value)
		}
		config.AnimationsEnabled = v
	case "default_kind":
		kind, ok := content.ParseKind(value)
		if !ok {
			return fmt.Errorf("unknown content kind %q", value)
		}
		d.Config.Behavior.DefaultKind = kind
	default:
		return fmt.Errorf("unknown option %q", key)
	}
	return nil
}
