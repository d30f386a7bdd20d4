package wm

import (
	"fmt"
	"math"
)

// ArrangeMode selects a bulk layout algorithm.
type ArrangeMode int

const (
	// ArrangeCascade staggers windows diagonally from the cascade base.
	ArrangeCascade ArrangeMode = iota
	// ArrangeTile partitions the viewport into a near-square grid.
	ArrangeTile
	// ArrangeStack collapses windows onto one rectangle, differentiated
	// only by stacking order.
	ArrangeStack
)

// String returns the mode name.
func (a ArrangeMode) String() string {
	switch a {
	case ArrangeCascade:
		return "cascade"
	case ArrangeTile:
		return "tile"
	case ArrangeStack:
		return "stack"
	}
	return "unknown"
}

// ParseArrangeMode converts a mode name to an ArrangeMode.
func ParseArrangeMode(s string) (ArrangeMode, error) {
	switch s {
	case "cascade":
		return ArrangeCascade, nil
	case "tile":
		return ArrangeTile, nil
	case "stack":
		return ArrangeStack, nil
	}
	return ArrangeCascade, fmt.Errorf("unknown arrange mode %q", s)
}

// TileGrid returns the near-square grid for n windows: columns is the
// ceiling of sqrt(n) and rows the ceiling of n over columns.
func TileGrid(n int) (cols, rows int) {
	if n <= 0 {
		return 0, 0
	}
	cols = int(math.Ceil(math.Sqrt(float64(n))))
	rows = int(math.Ceil(float64(n) / float64(cols)))
	return cols, rows
}

// ArrangeWindows recomputes geometry for all non-minimized windows in place
// without changing identity, content, or minimized siblings. Maximized and
// docked states are cleared first: an arrangement and an override state are
// mutually exclusive. Minimized windows keep their stored geometry and stay
// taskbar-only.
func (m *Manager) ArrangeWindows(mode ArrangeMode) {
	visible := m.VisibleWindows()
	for _, w := range visible {
		if w.State == StateMaximized {
			w.State = StateNormal
		}
		w.Zone = DockNone
	}
	if len(visible) == 0 {
		m.emit(EventArranged, nil, mode.String())
		return
	}

	switch mode {
	case ArrangeCascade:
		m.arrangeCascade(visible)
	case ArrangeTile:
		m.arrangeTile(visible)
	case ArrangeStack:
		m.arrangeStack(visible)
	}
	m.emit(EventArranged, nil, mode.String())
}

// arrangeCascade places window i at base + step*i with the uniform default
// size, clamped per window so size bounds always hold.
func (m *Manager) arrangeCascade(visible []*Window) {
	for i, w := range visible {
		step := m.opts.CascadeStep * i
		w.Width, w.Height = w.ClampSize(m.opts.DefaultSize.Width, m.opts.DefaultSize.Height)
		w.X = m.opts.CascadeBase.X + step
		w.Y = m.opts.CascadeBase.Y + step
	}
}

// arrangeTile assigns each visible window a grid cell by its position in
// the visible list and sizes it to fill the cell minus the gutter. Cell
// sizes are clamped into each window's bounds; when the viewport is too
// small for the grid the clamp wins over the gutter.
func (m *Manager) arrangeTile(visible []*Window) {
	cols, _ := TileGrid(len(visible))
	margin := m.opts.TileMargin
	gutter := m.opts.TileGutter

	areaW := m.viewport.Width - 2*margin
	areaH := m.viewport.Height - 2*margin
	rows := (len(visible) + cols - 1) / cols

	cellW := (areaW - (cols-1)*gutter) / cols
	cellH := (areaH - (rows-1)*gutter) / rows

	for i, w := range visible {
		col := i % cols
		row := i / cols
		w.Width, w.Height = w.ClampSize(cellW, cellH)
		w.X = margin + col*(cellW+gutter)
		w.Y = margin + row*(cellH+gutter)
	}
}

// arrangeStack gives every visible window one common rectangle and mints
// fresh z values in list order, so the stack's paint order equals the
// insertion order while the never-reused counter guarantee holds.
func (m *Manager) arrangeStack(visible []*Window) {
	base := m.opts.CascadeBase
	size := m.opts.DefaultSize
	for _, w := range visible {
		w.Width, w.Height = w.ClampSize(size.Width, size.Height)
		w.X = base.X
		w.Y = base.Y
		w.Z = m.nextZ()
	}
}
