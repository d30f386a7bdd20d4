package wm

import "testing"

// TestFrameByState verifies the rectangle a window occupies in each visual
// form: floating, collapsed (header-only), and maximized with a pending
// collapse suspended.
func TestFrameByState(t *testing.T) {
	w := &Window{X: 10, Y: 5, Width: 60, Height: 20}

	if got := w.Frame(); got != (Rect{X: 10, Y: 5, Width: 60, Height: 20}) {
		t.Errorf("floating frame = %+v", got)
	}

	w.Collapsed = true
	if got := w.Frame(); got != (Rect{X: 10, Y: 5, Width: 60, Height: CollapsedHeight}) {
		t.Errorf("collapsed frame = %+v, want height %d", got, CollapsedHeight)
	}
	if w.Height != 20 {
		t.Errorf("collapse altered stored height to %d", w.Height)
	}
	if got := w.EffectiveHeight(); got != CollapsedHeight {
		t.Errorf("EffectiveHeight = %d, want %d", got, CollapsedHeight)
	}

	// A maximized window fills its geometry even while flagged collapsed
	w.State = StateMaximized
	if got := w.Frame().Height; got != 20 {
		t.Errorf("maximized frame height = %d, want stored height", got)
	}
}

func TestCanDrag(t *testing.T) {
	tests := []struct {
		name      string
		draggable bool
		locked    bool
		state     State
		want      bool
	}{
		{"plain window", true, false, StateNormal, true},
		{"locked", true, true, StateNormal, false},
		{"maximized", true, false, StateMaximized, false},
		{"not draggable", false, false, StateNormal, false},
		{"minimized", true, false, StateMinimized, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := DefaultFlags()
			flags.Draggable = tt.draggable
			w := &Window{Flags: flags, Locked: tt.locked, State: tt.state}
			if got := w.CanDrag(); got != tt.want {
				t.Errorf("CanDrag() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanResize(t *testing.T) {
	tests := []struct {
		name      string
		resizable bool
		locked    bool
		collapsed bool
		state     State
		zone      DockZone
		want      bool
	}{
		{"plain window", true, false, false, StateNormal, DockNone, true},
		{"locked", true, true, false, StateNormal, DockNone, false},
		{"collapsed", true, false, true, StateNormal, DockNone, false},
		{"maximized", true, false, false, StateMaximized, DockNone, false},
		{"docked", true, false, false, StateNormal, DockLeft, false},
		{"not resizable", false, false, false, StateNormal, DockNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := DefaultFlags()
			flags.Resizable = tt.resizable
			w := &Window{
				Flags:     flags,
				Locked:    tt.locked,
				Collapsed: tt.collapsed,
				State:     tt.state,
				Zone:      tt.zone,
			}
			if got := w.CanResize(); got != tt.want {
				t.Errorf("CanResize() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestClampSize verifies malformed candidate sizes never propagate: values
// below the minimum snap up, values above a set maximum snap down, and a
// zero maximum means unbounded.
func TestClampSize(t *testing.T) {
	w := &Window{MinWidth: 20, MinHeight: 5, MaxWidth: 100, MaxHeight: 50}

	tests := []struct {
		name         string
		inW, inH     int
		wantW, wantH int
	}{
		{"within bounds", 60, 30, 60, 30},
		{"below minimum", 10, 2, 20, 5},
		{"negative", -40, -1, 20, 5},
		{"above maximum", 500, 200, 100, 50},
		{"at bounds", 20, 50, 20, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotW, gotH := w.ClampSize(tt.inW, tt.inH)
			if gotW != tt.wantW || gotH != tt.wantH {
				t.Errorf("ClampSize(%d,%d) = (%d,%d), want (%d,%d)",
					tt.inW, tt.inH, gotW, gotH, tt.wantW, tt.wantH)
			}
		})
	}

	unbounded := &Window{MinWidth: 20, MinHeight: 5}
	if gotW, gotH := unbounded.ClampSize(5000, 3000); gotW != 5000 || gotH != 3000 {
		t.Errorf("unbounded ClampSize = (%d,%d), want (5000,3000)", gotW, gotH)
	}
}

func TestClampPosition(t *testing.T) {
	viewport := Size{Width: 200, Height: 100}
	w := &Window{Width: 60, Height: 20}

	tests := []struct {
		name         string
		inX, inY     int
		wantX, wantY int
	}{
		{"interior", 50, 40, 50, 40},
		{"negative", -10, -5, 0, 0},
		{"past right edge", 190, 40, 140, 40},
		{"past bottom edge", 50, 95, 50, 80},
		{"far corner", 9999, 9999, 140, 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotX, gotY := w.ClampPosition(tt.inX, tt.inY, viewport)
			if gotX != tt.wantX || gotY != tt.wantY {
				t.Errorf("ClampPosition(%d,%d) = (%d,%d), want (%d,%d)",
					tt.inX, tt.inY, gotX, gotY, tt.wantX, tt.wantY)
			}
		})
	}

	// A window larger than the viewport pins to the origin
	huge := &Window{Width: 300, Height: 150}
	if gotX, gotY := huge.ClampPosition(40, 40, viewport); gotX != 0 || gotY != 0 {
		t.Errorf("oversized ClampPosition = (%d,%d), want origin", gotX, gotY)
	}

	// Collapsed windows clamp by their header-only frame, so they may sit
	// lower than their stored height would allow
	collapsed := &Window{Width: 60, Height: 20, Collapsed: true}
	if _, gotY := collapsed.ClampPosition(0, 99, viewport); gotY != 100-CollapsedHeight {
		t.Errorf("collapsed clamp y = %d, want %d", gotY, 100-CollapsedHeight)
	}
}
