package app

import (
	"strings"
	"testing"

	"github.com/daddyholnes/podplay-sanctuary-build/internal/config"
	"github.com/daddyholnes/podplay-sanctuary-build/internal/wm"
)

// buttonWindow creates a window whose button geometry the tests pin down:
// top border on row 5, columns 10 through 49.
func buttonWindow(t *testing.T, d *Desktop) *wm.Window {
	t.Helper()
	w, err := d.Manager.CreateWindow("buttons", nil, wm.Options{
		Position: &wm.Position{X: 10, Y: 5},
		Size:     &wm.Size{Width: 40, Height: 12},
	})
	if err != nil {
		t.Fatalf("CreateWindow: %v", err)
	}
	return w
}

// scanButtons walks the top border left to right and returns the button
// sequence it crosses.
func scanButtons(w *wm.Window) []string {
	frame := w.Frame()
	var seq []string
	for x := frame.X; x < frame.X+frame.Width; x++ {
		b := WindowButtonAt(w, x)
		if b == "" {
			continue
		}
		if len(seq) == 0 || seq[len(seq)-1] != b {
			seq = append(seq, b)
		}
	}
	return seq
}

func TestWindowButtonAt(t *testing.T) {
	d := newTestDesktop(t)
	w := buttonWindow(t, d)

	// The unicode pill cap ends one cell inside the top-right corner, so
	// the buttons sit at 39-41, 42-44 and 45-47
	tests := []struct {
		x    int
		want string
	}{
		{10, ""},
		{38, ""},
		{39, "minimize"},
		{41, "minimize"},
		{42, "maximize"},
		{44, "maximize"},
		{45, "close"},
		{47, "close"},
		{48, ""},
		{60, ""},
	}
	for _, tt := range tests {
		if got := WindowButtonAt(w, tt.x); got != tt.want {
			t.Errorf("WindowButtonAt(%d) = %q, want %q", tt.x, got, tt.want)
		}
	}
}

func TestWindowButtonAtASCII(t *testing.T) {
	d := newTestDesktop(t)
	w := buttonWindow(t, d)

	// No pill caps in ASCII mode, so the row shifts one cell right
	config.UseASCIIOnly = true

	tests := []struct {
		x    int
		want string
	}{
		{39, ""},
		{40, "minimize"},
		{43, "maximize"},
		{46, "close"},
		{48, "close"},
		{49, ""},
	}
	for _, tt := range tests {
		if got := WindowButtonAt(w, tt.x); got != tt.want {
			t.Errorf("WindowButtonAt(%d) = %q, want %q", tt.x, got, tt.want)
		}
	}
}

func TestWindowButtonAtDocked(t *testing.T) {
	d := newTestDesktop(t)
	w := buttonWindow(t, d)
	d.Manager.DockWindow(w.ID, wm.DockLeft)

	// A docked window cannot maximize, so its pill drops the button
	got := strings.Join(scanButtons(w), ",")
	if got != "minimize,close" {
		t.Errorf("buttons = %q, want %q", got, "minimize,close")
	}
}

func TestWindowButtonAtFlagGates(t *testing.T) {
	t.Run("closable only", func(t *testing.T) {
		d := newTestDesktop(t)
		flags := wm.DefaultFlags()
		flags.Minimizable = false
		flags.Maximizable = false
		w, err := d.Manager.CreateWindow("alert", nil, wm.Options{
			Position: &wm.Position{X: 10, Y: 5},
			Size:     &wm.Size{Width: 40, Height: 12},
			Flags:    &flags,
		})
		if err != nil {
			t.Fatalf("CreateWindow: %v", err)
		}
		if got := WindowButtonAt(w, 44); got != "" {
			t.Errorf("WindowButtonAt(44) = %q, want empty", got)
		}
		if got := WindowButtonAt(w, 45); got != "close" {
			t.Errorf("WindowButtonAt(45) = %q, want %q", got, "close")
		}
	})

	t.Run("no buttons at all", func(t *testing.T) {
		d := newTestDesktop(t)
		flags := wm.DefaultFlags()
		flags.Minimizable = false
		flags.Maximizable = false
		flags.Closable = false
		w, err := d.Manager.CreateWindow("bare", nil, wm.Options{
			Position: &wm.Position{X: 10, Y: 5},
			Size:     &wm.Size{Width: 40, Height: 12},
			Flags:    &flags,
		})
		if err != nil {
			t.Fatalf("CreateWindow: %v", err)
		}
		if got := scanButtons(w); len(got) != 0 {
			t.Errorf("buttons = %v, want none", got)
		}
	})

	t.Run("hidden by config", func(t *testing.T) {
		d := newTestDesktop(t)
		w := buttonWindow(t, d)
		config.HideWindowButtons = true
		if got := WindowButtonAt(w, 45); got != "" {
			t.Errorf("WindowButtonAt(45) = %q, want empty", got)
		}
	})
}

func TestWindowButtonAtNarrowWindow(t *testing.T) {
	d := newTestDesktop(t)
	w, err := d.Manager.CreateWindow("slim", nil, wm.Options{
		Position: &wm.Position{X: 10, Y: 5},
		Size:     &wm.Size{Width: 12, Height: 6},
		MinSize:  &wm.Size{Width: 1, Height: 1},
	})
	if err != nil {
		t.Fatalf("CreateWindow: %v", err)
	}

	// Three buttons plus caps need 11 cells; this border interior has 10
	if got := scanButtons(w); len(got) != 0 {
		t.Errorf("buttons = %v, want none on a window too narrow for the pill", got)
	}
}
