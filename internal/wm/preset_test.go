package wm

import (
	"errors"
	"testing"
)

// stubRenderer satisfies Renderer for factory tests.
type stubRenderer struct{ kind string }

func (s stubRenderer) Render(width, height int) string { return s.kind }

// TestApplyPresetReplacesCollection verifies a preset produces exactly its
// entries and nothing from the previous desktop survives.
func TestApplyPresetReplacesCollection(t *testing.T) {
	m := testManager()
	old, _ := m.CreateWindow("leftover", nil, Options{})
	m.CreateWindow("leftover2", nil, Options{})

	preset := Preset{
		Name: "workbench",
		Entries: []PresetEntry{
			{Title: "left", Position: &Position{X: 0, Y: 0}, Size: &Size{Width: 600, Height: 800}},
			{Title: "right", Position: &Position{X: 620, Y: 0}, Size: &Size{Width: 600, Height: 800}},
			{Title: "tray", Collapsed: true},
		},
	}
	if err := m.ApplyPreset(preset); err != nil {
		t.Fatalf("ApplyPreset: %v", err)
	}

	if m.Len() != len(preset.Entries) {
		t.Fatalf("Len() = %d, want %d", m.Len(), len(preset.Entries))
	}
	if m.Window(old.ID) != nil {
		t.Error("pre-preset window survived")
	}

	windows := m.Windows()
	for i, entry := range preset.Entries {
		if windows[i].Title != entry.Title {
			t.Errorf("window %d title = %q, want %q", i, windows[i].Title, entry.Title)
		}
	}
	if !windows[2].Collapsed {
		t.Error("tray entry lost its collapsed flag")
	}
}

// TestApplyPresetMintsFreshZ verifies stacking values keep ascending across
// a preset swap instead of restarting.
func TestApplyPresetMintsFreshZ(t *testing.T) {
	m := testManager()
	m.CreateWindow("a", nil, Options{})
	b, _ := m.CreateWindow("b", nil, Options{})
	maxZBefore := b.Z

	err := m.ApplyPreset(Preset{
		Name:    "pair",
		Entries: []PresetEntry{{Title: "one"}, {Title: "two"}},
	})
	if err != nil {
		t.Fatalf("ApplyPreset: %v", err)
	}

	windows := m.Windows()
	if windows[0].Z <= maxZBefore {
		t.Errorf("first preset window z = %d, want above %d", windows[0].Z, maxZBefore)
	}
	if windows[1].Z <= windows[0].Z {
		t.Errorf("preset windows z = %d,%d, want ascending", windows[0].Z, windows[1].Z)
	}
}

// TestApplyPresetInvalidBoundsLeavesDesktop verifies validation runs before
// the destructive clear.
func TestApplyPresetInvalidBoundsLeavesDesktop(t *testing.T) {
	m := testManager()
	keep, _ := m.CreateWindow("keep", nil, Options{})

	bad := Preset{
		Name: "broken",
		Entries: []PresetEntry{
			{Title: "ok"},
			{Title: "bad", MinSize: &Size{Width: 100, Height: 100}, MaxSize: &Size{Width: 50, Height: 50}},
		},
	}
	err := m.ApplyPreset(bad)
	if !errors.Is(err, ErrInvalidBounds) {
		t.Fatalf("ApplyPreset error = %v, want ErrInvalidBounds", err)
	}

	if m.Len() != 1 || m.Window(keep.ID) == nil {
		t.Error("failed preset modified the desktop")
	}
}

// TestApplyPresetDefaultMinConflict verifies an entry whose max falls below
// the manager's default minimum is rejected before the clear.
func TestApplyPresetDefaultMinConflict(t *testing.T) {
	m := testManager()
	keep, _ := m.CreateWindow("keep", nil, Options{})

	err := m.ApplyPreset(Preset{
		Name:    "tiny",
		Entries: []PresetEntry{{Title: "bad", MaxSize: &Size{Width: 2, Height: 2}}},
	})
	if !errors.Is(err, ErrInvalidBounds) {
		t.Fatalf("ApplyPreset error = %v, want ErrInvalidBounds", err)
	}
	if m.Len() != 1 || m.Window(keep.ID) == nil {
		t.Error("failed preset modified the desktop")
	}
}

// TestApplyPresetDockedEntries verifies dock zones are applied at creation.
func TestApplyPresetDockedEntries(t *testing.T) {
	m := testManager()

	err := m.ApplyPreset(Preset{
		Name: "docked",
		Entries: []PresetEntry{
			{Title: "side", Zone: DockLeft},
			{Title: "tray", Zone: DockBottom, Locked: true},
		},
	})
	if err != nil {
		t.Fatalf("ApplyPreset: %v", err)
	}

	windows := m.Windows()
	if windows[0].Zone != DockLeft {
		t.Errorf("side zone = %v, want left", windows[0].Zone)
	}
	if frame := windows[0].Frame(); frame != m.ZoneFrame(DockLeft) {
		t.Errorf("side frame = %+v, want zone frame %+v", frame, m.ZoneFrame(DockLeft))
	}
	if windows[1].Zone != DockBottom || !windows[1].Locked {
		t.Error("tray entry lost zone or lock")
	}
}

// TestApplyPresetUsesContentFactory verifies kind names build content via
// the injected factory.
func TestApplyPresetUsesContentFactory(t *testing.T) {
	var requested []string
	m := NewManager(ManagerOptions{
		Viewport: Size{Width: 1920, Height: 1080},
		NewContent: func(kind string) Renderer {
			requested = append(requested, kind)
			return stubRenderer{kind: kind}
		},
	})

	err := m.ApplyPreset(Preset{
		Name: "kinds",
		Entries: []PresetEntry{
			{Title: "a", Kind: "chat"},
			{Title: "b", Kind: "notes"},
			{Title: "plain"},
		},
	})
	if err != nil {
		t.Fatalf("ApplyPreset: %v", err)
	}

	if len(requested) != 2 || requested[0] != "chat" || requested[1] != "notes" {
		t.Errorf("factory calls = %v, want [chat notes]", requested)
	}
	if m.Windows()[2].Content != nil {
		t.Error("kindless entry received content")
	}
}

// TestPresetValidate verifies entry bounds are checked without a manager.
func TestPresetValidate(t *testing.T) {
	good := Preset{Entries: []PresetEntry{
		{Title: "a", MinSize: &Size{10, 10}, MaxSize: &Size{50, 50}},
		{Title: "b", MinSize: &Size{10, 10}, MaxSize: &Size{0, 0}},
	}}
	if err := good.Validate(); err != nil {
		t.Errorf("Validate: unexpected error %v", err)
	}

	bad := Preset{Entries: []PresetEntry{
		{Title: "a", MinSize: &Size{60, 10}, MaxSize: &Size{50, 50}},
	}}
	if err := bad.Validate(); !errors.Is(err, ErrInvalidBounds) {
		t.Errorf("Validate error = %v, want ErrInvalidBounds", err)
	}
}
