package config_test

import (
	"testing"

	"github.com/daddyholnes/podplay-sanctuary-build/internal/config"
)

// =============================================================================
// Default Configuration Tests
// =============================================================================

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig returned nil")
	}

	// Check essential defaults
	if cfg.Keybindings.LeaderKey == "" {
		t.Error("Expected default leader key to be set")
	}

	if cfg.Appearance.BorderStyle == "" {
		t.Error("Expected default border style to be set")
	}

	if cfg.Appearance.TaskbarPosition == "" {
		t.Error("Expected default taskbar position to be set")
	}

	if cfg.Appearance.LogLines < 100 {
		t.Errorf("Expected log lines >= 100, got %d", cfg.Appearance.LogLines)
	}
}

func TestDefaultKeybindings(t *testing.T) {
	cfg := config.DefaultConfig()

	// Check window management keys exist
	windowMgmt := cfg.Keybindings.WindowManagement
	if windowMgmt == nil {
		t.Fatal("Window management keybindings are nil")
	}

	requiredActions := []string{
		"new_window",
		"close_window",
		"next_window",
		"prev_window",
		"toggle_maximize",
	}

	for _, action := range requiredActions {
		keys, ok := windowMgmt[action]
		if !ok {
			t.Errorf("Expected %s keybinding to exist", action)
			continue
		}
		if len(keys) == 0 {
			t.Errorf("Expected %s to have at least one key bound", action)
		}
	}
}

func TestDefaultKeybindings_SelectWindow(t *testing.T) {
	cfg := config.DefaultConfig()

	for i := 1; i <= 9; i++ {
		action := "select_window_" + string(rune('0'+i))
		keys, ok := cfg.Keybindings.WindowManagement[action]
		if !ok || len(keys) == 0 {
			t.Errorf("Expected %s to be bound", action)
		}
	}
}

// =============================================================================
// KeybindRegistry Tests
// =============================================================================

func TestKeybindRegistry_GetKeys(t *testing.T) {
	cfg := config.DefaultConfig()
	registry := config.NewKeybindRegistry(cfg)

	// Test getting keys for known action
	keys := registry.GetKeys("new_window")
	if len(keys) == 0 {
		t.Error("Expected new_window to have keys")
	}
}

func TestKeybindRegistry_GetAction(t *testing.T) {
	cfg := config.DefaultConfig()
	registry := config.NewKeybindRegistry(cfg)

	// Get the key bound to new_window
	keys := registry.GetKeys("new_window")
	if len(keys) == 0 {
		t.Skip("No keys bound to new_window")
	}

	// Verify reverse lookup
	action := registry.GetAction(keys[0])
	if action != "new_window" {
		t.Errorf("Expected action 'new_window', got %q", action)
	}
}

func TestKeybindRegistry_AliasLookup(t *testing.T) {
	cfg := config.DefaultConfig()
	registry := config.NewKeybindRegistry(cfg)

	// toggle_maximize binds "enter"; the terminal may report "return"
	if got := registry.GetAction("enter"); got != "toggle_maximize" {
		t.Errorf("GetAction(enter) = %q, want toggle_maximize", got)
	}
	if got := registry.GetAction("return"); got != "toggle_maximize" {
		t.Errorf("GetAction(return) = %q, want toggle_maximize", got)
	}

	// restore_all binds "shift+m"; a real terminal reports the shifted
	// text "M" instead of the chord
	if got := registry.GetAction("M"); got != "restore_all" {
		t.Errorf("GetAction(M) = %q, want restore_all", got)
	}
	if got := registry.GetAction("shift+m"); got != "restore_all" {
		t.Errorf("GetAction(shift+m) = %q, want restore_all", got)
	}
	if got := registry.GetAction("m"); got != "minimize_window" {
		t.Errorf("GetAction(m) = %q, want minimize_window", got)
	}
}

func TestKeybindRegistry_GetKeysForDisplay(t *testing.T) {
	cfg := config.DefaultConfig()
	registry := config.NewKeybindRegistry(cfg)

	display := registry.GetKeysForDisplay("new_window")
	if display == "" {
		t.Error("Expected display string for new_window")
	}
}

func TestKeybindRegistry_UnknownAction(t *testing.T) {
	cfg := config.DefaultConfig()
	registry := config.NewKeybindRegistry(cfg)

	keys := registry.GetKeys("nonexistent_action")
	if len(keys) != 0 {
		t.Errorf("Expected empty keys for nonexistent action, got %v", keys)
	}
}

func TestKeybindRegistry_UnknownKey(t *testing.T) {
	cfg := config.DefaultConfig()
	registry := config.NewKeybindRegistry(cfg)

	action := registry.GetAction("ctrl+shift+alt+super+hyper+x")
	if action != "" {
		t.Errorf("Expected empty action for unbound key, got %q", action)
	}
}

// =============================================================================
// Key Normalizer Tests
// =============================================================================

func TestKeyNormalizer(t *testing.T) {
	normalizer := config.NewKeyNormalizer()

	tests := []struct {
		input    string
		expected string
	}{
		{"ctrl+a", "ctrl+a"},
		{"Ctrl+A", "ctrl+a"},
		{"CTRL+A", "ctrl+a"},
		{"return", "return"}, // Normalizer preserves key names
		{"escape", "escape"},
		{"enter", "enter"},
		{"esc", "esc"},
		{"ctrl+Enter", "ctrl+return"}, // Alias expansion keeps modifiers
		{"shift+m", "M"},              // Shifted letters expand both ways
		{"M", "shift+m"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got := normalizer.NormalizeKey(tc.input)
			// NormalizeKey returns a slice of possible keys
			if len(got) == 0 {
				t.Errorf("NormalizeKey(%q) returned empty slice", tc.input)
				return
			}
			// Check if expected is in the result
			found := false
			for _, k := range got {
				if k == tc.expected {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("NormalizeKey(%q) = %v, want to contain %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestKeyNormalizer_ValidateKey(t *testing.T) {
	normalizer := config.NewKeyNormalizer()

	tests := []struct {
		input   string
		isValid bool
	}{
		{"ctrl+a", true},
		{"n", true},
		{"enter", true},
		{"esc", true},
		{"tab", true},
		{"", false},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			valid, _ := normalizer.ValidateKey(tc.input)
			if valid != tc.isValid {
				t.Errorf("ValidateKey(%q) = %v, want %v", tc.input, valid, tc.isValid)
			}
		})
	}
}

// =============================================================================
// Animation Configuration Tests
// =============================================================================

func TestAnimationConfig(t *testing.T) {
	// Default should be enabled
	config.AnimationsEnabled = true

	fastDuration := config.GetFastAnimationDuration()
	if fastDuration == 0 {
		t.Error("Expected non-zero fast animation duration when enabled")
	}

	// Disable animations
	config.AnimationsEnabled = false

	fastDuration = config.GetFastAnimationDuration()
	if fastDuration != 0 {
		t.Errorf("Expected zero fast duration when disabled, got %v", fastDuration)
	}

	// Reset for other tests
	config.AnimationsEnabled = true
}

// =============================================================================
// Overrides Tests
// =============================================================================

func TestApplyOverrides(t *testing.T) {
	cfg := config.DefaultConfig()

	config.ApplyOverrides(config.Overrides{
		BorderStyle:     "double",
		TaskbarPosition: "top",
		ASCIIOnly:       true,
		NoAnimations:    true,
	}, cfg)

	if cfg.Appearance.BorderStyle != "double" {
		t.Errorf("BorderStyle = %q, want double", cfg.Appearance.BorderStyle)
	}
	if cfg.Appearance.TaskbarPosition != "top" {
		t.Errorf("TaskbarPosition = %q, want top", cfg.Appearance.TaskbarPosition)
	}
	if !cfg.Appearance.ASCIIOnly {
		t.Error("Expected ASCIIOnly override to stick")
	}
	if cfg.Behavior.Animations {
		t.Error("Expected NoAnimations to disable animations")
	}
	if config.BorderStyle != "double" {
		t.Errorf("Global BorderStyle = %q, want double", config.BorderStyle)
	}

	// Restore globals for other tests
	config.ApplyOverrides(config.Overrides{}, config.DefaultConfig())
	config.UseASCIIOnly = false
}

// =============================================================================
// Preset Tests
// =============================================================================

func TestBuiltinPresets(t *testing.T) {
	presets := config.BuiltinPresets()
	if len(presets) == 0 {
		t.Fatal("Expected built-in presets")
	}

	seen := map[string]bool{}
	for _, p := range presets {
		if p.Name == "" {
			t.Error("Preset with empty name")
		}
		if seen[p.Name] {
			t.Errorf("Duplicate preset name %q", p.Name)
		}
		seen[p.Name] = true
		if len(p.Windows) == 0 {
			t.Errorf("Preset %q has no windows", p.Name)
		}
		for _, w := range p.Windows {
			if len(w.Position) != 0 && len(w.Position) != 2 {
				t.Errorf("Preset %q window %q: position must be [x, y]", p.Name, w.Title)
			}
			if len(w.Size) != 0 && len(w.Size) != 2 {
				t.Errorf("Preset %q window %q: size must be [w, h]", p.Name, w.Title)
			}
		}
	}

	if !seen["sanctuary"] {
		t.Error("Expected a sanctuary preset")
	}
}

// =============================================================================
// Action Descriptions Tests
// =============================================================================

func TestActionDescriptions(t *testing.T) {
	// Check some key actions have descriptions
	requiredDescriptions := []string{
		"new_window",
		"close_window",
		"arrange_tile",
		"toggle_help",
		"quit",
	}

	for _, action := range requiredDescriptions {
		desc, ok := config.ActionDescriptions[action]
		if !ok {
			t.Errorf("Expected description for action %q", action)
			continue
		}
		if desc == "" {
			t.Errorf("Description for %q should not be empty", action)
		}
	}
}

func TestActionDescriptions_CoverDefaults(t *testing.T) {
	cfg := config.DefaultConfig()
	for _, section := range [](map[string][]string){
		cfg.Keybindings.WindowManagement,
		cfg.Keybindings.Layout,
		cfg.Keybindings.Panels,
		cfg.Keybindings.Overlays,
		cfg.Keybindings.System,
	} {
		for action := range section {
			if _, ok := config.ActionDescriptions[action]; !ok {
				t.Errorf("Default action %q has no description", action)
			}
		}
	}
}

// =============================================================================
// Benchmarks
// =============================================================================

func BenchmarkKeybindRegistry_GetAction(b *testing.B) {
	cfg := config.DefaultConfig()
	registry := config.NewKeybindRegistry(cfg)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = registry.GetAction("n")
	}
}

func BenchmarkKeybindRegistry_GetKeys(b *testing.B) {
	cfg := config.DefaultConfig()
	registry := config.NewKeybindRegistry(cfg)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = registry.GetKeys("new_window")
	}
}

func BenchmarkNormalizeKey(b *testing.B) {
	normalizer := config.NewKeyNormalizer()
	keys := []string{"ctrl+a", "Ctrl+Shift+B", "alt+1", "return"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = normalizer.NormalizeKey(keys[i%len(keys)])
	}
}
