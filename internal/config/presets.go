package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

// =============================================================================
// Layout Presets
// =============================================================================

// PresetWindow is one window entry in a layout preset. Geometry lists are
// [x, y] and [width, height]; empty lists defer to the cascade position
// and default size.
type PresetWindow struct {
	Title     string `toml:"title"`
	Kind      string `toml:"kind"`
	Position  []int  `toml:"position,omitempty"`
	Size      []int  `toml:"size,omitempty"`
	MinSize   []int  `toml:"min_size,omitempty"`
	MaxSize   []int  `toml:"max_size,omitempty"`
	Locked    bool   `toml:"locked,omitempty"`
	Collapsed bool   `toml:"collapsed,omitempty"`
	// Dock is left, right, or bottom. Empty floats the window.
	Dock string `toml:"dock,omitempty"`
}

// Preset is a named desktop layout: applying one replaces all open windows
// with the listed set.
type Preset struct {
	Name        string         `toml:"name"`
	Description string         `toml:"description"`
	Windows     []PresetWindow `toml:"windows"`
}

// BuiltinPresets returns the presets that ship with the desktop. User
// presets with the same name shadow these.
func BuiltinPresets() []Preset {
	return []Preset{
		{
			Name:        "sanctuary",
			Description: "Chat front and center with notes alongside",
			Windows: []PresetWindow{
				{Title: "Chat", Kind: "chat", Position: []int{4, 2}, Size: []int{90, 30}},
				{Title: "Notes", Kind: "notes", Position: []int{98, 2}, Size: []int{50, 30}},
				{Title: "Logbook", Kind: "logbook", Dock: "bottom", Locked: true},
			},
		},
		{
			Name:        "studio",
			Description: "Dashboard with docked side panels",
			Windows: []PresetWindow{
				{Title: "Dashboard", Kind: "dashboard", Position: []int{30, 3}, Size: []int{80, 28}},
				{Title: "Notes", Kind: "notes", Dock: "left"},
				{Title: "Chat", Kind: "chat", Dock: "right"},
			},
		},
		{
			Name:        "scout",
			Description: "Everything open, tidy and collapsed where idle",
			Windows: []PresetWindow{
				{Title: "Dashboard", Kind: "dashboard", Position: []int{2, 2}, Size: []int{70, 20}},
				{Title: "Chat", Kind: "chat", Position: []int{20, 8}, Size: []int{70, 22}},
				{Title: "Notes", Kind: "notes", Position: []int{38, 14}, Size: []int{70, 20}},
				{Title: "Logbook", Kind: "logbook", Position: []int{56, 20}, Size: []int{70, 16}, Collapsed: true},
			},
		},
		{
			Name:        "focus",
			Description: "One big notes window, nothing else",
			Windows: []PresetWindow{
				{Title: "Notes", Kind: "notes", Position: []int{8, 2}, Size: []int{120, 34}},
			},
		},
	}
}

// GetPresetsDir returns the user preset directory, one TOML file per
// preset.
func GetPresetsDir() string {
	return filepath.Join(xdg.ConfigHome, "sanctuary", "presets")
}

// LoadPresets returns built-in presets merged with the user's preset
// directory, sorted by name. A missing directory is not an error; a
// malformed file is, so a typo does not silently drop a layout.
func LoadPresets() ([]Preset, error) {
	byName := map[string]Preset{}
	for _, p := range BuiltinPresets() {
		byName[p.Name] = p
	}

	dir := GetPresetsDir()
	entries, err := os.ReadDir(dir)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read presets dir: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".toml") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read preset %s: %w", entry.Name(), err)
		}
		var p Preset
		if err := toml.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("parse preset %s: %w", entry.Name(), err)
		}
		if p.Name == "" {
			p.Name = strings.TrimSuffix(entry.Name(), ".toml")
		}
		byName[p.Name] = p
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	presets := make([]Preset, 0, len(names))
	for _, name := range names {
		presets = append(presets, byName[name])
	}
	return presets, nil
}

// FindPreset returns the named preset, matching case-insensitively.
func FindPreset(name string) (Preset, error) {
	presets, err := LoadPresets()
	if err != nil {
		return Preset{}, err
	}
	for _, p := range presets {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("unknown preset %q", name)
}
