// Package config owns the user-facing configuration surface: the TOML
// config file, keybinding registry, layout presets, appearance globals,
// and the timing constants the rest of the desktop runs on. It imports no
// sibling packages so every layer can depend on it.
package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

// =============================================================================
// User Configuration
// =============================================================================

// UserConfig is the on-disk configuration, one TOML file under the XDG
// config directory.
type UserConfig struct {
	Keybindings KeybindingsConfig `toml:"keybindings"`
	Appearance  AppearanceConfig  `toml:"appearance"`
	Behavior    BehaviorConfig    `toml:"behavior"`
}

// KeybindingsConfig maps actions to key lists, grouped into sections so the
// config file reads in themed blocks. Actions are unique across sections;
// the registry flattens them into one reverse lookup.
type KeybindingsConfig struct {
	// LeaderKey arms the prefix layer: press it, then a single follow-up
	// key from the prefix table.
	LeaderKey string `toml:"leader_key"`

	WindowManagement map[string][]string `toml:"window_management"`
	Layout           map[string][]string `toml:"layout"`
	Panels           map[string][]string `toml:"panels"`
	Overlays         map[string][]string `toml:"overlays"`
	System           map[string][]string `toml:"system"`
}

// AppearanceConfig controls chrome and theming.
type AppearanceConfig struct {
	// Theme names a tint scheme. Empty disables theming and keeps the
	// built-in palette.
	Theme string `toml:"theme"`
	// BorderStyle is rounded, normal, thick, double, or hidden.
	BorderStyle string `toml:"border_style"`
	// TaskbarPosition is bottom, top, or hidden.
	TaskbarPosition string `toml:"taskbar_position"`
	// HideWindowButtons removes the title bar buttons.
	HideWindowButtons bool `toml:"hide_window_buttons"`
	// HideClock removes the clock from the status area.
	HideClock bool `toml:"hide_clock"`
	// ASCIIOnly disables all Unicode chrome.
	ASCIIOnly bool `toml:"ascii_only"`
	// LogLines is the size of the log ring shown by the log viewer.
	LogLines int `toml:"log_lines"`
}

// BehaviorConfig tunes window management. Zero values defer to the
// manager's own defaults.
type BehaviorConfig struct {
	// CascadeBaseX and CascadeBaseY anchor the cascade origin, in cells.
	CascadeBaseX int `toml:"cascade_base_x"`
	CascadeBaseY int `toml:"cascade_base_y"`
	// CascadeStep is the diagonal offset between cascaded windows, in cells.
	CascadeStep int `toml:"cascade_step"`
	// TileGutter is the gap between tiled windows.
	TileGutter int `toml:"tile_gutter"`
	// TileMargin is the margin around the tile grid.
	TileMargin int `toml:"tile_margin"`
	// ZoneFraction divides the viewport for edge dock zones: a docked
	// window takes 1/ZoneFraction of the relevant axis.
	ZoneFraction int `toml:"zone_fraction"`
	// DefaultKind is the content kind for windows opened without one.
	DefaultKind string `toml:"default_kind"`
	// DefaultWidth and DefaultHeight size new windows, in cells.
	DefaultWidth  int `toml:"default_width"`
	DefaultHeight int `toml:"default_height"`
	// ConfirmQuit asks before exiting while windows are open.
	ConfirmQuit bool `toml:"confirm_quit"`
	// WatchConfig reloads the config file when it changes on disk.
	WatchConfig bool `toml:"watch_config"`
	// Animations toggles window animations.
	Animations bool `toml:"animations"`
}

// DefaultConfig returns the configuration used when no file exists, and the
// base that user files are merged over.
func DefaultConfig() *UserConfig {
	cfg := &UserConfig{
		Keybindings: KeybindingsConfig{
			LeaderKey: "ctrl+b",
			WindowManagement: map[string][]string{
				"new_window":      {"n"},
				"close_window":    {"x", "ctrl+w"},
				"rename_window":   {"r"},
				"minimize_window": {"m"},
				"restore_all":     {"shift+m"},
				"toggle_maximize": {"f", "enter"},
				"next_window":     {"tab"},
				"prev_window":     {"shift+tab"},
			},
			Layout: map[string][]string{
				"arrange_cascade": {"c"},
				"arrange_tile":    {"t"},
				"arrange_stack":   {"s"},
				"preset_picker":   {"p"},
				"move_left":       {"left"},
				"move_right":      {"right"},
				"move_up":         {"up"},
				"move_down":       {"down"},
				"grow_width":      {"shift+right"},
				"shrink_width":    {"shift+left"},
				"grow_height":     {"shift+down"},
				"shrink_height":   {"shift+up"},
			},
			Panels: map[string][]string{
				"toggle_lock":     {"l"},
				"toggle_collapse": {"o"},
				"dock_left":       {"["},
				"dock_right":      {"]"},
				"dock_bottom":     {"\\"},
				"undock":          {"u"},
			},
			Overlays: map[string][]string{
				"toggle_help":    {"?"},
				"toggle_logs":    {"g"},
				"toggle_taskbar": {"b"},
			},
			System: map[string][]string{
				"quit": {"q", "ctrl+c"},
			},
		},
		Appearance: AppearanceConfig{
			Theme:           "",
			BorderStyle:     "rounded",
			TaskbarPosition: "bottom",
			LogLines:        MaxLogMessages,
		},
		Behavior: BehaviorConfig{
			CascadeBaseX:  4,
			CascadeBaseY:  2,
			CascadeStep:   2,
			DefaultKind:   "notes",
			DefaultWidth:  60,
			DefaultHeight: 16,
			ConfirmQuit:   true,
			WatchConfig:   true,
			Animations:    true,
		},
	}
	for i := 1; i <= 9; i++ {
		action := fmt.Sprintf("select_window_%d", i)
		cfg.Keybindings.WindowManagement[action] = []string{fmt.Sprintf("%d", i)}
	}
	return cfg
}

// sections lists the keybinding maps in display order.
func (k *KeybindingsConfig) sections() []map[string][]string {
	return []map[string][]string{
		k.WindowManagement,
		k.Layout,
		k.Panels,
		k.Overlays,
		k.System,
	}
}

// =============================================================================
// Loading and Saving
// =============================================================================

// GetConfigPath returns the config file path under the XDG config
// directory, creating parent directories as needed.
func GetConfigPath() (string, error) {
	return xdg.ConfigFile("sanctuary/config.toml")
}

// LoadUserConfig reads the user config, writing the default file first if
// none exists. Missing keys fall back to defaults, so a partial file only
// overrides what it names.
func LoadUserConfig() (*UserConfig, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := SaveConfig(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	mergeKeybindings(cfg)
	return cfg, nil
}

// mergeKeybindings backfills actions the user file left out. TOML tables
// replace the default maps wholesale, so a user who remaps one action must
// not lose the other bindings in that section.
func mergeKeybindings(cfg *UserConfig) {
	def := DefaultConfig()
	defSections := def.Keybindings.sections()
	dst := []*map[string][]string{
		&cfg.Keybindings.WindowManagement,
		&cfg.Keybindings.Layout,
		&cfg.Keybindings.Panels,
		&cfg.Keybindings.Overlays,
		&cfg.Keybindings.System,
	}
	for i, section := range dst {
		if *section == nil {
			*section = map[string][]string{}
		}
		for action, keys := range defSections[i] {
			if _, ok := (*section)[action]; !ok {
				(*section)[action] = keys
			}
		}
	}
	if cfg.Keybindings.LeaderKey == "" {
		cfg.Keybindings.LeaderKey = def.Keybindings.LeaderKey
	}
}

// SaveConfig writes the config file with a short header comment.
func SaveConfig(cfg *UserConfig) error {
	path, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	header := "# Sanctuary configuration\n" +
		"# Keys are plain characters, named keys (enter, esc, tab, left), or\n" +
		"# modifier chains like ctrl+w and shift+tab.\n" +
		"# Delete a section to restore its defaults.\n\n"

	if err := os.WriteFile(path, append([]byte(header), data...), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// =============================================================================
// Overrides
// =============================================================================

// Overrides carries command line flags that take precedence over the
// config file. Zero values leave the file's setting alone; the boolean
// flags only force features off, matching their flag semantics.
type Overrides struct {
	Theme             string
	BorderStyle       string
	TaskbarPosition   string
	HideWindowButtons bool
	HideClock         bool
	ASCIIOnly         bool
	NoAnimations      bool
	LogLines          int
}

// ApplyOverrides folds flag overrides into cfg and publishes the resulting
// appearance to the package globals.
func ApplyOverrides(o Overrides, cfg *UserConfig) {
	if o.Theme != "" {
		cfg.Appearance.Theme = o.Theme
	}
	if o.BorderStyle != "" {
		cfg.Appearance.BorderStyle = o.BorderStyle
	}
	if o.TaskbarPosition != "" {
		cfg.Appearance.TaskbarPosition = o.TaskbarPosition
	}
	if o.HideWindowButtons {
		cfg.Appearance.HideWindowButtons = true
	}
	if o.HideClock {
		cfg.Appearance.HideClock = true
	}
	if o.ASCIIOnly {
		cfg.Appearance.ASCIIOnly = true
	}
	if o.NoAnimations {
		cfg.Behavior.Animations = false
	}
	if o.LogLines > 0 {
		cfg.Appearance.LogLines = o.LogLines
	}
	ApplyAppearance(cfg)
}

// ApplyAppearance publishes cfg's appearance and behavior switches to the
// package globals the render path reads. Called at startup and again on
// config reload.
func ApplyAppearance(cfg *UserConfig) {
	UseASCIIOnly = cfg.Appearance.ASCIIOnly
	if cfg.Appearance.BorderStyle != "" {
		BorderStyle = cfg.Appearance.BorderStyle
	}
	if cfg.Appearance.TaskbarPosition != "" {
		TaskbarPosition = cfg.Appearance.TaskbarPosition
	}
	HideWindowButtons = cfg.Appearance.HideWindowButtons
	HideClock = cfg.Appearance.HideClock
	if cfg.Appearance.LogLines >= 100 {
		LogLines = cfg.Appearance.LogLines
	}
	AnimationsEnabled = cfg.Behavior.Animations
}

// =============================================================================
// Keybind Registry
// =============================================================================

// KeybindRegistry resolves keys to actions and back. Built once from the
// loaded config and rebuilt on reload.
type KeybindRegistry struct {
	keyToAction  map[string]string
	actionToKeys map[string][]string
	normalizer   *KeyNormalizer
}

// NewKeybindRegistry flattens the config's keybinding sections into one
// bidirectional lookup. Later sections win on key conflicts.
func NewKeybindRegistry(cfg *UserConfig) *KeybindRegistry {
	r := &KeybindRegistry{
		keyToAction:  make(map[string]string),
		actionToKeys: make(map[string][]string),
		normalizer:   NewKeyNormalizer(),
	}
	for _, section := range cfg.Keybindings.sections() {
		actions := make([]string, 0, len(section))
		for action := range section {
			actions = append(actions, action)
		}
		// Deterministic registration order keeps conflict resolution
		// stable across runs.
		sort.Strings(actions)
		for _, action := range actions {
			r.bind(action, section[action])
		}
	}
	return r
}

func (r *KeybindRegistry) bind(action string, keys []string) {
	for _, key := range keys {
		aliases := r.normalizer.NormalizeKey(key)
		if len(aliases) == 0 {
			continue
		}
		for _, alias := range aliases {
			r.keyToAction[alias] = action
		}
		r.actionToKeys[action] = append(r.actionToKeys[action], aliases[0])
	}
}

// GetKeys returns the keys bound to an action, nil when unbound.
func (r *KeybindRegistry) GetKeys(action string) []string {
	return r.actionToKeys[action]
}

// GetAction returns the action bound to a key, empty when unbound.
func (r *KeybindRegistry) GetAction(key string) string {
	for _, alias := range r.normalizer.NormalizeKey(key) {
		if action, ok := r.keyToAction[alias]; ok {
			return action
		}
	}
	return ""
}

// GetKeysForDisplay returns the keys for an action joined for help text.
func (r *KeybindRegistry) GetKeysForDisplay(action string) string {
	return strings.Join(r.actionToKeys[action], ", ")
}

// =============================================================================
// Key Normalizer
// =============================================================================

// KeyNormalizer canonicalizes key names so "Ctrl+W", "ctrl+w" and aliased
// names like enter/return hit the same binding.
type KeyNormalizer struct {
	aliases map[string][]string
}

// NewKeyNormalizer returns a normalizer with the standard alias table.
func NewKeyNormalizer() *KeyNormalizer {
	return &KeyNormalizer{
		aliases: map[string][]string{
			"enter":  {"enter", "return"},
			"return": {"return", "enter"},
			"esc":    {"esc", "escape"},
			"escape": {"escape", "esc"},
			"space":  {"space", " "},
			" ":      {" ", "space"},
		},
	}
}

// NormalizeKey lowercases a key chord and expands base-key aliases. A
// shifted letter expands to both forms the terminal can report, "M" and
// "shift+m". The result always starts with the canonical form of the input
// itself; nil means the key is empty or malformed.
func (n *KeyNormalizer) NormalizeKey(key string) []string {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil
	}

	if len(key) == 1 && key[0] >= 'A' && key[0] <= 'Z' {
		return []string{key, "shift+" + strings.ToLower(key)}
	}

	key = strings.ToLower(key)

	// Split a trailing base key off the modifier chain. A literal "+"
	// binding has no modifiers.
	base := key
	prefix := ""
	if idx := strings.LastIndex(key, "+"); idx > 0 && idx < len(key)-1 {
		prefix = key[:idx+1]
		base = key[idx+1:]
	}

	if prefix == "shift+" && len(base) == 1 && base[0] >= 'a' && base[0] <= 'z' {
		return []string{key, strings.ToUpper(base)}
	}

	aliases, ok := n.aliases[base]
	if !ok {
		return []string{key}
	}
	out := make([]string, 0, len(aliases))
	for _, a := range aliases {
		out = append(out, prefix+a)
	}
	return out
}

// ValidateKey reports whether a key chord is usable and returns its
// canonical form, empty when invalid.
func (n *KeyNormalizer) ValidateKey(key string) (bool, string) {
	normalized := n.NormalizeKey(key)
	if len(normalized) == 0 {
		return false, ""
	}
	return true, normalized[0]
}

// =============================================================================
// Action Descriptions
// =============================================================================

// ActionDescriptions maps action names to the descriptions shown in the
// help overlay and the keybinds listing.
var ActionDescriptions = map[string]string{
	"new_window":      "Open a new window",
	"close_window":    "Close the focused window",
	"rename_window":   "Rename the focused window",
	"minimize_window": "Minimize the focused window",
	"restore_all":     "Restore all minimized windows",
	"toggle_maximize": "Maximize or restore the focused window",
	"next_window":     "Focus the next window",
	"prev_window":     "Focus the previous window",
	"select_window_1": "Focus window 1",
	"select_window_2": "Focus window 2",
	"select_window_3": "Focus window 3",
	"select_window_4": "Focus window 4",
	"select_window_5": "Focus window 5",
	"select_window_6": "Focus window 6",
	"select_window_7": "Focus window 7",
	"select_window_8": "Focus window 8",
	"select_window_9": "Focus window 9",
	"arrange_cascade": "Cascade visible windows",
	"arrange_tile":    "Tile visible windows in a grid",
	"arrange_stack":   "Stack visible windows",
	"preset_picker":   "Open the layout preset picker",
	"move_left":       "Nudge the focused window left",
	"move_right":      "Nudge the focused window right",
	"move_up":         "Nudge the focused window up",
	"move_down":       "Nudge the focused window down",
	"grow_width":      "Widen the focused window",
	"shrink_width":    "Narrow the focused window",
	"grow_height":     "Grow the focused window taller",
	"shrink_height":   "Shrink the focused window shorter",
	"toggle_lock":     "Lock or unlock the focused window",
	"toggle_collapse": "Collapse or expand the focused window",
	"dock_left":       "Dock the focused window to the left edge",
	"dock_right":      "Dock the focused window to the right edge",
	"dock_bottom":     "Dock the focused window to the bottom edge",
	"undock":          "Undock the focused window",
	"toggle_help":     "Toggle the help overlay",
	"toggle_logs":     "Toggle the log viewer",
	"toggle_taskbar":  "Show or hide the taskbar",
	"quit":            "Quit",
}
