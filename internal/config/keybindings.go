package config

import "fmt"

// Keybinding is a single key-to-description pair for display.
type Keybinding struct {
	Key         string
	Description string
}

// KeybindingSection groups related keybindings for the help overlay.
type KeybindingSection struct {
	Title    string
	Bindings []Keybinding
}

// GetPrefixKeybindings returns the follow-up keys available after the
// leader key, for the prefix hint overlay.
func GetPrefixKeybindings() []Keybinding {
	return []Keybinding{
		{"n", "New window"},
		{"x", "Close window"},
		{"1-9", "Focus window"},
		{"c", "Cascade windows"},
		{"t", "Tile windows"},
		{"s", "Stack windows"},
		{"p", "Preset picker"},
		{"q", "Quit"},
		{"Esc", "Cancel"},
	}
}

// GetKeybindings returns the keybinding sections for the help menu,
// generated from the registry so remapped keys show up correctly. A nil
// registry falls back to the defaults.
func GetKeybindings(registry *KeybindRegistry) []KeybindingSection {
	if registry == nil {
		registry = NewKeybindRegistry(DefaultConfig())
	}

	sections := []KeybindingSection{}

	windows := KeybindingSection{Title: "WINDOWS"}
	addBinding(&windows, registry, "new_window", "New window")
	addBinding(&windows, registry, "close_window", "Close window")
	addBinding(&windows, registry, "rename_window", "Rename window")
	addBinding(&windows, registry, "minimize_window", "Minimize window")
	addBinding(&windows, registry, "restore_all", "Restore all")
	addBinding(&windows, registry, "toggle_maximize", "Maximize / restore")
	addBinding(&windows, registry, "next_window", "Next window")
	addBinding(&windows, registry, "prev_window", "Previous window")
	for i := 1; i <= 9; i++ {
		action := fmt.Sprintf("select_window_%d", i)
		desc := fmt.Sprintf("Focus window %d", i)
		addBinding(&windows, registry, action, desc)
	}
	if len(windows.Bindings) > 0 {
		sections = append(sections, windows)
	}

	layout := KeybindingSection{Title: "LAYOUT"}
	addBinding(&layout, registry, "arrange_cascade", "Cascade")
	addBinding(&layout, registry, "arrange_tile", "Tile grid")
	addBinding(&layout, registry, "arrange_stack", "Stack")
	addBinding(&layout, registry, "preset_picker", "Preset picker")
	addBinding(&layout, registry, "move_left", "Nudge left")
	addBinding(&layout, registry, "move_right", "Nudge right")
	addBinding(&layout, registry, "move_up", "Nudge up")
	addBinding(&layout, registry, "move_down", "Nudge down")
	addBinding(&layout, registry, "grow_width", "Grow width")
	addBinding(&layout, registry, "shrink_width", "Shrink width")
	addBinding(&layout, registry, "grow_height", "Grow height")
	addBinding(&layout, registry, "shrink_height", "Shrink height")
	if len(layout.Bindings) > 0 {
		sections = append(sections, layout)
	}

	panels := KeybindingSection{Title: "PANELS"}
	addBinding(&panels, registry, "toggle_lock", "Lock / unlock")
	addBinding(&panels, registry, "toggle_collapse", "Collapse / expand")
	addBinding(&panels, registry, "dock_left", "Dock left")
	addBinding(&panels, registry, "dock_right", "Dock right")
	addBinding(&panels, registry, "dock_bottom", "Dock bottom")
	addBinding(&panels, registry, "undock", "Undock")
	if len(panels.Bindings) > 0 {
		sections = append(sections, panels)
	}

	system := KeybindingSection{Title: "SYSTEM"}
	addBinding(&system, registry, "toggle_help", "Toggle help")
	addBinding(&system, registry, "toggle_logs", "Toggle logs")
	addBinding(&system, registry, "toggle_taskbar", "Toggle taskbar")
	addBinding(&system, registry, "quit", "Quit")
	if len(system.Bindings) > 0 {
		sections = append(sections, system)
	}

	sections = append(sections, getStaticHelpSections()...)
	return sections
}

// addBinding appends a binding when the action has keys configured.
func addBinding(section *KeybindingSection, registry *KeybindRegistry, action, description string) {
	keys := registry.GetKeysForDisplay(action)
	if keys != "" {
		section.Bindings = append(section.Bindings, Keybinding{
			Key:         keys,
			Description: description,
		})
	}
}

// getStaticHelpSections covers input that is not remappable: the mouse and
// the leader prefix table.
func getStaticHelpSections() []KeybindingSection {
	return []KeybindingSection{
		{
			Title: "MOUSE",
			Bindings: []Keybinding{
				{"Click title bar + drag", "Move window"},
				{"Drag edges / corners", "Resize window"},
				{"Drag to screen edge", "Dock window"},
				{"Click taskbar item", "Restore window"},
				{"Wheel over window", "Raise / focus"},
			},
		},
		{
			Title: "PREFIX (leader key)",
			Bindings: []Keybinding{
				{"n", "New window"},
				{"x", "Close window"},
				{"1-9", "Focus window"},
				{"c / t / s", "Cascade / tile / stack"},
				{"p", "Preset picker"},
				{"q", "Quit"},
			},
		},
	}
}
