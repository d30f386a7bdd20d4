package app

import (
	"fmt"
	"strings"

	"github.com/daddyholnes/podplay-sanctuary-build/internal/config"
	"github.com/daddyholnes/podplay-sanctuary-build/internal/content"
	"github.com/daddyholnes/podplay-sanctuary-build/internal/wm"
)

// presetToLayout converts a preset from its TOML schema into the window
// manager's form.
func presetToLayout(p config.Preset) wm.Preset {
	entries := make([]wm.PresetEntry, 0, len(p.Windows))
	for _, w := range p.Windows {
		e := wm.PresetEntry{
			Title:     w.Title,
			Kind:      w.Kind,
			Icon:      content.Icon(w.Kind),
			Locked:    w.Locked,
			Collapsed: w.Collapsed,
		}
		if len(w.Position) == 2 {
			e.Position = &wm.Position{X: w.Position[0], Y: w.Position[1]}
		}
		if len(w.Size) == 2 {
			e.Size = &wm.Size{Width: w.Size[0], Height: w.Size[1]}
		}
		if len(w.MinSize) == 2 {
			e.MinSize = &wm.Size{Width: w.MinSize[0], Height: w.MinSize[1]}
		}
		if len(w.MaxSize) == 2 {
			e.MaxSize = &wm.Size{Width: w.MaxSize[0], Height: w.MaxSize[1]}
		}
		if w.Dock != "" {
			if z, ok := wm.ParseDockZone(w.Dock); ok {
				e.Zone = z
			}
		}
		entries = append(entries, e)
	}
	return wm.Preset{Name: p.Name, Description: p.Description, Entries: entries}
}

// ApplyPresetByName looks up a loaded preset by name and applies it.
func (d *Desktop) ApplyPresetByName(name string) error {
	for _, p := range d.Presets {
		if strings.EqualFold(p.Name, name) {
			return d.Manager.ApplyPreset(presetToLayout(p))
		}
	}
	return fmt.Errorf("%w %q", wm.ErrUnknownPreset, name)
}

// ApplySelectedPreset applies the preset picker's current selection and
// dismisses the picker.
func (d *Desktop) ApplySelectedPreset() {
	if d.PresetSelection < 0 || d.PresetSelection >= len(d.Presets) {
		return
	}
	p := d.Presets[d.PresetSelection]
	if err := d.Manager.ApplyPreset(presetToLayout(p)); err != nil {
		d.ShowNotification(fmt.Sprintf("preset failed: %v", err), "error", config.NotificationDuration)
		return
	}
	d.ShowPresets = false
	d.ShowNotification(fmt.Sprintf("applied preset %s", p.Name), "success", config.NotificationDuration)
}
