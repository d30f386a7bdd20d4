package wm

import "fmt"

// PresetEntry is one partial window configuration inside a preset. Unset
// geometry falls back to the manager defaults at apply time.
type PresetEntry struct {
	Title     string
	Kind      string
	Icon      string
	Position  *Position
	Size      *Size
	MinSize   *Size
	MaxSize   *Size
	Locked    bool
	Collapsed bool
	Zone      DockZone
}

// Preset is a named, static list of window configurations applied
// atomically: the existing collection is cleared and replaced by one window
// per entry, each with a fresh id and stacking value.
type Preset struct {
	Name        string
	Description string
	Entries     []PresetEntry
}

// Validate checks every entry's size bounds so ApplyPreset can clear the
// collection only when the whole preset is applicable.
func (p Preset) Validate() error {
	for i, e := range p.Entries {
		if e.MinSize == nil || e.MaxSize == nil {
			continue
		}
		if e.MaxSize.Width > 0 && e.MinSize.Width > e.MaxSize.Width {
			return fmt.Errorf("preset %q entry %d: %w", p.Name, i, ErrInvalidBounds)
		}
		if e.MaxSize.Height > 0 && e.MinSize.Height > e.MaxSize.Height {
			return fmt.Errorf("preset %q entry %d: %w", p.Name, i, ErrInvalidBounds)
		}
	}
	return nil
}

// ApplyPreset clears all existing windows and instantiates the preset's
// entries in list order with fresh ids and stacking values. The operation
// is destructive and atomic: validation runs before the clear, so a bad
// preset leaves the current desktop untouched.
func (m *Manager) ApplyPreset(p Preset) error {
	if err := p.Validate(); err != nil {
		return err
	}
	// Entries without an explicit minimum inherit the manager default at
	// create time; screen that combination too so the clear below never
	// precedes a failed create.
	for i, e := range p.Entries {
		if e.MinSize != nil || e.MaxSize == nil {
			continue
		}
		minSize := m.opts.MinSize
		if (e.MaxSize.Width > 0 && minSize.Width > e.MaxSize.Width) ||
			(e.MaxSize.Height > 0 && minSize.Height > e.MaxSize.Height) {
			return fmt.Errorf("preset %q entry %d: %w", p.Name, i, ErrInvalidBounds)
		}
	}

	m.windows = nil
	for _, e := range p.Entries {
		opts := Options{
			Position:  e.Position,
			Size:      e.Size,
			MinSize:   e.MinSize,
			MaxSize:   e.MaxSize,
			Kind:      e.Kind,
			Icon:      e.Icon,
			Locked:    e.Locked,
			Collapsed: e.Collapsed,
			Zone:      e.Zone,
		}
		if _, err := m.CreateWindow(e.Title, nil, opts); err != nil {
			// Validate() screens bounds ahead of time, so creation
			// cannot fail here; keep the contract honest anyway.
			return fmt.Errorf("preset %q: %w", p.Name, err)
		}
	}
	m.emit(EventPresetApplied, nil, p.Name)
	return nil
}
