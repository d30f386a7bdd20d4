package config

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchConfig watches the config file and the preset directory, calling
// onChange with the freshly loaded config after each edit settles. Events
// are debounced because editors save through several writes, often via a
// rename of a temp file, so parent directories are watched rather than
// the files themselves.
//
// The watcher runs until ctx is cancelled. onChange is called from the
// watch goroutine; callers feed it back to the program loop rather than
// touching model state directly.
func WatchConfig(ctx context.Context, onChange func(*UserConfig, error)) error {
	path, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return fmt.Errorf("watch config dir: %w", err)
	}

	// The preset directory may not exist yet. It sits inside the config
	// directory, so its creation shows up on the watch above and the
	// directory gets added then.
	presetsDir := GetPresetsDir()
	_ = watcher.Add(presetsDir)

	go func() {
		defer watcher.Close()

		var timer *time.Timer
		var fire <-chan time.Time
		base := filepath.Base(path)

		schedule := func() {
			if timer == nil {
				timer = time.NewTimer(ReloadDebounce)
				fire = timer.C
				return
			}
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(ReloadDebounce)
		}

		for {
			select {
			case <-ctx.Done():
				if timer != nil {
					timer.Stop()
				}
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				switch {
				case event.Name == presetsDir:
					if event.Has(fsnotify.Create) {
						_ = watcher.Add(presetsDir)
						schedule()
					}
				case filepath.Dir(event.Name) == presetsDir:
					// Deleting a preset file narrows the list, so unlike
					// the config file Remove counts as a change here.
					if strings.HasSuffix(event.Name, ".toml") &&
						(event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
							event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove)) {
						schedule()
					}
				case filepath.Base(event.Name) == base:
					if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
						schedule()
					}
				}
			case <-fire:
				timer = nil
				fire = nil
				cfg, err := LoadUserConfig()
				onChange(cfg, err)
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()
	return nil
}
