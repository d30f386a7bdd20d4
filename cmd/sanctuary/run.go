package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/pprof"
	"sort"
	"strings"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"charm.land/log/v2"
	"golang.org/x/term"

	"github.com/daddyholnes/podplay-sanctuary-build/internal/app"
	"github.com/daddyholnes/podplay-sanctuary-build/internal/config"
	"github.com/daddyholnes/podplay-sanctuary-build/internal/input"
	"github.com/daddyholnes/podplay-sanctuary-build/internal/script"
	"github.com/daddyholnes/podplay-sanctuary-build/internal/server"
	"github.com/daddyholnes/podplay-sanctuary-build/internal/theme"
	"github.com/daddyholnes/podplay-sanctuary-build/internal/wm"
)

// loadConfig reads the user config, folds in flag overrides, and brings the
// theme up. Load failures fall back to defaults so the desktop always starts.
func loadConfig() *config.UserConfig {
	cfg, err := config.LoadUserConfig()
	if err != nil {
		log.Warn("config load failed, using defaults", "err", err)
		cfg = config.DefaultConfig()
	}
	config.ApplyOverrides(config.Overrides{
		Theme:             themeName,
		BorderStyle:       borderStyle,
		TaskbarPosition:   taskbarPosition,
		HideWindowButtons: hideWindowButtons,
		HideClock:         hideClock,
		ASCIIOnly:         asciiOnly,
		NoAnimations:      noAnimations,
	}, cfg)
	if err := theme.Initialize(cfg.Appearance.Theme); err != nil {
		log.Warn("theme failed to load", "theme", cfg.Appearance.Theme, "err", err)
	}
	return cfg
}

// filterMouseMotion drops mouse motion while no drag or resize is active.
// Idle pointer movement would otherwise wake the render loop on every cell
// crossed.
func filterMouseMotion(model tea.Model, msg tea.Msg) tea.Msg {
	if _, ok := msg.(tea.MouseMotionMsg); !ok {
		return msg
	}
	desktop, ok := model.(*app.Desktop)
	if !ok {
		return msg
	}
	if desktop.Dragging || desktop.Resizing {
		return msg
	}
	return nil
}

// runDesktop starts the desktop in the local terminal. A non-empty scenePath
// plays that scene inside the session.
func runDesktop(scenePath string) error {
	if debugMode {
		log.SetLevel(log.DebugLevel)
	}

	if cpuProfile != "" {
		f, err := os.Create(cpuProfile)
		if err != nil {
			return fmt.Errorf("create cpu profile: %w", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("start cpu profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	cfg := loadConfig()
	app.SetInputHandler(input.HandleInput)

	opts := app.Options{
		Config:          cfg,
		KeybindRegistry: config.NewKeybindRegistry(cfg),
	}
	if scenePath != "" {
		commands, err := parseScene(scenePath)
		if err != nil {
			return err
		}
		opts.ScenePlayer = script.NewPlayer(commands)
	}

	desktop := app.NewDesktop(opts)

	p := tea.NewProgram(
		desktop,
		tea.WithFPS(config.NormalFPS),
		tea.WithoutSignalHandler(),
		tea.WithFilter(filterMouseMotion),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if cfg.Behavior.WatchConfig {
		err := config.WatchConfig(ctx, func(next *config.UserConfig, err error) {
			p.Send(app.ConfigReloadedMsg{Config: next, Err: err})
		})
		if err != nil {
			log.Warn("config watcher unavailable", "err", err)
		}
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		p.Send(tea.QuitMsg{})
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}

// runSSH serves the desktop over SSH until interrupted.
func runSSH(host, port, keyPath string) error {
	if debugMode {
		log.SetLevel(log.DebugLevel)
	}

	// Appearance globals render into every session
	loadConfig()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		cancel()
	}()

	return server.Start(ctx, server.Config{Host: host, Port: port, KeyPath: keyPath})
}

// parseScene reads and parses a scene file.
func parseScene(path string) ([]script.Command, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	commands, errs := script.ParseFile(string(data))
	if len(errs) > 0 {
		return nil, fmt.Errorf("parse %s:\n  %s", path, strings.Join(errs, "\n  "))
	}
	return commands, nil
}

// runSceneHeadless applies a scene to a desktop that never draws, then
// prints the final layout. Sleeps are skipped; timing only matters on
// screen.
func runSceneHeadless(path string, width, height int) error {
	commands, err := parseScene(path)
	if err != nil {
		return err
	}

	if width <= 0 || height <= 0 {
		tw, th, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			tw, th = 160, 48
		}
		if width <= 0 {
			width = tw
		}
		if height <= 0 {
			height = th
		}
	}

	cfg := loadConfig()
	desktop := app.NewDesktop(app.Options{
		Config:          cfg,
		KeybindRegistry: config.NewKeybindRegistry(cfg),
		Width:           width,
		Height:          height,
	})

	for i := range commands {
		cmd := &commands[i]
		if cmd.Type == script.CommandType_Sleep {
			continue
		}
		if err := script.Apply(cmd, desktop); err != nil {
			return fmt.Errorf("scene line %d: %s: %w", cmd.Line, cmd.String(), err)
		}
	}

	printDesktopState(desktop)
	return nil
}

// printDesktopState dumps the final layout, back to front.
func printDesktopState(d *app.Desktop) {
	stats := d.Manager.Stats()
	fmt.Printf("windows: %d total, %d visible, %d minimized, %d maximized, %d docked\n",
		stats.Total, stats.Visible, stats.Minimized, stats.Maximized, stats.Docked)

	windows := append([]*wm.Window(nil), d.Manager.Windows()...)
	sort.Slice(windows, func(i, j int) bool { return windows[i].Z < windows[j].Z })

	focused := d.Manager.FocusedWindow()
	for _, w := range windows {
		frame := w.Frame()
		var marks []string
		if w.State != wm.StateNormal {
			marks = append(marks, w.State.String())
		}
		if w.Zone != wm.DockNone {
			marks = append(marks, "docked "+w.Zone.String())
		}
		if w.Locked {
			marks = append(marks, "locked")
		}
		if w.Collapsed {
			marks = append(marks, "collapsed")
		}
		if focused != nil && focused.ID == w.ID {
			marks = append(marks, "focused")
		}
		suffix := ""
		if len(marks) > 0 {
			suffix = "  [" + strings.Join(marks, ", ") + "]"
		}
		fmt.Printf("  z%-3d %-24q %dx%d at (%d,%d)%s\n",
			w.Z, w.Title, frame.Width, frame.Height, frame.X, frame.Y, suffix)
	}
}
