// Package main implements sanctuary-web, a browser front end for the
// desktop. The sip library serves each browser tab its own desktop over
// WebTransport with a WebSocket fallback.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"charm.land/log/v2"
	"github.com/Gaurav-Gosain/sip"
	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/daddyholnes/podplay-sanctuary-build/internal/app"
	"github.com/daddyholnes/podplay-sanctuary-build/internal/config"
	"github.com/daddyholnes/podplay-sanctuary-build/internal/input"
	"github.com/daddyholnes/podplay-sanctuary-build/internal/theme"
)

// Version information (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

// Command-line flags
var (
	webPort           string
	webHost           string
	webReadOnly       bool
	webMaxConnections int
	// Desktop forwarded flags
	debugMode         bool
	asciiOnly         bool
	themeName         string
	borderStyle       string
	taskbarPosition   string
	hideWindowButtons bool
	hideClock         bool
	noAnimations      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sanctuary-web",
		Short: "Serve the sanctuary desktop in the browser",
		Long: `sanctuary-web - Browser server for the sanctuary desktop

Serves the desktop through the browser, powered by sip
(github.com/Gaurav-Gosain/sip). Every tab gets its own desktop sized to
the browser viewport.

Server features:
  - Dual protocol support: WebTransport (HTTP/3 over QUIC) for low latency
    with automatic WebSocket fallback for broader compatibility
  - Self-signed TLS certificate generation for development
  - Configurable host, port, read-only mode, and connection limits
  - Appearance flags forwarded to every spawned desktop`,
		Example: `  # Start on the default port (7681)
  sanctuary-web

  # Start on a custom port
  sanctuary-web --port 8080

  # Bind to all interfaces for remote access
  sanctuary-web --host 0.0.0.0

  # Start with a specific theme
  sanctuary-web --theme dracula

  # Read-only mode (view only)
  sanctuary-web --read-only

  # Limit concurrent connections
  sanctuary-web --max-connections 10`,
		Version: version,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runWebServer()
		},
		SilenceUsage: true,
	}

	// Web server flags
	rootCmd.Flags().StringVar(&webPort, "port", "7681", "Web server port")
	rootCmd.Flags().StringVar(&webHost, "host", "localhost", "Web server host")
	rootCmd.Flags().BoolVar(&webReadOnly, "read-only", false, "Disable input from clients (view only)")
	rootCmd.Flags().IntVar(&webMaxConnections, "max-connections", 0, "Maximum concurrent connections (0 = unlimited)")

	// Desktop forwarded flags
	rootCmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.Flags().BoolVar(&asciiOnly, "ascii-only", false, "Use ASCII characters instead of Nerd Font glyphs")
	rootCmd.Flags().StringVar(&themeName, "theme", "", "Color theme (e.g. dracula, nord, tokyonight)")
	rootCmd.Flags().StringVar(&borderStyle, "border-style", "", "Window border style: rounded, normal, thick, double, hidden")
	rootCmd.Flags().StringVar(&taskbarPosition, "taskbar-position", "", "Taskbar position: bottom, top, hidden")
	rootCmd.Flags().BoolVar(&hideWindowButtons, "hide-window-buttons", false, "Hide window control buttons (minimize, maximize, close)")
	rootCmd.Flags().BoolVar(&hideClock, "hide-clock", false, "Hide the taskbar clock")
	rootCmd.Flags().BoolVar(&noAnimations, "no-animations", false, "Disable window animations")

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s\nBuilt: %s\nBy: %s", version, commit, date, builtBy)),
	); err != nil {
		os.Exit(1)
	}
}

func runWebServer() error {
	// Force lipgloss to TrueColor BEFORE any styles are created. The color
	// profile is detected from os.Stdout, which is not a TTY when running
	// as a web server, so detection would strip every color.
	lipgloss.Writer.Profile = colorprofile.TrueColor

	_ = os.Setenv("TERM", "xterm-256color")
	_ = os.Setenv("COLORTERM", "truecolor")

	if debugMode {
		log.SetLevel(log.DebugLevel)
	}

	// Appearance globals render into every session, so they are applied
	// once here rather than per connection.
	cfg, err := config.LoadUserConfig()
	if err != nil {
		log.Warn("failed to load config, using defaults", "err", err)
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		cancel()
	}()

	sipConfig := sip.DefaultConfig()
	sipConfig.Host = webHost
	sipConfig.Port = webPort
	sipConfig.ReadOnly = webReadOnly
	sipConfig.MaxConnections = webMaxConnections
	sipConfig.Debug = debugMode

	server := sip.NewServer(sipConfig)
	return server.Serve(ctx, createDesktopHandler)
}

// createDesktopHandler builds a desktop for each browser session.
func createDesktopHandler(sess sip.Session) (tea.Model, []tea.ProgramOption) {
	pty := sess.Pty()

	cfg, err := config.LoadUserConfig()
	if err != nil {
		log.Warn("failed to load config for session, using defaults", "err", err)
		cfg = config.DefaultConfig()
	}

	app.SetInputHandler(input.HandleInput)

	desktop := app.NewDesktop(app.Options{
		Config:          cfg,
		KeybindRegistry: config.NewKeybindRegistry(cfg),
		Width:           pty.Width,
		Height:          pty.Height,
	})

	return desktop, []tea.ProgramOption{
		tea.WithFPS(config.NormalFPS),
	}
}
