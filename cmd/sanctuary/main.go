// Package main implements sanctuary, a desktop for the terminal: draggable,
// resizable windows and docked panels over a canvas, driven by keyboard or
// mouse, servable over SSH, and scriptable through scene files.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/daddyholnes/podplay-sanctuary-build/internal/config"
)

// Version information (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

// Global flags
var (
	debugMode  bool
	cpuProfile string

	themeName         string
	borderStyle       string
	taskbarPosition   string
	hideWindowButtons bool
	hideClock         bool
	asciiOnly         bool
	noAnimations      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sanctuary",
		Short: "A window desktop for the terminal",
		Long: `Sanctuary - a desktop for the terminal

Windows and panels float over a canvas: drag them by the title bar, resize
from any edge or corner, dock them to the screen edges, and arrange them
with cascade, tile, and stack layouts or named presets. Everything works
with the mouse or from the keyboard.`,
		Example: `  # Run the desktop
  sanctuary

  # Run with a theme
  sanctuary --theme dracula

  # Serve over SSH
  sanctuary ssh --port 2222

  # Play a scene script headlessly
  sanctuary play demo.scene

  # Edit the configuration
  sanctuary config edit`,
		Version: version,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runDesktop("")
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&cpuProfile, "cpuprofile", "", "Write CPU profile to file")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "Color theme (e.g. dracula, nord, tokyonight)")
	rootCmd.PersistentFlags().StringVar(&borderStyle, "border-style", "", "Window border style: rounded, normal, thick, double, hidden")
	rootCmd.PersistentFlags().StringVar(&taskbarPosition, "taskbar-position", "", "Taskbar position: bottom, top, hidden")
	rootCmd.PersistentFlags().BoolVar(&hideWindowButtons, "hide-window-buttons", false, "Hide window control buttons (minimize, maximize, close)")
	rootCmd.PersistentFlags().BoolVar(&hideClock, "hide-clock", false, "Hide the taskbar clock")
	rootCmd.PersistentFlags().BoolVar(&asciiOnly, "ascii-only", false, "Use ASCII characters instead of Nerd Font glyphs")
	rootCmd.PersistentFlags().BoolVar(&noAnimations, "no-animations", false, "Disable window animations")

	var sshHost, sshPort, sshKeyPath string
	sshCmd := &cobra.Command{
		Use:   "ssh",
		Short: "Serve the desktop over SSH",
		Long: `Serve the desktop over SSH

Each connection gets its own desktop sized to the client terminal. The host
key is generated on first start if none is given.`,
		Example: `  # Start on the default port
  sanctuary ssh

  # Custom port and host key
  sanctuary ssh --port 2222 --key-path /path/to/host_key`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runSSH(sshHost, sshPort, sshKeyPath)
		},
	}
	sshCmd.Flags().StringVar(&sshHost, "host", "localhost", "SSH server host")
	sshCmd.Flags().StringVar(&sshPort, "port", "2222", "SSH server port")
	sshCmd.Flags().StringVar(&sshKeyPath, "key-path", "", "Path to the SSH host key (generated when missing)")

	var playInteractive bool
	var playWidth, playHeight int
	playCmd := &cobra.Command{
		Use:   "play <scene>",
		Short: "Run a scene script",
		Long: `Run a scene script

Scenes are plain text files of desktop commands: Open, Move, Resize, Dock,
Arrange, Preset, Sleep, and friends. By default the scene runs headlessly
and the final layout is printed; with --interactive it plays inside the
desktop.`,
		Example: `  # Print the layout a scene produces
  sanctuary play demo.scene

  # Watch it happen
  sanctuary play demo.scene --interactive`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if playInteractive {
				return runDesktop(args[0])
			}
			return runSceneHeadless(args[0], playWidth, playHeight)
		},
	}
	playCmd.Flags().BoolVar(&playInteractive, "interactive", false, "Play the scene inside the desktop")
	playCmd.Flags().IntVar(&playWidth, "width", 0, "Canvas width for headless playback (0 = terminal width, else 160)")
	playCmd.Flags().IntVar(&playHeight, "height", 0, "Canvas height for headless playback (0 = terminal height, else 48)")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}
	configCmd.AddCommand(
		&cobra.Command{
			Use:   "path",
			Short: "Print the configuration file path",
			RunE: func(_ *cobra.Command, _ []string) error {
				return printConfigPath()
			},
		},
		&cobra.Command{
			Use:   "edit",
			Short: "Edit the configuration in $EDITOR",
			RunE: func(_ *cobra.Command, _ []string) error {
				return editConfigFile()
			},
		},
		&cobra.Command{
			Use:   "reset",
			Short: "Reset the configuration to defaults",
			RunE: func(_ *cobra.Command, _ []string) error {
				return resetConfig()
			},
		},
	)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "Inspect layout presets",
	}
	presetsCmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List available presets",
			RunE: func(_ *cobra.Command, _ []string) error {
				return listPresets()
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the user preset directory",
			RunE: func(_ *cobra.Command, _ []string) error {
				fmt.Println(config.GetPresetsDir())
				return nil
			},
		},
	)

	keybindsCmd := &cobra.Command{
		Use:     "keybinds",
		Aliases: []string{"keys", "kb"},
		Short:   "View the keybinding configuration",
	}
	keybindsCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all keybindings",
		RunE: func(_ *cobra.Command, _ []string) error {
			return listKeybindings()
		},
	})

	rootCmd.AddCommand(sshCmd, playCmd, configCmd, presetsCmd, keybindsCmd)

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s\nBuilt: %s\nBy: %s", version, commit, date, builtBy)),
	); err != nil {
		os.Exit(1)
	}
}

func printConfigPath() error {
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}
	fmt.Println(path)
	return nil
}

// editConfigFile opens the config in $EDITOR, creating the default file
// first when none exists.
func editConfigFile() error {
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Printf("Creating default configuration at %s\n", path)
		if _, err := config.LoadUserConfig(); err != nil {
			return fmt.Errorf("create config file: %w", err)
		}
	}

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = os.Getenv("VISUAL")
	}
	if editor == "" {
		for _, e := range []string{"vim", "vi", "nano", "emacs"} {
			if _, err := exec.LookPath(e); err == nil {
				editor = e
				break
			}
		}
	}
	if editor == "" {
		return fmt.Errorf("no editor found; set $EDITOR")
	}

	cmd := exec.Command(editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// resetConfig overwrites the config file with the defaults after a
// confirmation prompt.
func resetConfig() error {
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		fmt.Printf("This will overwrite your configuration at:\n  %s\n\n", path)
		fmt.Printf("Reset to defaults? (yes/no): ")

		var response string
		fmt.Scanln(&response)
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "yes" && response != "y" {
			fmt.Println("Reset cancelled.")
			return nil
		}
	}

	if err := config.SaveConfig(config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Printf("Configuration reset to defaults\n  Location: %s\n", path)
	return nil
}

// listPresets prints all presets, built-in and user, in a table.
func listPresets() error {
	presets, err := config.LoadPresets()
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(presets))
	for _, p := range presets {
		rows = append(rows, []string{p.Name, fmt.Sprintf("%d", len(p.Windows)), p.Description})
	}

	fmt.Println()
	fmt.Println(renderTable([]string{"Name", "Windows", "Description"}, rows))
	fmt.Println()
	fmt.Printf("User presets live in %s (one TOML file each).\n", config.GetPresetsDir())
	return nil
}

// listKeybindings prints the configured keybindings, one table per section.
func listKeybindings() error {
	cfg, err := config.LoadUserConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\nUsing default keybindings...\n", err)
		cfg = config.DefaultConfig()
	}
	registry := config.NewKeybindRegistry(cfg)

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))

	fmt.Println()
	fmt.Println(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")).Render("Sanctuary Keybindings"))
	fmt.Println()

	for _, section := range config.GetKeybindings(registry) {
		rows := make([][]string, 0, len(section.Bindings))
		for _, b := range section.Bindings {
			rows = append(rows, []string{b.Key, b.Description})
		}
		if len(rows) == 0 {
			continue
		}
		fmt.Println(titleStyle.Render(section.Title))
		fmt.Println(renderTable([]string{"Keys", "Action"}, rows))
		fmt.Println()
	}

	note := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Italic(true).
		Render(fmt.Sprintf("Prefix commands follow the leader key (%s).", cfg.Keybindings.LeaderKey))
	fmt.Println(note)
	fmt.Println()
	return nil
}

// renderTable draws a two-or-more column table with the house border style.
func renderTable(headers []string, rows [][]string) string {
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("12")).
		Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("8"))).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			return cellStyle
		}).
		Render()
}
