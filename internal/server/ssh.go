// Package server runs the SSH front end. Every connection gets its own
// desktop sized to the session's PTY; nothing is shared between sessions.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/log/v2"
	"charm.land/wish/v2"
	"charm.land/wish/v2/bubbletea"
	"charm.land/wish/v2/logging"
	"github.com/charmbracelet/ssh"

	"github.com/daddyholnes/podplay-sanctuary-build/internal/app"
	"github.com/daddyholnes/podplay-sanctuary-build/internal/config"
	"github.com/daddyholnes/podplay-sanctuary-build/internal/input"
)

// Config holds the SSH server settings.
type Config struct {
	Host string
	Port string
	// KeyPath locates the host key. Empty means ~/.ssh/sanctuary_host_key,
	// generated on first start.
	KeyPath string
}

// shutdownGrace bounds how long open sessions get to wind down.
const shutdownGrace = 30 * time.Second

// Start runs the SSH server until ctx is cancelled.
func Start(ctx context.Context, cfg Config) error {
	keyPath := cfg.KeyPath
	if keyPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home directory: %w", err)
		}
		keyPath = filepath.Join(home, ".ssh", "sanctuary_host_key")
	}

	srv, err := wish.NewServer(
		wish.WithAddress(net.JoinHostPort(cfg.Host, cfg.Port)),
		wish.WithHostKeyPath(keyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(teaHandler),
			logging.Middleware(),
		),
	)
	if err != nil {
		return fmt.Errorf("create ssh server: %w", err)
	}

	go func() {
		log.Info("ssh server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			log.Error("ssh server stopped", "err", err)
		}
	}()

	<-ctx.Done()

	log.Info("shutting down ssh server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return err
	}
	return nil
}

// teaHandler builds a desktop for one SSH session.
func teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, active := sess.Pty()
	if !active {
		// The desktop needs a terminal
		return nil, nil
	}

	cfg, err := config.LoadUserConfig()
	if err != nil {
		log.Warn("config load failed, using defaults", "err", err)
		cfg = config.DefaultConfig()
	}

	app.SetInputHandler(input.HandleInput)

	desktop := app.NewDesktop(app.Options{
		Config:          cfg,
		KeybindRegistry: config.NewKeybindRegistry(cfg),
		Width:           pty.Window.Width,
		Height:          pty.Window.Height,
		SSHSession:      sess,
		IsSSHMode:       true,
	})

	return desktop, []tea.ProgramOption{
		tea.WithFPS(config.NormalFPS),
	}
}
