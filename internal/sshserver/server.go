// Package sshserver serves the polka TUI over SSH.
package sshserver

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	wishlogging "github.com/charmbracelet/wish/logging"

	"github.com/renato0307/polka/internal/logging"
	"github.com/renato0307/polka/internal/ports"
	"github.com/renato0307/polka/internal/ui"
)

const shutdownTimeout = 30 * time.Second

// Config configures the SSH server
type Config struct {
	Addr               string
	AuthorizedKeysPath string // defaults to ~/.ssh/authorized_keys
	HostKeyDir         string
	UIOptions          ui.Options
}

// Server serves one TUI per SSH session over a shared SessionClient
type Server struct {
	addr               string
	authorizedKeysPath string
	client             ports.SessionClient
	uiOptions          ui.Options
	wishServer         *ssh.Server
}

// NewServer creates the SSH server. The host key is generated on first start.
func NewServer(client ports.SessionClient, cfg Config) (*Server, error) {
	s := &Server{
		addr:               cfg.Addr,
		authorizedKeysPath: cfg.AuthorizedKeysPath,
		client:             client,
		uiOptions:          cfg.UIOptions,
	}

	if s.authorizedKeysPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		s.authorizedKeysPath = filepath.Join(homeDir, ".ssh", "authorized_keys")
	}

	if err := os.MkdirAll(cfg.HostKeyDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create SSH directory: %w", err)
	}

	// Middleware executes in reverse order (last to first)
	wishServer, err := wish.NewServer(
		wish.WithAddress(cfg.Addr),
		wish.WithHostKeyPath(filepath.Join(cfg.HostKeyDir, "id_ed25519")),
		wish.WithPublicKeyAuth(s.publicKeyHandler),
		wish.WithMiddleware(
			cleanupMiddleware(),
			bubbletea.Middleware(s.teaHandler),
			activeterm.Middleware(),
			wishlogging.Middleware(),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSH server: %w", err)
	}

	s.wishServer = wishServer
	return s, nil
}

// Start serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	logging.Logger.Info("Starting SSH server", "address", s.addr, "authorized_keys", s.authorizedKeysPath)

	errCh := make(chan error, 1)
	go func() {
		if err := s.wishServer.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			logging.Logger.Error("SSH server error", "error", err)
			return fmt.Errorf("SSH server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logging.Logger.Info("Shutting down SSH server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.wishServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown SSH server: %w", err)
	}

	logging.Logger.Info("SSH server stopped")
	return nil
}
