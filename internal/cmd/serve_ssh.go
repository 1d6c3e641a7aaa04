package cmd

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/renato0307/polka/internal/config"
	"github.com/renato0307/polka/internal/logging"
	"github.com/renato0307/polka/internal/sshserver"
)

// ServeSSHCmd serves the TUI over SSH
type ServeSSHCmd struct {
	AuthorizedKeys  string `help:"authorized_keys file checked for client keys (default ~/.ssh/authorized_keys)" type:"path"`
	AutosaveDelayMs int    `help:"Milliseconds of idle typing before notes are saved" default:"1000"`
	ErrorClearDelay int    `help:"Seconds before error messages auto-clear" default:"10"`
	Host            string `help:"Host to bind to (default from settings.json or 127.0.0.1)"`
	Port            string `help:"Port to listen on (default from settings.json or 23234)"`
}

// Run executes the serve-ssh command
func (s *ServeSSHCmd) Run(cli *CLI, container *Container) error {
	addr, err := s.address(cli.Settings().SSHAddr)
	if err != nil {
		return err
	}

	run := RunCmd{AutosaveDelayMs: s.AutosaveDelayMs, ErrorClearDelay: s.ErrorClearDelay}
	srv, err := sshserver.NewServer(container.Client, sshserver.Config{
		Addr:               addr,
		AuthorizedKeysPath: s.AuthorizedKeys,
		HostKeyDir:         config.GetSSHDir(),
		UIOptions:          run.uiOptions(cli),
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Logger.Info("Starting polka SSH server", "address", addr, "remote", container.Remote)
	fmt.Printf("SSH server listening on %s\n", addr)
	return srv.Start(ctx)
}

// address combines --host and --port with the configured address.
// A flag only replaces its own half.
func (s *ServeSSHCmd) address(fromSettings string) (string, error) {
	base := config.DefaultSSHAddr
	if fromSettings != "" {
		base = fromSettings
	}
	host, port, err := net.SplitHostPort(base)
	if err != nil {
		return "", fmt.Errorf("invalid ssh_addr %q: %w", base, err)
	}
	if s.Host != "" {
		host = s.Host
	}
	if s.Port != "" {
		port = s.Port
	}
	return net.JoinHostPort(host, port), nil
}
