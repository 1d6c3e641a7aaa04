package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/renato0307/polka/internal/adapters/rpc"
	"github.com/renato0307/polka/internal/config"
	"github.com/renato0307/polka/internal/logging"
)

const serverShutdownTimeout = 30 * time.Second

// ServeCmd serves the command API and the event stream over HTTP
type ServeCmd struct {
	Addr string `help:"Address to listen on (default from settings.json or 127.0.0.1:7420)"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI, container *Container) error {
	if container.Remote {
		return errRemoteMode
	}

	addr, source := resolveString(s.Addr, cli.Settings().HTTPAddr, config.DefaultHTTPAddr)
	srv := &http.Server{
		Addr:              addr,
		Handler:           rpc.NewRouter(container.Client, container.Broker),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logging.Logger.Info("Starting HTTP server", "address", addr, "address_source", source)
		fmt.Printf("polka API listening on http://%s\n", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logging.Logger.Info("Shutting down HTTP server")

		// Closing the broker first ends the open event streams
		container.Broker.Close()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shutdown HTTP server: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logging.Logger.Info("HTTP server stopped")
	return nil
}
