package cmd

import (
	"errors"
	"time"

	"github.com/renato0307/polka/internal/adapters/artifacts"
	"github.com/renato0307/polka/internal/adapters/rpc"
	"github.com/renato0307/polka/internal/adapters/storage"
	"github.com/renato0307/polka/internal/config"
	"github.com/renato0307/polka/internal/events"
	"github.com/renato0307/polka/internal/logging"
	"github.com/renato0307/polka/internal/ports"
	"github.com/renato0307/polka/internal/services"
)

// eventsHeartbeat keeps idle SSE connections open through proxies
const eventsHeartbeat = 15 * time.Second

// errRemoteMode is returned by commands that need the local database
var errRemoteMode = errors.New("this command needs the local backend; drop --remote")

// Container holds all dependencies for the application
type Container struct {
	// Broker is nil in remote mode
	Broker *events.Broker
	Client ports.SessionClient
	Remote bool

	// Internal - for cleanup only
	sessionRepo ports.SessionRepository
}

// NewContainer wires the native backend, or an HTTP client when remoteURL is set
func NewContainer(remoteURL string, timeout time.Duration) (*Container, error) {
	if remoteURL != "" {
		logging.Logger.Info("Using remote backend", "url", remoteURL, "timeout", timeout.String())
		return &Container{
			Client: rpc.NewClient(remoteURL, timeout),
			Remote: true,
		}, nil
	}

	sessionRepo, err := storage.NewSQLiteRepository(config.GetDBPath())
	if err != nil {
		return nil, err
	}

	artifactStore, err := artifacts.NewFSStore(config.GetSessionsDir())
	if err != nil {
		_ = sessionRepo.Close()
		return nil, err
	}

	broker := events.NewBroker(eventsHeartbeat)

	return &Container{
		Broker:      broker,
		Client:      services.NewCommandService(sessionRepo, artifactStore, broker),
		sessionRepo: sessionRepo,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	c.Broker.Close()
	if c.sessionRepo != nil {
		return c.sessionRepo.Close()
	}
	return nil
}
