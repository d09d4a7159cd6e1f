package app

import (
	"context"
	"fmt"
	stdhttp "net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/akravets/talkroom-server/internal/auth"
	"github.com/akravets/talkroom-server/internal/config"
	"github.com/akravets/talkroom-server/internal/service/messages"
	"github.com/akravets/talkroom-server/internal/service/people"
	"github.com/akravets/talkroom-server/internal/service/roles"
	"github.com/akravets/talkroom-server/internal/service/rooms"
	"github.com/akravets/talkroom-server/internal/store"
	"github.com/akravets/talkroom-server/internal/store/sqlite"
	transporthttp "github.com/akravets/talkroom-server/internal/transport/http"
)

// App wires together store, services and transport.
type App struct {
	server          *stdhttp.Server
	shutdownTimeout time.Duration
	store           store.Store
	log             *zerolog.Logger
}

// New constructs the application with the provided configuration.
func New(cfg *config.Config, logger *zerolog.Logger) (*App, error) {
	st, err := sqlite.New(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("init store: %w", err)
	}

	logger.Info().Str("db_path", cfg.DatabasePath).Msg("database initialized")

	jwtConfig := &auth.JWTConfig{
		Secret: []byte(cfg.JWTSecret),
		Issuer: cfg.JWTIssuer,
		TTL:    cfg.TokenTTL,
	}

	svcs := transporthttp.Services{
		Auth:     auth.NewService(st, jwtConfig),
		People:   people.New(st),
		Roles:    roles.New(st),
		Rooms:    rooms.New(st),
		Messages: messages.New(st),
	}

	return &App{
		server:          transporthttp.NewServer(svcs, cfg, logger),
		shutdownTimeout: cfg.ShutdownTimeout,
		store:           st,
		log:             logger,
	}, nil
}

// Run starts the HTTP server and blocks until context cancellation or
// a fatal server error.
func (a *App) Run(ctx context.Context) error {
	serverErr := make(chan error, 1)

	go func() {
		if err := a.server.ListenAndServe(); err != nil && err != stdhttp.ErrServerClosed {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	select {
	case err := <-serverErr:
		a.cleanup()
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
		defer cancel()

		a.log.Info().Msg("shutting down http server")
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			a.cleanup()
			return err
		}

		a.cleanup()
		return <-serverErr
	}
}

func (a *App) cleanup() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.log.Warn().Err(err).Msg("failed to close store")
		} else {
			a.log.Info().Msg("store closed")
		}
	}
}
