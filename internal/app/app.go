// Package app wires configuration, logging, the session store, and the API
// client into one unit the CLI commands share.
package app

import (
	"fmt"
	"os"

	"github.com/oxylife/oxycare/internal/clients/careapi"
	"github.com/oxylife/oxycare/internal/common"
	"github.com/oxylife/oxycare/internal/interfaces"
	"github.com/oxylife/oxycare/internal/tokens"
)

// App holds the initialized application components.
type App struct {
	Config *common.Config
	Logger *common.Logger
	Store  interfaces.TokenStore
	API    *careapi.Client
}

// NewApp initializes the application from the given config file path
// (optional; defaults and env overrides always apply).
func NewApp(configPath string) (*App, error) {
	config, err := common.LoadConfig("oxycare.toml", configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := common.NewLogger(config.Logging.Level)

	store, err := openStore(config, logger)
	if err != nil {
		return nil, err
	}

	client := careapi.NewClient(store,
		careapi.WithBaseURL(config.API.BaseURL),
		careapi.WithLogger(logger),
		careapi.WithTimeout(config.API.GetTimeout()),
		careapi.WithRefreshTimeout(config.API.GetRefreshTimeout()),
		careapi.WithRateLimit(config.API.RateLimit),
		careapi.WithNotifier(careapi.NewNotifier(config.Notify.GetClearAfter())),
		careapi.WithSessionEndHook(func() {
			fmt.Fprintln(os.Stderr, "Session expirée. Veuillez vous reconnecter avec `oxycare login`.")
		}),
	)

	return &App{
		Config: config,
		Logger: logger,
		Store:  store,
		API:    client,
	}, nil
}

// openStore opens the persistent session store, falling back to memory when
// no path is configured (useful for tests and one-off commands).
func openStore(config *common.Config, logger *common.Logger) (interfaces.TokenStore, error) {
	if config.Storage.Path == "" {
		logger.Debug().Msg("No storage path configured, using in-memory session")
		return tokens.NewMemoryStore(), nil
	}

	store, err := tokens.NewBadgerStore(config.Storage.Path, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}
	return store, nil
}

// Close releases application resources.
func (a *App) Close() {
	if err := a.Store.Close(); err != nil {
		a.Logger.Warn().Err(err).Msg("Failed to close session store")
	}
}
