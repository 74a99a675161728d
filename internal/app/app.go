// Package app wires configuration, storage, service and HTTP layers into a
// ready-to-serve handler. Both the server and the Lambda entry points use it.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mmynk/nomikai/internal/config"
	"github.com/mmynk/nomikai/internal/handler"
	"github.com/mmynk/nomikai/internal/metrics"
	"github.com/mmynk/nomikai/internal/middleware"
	"github.com/mmynk/nomikai/internal/service"
	"github.com/mmynk/nomikai/internal/storage"
	"github.com/mmynk/nomikai/internal/storage/sqlstore"
)

// App holds the assembled application.
type App struct {
	Handler http.Handler
	Store   *sqlstore.SQLStore
	Metrics *metrics.Metrics
}

// New resolves the connection string, opens the store and builds the
// middleware-wrapped handler. getenv is consulted for the legacy
// DatabaseConnectionString and KeyVaultUri variables.
func New(ctx context.Context, cfg *config.Config, getenv func(string) string) (*App, error) {
	var secrets config.SecretStore
	if uri := cfg.VaultURI(getenv); uri != "" {
		kv, err := config.NewKeyVaultStore(uri)
		if err != nil {
			return nil, err
		}
		secrets = kv
	}

	connString, err := config.ResolveConnectionString(ctx, cfg, getenv, secrets)
	if err != nil {
		return nil, err
	}

	m := metrics.New()
	store, err := sqlstore.New(ctx, connString,
		sqlstore.WithBatchMode(storage.BatchMode(cfg.BatchMode)),
		sqlstore.WithMigrations(cfg.Migrate),
		sqlstore.WithMaxOpenConns(cfg.MaxOpenConns),
		sqlstore.WithConnMaxIdleTime(cfg.ConnMaxIdleTime),
		sqlstore.WithErrorObserver(m.BackendError),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	slog.Info("Storage initialized", "dialect", store.Dialect().Name, "batch_mode", cfg.BatchMode)

	svc := service.NewExpenseService(store, service.WithSplitScale(cfg.SplitScale))
	routes := handler.New(svc, store, m.Handler()).Routes()

	return &App{
		Handler: middleware.Chain(routes, middleware.Logging, middleware.CORS, middleware.Metrics(m)),
		Store:   store,
		Metrics: m,
	}, nil
}

// Close releases the store.
func (a *App) Close() error {
	return a.Store.Close()
}
