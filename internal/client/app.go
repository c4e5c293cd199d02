// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-finance-keeper/internal/adapter"
	"github.com/MKhiriev/go-finance-keeper/internal/config"
	"github.com/MKhiriev/go-finance-keeper/internal/crypto"
	"github.com/MKhiriev/go-finance-keeper/internal/logger"
	"github.com/MKhiriev/go-finance-keeper/internal/service"
	"github.com/MKhiriev/go-finance-keeper/internal/store"
	"github.com/MKhiriev/go-finance-keeper/internal/tui"
	"github.com/MKhiriev/go-finance-keeper/internal/vault"
	"github.com/MKhiriev/go-finance-keeper/internal/workers"
	"github.com/MKhiriev/go-finance-keeper/models"
)

// AppName names the cache directory of the client log.
const AppName = "go-finance-keeper"

// App owns every long-lived component of the local keeper.
type App struct {
	storages *store.Storages
	session  vault.Session
	services *service.Services
	ui       userInterface
	workers  config.ClientWorkers

	logger *logger.Logger
}

// NewApp opens the store named by cfg and wires the services over a fresh,
// Locked vault session.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Err(err).Str("func", "client.NewApp").Msg("error creating storages")
		return nil, fmt.Errorf("create storages: %w", err)
	}

	session := vault.NewSession(crypto.NewEngine(), storages.VaultCheckRepository, log)
	fetcher := adapter.NewHTTPBackupFetcher(cfg.Adapter, log)

	services, err := service.NewServices(storages, session, fetcher, cfg.App, buildInfo, log)
	if err != nil {
		_ = storages.Close()
		log.Err(err).Str("func", "client.NewApp").Msg("error creating services")
		return nil, fmt.Errorf("create services: %w", err)
	}

	return &App{
		storages: storages,
		session:  session,
		services: services,
		ui:       tui.New(services, session, buildInfo, log),
		workers:  cfg.Workers,
		logger:   log,
	}, nil
}

// Run starts the background workers and blocks in the terminal UI. The
// workers stop when the UI exits.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	w := workers.NewWorkers(a.session, a.workers, a.ui.NotifyLocked, a.logger)
	w.Start(ctx)
	defer w.Stop()

	a.logger.Info().Str("func", "App.Run").Msg("client started")
	if err := a.ui.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		a.logger.Err(err).Str("func", "App.Run").Msg("terminal ui failed")
		return fmt.Errorf("run terminal ui: %w", err)
	}
	a.logger.Info().Str("func", "App.Run").Msg("client stopped")
	return nil
}

func (a *App) Services() *service.Services {
	return a.services
}

func (a *App) Session() vault.Session {
	return a.session
}

// Close locks the vault and releases the store.
func (a *App) Close() error {
	a.session.Lock()
	return a.storages.Close()
}

// DefaultLogFile returns the client log path inside the user cache
// directory, or a file in the working directory when there is none.
func DefaultLogFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return AppName + ".log"
	}
	return filepath.Join(dir, AppName, "client.log")
}
