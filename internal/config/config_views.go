// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	Version  string
	LogLevel string
	LogFile  string
}

// ClientAdapter holds settings used by outbound client requests.
type ClientAdapter struct {
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings.
type ClientDB struct {
	// DSN is the SQLite file path.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// AutoLockAfter is the idle time after which the vault locks. Zero
	// disables the auto-lock worker.
	AutoLockAfter time.Duration
	// CheckInterval is how often the auto-lock worker looks at the idle clock.
	CheckInterval time.Duration
}

// ClientConfig is the configuration view of the TUI and CLI binary.
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// ServerConfig is the configuration view of the report server binary.
type ServerConfig struct {
	App     ClientApp
	Server  Server
	Storage ClientStorage
}

// GetClientConfig builds and validates the client view of the merged
// configuration.
func GetClientConfig(flags *Flags) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := cfg.clientView()
	return clientCfg, clientCfg.validate()
}

// GetServerConfig builds and validates the report server view of the merged
// configuration.
func GetServerConfig(flags *Flags) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := cfg.serverView()
	return serverCfg, serverCfg.validate()
}

func (cfg *StructuredConfig) clientView() *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			Version:  cfg.App.Version,
			LogLevel: cfg.App.LogLevel,
			LogFile:  cfg.App.LogFile,
		},
		Adapter: ClientAdapter{RequestTimeout: cfg.Adapter.RequestTimeout},
		Storage: ClientStorage{DB: ClientDB{DSN: cfg.Storage.DB.DSN}},
		Workers: ClientWorkers{
			AutoLockAfter: cfg.App.AutoLockAfter,
			CheckInterval: cfg.App.AutoLockCheckInterval,
		},
	}
}

func (cfg *StructuredConfig) serverView() *ServerConfig {
	return &ServerConfig{
		App: ClientApp{
			Version:  cfg.App.Version,
			LogLevel: cfg.App.LogLevel,
		},
		Server:  cfg.Server,
		Storage: ClientStorage{DB: ClientDB{DSN: cfg.Storage.DB.DSN}},
	}
}
