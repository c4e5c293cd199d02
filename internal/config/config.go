// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for
// go-finance-keeper. It aggregates all sub-configurations and is populated
// by merging values from command-line flags, environment variables, an
// optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: version, auto-lock and logging.
	App App `envPrefix:"APP_"`

	// Storage holds the local SQLite settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds settings of the read-only report server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings of outbound HTTP calls (backup import by URL).
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is reported by the version command and GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// AutoLockAfter locks an unlocked vault after this much inactivity.
	// Zero disables auto-lock.
	// Env: APP_AUTO_LOCK_AFTER
	AutoLockAfter time.Duration `env:"AUTO_LOCK_AFTER"`

	// AutoLockCheckInterval is how often the idle clock is checked.
	// Env: APP_AUTO_LOCK_CHECK_INTERVAL
	AutoLockCheckInterval time.Duration `env:"AUTO_LOCK_CHECK_INTERVAL"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is where the interactive client appends its log. Empty means
	// the user cache directory.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the configuration of the local store.
type Storage struct {
	// DB holds the SQLite settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the SQLite database.
type DB struct {
	// DSN is the path of the SQLite file (e.g. "finance-keeper.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Server holds network and timeout settings for the report server.
type Server struct {
	// HTTPAddress is the loopback "host:port" the report server listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds settings of outbound HTTP calls.
type Adapter struct {
	// RequestTimeout bounds a backup download.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Default values applied to fields no other source sets.
const (
	DefaultVersion               = "dev"
	DefaultDSN                   = "finance-keeper.db"
	DefaultServerAddress         = "127.0.0.1:8089"
	DefaultServerRequestTimeout  = 30 * time.Second
	DefaultAdapterRequestTimeout = 15 * time.Second
	DefaultAutoLockCheckInterval = 15 * time.Second
	DefaultLogLevel              = "info"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:               DefaultVersion,
			AutoLockCheckInterval: DefaultAutoLockCheckInterval,
			LogLevel:              DefaultLogLevel,
		},
		Storage: Storage{DB: DB{DSN: DefaultDSN}},
		Server: Server{
			HTTPAddress:    DefaultServerAddress,
			RequestTimeout: DefaultServerRequestTimeout,
		},
		Adapter: Adapter{RequestTimeout: DefaultAdapterRequestTimeout},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all sources. For every field the first source that sets it wins:
//  1. Command-line flags (flags may be nil)
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Defaults
func GetStructuredConfig(flags *Flags) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(flags).
		withEnv().
		withJSON().
		withDefaults().
		build()
}
