// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks the merged [StructuredConfig] before any view is built.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.AutoLockAfter < 0 || cfg.App.AutoLockCheckInterval < 0 {
		return fmt.Errorf("%w: negative auto-lock duration", ErrInvalidAppConfigs)
	}

	if cfg.App.LogLevel != "" {
		if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
		}
	}

	if cfg.Server.RequestTimeout < 0 || cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if err := validateStorage(cfg.Storage); err != nil {
		return err
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.AutoLockAfter > 0 && cfg.Workers.CheckInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if err := validateStorage(cfg.Storage); err != nil {
		return err
	}

	if cfg.Server.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidServerConfigs)
	}

	if !isLoopbackAddress(cfg.Server.HTTPAddress) {
		return fmt.Errorf("%w: %q is not a loopback address", ErrInvalidServerConfigs, cfg.Server.HTTPAddress)
	}

	return nil
}

func validateStorage(s ClientStorage) error {
	if s.DB.DSN == "" || strings.Contains(s.DB.DSN, ":memory:") {
		return ErrInvalidStorageConfigs
	}
	return nil
}

// isLoopbackAddress accepts "localhost:port" and loopback IPs only.
func isLoopbackAddress(addr string) bool {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return false
	}
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
