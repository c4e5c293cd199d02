// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-finance-keeper/internal/config"
	"github.com/MKhiriev/go-finance-keeper/internal/logger"
)

// Storages groups the repositories over one SQLite file so that the service
// layer receives them as a single value.
type Storages struct {
	// AccountRepository holds the account records.
	AccountRepository AccountRepository
	// VaultCheckRepository holds the vault verification blob.
	VaultCheckRepository VaultCheckRepository

	db *DB
}

// NewStorages opens the SQLite file named by cfg.DB.DSN (creating it when
// missing), applies pending migrations and wires the repositories.
func NewStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("dsn", cfg.DB.DSN).Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewStoragesFromDB(db, logger), nil
}

// NewStoragesFromDB wires the repositories over an already migrated db.
func NewStoragesFromDB(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		AccountRepository:    NewAccountRepository(db, logger),
		VaultCheckRepository: NewVaultCheckRepository(db, logger),
		db:                   db,
	}
}

// Close releases the underlying connection.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
