// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-finance-keeper/internal/logger"
	"github.com/MKhiriev/go-finance-keeper/models"
)

// vaultCheckRepository keeps the vault check blob as JSON text in the
// vault_settings key/value table, apart from account data.
type vaultCheckRepository struct {
	*DB
	logger *logger.Logger
}

// NewVaultCheckRepository constructs a [VaultCheckRepository] over db.
func NewVaultCheckRepository(db *DB, logger *logger.Logger) VaultCheckRepository {
	return &vaultCheckRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *vaultCheckRepository) GetVaultCheck(ctx context.Context) (models.EncryptedBlob, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectVaultCheckQuery()
	if err != nil {
		log.Err(err).Str("func", "vaultCheckRepository.GetVaultCheck").Msg("failed to create query")
		return models.EncryptedBlob{}, err
	}

	var raw string
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.EncryptedBlob{}, ErrVaultCheckNotFound
		}
		log.Err(err).Str("func", "vaultCheckRepository.GetVaultCheck").Msg("failed to read vault check")
		return models.EncryptedBlob{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	var blob models.EncryptedBlob
	if err = json.Unmarshal([]byte(raw), &blob); err != nil {
		log.Err(err).Str("func", "vaultCheckRepository.GetVaultCheck").Msg("failed to decode vault check")
		return models.EncryptedBlob{}, fmt.Errorf("%w: vault check: %w", ErrCorruptedRecord, err)
	}

	return blob, nil
}

func (r *vaultCheckRepository) CreateVaultCheck(ctx context.Context, blob models.EncryptedBlob) error {
	log := logger.FromContext(ctx)

	raw, err := json.Marshal(blob)
	if err != nil {
		return fmt.Errorf("encode vault check: %w", err)
	}

	query, args, err := buildInsertVaultCheckQuery(string(raw))
	if err != nil {
		log.Err(err).Str("func", "vaultCheckRepository.CreateVaultCheck").Msg("failed to create query")
		return err
	}

	err = r.withRetry(ctx, func() error {
		_, execErr := r.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		if isUniqueViolation(err) {
			log.Info().Str("func", "vaultCheckRepository.CreateVaultCheck").Msg("vault check already created by another initialiser")
			return ErrVaultCheckExists
		}
		log.Err(err).Str("func", "vaultCheckRepository.CreateVaultCheck").Msg("failed to insert vault check")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
