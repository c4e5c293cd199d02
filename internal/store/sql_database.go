// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/MKhiriev/go-finance-keeper/internal/logger"
	"github.com/MKhiriev/go-finance-keeper/migrations"
)

// DB wraps the SQLite connection together with the driver error classifier
// used to decide whether a failed write is worth repeating.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// ErrorClassificator maps a driver error to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

const (
	writeAttempts   = 3
	writeRetryDelay = 50 * time.Millisecond
)

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.MigrateContext(ctx, db.DB)
}

// withRetry runs op until it succeeds, fails with a non-retryable error or
// runs out of attempts. SQLITE_BUSY and SQLITE_LOCKED are the usual
// retryable cases when the TUI and the report server share one file.
func (db *DB) withRetry(ctx context.Context, op func() error) error {
	var err error
	for attempt := 1; attempt <= writeAttempts; attempt++ {
		if err = op(); err == nil {
			return nil
		}
		if db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		select {
		case <-ctx.Done():
			return err
		case <-time.After(writeRetryDelay * time.Duration(attempt)):
		}
	}
	return err
}
