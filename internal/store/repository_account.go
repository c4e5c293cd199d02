// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-finance-keeper/internal/logger"
	"github.com/MKhiriev/go-finance-keeper/models"
)

// accountRepository is the SQLite-backed implementation of
// [AccountRepository]. Queries are rendered by the builders in
// sql_queries.go.
type accountRepository struct {
	*DB
	logger *logger.Logger
}

// NewAccountRepository constructs an [AccountRepository] over db.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	return &accountRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *accountRepository) CreateAccount(ctx context.Context, account models.Account) error {
	log := logger.FromContext(ctx)

	row, err := newAccountRow(account)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.CreateAccount").Str("id", account.ID).Msg("failed to map account")
		return err
	}

	query, args, err := buildInsertAccountQuery(row, nextTopPosition)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.CreateAccount").Msg("failed to create query")
		return err
	}

	err = r.withRetry(ctx, func() error {
		_, execErr := r.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", ErrAccountAlreadyExists, account.ID)
		}
		log.Err(err).
			Str("func", "accountRepository.CreateAccount").
			Str("id", account.ID).
			Msg("failed to insert account")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *accountRepository) UpdateAccount(ctx context.Context, account models.Account) error {
	log := logger.FromContext(ctx)

	row, err := newAccountRow(account)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.UpdateAccount").Str("id", account.ID).Msg("failed to map account")
		return err
	}

	query, args, err := buildUpdateAccountQuery(row)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.UpdateAccount").Msg("failed to create query")
		return err
	}

	var result sql.Result
	err = r.withRetry(ctx, func() error {
		var execErr error
		result, execErr = r.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "accountRepository.UpdateAccount").
			Str("id", account.ID).
			Msg("failed to update account")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return r.requireAffected(ctx, result, account.ID, "accountRepository.UpdateAccount")
}

func (r *accountRepository) GetAccount(ctx context.Context, id string) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAccountQuery(id)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.GetAccount").Msg("failed to create query")
		return models.Account{}, err
	}

	var row accountRow
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(row.scanTargets()...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, fmt.Errorf("%w: %s", ErrAccountNotFound, id)
		}
		log.Err(err).
			Str("func", "accountRepository.GetAccount").
			Str("id", id).
			Msg("failed to scan account row")
		return models.Account{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	account, err := row.toModel()
	if err != nil {
		log.Err(err).Str("func", "accountRepository.GetAccount").Str("id", id).Msg("failed to decode account row")
		return models.Account{}, err
	}

	return account, nil
}

func (r *accountRepository) ListAccounts(ctx context.Context, accountType models.AccountType) ([]models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAccountsQuery(accountType)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.ListAccounts").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "accountRepository.ListAccounts").
			Str("type", string(accountType)).
			Msg("failed to execute query for listing accounts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	accounts := make([]models.Account, 0, 32)
	for rows.Next() {
		var row accountRow
		if scanErr := rows.Scan(row.scanTargets()...); scanErr != nil {
			log.Err(scanErr).Str("func", "accountRepository.ListAccounts").Msg("failed to scan account row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		account, mapErr := row.toModel()
		if mapErr != nil {
			log.Err(mapErr).Str("func", "accountRepository.ListAccounts").Str("id", row.ID).Msg("failed to decode account row")
			return nil, mapErr
		}
		accounts = append(accounts, account)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "accountRepository.ListAccounts").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return accounts, nil
}

func (r *accountRepository) DeleteAccount(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteAccountQuery(id)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.DeleteAccount").Msg("failed to create query")
		return err
	}

	var result sql.Result
	err = r.withRetry(ctx, func() error {
		var execErr error
		result, execErr = r.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "accountRepository.DeleteAccount").
			Str("id", id).
			Msg("failed to delete account")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return r.requireAffected(ctx, result, id, "accountRepository.DeleteAccount")
}

func (r *accountRepository) ReplaceAccounts(ctx context.Context, accounts []models.Account) error {
	log := logger.FromContext(ctx)

	rows := make([]accountRow, 0, len(accounts))
	for _, a := range accounts {
		row, err := newAccountRow(a)
		if err != nil {
			log.Err(err).Str("func", "accountRepository.ReplaceAccounts").Str("id", a.ID).Msg("failed to map account")
			return err
		}
		rows = append(rows, row)
	}

	return r.withRetry(ctx, func() error {
		return r.replaceAccountsTx(ctx, rows)
	})
}

func (r *accountRepository) replaceAccountsTx(ctx context.Context, rows []accountRow) (err error) {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.ReplaceAccounts").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	query, args, err := buildDeleteAllAccountsQuery()
	if err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "accountRepository.ReplaceAccounts").Msg("failed to clear accounts")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	for i, row := range rows {
		query, args, err = buildInsertAccountQuery(row, i)
		if err != nil {
			return err
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "accountRepository.ReplaceAccounts").
				Str("id", row.ID).
				Int("position", i).
				Msg("failed to insert account")
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: %s", ErrAccountAlreadyExists, row.ID)
			}
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "accountRepository.ReplaceAccounts").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Debug().Str("func", "accountRepository.ReplaceAccounts").Int("count", len(rows)).Msg("accounts replaced")
	return nil
}

func (r *accountRepository) requireAffected(ctx context.Context, result sql.Result, id, fn string) error {
	log := logger.FromContext(ctx)

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", fn).Str("id", id).Msg("failed to get rows affected")
		return fmt.Errorf("failed to get rows affected (id=%s): %w", id, err)
	}

	if affected == 0 {
		log.Warn().Str("func", fn).Str("id", id).Msg("no rows affected: account not found")
		return fmt.Errorf("%w: %s", ErrAccountNotFound, id)
	}

	return nil
}
