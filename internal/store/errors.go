// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrAccountNotFound is returned when a read, update or delete targets
	// an account id that does not exist.
	ErrAccountNotFound = errors.New("account was not found")

	// ErrAccountAlreadyExists is returned when an insert collides with an
	// existing account id.
	ErrAccountAlreadyExists = errors.New("account already exists")

	// ErrVaultCheckNotFound is returned while the vault has never been
	// initialised.
	ErrVaultCheckNotFound = errors.New("vault check record was not found")

	// ErrVaultCheckExists is returned when a second initialiser tries to
	// insert the vault check record.
	ErrVaultCheckExists = errors.New("vault check record already exists")

	// ErrCorruptedRecord is returned when a stored value cannot be decoded
	// (for example, a password blob that is not valid JSON).
	ErrCorruptedRecord = errors.New("stored record is corrupted")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the driver cannot start a
	// transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing fails. The
	// transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan account row")

	// ErrScanningRows is returned when iterating a result set fails midway.
	ErrScanningRows = errors.New("failed to scan account rows")
)
