// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrInvalidImportFormat is returned when an import document is neither
	// an account array nor a version 1 backup. Nothing is applied.
	ErrInvalidImportFormat = errors.New("invalid import file format")

	// ErrMissingRequiredFields is returned when a draft lacks a name, type,
	// number or balance.
	ErrMissingRequiredFields = errors.New("missing required account fields")

	// ErrInvalidDataProvided is returned when a draft converts into an
	// account that fails validation.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrPasswordNotSaved wraps vault.ErrVaultLocked when a password was
	// typed while the vault is locked. The account is not saved.
	ErrPasswordNotSaved = errors.New("password was not saved")

	// ErrNoPasswordStored is returned by RevealPassword for an account
	// without an encrypted password.
	ErrNoPasswordStored = errors.New("account has no stored password")

	// ErrUnknownExportFormat is returned by Export for an unsupported format.
	ErrUnknownExportFormat = errors.New("unknown export format")

	// ErrBackupNotFound is returned when the backup URL answers 404.
	ErrBackupNotFound = errors.New("backup was not found")

	// ErrBackupAccessDenied is returned when the backup URL answers 401 or
	// 403.
	ErrBackupAccessDenied = errors.New("access to backup was denied")

	// ErrBackupUnavailable is returned for every other failed download.
	ErrBackupUnavailable = errors.New("backup is unavailable")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
