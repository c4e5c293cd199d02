// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings shared by the TUI,
// the CLI and the report server.
//
// Keeping them in one place keeps the wording identical on every surface.
package app

const (
	// MsgIncorrectVaultPassword is shown when a candidate password does not
	// decrypt the vault check record.
	MsgIncorrectVaultPassword = "Incorrect vault password."

	// MsgUnlockBeforeSavingPassword is shown when an account with a new
	// password is saved while the vault is locked.
	MsgUnlockBeforeSavingPassword = "Unlock the vault before saving a password."

	// MsgUnlockToViewPasswords is shown when a password is revealed, copied
	// or exported while the vault is locked.
	MsgUnlockToViewPasswords = "Unlock the vault first to view passwords."

	// MsgUnableToDecrypt is shown when a stored password blob does not open
	// with the current vault password.
	MsgUnableToDecrypt = "Unable to decrypt with current vault password."

	// MsgInvalidImportFormat is shown when an import file is neither an
	// account array nor a version 1 backup.
	MsgInvalidImportFormat = "Invalid import file format."

	// MsgEmptyVaultPassword is shown when an empty vault password is
	// submitted.
	MsgEmptyVaultPassword = "Enter a vault password."

	// MsgVaultAlreadyInitialized is shown when initialisation is requested
	// for a vault that already has a password.
	MsgVaultAlreadyInitialized = "The vault already has a password."

	// MsgVaultNotInitialized is shown when an unlock of an existing vault is
	// requested before any password was set.
	MsgVaultNotInitialized = "The vault has no password yet."

	// MsgMissingRequiredFields is shown when an account form is submitted
	// without a name, type, number or balance.
	MsgMissingRequiredFields = "Account name, type, number and current balance are required."

	// MsgAccountNotFound is shown (and returned by the report API) when an
	// account id is unknown.
	MsgAccountNotFound = "account not found"

	// MsgInvalidDataProvided is returned by the report API for malformed
	// query parameters.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected failure occurs.
	MsgInternalServerError = "internal server error"

	// MsgMissingPassword is shown when a password is revealed for an
	// account that has none.
	MsgMissingPassword = "No password is stored for this account."

	// MsgInvalidBackupURL is shown when an import URL is not an absolute
	// http(s) URL.
	MsgInvalidBackupURL = "Enter an http or https backup URL."

	// MsgBackupNotFound is shown when the backup URL answers 404.
	MsgBackupNotFound = "No backup was found at that URL."

	// MsgBackupAccessDenied is shown when the backup URL refuses access.
	MsgBackupAccessDenied = "The backup server refused access."

	// MsgBackupTooLarge is shown when a downloaded backup exceeds the size
	// limit.
	MsgBackupTooLarge = "The backup file is too large."

	// MsgBackupUnavailable is shown for any other failed download.
	MsgBackupUnavailable = "Unable to download the backup."

	// MsgUnexpectedError is the fallback shown in the TUI and the CLI.
	MsgUnexpectedError = "Something went wrong. See the log file for details."

	// DecryptFailedPlaceholder fills the password cell of a CSV row whose
	// blob cannot be decrypted.
	DecryptFailedPlaceholder = "[decrypt failed]"
)
