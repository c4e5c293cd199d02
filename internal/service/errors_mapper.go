// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-finance-keeper/internal/adapter"
	"github.com/MKhiriev/go-finance-keeper/internal/app"
	"github.com/MKhiriev/go-finance-keeper/internal/crypto"
	"github.com/MKhiriev/go-finance-keeper/internal/store"
	"github.com/MKhiriev/go-finance-keeper/internal/vault"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrInvalidURL), errors.Is(err, adapter.ErrBackupTooLarge):
		return err
	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrBackupNotFound, err)
	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrForbidden):
		return fmt.Errorf("%w: %w", ErrBackupAccessDenied, err)
	default:
		return fmt.Errorf("%w: %w", ErrBackupUnavailable, err)
	}
}

// UserMessage returns the text the TUI and the CLI show for err. Errors
// without a dedicated message fall back to [app.MsgUnexpectedError].
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrPasswordNotSaved):
		return app.MsgUnlockBeforeSavingPassword
	case errors.Is(err, vault.ErrVaultLocked):
		return app.MsgUnlockToViewPasswords
	case errors.Is(err, crypto.ErrDecryptionFailed):
		return app.MsgUnableToDecrypt
	case errors.Is(err, ErrInvalidImportFormat):
		return app.MsgInvalidImportFormat
	case errors.Is(err, ErrMissingRequiredFields):
		return app.MsgMissingRequiredFields
	case errors.Is(err, ErrNoPasswordStored):
		return app.MsgMissingPassword
	case errors.Is(err, store.ErrAccountNotFound):
		return app.MsgAccountNotFound
	case errors.Is(err, adapter.ErrInvalidURL):
		return app.MsgInvalidBackupURL
	case errors.Is(err, adapter.ErrBackupTooLarge):
		return app.MsgBackupTooLarge
	case errors.Is(err, ErrBackupNotFound):
		return app.MsgBackupNotFound
	case errors.Is(err, ErrBackupAccessDenied):
		return app.MsgBackupAccessDenied
	case errors.Is(err, ErrBackupUnavailable):
		return app.MsgBackupUnavailable
	case errors.Is(err, ErrInvalidDataProvided):
		return app.MsgInvalidDataProvided
	default:
		return vault.UserMessage(err)
	}
}
