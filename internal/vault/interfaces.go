// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"context"
	"time"

	"github.com/MKhiriev/go-finance-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_mock.go -package=mock

// Session is the Locked/Unlocked gate in front of every encrypted field.
//
// While Unlocked it holds the verified vault password (sealed in a memguard
// enclave) and exposes Encrypt and Decrypt; while Locked both return
// [ErrVaultLocked]. A session always starts Locked.
//
// Unlock, Initialize and UnlockExisting run the key derivation outside the
// session mutex and commit their outcome when they finish, so the last call
// to complete decides the final state.
type Session interface {
	// Unlock verifies password against the stored check record, creating
	// the record on first use. It first forces the session Locked.
	Unlock(ctx context.Context, password string) error

	// Initialize sets the vault password. It fails with
	// [ErrVaultAlreadyInitialized] when a check record exists.
	Initialize(ctx context.Context, password string) error

	// UnlockExisting verifies password. It fails with
	// [ErrVaultNotInitialized] when no check record exists.
	UnlockExisting(ctx context.Context, password string) error

	// IsInitialized reports whether a check record exists.
	IsInitialized(ctx context.Context) (bool, error)

	// Lock wipes the held password and clears the last error.
	Lock()

	// Status returns a snapshot of the session state.
	Status() Status

	// Encrypt seals plaintext with the held password.
	Encrypt(plaintext string) (models.EncryptedBlob, error)

	// Decrypt opens blob with the held password.
	Decrypt(blob models.EncryptedBlob) (string, error)

	// IdleSince returns the time of the last unlock, encrypt or decrypt.
	// It is the zero time while Locked.
	IdleSince() time.Time
}
