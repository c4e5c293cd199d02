// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import "errors"

var (
	// ErrVaultLocked is returned by Encrypt and Decrypt while Locked.
	ErrVaultLocked = errors.New("vault is locked")

	// ErrIncorrectVaultPassword is returned when the candidate password does
	// not open the check record or opens it to something other than the
	// sentinel.
	ErrIncorrectVaultPassword = errors.New("incorrect vault password")

	// ErrEmptyPassword is returned for a blank candidate password.
	ErrEmptyPassword = errors.New("vault password is empty")

	// ErrVaultAlreadyInitialized is returned by Initialize when a check
	// record exists.
	ErrVaultAlreadyInitialized = errors.New("vault is already initialized")

	// ErrVaultNotInitialized is returned by UnlockExisting when no check
	// record exists.
	ErrVaultNotInitialized = errors.New("vault is not initialized")
)
