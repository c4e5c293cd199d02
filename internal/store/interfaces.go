// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-finance-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AccountRepository persists account records in storage order: newly
// created accounts come first, replaced sets keep the order they were given
// in.
type AccountRepository interface {
	// CreateAccount inserts account ahead of every existing one.
	CreateAccount(ctx context.Context, account models.Account) error
	// UpdateAccount overwrites every column of the account with the same id.
	// Returns [ErrAccountNotFound] when there is none.
	UpdateAccount(ctx context.Context, account models.Account) error
	// GetAccount returns [ErrAccountNotFound] for an unknown id.
	GetAccount(ctx context.Context, id string) (models.Account, error)
	// ListAccounts returns accounts in storage order, optionally restricted
	// to one type. An empty accountType lists everything.
	ListAccounts(ctx context.Context, accountType models.AccountType) ([]models.Account, error)
	// DeleteAccount returns [ErrAccountNotFound] for an unknown id.
	DeleteAccount(ctx context.Context, id string) error
	// ReplaceAccounts atomically swaps the whole table for accounts.
	ReplaceAccounts(ctx context.Context, accounts []models.Account) error
}

// VaultCheckRepository stores the single verification blob of the vault.
type VaultCheckRepository interface {
	// GetVaultCheck returns [ErrVaultCheckNotFound] until the vault has been
	// initialised.
	GetVaultCheck(ctx context.Context) (models.EncryptedBlob, error)
	// CreateVaultCheck stores blob once. A second call returns
	// [ErrVaultCheckExists] and leaves the stored record untouched.
	CreateVaultCheck(ctx context.Context, blob models.EncryptedBlob) error
}
