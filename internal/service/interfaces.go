// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-finance-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=AccountServiceWrapper

// AccountService manages account records and their encrypted passwords.
//
// Passwords pass through the vault session: a non-blank password is
// encrypted before the record is saved, a blank one keeps whatever blob the
// record already has.
type AccountService interface {
	// Create stores a new account built from draft and returns it with its
	// generated id and timestamps. New accounts are listed first.
	Create(ctx context.Context, draft models.AccountDraft, password string) (models.Account, error)
	// Update replaces the editable fields of account id and refreshes
	// its UpdatedAt.
	Update(ctx context.Context, id string, draft models.AccountDraft, password string) (models.Account, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (models.Account, error)
	// List returns the accounts matching filter in the requested order.
	List(ctx context.Context, filter models.AccountFilter) ([]models.Account, error)
	// ReplaceAll swaps every stored account for accounts.
	ReplaceAll(ctx context.Context, accounts []models.Account) error
	// RevealPassword decrypts the stored password of account id.
	RevealPassword(ctx context.Context, id string) (string, error)
}

// TransferService moves the whole account set in and out of the keeper.
type TransferService interface {
	// ExportJSON writes an indented version 1 backup. Password blobs are
	// kept verbatim.
	ExportJSON(ctx context.Context, w io.Writer) error
	// ExportYAML writes the same document as ExportJSON in YAML.
	ExportYAML(ctx context.Context, w io.Writer) error
	// ExportCSV writes a spreadsheet friendly table. The password column is
	// only filled when includePasswords is set.
	ExportCSV(ctx context.Context, w io.Writer, includePasswords bool) error
	// Export dispatches to the writer for format.
	Export(ctx context.Context, w io.Writer, format models.ExportFormat, includePasswords bool) error
	// Import replaces every account with the valid records read from r.
	Import(ctx context.Context, r io.Reader) (models.ImportResult, error)
	// ImportFromURL fetches a backup over http(s) and imports it.
	ImportFromURL(ctx context.Context, rawURL string) (models.ImportResult, error)
}

// OverviewService computes dashboard totals.
type OverviewService interface {
	Overview(ctx context.Context) (models.Overview, error)
}

// AppInfoService reports build information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// AccountServiceWrapper defines middleware composition for AccountService.
// Implementations wrap an existing AccountService to add behavior such as
// logging or validating.
type AccountServiceWrapper interface {
	Wrap(AccountService) AccountService // returns a decorated AccountService applying additional behavior
}
