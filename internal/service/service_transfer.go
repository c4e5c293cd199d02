// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-finance-keeper/internal/adapter"
	"github.com/MKhiriev/go-finance-keeper/internal/app"
	"github.com/MKhiriev/go-finance-keeper/internal/logger"
	"github.com/MKhiriev/go-finance-keeper/internal/store"
	"github.com/MKhiriev/go-finance-keeper/internal/validators"
	"github.com/MKhiriev/go-finance-keeper/internal/vault"
	"github.com/MKhiriev/go-finance-keeper/models"
)

// CSVHeaders is the header row of a CSV export.
var CSVHeaders = []string{
	"Account Name",
	"Type",
	"Account Number",
	"Current Card Number",
	"Account Open Date",
	"Interest Rate (APR %)",
	"Service Fee Amount",
	"Service Fee Frequency",
	"Current Balance",
	"Actual Last Min Payment",
	"Login URL",
	"Username",
	"Password",
	"Notes",
	"Created At",
	"Updated At",
}

type transferService struct {
	accounts  store.AccountRepository
	session   vault.Session
	fetcher   adapter.BackupFetcher
	sanitizer validators.ImportSanitizer
	now       func() time.Time

	logger *logger.Logger
}

// NewTransferService returns the [TransferService] over accounts. fetcher
// may be nil, in which case ImportFromURL is unavailable.
func NewTransferService(accounts store.AccountRepository, session vault.Session, fetcher adapter.BackupFetcher, logger *logger.Logger) TransferService {
	return &transferService{
		accounts:  accounts,
		session:   session,
		fetcher:   fetcher,
		sanitizer: validators.NewImportSanitizer(),
		now:       time.Now,
		logger:    logger,
	}
}

// ExportFileName returns the default file name of an export made at now,
// for example accounts-export-2026-01-31.json.
func ExportFileName(format models.ExportFormat, now time.Time) string {
	return fmt.Sprintf("accounts-export-%s.%s", now.Format(time.DateOnly), format)
}

func (s *transferService) Export(ctx context.Context, w io.Writer, format models.ExportFormat, includePasswords bool) error {
	switch format {
	case models.ExportJSON:
		return s.ExportJSON(ctx, w)
	case models.ExportYAML:
		return s.ExportYAML(ctx, w)
	case models.ExportCSV:
		return s.ExportCSV(ctx, w, includePasswords)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownExportFormat, format)
	}
}

func (s *transferService) ExportJSON(ctx context.Context, w io.Writer) error {
	file, err := s.exportFile(ctx)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(file); err != nil {
		return fmt.Errorf("encode json export: %w", err)
	}
	return nil
}

func (s *transferService) ExportYAML(ctx context.Context, w io.Writer) error {
	file, err := s.exportFile(ctx)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(file); err != nil {
		return fmt.Errorf("encode yaml export: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("flush yaml export: %w", err)
	}
	return nil
}

func (s *transferService) exportFile(ctx context.Context) (models.AccountsFile, error) {
	accounts, err := s.accounts.ListAccounts(ctx, "")
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "transferService.exportFile").Msg("failed to list accounts")
		return models.AccountsFile{}, fmt.Errorf("list accounts for export: %w", err)
	}
	if accounts == nil {
		accounts = []models.Account{}
	}

	return models.AccountsFile{
		Version:    models.ExportFileVersion,
		ExportedAt: models.FormatTimestamp(s.now()),
		Accounts:   accounts,
	}, nil
}

func (s *transferService) ExportCSV(ctx context.Context, w io.Writer, includePasswords bool) error {
	log := logger.FromContext(ctx)

	if includePasswords && !s.session.Status().IsUnlocked() {
		return fmt.Errorf("export passwords: %w", vault.ErrVaultLocked)
	}

	accounts, err := s.accounts.ListAccounts(ctx, "")
	if err != nil {
		log.Err(err).Str("func", "transferService.ExportCSV").Msg("failed to list accounts")
		return fmt.Errorf("list accounts for export: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeaders); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	failed := 0
	for _, a := range accounts {
		password := ""
		if includePasswords && a.PasswordEnc != nil {
			password, err = s.session.Decrypt(*a.PasswordEnc)
			if err != nil {
				failed++
				password = app.DecryptFailedPlaceholder
			}
		}
		if err := cw.Write(csvRow(a, password)); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv export: %w", err)
	}

	if failed > 0 {
		log.Warn().Str("func", "transferService.ExportCSV").Int("failed", failed).Msg("some passwords could not be decrypted")
	}
	return nil
}

func csvRow(a models.Account, password string) []string {
	return []string{
		a.AccountName,
		string(a.Type),
		a.AccountNumber,
		stringOrEmpty(a.CurrentCardNumber),
		stringOrEmpty(a.OpenDate),
		numberOrEmpty(a.InterestRateAPR),
		numberOrEmpty(a.ServiceFeeAmount),
		frequencyOrEmpty(a.ServiceFeeFrequency),
		models.FormatNumber(a.CurrentBalance),
		numberOrEmpty(a.ActualLastMinPayment),
		stringOrEmpty(a.LoginURL),
		stringOrEmpty(a.Username),
		password,
		stringOrEmpty(a.Notes),
		a.CreatedAt,
		a.UpdatedAt,
	}
}

func (s *transferService) Import(ctx context.Context, r io.Reader) (models.ImportResult, error) {
	log := logger.FromContext(ctx)

	body, err := io.ReadAll(io.LimitReader(r, adapter.MaxBackupSize+1))
	if err != nil {
		return models.ImportResult{}, fmt.Errorf("read import: %w", err)
	}
	if len(body) > adapter.MaxBackupSize {
		return models.ImportResult{}, adapter.ErrBackupTooLarge
	}

	doc, err := decodeDocument(body)
	if err != nil {
		log.Info().Str("func", "transferService.Import").Str("reason", err.Error()).Msg("import document is not json or yaml")
		return models.ImportResult{}, fmt.Errorf("%w: %w", ErrInvalidImportFormat, err)
	}

	results, err := s.sanitizer.Sanitize(ctx, doc)
	if errors.Is(err, validators.ErrInvalidDocument) {
		return models.ImportResult{}, fmt.Errorf("%w: %w", ErrInvalidImportFormat, err)
	}
	if err != nil {
		return models.ImportResult{}, fmt.Errorf("sanitize import: %w", err)
	}

	result := models.ImportResult{}
	accepted := make([]models.Account, 0, len(results))
	for _, rec := range results {
		if rec.Accepted() {
			accepted = append(accepted, rec.Account)
			continue
		}
		result.Rejections = append(result.Rejections, models.ImportRejection{
			Index:  rec.Index,
			Reason: rec.Err.Error(),
		})
	}
	result.Imported = len(accepted)
	result.Dropped = len(result.Rejections)

	if err := s.accounts.ReplaceAccounts(ctx, accepted); err != nil {
		log.Err(err).Str("func", "transferService.Import").Msg("failed to replace accounts")
		return models.ImportResult{}, fmt.Errorf("apply import: %w", err)
	}

	log.Info().Str("func", "transferService.Import").
		Int("imported", result.Imported).
		Int("dropped", result.Dropped).
		Msg("accounts imported")
	return result, nil
}

func (s *transferService) ImportFromURL(ctx context.Context, rawURL string) (models.ImportResult, error) {
	if s.fetcher == nil {
		return models.ImportResult{}, fmt.Errorf("%w: no backup fetcher configured", ErrBackupUnavailable)
	}

	body, err := s.fetcher.FetchBackup(ctx, rawURL)
	if err != nil {
		return models.ImportResult{}, fmt.Errorf("fetch backup: %w", mapAdapterError(err))
	}

	return s.Import(ctx, bytes.NewReader(body))
}

// decodeDocument parses body as JSON and falls back to YAML.
func decodeDocument(body []byte) (any, error) {
	var doc any
	jsonErr := json.Unmarshal(body, &doc)
	if jsonErr == nil {
		return doc, nil
	}

	doc = nil
	if err := yaml.Unmarshal(body, &doc); err != nil {
		return nil, errors.Join(jsonErr, err)
	}
	if doc == nil {
		return nil, jsonErr
	}
	return doc, nil
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func numberOrEmpty(v *float64) string {
	if v == nil {
		return ""
	}
	return models.FormatNumber(*v)
}

func frequencyOrEmpty(f *models.ServiceFeeFrequency) string {
	if f == nil {
		return ""
	}
	return string(*f)
}
