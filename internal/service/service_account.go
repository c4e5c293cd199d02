// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/MKhiriev/go-finance-keeper/internal/finance"
	"github.com/MKhiriev/go-finance-keeper/internal/logger"
	"github.com/MKhiriev/go-finance-keeper/internal/store"
	"github.com/MKhiriev/go-finance-keeper/internal/utils"
	"github.com/MKhiriev/go-finance-keeper/internal/vault"
	"github.com/MKhiriev/go-finance-keeper/models"
)

type accountService struct {
	accounts store.AccountRepository
	session  vault.Session
	ids      *utils.UUIDGenerator
	now      func() time.Time

	logger *logger.Logger
}

// NewAccountService returns the [AccountService] backed by accounts, with
// passwords sealed through session.
func NewAccountService(accounts store.AccountRepository, session vault.Session, logger *logger.Logger) AccountService {
	return &accountService{
		accounts: accounts,
		session:  session,
		ids:      utils.NewUUIDGenerator(),
		now:      time.Now,
		logger:   logger,
	}
}

func (s *accountService) Create(ctx context.Context, draft models.AccountDraft, password string) (models.Account, error) {
	log := logger.FromContext(ctx)

	account := draft.ToAccount()
	if err := s.sealPassword(&account, password); err != nil {
		log.Err(err).Str("func", "accountService.Create").Msg("password was not sealed")
		return models.Account{}, err
	}

	now := models.FormatTimestamp(s.now())
	account.ID = s.ids.Generate()
	account.CreatedAt = now
	account.UpdatedAt = now

	if err := s.accounts.CreateAccount(ctx, account); err != nil {
		log.Err(err).Str("func", "accountService.Create").Msg("failed to store account")
		return models.Account{}, fmt.Errorf("create account: %w", err)
	}

	log.Info().Str("func", "accountService.Create").Str("id", account.ID).Msg("account created")
	return account, nil
}

func (s *accountService) Update(ctx context.Context, id string, draft models.AccountDraft, password string) (models.Account, error) {
	log := logger.FromContext(ctx)

	existing, err := s.accounts.GetAccount(ctx, id)
	if err != nil {
		log.Err(err).Str("func", "accountService.Update").Str("id", id).Msg("failed to load account")
		return models.Account{}, fmt.Errorf("load account for update: %w", err)
	}

	account := draft.ToAccount()
	account.ID = existing.ID
	account.CreatedAt = existing.CreatedAt
	account.PasswordEnc = existing.PasswordEnc
	if err := s.sealPassword(&account, password); err != nil {
		log.Err(err).Str("func", "accountService.Update").Str("id", id).Msg("password was not sealed")
		return models.Account{}, err
	}
	account.UpdatedAt = models.FormatTimestamp(s.now())

	if err := s.accounts.UpdateAccount(ctx, account); err != nil {
		log.Err(err).Str("func", "accountService.Update").Str("id", id).Msg("failed to update account")
		return models.Account{}, fmt.Errorf("update account: %w", err)
	}

	return account, nil
}

// sealPassword encrypts a non-blank password into account. A blank one
// leaves the current blob in place.
func (s *accountService) sealPassword(account *models.Account, password string) error {
	if strings.TrimSpace(password) == "" {
		return nil
	}

	blob, err := s.session.Encrypt(password)
	if errors.Is(err, vault.ErrVaultLocked) {
		return fmt.Errorf("%w: %w", ErrPasswordNotSaved, err)
	}
	if err != nil {
		return fmt.Errorf("encrypt account password: %w", err)
	}

	account.PasswordEnc = &blob
	return nil
}

func (s *accountService) Delete(ctx context.Context, id string) error {
	if err := s.accounts.DeleteAccount(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "accountService.Delete").Str("id", id).Msg("failed to delete account")
		return fmt.Errorf("delete account: %w", err)
	}
	return nil
}

func (s *accountService) Get(ctx context.Context, id string) (models.Account, error) {
	account, err := s.accounts.GetAccount(ctx, id)
	if err != nil {
		return models.Account{}, fmt.Errorf("get account: %w", err)
	}
	return account, nil
}

func (s *accountService) List(ctx context.Context, filter models.AccountFilter) ([]models.Account, error) {
	accounts, err := s.accounts.ListAccounts(ctx, filter.Type)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "accountService.List").Msg("failed to list accounts")
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	accounts = searchAccounts(accounts, filter.Search)
	sortAccounts(accounts, filter.SortBy, filter.Order)
	return accounts, nil
}

func (s *accountService) ReplaceAll(ctx context.Context, accounts []models.Account) error {
	if err := s.accounts.ReplaceAccounts(ctx, accounts); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "accountService.ReplaceAll").Msg("failed to replace accounts")
		return fmt.Errorf("replace accounts: %w", err)
	}
	return nil
}

func (s *accountService) RevealPassword(ctx context.Context, id string) (string, error) {
	account, err := s.accounts.GetAccount(ctx, id)
	if err != nil {
		return "", fmt.Errorf("get account: %w", err)
	}
	if account.PasswordEnc == nil {
		return "", ErrNoPasswordStored
	}

	plain, err := s.session.Decrypt(*account.PasswordEnc)
	if err != nil {
		logger.FromContext(ctx).Info().Str("func", "accountService.RevealPassword").Str("id", id).
			Str("reason", err.Error()).Msg("password was not revealed")
		return "", fmt.Errorf("reveal password: %w", err)
	}
	return plain, nil
}

// searchAccounts keeps accounts whose name, number or type contains query,
// ignoring case.
func searchAccounts(accounts []models.Account, query string) []models.Account {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return accounts
	}

	matched := accounts[:0:0]
	for _, a := range accounts {
		if strings.Contains(strings.ToLower(a.AccountName), q) ||
			strings.Contains(strings.ToLower(a.AccountNumber), q) ||
			strings.Contains(strings.ToLower(string(a.Type)), q) {
			matched = append(matched, a)
		}
	}
	return matched
}

// sortAccounts orders accounts by key. Names compare ignoring case and
// accents, and equal keys fall back to the name.
func sortAccounts(accounts []models.Account, key models.SortKey, order models.SortOrder) {
	names := collate.New(language.Und, collate.IgnoreCase, collate.IgnoreDiacritics)
	compareNames := func(a, b models.Account) int {
		return names.CompareString(a.AccountName, b.AccountName)
	}

	dir := 1
	if order == models.Desc {
		dir = -1
	}

	slices.SortStableFunc(accounts, func(a, b models.Account) int {
		var cmp int
		switch key {
		case models.SortByBalance:
			cmp = compareFloat(a.CurrentBalance, b.CurrentBalance)
		case models.SortByMinPayment:
			cmp = compareFloat(finance.MinimumDue(a), finance.MinimumDue(b))
		default:
			cmp = compareNames(a, b)
		}
		if cmp != 0 {
			return cmp * dir
		}
		return compareNames(a, b)
	})
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
