// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-finance-keeper/internal/validators"
	"github.com/MKhiriev/go-finance-keeper/models"
)

// AccountValidationService rejects drafts that would produce an invalid
// account before they reach the wrapped service.
type AccountValidationService struct {
	inner     AccountService
	validator validators.Validator
}

func NewAccountValidationService() AccountServiceWrapper {
	return &AccountValidationService{
		validator: validators.NewAccountValidator(),
	}
}

func (v *AccountValidationService) Create(ctx context.Context, draft models.AccountDraft, password string) (models.Account, error) {
	if err := v.validateDraft(ctx, draft); err != nil {
		return models.Account{}, fmt.Errorf("error during account validation before saving: %w", err)
	}
	return v.inner.Create(ctx, draft, password)
}

func (v *AccountValidationService) Update(ctx context.Context, id string, draft models.AccountDraft, password string) (models.Account, error) {
	if id == "" {
		return models.Account{}, fmt.Errorf("error during account validation before update: %w", validators.ErrMissingID)
	}
	if err := v.validateDraft(ctx, draft); err != nil {
		return models.Account{}, fmt.Errorf("error during account validation before update: %w", err)
	}
	return v.inner.Update(ctx, id, draft, password)
}

func (v *AccountValidationService) validateDraft(ctx context.Context, draft models.AccountDraft) error {
	if draft.MissingRequired() {
		return ErrMissingRequiredFields
	}
	if err := v.validator.Validate(ctx, draft.ToAccount(), validators.EditableFields...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}

func (v *AccountValidationService) ReplaceAll(ctx context.Context, accounts []models.Account) error {
	for i, a := range accounts {
		if err := v.validator.Validate(ctx, a); err != nil {
			return fmt.Errorf("%w: account %d: %w", ErrInvalidDataProvided, i, err)
		}
	}
	return v.inner.ReplaceAll(ctx, accounts)
}

func (v *AccountValidationService) Delete(ctx context.Context, id string) error {
	return v.inner.Delete(ctx, id)
}

func (v *AccountValidationService) Get(ctx context.Context, id string) (models.Account, error) {
	return v.inner.Get(ctx, id)
}

func (v *AccountValidationService) List(ctx context.Context, filter models.AccountFilter) ([]models.Account, error) {
	if filter.Type != "" && !filter.Type.IsValid() {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidAccountType)
	}
	return v.inner.List(ctx, filter)
}

func (v *AccountValidationService) RevealPassword(ctx context.Context, id string) (string, error) {
	return v.inner.RevealPassword(ctx, id)
}

func (v *AccountValidationService) Wrap(wrapper AccountService) AccountService {
	v.inner = wrapper
	return v
}
