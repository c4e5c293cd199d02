// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-finance-keeper/internal/app"
	"github.com/MKhiriev/go-finance-keeper/internal/mock"
	"github.com/MKhiriev/go-finance-keeper/internal/validators"
	"github.com/MKhiriev/go-finance-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestValidationSvc(t *testing.T) (AccountService, *mock.MockAccountService) {
	t.Helper()
	inner := mock.NewMockAccountService(gomock.NewController(t))
	return NewAccountValidationService().Wrap(inner), inner
}

func TestAccountValidationService_Create_Valid(t *testing.T) {
	svc, inner := newTestValidationSvc(t)
	draft := sampleDraft()

	inner.EXPECT().Create(gomock.Any(), draft, "pw").Return(models.Account{ID: "new"}, nil)

	got, err := svc.Create(context.Background(), draft, "pw")
	require.NoError(t, err)
	assert.Equal(t, "new", got.ID)
}

func TestAccountValidationService_Create_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.AccountDraft)
		wantErr error
	}{
		{"blank name", func(d *models.AccountDraft) { d.AccountName = "  " }, ErrMissingRequiredFields},
		{"blank number", func(d *models.AccountDraft) { d.AccountNumber = "" }, ErrMissingRequiredFields},
		{"blank balance", func(d *models.AccountDraft) { d.CurrentBalance = "" }, ErrMissingRequiredFields},
		{"no type", func(d *models.AccountDraft) { d.Type = "" }, ErrMissingRequiredFields},
		{"unknown type", func(d *models.AccountDraft) { d.Type = "Crypto" }, validators.ErrInvalidAccountType},
		{"bad open date", func(d *models.AccountDraft) { d.OpenDate = "14/03/2020" }, validators.ErrInvalidOpenDate},
		{"bad frequency", func(d *models.AccountDraft) {
			d.ServiceFeeAmount = "5"
			d.ServiceFeeFrequency = "Weekly"
		}, validators.ErrInvalidFeeFrequency},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestValidationSvc(t)
			draft := sampleDraft()
			tt.mutate(&draft)

			_, err := svc.Create(context.Background(), draft, "")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAccountValidationService_Create_MissingFieldsMessage(t *testing.T) {
	svc, _ := newTestValidationSvc(t)

	_, err := svc.Create(context.Background(), models.EmptyDraft(), "")
	assert.Equal(t, app.MsgMissingRequiredFields, UserMessage(err))
}

func TestAccountValidationService_Update(t *testing.T) {
	svc, inner := newTestValidationSvc(t)
	draft := sampleDraft()

	inner.EXPECT().Update(gomock.Any(), "a-1", draft, "").Return(models.Account{ID: "a-1"}, nil)

	_, err := svc.Update(context.Background(), "a-1", draft, "")
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), "", draft, "")
	assert.ErrorIs(t, err, validators.ErrMissingID)

	draft.AccountName = ""
	_, err = svc.Update(context.Background(), "a-1", draft, "")
	assert.ErrorIs(t, err, ErrMissingRequiredFields)
}

func TestAccountValidationService_ReplaceAll(t *testing.T) {
	svc, inner := newTestValidationSvc(t)
	accounts := testAccounts()

	inner.EXPECT().ReplaceAll(gomock.Any(), accounts).Return(nil)
	require.NoError(t, svc.ReplaceAll(context.Background(), accounts))

	broken := testAccounts()
	broken[2].ID = ""
	err := svc.ReplaceAll(context.Background(), broken)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrMissingID)
}

func TestAccountValidationService_List(t *testing.T) {
	svc, inner := newTestValidationSvc(t)

	inner.EXPECT().List(gomock.Any(), models.AccountFilter{Type: models.Bank}).Return(nil, nil)
	_, err := svc.List(context.Background(), models.AccountFilter{Type: models.Bank})
	require.NoError(t, err)

	_, err = svc.List(context.Background(), models.AccountFilter{Type: "Crypto"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAccountValidationService_Passthrough(t *testing.T) {
	svc, inner := newTestValidationSvc(t)
	ctx := context.Background()

	inner.EXPECT().Get(ctx, "a-1").Return(models.Account{ID: "a-1"}, nil)
	inner.EXPECT().Delete(ctx, "a-1").Return(nil)
	inner.EXPECT().RevealPassword(ctx, "a-1").Return("pw", nil)

	got, err := svc.Get(ctx, "a-1")
	require.NoError(t, err)
	assert.Equal(t, "a-1", got.ID)
	require.NoError(t, svc.Delete(ctx, "a-1"))
	pw, err := svc.RevealPassword(ctx, "a-1")
	require.NoError(t, err)
	assert.Equal(t, "pw", pw)
}
