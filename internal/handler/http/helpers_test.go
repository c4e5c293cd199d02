// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-finance-keeper/internal/logger"
	"github.com/MKhiriev/go-finance-keeper/internal/mock"
	"github.com/MKhiriev/go-finance-keeper/internal/service"
	"github.com/MKhiriev/go-finance-keeper/models"
)

type testDeps struct {
	accounts *mock.MockAccountService
	transfer *mock.MockTransferService
	overview *mock.MockOverviewService
	appInfo  *mock.MockAppInfoService
	handler  *Handler
	router   http.Handler
}

func newTestDeps(t *testing.T) *testDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	d := &testDeps{
		accounts: mock.NewMockAccountService(ctrl),
		transfer: mock.NewMockTransferService(ctrl),
		overview: mock.NewMockOverviewService(ctrl),
		appInfo:  mock.NewMockAppInfoService(ctrl),
	}
	d.handler = NewHandler(&service.Services{
		AccountService:  d.accounts,
		TransferService: d.transfer,
		OverviewService: d.overview,
		AppInfoService:  d.appInfo,
	}, logger.Nop())
	d.router = d.handler.Init()
	return d
}

func (d *testDeps) do(method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	d.router.ServeHTTP(rec, req)
	return rec
}

func ptr[T any](v T) *T { return &v }

func sampleAccount() models.Account {
	return models.Account{
		ID:             "a-1",
		AccountName:    "Sapphire Visa",
		Type:           models.CreditCard,
		AccountNumber:  "4111-0001",
		CreditLimit:    ptr(5000.0),
		CurrentBalance: 1200.5,
		PasswordEnc: &models.EncryptedBlob{
			Alg:           models.AlgAESGCM,
			KDF:           models.KDFPBKDF2,
			Iterations:    210000,
			SaltB64:       "c2FsdA==",
			IVB64:         "aXY=",
			CipherTextB64: "c2VjcmV0",
		},
		CreatedAt: "2026-01-02T10:00:00.000Z",
		UpdatedAt: "2026-01-05T10:00:00.000Z",
	}
}
