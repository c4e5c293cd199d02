// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"time"

	"github.com/MKhiriev/go-finance-keeper/models"
)

var fixedNow = time.Date(2026, 1, 31, 12, 0, 0, 0, time.UTC)

const fixedStamp = "2026-01-31T12:00:00.000Z"

func ptr[T any](v T) *T { return &v }

func testBlob(cipher string) models.EncryptedBlob {
	return models.EncryptedBlob{
		Alg:           models.AlgAESGCM,
		KDF:           models.KDFPBKDF2,
		Iterations:    210000,
		SaltB64:       "c2FsdHNhbHRzYWx0c2FsdA==",
		IVB64:         "bm9uY2Vub25jZTEy",
		CipherTextB64: cipher,
	}
}

// testAccounts is a small portfolio in storage order.
func testAccounts() []models.Account {
	visa := testBlob("dmlzYQ==")
	bank := testBlob("YmFuaw==")
	return []models.Account{
		{
			ID:                "a-1",
			AccountName:       "Sapphire Visa",
			Type:              models.CreditCard,
			AccountNumber:     "4111-0001",
			CurrentCardNumber: ptr("4111111111111111"),
			CreditLimit:       ptr(5000.0),
			OpenDate:          ptr("2020-03-14"),
			InterestRateAPR:   ptr(24.99),
			CurrentBalance:    1200.5,
			LoginURL:          ptr("https://bank.example/login"),
			Username:          ptr("jdoe"),
			PasswordEnc:       &visa,
			Notes:             ptr("Autopay on the 3rd, \"statement\" credit"),
			CreatedAt:         "2026-01-02T10:00:00.000Z",
			UpdatedAt:         "2026-01-05T10:00:00.000Z",
		},
		{
			ID:                   "a-2",
			AccountName:          "car loan",
			Type:                 models.Loan,
			AccountNumber:        "LN-77",
			InterestRateAPR:      ptr(6.5),
			CurrentBalance:       14000,
			ActualLastMinPayment: ptr(320.0),
			CreatedAt:            "2026-01-01T10:00:00.000Z",
			UpdatedAt:            "2026-01-01T10:00:00.000Z",
		},
		{
			ID:                  "a-3",
			AccountName:         "Checking",
			Type:                models.Bank,
			AccountNumber:       "0099",
			ServiceFeeAmount:    ptr(120.0),
			ServiceFeeFrequency: ptr(models.Yearly),
			CurrentBalance:      0,
			PasswordEnc:         &bank,
			Notes:               ptr("line one\nline two"),
			CreatedAt:           "2025-12-30T10:00:00.000Z",
			UpdatedAt:           "2025-12-30T10:00:00.000Z",
		},
		{
			ID:                  "a-4",
			AccountName:         "Streamly",
			Type:                models.Streaming,
			AccountNumber:       "S-1",
			ServiceFeeAmount:    ptr(15.99),
			ServiceFeeFrequency: ptr(models.Monthly),
			CurrentBalance:      15.99,
			CreatedAt:           "2025-12-29T10:00:00.000Z",
			UpdatedAt:           "2025-12-29T10:00:00.000Z",
		},
	}
}

func names(accounts []models.Account) []string {
	out := make([]string, len(accounts))
	for i, a := range accounts {
		out[i] = a.AccountName
	}
	return out
}
