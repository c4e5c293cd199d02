// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-finance-keeper/internal/logger"
	"github.com/MKhiriev/go-finance-keeper/models"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return &DB{
		DB:                 db,
		errorClassificator: NewSQLiteErrorClassifier(),
		logger:             logger.Nop(),
	}, mock
}

func ptr[T any](v T) *T { return &v }

var (
	errPrimaryKey = sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}
	errBusy       = sqlite3.Error{Code: sqlite3.ErrBusy}
)

const testBlobJSON = `{"alg":"AES-GCM","kdf":"PBKDF2","iterations":210000,"saltB64":"c2FsdA==","ivB64":"aXY=","cipherTextB64":"Y3Q="}`

func testBlob() models.EncryptedBlob {
	return models.EncryptedBlob{
		Alg:           models.AlgAESGCM,
		KDF:           models.KDFPBKDF2,
		Iterations:    210000,
		SaltB64:       "c2FsdA==",
		IVB64:         "aXY=",
		CipherTextB64: "Y3Q=",
	}
}

func fullAccount() models.Account {
	yearly := models.Yearly
	blob := testBlob()
	return models.Account{
		ID:                   "0190-aaaa",
		AccountName:          "Chase Sapphire",
		Type:                 models.CreditCard,
		AccountNumber:        "1234",
		CurrentCardNumber:    ptr("4111111111111111"),
		CreditLimit:          ptr(5000.0),
		OpenDate:             ptr("2020-01-15"),
		InterestRateAPR:      ptr(24.99),
		ServiceFeeAmount:     ptr(95.0),
		ServiceFeeFrequency:  &yearly,
		CurrentBalance:       1200.5,
		ActualLastMinPayment: ptr(40.0),
		LoginURL:             ptr("https://chase.com"),
		Username:             ptr("john"),
		PasswordEnc:          &blob,
		Notes:                ptr("travel card"),
		CreatedAt:            "2026-01-01T10:00:00.000Z",
		UpdatedAt:            "2026-02-01T10:00:00.000Z",
	}
}

func minimalAccount(id, name string) models.Account {
	return models.Account{
		ID:            id,
		AccountName:   name,
		Type:          models.Streaming,
		AccountNumber: "n-" + id,
		CreatedAt:     "2026-01-01T10:00:00.000Z",
		UpdatedAt:     "2026-01-01T10:00:00.000Z",
	}
}

// fullAccountValues is fullAccount in accountColumns order, as stored.
func fullAccountValues() []any {
	return []any{
		"0190-aaaa", "Chase Sapphire", "Credit Card", "1234",
		"4111111111111111", 5000.0, "2020-01-15", 24.99, 95.0, "Yearly",
		1200.5, 40.0, "https://chase.com", "john", testBlobJSON, "travel card",
		"2026-01-01T10:00:00.000Z", "2026-02-01T10:00:00.000Z",
	}
}

func minimalAccountValues(id, name string) []any {
	return []any{
		id, name, "Streaming", "n-" + id,
		nil, nil, nil, nil, nil, nil,
		0.0, nil, nil, nil, nil, nil,
		"2026-01-01T10:00:00.000Z", "2026-01-01T10:00:00.000Z",
	}
}
