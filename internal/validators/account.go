// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/MKhiriev/go-finance-keeper/models"
)

// Field name constants used to scope [AccountValidator.Validate].
const (
	FieldID                  = "id"
	FieldAccountName         = "accountName"
	FieldType                = "type"
	FieldAccountNumber       = "accountNumber"
	FieldCurrentBalance      = "currentBalance"
	FieldNumbers             = "numbers"
	FieldServiceFeeFrequency = "serviceFeeFrequency"
	FieldOpenDate            = "openDate"
	FieldTimestamps          = "timestamps"
	FieldPasswordEnc         = "passwordEnc"
)

// EditableFields are the checks applied to an account built from a form,
// before the service assigns its id and timestamps.
var EditableFields = []string{
	FieldAccountName,
	FieldType,
	FieldAccountNumber,
	FieldCurrentBalance,
	FieldNumbers,
	FieldServiceFeeFrequency,
	FieldOpenDate,
}

// AccountValidator implements [Validator] for [models.Account] values.
// With no field names every rule is applied.
type AccountValidator struct{}

// NewAccountValidator returns an [AccountValidator] as a [Validator].
func NewAccountValidator() Validator {
	return &AccountValidator{}
}

func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Account:
		return v.validateAccount(value, fields...)
	case *models.Account:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateAccount(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *AccountValidator) validateAccount(a models.Account, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{
			FieldID, FieldAccountName, FieldType, FieldAccountNumber, FieldCurrentBalance,
			FieldNumbers, FieldServiceFeeFrequency, FieldOpenDate, FieldTimestamps, FieldPasswordEnc,
		}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(a.ID) == "" {
				return ErrMissingID
			}
		case FieldAccountName:
			if strings.TrimSpace(a.AccountName) == "" {
				return ErrMissingAccountName
			}
		case FieldType:
			if !a.Type.IsValid() {
				return ErrInvalidAccountType
			}
		case FieldAccountNumber:
			if strings.TrimSpace(a.AccountNumber) == "" {
				return ErrMissingAccountNumber
			}
		case FieldCurrentBalance:
			if !isFinite(a.CurrentBalance) {
				return ErrInvalidBalance
			}
		case FieldNumbers:
			for _, n := range []*float64{a.CreditLimit, a.InterestRateAPR, a.ServiceFeeAmount, a.ActualLastMinPayment} {
				if n != nil && !isFinite(*n) {
					return ErrInvalidNumber
				}
			}
		case FieldServiceFeeFrequency:
			if a.ServiceFeeFrequency != nil && !a.ServiceFeeFrequency.IsValid() {
				return ErrInvalidFeeFrequency
			}
		case FieldOpenDate:
			if a.OpenDate != nil {
				if _, err := time.Parse(models.OpenDateLayout, *a.OpenDate); err != nil {
					return ErrInvalidOpenDate
				}
			}
		case FieldTimestamps:
			if a.CreatedAt == "" || a.UpdatedAt == "" {
				return ErrMissingTimestamps
			}
		case FieldPasswordEnc:
			if a.PasswordEnc != nil && !wellFormedBlob(*a.PasswordEnc) {
				return ErrInvalidPasswordBlob
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// wellFormedBlob checks the blob shape only; whether it decrypts is up to
// the vault.
func wellFormedBlob(b models.EncryptedBlob) bool {
	return b.Alg == models.AlgAESGCM &&
		b.KDF == models.KDFPBKDF2 &&
		b.Iterations > 0 &&
		b.SaltB64 != "" &&
		b.IVB64 != "" &&
		b.CipherTextB64 != ""
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
