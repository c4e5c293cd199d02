// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-finance-keeper/models"
)

// accountRow is the column-level form of [models.Account]. Optional fields
// become NULL and the password blob is stored as its JSON text.
type accountRow struct {
	ID                   string
	AccountName          string
	Type                 string
	AccountNumber        string
	CurrentCardNumber    sql.NullString
	CreditLimit          sql.NullFloat64
	OpenDate             sql.NullString
	InterestRateAPR      sql.NullFloat64
	ServiceFeeAmount     sql.NullFloat64
	ServiceFeeFrequency  sql.NullString
	CurrentBalance       float64
	ActualLastMinPayment sql.NullFloat64
	LoginURL             sql.NullString
	Username             sql.NullString
	PasswordEnc          sql.NullString
	Notes                sql.NullString
	CreatedAt            string
	UpdatedAt            string
}

func newAccountRow(a models.Account) (accountRow, error) {
	row := accountRow{
		ID:                   a.ID,
		AccountName:          a.AccountName,
		Type:                 string(a.Type),
		AccountNumber:        a.AccountNumber,
		CurrentCardNumber:    nullString(a.CurrentCardNumber),
		CreditLimit:          nullFloat(a.CreditLimit),
		OpenDate:             nullString(a.OpenDate),
		InterestRateAPR:      nullFloat(a.InterestRateAPR),
		ServiceFeeAmount:     nullFloat(a.ServiceFeeAmount),
		CurrentBalance:       a.CurrentBalance,
		ActualLastMinPayment: nullFloat(a.ActualLastMinPayment),
		LoginURL:             nullString(a.LoginURL),
		Username:             nullString(a.Username),
		Notes:                nullString(a.Notes),
		CreatedAt:            a.CreatedAt,
		UpdatedAt:            a.UpdatedAt,
	}

	if a.ServiceFeeFrequency != nil {
		row.ServiceFeeFrequency = sql.NullString{String: string(*a.ServiceFeeFrequency), Valid: true}
	}

	if a.PasswordEnc != nil {
		raw, err := json.Marshal(a.PasswordEnc)
		if err != nil {
			return accountRow{}, fmt.Errorf("encode password blob: %w", err)
		}
		row.PasswordEnc = sql.NullString{String: string(raw), Valid: true}
	}

	return row, nil
}

// values returns the row in [accountColumns] order.
func (r accountRow) values() []any {
	return []any{
		r.ID,
		r.AccountName,
		r.Type,
		r.AccountNumber,
		r.CurrentCardNumber,
		r.CreditLimit,
		r.OpenDate,
		r.InterestRateAPR,
		r.ServiceFeeAmount,
		r.ServiceFeeFrequency,
		r.CurrentBalance,
		r.ActualLastMinPayment,
		r.LoginURL,
		r.Username,
		r.PasswordEnc,
		r.Notes,
		r.CreatedAt,
		r.UpdatedAt,
	}
}

// scanTargets returns pointers in [accountColumns] order.
func (r *accountRow) scanTargets() []any {
	return []any{
		&r.ID,
		&r.AccountName,
		&r.Type,
		&r.AccountNumber,
		&r.CurrentCardNumber,
		&r.CreditLimit,
		&r.OpenDate,
		&r.InterestRateAPR,
		&r.ServiceFeeAmount,
		&r.ServiceFeeFrequency,
		&r.CurrentBalance,
		&r.ActualLastMinPayment,
		&r.LoginURL,
		&r.Username,
		&r.PasswordEnc,
		&r.Notes,
		&r.CreatedAt,
		&r.UpdatedAt,
	}
}

func (r accountRow) toModel() (models.Account, error) {
	a := models.Account{
		ID:                   r.ID,
		AccountName:          r.AccountName,
		Type:                 models.AccountType(r.Type),
		AccountNumber:        r.AccountNumber,
		CurrentCardNumber:    stringPtr(r.CurrentCardNumber),
		CreditLimit:          floatPtr(r.CreditLimit),
		OpenDate:             stringPtr(r.OpenDate),
		InterestRateAPR:      floatPtr(r.InterestRateAPR),
		ServiceFeeAmount:     floatPtr(r.ServiceFeeAmount),
		CurrentBalance:       r.CurrentBalance,
		ActualLastMinPayment: floatPtr(r.ActualLastMinPayment),
		LoginURL:             stringPtr(r.LoginURL),
		Username:             stringPtr(r.Username),
		Notes:                stringPtr(r.Notes),
		CreatedAt:            r.CreatedAt,
		UpdatedAt:            r.UpdatedAt,
	}

	if r.ServiceFeeFrequency.Valid {
		freq := models.ServiceFeeFrequency(r.ServiceFeeFrequency.String)
		a.ServiceFeeFrequency = &freq
	}

	if r.PasswordEnc.Valid {
		var blob models.EncryptedBlob
		if err := json.Unmarshal([]byte(r.PasswordEnc.String), &blob); err != nil {
			return models.Account{}, fmt.Errorf("%w: password blob of account %s: %w", ErrCorruptedRecord, r.ID, err)
		}
		a.PasswordEnc = &blob
	}

	return a, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

func stringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

func floatPtr(f sql.NullFloat64) *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Float64
	return &v
}
