// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"math"
	"strconv"
	"strings"
)

// AccountDraft is the editable, all-text form of an [Account] as typed by
// the user. Numeric fields stay strings until [AccountDraft.ToAccount] so
// that half-typed input never fails a form.
type AccountDraft struct {
	AccountName          string
	Type                 AccountType
	AccountNumber        string
	CurrentCardNumber    string
	CreditLimit          string
	OpenDate             string
	InterestRateAPR      string
	ServiceFeeAmount     string
	ServiceFeeFrequency  ServiceFeeFrequency
	CurrentBalance       string
	ActualLastMinPayment string
	LoginURL             string
	Username             string
	Notes                string
}

// EmptyDraft returns a draft for a new account.
func EmptyDraft() AccountDraft {
	return AccountDraft{
		Type:                CreditCard,
		ServiceFeeFrequency: Monthly,
	}
}

// DraftFromAccount returns a draft pre-filled from an existing account.
func DraftFromAccount(a Account) AccountDraft {
	d := AccountDraft{
		AccountName:          a.AccountName,
		Type:                 a.Type,
		AccountNumber:        a.AccountNumber,
		CurrentCardNumber:    derefString(a.CurrentCardNumber),
		CreditLimit:          formatOptionalNumber(a.CreditLimit),
		OpenDate:             derefString(a.OpenDate),
		InterestRateAPR:      formatOptionalNumber(a.InterestRateAPR),
		ServiceFeeAmount:     formatOptionalNumber(a.ServiceFeeAmount),
		ServiceFeeFrequency:  Monthly,
		CurrentBalance:       FormatNumber(a.CurrentBalance),
		ActualLastMinPayment: formatOptionalNumber(a.ActualLastMinPayment),
		LoginURL:             derefString(a.LoginURL),
		Username:             derefString(a.Username),
		Notes:                derefString(a.Notes),
	}
	if d.Type == "" {
		d.Type = CreditCard
	}
	if a.ServiceFeeFrequency != nil {
		d.ServiceFeeFrequency = *a.ServiceFeeFrequency
	}
	return d
}

// MissingRequired reports whether any required field (name, type, number,
// current balance) is blank.
func (d AccountDraft) MissingRequired() bool {
	return strings.TrimSpace(d.AccountName) == "" ||
		d.Type == "" ||
		strings.TrimSpace(d.AccountNumber) == "" ||
		strings.TrimSpace(d.CurrentBalance) == ""
}

// ToAccount converts the draft into account fields. ID, timestamps and the
// encrypted password are left for the caller.
//
// Text is trimmed and blank text becomes nil. Numbers that are blank or not
// finite become nil; CurrentBalance falls back to 0. The fee frequency is
// only kept when a fee amount was typed.
func (d AccountDraft) ToAccount() Account {
	a := Account{
		AccountName:          strings.TrimSpace(d.AccountName),
		Type:                 d.Type,
		AccountNumber:        strings.TrimSpace(d.AccountNumber),
		CurrentCardNumber:    optionalString(d.CurrentCardNumber),
		CreditLimit:          ParseOptionalNumber(d.CreditLimit),
		OpenDate:             optionalString(d.OpenDate),
		InterestRateAPR:      ParseOptionalNumber(d.InterestRateAPR),
		ServiceFeeAmount:     ParseOptionalNumber(d.ServiceFeeAmount),
		ActualLastMinPayment: ParseOptionalNumber(d.ActualLastMinPayment),
		LoginURL:             optionalString(d.LoginURL),
		Username:             optionalString(d.Username),
		Notes:                optionalString(d.Notes),
	}

	if balance := ParseOptionalNumber(d.CurrentBalance); balance != nil {
		a.CurrentBalance = *balance
	}

	if strings.TrimSpace(d.ServiceFeeAmount) != "" {
		freq := d.ServiceFeeFrequency
		if freq == "" {
			freq = Monthly
		}
		a.ServiceFeeFrequency = &freq
	}

	return a
}

// ParseOptionalNumber parses trimmed text as a finite float64. Blank,
// malformed, infinite and NaN input all yield nil.
func ParseOptionalNumber(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}

// FormatNumber renders v in its shortest round-trip form ("24.99", "100").
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatOptionalNumber(v *float64) string {
	if v == nil {
		return ""
	}
	return FormatNumber(*v)
}

func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
