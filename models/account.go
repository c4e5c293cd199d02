// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// TimestampLayout is the layout used for CreatedAt and UpdatedAt. It matches
// the ISO-8601 output of JavaScript's Date.toISOString so that backups stay
// interchangeable.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// OpenDateLayout is the layout of [Account.OpenDate].
const OpenDateLayout = time.DateOnly

// Account is a single financial account record.
//
// Optional fields are pointers: nil means "not provided", which is different
// from an explicit zero (a 0% APR is a real value, a missing APR is not).
// PasswordEnc is the only encrypted field; every other field is stored in
// plain text.
type Account struct {
	ID                   string               `json:"id" yaml:"id"`
	AccountName          string               `json:"accountName" yaml:"accountName"`
	Type                 AccountType          `json:"type" yaml:"type"`
	AccountNumber        string               `json:"accountNumber" yaml:"accountNumber"`
	CurrentCardNumber    *string              `json:"currentCardNumber,omitempty" yaml:"currentCardNumber,omitempty"`
	CreditLimit          *float64             `json:"creditLimit,omitempty" yaml:"creditLimit,omitempty"`
	OpenDate             *string              `json:"openDate,omitempty" yaml:"openDate,omitempty"`
	InterestRateAPR      *float64             `json:"interestRateApr,omitempty" yaml:"interestRateApr,omitempty"`
	ServiceFeeAmount     *float64             `json:"serviceFeeAmount,omitempty" yaml:"serviceFeeAmount,omitempty"`
	ServiceFeeFrequency  *ServiceFeeFrequency `json:"serviceFeeFrequency,omitempty" yaml:"serviceFeeFrequency,omitempty"`
	CurrentBalance       float64              `json:"currentBalance" yaml:"currentBalance"`
	ActualLastMinPayment *float64             `json:"actualLastMinPayment,omitempty" yaml:"actualLastMinPayment,omitempty"`
	LoginURL             *string              `json:"loginUrl,omitempty" yaml:"loginUrl,omitempty"`
	Username             *string              `json:"username,omitempty" yaml:"username,omitempty"`
	PasswordEnc          *EncryptedBlob       `json:"passwordEnc,omitempty" yaml:"passwordEnc,omitempty"`
	Notes                *string              `json:"notes,omitempty" yaml:"notes,omitempty"`
	CreatedAt            string               `json:"createdAt" yaml:"createdAt"`
	UpdatedAt            string               `json:"updatedAt" yaml:"updatedAt"`
}

// HasPassword reports whether the account carries an encrypted password.
func (a Account) HasPassword() bool {
	return a.PasswordEnc != nil
}

// FormatTimestamp renders t in [TimestampLayout] (UTC).
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
