// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AccountType defines what kind of financial relationship an [Account]
// describes. The string value is persisted and exported verbatim.
type AccountType string

const (
	// CreditCard is a revolving credit line with a card number, an APR and
	// usually a credit limit.
	CreditCard AccountType = "Credit Card"

	// Service is a recurring service subscription (utilities, phone, etc.).
	Service AccountType = "Service"

	// Streaming is a media subscription.
	Streaming AccountType = "Streaming"

	// Loan is an installment debt such as a car loan or a mortgage.
	Loan AccountType = "Loan"

	// Bank is a checking or savings account.
	Bank AccountType = "Bank"

	// Investment is a brokerage or retirement account.
	Investment AccountType = "Investment"

	// Other covers everything else.
	Other AccountType = "Other"
)

// AccountTypes lists every supported [AccountType] in display order.
var AccountTypes = []AccountType{
	CreditCard,
	Service,
	Streaming,
	Loan,
	Bank,
	Investment,
	Other,
}

// IsValid reports whether t is one of [AccountTypes].
func (t AccountType) IsValid() bool {
	for _, known := range AccountTypes {
		if t == known {
			return true
		}
	}
	return false
}

// ServiceFeeFrequency tells how often a service fee is charged.
type ServiceFeeFrequency string

const (
	// Monthly fees are charged every month. It is the default frequency.
	Monthly ServiceFeeFrequency = "Monthly"

	// Yearly fees are charged once a year.
	Yearly ServiceFeeFrequency = "Yearly"
)

// IsValid reports whether f is Monthly or Yearly.
func (f ServiceFeeFrequency) IsValid() bool {
	return f == Monthly || f == Yearly
}
