// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SortKey selects the column accounts are ordered by.
type SortKey string

const (
	SortByAccount    SortKey = "account"
	SortByBalance    SortKey = "balance"
	SortByMinPayment SortKey = "minPayment"
)

// SortOrder is either ascending or descending.
type SortOrder string

const (
	Asc  SortOrder = "asc"
	Desc SortOrder = "desc"
)

// AccountFilter narrows and orders an account listing.
// Zero value lists everything sorted by account name ascending.
type AccountFilter struct {
	// Search is a case-insensitive substring matched against name, number
	// and type.
	Search string
	// Type restricts the listing to one account type when non-empty.
	Type AccountType
	// SortBy defaults to [SortByAccount].
	SortBy SortKey
	// Order defaults to [Asc].
	Order SortOrder
}

// Toggle returns the filter re-sorted by key: the same key flips the order,
// a new key starts ascending.
func (f AccountFilter) Toggle(key SortKey) AccountFilter {
	current := f.SortBy
	if current == "" {
		current = SortByAccount
	}
	if current == key {
		if f.Order == Desc {
			f.Order = Asc
		} else {
			f.Order = Desc
		}
		return f
	}
	f.SortBy = key
	f.Order = Asc
	return f
}

// Overview holds dashboard totals computed across all accounts.
type Overview struct {
	AccountCount            int      `json:"accountCount"`
	TotalBalance            float64  `json:"totalBalance"`
	TotalMinDueEstimate     float64  `json:"totalMinDueEstimate"`
	TotalMonthlyServiceFees float64  `json:"totalMonthlyServiceFees"`
	Largest                 *Account `json:"largest,omitempty"`
}
