// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package finance

import "github.com/MKhiriev/go-finance-keeper/models"

// EffectiveMonthlyServiceFee normalises an account's service fee to a
// monthly amount. Yearly fees are spread over 12 months; a missing
// frequency counts as monthly.
func EffectiveMonthlyServiceFee(account models.Account) float64 {
	if account.ServiceFeeAmount == nil || *account.ServiceFeeAmount <= 0 {
		return 0
	}

	fee := *account.ServiceFeeAmount
	if account.ServiceFeeFrequency != nil && *account.ServiceFeeFrequency == models.Yearly {
		return fee / monthsPerYear
	}
	return fee
}

// MinimumDue returns the last actual minimum payment when one is recorded,
// and the estimate otherwise.
func MinimumDue(account models.Account) float64 {
	if account.ActualLastMinPayment != nil {
		return *account.ActualLastMinPayment
	}
	return EstimateMinimumPayment(account.CurrentBalance)
}
