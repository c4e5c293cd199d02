// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package finance holds the pure money math used by the account views:
// minimum payment estimates, payoff horizons, available credit, service fee
// normalisation and display formatting.
package finance

import (
	"math"
	"time"
)

const (
	// MinimumPaymentFloor is the smallest minimum payment ever estimated.
	MinimumPaymentFloor = 25.0
	// MinimumPaymentRate is the share of the balance used for the estimate.
	MinimumPaymentRate = 0.02
)

// Reasons reported with [PayoffNever].
const (
	ReasonNoPayment     = "No payment set"
	ReasonPaymentTooLow = "Payment is too low (won't reduce principal)"
)

const (
	interestOnlyMargin = 0.01
	monthsPerYear      = 12.0
	percentDenominator = 100.0

	// MaxPayoffMonths bounds the projected horizon. Anything longer is
	// reported as [PayoffNever].
	MaxPayoffMonths = 10_000_000
)

// PayoffKind tells which shape of [Payoff] was produced.
type PayoffKind int

const (
	// PayoffNotApplicable means there is nothing to pay off.
	PayoffNotApplicable PayoffKind = iota
	// PayoffNever means the balance never reaches zero; see Payoff.Reason.
	PayoffNever
	// PayoffEstimate carries Months, PayoffDate and TotalInterest.
	PayoffEstimate
)

func (k PayoffKind) String() string {
	switch k {
	case PayoffNever:
		return "never"
	case PayoffEstimate:
		return "estimate"
	default:
		return "not_applicable"
	}
}

// Payoff is the outcome of [EstimatePayoff].
type Payoff struct {
	Kind          PayoffKind
	Reason        string
	Months        int
	PayoffDate    time.Time
	TotalInterest float64
}

// EstimateMinimumPayment returns max(25, 2% of balance rounded to cents).
// A non-finite balance counts as absent.
func EstimateMinimumPayment(balance float64) float64 {
	if !isFinite(balance) {
		return MinimumPaymentFloor
	}
	return math.Max(MinimumPaymentFloor, Round2(balance*MinimumPaymentRate))
}

// AvailableCredit returns limit minus balance, or nil without a limit.
// The result is not clamped: an over-limit account goes negative.
func AvailableCredit(limit *float64, balance float64) *float64 {
	if limit == nil {
		return nil
	}
	v := *limit - balance
	return &v
}

// EstimatePayoff projects how long a fixed monthly payment takes to clear
// balance at the given APR (percent, nil meaning 0).
//
// The month count comes from the closed-form amortization formula; the
// interest total is re-derived by simulating that many months. Non-finite
// inputs count as absent: a NaN balance has nothing to pay off, a NaN or
// infinite APR is 0 and a NaN or infinite payment is no payment.
func EstimatePayoff(balance float64, apr *float64, payment float64, now time.Time) Payoff {
	if math.IsNaN(balance) || balance <= 0 {
		return Payoff{Kind: PayoffNotApplicable}
	}

	var rate float64
	if apr != nil && isFinite(*apr) {
		rate = *apr / percentDenominator / monthsPerYear
	}

	if !isFinite(payment) || payment <= 0 {
		return Payoff{Kind: PayoffNever, Reason: ReasonNoPayment}
	}
	if math.IsInf(balance, 1) {
		return Payoff{Kind: PayoffNever, Reason: ReasonPaymentTooLow}
	}

	if rate > 0 && payment <= balance*rate+interestOnlyMargin {
		return Payoff{Kind: PayoffNever, Reason: ReasonPaymentTooLow}
	}

	n := balance / payment
	compounding := false
	if growth := math.Log1p(rate); rate > 0 && growth > 0 {
		if amortized := -math.Log1p(-rate*balance/payment) / growth; isFinite(amortized) {
			n = amortized
			compounding = true
		}
	}

	if !isFinite(n) || n > MaxPayoffMonths {
		return Payoff{Kind: PayoffNever, Reason: ReasonPaymentTooLow}
	}
	months := int(math.Ceil(n))

	if !compounding {
		return Payoff{
			Kind:       PayoffEstimate,
			Months:     months,
			PayoffDate: AddMonths(now, months),
		}
	}

	remaining := balance
	totalInterest := 0.0
	for i := 0; i < months && remaining > 0; i++ {
		interest := remaining * rate
		totalInterest += interest
		remaining = math.Max(0, remaining-(payment-interest))
	}

	return Payoff{
		Kind:          PayoffEstimate,
		Months:        months,
		PayoffDate:    AddMonths(now, months),
		TotalInterest: Round2(totalInterest),
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// AddMonths adds calendar months to t. When the target month is shorter
// than t's day of month, the result is clamped to the target month's last
// day (Jan 31 + 1 month = Feb 28/29) instead of overflowing.
func AddMonths(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	firstOfTarget := time.Date(y, m+time.Month(months), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	if d > lastDay {
		d = lastDay
	}
	return firstOfTarget.AddDate(0, 0, d-1)
}
