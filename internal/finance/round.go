// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package finance

import (
	"math"

	"github.com/shopspring/decimal"
)

// Round2 rounds v to cents on the binary value of v*100, halves going up.
// 1.005 is stored just below the half and rounds to 1.00.
func Round2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}

// Sum adds values in decimal so that totals of cents do not drift.
func Sum(values ...float64) float64 {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(decimal.NewFromFloat(v))
	}
	return total.InexactFloat64()
}
