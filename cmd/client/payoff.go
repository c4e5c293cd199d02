// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"math"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-finance-keeper/internal/finance"
)

func newPayoffCommand() *cobra.Command {
	var balance, apr, payment float64

	cmd := &cobra.Command{
		Use:   "payoff",
		Short: "Estimate how long a balance takes to pay off",
		Long: `Payoff projects a fixed monthly payment against a balance and APR.
Without --payment the estimated minimum payment is used: 2% of the balance,
but never less than $25.`,
		Example: `  finance-keeper payoff --balance 5000 --apr 19.99 --payment 200
  finance-keeper payoff --balance 1200`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var aprPtr *float64
			if cmd.Flags().Changed("apr") && isFinite(apr) {
				aprPtr = &apr
			}

			out := cmd.OutOrStdout()
			if !cmd.Flags().Changed("payment") || !isFinite(payment) {
				payment = finance.EstimateMinimumPayment(balance)
				printField(out, "Payment", finance.FormatMoney(payment)+" (estimated minimum)")
			} else {
				printField(out, "Payment", finance.FormatMoney(payment))
			}

			p := finance.EstimatePayoff(balance, aprPtr, payment, time.Now())
			switch p.Kind {
			case finance.PayoffNotApplicable:
				printSuccess(out, "Nothing to pay off")
			case finance.PayoffNever:
				printWarn(out, "%s", p.Reason)
			case finance.PayoffEstimate:
				printField(out, "Months", fmt.Sprintf("%d", p.Months))
				printField(out, "Paid off by", p.PayoffDate.Format("January 2006"))
				printField(out, "Total interest", "~ "+finance.FormatMoney(p.TotalInterest))
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&balance, "balance", 0, "Current balance (required)")
	cmd.Flags().Float64Var(&apr, "apr", 0, "Annual percentage rate, e.g. 24.99")
	cmd.Flags().Float64Var(&payment, "payment", 0, "Monthly payment")
	_ = cmd.MarkFlagRequired("balance")

	return cmd
}

// isFinite treats NaN and Inf flag values as not given.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
