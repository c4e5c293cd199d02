// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-finance-keeper/internal/client"
	"github.com/MKhiriev/go-finance-keeper/internal/finance"
	"github.com/MKhiriev/go-finance-keeper/models"
)

func newOverviewCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Print portfolio totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, root, func(ctx context.Context, app *client.App) error {
				o, err := app.Services().OverviewService.Overview(ctx)
				if err != nil {
					return failWith(cmd.ErrOrStderr(), err)
				}
				printOverview(cmd.OutOrStdout(), o)
				return nil
			})
		},
	}
}

func printOverview(w io.Writer, o models.Overview) {
	printField(w, "Accounts", fmt.Sprintf("%d", o.AccountCount))
	printField(w, "Total balance", finance.FormatMoney(o.TotalBalance))
	printField(w, "Minimum due", finance.FormatMoney(o.TotalMinDueEstimate))
	printField(w, "Monthly service fees", finance.FormatMoney(o.TotalMonthlyServiceFees))
	if o.Largest != nil {
		printField(w, "Largest balance", fmt.Sprintf("%s (%s)", o.Largest.AccountName, finance.FormatMoney(o.Largest.CurrentBalance)))
	}
}
