// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-finance-keeper/internal/card"
)

var errUnknownCard = errors.New("not a recognised card number")

func newCardCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "card <number>",
		Short: "Detect the network of a card number",
		Example: `  finance-keeper card 4111111111111111
  finance-keeper card 3782 822463 10005`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := strings.Join(args, " ")
			c, ok := card.Identify(raw)
			if !ok {
				if brand, found := card.DetectBrand(raw); found {
					printError(cmd.ErrOrStderr(), "Looks like %s, but the length or checksum is wrong", brand)
				} else {
					printError(cmd.ErrOrStderr(), "Not a recognised card number")
				}
				return errUnknownCard
			}

			out := cmd.OutOrStdout()
			printField(out, "Brand", string(c.Brand))
			printField(out, "Number", c.Formatted)
			printField(out, "Digits", c.Digits)
			return nil
		},
	}
}
