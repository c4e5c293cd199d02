// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-finance-keeper/models"
)

func newVersionCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			printBuildInfo(cmd.OutOrStdout(), root.buildInfo)
		},
	}
}

func printBuildInfo(w io.Writer, info models.AppBuildInfo) {
	printField(w, "Build version", orNA(info.BuildVersion()))
	printField(w, "Build date", orNA(info.BuildDate()))
	printField(w, "Build commit", orNA(info.BuildCommit()))
}

func orNA(v string) string {
	if strings.TrimSpace(v) == "" {
		return "N/A"
	}
	return v
}
