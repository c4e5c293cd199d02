// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-finance-keeper/internal/client"
	"github.com/MKhiriev/go-finance-keeper/models"
)

func newImportCommand(root *rootOptions) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "import <file|url>",
		Short: "Replace every account with a backup",
		Long: `Import reads a JSON or YAML backup from a file or an http(s) URL and
replaces every stored account with the valid records it contains. Invalid
records are skipped and reported.`,
		Example: `  finance-keeper import accounts-export-2026-01-31.json
  finance-keeper import https://nas.local/backups/accounts.json --yes`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes && !confirm(cmd.InOrStdin(), cmd.ErrOrStderr(), "This replaces every stored account. Continue?") {
				printWarn(cmd.ErrOrStderr(), "Import cancelled")
				return nil
			}
			return withApp(cmd, root, func(ctx context.Context, app *client.App) error {
				return runImport(ctx, cmd, app, args[0])
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}

func runImport(ctx context.Context, cmd *cobra.Command, app *client.App, source string) error {
	stderr := cmd.ErrOrStderr()
	transfer := app.Services().TransferService

	var (
		result models.ImportResult
		err    error
	)
	if isURL(source) {
		result, err = transfer.ImportFromURL(ctx, source)
	} else {
		result, err = importFile(ctx, app, source)
	}
	if err != nil {
		return failWith(stderr, err)
	}

	printImportResult(cmd.OutOrStdout(), result)
	return nil
}

func importFile(ctx context.Context, app *client.App, path string) (models.ImportResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.ImportResult{}, fmt.Errorf("open import file: %w", err)
	}
	defer f.Close()

	return app.Services().TransferService.Import(ctx, f)
}

func isURL(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func printImportResult(w io.Writer, result models.ImportResult) {
	printSuccess(w, "Imported %d account(s)", result.Imported)
	if result.Dropped == 0 {
		return
	}
	printWarn(w, "Skipped %d invalid record(s):", result.Dropped)
	for _, r := range result.Rejections {
		fmt.Fprintf(w, "  #%d: %s\n", r.Index, r.Reason)
	}
}

// confirm asks a yes/no question; anything but y or yes is a no.
func confirm(in io.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N] ", question)
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
