// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-finance-keeper/internal/client"
	"github.com/MKhiriev/go-finance-keeper/internal/service"
	"github.com/MKhiriev/go-finance-keeper/models"
)

var exportFormats = []models.ExportFormat{models.ExportJSON, models.ExportCSV, models.ExportYAML}

type exportOptions struct {
	format        string
	output        string
	withPasswords bool
}

func newExportCommand(root *rootOptions) *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every account to a backup file",
		Long: `Export writes all accounts as JSON, YAML or CSV.

JSON and YAML backups keep encrypted passwords as they are stored and can be
imported again. CSV is meant for spreadsheets: it only carries passwords when
--with-passwords is set, in which case the vault password is asked for and the
passwords are written in plain text.`,
		Example: `  finance-keeper export
  finance-keeper export --format csv --with-passwords -o accounts.csv
  finance-keeper export --format yaml -o -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format := models.ExportFormat(opts.format)
			if !slices.Contains(exportFormats, format) {
				return fmt.Errorf("%w: %q (use json, csv or yaml)", service.ErrUnknownExportFormat, opts.format)
			}
			return withApp(cmd, root, func(ctx context.Context, app *client.App) error {
				return runExport(ctx, cmd, app, format, opts)
			})
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", string(models.ExportJSON), "Export format: json, csv or yaml")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file, - for stdout (default accounts-export-<date>.<format>)")
	cmd.Flags().BoolVar(&opts.withPasswords, "with-passwords", false, "Include decrypted passwords in a CSV export")

	return cmd
}

func runExport(ctx context.Context, cmd *cobra.Command, app *client.App, format models.ExportFormat, opts *exportOptions) error {
	stderr := cmd.ErrOrStderr()

	includePasswords := opts.withPasswords
	if includePasswords && format != models.ExportCSV {
		printWarn(stderr, "--with-passwords only applies to csv; %s keeps the encrypted passwords", format)
		includePasswords = false
	}
	if includePasswords {
		if err := unlockVault(ctx, cmd, app); err != nil {
			return err
		}
	}

	path := opts.output
	if path == "" {
		path = service.ExportFileName(format, time.Now())
	}

	if path == "-" {
		if err := app.Services().TransferService.Export(ctx, cmd.OutOrStdout(), format, includePasswords); err != nil {
			return failWith(stderr, err)
		}
		return nil
	}

	if err := exportToFile(ctx, app, path, format, includePasswords); err != nil {
		return failWith(stderr, err)
	}
	printSuccess(stderr, "Exported accounts to %s", path)
	return nil
}

// exportToFile writes the export with owner-only permissions and removes
// the partial file on failure.
func exportToFile(ctx context.Context, app *client.App, path string, format models.ExportFormat, includePasswords bool) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("close export file: %w", closeErr)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	return app.Services().TransferService.Export(ctx, f, format, includePasswords)
}

// unlockVault asks for the vault password and unlocks an existing vault.
func unlockVault(ctx context.Context, cmd *cobra.Command, app *client.App) error {
	stderr := cmd.ErrOrStderr()

	password, err := promptPassword(stderr, "Vault password: ")
	if err != nil {
		printError(stderr, "Cannot read the vault password: %v", err)
		return err
	}
	if err := app.Session().UnlockExisting(ctx, password); err != nil {
		return failWith(stderr, err)
	}
	return nil
}
