// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-finance-keeper/internal/client"
	"github.com/MKhiriev/go-finance-keeper/internal/config"
	"github.com/MKhiriev/go-finance-keeper/internal/logger"
	"github.com/MKhiriev/go-finance-keeper/models"
)

const logRole = "go-finance-client"

// rootOptions is shared by every subcommand.
type rootOptions struct {
	flags     config.Flags
	buildInfo models.AppBuildInfo
}

func newRootCommand(buildInfo models.AppBuildInfo) *cobra.Command {
	opts := &rootOptions{buildInfo: buildInfo}

	cmd := &cobra.Command{
		Use:   "finance-keeper",
		Short: "Personal finance record keeper",
		Long: `finance-keeper keeps credit cards, loans, bank and service accounts in a
local SQLite file. Account passwords are encrypted with a vault password
that never leaves this machine.

Run without a subcommand to open the terminal UI.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *client.App) error {
				return app.Run(ctx)
			})
		},
	}

	opts.flags.BindFlags(cmd.PersistentFlags())

	cmd.AddCommand(newExportCommand(opts))
	cmd.AddCommand(newImportCommand(opts))
	cmd.AddCommand(newCardCommand())
	cmd.AddCommand(newPayoffCommand())
	cmd.AddCommand(newOverviewCommand(opts))
	cmd.AddCommand(newVersionCommand(opts))

	return cmd
}

// withApp loads the configuration, opens the store and hands the wired app
// to fn. The store is closed when fn returns.
func withApp(cmd *cobra.Command, opts *rootOptions, fn func(ctx context.Context, app *client.App) error) error {
	cfg, err := config.GetClientConfig(&opts.flags)
	if err != nil {
		printError(cmd.ErrOrStderr(), "Invalid configuration: %v", err)
		return fmt.Errorf("load config: %w", err)
	}

	logFile := cfg.App.LogFile
	if logFile == "" {
		logFile = client.DefaultLogFile()
	}
	log := logger.NewClientLogger(logRole, cfg.App.LogLevel, logFile)

	ctx := log.WithContext(cmd.Context())
	app, err := client.NewApp(ctx, cfg, opts.buildInfo, log)
	if err != nil {
		printError(cmd.ErrOrStderr(), "Cannot open %s: %v", cfg.Storage.DB.DSN, err)
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Err(err).Str("func", "main.withApp").Msg("error closing storages")
		}
	}()

	return fn(ctx, app)
}
