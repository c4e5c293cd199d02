// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-finance-keeper/internal/adapter"
	"github.com/MKhiriev/go-finance-keeper/internal/config"
	"github.com/MKhiriev/go-finance-keeper/internal/logger"
	"github.com/MKhiriev/go-finance-keeper/internal/store"
	"github.com/MKhiriev/go-finance-keeper/internal/vault"
	"github.com/MKhiriev/go-finance-keeper/models"
)

type Services struct {
	AccountService  AccountService
	TransferService TransferService
	OverviewService OverviewService
	AppInfoService  AppInfoService
}

// NewServices wires every service over storages. The account service is
// wrapped with draft validation. fetcher may be nil for binaries that never
// import from a URL.
func NewServices(
	storages *store.Storages,
	session vault.Session,
	fetcher adapter.BackupFetcher,
	cfg config.ClientApp,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	accounts := NewAccountService(storages.AccountRepository, session, logger)

	return &Services{
		AccountService:  NewAccountValidationService().Wrap(accounts),
		TransferService: NewTransferService(storages.AccountRepository, session, fetcher, logger),
		OverviewService: NewOverviewService(storages.AccountRepository, logger),
		AppInfoService:  appInfo,
	}, nil
}
