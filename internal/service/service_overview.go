// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/MKhiriev/go-finance-keeper/internal/finance"
	"github.com/MKhiriev/go-finance-keeper/internal/logger"
	"github.com/MKhiriev/go-finance-keeper/internal/store"
	"github.com/MKhiriev/go-finance-keeper/models"
)

type overviewService struct {
	accounts store.AccountRepository

	logger *logger.Logger
}

func NewOverviewService(accounts store.AccountRepository, logger *logger.Logger) OverviewService {
	return &overviewService{
		accounts: accounts,
		logger:   logger,
	}
}

func (s *overviewService) Overview(ctx context.Context) (models.Overview, error) {
	accounts, err := s.accounts.ListAccounts(ctx, "")
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "overviewService.Overview").Msg("failed to list accounts")
		return models.Overview{}, fmt.Errorf("list accounts for overview: %w", err)
	}
	return Summarize(accounts), nil
}

// Summarize computes the dashboard totals of accounts. Sums are taken in
// decimal. The largest balance goes to the first account holding it.
func Summarize(accounts []models.Account) models.Overview {
	balance := decimal.Zero
	minDue := decimal.Zero
	fees := decimal.Zero

	var largest *models.Account
	for i := range accounts {
		a := accounts[i]
		balance = balance.Add(decimal.NewFromFloat(a.CurrentBalance))
		minDue = minDue.Add(decimal.NewFromFloat(finance.MinimumDue(a)))
		fees = fees.Add(decimal.NewFromFloat(finance.EffectiveMonthlyServiceFee(a)))

		if largest == nil || a.CurrentBalance > largest.CurrentBalance {
			largest = &a
		}
	}

	return models.Overview{
		AccountCount:            len(accounts),
		TotalBalance:            balance.InexactFloat64(),
		TotalMinDueEstimate:     minDue.InexactFloat64(),
		TotalMonthlyServiceFees: fees.InexactFloat64(),
		Largest:                 largest,
	}
}
