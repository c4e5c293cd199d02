// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-finance-keeper/internal/mock"
	"github.com/MKhiriev/go-finance-keeper/internal/service"
	"github.com/MKhiriev/go-finance-keeper/internal/vault"
	"github.com/MKhiriev/go-finance-keeper/models"
)

var fixedNow = time.Date(2026, 1, 31, 12, 0, 0, 0, time.UTC)

type testDeps struct {
	accounts *mock.MockAccountService
	overview *mock.MockOverviewService
	session  *mock.MockSession
	status   vault.Status
	copied   []string
}

func ptr[T any](v T) *T { return &v }

func newTestModel(t *testing.T) (model, *testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	d := &testDeps{
		accounts: mock.NewMockAccountService(ctrl),
		overview: mock.NewMockOverviewService(ctrl),
		session:  mock.NewMockSession(ctrl),
	}
	d.session.EXPECT().Status().DoAndReturn(func() vault.Status { return d.status }).AnyTimes()

	services := &service.Services{
		AccountService:  d.accounts,
		TransferService: mock.NewMockTransferService(ctrl),
		OverviewService: d.overview,
		AppInfoService:  mock.NewMockAppInfoService(ctrl),
	}

	m := newModel(context.Background(), services, d.session, models.NewAppBuildInfo("1.2.3", "2026-01-30", "abc123"))
	m.now = func() time.Time { return fixedNow }
	m.copy = func(s string) error {
		d.copied = append(d.copied, s)
		return nil
	}
	return m, d
}

// loaded returns m after the initial account load.
func loaded(t *testing.T, m model, d *testDeps, accounts []models.Account) model {
	t.Helper()
	d.accounts.EXPECT().List(gomock.Any(), models.AccountFilter{}).Return(accounts, nil)
	m, _ = run(t, m, m.Init())
	return m
}

// run executes cmd synchronously and feeds its message back into m.
func run(t *testing.T, m model, cmd tea.Cmd) (model, tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	next, nextCmd := m.Update(cmd())
	return next.(model), nextCmd
}

func press(t *testing.T, m model, k string) (model, tea.Cmd) {
	t.Helper()
	var msg tea.KeyMsg
	switch k {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+s":
		msg = tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+c":
		msg = tea.KeyMsg{Type: tea.KeyCtrlC}
	case "right":
		msg = tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		msg = tea.KeyMsg{Type: tea.KeyLeft}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	next, cmd := m.Update(msg)
	return next.(model), cmd
}

func typeText(t *testing.T, m model, s string) model {
	t.Helper()
	for _, r := range s {
		m, _ = press(t, m, string(r))
	}
	return m
}

func testAccounts() []models.Account {
	return []models.Account{
		{
			ID:                "a-1",
			AccountName:       "Sapphire Visa",
			Type:              models.CreditCard,
			AccountNumber:     "4111-0001",
			CurrentCardNumber: ptr("4111 1111 1111 1111"),
			CreditLimit:       ptr(5000.0),
			OpenDate:          ptr("2020-03-14"),
			InterestRateAPR:   ptr(24.99),
			CurrentBalance:    1200.5,
			Username:          ptr("jdoe"),
			PasswordEnc:       &models.EncryptedBlob{CipherTextB64: "eA=="},
			CreatedAt:         "2026-01-02T10:00:00.000Z",
			UpdatedAt:         "2026-01-05T10:00:00.000Z",
		},
		{
			ID:                   "a-2",
			AccountName:          "car loan",
			Type:                 models.Loan,
			AccountNumber:        "LN-77",
			CurrentBalance:       14000,
			ActualLastMinPayment: ptr(320.0),
			CreatedAt:            "2026-01-01T10:00:00.000Z",
			UpdatedAt:            "2026-01-01T10:00:00.000Z",
		},
	}
}
