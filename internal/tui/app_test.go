// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-finance-keeper/internal/app"
	"github.com/MKhiriev/go-finance-keeper/internal/service"
	"github.com/MKhiriev/go-finance-keeper/internal/vault"
	"github.com/MKhiriev/go-finance-keeper/models"
)

func TestModel_InitialLoad(t *testing.T) {
	m, d := newTestModel(t)
	assert.Contains(t, m.View(), "Loading accounts...")

	m = loaded(t, m, d, testAccounts())

	view := m.View()
	assert.False(t, m.loading)
	assert.Contains(t, view, "[ Vault locked ]")
	assert.Contains(t, view, "Sapphire Visa")
	assert.Contains(t, view, "$1,200.50")
	assert.Contains(t, view, "$25.00 est.")
	assert.Contains(t, view, "$320.00 actual")
	assert.Contains(t, view, "$3,799.50 / $5,000.00")
	assert.Contains(t, view, "44 mo")
}

func TestModel_EmptyAndFailedLoad(t *testing.T) {
	m, d := newTestModel(t)
	m = loaded(t, m, d, nil)
	assert.Contains(t, m.View(), "No accounts yet.")

	d.accounts.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("disk on fire"))
	m, _ = run(t, m, m.cmdLoadAccounts())
	assert.Equal(t, app.MsgUnexpectedError, m.errMsg)
	assert.NotContains(t, m.View(), "disk on fire")
}

func TestModel_Navigation(t *testing.T) {
	m, d := newTestModel(t)
	m = loaded(t, m, d, testAccounts())

	m, _ = press(t, m, "k")
	assert.Equal(t, 0, m.idx)
	m, _ = press(t, m, "j")
	m, _ = press(t, m, "j")
	assert.Equal(t, 1, m.idx)

	m, _ = press(t, m, "enter")
	assert.Equal(t, pageDetail, m.page)
	assert.Contains(t, m.View(), "CAR LOAN")

	m, _ = press(t, m, "esc")
	assert.Equal(t, pageList, m.page)
}

func TestModel_Quit(t *testing.T) {
	m, d := newTestModel(t)
	m = loaded(t, m, d, testAccounts())

	_, cmd := press(t, m, "q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	m, _ = press(t, m, "enter")
	_, cmd = press(t, m, "ctrl+c")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_Search(t *testing.T) {
	m, d := newTestModel(t)
	m = loaded(t, m, d, testAccounts())

	m, _ = press(t, m, "/")
	require.True(t, m.searchFocused)

	// list keys are plain text while searching
	m = typeText(t, m, "visa q")
	assert.Equal(t, "visa q", m.filter.Search)
	assert.Equal(t, 0, m.idx)

	d.accounts.EXPECT().
		List(gomock.Any(), models.AccountFilter{Search: "visa q"}).
		Return(testAccounts()[:1], nil)
	m, _ = run(t, m, m.cmdLoadAccounts())
	assert.Len(t, m.accounts, 1)

	m, _ = press(t, m, "enter")
	assert.False(t, m.searchFocused)
	assert.Equal(t, "visa q", m.filter.Search)

	m, _ = press(t, m, "/")
	m, cmd := press(t, m, "esc")
	assert.Empty(t, m.filter.Search)
	d.accounts.EXPECT().List(gomock.Any(), models.AccountFilter{}).Return(nil, nil)
	m, _ = run(t, m, cmd)
	assert.Contains(t, m.View(), "No accounts yet.")
}

func TestModel_SortAndTypeFilter(t *testing.T) {
	m, d := newTestModel(t)
	m = loaded(t, m, d, testAccounts())

	m, cmd := press(t, m, "2")
	require.NotNil(t, cmd)
	assert.Equal(t, models.SortByBalance, m.filter.SortBy)
	assert.Equal(t, models.Asc, m.filter.Order)
	assert.Contains(t, m.View(), "balance ↑")

	m, _ = press(t, m, "2")
	assert.Equal(t, models.Desc, m.filter.Order)

	m, _ = press(t, m, "3")
	assert.Equal(t, models.SortByMinPayment, m.filter.SortBy)
	assert.Equal(t, models.Asc, m.filter.Order)

	m, cmd = press(t, m, "t")
	assert.Equal(t, models.CreditCard, m.filter.Type)

	d.accounts.EXPECT().
		List(gomock.Any(), models.AccountFilter{Type: models.CreditCard, SortBy: models.SortByMinPayment, Order: models.Asc}).
		Return(nil, nil)
	m, _ = run(t, m, cmd)
	assert.Contains(t, m.View(), "No accounts match the current filter.")
}

func TestNextTypeFilter(t *testing.T) {
	var seen []models.AccountType
	current := models.AccountType("")
	for range models.AccountTypes {
		current = nextTypeFilter(current)
		seen = append(seen, current)
	}
	assert.Equal(t, models.AccountTypes, seen)
	assert.Equal(t, models.AccountType(""), nextTypeFilter(current))
}

func TestModel_VaultUnlock(t *testing.T) {
	m, d := newTestModel(t)
	m = loaded(t, m, d, testAccounts())

	m, _ = press(t, m, "u")
	require.True(t, m.vaultFocused)

	m, _ = press(t, m, "enter")
	assert.Equal(t, app.MsgEmptyVaultPassword, m.errMsg)

	m = typeText(t, m, "secret")
	m, cmd := press(t, m, "enter")
	assert.True(t, m.unlocking)

	// a second enter while unlocking is ignored
	_, again := press(t, m, "enter")
	assert.Nil(t, again)

	d.session.EXPECT().Unlock(gomock.Any(), "secret").DoAndReturn(func(context.Context, string) error {
		d.status = vault.Status{State: vault.Unlocked}
		return nil
	})
	m, _ = run(t, m, cmd)

	assert.False(t, m.vaultFocused)
	assert.False(t, m.unlocking)
	assert.Empty(t, m.vaultInput.Value())
	assert.Equal(t, "Vault unlocked.", m.status)
	assert.Contains(t, m.View(), "[ Vault unlocked ]")

	m, _ = press(t, m, "u")
	assert.False(t, m.vaultFocused)
	assert.Equal(t, "Vault is already unlocked.", m.status)
}

func TestModel_VaultUnlockWhitespacePassword(t *testing.T) {
	m, d := newTestModel(t)
	m = loaded(t, m, d, testAccounts())

	m, _ = press(t, m, "u")
	m = typeText(t, m, "  ")
	m, cmd := press(t, m, "enter")
	assert.Empty(t, m.errMsg)
	assert.True(t, m.unlocking)

	d.session.EXPECT().Unlock(gomock.Any(), "  ").DoAndReturn(func(context.Context, string) error {
		d.status = vault.Status{State: vault.Unlocked}
		return nil
	})
	m, _ = run(t, m, cmd)
	assert.Equal(t, "Vault unlocked.", m.status)
}

func TestModel_VaultUnlockFails(t *testing.T) {
	m, d := newTestModel(t)
	m = loaded(t, m, d, testAccounts())

	m, _ = press(t, m, "u")
	m = typeText(t, m, "wrong")
	m, cmd := press(t, m, "enter")

	d.session.EXPECT().Unlock(gomock.Any(), "wrong").DoAndReturn(func(context.Context, string) error {
		d.status = vault.Status{State: vault.Locked, Err: app.MsgIncorrectVaultPassword}
		return vault.ErrIncorrectVaultPassword
	})
	m, _ = run(t, m, cmd)

	assert.True(t, m.vaultFocused)
	assert.Empty(t, m.errMsg)
	assert.Contains(t, m.View(), app.MsgIncorrectVaultPassword)

	m, _ = press(t, m, "esc")
	assert.False(t, m.vaultFocused)
}

func TestModel_LockVault(t *testing.T) {
	m, d := newTestModel(t)
	d.status = vault.Status{State: vault.Unlocked}
	m = loaded(t, m, d, testAccounts())
	m.revealedID, m.revealed = "a-1", "hunter2"

	d.session.EXPECT().Lock().Do(func() { d.status = vault.Status{} })
	m, _ = press(t, m, "L")

	assert.Empty(t, m.revealed)
	assert.Equal(t, "Vault locked.", m.status)
	assert.Contains(t, m.View(), "[ Vault locked ]")
}

func TestModel_AutoLockHidesPassword(t *testing.T) {
	m, d := newTestModel(t)
	m = loaded(t, m, d, testAccounts())
	m.page = pageDetail
	m.revealedID, m.revealed = "a-1", "hunter2"

	next, _ := m.Update(vaultLockedMsg{})
	m = next.(model)

	assert.Empty(t, m.revealedID)
	assert.NotContains(t, m.View(), "hunter2")
	assert.Equal(t, "Vault locked after inactivity.", m.status)
}

func TestModel_Overview(t *testing.T) {
	m, d := newTestModel(t)
	m = loaded(t, m, d, testAccounts())

	m, cmd := press(t, m, "o")
	require.Equal(t, pageOverview, m.page)

	largest := testAccounts()[1]
	d.overview.EXPECT().Overview(gomock.Any()).Return(models.Overview{
		AccountCount:            2,
		TotalBalance:            15200.5,
		TotalMinDueEstimate:     345,
		TotalMonthlyServiceFees: 10,
		Largest:                 &largest,
	}, nil)
	m, _ = run(t, m, cmd)

	view := m.View()
	assert.Contains(t, view, "$15,200.50")
	assert.Contains(t, view, "$345.00")
	assert.Contains(t, view, "car loan ($14,000.00)")

	m, _ = press(t, m, "esc")
	assert.Equal(t, pageList, m.page)
}

func TestModel_BuildInfo(t *testing.T) {
	m, d := newTestModel(t)
	m = loaded(t, m, d, testAccounts())

	m, _ = press(t, m, "v")
	view := m.View()
	assert.Contains(t, view, "go-finance-keeper")
	assert.Contains(t, view, "1.2.3")
	assert.Contains(t, view, "abc123")

	// other keys are swallowed by the popup
	m, _ = press(t, m, "n")
	assert.Equal(t, pageList, m.page)

	m, _ = press(t, m, "esc")
	assert.False(t, m.showBuildInfo)
}

func TestUserError(t *testing.T) {
	err := fmt.Errorf("save: %w", service.ErrPasswordNotSaved)
	assert.Equal(t, app.MsgUnlockBeforeSavingPassword, userError(context.Background(), "save", err))
}
