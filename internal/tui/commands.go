// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-finance-keeper/models"
)

func (m model) cmdLoadAccounts() tea.Cmd {
	ctx, svc, filter := m.ctx, m.services.AccountService, m.filter
	return func() tea.Msg {
		accounts, err := svc.List(ctx, filter)
		return accountsLoadedMsg{accounts: accounts, err: err}
	}
}

func (m model) cmdUnlock(password string) tea.Cmd {
	ctx, session := m.ctx, m.session
	return func() tea.Msg {
		return unlockDoneMsg{err: session.Unlock(ctx, password)}
	}
}

func (m model) cmdSave(id string, draft models.AccountDraft, password string) tea.Cmd {
	ctx, svc := m.ctx, m.services.AccountService
	return func() tea.Msg {
		if id == "" {
			account, err := svc.Create(ctx, draft, password)
			return accountSavedMsg{account: account, created: true, err: err}
		}
		account, err := svc.Update(ctx, id, draft, password)
		return accountSavedMsg{account: account, err: err}
	}
}

func (m model) cmdDelete(id string) tea.Cmd {
	ctx, svc := m.ctx, m.services.AccountService
	return func() tea.Msg {
		return accountDeletedMsg{err: svc.Delete(ctx, id)}
	}
}

func (m model) cmdReveal(id string, copyAfter bool) tea.Cmd {
	ctx, svc := m.ctx, m.services.AccountService
	return func() tea.Msg {
		password, err := svc.RevealPassword(ctx, id)
		return passwordRevealedMsg{id: id, password: password, copy: copyAfter, err: err}
	}
}

func (m model) cmdLoadOverview() tea.Cmd {
	ctx, svc := m.ctx, m.services.OverviewService
	return func() tea.Msg {
		overview, err := svc.Overview(ctx)
		return overviewLoadedMsg{overview: overview, err: err}
	}
}
