// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a, ok := m.current()
	if !ok {
		m.page = pageList
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.yes):
		return m, m.cmdDelete(a.ID)
	case key.Matches(msg, keys.no):
		m.page = pageDetail
	}
	return m, nil
}

func (m model) onAccountDeleted(msg accountDeletedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.setError("delete account", msg.err)
		m.page = pageDetail
		return m, nil
	}
	m.hidePassword()
	m.setStatus("Account deleted.")
	m.page = pageList
	m.loading = true
	return m, m.cmdLoadAccounts()
}

func (m model) viewConfirm() string {
	a, _ := m.current()
	body := popupStyle.Render(
		titleStyle.Render("Delete account?") + "\n\n" +
			a.AccountName + "\n\n" +
			"This will permanently remove the account from local storage\n(unless you have an export backup).",
	)
	return renderPage("DELETE", body+m.viewMessages(), "y/enter: delete │ n/esc: cancel")
}
