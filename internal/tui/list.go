// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-finance-keeper/internal/finance"
	"github.com/MKhiriev/go-finance-keeper/models"
)

const listHotKeys = "↑/↓: nav │ enter: open │ n: new │ e: edit │ d: delete │ /: search │ t: type │ 1/2/3: sort │ o: overview │ v: info │ q: quit"

func (m model) onAccountsLoaded(msg accountsLoadedMsg) model {
	m.loading = false
	if msg.err != nil {
		m.setError("list accounts", msg.err)
		return m
	}
	m.accounts = msg.accounts
	if m.selectID != "" {
		found := false
		for i, a := range m.accounts {
			if a.ID == m.selectID {
				m.idx, found = i, true
				break
			}
		}
		if !found && m.page == pageDetail {
			// hidden by the active filter
			m.page = pageList
		}
		m.selectID = ""
	}
	if m.idx >= len(m.accounts) {
		m.idx = len(m.accounts) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
	return m
}

func (m model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searchFocused {
		return m.updateSearch(msg)
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.accounts)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.enter):
		if _, ok := m.current(); !ok {
			m.setStatus("No accounts yet.")
			return m, nil
		}
		m.hidePassword()
		m.page = pageDetail
	case key.Matches(msg, keys.newItem):
		m.form = newForm(nil, m.now)
		m.page = pageForm
		return m, m.form.init()
	case key.Matches(msg, keys.edit):
		if a, ok := m.current(); ok {
			m.form = newForm(&a, m.now)
			m.page = pageForm
			return m, m.form.init()
		}
	case key.Matches(msg, keys.delete):
		if _, ok := m.current(); ok {
			m.page = pageConfirmDelete
		}
	case key.Matches(msg, keys.search):
		m.searchFocused = true
		cmd := m.search.Focus()
		return m, cmd
	case key.Matches(msg, keys.typeNext):
		m.filter.Type = nextTypeFilter(m.filter.Type)
		m.loading = true
		return m, m.cmdLoadAccounts()
	case key.Matches(msg, keys.sortName):
		return m.resort(models.SortByAccount)
	case key.Matches(msg, keys.sortBal):
		return m.resort(models.SortByBalance)
	case key.Matches(msg, keys.sortMin):
		return m.resort(models.SortByMinPayment)
	case key.Matches(msg, keys.overview):
		m.page = pageOverview
		return m, m.cmdLoadOverview()
	case key.Matches(msg, keys.unlock):
		return m.focusVault()
	case key.Matches(msg, keys.lock):
		return m.lockVault(), nil
	case key.Matches(msg, keys.info):
		m.showBuildInfo = true
	}

	return m, nil
}

func (m model) resort(by models.SortKey) (tea.Model, tea.Cmd) {
	m.filter = m.filter.Toggle(by)
	m.loading = true
	return m, m.cmdLoadAccounts()
}

// updateSearch edits the query; every change reloads the list.
func (m model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.enter):
		m.searchFocused = false
		m.search.Blur()
		return m, nil
	case key.Matches(msg, keys.esc):
		m.searchFocused = false
		m.search.Blur()
		m.search.Reset()
		if m.filter.Search == "" {
			return m, nil
		}
		m.filter.Search = ""
		return m, m.cmdLoadAccounts()
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if q := strings.TrimSpace(m.search.Value()); q != m.filter.Search {
		m.filter.Search = q
		m.idx = 0
		return m, tea.Batch(cmd, m.cmdLoadAccounts())
	}
	return m, cmd
}

// nextTypeFilter cycles all types, then back to no filter.
func nextTypeFilter(current models.AccountType) models.AccountType {
	if current == "" {
		return models.AccountTypes[0]
	}
	for i, t := range models.AccountTypes {
		if t == current && i+1 < len(models.AccountTypes) {
			return models.AccountTypes[i+1]
		}
	}
	return ""
}

func (m model) viewList() string {
	var out strings.Builder

	out.WriteString("Search: ")
	if m.searchFocused {
		out.WriteString(m.search.View())
	} else {
		out.WriteString(valueOrDash(&m.filter.Search))
	}
	out.WriteString("   Type: ")
	if m.filter.Type == "" {
		out.WriteString("All")
	} else {
		out.WriteString(string(m.filter.Type))
	}
	out.WriteString("   Sort: ")
	out.WriteString(sortLabel(m.filter))
	out.WriteString("\n\n")

	switch {
	case m.loading:
		out.WriteString("Loading accounts...\n")
	case len(m.accounts) == 0 && (m.filter.Search != "" || m.filter.Type != ""):
		out.WriteString("No accounts match the current filter.\n")
	case len(m.accounts) == 0:
		out.WriteString("No accounts yet. Press n to add one, or import a backup from the command line.\n")
	default:
		out.WriteString(fmt.Sprintf("  %-22s │ %-14s │ %-12s │ %12s │ %-16s │ %-21s │ %s\n",
			"Account", "Number", "Type", "Balance", "Min payment", "Available / Limit", "Payoff"))
		out.WriteString("  " + strings.Repeat("─", 124) + "\n")
		for i, a := range m.accounts {
			row := fmt.Sprintf("%-22s │ %-14s │ %-12s │ %12s │ %-16s │ %-21s │ %s",
				fitText(a.AccountName, 22),
				fitText(a.AccountNumber, 14),
				fitText(string(a.Type), 12),
				finance.FormatMoney(a.CurrentBalance),
				minPaymentLabel(a),
				creditLabel(a),
				payoffLabel(a, m.now()),
			)
			if i == m.idx {
				out.WriteString("> " + selectedStyle.Render(row) + "\n")
			} else {
				out.WriteString("  " + row + "\n")
			}
		}
	}

	out.WriteString(m.viewMessages())
	return renderPage("ACCOUNTS", strings.TrimRight(out.String(), "\n"), listHotKeys)
}

func sortLabel(f models.AccountFilter) string {
	by := f.SortBy
	if by == "" {
		by = models.SortByAccount
	}
	order := f.Order
	if order == "" {
		order = models.Asc
	}
	names := map[models.SortKey]string{
		models.SortByAccount:    "account",
		models.SortByBalance:    "balance",
		models.SortByMinPayment: "min payment",
	}
	arrow := "↑"
	if order == models.Desc {
		arrow = "↓"
	}
	return names[by] + " " + arrow
}

func (m model) viewMessages() string {
	var out strings.Builder
	if m.errMsg != "" {
		out.WriteString("\n" + errorStyle.Render(m.errMsg) + "\n")
	}
	if m.status != "" {
		out.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}
	return out.String()
}
