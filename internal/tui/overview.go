// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-finance-keeper/internal/finance"
)

func (m model) updateOverview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc), key.Matches(msg, keys.overview), key.Matches(msg, keys.quit):
		m.page = pageList
	}
	return m, nil
}

func (m model) onOverviewLoaded(msg overviewLoadedMsg) model {
	if msg.err != nil {
		m.setError("load overview", msg.err)
		return m
	}
	m.overview = msg.overview
	return m
}

func (m model) viewOverview() string {
	o := m.overview
	var b strings.Builder
	fmt.Fprintf(&b, "%-28s %d\n", "Accounts:", o.AccountCount)
	fmt.Fprintf(&b, "%-28s %s\n", "Total balance:", finance.FormatMoney(o.TotalBalance))
	fmt.Fprintf(&b, "%-28s %s\n", "Minimum due (estimate):", finance.FormatMoney(o.TotalMinDueEstimate))
	fmt.Fprintf(&b, "%-28s %s\n", "Monthly service fees:", finance.FormatMoney(o.TotalMonthlyServiceFees))
	if o.Largest != nil {
		fmt.Fprintf(&b, "%-28s %s (%s)\n", "Largest balance:", o.Largest.AccountName, finance.FormatMoney(o.Largest.CurrentBalance))
	} else {
		fmt.Fprintf(&b, "%-28s -\n", "Largest balance:")
	}
	b.WriteString(m.viewMessages())
	return renderPage("OVERVIEW", strings.TrimRight(b.String(), "\n"), "esc/o: back")
}
