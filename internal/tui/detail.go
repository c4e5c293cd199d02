// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-finance-keeper/internal/card"
	"github.com/MKhiriev/go-finance-keeper/internal/finance"
	"github.com/MKhiriev/go-finance-keeper/models"
)

const detailHotKeys = "esc: back │ e: edit │ d: delete │ r: show/hide password │ c: copy number │ p: copy password │ u/L: vault"

func (m model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a, ok := m.current()
	if !ok {
		m.page = pageList
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc), key.Matches(msg, keys.quit):
		m.hidePassword()
		m.page = pageList
	case key.Matches(msg, keys.edit):
		m.hidePassword()
		m.form = newForm(&a, m.now)
		m.page = pageForm
		return m, m.form.init()
	case key.Matches(msg, keys.delete):
		m.page = pageConfirmDelete
	case key.Matches(msg, keys.reveal):
		if m.revealedID == a.ID {
			m.hidePassword()
			return m, nil
		}
		return m, m.cmdReveal(a.ID, false)
	case key.Matches(msg, keys.copy):
		number := copyableNumber(a)
		if err := m.copy(number); err != nil {
			m.setError("copy number", err)
			return m, nil
		}
		m.setStatus("Number copied to clipboard.")
	case key.Matches(msg, keys.copyPass):
		return m, m.cmdReveal(a.ID, true)
	case key.Matches(msg, keys.unlock):
		return m.focusVault()
	case key.Matches(msg, keys.lock):
		return m.lockVault(), nil
	}

	return m, nil
}

// copyableNumber returns the card digits when the account has a recognised
// card number, and the account number otherwise.
func copyableNumber(a models.Account) string {
	if a.CurrentCardNumber != nil && strings.TrimSpace(*a.CurrentCardNumber) != "" {
		if c, ok := card.Identify(*a.CurrentCardNumber); ok {
			return c.Digits
		}
		return strings.TrimSpace(*a.CurrentCardNumber)
	}
	return a.AccountNumber
}

func (m model) onPasswordRevealed(msg passwordRevealedMsg) model {
	if msg.err != nil {
		m.setError("reveal password", msg.err)
		return m
	}

	if msg.copy {
		if err := m.copy(msg.password); err != nil {
			m.setError("copy password", err)
			return m
		}
		m.setStatus("Password copied to clipboard.")
		return m
	}

	if a, ok := m.current(); !ok || a.ID != msg.id {
		// the cursor moved while decrypting
		return m
	}
	m.revealedID = msg.id
	m.revealed = msg.password
	m.errMsg = ""
	return m
}

func (m model) viewDetail() string {
	a, ok := m.current()
	if !ok {
		return renderPage("ACCOUNT", "", "esc: back")
	}
	return renderPage(strings.ToUpper(a.AccountName), m.detailBody(a)+m.viewMessages(), detailHotKeys)
}

func (m model) detailBody(a models.Account) string {
	now := m.now()
	var b strings.Builder
	line := func(label, value string) {
		fmt.Fprintf(&b, "%-22s %s\n", label+":", value)
	}

	line("Type", string(a.Type))
	line("Account number", a.AccountNumber)
	if a.CurrentCardNumber != nil && strings.TrimSpace(*a.CurrentCardNumber) != "" {
		if c, ok := card.Identify(*a.CurrentCardNumber); ok {
			line("Card", fmt.Sprintf("%s  %s", c.Formatted, c.Brand))
		} else {
			line("Card", *a.CurrentCardNumber)
		}
	}

	b.WriteString("\n")
	line("Current balance", finance.FormatMoney(a.CurrentBalance))
	if a.CreditLimit != nil {
		line("Credit limit", finance.FormatMoney(*a.CreditLimit))
		line("Available credit", moneyOrDash(finance.AvailableCredit(a.CreditLimit, a.CurrentBalance)))
	}
	if a.InterestRateAPR != nil {
		line("APR", finance.FormatPercent(*a.InterestRateAPR))
	} else {
		line("APR", "-")
	}
	line("Open date", openDateLabel(a.OpenDate, now))
	line("Service fee", serviceFeeLabel(a))

	b.WriteString("\n")
	if a.ActualLastMinPayment != nil {
		line("Minimum payment", finance.FormatMoney(*a.ActualLastMinPayment)+" (actual)")
	} else {
		line("Minimum payment", finance.FormatMoney(finance.EstimateMinimumPayment(a.CurrentBalance))+" (estimated)")
	}
	line("Payoff", payoffDetail(payoffFor(a, now)))

	b.WriteString("\n")
	line("Login URL", valueOrDash(a.LoginURL))
	line("Username", valueOrDash(a.Username))
	line("Password", m.passwordLabel(a))

	if a.Notes != nil && strings.TrimSpace(*a.Notes) != "" {
		b.WriteString("\nNotes:\n")
		for _, l := range strings.Split(*a.Notes, "\n") {
			b.WriteString("  " + l + "\n")
		}
	}

	b.WriteString("\n")
	line("Created", a.CreatedAt)
	line("Updated", a.UpdatedAt)

	return strings.TrimRight(b.String(), "\n")
}

func (m model) passwordLabel(a models.Account) string {
	switch {
	case !a.HasPassword():
		return "-"
	case m.revealedID == a.ID:
		return m.revealed
	case !m.session.Status().IsUnlocked():
		return "•••••••• (unlock the vault to view)"
	default:
		return "••••••••"
	}
}

func openDateLabel(openDate *string, now time.Time) string {
	if openDate == nil || strings.TrimSpace(*openDate) == "" {
		return "-"
	}
	if age, ok := finance.OpenDateAgeLabel(*openDate, now); ok {
		return fmt.Sprintf("%s (%s)", *openDate, age)
	}
	return *openDate
}

func serviceFeeLabel(a models.Account) string {
	if a.ServiceFeeAmount == nil {
		return "-"
	}
	freq := models.Monthly
	if a.ServiceFeeFrequency != nil {
		freq = *a.ServiceFeeFrequency
	}
	label := fmt.Sprintf("%s %s", finance.FormatMoney(*a.ServiceFeeAmount), strings.ToLower(string(freq)))
	if freq == models.Yearly {
		label += fmt.Sprintf(" (%s / month)", finance.FormatMoney(finance.EffectiveMonthlyServiceFee(a)))
	}
	return label
}

func payoffDetail(p finance.Payoff) string {
	switch p.Kind {
	case finance.PayoffEstimate:
		label := fmt.Sprintf("%d months, by %s", p.Months, p.PayoffDate.Format("Jan 2006"))
		if p.TotalInterest > 0 {
			label += fmt.Sprintf(". Total interest ~ %s", finance.FormatMoney(p.TotalInterest))
		}
		return label
	case finance.PayoffNever:
		return p.Reason
	default:
		return "-"
	}
}
