// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-finance-keeper/internal/finance"
	"github.com/MKhiriev/go-finance-keeper/models"
)

const uiDivider = "────────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		for _, line := range strings.Split(data, "\n") {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("ctrl+c: quit"))

	return b.String()
}

func valueOrDash(v *string) string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return "-"
	}
	return *v
}

// fitText truncates v to max runes, marking the cut with "...".
func fitText(v string, max int) string {
	runes := []rune(v)
	if max <= 0 || len(runes) <= max {
		return v
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

func moneyOrDash(v *float64) string {
	if v == nil {
		return "-"
	}
	return finance.FormatMoney(*v)
}

func minPaymentLabel(a models.Account) string {
	if a.ActualLastMinPayment != nil {
		return finance.FormatMoney(*a.ActualLastMinPayment) + " actual"
	}
	return finance.FormatMoney(finance.EstimateMinimumPayment(a.CurrentBalance)) + " est."
}

// creditLabel renders "available / limit" for accounts with a limit.
func creditLabel(a models.Account) string {
	available := finance.AvailableCredit(a.CreditLimit, a.CurrentBalance)
	if available == nil {
		return "-"
	}
	return finance.FormatMoney(*available) + " / " + finance.FormatMoney(*a.CreditLimit)
}

func payoffFor(a models.Account, now time.Time) finance.Payoff {
	return finance.EstimatePayoff(a.CurrentBalance, a.InterestRateAPR, finance.MinimumDue(a), now)
}

func payoffLabel(a models.Account, now time.Time) string {
	p := payoffFor(a, now)
	switch p.Kind {
	case finance.PayoffEstimate:
		return fmt.Sprintf("%d mo", p.Months)
	case finance.PayoffNever:
		return p.Reason
	default:
		return "-"
	}
}
