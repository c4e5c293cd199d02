// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-finance-keeper/internal/finance"
	"github.com/MKhiriev/go-finance-keeper/models"
)

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "Crédit ...", fitText("Crédit Agricole", 10))
	assert.Equal(t, "ab", fitText("abcdef", 2))
	assert.Equal(t, "abc", fitText("abc", 0))
}

func TestValueOrDash(t *testing.T) {
	assert.Equal(t, "-", valueOrDash(nil))
	assert.Equal(t, "-", valueOrDash(ptr("  ")))
	assert.Equal(t, "x", valueOrDash(ptr("x")))
}

func TestPayoffLabel(t *testing.T) {
	assert.Equal(t, "-", payoffLabel(models.Account{}, fixedNow))
	assert.Equal(t, "10 mo", payoffLabel(models.Account{CurrentBalance: 1000, ActualLastMinPayment: ptr(100.0)}, fixedNow))
	assert.Equal(t, finance.ReasonNoPayment, payoffLabel(models.Account{CurrentBalance: 1000, ActualLastMinPayment: ptr(0.0)}, fixedNow))
}

func TestCreditLabel(t *testing.T) {
	assert.Equal(t, "-", creditLabel(models.Account{CurrentBalance: 10}))
	assert.Equal(t, "-$100.00 / $1,000.00", creditLabel(models.Account{CreditLimit: ptr(1000.0), CurrentBalance: 1100}))
}

func TestRenderPage(t *testing.T) {
	page := renderPage("TITLE", "line one\nline two", "x: do")
	assert.Contains(t, page, "TITLE")
	assert.Contains(t, page, "  line one\n  line two\n")
	assert.Contains(t, page, "x: do")
	assert.Contains(t, page, "ctrl+c: quit")

	assert.Contains(t, renderPage("EMPTY", " ", ""), "  -\n")
}
