// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-finance-keeper/internal/app"
	"github.com/MKhiriev/go-finance-keeper/internal/service"
	"github.com/MKhiriev/go-finance-keeper/models"
)

func TestForm_CreateAccount(t *testing.T) {
	m, d := newTestModel(t)
	m = loaded(t, m, d, testAccounts())

	m, _ = press(t, m, "n")
	require.Equal(t, pageForm, m.page)
	assert.Contains(t, m.View(), "NEW ACCOUNT")

	m, cmd := press(t, m, "ctrl+s")
	assert.Nil(t, cmd)
	assert.Equal(t, app.MsgMissingRequiredFields, m.form.err)

	m = typeText(t, m, "Amex Gold")
	m, _ = press(t, m, "tab")
	m, _ = press(t, m, "right")
	assert.Equal(t, models.Service, m.form.accountType)
	m, _ = press(t, m, "left")
	m, _ = press(t, m, "left")
	assert.Equal(t, models.Other, m.form.accountType)
	m, _ = press(t, m, "tab")
	m = typeText(t, m, "9001")
	m.form.inputs[fieldBalance].SetValue("50")

	m, cmd = press(t, m, "ctrl+s")
	require.NotNil(t, cmd)
	assert.True(t, m.form.saving)

	created := models.Account{ID: "a-9", AccountName: "Amex Gold", Type: models.Other, AccountNumber: "9001", CurrentBalance: 50}
	d.accounts.EXPECT().Create(gomock.Any(), gomock.Any(), "").DoAndReturn(
		func(_ context.Context, draft models.AccountDraft, _ string) (models.Account, error) {
			assert.Equal(t, "Amex Gold", draft.AccountName)
			assert.Equal(t, models.Other, draft.Type)
			assert.Equal(t, "9001", draft.AccountNumber)
			assert.Equal(t, "50", draft.CurrentBalance)
			assert.Equal(t, models.Monthly, draft.ServiceFeeFrequency)
			return created, nil
		})
	m, cmd = run(t, m, cmd)

	assert.Equal(t, pageDetail, m.page)
	assert.Equal(t, "Account created.", m.status)

	d.accounts.EXPECT().List(gomock.Any(), models.AccountFilter{}).Return(append([]models.Account{created}, testAccounts()...), nil)
	m, _ = run(t, m, cmd)

	a, ok := m.current()
	require.True(t, ok)
	assert.Equal(t, "a-9", a.ID)
	assert.Contains(t, m.View(), "AMEX GOLD")
}

func TestForm_SavedAccountHiddenByFilter(t *testing.T) {
	m, d := newTestModel(t)
	m = loaded(t, m, d, testAccounts())
	m.page = pageDetail
	m.selectID = "a-9"

	next, _ := m.Update(accountsLoadedMsg{accounts: testAccounts()})
	m = next.(model)

	assert.Equal(t, pageList, m.page)
	assert.Empty(t, m.selectID)
}

func TestForm_EditAccount(t *testing.T) {
	m, d := newTestModel(t)
	m = loaded(t, m, d, testAccounts())

	m, _ = press(t, m, "e")
	require.Equal(t, pageForm, m.page)
	assert.Equal(t, "a-1", m.form.id)
	assert.Equal(t, "Sapphire Visa", m.form.inputs[fieldName].Value())
	assert.Equal(t, "24.99", m.form.inputs[fieldAPR].Value())
	assert.Contains(t, m.View(), "leave blank to keep the saved password")

	m.form.inputs[fieldBalance].SetValue("900")
	m.form.inputs[fieldPassword].SetValue("new-secret")
	assert.Contains(t, m.View(), app.MsgUnlockBeforeSavingPassword)

	m, cmd := press(t, m, "ctrl+s")
	d.accounts.EXPECT().Update(gomock.Any(), "a-1", gomock.Any(), "new-secret").
		Return(models.Account{}, fmt.Errorf("update: %w", service.ErrPasswordNotSaved))
	m, _ = run(t, m, cmd)

	assert.Equal(t, pageForm, m.page)
	assert.False(t, m.form.saving)
	assert.Equal(t, app.MsgUnlockBeforeSavingPassword, m.form.err)

	m, _ = press(t, m, "esc")
	assert.Equal(t, pageDetail, m.page)
}

func TestForm_FocusWraps(t *testing.T) {
	f := newForm(nil, func() time.Time { return fixedNow })
	f.move(-1)
	assert.Equal(t, fieldNotes, f.focus)
	f.move(1)
	assert.Equal(t, fieldName, f.focus)
	assert.True(t, f.inputs[fieldName].Focused())
}

func TestForm_Hints(t *testing.T) {
	f := newForm(nil, func() time.Time { return fixedNow })
	f.inputs[fieldCardNumber].SetValue("4111111111111111")
	f.inputs[fieldBalance].SetValue("1000")
	f.inputs[fieldCreditLimit].SetValue("1500")
	f.inputs[fieldOpenDate].SetValue("2025-01-31")
	f.inputs[fieldFeeAmount].SetValue("120")
	f.frequency = models.Yearly

	assert.Equal(t, "Visa  4111 1111 1111 1111", f.hint(fieldCardNumber, false))
	assert.Equal(t, "available $500.00", f.hint(fieldCreditLimit, false))
	assert.Equal(t, "1 year", f.hint(fieldOpenDate, false))
	assert.Equal(t, "$10.00 / month", f.hint(fieldFeeFrequency, false))
	assert.Equal(t, "estimated $25.00", f.hint(fieldMinPayment, false))
	assert.Empty(t, f.hint(fieldPassword, false))

	f.inputs[fieldPassword].SetValue("x")
	assert.Equal(t, app.MsgUnlockBeforeSavingPassword, f.hint(fieldPassword, false))
	assert.Empty(t, f.hint(fieldPassword, true))
}

func TestCycleValue(t *testing.T) {
	values := []string{"a", "b", "c"}
	assert.Equal(t, "b", cycleValue(values, "a", 1))
	assert.Equal(t, "c", cycleValue(values, "a", -1))
	assert.Equal(t, "a", cycleValue(values, "c", 1))
	assert.Equal(t, "b", cycleValue(values, "zzz", 1))
}
