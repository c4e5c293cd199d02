// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-finance-keeper/internal/app"
	"github.com/MKhiriev/go-finance-keeper/internal/card"
	"github.com/MKhiriev/go-finance-keeper/internal/finance"
	"github.com/MKhiriev/go-finance-keeper/models"
)

const formHotKeys = "tab/↓: next │ shift+tab/↑: prev │ ←/→: change choice │ ctrl+s: save │ esc: cancel"

type formField int

const (
	fieldName formField = iota
	fieldType
	fieldNumber
	fieldCardNumber
	fieldCreditLimit
	fieldOpenDate
	fieldAPR
	fieldFeeAmount
	fieldFeeFrequency
	fieldBalance
	fieldMinPayment
	fieldLoginURL
	fieldUsername
	fieldPassword
	fieldNotes
	fieldCount
)

var fieldLabels = [fieldCount]string{
	fieldName:         "Account name *",
	fieldType:         "Type *",
	fieldNumber:       "Account number *",
	fieldCardNumber:   "Card number",
	fieldCreditLimit:  "Credit limit",
	fieldOpenDate:     "Open date",
	fieldAPR:          "APR %",
	fieldFeeAmount:    "Service fee",
	fieldFeeFrequency: "Fee frequency",
	fieldBalance:      "Current balance *",
	fieldMinPayment:   "Last min payment",
	fieldLoginURL:     "Login URL",
	fieldUsername:     "Username",
	fieldPassword:     "Password",
	fieldNotes:        "Notes",
}

// formModel edits one account. Type and fee frequency are choices cycled
// with the arrow keys; every other field is a text input.
type formModel struct {
	id          string
	hasPassword bool
	inputs      [fieldCount]textinput.Model
	accountType models.AccountType
	frequency   models.ServiceFeeFrequency
	focus       formField
	saving      bool
	err         string
	now         func() time.Time
}

// newForm opens a form for a new account when a is nil and for editing a
// otherwise.
func newForm(a *models.Account, now func() time.Time) formModel {
	draft := models.EmptyDraft()
	f := formModel{now: now}
	if a != nil {
		draft = models.DraftFromAccount(*a)
		f.id = a.ID
		f.hasPassword = a.HasPassword()
	}
	f.accountType = draft.Type
	f.frequency = draft.ServiceFeeFrequency

	values := [fieldCount]string{
		fieldName:        draft.AccountName,
		fieldNumber:      draft.AccountNumber,
		fieldCardNumber:  draft.CurrentCardNumber,
		fieldCreditLimit: draft.CreditLimit,
		fieldOpenDate:    draft.OpenDate,
		fieldAPR:         draft.InterestRateAPR,
		fieldFeeAmount:   draft.ServiceFeeAmount,
		fieldBalance:     draft.CurrentBalance,
		fieldMinPayment:  draft.ActualLastMinPayment,
		fieldLoginURL:    draft.LoginURL,
		fieldUsername:    draft.Username,
		fieldNotes:       draft.Notes,
	}

	for i := range f.inputs {
		in := textinput.New()
		in.Width = 40
		in.CharLimit = 256
		in.SetValue(values[i])
		f.inputs[i] = in
	}
	f.inputs[fieldOpenDate].Placeholder = "YYYY-MM-DD"
	f.inputs[fieldBalance].Placeholder = "0"
	f.inputs[fieldMinPayment].Placeholder = "leave blank to estimate"
	f.inputs[fieldNotes].CharLimit = 2000
	f.inputs[fieldPassword].EchoMode = textinput.EchoPassword
	f.inputs[fieldPassword].EchoCharacter = '*'
	if f.hasPassword {
		f.inputs[fieldPassword].Placeholder = "leave blank to keep the saved password"
	} else {
		f.inputs[fieldPassword].Placeholder = "optional"
	}

	f.inputs[fieldName].Focus()
	return f
}

func (f formModel) init() tea.Cmd {
	return textinput.Blink
}

func isChoice(field formField) bool {
	return field == fieldType || field == fieldFeeFrequency
}

func (f *formModel) move(delta int) {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + formField(delta) + fieldCount) % fieldCount
	if !isChoice(f.focus) {
		f.inputs[f.focus].Focus()
	}
}

func (f *formModel) cycle(delta int) {
	switch f.focus {
	case fieldType:
		f.accountType = cycleValue(models.AccountTypes, f.accountType, delta)
	case fieldFeeFrequency:
		f.frequency = cycleValue([]models.ServiceFeeFrequency{models.Monthly, models.Yearly}, f.frequency, delta)
	}
}

func cycleValue[T comparable](values []T, current T, delta int) T {
	idx := 0
	for i, v := range values {
		if v == current {
			idx = i
			break
		}
	}
	n := len(values)
	return values[((idx+delta)%n+n)%n]
}

// update forwards msg to the focused text input.
func (f formModel) update(msg tea.Msg) (formModel, tea.Cmd) {
	if isChoice(f.focus) {
		return f, nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f formModel) draft() models.AccountDraft {
	value := func(field formField) string { return f.inputs[field].Value() }
	return models.AccountDraft{
		AccountName:          value(fieldName),
		Type:                 f.accountType,
		AccountNumber:        value(fieldNumber),
		CurrentCardNumber:    value(fieldCardNumber),
		CreditLimit:          value(fieldCreditLimit),
		OpenDate:             value(fieldOpenDate),
		InterestRateAPR:      value(fieldAPR),
		ServiceFeeAmount:     value(fieldFeeAmount),
		ServiceFeeFrequency:  f.frequency,
		CurrentBalance:       value(fieldBalance),
		ActualLastMinPayment: value(fieldMinPayment),
		LoginURL:             value(fieldLoginURL),
		Username:             value(fieldUsername),
		Notes:                value(fieldNotes),
	}
}

func (f formModel) password() string {
	return f.inputs[fieldPassword].Value()
}

func (m model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.page = pageList
		if m.form.id != "" {
			m.page = pageDetail
		}
		m.form = formModel{}
		return m, nil
	case key.Matches(msg, keys.save):
		if m.form.saving {
			return m, nil
		}
		draft := m.form.draft()
		if draft.MissingRequired() {
			m.form.err = app.MsgMissingRequiredFields
			return m, nil
		}
		m.form.err = ""
		m.form.saving = true
		return m, m.cmdSave(m.form.id, draft, m.form.password())
	case key.Matches(msg, keys.tab), key.Matches(msg, keys.enter):
		m.form.move(1)
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.form.move(-1)
		return m, nil
	case isChoice(m.form.focus) && key.Matches(msg, keys.left):
		m.form.cycle(-1)
		return m, nil
	case isChoice(m.form.focus) && (key.Matches(msg, keys.right) || msg.String() == " "):
		m.form.cycle(1)
		return m, nil
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m model) onAccountSaved(msg accountSavedMsg) (tea.Model, tea.Cmd) {
	m.form.saving = false
	if msg.err != nil {
		m.form.err = userError(m.ctx, "save account", msg.err)
		return m, nil
	}

	if msg.created {
		m.setStatus("Account created.")
	} else {
		m.setStatus("Account saved.")
	}
	m.form = formModel{}
	m.hidePassword()
	m.selectID = msg.account.ID
	m.page = pageDetail
	m.loading = true
	return m, m.cmdLoadAccounts()
}

func (m model) viewForm() string {
	f := m.form
	title := "NEW ACCOUNT"
	if f.id != "" {
		title = "EDIT ACCOUNT"
	}

	var b strings.Builder
	for i := formField(0); i < fieldCount; i++ {
		cursor := "  "
		if i == f.focus {
			cursor = "> "
		}
		var value string
		switch i {
		case fieldType:
			value = choiceView(string(f.accountType), i == f.focus)
		case fieldFeeFrequency:
			value = choiceView(string(f.frequency), i == f.focus)
		default:
			value = f.inputs[i].View()
		}
		fmt.Fprintf(&b, "%s%-18s %s", cursor, fieldLabels[i], value)
		if hint := f.hint(i, m.session.Status().IsUnlocked()); hint != "" {
			b.WriteString("  " + helpStyle.Render(hint))
		}
		b.WriteString("\n")
	}

	if f.saving {
		b.WriteString("\nSaving...\n")
	}
	if f.err != "" {
		b.WriteString("\n" + errorStyle.Render(f.err) + "\n")
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), formHotKeys)
}

func choiceView(value string, focused bool) string {
	if focused {
		return selectedStyle.Render("‹ " + value + " ›")
	}
	return value
}

// hint is the live helper text printed next to a field.
func (f formModel) hint(field formField, unlocked bool) string {
	value := strings.TrimSpace(f.inputs[field].Value())

	switch field {
	case fieldCardNumber:
		if value == "" {
			return ""
		}
		if c, ok := card.Identify(value); ok {
			return fmt.Sprintf("%s  %s", c.Brand, c.Formatted)
		}
		if brand, ok := card.DetectBrand(value); ok {
			return string(brand) + "?"
		}
	case fieldCreditLimit:
		balance := models.ParseOptionalNumber(f.inputs[fieldBalance].Value())
		limit := models.ParseOptionalNumber(value)
		if limit != nil && balance != nil {
			return "available " + finance.FormatMoney(*finance.AvailableCredit(limit, *balance))
		}
	case fieldOpenDate:
		if age, ok := finance.OpenDateAgeLabel(value, f.now()); ok {
			return age
		}
	case fieldFeeFrequency:
		fee := models.ParseOptionalNumber(f.inputs[fieldFeeAmount].Value())
		if fee != nil && f.frequency == models.Yearly {
			return finance.FormatMoney(*fee/12) + " / month"
		}
	case fieldMinPayment:
		if value != "" {
			return ""
		}
		if balance := models.ParseOptionalNumber(f.inputs[fieldBalance].Value()); balance != nil {
			return "estimated " + finance.FormatMoney(finance.EstimateMinimumPayment(*balance))
		}
	case fieldPassword:
		if value != "" && !unlocked {
			return app.MsgUnlockBeforeSavingPassword
		}
	}
	return ""
}
