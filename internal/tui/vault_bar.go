// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-finance-keeper/internal/app"
)

func (m model) focusVault() (model, tea.Cmd) {
	if m.session.Status().IsUnlocked() {
		m.setStatus("Vault is already unlocked.")
		return m, nil
	}
	m.searchFocused = false
	m.search.Blur()
	m.vaultFocused = true
	cmd := m.vaultInput.Focus()
	return m, cmd
}

func (m model) lockVault() model {
	m.session.Lock()
	m.vaultInput.Reset()
	m.hidePassword()
	m.setStatus("Vault locked.")
	return m
}

// updateVaultBar handles keys while the password input has focus. Enter is
// ignored while an unlock is in flight.
func (m model) updateVaultBar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.vaultFocused = false
		m.vaultInput.Blur()
		m.vaultInput.Reset()
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.unlocking {
			return m, nil
		}
		password := m.vaultInput.Value()
		if password == "" {
			m.errMsg = app.MsgEmptyVaultPassword
			return m, nil
		}
		m.unlocking = true
		m.errMsg = ""
		m.status = "Unlocking..."
		return m, m.cmdUnlock(password)
	}

	var cmd tea.Cmd
	m.vaultInput, cmd = m.vaultInput.Update(msg)
	return m, cmd
}

func (m model) onUnlockDone(msg unlockDoneMsg) model {
	m.unlocking = false
	m.vaultInput.Reset()
	if msg.err != nil {
		m.setError("unlock", msg.err)
		if m.session.Status().Err != "" {
			// the vault bar already shows it
			m.errMsg = ""
		}
		return m
	}
	m.vaultFocused = false
	m.vaultInput.Blur()
	m.setStatus("Vault unlocked.")
	return m
}

func (m model) viewVaultBar() string {
	var b strings.Builder

	st := m.session.Status()
	if st.IsUnlocked() {
		b.WriteString(unlockedStyle.Render("[ Vault unlocked ]"))
		b.WriteString("  ")
		b.WriteString(helpStyle.Render("L: lock"))
		return b.String()
	}

	b.WriteString(lockedStyle.Render("[ Vault locked ]"))
	b.WriteString("  ")
	if m.vaultFocused {
		b.WriteString(m.vaultInput.View())
		b.WriteString("  ")
		if m.unlocking {
			b.WriteString(helpStyle.Render("unlocking..."))
		} else {
			b.WriteString(helpStyle.Render("enter: unlock │ esc: cancel"))
		}
	} else {
		b.WriteString(helpStyle.Render("u: unlock (required to view/save account passwords)"))
	}
	if st.Err != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(st.Err))
	}
	return b.String()
}
