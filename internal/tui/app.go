// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-finance-keeper/internal/service"
	"github.com/MKhiriev/go-finance-keeper/internal/vault"
	"github.com/MKhiriev/go-finance-keeper/models"
)

type page int

const (
	pageList page = iota
	pageDetail
	pageForm
	pageConfirmDelete
	pageOverview
)

// model is the single bubbletea model of the keeper. Pages share the
// loaded accounts and the vault bar; each page has its own update and view.
type model struct {
	ctx       context.Context
	services  *service.Services
	session   vault.Session
	buildInfo models.AppBuildInfo
	now       func() time.Time
	copy      func(string) error

	page          page
	showBuildInfo bool

	// vault bar
	vaultInput   textinput.Model
	vaultFocused bool
	unlocking    bool

	// list
	accounts      []models.Account
	idx           int
	loading       bool
	filter        models.AccountFilter
	search        textinput.Model
	searchFocused bool

	// selectID moves the cursor to this account after the next reload
	selectID string

	// detail
	revealedID string
	revealed   string

	form     formModel
	overview models.Overview

	status string
	errMsg string
}

func newModel(ctx context.Context, services *service.Services, session vault.Session, buildInfo models.AppBuildInfo) model {
	vaultInput := textinput.New()
	vaultInput.Placeholder = "Vault password"
	vaultInput.EchoMode = textinput.EchoPassword
	vaultInput.EchoCharacter = '*'
	vaultInput.Width = 24

	search := textinput.New()
	search.Placeholder = "name, number or type"
	search.Width = 30

	return model{
		ctx:        ctx,
		services:   services,
		session:    session,
		buildInfo:  buildInfo,
		now:        time.Now,
		copy:       clipboard.WriteAll,
		vaultInput: vaultInput,
		search:     search,
		loading:    true,
	}
}

func (m model) Init() tea.Cmd {
	return m.cmdLoadAccounts()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case accountsLoadedMsg:
		return m.onAccountsLoaded(msg), nil
	case unlockDoneMsg:
		return m.onUnlockDone(msg), nil
	case accountSavedMsg:
		return m.onAccountSaved(msg)
	case accountDeletedMsg:
		return m.onAccountDeleted(msg)
	case passwordRevealedMsg:
		return m.onPasswordRevealed(msg), nil
	case overviewLoadedMsg:
		return m.onOverviewLoaded(msg), nil
	case vaultLockedMsg:
		m.hidePassword()
		m.status = "Vault locked after inactivity."
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m.updateInputs(msg)
}

func (m model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.forceQuit) {
		return m, tea.Quit
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc, keys.info) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	if m.vaultFocused {
		return m.updateVaultBar(msg)
	}

	switch m.page {
	case pageDetail:
		return m.updateDetail(msg)
	case pageForm:
		return m.updateForm(msg)
	case pageConfirmDelete:
		return m.updateConfirm(msg)
	case pageOverview:
		return m.updateOverview(msg)
	default:
		return m.updateList(msg)
	}
}

// updateInputs forwards non-key messages (cursor blink) to the focused
// text input.
func (m model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.vaultFocused:
		m.vaultInput, cmd = m.vaultInput.Update(msg)
	case m.page == pageForm:
		m.form, cmd = m.form.update(msg)
	case m.searchFocused:
		m.search, cmd = m.search.Update(msg)
	}
	return m, cmd
}

func (m model) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}

	var body string
	switch m.page {
	case pageDetail:
		body = m.viewDetail()
	case pageForm:
		body = m.viewForm()
	case pageConfirmDelete:
		body = m.viewConfirm()
	case pageOverview:
		body = m.viewOverview()
	default:
		body = m.viewList()
	}

	return m.viewVaultBar() + "\n\n" + body
}

// current returns the account under the list cursor.
func (m model) current() (models.Account, bool) {
	if m.idx < 0 || m.idx >= len(m.accounts) {
		return models.Account{}, false
	}
	return m.accounts[m.idx], true
}

func (m *model) setError(action string, err error) {
	m.status = ""
	m.errMsg = userError(m.ctx, action, err)
}

func (m *model) setStatus(s string) {
	m.status = s
	m.errMsg = ""
}

func (m *model) hidePassword() {
	m.revealedID = ""
	m.revealed = ""
}
