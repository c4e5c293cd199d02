// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the interactive terminal interface of the keeper:
// the vault bar, the accounts list, account detail and forms, the overview
// page and the build-info popup.
package tui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-finance-keeper/internal/logger"
	"github.com/MKhiriev/go-finance-keeper/internal/service"
	"github.com/MKhiriev/go-finance-keeper/internal/vault"
	"github.com/MKhiriev/go-finance-keeper/models"
)

// TUI runs the bubbletea program over the client services.
type TUI struct {
	services  *service.Services
	session   vault.Session
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	mu      sync.Mutex
	program *tea.Program
}

func New(services *service.Services, session vault.Session, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		services:  services,
		session:   session,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// Run blocks until the user quits or ctx is cancelled. The vault is locked
// on the way out.
func (t *TUI) Run(ctx context.Context) error {
	ctx = t.logger.WithContext(ctx)
	p := tea.NewProgram(newModel(ctx, t.services, t.session, t.buildInfo), tea.WithAltScreen(), tea.WithContext(ctx))

	t.mu.Lock()
	t.program = p
	t.mu.Unlock()

	defer func() {
		t.mu.Lock()
		t.program = nil
		t.mu.Unlock()
		t.session.Lock()
	}()

	_, err := p.Run()
	return err
}

// NotifyLocked tells a running program that the vault was locked behind
// its back, so that revealed passwords are hidden right away.
func (t *TUI) NotifyLocked() {
	t.mu.Lock()
	p := t.program
	t.mu.Unlock()

	if p != nil {
		p.Send(vaultLockedMsg{})
	}
}
