// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-finance-keeper/models"

type accountsLoadedMsg struct {
	accounts []models.Account
	err      error
}

type unlockDoneMsg struct {
	err error
}

type accountSavedMsg struct {
	account models.Account
	created bool
	err     error
}

type accountDeletedMsg struct {
	err error
}

type passwordRevealedMsg struct {
	id       string
	password string
	copy     bool
	err      error
}

type overviewLoadedMsg struct {
	overview models.Overview
	err      error
}

// vaultLockedMsg is sent when the auto-lock worker locks the session.
type vaultLockedMsg struct{}
