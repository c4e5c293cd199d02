// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client wires the local keeper: the SQLite store, the vault
// session, the services, the auto-lock worker and the terminal UI.
//
// The CLI subcommands reuse the same wiring through [App.Services] and
// [App.Session] without starting the UI.
package client
