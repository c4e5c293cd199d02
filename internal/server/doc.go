// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the read-only report server.
//
// It owns the HTTP listener lifecycle: startup, signal handling and graceful
// shutdown.
package server
