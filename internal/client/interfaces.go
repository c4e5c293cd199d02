// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// userInterface is the interactive front end driven by [App.Run].
type userInterface interface {
	Run(ctx context.Context) error
	// NotifyLocked is called after the session was locked in the background.
	NotifyLocked()
}
