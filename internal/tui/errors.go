// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/go-finance-keeper/internal/logger"
	"github.com/MKhiriev/go-finance-keeper/internal/service"
)

// userError logs err and returns the message shown in the status line.
func userError(ctx context.Context, action string, err error) string {
	logger.FromContext(ctx).Err(err).Str("func", "tui.userError").Str("action", action).Send()
	return service.UserMessage(err)
}
