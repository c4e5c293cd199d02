// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound HTTP integration of the client: it
// downloads backup documents for import from a URL.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrNotFound] for
// 404).
package adapter

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// BackupFetcher downloads a backup document.
type BackupFetcher interface {
	// FetchBackup GETs rawURL (http or https) and returns the response body.
	// Non-2xx responses are mapped to the sentinels in this package; bodies
	// larger than [MaxBackupSize] fail with [ErrBackupTooLarge].
	FetchBackup(ctx context.Context, rawURL string) ([]byte, error)
}
