// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-finance-keeper/internal/config"
	"github.com/MKhiriev/go-finance-keeper/internal/logger"
	"github.com/MKhiriev/go-finance-keeper/internal/utils"
)

// MaxBackupSize is the largest backup body accepted, in bytes.
const MaxBackupSize = 16 << 20

const backupAccept = "application/json, application/yaml, text/yaml;q=0.9, */*;q=0.5"

type httpBackupFetcher struct {
	client  *utils.HTTPClient
	maxSize int

	logger *logger.Logger
}

// NewHTTPBackupFetcher constructs the resty implementation of
// [BackupFetcher]. Each request is bounded by adapterCfg.RequestTimeout.
func NewHTTPBackupFetcher(adapterCfg config.ClientAdapter, logger *logger.Logger) BackupFetcher {
	client := utils.NewHTTPClient(adapterCfg.RequestTimeout)
	client.SetHeader("Accept", backupAccept)

	return &httpBackupFetcher{client: client, maxSize: MaxBackupSize, logger: logger}
}

// FetchBackup implements [BackupFetcher].
func (h *httpBackupFetcher) FetchBackup(ctx context.Context, rawURL string) ([]byte, error) {
	log := logger.FromContext(ctx)

	target, err := normalizeBackupURL(rawURL)
	if err != nil {
		return nil, err
	}

	resp, err := h.client.R().
		SetContext(ctx).
		Get(target)
	if err != nil {
		log.Err(err).Str("func", "httpBackupFetcher.FetchBackup").Str("host", hostOf(target)).Msg("backup request failed")
		return nil, fmt.Errorf("backup request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "httpBackupFetcher.FetchBackup").Int("status", resp.StatusCode()).Msg("backup request rejected")
		return nil, err
	}

	body := resp.Body()
	if len(body) > h.maxSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrBackupTooLarge, len(body))
	}

	log.Info().Str("func", "httpBackupFetcher.FetchBackup").Str("host", hostOf(target)).Int("bytes", len(body)).Msg("backup downloaded")
	return body, nil
}

func normalizeBackupURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidURL)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w: scheme must be http or https", ErrInvalidURL)
	}
	if u.Host == "" {
		return "", fmt.Errorf("%w: missing host", ErrInvalidURL)
	}

	return u.String(), nil
}

// hostOf keeps credentials and query strings out of the log.
func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}

// IsURL reports whether s looks like an http(s) URL rather than a file path.
func IsURL(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
