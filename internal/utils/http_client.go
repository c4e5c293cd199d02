// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// UserAgent is sent with every outbound request.
const UserAgent = "go-finance-keeper"

const maxRedirects = 5

// HTTPClient embeds *resty.Client so callers get its full request API.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client whose requests are bounded by
// timeout and follow at most five redirects. A non-positive timeout leaves
// requests unbounded.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetHeader("User-Agent", UserAgent).
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(maxRedirects))
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &HTTPClient{Client: client}
}
