// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient(t *testing.T) {
	client := NewHTTPClient(3 * time.Second)
	require.NotNil(t, client.Client)
	assert.Equal(t, 3*time.Second, client.GetClient().Timeout)

	other := NewHTTPClient(0)
	assert.NotSame(t, client.Client, other.Client)
	assert.Zero(t, other.GetClient().Timeout)
}

func TestHTTPClient_SendsUserAgent(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("User-Agent")
	}))
	defer srv.Close()

	resp, err := NewHTTPClient(time.Second).R().Get(srv.URL)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, UserAgent, got)
}

func TestHTTPClient_StopsAfterTooManyRedirects(t *testing.T) {
	hops := 0
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hops++
		http.Redirect(w, r, fmt.Sprintf("%s/hop/%d", srv.URL, hops), http.StatusFound)
	}))
	defer srv.Close()

	_, err := NewHTTPClient(time.Second).R().Get(srv.URL)
	assert.Error(t, err)
	assert.LessOrEqual(t, hops, maxRedirects+1)
}
