// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-finance-keeper/internal/config"
	"github.com/MKhiriev/go-finance-keeper/internal/handler"
	"github.com/MKhiriev/go-finance-keeper/internal/handler/http"
	"github.com/MKhiriev/go-finance-keeper/internal/logger"
	"github.com/MKhiriev/go-finance-keeper/internal/service"
)

func testConfig(addr string) config.Server {
	return config.Server{HTTPAddress: addr, RequestTimeout: time.Second}
}

func TestNewServer_RequiresHTTPHandler(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, testConfig("127.0.0.1:0"), logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)

	_, err = NewServer(nil, testConfig("127.0.0.1:0"), logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestServer_RunStopsOnContextCancel(t *testing.T) {
	handlers := &handler.Handlers{HTTP: http.NewHandler(&service.Services{}, logger.Nop())}
	srv, err := NewServer(handlers, testConfig("127.0.0.1:0"), logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.(*server).run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
}

func TestServer_RunFailsOnBadAddress(t *testing.T) {
	srv := &server{
		httpServer: newHTTPServer(nil, testConfig("256.0.0.1:1"), logger.Nop()),
		logger:     logger.Nop(),
	}

	err := srv.run(context.Background())
	assert.Error(t, err)
}

func TestServer_RunWithoutHTTP(t *testing.T) {
	srv := &server{logger: logger.Nop()}
	assert.ErrorIs(t, srv.run(context.Background()), errNoServersToRun)
}
