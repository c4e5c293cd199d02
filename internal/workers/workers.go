// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"github.com/MKhiriev/go-finance-keeper/internal/config"
	"github.com/MKhiriev/go-finance-keeper/internal/logger"
	"github.com/MKhiriev/go-finance-keeper/internal/vault"
)

// Workers starts and stops a set of workers together.
type Workers struct {
	workers []Worker
}

// NewWorkers builds the client workers enabled by cfg. onLock, when not
// nil, is called after the auto-lock worker locks the session.
func NewWorkers(session vault.Session, cfg config.ClientWorkers, onLock func(), logger *logger.Logger) *Workers {
	w := &Workers{}
	if cfg.AutoLockAfter > 0 {
		w.workers = append(w.workers, NewAutoLockWorker(session, cfg.AutoLockAfter, cfg.CheckInterval, onLock, logger))
	}
	return w
}

func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
