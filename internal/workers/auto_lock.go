// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-finance-keeper/internal/logger"
	"github.com/MKhiriev/go-finance-keeper/internal/vault"
)

const defaultCheckInterval = 15 * time.Second

// AutoLockWorker locks an unlocked vault session once it has been idle for
// the configured duration. Unlock, encrypt and decrypt reset the idle clock.
type AutoLockWorker struct {
	session  vault.Session
	after    time.Duration
	interval time.Duration
	onLock   func()
	now      func() time.Time

	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewAutoLockWorker creates an idle worker; nothing runs until Start. A
// non-positive interval defaults to 15 seconds.
func NewAutoLockWorker(session vault.Session, after, interval time.Duration, onLock func(), logger *logger.Logger) *AutoLockWorker {
	if interval <= 0 {
		interval = defaultCheckInterval
	}
	return &AutoLockWorker{
		session:  session,
		after:    after,
		interval: interval,
		onLock:   onLock,
		now:      time.Now,
		logger:   logger,
	}
}

// Start stops any previous run and checks the idle clock every interval.
func (w *AutoLockWorker) Start(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	w.logger.Debug().Dur("after", w.after).Dur("interval", w.interval).Msg("auto-lock worker started")

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				w.check()
			}
		}
	}()
}

func (w *AutoLockWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

// check locks the session when it is unlocked and idle for at least after.
// It reports whether it locked.
func (w *AutoLockWorker) check() bool {
	if w.after <= 0 || !w.session.Status().IsUnlocked() {
		return false
	}

	idleSince := w.session.IdleSince()
	if idleSince.IsZero() {
		return false
	}

	idle := w.now().Sub(idleSince)
	if idle < w.after {
		return false
	}

	w.session.Lock()
	w.logger.Info().Str("func", "*AutoLockWorker.check").Dur("idle", idle).Msg("vault auto-locked")
	if w.onLock != nil {
		w.onLock()
	}
	return true
}
