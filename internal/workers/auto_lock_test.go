// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-finance-keeper/internal/logger"
	"github.com/MKhiriev/go-finance-keeper/internal/mock"
	"github.com/MKhiriev/go-finance-keeper/internal/vault"
)

var base = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func TestAutoLockWorker_Check(t *testing.T) {
	tests := []struct {
		name      string
		status    vault.Status
		idleSince time.Time
		now       time.Time
		wantLock  bool
	}{
		{
			name:   "locked session is ignored",
			status: vault.Status{State: vault.Locked},
			now:    base.Add(time.Hour),
		},
		{
			name:      "recent activity keeps it open",
			status:    vault.Status{State: vault.Unlocked},
			idleSince: base,
			now:       base.Add(4 * time.Minute),
		},
		{
			name:      "idle exactly the limit locks",
			status:    vault.Status{State: vault.Unlocked},
			idleSince: base,
			now:       base.Add(5 * time.Minute),
			wantLock:  true,
		},
		{
			name:      "long idle locks",
			status:    vault.Status{State: vault.Unlocked},
			idleSince: base,
			now:       base.Add(time.Hour),
			wantLock:  true,
		},
		{
			name:   "zero idle clock is ignored",
			status: vault.Status{State: vault.Unlocked},
			now:    base.Add(time.Hour),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			session := mock.NewMockSession(ctrl)
			session.EXPECT().Status().Return(tt.status)
			if tt.status.IsUnlocked() {
				session.EXPECT().IdleSince().Return(tt.idleSince)
			}
			if tt.wantLock {
				session.EXPECT().Lock()
			}

			notified := 0
			w := NewAutoLockWorker(session, 5*time.Minute, time.Second, func() { notified++ }, logger.Nop())
			w.now = func() time.Time { return tt.now }

			assert.Equal(t, tt.wantLock, w.check())
			if tt.wantLock {
				assert.Equal(t, 1, notified)
			} else {
				assert.Zero(t, notified)
			}
		})
	}
}

func TestAutoLockWorker_LocksInBackground(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mock.NewMockSession(ctrl)

	var locked atomic.Bool
	session.EXPECT().Status().DoAndReturn(func() vault.Status {
		if locked.Load() {
			return vault.Status{State: vault.Locked}
		}
		return vault.Status{State: vault.Unlocked}
	}).AnyTimes()
	session.EXPECT().IdleSince().Return(time.Now().Add(-time.Hour)).AnyTimes()
	session.EXPECT().Lock().Do(func() { locked.Store(true) }).Times(1)

	lockedCh := make(chan struct{}, 1)
	w := NewAutoLockWorker(session, time.Minute, 10*time.Millisecond, func() { lockedCh <- struct{}{} }, logger.Nop())
	w.Start(context.Background())
	defer w.Stop()

	select {
	case <-lockedCh:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not lock the idle session")
	}
}

func TestAutoLockWorker_StopIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mock.NewMockSession(ctrl)
	session.EXPECT().Status().Return(vault.Status{State: vault.Locked}).AnyTimes()

	w := NewAutoLockWorker(session, time.Minute, 5*time.Millisecond, nil, logger.Nop())
	w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	w.Start(ctx)
	w.Start(ctx)
	cancel()
	w.Stop()
	w.Stop()
}

func TestNewAutoLockWorker_DefaultInterval(t *testing.T) {
	w := NewAutoLockWorker(nil, time.Minute, 0, nil, logger.Nop())
	assert.Equal(t, defaultCheckInterval, w.interval)
}
