// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-finance-keeper/internal/app"
	"github.com/MKhiriev/go-finance-keeper/internal/crypto"
	"github.com/MKhiriev/go-finance-keeper/internal/logger"
	"github.com/MKhiriev/go-finance-keeper/internal/mock"
	"github.com/MKhiriev/go-finance-keeper/internal/store"
	"github.com/MKhiriev/go-finance-keeper/internal/vault"
	"github.com/MKhiriev/go-finance-keeper/models"
)

var testEngine = crypto.NewEngineWithIterations(1_000)

func newTestSession(t *testing.T) (vault.Session, *mock.MockVaultCheckRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	checks := mock.NewMockVaultCheckRepository(ctrl)
	return vault.NewSession(testEngine, checks, logger.Nop()), checks
}

func checkBlob(t *testing.T, plaintext, password string) models.EncryptedBlob {
	t.Helper()
	blob, err := testEngine.Encrypt(plaintext, []byte(password))
	require.NoError(t, err)
	return blob
}

func TestSession_StartsLocked(t *testing.T) {
	s, _ := newTestSession(t)

	st := s.Status()
	assert.Equal(t, vault.Locked, st.State)
	assert.Empty(t, st.Err)
	assert.True(t, st.UnlockedAt.IsZero())
	assert.True(t, s.IdleSince().IsZero())

	_, err := s.Encrypt("x")
	assert.ErrorIs(t, err, vault.ErrVaultLocked)
	_, err = s.Decrypt(models.EncryptedBlob{})
	assert.ErrorIs(t, err, vault.ErrVaultLocked)
}

func TestSession_Unlock_BootstrapsCheckRecord(t *testing.T) {
	ctx := context.Background()
	s, checks := newTestSession(t)

	var stored models.EncryptedBlob
	gomock.InOrder(
		checks.EXPECT().GetVaultCheck(gomock.Any()).Return(models.EncryptedBlob{}, store.ErrVaultCheckNotFound),
		checks.EXPECT().CreateVaultCheck(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, blob models.EncryptedBlob) error {
				stored = blob
				return nil
			}),
	)

	require.NoError(t, s.Unlock(ctx, "first password"))
	assert.True(t, s.Status().IsUnlocked())

	plain, err := testEngine.Decrypt(stored, []byte("first password"))
	require.NoError(t, err)
	assert.Equal(t, vault.Sentinel, plain)

	blob, err := s.Encrypt("hunter2")
	require.NoError(t, err)
	got, err := s.Decrypt(blob)
	require.NoError(t, err)
	assert.Equal(t, "hunter2", got)
}

func TestSession_Unlock_ExistingRecord(t *testing.T) {
	ctx := context.Background()
	record := checkBlob(t, vault.Sentinel, "right")

	tests := []struct {
		name     string
		record   models.EncryptedBlob
		password string
		wantErr  error
	}{
		{name: "correct password", record: record, password: "right"},
		{name: "wrong password", record: record, password: "wrong", wantErr: vault.ErrIncorrectVaultPassword},
		{name: "sentinel mismatch", record: checkBlob(t, "something else", "right"), password: "right", wantErr: vault.ErrIncorrectVaultPassword},
		{name: "corrupted record", record: models.EncryptedBlob{Alg: models.AlgAESGCM, Iterations: 1}, password: "right", wantErr: vault.ErrIncorrectVaultPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, checks := newTestSession(t)
			checks.EXPECT().GetVaultCheck(gomock.Any()).Return(tt.record, nil)

			err := s.Unlock(ctx, tt.password)
			st := s.Status()

			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, vault.Unlocked, st.State)
				assert.Empty(t, st.Err)
				assert.False(t, st.UnlockedAt.IsZero())
				return
			}

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, vault.Locked, st.State)
			assert.Equal(t, app.MsgIncorrectVaultPassword, st.Err)
			_, encErr := s.Encrypt("x")
			assert.ErrorIs(t, encErr, vault.ErrVaultLocked)
		})
	}
}

func TestSession_Unlock_EmptyPassword(t *testing.T) {
	s, _ := newTestSession(t)

	err := s.Unlock(context.Background(), "")
	assert.ErrorIs(t, err, vault.ErrEmptyPassword)
	assert.Equal(t, app.MsgEmptyVaultPassword, s.Status().Err)
	assert.False(t, s.Status().IsUnlocked())
}

func TestSession_Unlock_FailureRelocksUnlockedSession(t *testing.T) {
	ctx := context.Background()
	s, checks := newTestSession(t)
	record := checkBlob(t, vault.Sentinel, "right")
	checks.EXPECT().GetVaultCheck(gomock.Any()).Return(record, nil).Times(2)

	require.NoError(t, s.Unlock(ctx, "right"))
	require.True(t, s.Status().IsUnlocked())

	assert.ErrorIs(t, s.Unlock(ctx, "wrong"), vault.ErrIncorrectVaultPassword)
	assert.False(t, s.Status().IsUnlocked())
	_, err := s.Encrypt("x")
	assert.ErrorIs(t, err, vault.ErrVaultLocked)
}

func TestSession_Unlock_CorruptedCheckRecord(t *testing.T) {
	s, checks := newTestSession(t)
	corrupted := fmt.Errorf("%w: vault check: unexpected end of JSON input", store.ErrCorruptedRecord)
	checks.EXPECT().GetVaultCheck(gomock.Any()).Return(models.EncryptedBlob{}, corrupted)

	err := s.Unlock(context.Background(), "pw")
	assert.ErrorIs(t, err, vault.ErrIncorrectVaultPassword)
	assert.ErrorIs(t, err, store.ErrCorruptedRecord)
	assert.Equal(t, app.MsgIncorrectVaultPassword, s.Status().Err)
	assert.False(t, s.Status().IsUnlocked())
}

func TestSession_Unlock_WhitespacePassword(t *testing.T) {
	s, checks := newTestSession(t)
	checks.EXPECT().GetVaultCheck(gomock.Any()).Return(checkBlob(t, vault.Sentinel, "   "), nil)

	require.NoError(t, s.Unlock(context.Background(), "   "))
	assert.True(t, s.Status().IsUnlocked())
}

func TestSession_Unlock_StoreError(t *testing.T) {
	s, checks := newTestSession(t)
	boom := errors.New("disk I/O error")
	checks.EXPECT().GetVaultCheck(gomock.Any()).Return(models.EncryptedBlob{}, boom)

	err := s.Unlock(context.Background(), "pw")
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, app.MsgUnexpectedError, s.Status().Err)
	assert.False(t, s.Status().IsUnlocked())
}

func TestSession_Unlock_LosesInitRace(t *testing.T) {
	winner := checkBlob(t, vault.Sentinel, "winner")

	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{name: "same password verifies", password: "winner"},
		{name: "other password rejected", password: "loser", wantErr: vault.ErrIncorrectVaultPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, checks := newTestSession(t)
			gomock.InOrder(
				checks.EXPECT().GetVaultCheck(gomock.Any()).Return(models.EncryptedBlob{}, store.ErrVaultCheckNotFound),
				checks.EXPECT().CreateVaultCheck(gomock.Any(), gomock.Any()).Return(store.ErrVaultCheckExists),
				checks.EXPECT().GetVaultCheck(gomock.Any()).Return(winner, nil),
			)

			err := s.Unlock(context.Background(), tt.password)
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.True(t, s.Status().IsUnlocked())
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.False(t, s.Status().IsUnlocked())
		})
	}
}

func TestSession_Initialize(t *testing.T) {
	ctx := context.Background()

	t.Run("fresh vault", func(t *testing.T) {
		s, checks := newTestSession(t)
		checks.EXPECT().GetVaultCheck(gomock.Any()).Return(models.EncryptedBlob{}, store.ErrVaultCheckNotFound)
		checks.EXPECT().CreateVaultCheck(gomock.Any(), gomock.Any()).Return(nil)

		require.NoError(t, s.Initialize(ctx, "pw"))
		assert.True(t, s.Status().IsUnlocked())
	})

	t.Run("record exists", func(t *testing.T) {
		s, checks := newTestSession(t)
		checks.EXPECT().GetVaultCheck(gomock.Any()).Return(checkBlob(t, vault.Sentinel, "pw"), nil)

		assert.ErrorIs(t, s.Initialize(ctx, "pw"), vault.ErrVaultAlreadyInitialized)
		assert.Equal(t, app.MsgVaultAlreadyInitialized, s.Status().Err)
		assert.False(t, s.Status().IsUnlocked())
	})

	t.Run("loses race", func(t *testing.T) {
		s, checks := newTestSession(t)
		checks.EXPECT().GetVaultCheck(gomock.Any()).Return(models.EncryptedBlob{}, store.ErrVaultCheckNotFound)
		checks.EXPECT().CreateVaultCheck(gomock.Any(), gomock.Any()).Return(store.ErrVaultCheckExists)

		assert.ErrorIs(t, s.Initialize(ctx, "pw"), vault.ErrVaultAlreadyInitialized)
		assert.False(t, s.Status().IsUnlocked())
	})
}

func TestSession_UnlockExisting(t *testing.T) {
	ctx := context.Background()

	t.Run("no record", func(t *testing.T) {
		s, checks := newTestSession(t)
		checks.EXPECT().GetVaultCheck(gomock.Any()).Return(models.EncryptedBlob{}, store.ErrVaultCheckNotFound)

		assert.ErrorIs(t, s.UnlockExisting(ctx, "pw"), vault.ErrVaultNotInitialized)
		assert.Equal(t, app.MsgVaultNotInitialized, s.Status().Err)
	})

	t.Run("record exists", func(t *testing.T) {
		s, checks := newTestSession(t)
		checks.EXPECT().GetVaultCheck(gomock.Any()).Return(checkBlob(t, vault.Sentinel, "pw"), nil)

		require.NoError(t, s.UnlockExisting(ctx, "pw"))
		assert.True(t, s.Status().IsUnlocked())
	})
}

func TestSession_IsInitialized(t *testing.T) {
	ctx := context.Background()
	s, checks := newTestSession(t)
	boom := errors.New("boom")

	gomock.InOrder(
		checks.EXPECT().GetVaultCheck(gomock.Any()).Return(models.EncryptedBlob{}, store.ErrVaultCheckNotFound),
		checks.EXPECT().GetVaultCheck(gomock.Any()).Return(checkBlob(t, vault.Sentinel, "pw"), nil),
		checks.EXPECT().GetVaultCheck(gomock.Any()).Return(models.EncryptedBlob{}, boom),
	)

	ok, err := s.IsInitialized(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = s.IsInitialized(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = s.IsInitialized(ctx)
	assert.ErrorIs(t, err, boom)
}

func TestSession_LockClearsStateAndError(t *testing.T) {
	ctx := context.Background()
	s, checks := newTestSession(t)
	record := checkBlob(t, vault.Sentinel, "right")
	checks.EXPECT().GetVaultCheck(gomock.Any()).Return(record, nil).Times(2)

	require.Error(t, s.Unlock(ctx, "wrong"))
	require.NotEmpty(t, s.Status().Err)

	s.Lock()
	assert.Empty(t, s.Status().Err)

	require.NoError(t, s.Unlock(ctx, "right"))
	s.Lock()

	st := s.Status()
	assert.Equal(t, vault.Locked, st.State)
	assert.True(t, st.UnlockedAt.IsZero())
	_, err := s.Decrypt(record)
	assert.ErrorIs(t, err, vault.ErrVaultLocked)
}

func TestSession_IdleSinceTracksActivity(t *testing.T) {
	ctx := context.Background()
	s, checks := newTestSession(t)
	checks.EXPECT().GetVaultCheck(gomock.Any()).Return(checkBlob(t, vault.Sentinel, "pw"), nil)

	clock := time.Date(2026, time.October, 18, 9, 0, 0, 0, time.UTC)
	vault.SetClock(s, func() time.Time { return clock })

	require.NoError(t, s.Unlock(ctx, "pw"))
	assert.Equal(t, clock, s.IdleSince())
	assert.Equal(t, clock, s.Status().UnlockedAt)

	clock = clock.Add(5 * time.Minute)
	blob, err := s.Encrypt("a")
	require.NoError(t, err)
	assert.Equal(t, clock, s.IdleSince())

	clock = clock.Add(time.Minute)
	_, err = s.Decrypt(blob)
	require.NoError(t, err)
	assert.Equal(t, clock, s.IdleSince())

	s.Lock()
	assert.True(t, s.IdleSince().IsZero())
}

func TestSession_ConcurrentUnlocks(t *testing.T) {
	ctx := context.Background()
	s, checks := newTestSession(t)
	checks.EXPECT().GetVaultCheck(gomock.Any()).Return(checkBlob(t, vault.Sentinel, "pw"), nil).AnyTimes()

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, s.Unlock(ctx, "pw"))
			_ = s.Status()
		}()
	}
	wg.Wait()

	require.NoError(t, s.Unlock(ctx, "pw"))
	assert.True(t, s.Status().IsUnlocked())
}

func TestUserMessage(t *testing.T) {
	assert.Empty(t, vault.UserMessage(nil))
	assert.Equal(t, app.MsgIncorrectVaultPassword, vault.UserMessage(vault.ErrIncorrectVaultPassword))
	assert.Equal(t, app.MsgUnlockToViewPasswords, vault.UserMessage(vault.ErrVaultLocked))
	assert.Equal(t, app.MsgUnexpectedError, vault.UserMessage(errors.New("other")))
}
