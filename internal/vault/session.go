// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package vault owns the in-memory unlock state of the local vault.
//
// The vault password is never stored. Instead a check record, the sentinel
// string encrypted under the password, is written once on first use and
// every later unlock is verified by decrypting it.
package vault

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/awnumar/memguard"

	"github.com/MKhiriev/go-finance-keeper/internal/app"
	"github.com/MKhiriev/go-finance-keeper/internal/crypto"
	"github.com/MKhiriev/go-finance-keeper/internal/logger"
	"github.com/MKhiriev/go-finance-keeper/internal/store"
	"github.com/MKhiriev/go-finance-keeper/models"
)

// Sentinel is the plaintext of the vault check record.
const Sentinel = "pam-vault-ok"

type unlockMode int

const (
	modeAuto unlockMode = iota
	modeInitialize
	modeExisting
)

// session is the private implementation of [Session].
type session struct {
	engine crypto.Engine
	checks store.VaultCheckRepository
	logger *logger.Logger
	now    func() time.Time

	mu           sync.Mutex
	state        State
	password     *memguard.Enclave
	lastErr      string
	unlockedAt   time.Time
	lastActivity time.Time
}

// NewSession returns a Locked [Session] verifying passwords against the
// check record in checks.
func NewSession(engine crypto.Engine, checks store.VaultCheckRepository, log *logger.Logger) Session {
	return &session{
		engine: engine,
		checks: checks,
		logger: log,
		now:    time.Now,
		state:  Locked,
	}
}

func (s *session) Unlock(ctx context.Context, password string) error {
	return s.unlock(ctx, password, modeAuto)
}

func (s *session) Initialize(ctx context.Context, password string) error {
	return s.unlock(ctx, password, modeInitialize)
}

func (s *session) UnlockExisting(ctx context.Context, password string) error {
	return s.unlock(ctx, password, modeExisting)
}

func (s *session) IsInitialized(ctx context.Context) (bool, error) {
	_, err := s.checks.GetVaultCheck(ctx)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, store.ErrVaultCheckNotFound):
		return false, nil
	default:
		return false, fmt.Errorf("read vault check: %w", err)
	}
}

func (s *session) unlock(ctx context.Context, password string, mode unlockMode) error {
	log := logger.FromContext(ctx)

	s.Lock()

	if password == "" {
		return s.fail(ErrEmptyPassword)
	}

	// NewEnclave wipes this copy on success; fail wipes it otherwise.
	pw := []byte(password)

	blob, err := s.checks.GetVaultCheck(ctx)
	switch {
	case errors.Is(err, store.ErrVaultCheckNotFound):
		if mode == modeExisting {
			err = ErrVaultNotInitialized
			break
		}
		err = s.establish(ctx, pw, mode)
	case errors.Is(err, store.ErrCorruptedRecord):
		// An unreadable check record cannot confirm any password.
		log.Err(err).Str("func", "session.unlock").Msg("vault check record is corrupted")
		err = fmt.Errorf("%w: %w", ErrIncorrectVaultPassword, err)
	case err != nil:
		log.Err(err).Str("func", "session.unlock").Msg("failed to read vault check")
		err = fmt.Errorf("read vault check: %w", err)
	default:
		if mode == modeInitialize {
			err = ErrVaultAlreadyInitialized
			break
		}
		err = s.verify(blob, pw)
	}

	if err != nil {
		memguard.WipeBytes(pw)
		log.Info().Str("func", "session.unlock").Str("reason", err.Error()).Msg("vault unlock failed")
		return s.fail(err)
	}

	s.commitUnlocked(pw)
	log.Info().Str("func", "session.unlock").Msg("vault unlocked")
	return nil
}

// establish writes a new check record. When another initialiser got there
// first, Unlock verifies against the winner's record instead.
func (s *session) establish(ctx context.Context, pw []byte, mode unlockMode) error {
	log := logger.FromContext(ctx)

	blob, err := s.engine.Encrypt(Sentinel, pw)
	if err != nil {
		log.Err(err).Str("func", "session.establish").Msg("failed to encrypt vault check")
		return fmt.Errorf("encrypt vault check: %w", err)
	}

	err = s.checks.CreateVaultCheck(ctx, blob)
	switch {
	case err == nil:
		log.Info().Str("func", "session.establish").Msg("vault initialised")
		return nil
	case errors.Is(err, store.ErrVaultCheckExists):
		if mode == modeInitialize {
			return ErrVaultAlreadyInitialized
		}
		stored, getErr := s.checks.GetVaultCheck(ctx)
		if getErr != nil {
			return fmt.Errorf("read vault check: %w", getErr)
		}
		return s.verify(stored, pw)
	default:
		log.Err(err).Str("func", "session.establish").Msg("failed to store vault check")
		return fmt.Errorf("store vault check: %w", err)
	}
}

func (s *session) verify(blob models.EncryptedBlob, pw []byte) error {
	plain, err := s.engine.Decrypt(blob, pw)
	if err != nil || plain != Sentinel {
		return ErrIncorrectVaultPassword
	}
	return nil
}

func (s *session) commitUnlocked(pw []byte) {
	enclave := memguard.NewEnclave(pw)

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.state = Unlocked
	s.password = enclave
	s.lastErr = ""
	s.unlockedAt = now
	s.lastActivity = now
}

func (s *session) fail(err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resetLocked()
	s.lastErr = UserMessage(err)
	return err
}

func (s *session) Lock() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resetLocked()
	s.lastErr = ""
}

// resetLocked drops the password. Callers hold s.mu.
func (s *session) resetLocked() {
	s.state = Locked
	s.password = nil
	s.unlockedAt = time.Time{}
	s.lastActivity = time.Time{}
}

func (s *session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Status{
		State:      s.state,
		Err:        s.lastErr,
		UnlockedAt: s.unlockedAt,
	}
}

func (s *session) IdleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastActivity
}

func (s *session) Encrypt(plaintext string) (models.EncryptedBlob, error) {
	buf, err := s.openPassword()
	if err != nil {
		return models.EncryptedBlob{}, err
	}
	defer buf.Destroy()

	return s.engine.Encrypt(plaintext, buf.Bytes())
}

func (s *session) Decrypt(blob models.EncryptedBlob) (string, error) {
	buf, err := s.openPassword()
	if err != nil {
		return "", err
	}
	defer buf.Destroy()

	return s.engine.Decrypt(blob, buf.Bytes())
}

// openPassword returns the held password in a locked buffer the caller must
// destroy, and marks the session active.
func (s *session) openPassword() (*memguard.LockedBuffer, error) {
	s.mu.Lock()
	if s.state != Unlocked || s.password == nil {
		s.mu.Unlock()
		return nil, ErrVaultLocked
	}
	enclave := s.password
	s.lastActivity = s.now()
	s.mu.Unlock()

	buf, err := enclave.Open()
	if err != nil {
		return nil, fmt.Errorf("open password enclave: %w", err)
	}
	return buf, nil
}

// UserMessage maps a vault error to the text shown to the user.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrIncorrectVaultPassword):
		return app.MsgIncorrectVaultPassword
	case errors.Is(err, ErrEmptyPassword):
		return app.MsgEmptyVaultPassword
	case errors.Is(err, ErrVaultAlreadyInitialized):
		return app.MsgVaultAlreadyInitialized
	case errors.Is(err, ErrVaultNotInitialized):
		return app.MsgVaultNotInitialized
	case errors.Is(err, ErrVaultLocked):
		return app.MsgUnlockToViewPasswords
	default:
		return app.MsgUnexpectedError
	}
}
