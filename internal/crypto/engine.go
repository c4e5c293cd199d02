// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/MKhiriev/go-finance-keeper/models"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// DefaultIterations is the PBKDF2 work factor written into new blobs.
	DefaultIterations = 210_000
	// MaxIterations bounds the work factor accepted from a stored blob so
	// that a crafted file cannot stall decryption.
	MaxIterations = 10_000_000

	SaltSize  = 16
	NonceSize = 12
	KeySize   = 32
)

// engine is the private implementation of [Engine].
type engine struct {
	iterations int
	random     io.Reader
}

// NewEngine returns an [Engine] that writes blobs with [DefaultIterations].
func NewEngine() Engine {
	return &engine{iterations: DefaultIterations, random: rand.Reader}
}

// NewEngineWithIterations returns an [Engine] with a custom work factor for
// new blobs. Decryption always uses the count stored in the blob. Values
// outside 1..MaxIterations fall back to [DefaultIterations].
func NewEngineWithIterations(iterations int) Engine {
	if iterations <= 0 || iterations > MaxIterations {
		iterations = DefaultIterations
	}
	return &engine{iterations: iterations, random: rand.Reader}
}

// Encrypt implements [Engine].
func (e *engine) Encrypt(plaintext string, password []byte) (models.EncryptedBlob, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(e.random, salt); err != nil {
		return models.EncryptedBlob{}, fmt.Errorf("%w: salt: %w", ErrRandomSource, err)
	}

	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(e.random, nonce); err != nil {
		return models.EncryptedBlob{}, fmt.Errorf("%w: nonce: %w", ErrRandomSource, err)
	}

	gcm, err := newGCM(deriveKey(password, salt, e.iterations))
	if err != nil {
		return models.EncryptedBlob{}, fmt.Errorf("create gcm: %w", err)
	}

	ciphertext := gcm.Seal(nil, nonce, []byte(plaintext), nil)

	return models.EncryptedBlob{
		Alg:           models.AlgAESGCM,
		KDF:           models.KDFPBKDF2,
		Iterations:    e.iterations,
		SaltB64:       base64.StdEncoding.EncodeToString(salt),
		IVB64:         base64.StdEncoding.EncodeToString(nonce),
		CipherTextB64: base64.StdEncoding.EncodeToString(ciphertext),
	}, nil
}

// Decrypt implements [Engine].
func (e *engine) Decrypt(blob models.EncryptedBlob, password []byte) (string, error) {
	if blob.Iterations <= 0 || blob.Iterations > MaxIterations {
		return "", ErrDecryptionFailed
	}

	salt, err := base64.StdEncoding.DecodeString(blob.SaltB64)
	if err != nil || len(salt) == 0 {
		return "", ErrDecryptionFailed
	}

	nonce, err := base64.StdEncoding.DecodeString(blob.IVB64)
	if err != nil || len(nonce) != NonceSize {
		return "", ErrDecryptionFailed
	}

	ciphertext, err := base64.StdEncoding.DecodeString(blob.CipherTextB64)
	if err != nil {
		return "", ErrDecryptionFailed
	}

	gcm, err := newGCM(deriveKey(password, salt, blob.Iterations))
	if err != nil {
		return "", ErrDecryptionFailed
	}

	// Open also rejects ciphertexts shorter than the tag.
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", ErrDecryptionFailed
	}

	return string(plaintext), nil
}

func deriveKey(password, salt []byte, iterations int) []byte {
	return pbkdf2.Key(password, salt, iterations, KeySize, sha256.New)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
