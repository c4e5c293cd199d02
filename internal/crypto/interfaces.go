// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "github.com/MKhiriev/go-finance-keeper/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/engine_mock.go -package=mock

// Engine is password-based authenticated encryption of short strings.
//
// Each call derives a fresh key: a random salt is fed through PBKDF2-SHA256
// and the result keys AES-256-GCM under a random nonce. Everything needed to
// decrypt except the password travels in the returned
// [models.EncryptedBlob], including the iteration count, so blobs written
// with a different work factor remain readable.
//
// Engine knows nothing about storage or sessions; see the vault package for
// the state that decides which password is used.
type Engine interface {
	// Encrypt seals plaintext under password. Two calls with the same
	// inputs produce different blobs. It fails only when the random source
	// does.
	Encrypt(plaintext string, password []byte) (models.EncryptedBlob, error)

	// Decrypt opens blob with password. Any failure, whether a wrong
	// password, a tampered ciphertext or a malformed blob, is reported as
	// [ErrDecryptionFailed] without saying which.
	Decrypt(blob models.EncryptedBlob, password []byte) (string, error)
}
