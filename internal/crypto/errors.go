// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrDecryptionFailed is returned by [Engine.Decrypt] for a wrong
	// password, a corrupted or tampered ciphertext and any malformed blob
	// field (base64, salt or nonce length, iteration count).
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrRandomSource wraps a failure to read from the system CSPRNG.
	ErrRandomSource = errors.New("random source failure")
)
