// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

const (
	// AlgAESGCM is the only cipher identifier written into blobs.
	AlgAESGCM = "AES-GCM"

	// KDFPBKDF2 is the only key-derivation identifier written into blobs.
	KDFPBKDF2 = "PBKDF2"
)

// EncryptedBlob is the persisted, self-describing form of an encrypted
// string. It is stored as JSON next to plaintext account fields and is
// exported verbatim in JSON backups.
//
// Salt and IV are generated fresh on every encryption. Iterations is stored
// per blob so that a later change of the default does not break old data.
type EncryptedBlob struct {
	Alg           string `json:"alg" yaml:"alg"`
	KDF           string `json:"kdf" yaml:"kdf"`
	Iterations    int    `json:"iterations" yaml:"iterations"`
	SaltB64       string `json:"saltB64" yaml:"saltB64"`
	IVB64         string `json:"ivB64" yaml:"ivB64"`
	CipherTextB64 string `json:"cipherTextB64" yaml:"cipherTextB64"`
}
