// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for account records.
//
// Core concepts:
//   - Validator: generic interface to validate a value, optionally scoped to
//     a subset of named fields.
//   - ImportSanitizer: schema validation of a decoded backup document. Every
//     record yields a tagged [RecordResult]; rejected records are reported,
//     never applied.
//
// This package decouples validation rules from the TUI, the CLI and storage.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {
	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}

// ImportSanitizer turns a decoded backup document into per-record results.
type ImportSanitizer interface {
	// Sanitize accepts a bare list of records or a version 1 wrapper
	// (map with "version" 1 and an "accounts" list), as produced by
	// decoding JSON or YAML into an empty interface. Any other shape
	// returns [ErrInvalidDocument].
	Sanitize(ctx context.Context, doc any) ([]RecordResult, error)
}
