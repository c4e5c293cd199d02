// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ExportFileVersion is the only versioned backup format understood by import.
const ExportFileVersion = 1

// AccountsFile is the versioned backup document written by JSON/YAML export
// and accepted by import.
type AccountsFile struct {
	Version    int       `json:"version" yaml:"version"`
	ExportedAt string    `json:"exportedAt" yaml:"exportedAt"`
	Accounts   []Account `json:"accounts" yaml:"accounts"`
}

// ImportRejection describes one record dropped during import.
type ImportRejection struct {
	// Index is the zero-based position of the record in the source file.
	Index int `json:"index"`
	// Reason is the validation error message.
	Reason string `json:"reason"`
}

// ImportResult summarises an import: how many records were applied and
// which ones were dropped.
type ImportResult struct {
	Imported   int               `json:"imported"`
	Dropped    int               `json:"dropped"`
	Rejections []ImportRejection `json:"rejections,omitempty"`
}

// ExportFormat selects the serialisation used by export.
type ExportFormat string

const (
	ExportJSON ExportFormat = "json"
	ExportCSV  ExportFormat = "csv"
	ExportYAML ExportFormat = "yaml"
)
