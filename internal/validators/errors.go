// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrMissingID            = errors.New("id is required")
	ErrMissingAccountName   = errors.New("account name is required")
	ErrInvalidAccountType   = errors.New("invalid account type")
	ErrMissingAccountNumber = errors.New("account number is required")
	ErrInvalidBalance       = errors.New("current balance must be a finite number")
	ErrInvalidNumber        = errors.New("numeric field must be finite")
	ErrInvalidFeeFrequency  = errors.New("invalid service fee frequency")
	ErrInvalidOpenDate      = errors.New("open date must be YYYY-MM-DD")
	ErrMissingTimestamps    = errors.New("createdAt and updatedAt are required")
	ErrInvalidPasswordBlob  = errors.New("malformed encrypted password")

	// ErrNotAnObject is the rejection reason for an import entry that is not
	// a key/value record.
	ErrNotAnObject = errors.New("record is not an object")
	// ErrInvalidDocument is returned when an import document is neither a
	// list of records nor a version 1 wrapper.
	ErrInvalidDocument = errors.New("invalid import document")
)
