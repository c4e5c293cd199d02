// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors returned while parsing report query parameters. All of
// them map to 400 Bad Request.
var (
	// ErrInvalidSortKey is returned for a sort value other than account,
	// balance or minPayment.
	ErrInvalidSortKey = errors.New("invalid `sort` query parameter")

	// ErrInvalidSortOrder is returned for an order value other than asc or
	// desc.
	ErrInvalidSortOrder = errors.New("invalid `order` query parameter")

	// ErrInvalidAccountType is returned for a type value that is not a
	// known account type.
	ErrInvalidAccountType = errors.New("invalid `type` query parameter")
)
