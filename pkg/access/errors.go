// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import "errors"

var (
	// ErrCompanyNotFound is reported before any permission logic runs.
	ErrCompanyNotFound = errors.New("company not found")

	// ErrNoRelationship denies actors with no tie to the company at all.
	ErrNoRelationship = errors.New("actor has no relationship with company")
)
