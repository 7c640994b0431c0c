// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitation

import "errors"

var (
	ErrInvitationNotFound   = errors.New("invitation not found")
	ErrInvitationExpired    = errors.New("invitation has expired")
	ErrInvitationNotPending = errors.New("invitation is not pending")
	ErrIdentityMismatch     = errors.New("invitation is addressed to a different actor")
	ErrAlreadyMember        = errors.New("actor is already a member of the company")
	ErrDuplicatePending     = errors.New("a pending invitation already exists for this target")
	ErrNotOwner             = errors.New("only the company owner may perform this operation")
	ErrAlreadyAnswered      = errors.New("invitation has already been answered")
	ErrInvalidPosition      = errors.New("unrecognized position")
	ErrInvalidMobile        = errors.New("invalid mobile number format")
)
