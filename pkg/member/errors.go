// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package member

import "errors"

var (
	ErrMemberNotFound  = errors.New("member not found")
	ErrActorNotFound   = errors.New("no registered actor for mobile number")
	ErrAlreadyMember   = errors.New("actor is already a member of this company")
	ErrInvalidPosition = errors.New("invalid position")
	ErrInvalidStatus   = errors.New("invalid member status")
	ErrInvalidMobile   = errors.New("invalid mobile number")
)
