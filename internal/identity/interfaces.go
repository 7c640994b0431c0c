// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"

	"github.com/canonical/company-service/internal/types"
)

type IdentityStoreInterface interface {
	GetActorByID(ctx context.Context, id string) (*types.Actor, error)
	GetActorByMobile(ctx context.Context, mobile string) (*types.Actor, error)
}
