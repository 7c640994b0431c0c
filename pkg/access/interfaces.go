// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"context"

	"github.com/canonical/company-service/internal/types"
)

type ServiceInterface interface {
	Resolve(ctx context.Context, actorID, companyID string, capability Capability) (*Decision, error)
	ResolveBasic(ctx context.Context, actorID, companyID string) (*Decision, error)
	BindContext(ctx context.Context, actorID, companyID string) (context.Context, error)
}

type StorageInterface interface {
	GetCompanyByID(ctx context.Context, id string) (*types.Company, error)
	GetMembership(ctx context.Context, companyID, actorID string) (*types.Membership, error)
}
