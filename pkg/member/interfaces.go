// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package member

import (
	"context"
	"time"

	"github.com/canonical/company-service/internal/types"
)

type ServiceInterface interface {
	ListMembers(ctx context.Context, companyID string) ([]*Member, error)
	AddMember(ctx context.Context, req *AddMemberRequest) (*types.Membership, error)
	UpdateMember(ctx context.Context, m *types.Membership, paths []string) (*types.Membership, error)
	DeactivateMember(ctx context.Context, companyID, memberID string) error
}

type StorageInterface interface {
	GetMembership(ctx context.Context, companyID, actorID string) (*types.Membership, error)
	GetMembershipByID(ctx context.Context, id string) (*types.Membership, error)
	ListMembersByCompanyID(ctx context.Context, companyID string) ([]*types.Membership, error)
	CreateMembership(ctx context.Context, m *types.Membership) (*types.Membership, error)
	UpdateMembership(ctx context.Context, m *types.Membership, paths []string) error
	DeactivateMembership(ctx context.Context, id string, leaveDate time.Time) error
}

type IdentityInterface interface {
	GetActorByID(ctx context.Context, id string) (*types.Actor, error)
	GetActorByMobile(ctx context.Context, mobile string) (*types.Actor, error)
}
