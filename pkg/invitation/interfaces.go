// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitation

import (
	"context"
	"time"

	"github.com/canonical/company-service/internal/types"
)

type ServiceInterface interface {
	CreateInvitation(ctx context.Context, req *CreateInvitationRequest) (*types.Invitation, error)
	GetInvitation(ctx context.Context, id string) (*types.Invitation, error)
	ListInvitations(ctx context.Context, companyID string) ([]*types.Invitation, error)
	GetStats(ctx context.Context, companyID string) (*types.InvitationStats, error)
	Accept(ctx context.Context, token, actorID string) (*types.Membership, error)
	Reject(ctx context.Context, token, actorID string) error
	Cancel(ctx context.Context, invitationID, actorID string) error
	Resend(ctx context.Context, invitationID, actorID string) (*types.Invitation, error)
}

type StorageInterface interface {
	GetCompanyByID(ctx context.Context, id string) (*types.Company, error)
	GetMembership(ctx context.Context, companyID, actorID string) (*types.Membership, error)
	CreateMembership(ctx context.Context, m *types.Membership) (*types.Membership, error)
	UpdateMembership(ctx context.Context, m *types.Membership, paths []string) error

	CreateInvitation(ctx context.Context, i *types.Invitation) (*types.Invitation, error)
	GetInvitationByID(ctx context.Context, id string) (*types.Invitation, error)
	GetInvitationByToken(ctx context.Context, token string) (*types.Invitation, error)
	GetPendingInvitationByActor(ctx context.Context, companyID, actorID string) (*types.Invitation, error)
	GetPendingInvitationByMobile(ctx context.Context, companyID, mobile string) (*types.Invitation, error)
	ListInvitationsByCompanyID(ctx context.Context, companyID string) ([]*types.Invitation, error)
	GetInvitationStats(ctx context.Context, companyID string) (*types.InvitationStats, error)
	TransitionInvitation(ctx context.Context, id string, from, to types.InvitationStatus, respondedAt *time.Time) error
}

type IdentityInterface interface {
	GetActorByID(ctx context.Context, id string) (*types.Actor, error)
	GetActorByMobile(ctx context.Context, mobile string) (*types.Actor, error)
}

type NotifierInterface interface {
	Notify(ctx context.Context, n *types.Notification) error
}

type TxManagerInterface interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}
