// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/canonical/company-service/internal/types"
)

type StorageInterface interface {
	CreateCompany(ctx context.Context, c *types.Company) (*types.Company, error)
	GetCompanyByID(ctx context.Context, id string) (*types.Company, error)
	ListCompaniesByActorID(ctx context.Context, actorID string) ([]*types.Company, error)
	UpdateCompany(ctx context.Context, c *types.Company, paths []string) error
	SetCompanyStatus(ctx context.Context, id string, active bool) error
	DeleteCompany(ctx context.Context, id string) error

	CreateDepartment(ctx context.Context, d *types.Department) (*types.Department, error)
	GetDepartmentByID(ctx context.Context, id string) (*types.Department, error)
	ListDepartmentsByCompanyID(ctx context.Context, companyID string) ([]*types.Department, error)
	UpdateDepartment(ctx context.Context, d *types.Department, paths []string) error

	GetMembership(ctx context.Context, companyID, actorID string) (*types.Membership, error)
	GetMembershipByID(ctx context.Context, id string) (*types.Membership, error)
	ListMembersByCompanyID(ctx context.Context, companyID string) ([]*types.Membership, error)
	CreateMembership(ctx context.Context, m *types.Membership) (*types.Membership, error)
	UpdateMembership(ctx context.Context, m *types.Membership, paths []string) error
	DeactivateMembership(ctx context.Context, id string, leaveDate time.Time) error

	CreateInvitation(ctx context.Context, i *types.Invitation) (*types.Invitation, error)
	GetInvitationByID(ctx context.Context, id string) (*types.Invitation, error)
	GetInvitationByToken(ctx context.Context, token string) (*types.Invitation, error)
	GetPendingInvitationByActor(ctx context.Context, companyID, actorID string) (*types.Invitation, error)
	GetPendingInvitationByMobile(ctx context.Context, companyID, mobile string) (*types.Invitation, error)
	ListInvitationsByCompanyID(ctx context.Context, companyID string) ([]*types.Invitation, error)
	GetInvitationStats(ctx context.Context, companyID string) (*types.InvitationStats, error)
	TransitionInvitation(ctx context.Context, id string, from, to types.InvitationStatus, respondedAt *time.Time) error

	CreateNotification(ctx context.Context, n *types.Notification) (*types.Notification, error)
	ListNotificationsByActorID(ctx context.Context, actorID string) ([]*types.Notification, error)
	CountUnreadNotifications(ctx context.Context, actorID string) (int, error)
	MarkNotificationRead(ctx context.Context, id, actorID string) error
}
