// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package member

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/canonical/company-service/internal/logging"
	"github.com/canonical/company-service/internal/monitoring"
	"github.com/canonical/company-service/internal/storage"
	"github.com/canonical/company-service/internal/tracing"
	"github.com/canonical/company-service/internal/types"
)

var mobileRegexp = regexp.MustCompile(`^09\d{9}$`)

// Member is a membership joined with the actor it belongs to.
type Member struct {
	*types.Membership

	Name   string `json:"name"`
	Mobile string `json:"mobile"`
}

// AddMemberRequest registers an existing actor as a member directly,
// without going through an invitation.
type AddMemberRequest struct {
	CompanyID    string  `json:"-"`
	Mobile       string  `json:"mobile"`
	Position     string  `json:"position"`
	DepartmentID *string `json:"department_id,omitempty"`
}

type Service struct {
	storage  StorageInterface
	identity IdentityInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	identity IdentityInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:  storage,
		identity: identity,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// ListMembers returns the company roster with actor details attached.
// A member whose actor row has gone missing is returned bare rather
// than dropped.
func (s *Service) ListMembers(ctx context.Context, companyID string) ([]*Member, error) {
	ctx, span := s.tracer.Start(ctx, "member.Service.ListMembers")
	defer span.End()

	memberships, err := s.storage.ListMembersByCompanyID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	members := make([]*Member, 0, len(memberships))
	for _, m := range memberships {
		member := &Member{Membership: m}
		actor, err := s.identity.GetActorByID(ctx, m.ActorID)
		if err != nil {
			if !errors.Is(err, storage.ErrNotFound) {
				return nil, fmt.Errorf("failed to resolve member actor: %w", err)
			}
			s.logger.Warnf("membership %s references unknown actor %s", m.ID, m.ActorID)
		} else {
			member.Name = actor.DisplayName()
			member.Mobile = actor.MobileNumber
		}
		members = append(members, member)
	}

	return members, nil
}

// AddMember registers an already known actor as an active member. The
// mobile handle must resolve to a registered actor; unregistered people
// go through the invitation flow instead.
func (s *Service) AddMember(ctx context.Context, req *AddMemberRequest) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "member.Service.AddMember")
	defer span.End()

	if !mobileRegexp.MatchString(req.Mobile) {
		return nil, ErrInvalidMobile
	}
	position := types.Position(req.Position)
	if !position.Valid() {
		return nil, ErrInvalidPosition
	}

	actor, err := s.identity.GetActorByMobile(ctx, req.Mobile)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrActorNotFound
		}
		return nil, fmt.Errorf("failed to resolve actor: %w", err)
	}

	existing, err := s.storage.GetMembership(ctx, req.CompanyID, actor.ID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	if existing != nil {
		return nil, ErrAlreadyMember
	}

	created, err := s.storage.CreateMembership(ctx, &types.Membership{
		CompanyID:    req.CompanyID,
		ActorID:      actor.ID,
		DepartmentID: req.DepartmentID,
		Position:     position,
		Status:       types.MemberStatusActive,
		JoinDate:     time.Now().UTC(),
		IsActive:     true,
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, ErrAlreadyMember
		}
		return nil, fmt.Errorf("failed to create membership: %w", err)
	}

	return created, nil
}

// UpdateMember changes a member's position, status or department. The
// membership must belong to the company named in the update.
func (s *Service) UpdateMember(ctx context.Context, m *types.Membership, paths []string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "member.Service.UpdateMember")
	defer span.End()

	for _, path := range paths {
		switch path {
		case "position":
			if !m.Position.Valid() {
				return nil, ErrInvalidPosition
			}
		case "status":
			if !m.Status.Valid() {
				return nil, ErrInvalidStatus
			}
		}
	}

	if _, err := s.getCompanyMembership(ctx, m.CompanyID, m.ID); err != nil {
		return nil, err
	}

	if err := s.storage.UpdateMembership(ctx, m, paths); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to update membership: %w", err)
	}

	return s.storage.GetMembershipByID(ctx, m.ID)
}

// DeactivateMember closes the membership without deleting the row: the
// is_active flag drops and the leave date is stamped, preserving the
// employment record.
func (s *Service) DeactivateMember(ctx context.Context, companyID, memberID string) error {
	ctx, span := s.tracer.Start(ctx, "member.Service.DeactivateMember")
	defer span.End()

	if _, err := s.getCompanyMembership(ctx, companyID, memberID); err != nil {
		return err
	}

	if err := s.storage.DeactivateMembership(ctx, memberID, time.Now().UTC()); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrMemberNotFound
		}
		return fmt.Errorf("failed to deactivate membership: %w", err)
	}

	return nil
}

func (s *Service) getCompanyMembership(ctx context.Context, companyID, memberID string) (*types.Membership, error) {
	existing, err := s.storage.GetMembershipByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to fetch membership: %w", err)
	}
	if existing.CompanyID != companyID {
		return nil, ErrMemberNotFound
	}
	return existing, nil
}
