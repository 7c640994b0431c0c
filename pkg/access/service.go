// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/company-service/internal/logging"
	"github.com/canonical/company-service/internal/monitoring"
	"github.com/canonical/company-service/internal/storage"
	"github.com/canonical/company-service/internal/tracing"
	"github.com/canonical/company-service/internal/types"
)

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// Resolve maps (actor, company, capability) to an allow or deny
// decision. The owner bypasses the membership model entirely.
func (s *Service) Resolve(ctx context.Context, actorID, companyID string, capability Capability) (*Decision, error) {
	ctx, span := s.tracer.Start(ctx, "access.Service.Resolve")
	defer span.End()

	isOwner, membership, err := s.lookup(ctx, actorID, companyID)
	if err != nil {
		return nil, err
	}

	decision := decide(isOwner, membership, capability)
	if !decision.Allow {
		s.logger.Security().AuthzFailure(actorID, fmt.Sprintf("%s:%s", companyID, capability))
	}

	return decision, nil
}

// ResolveBasic allows only the owner and manager tier members. Used
// by administrative call sites that do not map to a single capability.
func (s *Service) ResolveBasic(ctx context.Context, actorID, companyID string) (*Decision, error) {
	ctx, span := s.tracer.Start(ctx, "access.Service.ResolveBasic")
	defer span.End()

	isOwner, membership, err := s.lookup(ctx, actorID, companyID)
	if err != nil {
		return nil, err
	}

	decision := decideBasic(isOwner, membership)
	if !decision.Allow {
		s.logger.Security().AuthzFailure(actorID, fmt.Sprintf("%s:basic", companyID))
	}

	return decision, nil
}

// BindContext performs no capability check. It attaches the resolved
// relationship to the request context, denying only actors with no tie
// to the company at all.
func (s *Service) BindContext(ctx context.Context, actorID, companyID string) (context.Context, error) {
	ctx, span := s.tracer.Start(ctx, "access.Service.BindContext")
	defer span.End()

	company, err := s.storage.GetCompanyByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}

	isOwner := company.OwnerID == actorID

	membership, err := s.getMembership(ctx, companyID, actorID)
	if err != nil {
		return nil, err
	}

	if !isOwner && (membership == nil || !membership.Effective()) {
		s.logger.Security().AuthzFailure(actorID, fmt.Sprintf("%s:bind", companyID))
		return nil, ErrNoRelationship
	}

	return WithContext(ctx, &Context{
		Company:    company,
		IsOwner:    isOwner,
		Membership: membership,
	}), nil
}

// lookup resolves ownership and membership, reporting an unknown
// company before any permission logic runs.
func (s *Service) lookup(ctx context.Context, actorID, companyID string) (bool, *types.Membership, error) {
	company, err := s.storage.GetCompanyByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil, ErrCompanyNotFound
		}
		return false, nil, err
	}

	membership, err := s.getMembership(ctx, companyID, actorID)
	if err != nil {
		return false, nil, err
	}

	return company.OwnerID == actorID, membership, nil
}

// getMembership treats a missing pair as "no membership", not an error.
func (s *Service) getMembership(ctx context.Context, companyID, actorID string) (*types.Membership, error) {
	membership, err := s.storage.GetMembership(ctx, companyID, actorID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up membership: %w", err)
	}
	return membership, nil
}
