// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitation

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/canonical/company-service/internal/logging"
	"github.com/canonical/company-service/internal/monitoring"
	"github.com/canonical/company-service/internal/storage"
	"github.com/canonical/company-service/internal/tracing"
	"github.com/canonical/company-service/internal/types"
)

// mobileRegexp matches the local mobile numbering plan.
var mobileRegexp = regexp.MustCompile(`^09\d{9}$`)

type CreateInvitationRequest struct {
	CompanyID    string         `json:"-"`
	InviterID    string         `json:"-"`
	Mobile       string         `json:"mobile" validate:"required,mobile"`
	Position     types.Position `json:"position" validate:"required"`
	DepartmentID *string        `json:"department_id,omitempty"`
	Message      string         `json:"message,omitempty"`
}

type Service struct {
	storage  StorageInterface
	identity IdentityInterface
	notifier NotifierInterface
	tx       TxManagerInterface

	lifetime time.Duration
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	identity IdentityInterface,
	notifier NotifierInterface,
	tx TxManagerInterface,
	lifetime time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	validate := validator.New()
	if err := validate.RegisterValidation("mobile", func(fl validator.FieldLevel) bool {
		return mobileRegexp.MatchString(fl.Field().String())
	}); err != nil {
		logger.Fatalf("failed to register mobile validation: %v", err)
	}

	return &Service{
		storage:  storage,
		identity: identity,
		notifier: notifier,
		tx:       tx,
		lifetime: lifetime,
		validate: validate,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// CreateInvitation issues a new pending invitation addressed to a
// mobile handle. The invited actor reference is resolved eagerly when
// the handle already belongs to a registered actor.
func (s *Service) CreateInvitation(ctx context.Context, req *CreateInvitationRequest) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "invitation.Service.CreateInvitation")
	defer span.End()

	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMobile, err)
	}
	if !req.Position.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPosition, req.Position)
	}

	invitedActor, err := s.resolveActorByMobile(ctx, req.Mobile)
	if err != nil {
		return nil, err
	}

	if invitedActor != nil {
		membership, err := s.storage.GetMembership(ctx, req.CompanyID, invitedActor.ID)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("failed to check membership: %w", err)
		}
		if membership != nil && membership.Effective() {
			return nil, ErrAlreadyMember
		}

		if err := s.checkNoPendingForActor(ctx, req.CompanyID, invitedActor.ID); err != nil {
			return nil, err
		}
	}

	if err := s.checkNoPendingForMobile(ctx, req.CompanyID, req.Mobile); err != nil {
		return nil, err
	}

	now := time.Now()
	invitation := &types.Invitation{
		CompanyID:     req.CompanyID,
		InvitedMobile: req.Mobile,
		InviterID:     &req.InviterID,
		DepartmentID:  req.DepartmentID,
		Position:      req.Position,
		Status:        types.InvitationPending,
		Message:       req.Message,
		Token:         uuid.NewString(),
		ExpiresAt:     now.Add(s.lifetime),
	}
	if invitedActor != nil {
		invitation.InvitedActorID = &invitedActor.ID
	}

	created, err := s.storage.CreateInvitation(ctx, invitation)
	if err != nil {
		return nil, fmt.Errorf("failed to create invitation: %w", err)
	}

	if invitedActor != nil {
		s.notifyActor(ctx, invitedActor.ID, "You have been invited to join a company", req.Message, created.ID)
	}

	return created, nil
}

func (s *Service) GetInvitation(ctx context.Context, id string) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "invitation.Service.GetInvitation")
	defer span.End()

	invitation, err := s.storage.GetInvitationByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrInvitationNotFound
		}
		return nil, err
	}

	return invitation, nil
}

func (s *Service) ListInvitations(ctx context.Context, companyID string) ([]*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "invitation.Service.ListInvitations")
	defer span.End()

	return s.storage.ListInvitationsByCompanyID(ctx, companyID)
}

func (s *Service) GetStats(ctx context.Context, companyID string) (*types.InvitationStats, error) {
	ctx, span := s.tracer.Start(ctx, "invitation.Service.GetStats")
	defer span.End()

	return s.storage.GetInvitationStats(ctx, companyID)
}

// Accept answers a pending invitation and enrolls the actor as a
// member. Membership creation and the status transition run in one
// transaction; a concurrent accept loses on the status compare-and-set.
func (s *Service) Accept(ctx context.Context, token, actorID string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "invitation.Service.Accept")
	defer span.End()

	now := time.Now()

	invitation, actor, err := s.checkResponse(ctx, token, actorID, now)
	if err != nil {
		return nil, err
	}

	var membership *types.Membership

	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		existing, err := s.storage.GetMembership(ctx, invitation.CompanyID, actor.ID)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("failed to check membership: %w", err)
		}

		if existing != nil && existing.Effective() {
			// Already a member, only the invitation status moves.
			membership = existing
		} else if existing != nil {
			// A former member accepting a fresh invitation: revive the
			// retired row under the invitation's terms.
			existing.DepartmentID = invitation.DepartmentID
			existing.Position = invitation.Position
			existing.Status = types.MemberStatusActive
			existing.IsActive = true
			existing.JoinDate = now
			existing.LeaveDate = nil
			err := s.storage.UpdateMembership(ctx, existing, []string{
				"department_id", "position", "status", "is_active", "join_date", "leave_date",
			})
			if err != nil {
				return fmt.Errorf("failed to revive membership: %w", err)
			}
			membership = existing
		} else {
			created, err := s.storage.CreateMembership(ctx, &types.Membership{
				CompanyID:    invitation.CompanyID,
				ActorID:      actor.ID,
				DepartmentID: invitation.DepartmentID,
				Position:     invitation.Position,
				Status:       types.MemberStatusActive,
				JoinDate:     now,
				IsActive:     true,
			})
			if err != nil {
				if errors.Is(err, storage.ErrDuplicateKey) {
					// A concurrent accept created the row first.
					created, err = s.storage.GetMembership(ctx, invitation.CompanyID, actor.ID)
					if err != nil {
						return fmt.Errorf("failed to load membership: %w", err)
					}
				} else {
					return fmt.Errorf("failed to create membership: %w", err)
				}
			}
			membership = created
		}

		if err := s.storage.TransitionInvitation(ctx, invitation.ID, types.InvitationPending, types.InvitationAccepted, &now); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return ErrInvitationNotPending
			}
			return fmt.Errorf("failed to transition invitation: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if invitation.InviterID != nil {
		s.notifyActor(ctx, *invitation.InviterID, fmt.Sprintf("%s accepted your invitation", actor.DisplayName()), "", invitation.ID)
	}

	return membership, nil
}

// Reject answers a pending invitation without creating a membership.
func (s *Service) Reject(ctx context.Context, token, actorID string) error {
	ctx, span := s.tracer.Start(ctx, "invitation.Service.Reject")
	defer span.End()

	now := time.Now()

	invitation, actor, err := s.checkResponse(ctx, token, actorID, now)
	if err != nil {
		return err
	}

	if err := s.storage.TransitionInvitation(ctx, invitation.ID, types.InvitationPending, types.InvitationRejected, &now); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrInvitationNotPending
		}
		return fmt.Errorf("failed to transition invitation: %w", err)
	}

	if invitation.InviterID != nil {
		s.notifyActor(ctx, *invitation.InviterID, fmt.Sprintf("%s declined your invitation", actor.DisplayName()), "", invitation.ID)
	}

	return nil
}

// Cancel withdraws a pending invitation. Owner only.
func (s *Service) Cancel(ctx context.Context, invitationID, actorID string) error {
	ctx, span := s.tracer.Start(ctx, "invitation.Service.Cancel")
	defer span.End()

	now := time.Now()

	invitation, err := s.getOwnedInvitation(ctx, invitationID, actorID)
	if err != nil {
		return err
	}

	if invitation.IsExpired(now) {
		return ErrInvitationExpired
	}
	if invitation.Status != types.InvitationPending {
		return ErrInvitationNotPending
	}

	if err := s.storage.TransitionInvitation(ctx, invitation.ID, types.InvitationPending, types.InvitationCancelled, &now); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrInvitationNotPending
		}
		return fmt.Errorf("failed to transition invitation: %w", err)
	}

	return nil
}

// Resend issues a sibling invitation with a fresh token and expiry.
// The original keeps its terminal state for the audit trail; a still
// pending original is closed first so at most one pending invitation
// exists per target.
func (s *Service) Resend(ctx context.Context, invitationID, actorID string) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "invitation.Service.Resend")
	defer span.End()

	now := time.Now()

	invitation, err := s.getOwnedInvitation(ctx, invitationID, actorID)
	if err != nil {
		return nil, err
	}

	switch invitation.Status {
	case types.InvitationAccepted, types.InvitationRejected:
		return nil, ErrAlreadyAnswered
	}

	if invitation.Status == types.InvitationPending {
		to := types.InvitationCancelled
		if invitation.IsExpired(now) {
			to = types.InvitationExpired
		}
		if err := s.storage.TransitionInvitation(ctx, invitation.ID, types.InvitationPending, to, nil); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return nil, ErrInvitationNotPending
			}
			return nil, fmt.Errorf("failed to close original invitation: %w", err)
		}
	}

	sibling := &types.Invitation{
		CompanyID:      invitation.CompanyID,
		InvitedActorID: invitation.InvitedActorID,
		InvitedMobile:  invitation.InvitedMobile,
		InviterID:      &actorID,
		DepartmentID:   invitation.DepartmentID,
		Position:       invitation.Position,
		Status:         types.InvitationPending,
		Message:        invitation.Message,
		Token:          uuid.NewString(),
		ExpiresAt:      now.Add(s.lifetime),
	}

	created, err := s.storage.CreateInvitation(ctx, sibling)
	if err != nil {
		return nil, fmt.Errorf("failed to create sibling invitation: %w", err)
	}

	if created.InvitedActorID != nil {
		s.notifyActor(ctx, *created.InvitedActorID, "Your invitation has been renewed", created.Message, created.ID)
	}

	return created, nil
}

// checkResponse runs the shared Accept/Reject preconditions: lookup,
// lazy expiry, pending status, and the identity binding that prevents
// invitation hijacking.
func (s *Service) checkResponse(ctx context.Context, token, actorID string, now time.Time) (*types.Invitation, *types.Actor, error) {
	invitation, err := s.storage.GetInvitationByToken(ctx, token)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil, ErrInvitationNotFound
		}
		return nil, nil, err
	}

	actor, err := s.identity.GetActorByID(ctx, actorID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve responding actor: %w", err)
	}

	if invitation.IsExpired(now) {
		return nil, nil, ErrInvitationExpired
	}
	if invitation.Status != types.InvitationPending {
		return nil, nil, ErrInvitationNotPending
	}

	if invitation.InvitedActorID != nil {
		if *invitation.InvitedActorID != actor.ID {
			return nil, nil, ErrIdentityMismatch
		}
	} else if invitation.InvitedMobile != actor.MobileNumber {
		return nil, nil, ErrIdentityMismatch
	}

	return invitation, actor, nil
}

func (s *Service) getOwnedInvitation(ctx context.Context, invitationID, actorID string) (*types.Invitation, error) {
	invitation, err := s.storage.GetInvitationByID(ctx, invitationID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrInvitationNotFound
		}
		return nil, err
	}

	company, err := s.storage.GetCompanyByID(ctx, invitation.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load company: %w", err)
	}
	if company.OwnerID != actorID {
		return nil, ErrNotOwner
	}

	return invitation, nil
}

func (s *Service) resolveActorByMobile(ctx context.Context, mobile string) (*types.Actor, error) {
	actor, err := s.identity.GetActorByMobile(ctx, mobile)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve invited actor: %w", err)
	}
	return actor, nil
}

func (s *Service) checkNoPendingForActor(ctx context.Context, companyID, actorID string) error {
	pending, err := s.storage.GetPendingInvitationByActor(ctx, companyID, actorID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("failed to check pending invitations: %w", err)
	}
	if pending != nil && pending.IsActive(time.Now()) {
		return ErrDuplicatePending
	}
	return nil
}

func (s *Service) checkNoPendingForMobile(ctx context.Context, companyID, mobile string) error {
	pending, err := s.storage.GetPendingInvitationByMobile(ctx, companyID, mobile)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("failed to check pending invitations: %w", err)
	}
	if pending != nil && pending.IsActive(time.Now()) {
		return ErrDuplicatePending
	}
	return nil
}

// notifyActor emits a best effort notification. Delivery failures are
// logged, never surfaced to the caller.
func (s *Service) notifyActor(ctx context.Context, actorID, title, message, invitationID string) {
	err := s.notifier.Notify(ctx, &types.Notification{
		ActorID:           actorID,
		Title:             title,
		Message:           message,
		Type:              types.NotificationInvitation,
		RelatedObjectID:   &invitationID,
		RelatedObjectType: "invitation",
	})
	if err != nil {
		s.logger.Errorf("failed to notify actor %s: %v", actorID, err)
	}
}
