// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/canonical/company-service/internal/types"
)

var invitationColumns = []string{
	"id", "company_id", "invited_actor_id", "invited_mobile", "inviter_id", "department_id",
	"position", "status", "message", "token", "created_at", "expires_at", "responded_at",
}

func scanInvitation(row sq.RowScanner) (*types.Invitation, error) {
	var i types.Invitation
	err := row.Scan(
		&i.ID, &i.CompanyID, &i.InvitedActorID, &i.InvitedMobile, &i.InviterID, &i.DepartmentID,
		&i.Position, &i.Status, &i.Message, &i.Token, &i.CreatedAt, &i.ExpiresAt, &i.RespondedAt,
	)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (s *Storage) CreateInvitation(ctx context.Context, i *types.Invitation) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateInvitation")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invitation ID: %w", err)
	}

	created, err := scanInvitation(s.db.Statement(ctx).
		Insert("invitations").
		Columns("id", "company_id", "invited_actor_id", "invited_mobile", "inviter_id",
			"department_id", "position", "status", "message", "token", "expires_at").
		Values(id.String(), i.CompanyID, i.InvitedActorID, i.InvitedMobile, i.InviterID,
			i.DepartmentID, i.Position, i.Status, i.Message, i.Token, i.ExpiresAt).
		Suffix("RETURNING " + joinColumns(invitationColumns)).
		QueryRowContext(ctx))

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert invitation: %w", err)
	}

	return created, nil
}

func (s *Storage) GetInvitationByID(ctx context.Context, id string) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetInvitationByID")
	defer span.End()

	return s.getInvitation(ctx, sq.Eq{"id": id})
}

func (s *Storage) GetInvitationByToken(ctx context.Context, token string) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetInvitationByToken")
	defer span.End()

	return s.getInvitation(ctx, sq.Eq{"token": token})
}

func (s *Storage) GetPendingInvitationByActor(ctx context.Context, companyID, actorID string) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetPendingInvitationByActor")
	defer span.End()

	return s.getInvitation(ctx, sq.Eq{
		"company_id":       companyID,
		"invited_actor_id": actorID,
		"status":           types.InvitationPending,
	})
}

func (s *Storage) GetPendingInvitationByMobile(ctx context.Context, companyID, mobile string) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetPendingInvitationByMobile")
	defer span.End()

	return s.getInvitation(ctx, sq.Eq{
		"company_id":     companyID,
		"invited_mobile": mobile,
		"status":         types.InvitationPending,
	})
}

func (s *Storage) getInvitation(ctx context.Context, pred interface{}) (*types.Invitation, error) {
	i, err := scanInvitation(s.db.Statement(ctx).
		Select(invitationColumns...).
		From("invitations").
		Where(pred).
		OrderBy("created_at DESC").
		Limit(1).
		QueryRowContext(ctx))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get invitation: %w", err)
	}

	return i, nil
}

func (s *Storage) ListInvitationsByCompanyID(ctx context.Context, companyID string) ([]*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListInvitationsByCompanyID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(invitationColumns...).
		From("invitations").
		Where(sq.Eq{"company_id": companyID}).
		OrderBy("created_at DESC").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}
	defer rows.Close()

	var invitations []*types.Invitation
	for rows.Next() {
		i, err := scanInvitation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invitation: %w", err)
		}
		invitations = append(invitations, i)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return invitations, nil
}

func (s *Storage) GetInvitationStats(ctx context.Context, companyID string) (*types.InvitationStats, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetInvitationStats")
	defer span.End()

	var stats types.InvitationStats
	err := s.db.Statement(ctx).
		Select(
			"COUNT(*)",
			"COUNT(*) FILTER (WHERE status = 'PENDING')",
			"COUNT(*) FILTER (WHERE status = 'ACCEPTED')",
			"COUNT(*) FILTER (WHERE status = 'REJECTED')",
			"COUNT(*) FILTER (WHERE status = 'EXPIRED')",
			"COUNT(*) FILTER (WHERE status = 'CANCELLED')",
		).
		From("invitations").
		Where(sq.Eq{"company_id": companyID}).
		QueryRowContext(ctx).
		Scan(&stats.Total, &stats.Pending, &stats.Accepted, &stats.Rejected, &stats.Expired, &stats.Cancelled)

	if err != nil {
		return nil, fmt.Errorf("failed to get invitation stats: %w", err)
	}

	return &stats, nil
}

// TransitionInvitation performs a compare-and-set status transition.
// ErrNotFound means the row was not in the expected source status, which
// callers treat as a state conflict; concurrent transitions lose cleanly.
func (s *Storage) TransitionInvitation(ctx context.Context, id string, from, to types.InvitationStatus, respondedAt *time.Time) error {
	ctx, span := s.tracer.Start(ctx, "storage.TransitionInvitation")
	defer span.End()

	query := s.db.Statement(ctx).
		Update("invitations").
		Set("status", to).
		Where(sq.Eq{"id": id, "status": from})

	if respondedAt != nil {
		query = query.Set("responded_at", *respondedAt)
	}

	res, err := query.ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to transition invitation: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}
