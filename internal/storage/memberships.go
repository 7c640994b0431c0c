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

var membershipColumns = []string{
	"id", "company_id", "actor_id", "department_id", "position", "status",
	"join_date", "leave_date", "is_active", "created_at", "updated_at",
}

func scanMembership(row sq.RowScanner) (*types.Membership, error) {
	var m types.Membership
	err := row.Scan(
		&m.ID, &m.CompanyID, &m.ActorID, &m.DepartmentID, &m.Position, &m.Status,
		&m.JoinDate, &m.LeaveDate, &m.IsActive, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// GetMembership looks up the row for a (company, actor) pair.
// Absence is ErrNotFound; the resolver maps that to "no membership".
func (s *Storage) GetMembership(ctx context.Context, companyID, actorID string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMembership")
	defer span.End()

	m, err := scanMembership(s.db.Statement(ctx).
		Select(membershipColumns...).
		From("memberships").
		Where(sq.Eq{"company_id": companyID, "actor_id": actorID}).
		QueryRowContext(ctx))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	return m, nil
}

func (s *Storage) GetMembershipByID(ctx context.Context, id string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMembershipByID")
	defer span.End()

	m, err := scanMembership(s.db.Statement(ctx).
		Select(membershipColumns...).
		From("memberships").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	return m, nil
}

func (s *Storage) ListMembersByCompanyID(ctx context.Context, companyID string) ([]*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMembersByCompanyID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(membershipColumns...).
		From("memberships").
		Where(sq.Eq{"company_id": companyID}).
		OrderBy("join_date DESC").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []*types.Membership
	for rows.Next() {
		m, err := scanMembership(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return members, nil
}

// CreateMembership inserts a new membership row. The unique constraint on
// (company_id, actor_id) surfaces as ErrDuplicateKey, which closes the race
// window between concurrent accepts for the same actor.
func (s *Storage) CreateMembership(ctx context.Context, m *types.Membership) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateMembership")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate membership ID: %w", err)
	}

	created, err := scanMembership(s.db.Statement(ctx).
		Insert("memberships").
		Columns("id", "company_id", "actor_id", "department_id", "position", "status", "join_date", "is_active").
		Values(id.String(), m.CompanyID, m.ActorID, m.DepartmentID, m.Position, m.Status, m.JoinDate, m.IsActive).
		Suffix("RETURNING " + joinColumns(membershipColumns)).
		QueryRowContext(ctx))

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert membership: %w", err)
	}

	return created, nil
}

func (s *Storage) UpdateMembership(ctx context.Context, m *types.Membership, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateMembership")
	defer span.End()

	updateMap := make(map[string]interface{})
	for _, p := range paths {
		switch p {
		case "position":
			updateMap["position"] = m.Position
		case "status":
			updateMap["status"] = m.Status
		case "department_id":
			updateMap["department_id"] = m.DepartmentID
		case "is_active":
			updateMap["is_active"] = m.IsActive
		case "join_date":
			updateMap["join_date"] = m.JoinDate
		case "leave_date":
			updateMap["leave_date"] = m.LeaveDate
		}
	}

	if len(updateMap) == 0 {
		return nil
	}
	updateMap["updated_at"] = sq.Expr("now()")

	res, err := s.db.Statement(ctx).
		Update("memberships").
		SetMap(updateMap).
		Where(sq.Eq{"id": m.ID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update membership: %w", err)
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

// DeactivateMembership retires a membership without deleting it, so business
// records referencing the member keep their audit trail.
func (s *Storage) DeactivateMembership(ctx context.Context, id string, leaveDate time.Time) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeactivateMembership")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("memberships").
		Set("is_active", false).
		Set("status", types.MemberStatusInactive).
		Set("leave_date", leaveDate).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to deactivate membership: %w", err)
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
