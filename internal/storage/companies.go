// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/canonical/company-service/internal/types"
)

const companyColumns = "id, owner_id, name, activity_field, is_active, created_at, updated_at"

func (s *Storage) CreateCompany(ctx context.Context, c *types.Company) (*types.Company, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateCompany")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate company ID: %w", err)
	}

	var created types.Company
	err = s.db.Statement(ctx).
		Insert("companies").
		Columns("id", "owner_id", "name", "activity_field", "is_active").
		Values(id.String(), c.OwnerID, c.Name, c.ActivityField, c.IsActive).
		Suffix("RETURNING " + companyColumns).
		QueryRowContext(ctx).
		Scan(&created.ID, &created.OwnerID, &created.Name, &created.ActivityField, &created.IsActive, &created.CreatedAt, &created.UpdatedAt)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert company: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetCompanyByID(ctx context.Context, id string) (*types.Company, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetCompanyByID")
	defer span.End()

	var c types.Company
	err := s.db.Statement(ctx).
		Select("id", "owner_id", "name", "activity_field", "is_active", "created_at", "updated_at").
		From("companies").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&c.ID, &c.OwnerID, &c.Name, &c.ActivityField, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	return &c, nil
}

// ListCompaniesByActorID returns the companies the actor owns plus those
// where the actor holds an effective membership.
func (s *Storage) ListCompaniesByActorID(ctx context.Context, actorID string) ([]*types.Company, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListCompaniesByActorID")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("DISTINCT c.id", "c.owner_id", "c.name", "c.activity_field", "c.is_active", "c.created_at", "c.updated_at").
		From("companies c").
		LeftJoin("memberships m ON c.id = m.company_id AND m.actor_id = ? AND m.is_active AND m.status = ?", actorID, types.MemberStatusActive).
		Where(sq.Or{
			sq.Eq{"c.owner_id": actorID},
			sq.NotEq{"m.id": nil},
		}).
		OrderBy("c.created_at DESC")

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	var companies []*types.Company
	for rows.Next() {
		var c types.Company
		if err := rows.Scan(&c.ID, &c.OwnerID, &c.Name, &c.ActivityField, &c.IsActive, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		companies = append(companies, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return companies, nil
}

// UpdateCompany updates fields named in paths, following PATCH semantics.
func (s *Storage) UpdateCompany(ctx context.Context, c *types.Company, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateCompany")
	defer span.End()

	updateMap := make(map[string]interface{})
	for _, p := range paths {
		switch p {
		case "name":
			updateMap["name"] = c.Name
		case "activity_field":
			updateMap["activity_field"] = c.ActivityField
		}
	}

	if len(updateMap) == 0 {
		return nil
	}
	updateMap["updated_at"] = sq.Expr("now()")

	res, err := s.db.Statement(ctx).
		Update("companies").
		SetMap(updateMap).
		Where(sq.Eq{"id": c.ID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update company: %w", err)
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

func (s *Storage) SetCompanyStatus(ctx context.Context, id string, active bool) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetCompanyStatus")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("companies").
		Set("is_active", active).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to set company status: %w", err)
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

func (s *Storage) DeleteCompany(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteCompany")
	defer span.End()

	// Memberships and invitations go with the company via ON DELETE CASCADE.
	_, err := s.db.Statement(ctx).
		Delete("companies").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}
	return nil
}
