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

func (s *Storage) CreateDepartment(ctx context.Context, d *types.Department) (*types.Department, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateDepartment")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate department ID: %w", err)
	}

	var created types.Department
	err = s.db.Statement(ctx).
		Insert("departments").
		Columns("id", "company_id", "name", "employee_count", "description", "is_active").
		Values(id.String(), d.CompanyID, d.Name, d.EmployeeCount, d.Description, d.IsActive).
		Suffix("RETURNING id, company_id, name, employee_count, description, is_active, created_at, updated_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.CompanyID, &created.Name, &created.EmployeeCount, &created.Description, &created.IsActive, &created.CreatedAt, &created.UpdatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert department: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetDepartmentByID(ctx context.Context, id string) (*types.Department, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetDepartmentByID")
	defer span.End()

	var d types.Department
	err := s.db.Statement(ctx).
		Select("id", "company_id", "name", "employee_count", "description", "is_active", "created_at", "updated_at").
		From("departments").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&d.ID, &d.CompanyID, &d.Name, &d.EmployeeCount, &d.Description, &d.IsActive, &d.CreatedAt, &d.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get department: %w", err)
	}

	return &d, nil
}

func (s *Storage) ListDepartmentsByCompanyID(ctx context.Context, companyID string) ([]*types.Department, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListDepartmentsByCompanyID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "company_id", "name", "employee_count", "description", "is_active", "created_at", "updated_at").
		From("departments").
		Where(sq.Eq{"company_id": companyID}).
		OrderBy("name").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	var departments []*types.Department
	for rows.Next() {
		var d types.Department
		if err := rows.Scan(&d.ID, &d.CompanyID, &d.Name, &d.EmployeeCount, &d.Description, &d.IsActive, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		departments = append(departments, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return departments, nil
}

func (s *Storage) UpdateDepartment(ctx context.Context, d *types.Department, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateDepartment")
	defer span.End()

	updateMap := make(map[string]interface{})
	for _, p := range paths {
		switch p {
		case "name":
			updateMap["name"] = d.Name
		case "employee_count":
			updateMap["employee_count"] = d.EmployeeCount
		case "description":
			updateMap["description"] = d.Description
		case "is_active":
			updateMap["is_active"] = d.IsActive
		}
	}

	if len(updateMap) == 0 {
		return nil
	}
	updateMap["updated_at"] = sq.Expr("now()")

	res, err := s.db.Statement(ctx).
		Update("departments").
		SetMap(updateMap).
		Where(sq.Eq{"id": d.ID}).
		ExecContext(ctx)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("failed to update department: %w", err)
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
