// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package company

import (
	"context"
	"errors"
	"fmt"
	"strings"

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

// CreateCompany registers a new company with the creator as its owner.
func (s *Service) CreateCompany(ctx context.Context, ownerID, name, activityField string) (*types.Company, error) {
	ctx, span := s.tracer.Start(ctx, "company.Service.CreateCompany")
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	created, err := s.storage.CreateCompany(ctx, &types.Company{
		OwnerID:       ownerID,
		Name:          name,
		ActivityField: activityField,
		IsActive:      true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	return created, nil
}

// ListCompanies returns the companies visible to the actor: owned ones
// plus those with an effective membership.
func (s *Service) ListCompanies(ctx context.Context, actorID string) ([]*types.Company, error) {
	ctx, span := s.tracer.Start(ctx, "company.Service.ListCompanies")
	defer span.End()

	return s.storage.ListCompaniesByActorID(ctx, actorID)
}

func (s *Service) GetCompany(ctx context.Context, id string) (*types.Company, error) {
	ctx, span := s.tracer.Start(ctx, "company.Service.GetCompany")
	defer span.End()

	company, err := s.storage.GetCompanyByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}

	return company, nil
}

func (s *Service) UpdateCompany(ctx context.Context, c *types.Company, paths []string) (*types.Company, error) {
	ctx, span := s.tracer.Start(ctx, "company.Service.UpdateCompany")
	defer span.End()

	if err := s.storage.UpdateCompany(ctx, c, paths); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to update company: %w", err)
	}

	return s.GetCompany(ctx, c.ID)
}

func (s *Service) SetCompanyStatus(ctx context.Context, id string, active bool) error {
	ctx, span := s.tracer.Start(ctx, "company.Service.SetCompanyStatus")
	defer span.End()

	if err := s.storage.SetCompanyStatus(ctx, id, active); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrCompanyNotFound
		}
		return fmt.Errorf("failed to set company status: %w", err)
	}

	return nil
}

// DeleteCompany removes the company. Memberships and invitations go
// with it through the cascade constraints.
func (s *Service) DeleteCompany(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "company.Service.DeleteCompany")
	defer span.End()

	if err := s.storage.DeleteCompany(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrCompanyNotFound
		}
		return fmt.Errorf("failed to delete company: %w", err)
	}

	return nil
}

func (s *Service) CreateDepartment(ctx context.Context, d *types.Department) (*types.Department, error) {
	ctx, span := s.tracer.Start(ctx, "company.Service.CreateDepartment")
	defer span.End()

	d.Name = strings.TrimSpace(d.Name)
	if d.Name == "" {
		return nil, ErrNameRequired
	}
	d.IsActive = true

	created, err := s.storage.CreateDepartment(ctx, d)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, ErrDuplicateDepartment
		}
		return nil, fmt.Errorf("failed to create department: %w", err)
	}

	return created, nil
}

func (s *Service) ListDepartments(ctx context.Context, companyID string) ([]*types.Department, error) {
	ctx, span := s.tracer.Start(ctx, "company.Service.ListDepartments")
	defer span.End()

	return s.storage.ListDepartmentsByCompanyID(ctx, companyID)
}

func (s *Service) UpdateDepartment(ctx context.Context, d *types.Department, paths []string) (*types.Department, error) {
	ctx, span := s.tracer.Start(ctx, "company.Service.UpdateDepartment")
	defer span.End()

	// The department must belong to the company named in the route.
	existing, err := s.storage.GetDepartmentByID(ctx, d.ID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrDepartmentNotFound
		}
		return nil, err
	}
	if existing.CompanyID != d.CompanyID {
		return nil, ErrDepartmentNotFound
	}

	if err := s.storage.UpdateDepartment(ctx, d, paths); err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, ErrDuplicateDepartment
		}
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("failed to update department: %w", err)
	}

	return s.storage.GetDepartmentByID(ctx, d.ID)
}
