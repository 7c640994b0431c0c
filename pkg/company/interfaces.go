// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package company

import (
	"context"

	"github.com/canonical/company-service/internal/types"
)

type ServiceInterface interface {
	CreateCompany(ctx context.Context, ownerID, name, activityField string) (*types.Company, error)
	ListCompanies(ctx context.Context, actorID string) ([]*types.Company, error)
	GetCompany(ctx context.Context, id string) (*types.Company, error)
	UpdateCompany(ctx context.Context, c *types.Company, paths []string) (*types.Company, error)
	SetCompanyStatus(ctx context.Context, id string, active bool) error
	DeleteCompany(ctx context.Context, id string) error

	CreateDepartment(ctx context.Context, d *types.Department) (*types.Department, error)
	ListDepartments(ctx context.Context, companyID string) ([]*types.Department, error)
	UpdateDepartment(ctx context.Context, d *types.Department, paths []string) (*types.Department, error)
}

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
}
