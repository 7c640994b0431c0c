// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package company

import "errors"

var (
	ErrCompanyNotFound     = errors.New("company not found")
	ErrDepartmentNotFound  = errors.New("department not found")
	ErrDuplicateDepartment = errors.New("a department with this name already exists")
	ErrNameRequired        = errors.New("company name is required")
)
