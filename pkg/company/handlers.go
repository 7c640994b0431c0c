// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package company

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/company-service/internal/logging"
	"github.com/canonical/company-service/internal/tracing"
	"github.com/canonical/company-service/internal/types"
	"github.com/canonical/company-service/pkg/access"
	"github.com/canonical/company-service/pkg/authentication"
)

type API struct {
	service ServiceInterface

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		tracer:  tracer,
		logger:  logger,
	}
}

type createCompanyRequest struct {
	Name          string `json:"name"`
	ActivityField string `json:"activity_field"`
}

type updateCompanyRequest struct {
	Name          *string `json:"name,omitempty"`
	ActivityField *string `json:"activity_field,omitempty"`
}

type companyStatusRequest struct {
	Active bool `json:"active"`
}

type departmentRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type updateDepartmentRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// RegisterEndpoints mounts the routes that operate outside a bound
// company context: creation and the actor's company listing.
func (a *API) RegisterEndpoints(r chi.Router) {
	r.Post("/companies", a.create)
	r.Get("/companies", a.list)
}

// RegisterCompanyEndpoints mounts the company scoped routes. The
// router is expected to carry the access.CompanyContext middleware.
func (a *API) RegisterCompanyEndpoints(r chi.Router) {
	r.Get("/", a.get)
	r.Patch("/", a.update)
	r.Delete("/", a.delete)
	r.Post("/status", a.setStatus)
	r.Get("/departments", a.listDepartments)
	r.Post("/departments", a.createDepartment)
	r.Patch("/departments/{departmentID}", a.updateDepartment)
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actorID, ok := authentication.GetActorID(ctx)
	if !ok {
		a.errorResponse(w, http.StatusUnauthorized, "missing actor identity")
		return
	}

	var req createCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := a.service.CreateCompany(ctx, actorID, req.Name, req.ActivityField)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.jsonResponse(w, http.StatusCreated, created)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actorID, ok := authentication.GetActorID(ctx)
	if !ok {
		a.errorResponse(w, http.StatusUnauthorized, "missing actor identity")
		return
	}

	companies, err := a.service.ListCompanies(ctx, actorID)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.jsonResponse(w, http.StatusOK, companies)
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if decision := access.Require(ctx, access.CapabilityView); !decision.Allow {
		a.errorResponse(w, http.StatusForbidden, decision.Reason)
		return
	}

	ac, _ := access.FromContext(ctx)
	a.jsonResponse(w, http.StatusOK, ac.Company)
}

func (a *API) update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if decision := access.Require(ctx, access.CapabilityManage); !decision.Allow {
		a.errorResponse(w, http.StatusForbidden, decision.Reason)
		return
	}

	var req updateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ac, _ := access.FromContext(ctx)
	update := &types.Company{ID: ac.Company.ID}
	var paths []string
	if req.Name != nil {
		update.Name = *req.Name
		paths = append(paths, "name")
	}
	if req.ActivityField != nil {
		update.ActivityField = *req.ActivityField
		paths = append(paths, "activity_field")
	}
	if len(paths) == 0 {
		a.errorResponse(w, http.StatusBadRequest, "no fields to update")
		return
	}

	updated, err := a.service.UpdateCompany(ctx, update, paths)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.jsonResponse(w, http.StatusOK, updated)
}

func (a *API) delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if decision := access.RequireOwner(ctx); !decision.Allow {
		a.errorResponse(w, http.StatusForbidden, decision.Reason)
		return
	}

	ac, _ := access.FromContext(ctx)
	if err := a.service.DeleteCompany(ctx, ac.Company.ID); err != nil {
		a.serviceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) setStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if decision := access.RequireOwner(ctx); !decision.Allow {
		a.errorResponse(w, http.StatusForbidden, decision.Reason)
		return
	}

	var req companyStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ac, _ := access.FromContext(ctx)
	if err := a.service.SetCompanyStatus(ctx, ac.Company.ID, req.Active); err != nil {
		a.serviceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) listDepartments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if decision := access.Require(ctx, access.CapabilityView); !decision.Allow {
		a.errorResponse(w, http.StatusForbidden, decision.Reason)
		return
	}

	ac, _ := access.FromContext(ctx)
	departments, err := a.service.ListDepartments(ctx, ac.Company.ID)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.jsonResponse(w, http.StatusOK, departments)
}

func (a *API) createDepartment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if decision := access.Require(ctx, access.CapabilityManage); !decision.Allow {
		a.errorResponse(w, http.StatusForbidden, decision.Reason)
		return
	}

	var req departmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ac, _ := access.FromContext(ctx)
	created, err := a.service.CreateDepartment(ctx, &types.Department{
		CompanyID:   ac.Company.ID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.jsonResponse(w, http.StatusCreated, created)
}

func (a *API) updateDepartment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if decision := access.Require(ctx, access.CapabilityManage); !decision.Allow {
		a.errorResponse(w, http.StatusForbidden, decision.Reason)
		return
	}

	var req updateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ac, _ := access.FromContext(ctx)
	update := &types.Department{
		ID:        chi.URLParam(r, "departmentID"),
		CompanyID: ac.Company.ID,
	}
	var paths []string
	if req.Name != nil {
		update.Name = *req.Name
		paths = append(paths, "name")
	}
	if req.Description != nil {
		update.Description = *req.Description
		paths = append(paths, "description")
	}
	if len(paths) == 0 {
		a.errorResponse(w, http.StatusBadRequest, "no fields to update")
		return
	}

	updated, err := a.service.UpdateDepartment(ctx, update, paths)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.jsonResponse(w, http.StatusOK, updated)
}

func (a *API) serviceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrCompanyNotFound), errors.Is(err, ErrDepartmentNotFound):
		a.errorResponse(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrDuplicateDepartment):
		a.errorResponse(w, http.StatusConflict, err.Error())
	case errors.Is(err, ErrNameRequired):
		a.errorResponse(w, http.StatusBadRequest, err.Error())
	default:
		a.logger.Errorf("company request failed: %v", err)
		a.errorResponse(w, http.StatusInternalServerError, "internal server error")
	}
}

func (a *API) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func (a *API) errorResponse(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  status,
		"message": message,
	}); err != nil {
		a.logger.Errorf("failed to encode error response: %v", err)
	}
}
