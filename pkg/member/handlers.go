// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package member

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/company-service/internal/logging"
	"github.com/canonical/company-service/internal/tracing"
	"github.com/canonical/company-service/internal/types"
	"github.com/canonical/company-service/pkg/access"
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

type updateMemberRequest struct {
	Position     *string `json:"position,omitempty"`
	Status       *string `json:"status,omitempty"`
	DepartmentID *string `json:"department_id,omitempty"`
}

// RegisterCompanyEndpoints mounts the member routes. The router is
// expected to carry the access.CompanyContext middleware.
func (a *API) RegisterCompanyEndpoints(r chi.Router) {
	r.Get("/members", a.list)
	r.Post("/members", a.add)
	r.Patch("/members/{memberID}", a.update)
	r.Delete("/members/{memberID}", a.deactivate)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if decision := access.Require(ctx, access.CapabilityView); !decision.Allow {
		a.errorResponse(w, http.StatusForbidden, decision.Reason)
		return
	}

	ac, _ := access.FromContext(ctx)
	members, err := a.service.ListMembers(ctx, ac.Company.ID)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.jsonResponse(w, http.StatusOK, members)
}

func (a *API) add(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if decision := access.RequireBasic(ctx); !decision.Allow {
		a.errorResponse(w, http.StatusForbidden, decision.Reason)
		return
	}

	var req AddMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ac, _ := access.FromContext(ctx)
	req.CompanyID = ac.Company.ID

	created, err := a.service.AddMember(ctx, &req)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.jsonResponse(w, http.StatusCreated, created)
}

func (a *API) update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if decision := access.Require(ctx, access.CapabilityManage); !decision.Allow {
		a.errorResponse(w, http.StatusForbidden, decision.Reason)
		return
	}

	var req updateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ac, _ := access.FromContext(ctx)
	update := &types.Membership{
		ID:        chi.URLParam(r, "memberID"),
		CompanyID: ac.Company.ID,
	}
	var paths []string
	if req.Position != nil {
		update.Position = types.Position(*req.Position)
		paths = append(paths, "position")
	}
	if req.Status != nil {
		update.Status = types.MemberStatus(*req.Status)
		paths = append(paths, "status")
	}
	if req.DepartmentID != nil {
		update.DepartmentID = req.DepartmentID
		paths = append(paths, "department_id")
	}
	if len(paths) == 0 {
		a.errorResponse(w, http.StatusBadRequest, "no fields to update")
		return
	}

	updated, err := a.service.UpdateMember(ctx, update, paths)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.jsonResponse(w, http.StatusOK, updated)
}

func (a *API) deactivate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if decision := access.Require(ctx, access.CapabilityManage); !decision.Allow {
		a.errorResponse(w, http.StatusForbidden, decision.Reason)
		return
	}

	ac, _ := access.FromContext(ctx)
	if err := a.service.DeactivateMember(ctx, ac.Company.ID, chi.URLParam(r, "memberID")); err != nil {
		a.serviceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) serviceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrMemberNotFound):
		a.errorResponse(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrAlreadyMember):
		a.errorResponse(w, http.StatusConflict, err.Error())
	case errors.Is(err, ErrActorNotFound),
		errors.Is(err, ErrInvalidPosition),
		errors.Is(err, ErrInvalidStatus),
		errors.Is(err, ErrInvalidMobile):
		a.errorResponse(w, http.StatusBadRequest, err.Error())
	default:
		a.logger.Errorf("member operation failed: %v", err)
		a.errorResponse(w, http.StatusInternalServerError, "internal server error")
	}
}

func (a *API) jsonResponse(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func (a *API) errorResponse(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":  status,
		"message": message,
	})
}
