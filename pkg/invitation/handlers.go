// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitation

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/company-service/internal/logging"
	"github.com/canonical/company-service/internal/tracing"
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

// RegisterCompanyEndpoints mounts the company scoped invitation routes.
// The router is expected to carry the access.CompanyContext middleware.
func (a *API) RegisterCompanyEndpoints(r chi.Router) {
	r.Get("/invitations", a.list)
	r.Post("/invitations", a.create)
	r.Get("/invitations/stats", a.stats)
}

// RegisterEndpoints mounts the token and ID scoped invitation routes.
func (a *API) RegisterEndpoints(r chi.Router) {
	r.Post("/invitations/{token}/accept", a.accept)
	r.Post("/invitations/{token}/reject", a.reject)
	r.Post("/invitations/{invitationID}/resend", a.resend)
	r.Post("/invitations/{invitationID}/cancel", a.cancel)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if decision := access.Require(ctx, access.CapabilityManage); !decision.Allow {
		a.errorResponse(w, http.StatusForbidden, decision.Reason)
		return
	}

	ac, _ := access.FromContext(ctx)
	invitations, err := a.service.ListInvitations(ctx, ac.Company.ID)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.jsonResponse(w, http.StatusOK, invitations)
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if decision := access.Require(ctx, access.CapabilityManage); !decision.Allow {
		a.errorResponse(w, http.StatusForbidden, decision.Reason)
		return
	}

	actorID, _ := authentication.GetActorID(ctx)
	ac, _ := access.FromContext(ctx)

	req := new(CreateInvitationRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		a.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.CompanyID = ac.Company.ID
	req.InviterID = actorID

	created, err := a.service.CreateInvitation(ctx, req)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.jsonResponse(w, http.StatusCreated, created)
}

func (a *API) stats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if decision := access.Require(ctx, access.CapabilityManage); !decision.Allow {
		a.errorResponse(w, http.StatusForbidden, decision.Reason)
		return
	}

	ac, _ := access.FromContext(ctx)
	stats, err := a.service.GetStats(ctx, ac.Company.ID)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.jsonResponse(w, http.StatusOK, stats)
}

func (a *API) accept(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actorID, ok := authentication.GetActorID(ctx)
	if !ok {
		a.errorResponse(w, http.StatusUnauthorized, "missing actor identity")
		return
	}

	membership, err := a.service.Accept(ctx, chi.URLParam(r, "token"), actorID)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.jsonResponse(w, http.StatusOK, membership)
}

func (a *API) reject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actorID, ok := authentication.GetActorID(ctx)
	if !ok {
		a.errorResponse(w, http.StatusUnauthorized, "missing actor identity")
		return
	}

	if err := a.service.Reject(ctx, chi.URLParam(r, "token"), actorID); err != nil {
		a.serviceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) resend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actorID, ok := authentication.GetActorID(ctx)
	if !ok {
		a.errorResponse(w, http.StatusUnauthorized, "missing actor identity")
		return
	}

	created, err := a.service.Resend(ctx, chi.URLParam(r, "invitationID"), actorID)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.jsonResponse(w, http.StatusCreated, created)
}

func (a *API) cancel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actorID, ok := authentication.GetActorID(ctx)
	if !ok {
		a.errorResponse(w, http.StatusUnauthorized, "missing actor identity")
		return
	}

	if err := a.service.Cancel(ctx, chi.URLParam(r, "invitationID"), actorID); err != nil {
		a.serviceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// serviceError maps typed service errors to HTTP statuses.
func (a *API) serviceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvitationNotFound):
		a.errorResponse(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvitationExpired):
		a.errorResponse(w, http.StatusGone, err.Error())
	case errors.Is(err, ErrInvitationNotPending),
		errors.Is(err, ErrAlreadyAnswered),
		errors.Is(err, ErrAlreadyMember),
		errors.Is(err, ErrDuplicatePending):
		a.errorResponse(w, http.StatusConflict, err.Error())
	case errors.Is(err, ErrIdentityMismatch), errors.Is(err, ErrNotOwner):
		a.errorResponse(w, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrInvalidMobile), errors.Is(err, ErrInvalidPosition):
		a.errorResponse(w, http.StatusBadRequest, err.Error())
	default:
		a.logger.Errorf("invitation request failed: %v", err)
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
