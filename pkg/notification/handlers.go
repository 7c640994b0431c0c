// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notification

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/company-service/internal/logging"
	"github.com/canonical/company-service/internal/tracing"
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

func (a *API) RegisterEndpoints(r chi.Router) {
	r.Get("/notifications", a.list)
	r.Get("/notifications/count", a.countUnread)
	r.Post("/notifications/{notificationID}/read", a.markRead)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actorID, ok := authentication.GetActorID(ctx)
	if !ok {
		a.errorResponse(w, http.StatusUnauthorized, "missing actor identity")
		return
	}

	notifications, err := a.service.ListNotifications(ctx, actorID)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.jsonResponse(w, http.StatusOK, notifications)
}

func (a *API) countUnread(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actorID, ok := authentication.GetActorID(ctx)
	if !ok {
		a.errorResponse(w, http.StatusUnauthorized, "missing actor identity")
		return
	}

	count, err := a.service.CountUnread(ctx, actorID)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.jsonResponse(w, http.StatusOK, map[string]int{"unread": count})
}

func (a *API) markRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actorID, ok := authentication.GetActorID(ctx)
	if !ok {
		a.errorResponse(w, http.StatusUnauthorized, "missing actor identity")
		return
	}

	if err := a.service.MarkRead(ctx, chi.URLParam(r, "notificationID"), actorID); err != nil {
		a.serviceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) serviceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotificationNotFound):
		a.errorResponse(w, http.StatusNotFound, err.Error())
	default:
		a.logger.Errorf("notification operation failed: %v", err)
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
