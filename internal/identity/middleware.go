// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/canonical/company-service/internal/logging"
	"github.com/canonical/company-service/internal/storage"
	"github.com/canonical/company-service/internal/tracing"
	"github.com/canonical/company-service/pkg/authentication"
)

const ActorIDHeader = "X-Authenticated-Actor-Id"

// Middleware resolves the caller's identity from the trusted gateway
// header and rejects requests whose actor is unknown or deactivated.
type Middleware struct {
	store IdentityStoreInterface

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func (m *Middleware) ResolveActor() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "identity.Middleware.ResolveActor")
			defer span.End()

			actorID, ok := authentication.GetActorID(ctx)
			if !ok {
				actorID = r.Header.Get(ActorIDHeader)
			}
			if actorID == "" {
				m.unauthorizedResponse(w, "missing actor identity")
				return
			}

			actor, err := m.store.GetActorByID(ctx, actorID)
			if err != nil {
				if errors.Is(err, storage.ErrNotFound) {
					m.unauthorizedResponse(w, "unknown actor")
					return
				}
				m.logger.Errorf("failed to resolve actor %s: %v", actorID, err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if !actor.IsActive {
				m.logger.Security().AuthzFailure(actorID, "deactivated_actor")
				m.unauthorizedResponse(w, "actor is deactivated")
				return
			}

			ctx = authentication.WithActorID(ctx, actor.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (m *Middleware) unauthorizedResponse(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  http.StatusUnauthorized,
		"message": message,
	}); err != nil {
		m.logger.Errorf("failed to encode unauthorized response: %v", err)
	}
}

func NewMiddleware(store IdentityStoreInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		store:  store,
		tracer: tracer,
		logger: logger,
	}
}
