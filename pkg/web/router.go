// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/company-service/internal/db"
	"github.com/canonical/company-service/internal/identity"
	"github.com/canonical/company-service/internal/logging"
	"github.com/canonical/company-service/internal/monitoring"
	"github.com/canonical/company-service/internal/tracing"
	"github.com/canonical/company-service/pkg/access"
	"github.com/canonical/company-service/pkg/authentication"
	"github.com/canonical/company-service/pkg/company"
	"github.com/canonical/company-service/pkg/invitation"
	"github.com/canonical/company-service/pkg/member"
	"github.com/canonical/company-service/pkg/metrics"
	"github.com/canonical/company-service/pkg/notification"
	"github.com/canonical/company-service/pkg/status"
)

// RouterConfig carries the request pipeline pieces. AuthnMiddleware is
// nil when token authentication is disabled; actor identity then comes
// from the identity header alone.
type RouterConfig struct {
	CompanyAPI      *company.API
	MemberAPI       *member.API
	InvitationAPI   *invitation.API
	NotificationAPI *notification.API

	AccessMiddleware   *access.Middleware
	IdentityMiddleware *identity.Middleware
	AuthnMiddleware    *authentication.Middleware

	DBClient           db.DBClientInterface
	CORSAllowedOrigins []string
}

func NewRouter(
	cfg RouterConfig,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(cfg.CORSAllowedOrigins),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)

	router.Route("/api/v0", func(r chi.Router) {
		if cfg.AuthnMiddleware != nil {
			r.Use(cfg.AuthnMiddleware.Authenticate())
		}
		r.Use(cfg.IdentityMiddleware.ResolveActor())
		r.Use(db.TransactionMiddleware(cfg.DBClient, logger))

		cfg.CompanyAPI.RegisterEndpoints(r)
		cfg.InvitationAPI.RegisterEndpoints(r)
		cfg.NotificationAPI.RegisterEndpoints(r)

		r.Route("/companies/{companyID}", func(cr chi.Router) {
			cr.Use(cfg.AccessMiddleware.CompanyContext())

			cfg.CompanyAPI.RegisterCompanyEndpoints(cr)
			cfg.MemberAPI.RegisterCompanyEndpoints(cr)
			cfg.InvitationAPI.RegisterCompanyEndpoints(cr)
		})
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
