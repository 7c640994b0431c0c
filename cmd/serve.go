// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/canonical/company-service/internal/config"
	"github.com/canonical/company-service/internal/db"
	"github.com/canonical/company-service/internal/identity"
	"github.com/canonical/company-service/internal/logging"
	"github.com/canonical/company-service/internal/monitoring/prometheus"
	"github.com/canonical/company-service/internal/storage"
	"github.com/canonical/company-service/internal/tracing"
	"github.com/canonical/company-service/pkg/access"
	"github.com/canonical/company-service/pkg/authentication"
	"github.com/canonical/company-service/pkg/company"
	"github.com/canonical/company-service/pkg/invitation"
	"github.com/canonical/company-service/pkg/member"
	"github.com/canonical/company-service/pkg/notification"
	"github.com/canonical/company-service/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("company-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	identityClient := identity.NewClient(dbClient, tracer, monitor, logger)

	accessService := access.NewService(s, tracer, monitor, logger)
	companyService := company.NewService(s, tracer, monitor, logger)
	memberService := member.NewService(s, identityClient, tracer, monitor, logger)
	notificationService := notification.NewService(s, tracer, monitor, logger)
	invitationService := invitation.NewService(
		s,
		identityClient,
		notificationService,
		dbClient,
		specs.InvitationLifetime,
		tracer,
		monitor,
		logger,
	)

	var authnMiddleware *authentication.Middleware
	if specs.AuthenticationEnabled {
		verifier, err := authentication.NewJWTAuthenticator(
			context.Background(),
			specs.OIDCIssuer,
			specs.JWKSURL,
			specs.AllowedSubjects,
			specs.RequiredScope,
			tracer,
			monitor,
			logger,
		)
		if err != nil {
			return fmt.Errorf("failed to set up authentication: %v", err)
		}
		authnMiddleware = authentication.NewMiddleware(verifier, tracer, monitor, logger)
		logger.Info("Authentication is enabled")
	} else {
		logger.Info("Authentication is disabled, actor identity comes from the identity header")
	}

	router := web.NewRouter(
		web.RouterConfig{
			CompanyAPI:         company.NewAPI(companyService, tracer, logger),
			MemberAPI:          member.NewAPI(memberService, tracer, logger),
			InvitationAPI:      invitation.NewAPI(invitationService, tracer, logger),
			NotificationAPI:    notification.NewAPI(notificationService, tracer, logger),
			AccessMiddleware:   access.NewMiddleware(accessService, tracer, logger),
			IdentityMiddleware: identity.NewMiddleware(identityClient, tracer, logger),
			AuthnMiddleware:    authnMiddleware,
			DBClient:           dbClient,
			CORSAllowedOrigins: specs.CORSAllowedOrigins,
		},
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}
