// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/canonical/company-service/internal/db"
	"github.com/canonical/company-service/internal/logging"
	"github.com/canonical/company-service/internal/monitoring"
	"github.com/canonical/company-service/internal/storage"
	"github.com/canonical/company-service/internal/tracing"
	"github.com/canonical/company-service/internal/types"
)

var actorColumns = []string{
	"id", "mobile_number", "name", "first_name", "last_name", "is_active", "created_at",
}

// Client resolves authenticated actors against the identity store.
type Client struct {
	db db.DBClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (c *Client) GetActorByID(ctx context.Context, id string) (*types.Actor, error) {
	ctx, span := c.tracer.Start(ctx, "identity.Client.GetActorByID")
	defer span.End()

	return c.getActor(ctx, sq.Eq{"id": id})
}

func (c *Client) GetActorByMobile(ctx context.Context, mobile string) (*types.Actor, error) {
	ctx, span := c.tracer.Start(ctx, "identity.Client.GetActorByMobile")
	defer span.End()

	return c.getActor(ctx, sq.Eq{"mobile_number": mobile})
}

func (c *Client) getActor(ctx context.Context, pred interface{}) (*types.Actor, error) {
	var a types.Actor
	err := c.db.Statement(ctx).
		Select(actorColumns...).
		From("actors").
		Where(pred).
		QueryRowContext(ctx).
		Scan(&a.ID, &a.MobileNumber, &a.Name, &a.FirstName, &a.LastName, &a.IsActive, &a.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get actor: %w", err)
	}

	return &a, nil
}

func NewClient(dbClient db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	return &Client{
		db:      dbClient,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
