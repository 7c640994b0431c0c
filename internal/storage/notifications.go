// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/company-service/internal/types"
)

var notificationColumns = []string{
	"id", "actor_id", "title", "message", "notification_type",
	"is_read", "related_object_id", "related_object_type", "created_at",
}

func scanNotification(row sq.RowScanner) (*types.Notification, error) {
	var n types.Notification
	err := row.Scan(
		&n.ID, &n.ActorID, &n.Title, &n.Message, &n.Type,
		&n.IsRead, &n.RelatedObjectID, &n.RelatedObjectType, &n.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (s *Storage) CreateNotification(ctx context.Context, n *types.Notification) (*types.Notification, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateNotification")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate notification ID: %w", err)
	}

	created, err := scanNotification(s.db.Statement(ctx).
		Insert("notifications").
		Columns("id", "actor_id", "title", "message", "notification_type",
			"related_object_id", "related_object_type").
		Values(id.String(), n.ActorID, n.Title, n.Message, n.Type,
			n.RelatedObjectID, n.RelatedObjectType).
		Suffix("RETURNING " + joinColumns(notificationColumns)).
		QueryRowContext(ctx))

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert notification: %w", err)
	}

	return created, nil
}

func (s *Storage) ListNotificationsByActorID(ctx context.Context, actorID string) ([]*types.Notification, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListNotificationsByActorID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(notificationColumns...).
		From("notifications").
		Where(sq.Eq{"actor_id": actorID}).
		OrderBy("created_at DESC").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*types.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return notifications, nil
}

func (s *Storage) CountUnreadNotifications(ctx context.Context, actorID string) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountUnreadNotifications")
	defer span.End()

	var count int
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("notifications").
		Where(sq.Eq{"actor_id": actorID, "is_read": false}).
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return count, nil
}

func (s *Storage) MarkNotificationRead(ctx context.Context, id, actorID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.MarkNotificationRead")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("notifications").
		Set("is_read", true).
		Where(sq.Eq{"id": id, "actor_id": actorID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}
