// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notification

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/company-service/internal/logging"
	"github.com/canonical/company-service/internal/monitoring"
	"github.com/canonical/company-service/internal/storage"
	"github.com/canonical/company-service/internal/tracing"
	"github.com/canonical/company-service/internal/types"
)

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// Notify persists an event for later delivery. Emitters treat the
// error as advisory; a failed notification never rolls back the
// operation it describes.
func (s *Service) Notify(ctx context.Context, n *types.Notification) error {
	ctx, span := s.tracer.Start(ctx, "notification.Service.Notify")
	defer span.End()

	if n.Type == "" {
		n.Type = types.NotificationSystem
	}

	if _, err := s.storage.CreateNotification(ctx, n); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	return nil
}

func (s *Service) ListNotifications(ctx context.Context, actorID string) ([]*types.Notification, error) {
	ctx, span := s.tracer.Start(ctx, "notification.Service.ListNotifications")
	defer span.End()

	return s.storage.ListNotificationsByActorID(ctx, actorID)
}

func (s *Service) CountUnread(ctx context.Context, actorID string) (int, error) {
	ctx, span := s.tracer.Start(ctx, "notification.Service.CountUnread")
	defer span.End()

	return s.storage.CountUnreadNotifications(ctx, actorID)
}

// MarkRead flips the read flag. The actor scoping keeps one actor from
// acknowledging another's notifications.
func (s *Service) MarkRead(ctx context.Context, id, actorID string) error {
	ctx, span := s.tracer.Start(ctx, "notification.Service.MarkRead")
	defer span.End()

	if err := s.storage.MarkNotificationRead(ctx, id, actorID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotificationNotFound
		}
		return fmt.Errorf("failed to mark notification read: %w", err)
	}

	return nil
}
