// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notification

import (
	"context"

	"github.com/canonical/company-service/internal/types"
)

type ServiceInterface interface {
	Notify(ctx context.Context, n *types.Notification) error
	ListNotifications(ctx context.Context, actorID string) ([]*types.Notification, error)
	CountUnread(ctx context.Context, actorID string) (int, error)
	MarkRead(ctx context.Context, id, actorID string) error
}

type StorageInterface interface {
	CreateNotification(ctx context.Context, n *types.Notification) (*types.Notification, error)
	ListNotificationsByActorID(ctx context.Context, actorID string) ([]*types.Notification, error)
	CountUnreadNotifications(ctx context.Context, actorID string) (int, error)
	MarkNotificationRead(ctx context.Context, id, actorID string) error
}
