// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notification

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/company-service/internal/logging"
	"github.com/canonical/company-service/internal/monitoring"
	"github.com/canonical/company-service/internal/storage"
	"github.com/canonical/company-service/internal/tracing"
	"github.com/canonical/company-service/internal/types"
)

func newTestService(storage StorageInterface) *Service {
	return NewService(
		storage,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)
}

func TestService_Notify(t *testing.T) {
	t.Run("Persists the notification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStorage := NewMockStorageInterface(ctrl)
		mockStorage.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, n *types.Notification) (*types.Notification, error) {
				if n.Type != types.NotificationInvitation {
					t.Errorf("expected INVITATION type, got %s", n.Type)
				}
				n.ID = "notification-1"
				return n, nil
			})

		err := newTestService(mockStorage).Notify(context.Background(), &types.Notification{
			ActorID: "actor-1",
			Title:   "Company invitation",
			Type:    types.NotificationInvitation,
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("Defaults to SYSTEM type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStorage := NewMockStorageInterface(ctrl)
		mockStorage.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, n *types.Notification) (*types.Notification, error) {
				if n.Type != types.NotificationSystem {
					t.Errorf("expected SYSTEM type, got %s", n.Type)
				}
				return n, nil
			})

		err := newTestService(mockStorage).Notify(context.Background(), &types.Notification{ActorID: "actor-1"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("Storage failure surfaces to the emitter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStorage := NewMockStorageInterface(ctrl)
		mockStorage.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))

		err := newTestService(mockStorage).Notify(context.Background(), &types.Notification{ActorID: "actor-1"})
		if err == nil {
			t.Fatal("expected an error")
		}
	})
}

func TestService_MarkRead(t *testing.T) {
	tests := []struct {
		name        string
		storageErr  error
		expectedErr error
	}{
		{"Marked", nil, nil},
		{"Unknown or foreign notification", storage.ErrNotFound, ErrNotificationNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockStorage.EXPECT().MarkNotificationRead(gomock.Any(), "notification-1", "actor-1").Return(tt.storageErr)

			err := newTestService(mockStorage).MarkRead(context.Background(), "notification-1", "actor-1")
			if !errors.Is(err, tt.expectedErr) {
				t.Fatalf("expected error %v, got %v", tt.expectedErr, err)
			}
		})
	}
}

func TestService_CountUnread(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().CountUnreadNotifications(gomock.Any(), "actor-1").Return(3, nil)

	count, err := newTestService(mockStorage).CountUnread(context.Background(), "actor-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if count != 3 {
		t.Errorf("expected 3 unread, got %d", count)
	}
}
