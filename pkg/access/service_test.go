// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/company-service/internal/logging"
	"github.com/canonical/company-service/internal/monitoring"
	"github.com/canonical/company-service/internal/storage"
	"github.com/canonical/company-service/internal/tracing"
	"github.com/canonical/company-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package access -destination ./mock_access.go -source=./interfaces.go

func newService(storageMock StorageInterface) *Service {
	return NewService(storageMock, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func TestService_Resolve(t *testing.T) {
	company := &types.Company{ID: "company-1", OwnerID: "owner-1", IsActive: true}

	tests := []struct {
		name           string
		actorID        string
		capability     Capability
		setupMocks     func(*MockStorageInterface)
		expectedAllow  bool
		expectedReason string
		expectedErr    error
	}{
		{
			name:       "Owner allowed for any capability",
			actorID:    "owner-1",
			capability: CapabilityManage,
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetCompanyByID(gomock.Any(), "company-1").Return(company, nil)
				m.EXPECT().GetMembership(gomock.Any(), "company-1", "owner-1").Return(nil, storage.ErrNotFound)
			},
			expectedAllow: true,
		},
		{
			name:       "Non-member denied with not a member reason",
			actorID:    "stranger",
			capability: CapabilityView,
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetCompanyByID(gomock.Any(), "company-1").Return(company, nil)
				m.EXPECT().GetMembership(gomock.Any(), "company-1", "stranger").Return(nil, storage.ErrNotFound)
			},
			expectedAllow:  false,
			expectedReason: ReasonNotMember,
		},
		{
			name:       "Expert allowed to edit",
			actorID:    "expert-1",
			capability: CapabilityEdit,
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetCompanyByID(gomock.Any(), "company-1").Return(company, nil)
				m.EXPECT().GetMembership(gomock.Any(), "company-1", "expert-1").Return(activeMembership(types.PositionExpert), nil)
			},
			expectedAllow: true,
		},
		{
			name:       "Expert denied manage with insufficient position reason",
			actorID:    "expert-1",
			capability: CapabilityManage,
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetCompanyByID(gomock.Any(), "company-1").Return(company, nil)
				m.EXPECT().GetMembership(gomock.Any(), "company-1", "expert-1").Return(activeMembership(types.PositionExpert), nil)
			},
			expectedAllow:  false,
			expectedReason: ReasonInsufficientPosition,
		},
		{
			name:       "Worker denied manage",
			actorID:    "worker-1",
			capability: CapabilityManage,
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetCompanyByID(gomock.Any(), "company-1").Return(company, nil)
				m.EXPECT().GetMembership(gomock.Any(), "company-1", "worker-1").Return(activeMembership(types.PositionWorker), nil)
			},
			expectedAllow:  false,
			expectedReason: ReasonInsufficientPosition,
		},
		{
			name:       "Unknown company reported before permission logic",
			actorID:    "owner-1",
			capability: CapabilityView,
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetCompanyByID(gomock.Any(), "company-1").Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrCompanyNotFound,
		},
		{
			name:       "Storage failure propagates",
			actorID:    "owner-1",
			capability: CapabilityView,
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetCompanyByID(gomock.Any(), "company-1").Return(nil, fmt.Errorf("connection refused"))
			},
			expectedErr: errors.New("connection refused"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			tt.setupMocks(mockStorage)

			decision, err := newService(mockStorage).Resolve(context.Background(), tt.actorID, "company-1", tt.capability)

			if tt.expectedErr != nil {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if errors.Is(tt.expectedErr, ErrCompanyNotFound) && !errors.Is(err, ErrCompanyNotFound) {
					t.Errorf("expected ErrCompanyNotFound, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if decision.Allow != tt.expectedAllow {
				t.Errorf("expected allow=%v, got %v", tt.expectedAllow, decision.Allow)
			}
			if tt.expectedReason != "" && decision.Reason != tt.expectedReason {
				t.Errorf("expected reason %q, got %q", tt.expectedReason, decision.Reason)
			}
		})
	}
}

func TestService_ResolveBasic(t *testing.T) {
	company := &types.Company{ID: "company-1", OwnerID: "owner-1", IsActive: true}

	tests := []struct {
		name          string
		actorID       string
		membership    *types.Membership
		expectedAllow bool
	}{
		{"Owner allowed", "owner-1", nil, true},
		{"Supervisor allowed", "supervisor-1", activeMembership(types.PositionSupervisor), true},
		{"Expert denied", "expert-1", activeMembership(types.PositionExpert), false},
		{"Non-member denied", "stranger", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockStorage.EXPECT().GetCompanyByID(gomock.Any(), "company-1").Return(company, nil)
			if tt.membership != nil {
				mockStorage.EXPECT().GetMembership(gomock.Any(), "company-1", tt.actorID).Return(tt.membership, nil)
			} else {
				mockStorage.EXPECT().GetMembership(gomock.Any(), "company-1", tt.actorID).Return(nil, storage.ErrNotFound)
			}

			decision, err := newService(mockStorage).ResolveBasic(context.Background(), tt.actorID, "company-1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if decision.Allow != tt.expectedAllow {
				t.Errorf("expected allow=%v, got %v", tt.expectedAllow, decision.Allow)
			}
		})
	}
}

func TestService_BindContext(t *testing.T) {
	company := &types.Company{ID: "company-1", OwnerID: "owner-1", IsActive: true}

	tests := []struct {
		name            string
		actorID         string
		setupMocks      func(*MockStorageInterface)
		expectedErr     error
		expectedIsOwner bool
		expectMember    bool
	}{
		{
			name:    "Owner bound without membership",
			actorID: "owner-1",
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetCompanyByID(gomock.Any(), "company-1").Return(company, nil)
				m.EXPECT().GetMembership(gomock.Any(), "company-1", "owner-1").Return(nil, storage.ErrNotFound)
			},
			expectedIsOwner: true,
		},
		{
			name:    "Worker bound with membership",
			actorID: "worker-1",
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetCompanyByID(gomock.Any(), "company-1").Return(company, nil)
				m.EXPECT().GetMembership(gomock.Any(), "company-1", "worker-1").Return(activeMembership(types.PositionWorker), nil)
			},
			expectMember: true,
		},
		{
			name:    "Stranger rejected",
			actorID: "stranger",
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetCompanyByID(gomock.Any(), "company-1").Return(company, nil)
				m.EXPECT().GetMembership(gomock.Any(), "company-1", "stranger").Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrNoRelationship,
		},
		{
			name:    "Unknown company rejected",
			actorID: "owner-1",
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetCompanyByID(gomock.Any(), "company-1").Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrCompanyNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			tt.setupMocks(mockStorage)

			ctx, err := newService(mockStorage).BindContext(context.Background(), tt.actorID, "company-1")

			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Fatalf("expected error %v, got %v", tt.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			ac, ok := FromContext(ctx)
			if !ok {
				t.Fatal("access context not bound")
			}
			if ac.Company.ID != "company-1" {
				t.Errorf("expected company-1, got %s", ac.Company.ID)
			}
			if ac.IsOwner != tt.expectedIsOwner {
				t.Errorf("expected IsOwner=%v, got %v", tt.expectedIsOwner, ac.IsOwner)
			}
			if tt.expectMember && ac.Membership == nil {
				t.Error("expected membership in access context")
			}
		})
	}
}

func TestFromContext_NotBound(t *testing.T) {
	if _, ok := FromContext(context.Background()); ok {
		t.Error("expected no access context on a fresh context")
	}
}
