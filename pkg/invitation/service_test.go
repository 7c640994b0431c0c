// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitation

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/canonical/company-service/internal/logging"
	"github.com/canonical/company-service/internal/monitoring"
	"github.com/canonical/company-service/internal/storage"
	"github.com/canonical/company-service/internal/tracing"
	"github.com/canonical/company-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package invitation -destination ./mock_invitation.go -source=./interfaces.go

const testLifetime = 7 * 24 * time.Hour

type serviceMocks struct {
	storage  *MockStorageInterface
	identity *MockIdentityInterface
	notifier *MockNotifierInterface
	tx       *MockTxManagerInterface
}

func newTestService(ctrl *gomock.Controller) (*Service, *serviceMocks) {
	mocks := &serviceMocks{
		storage:  NewMockStorageInterface(ctrl),
		identity: NewMockIdentityInterface(ctrl),
		notifier: NewMockNotifierInterface(ctrl),
		tx:       NewMockTxManagerInterface(ctrl),
	}
	service := NewService(
		mocks.storage,
		mocks.identity,
		mocks.notifier,
		mocks.tx,
		testLifetime,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)
	return service, mocks
}

// passthroughTx runs the transactional closure on the given context.
func passthroughTx(mocks *serviceMocks) {
	mocks.tx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func pendingInvitation(now time.Time) *types.Invitation {
	actorID := "invitee-1"
	inviterID := "owner-1"
	return &types.Invitation{
		ID:             "invitation-1",
		CompanyID:      "company-1",
		InvitedActorID: &actorID,
		InvitedMobile:  "09123456789",
		InviterID:      &inviterID,
		Position:       types.PositionWorker,
		Status:         types.InvitationPending,
		Token:          "token-1",
		CreatedAt:      now,
		ExpiresAt:      now.Add(testLifetime),
	}
}

func TestService_CreateInvitation(t *testing.T) {
	invitee := &types.Actor{ID: "invitee-1", MobileNumber: "09123456789", IsActive: true}

	tests := []struct {
		name        string
		req         *CreateInvitationRequest
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name: "Invalid mobile format",
			req: &CreateInvitationRequest{
				CompanyID: "company-1",
				InviterID: "owner-1",
				Mobile:    "12345",
				Position:  types.PositionWorker,
			},
			setupMocks:  func(m *serviceMocks) {},
			expectedErr: ErrInvalidMobile,
		},
		{
			name: "Unrecognized position",
			req: &CreateInvitationRequest{
				CompanyID: "company-1",
				InviterID: "owner-1",
				Mobile:    "09123456789",
				Position:  types.Position("CEO"),
			},
			setupMocks:  func(m *serviceMocks) {},
			expectedErr: ErrInvalidPosition,
		},
		{
			name: "Target already an active member",
			req: &CreateInvitationRequest{
				CompanyID: "company-1",
				InviterID: "owner-1",
				Mobile:    "09123456789",
				Position:  types.PositionWorker,
			},
			setupMocks: func(m *serviceMocks) {
				m.identity.EXPECT().GetActorByMobile(gomock.Any(), "09123456789").Return(invitee, nil)
				m.storage.EXPECT().GetMembership(gomock.Any(), "company-1", "invitee-1").Return(&types.Membership{
					Status:   types.MemberStatusActive,
					IsActive: true,
				}, nil)
			},
			expectedErr: ErrAlreadyMember,
		},
		{
			name: "Duplicate pending invitation for actor",
			req: &CreateInvitationRequest{
				CompanyID: "company-1",
				InviterID: "owner-1",
				Mobile:    "09123456789",
				Position:  types.PositionWorker,
			},
			setupMocks: func(m *serviceMocks) {
				m.identity.EXPECT().GetActorByMobile(gomock.Any(), "09123456789").Return(invitee, nil)
				m.storage.EXPECT().GetMembership(gomock.Any(), "company-1", "invitee-1").Return(nil, storage.ErrNotFound)
				m.storage.EXPECT().GetPendingInvitationByActor(gomock.Any(), "company-1", "invitee-1").
					Return(pendingInvitation(time.Now()), nil)
			},
			expectedErr: ErrDuplicatePending,
		},
		{
			name: "Deactivated former member can be invited again",
			req: &CreateInvitationRequest{
				CompanyID: "company-1",
				InviterID: "owner-1",
				Mobile:    "09123456789",
				Position:  types.PositionWorker,
			},
			setupMocks: func(m *serviceMocks) {
				m.identity.EXPECT().GetActorByMobile(gomock.Any(), "09123456789").Return(invitee, nil)
				m.storage.EXPECT().GetMembership(gomock.Any(), "company-1", "invitee-1").Return(&types.Membership{
					Status:   types.MemberStatusInactive,
					IsActive: false,
				}, nil)
				m.storage.EXPECT().GetPendingInvitationByActor(gomock.Any(), "company-1", "invitee-1").Return(nil, storage.ErrNotFound)
				m.storage.EXPECT().GetPendingInvitationByMobile(gomock.Any(), "company-1", "09123456789").Return(nil, storage.ErrNotFound)
				m.storage.EXPECT().CreateInvitation(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, i *types.Invitation) (*types.Invitation, error) {
						created := *i
						created.ID = "invitation-new"
						return &created, nil
					})
				m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "Unregistered mobile handle - no actor reference, no notification",
			req: &CreateInvitationRequest{
				CompanyID: "company-1",
				InviterID: "owner-1",
				Mobile:    "09987654321",
				Position:  types.PositionExpert,
			},
			setupMocks: func(m *serviceMocks) {
				m.identity.EXPECT().GetActorByMobile(gomock.Any(), "09987654321").Return(nil, storage.ErrNotFound)
				m.storage.EXPECT().GetPendingInvitationByMobile(gomock.Any(), "company-1", "09987654321").Return(nil, storage.ErrNotFound)
				m.storage.EXPECT().CreateInvitation(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, i *types.Invitation) (*types.Invitation, error) {
						if i.InvitedActorID != nil {
							t.Error("expected no invited actor reference")
						}
						if i.Status != types.InvitationPending {
							t.Errorf("expected PENDING, got %s", i.Status)
						}
						if i.Token == "" {
							t.Error("expected a token")
						}
						return i, nil
					})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, mocks := newTestService(ctrl)
			tt.setupMocks(mocks)

			created, err := service.CreateInvitation(context.Background(), tt.req)

			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Fatalf("expected error %v, got %v", tt.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if created.Status != types.InvitationPending {
				t.Errorf("expected PENDING, got %s", created.Status)
			}
			wantExpiry := time.Now().Add(testLifetime)
			if created.ExpiresAt.Before(wantExpiry.Add(-time.Minute)) || created.ExpiresAt.After(wantExpiry.Add(time.Minute)) {
				t.Errorf("expiry %v not near now+lifetime", created.ExpiresAt)
			}
		})
	}
}

func TestService_CreateInvitation_TokenUniqueness(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mocks := newTestService(ctrl)

	seen := make(map[string]struct{}, 10000)

	mocks.identity.EXPECT().GetActorByMobile(gomock.Any(), gomock.Any()).Return(nil, storage.ErrNotFound).AnyTimes()
	mocks.storage.EXPECT().GetPendingInvitationByMobile(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, storage.ErrNotFound).AnyTimes()
	mocks.storage.EXPECT().CreateInvitation(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, i *types.Invitation) (*types.Invitation, error) {
			if _, dup := seen[i.Token]; dup {
				t.Fatalf("token collision: %s", i.Token)
			}
			seen[i.Token] = struct{}{}
			return i, nil
		}).AnyTimes()

	for range 10000 {
		_, err := service.CreateInvitation(context.Background(), &CreateInvitationRequest{
			CompanyID: "company-1",
			InviterID: "owner-1",
			Mobile:    "09123456789",
			Position:  types.PositionWorker,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if len(seen) != 10000 {
		t.Fatalf("expected 10000 unique tokens, got %d", len(seen))
	}
}

func TestService_Accept(t *testing.T) {
	now := time.Now()
	invitee := &types.Actor{ID: "invitee-1", MobileNumber: "09123456789", Name: "New Member", IsActive: true}

	tests := []struct {
		name        string
		actorID     string
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name:    "Unknown token",
			actorID: "invitee-1",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetInvitationByToken(gomock.Any(), "token-1").Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrInvitationNotFound,
		},
		{
			name:    "Expired invitation denied, status untouched",
			actorID: "invitee-1",
			setupMocks: func(m *serviceMocks) {
				expired := pendingInvitation(now)
				expired.ExpiresAt = now.Add(-time.Hour)
				m.storage.EXPECT().GetInvitationByToken(gomock.Any(), "token-1").Return(expired, nil)
				m.identity.EXPECT().GetActorByID(gomock.Any(), "invitee-1").Return(invitee, nil)
			},
			expectedErr: ErrInvitationExpired,
		},
		{
			name:    "Already answered",
			actorID: "invitee-1",
			setupMocks: func(m *serviceMocks) {
				answered := pendingInvitation(now)
				answered.Status = types.InvitationAccepted
				m.storage.EXPECT().GetInvitationByToken(gomock.Any(), "token-1").Return(answered, nil)
				m.identity.EXPECT().GetActorByID(gomock.Any(), "invitee-1").Return(invitee, nil)
			},
			expectedErr: ErrInvitationNotPending,
		},
		{
			name:    "Identity mismatch on actor-bound invitation",
			actorID: "intruder",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetInvitationByToken(gomock.Any(), "token-1").Return(pendingInvitation(now), nil)
				m.identity.EXPECT().GetActorByID(gomock.Any(), "intruder").
					Return(&types.Actor{ID: "intruder", MobileNumber: "09111111111", IsActive: true}, nil)
			},
			expectedErr: ErrIdentityMismatch,
		},
		{
			name:    "Identity mismatch on mobile-bound invitation",
			actorID: "intruder",
			setupMocks: func(m *serviceMocks) {
				unbound := pendingInvitation(now)
				unbound.InvitedActorID = nil
				m.storage.EXPECT().GetInvitationByToken(gomock.Any(), "token-1").Return(unbound, nil)
				m.identity.EXPECT().GetActorByID(gomock.Any(), "intruder").
					Return(&types.Actor{ID: "intruder", MobileNumber: "09111111111", IsActive: true}, nil)
			},
			expectedErr: ErrIdentityMismatch,
		},
		{
			name:    "Mobile-bound invitation accepted by matching registered actor",
			actorID: "invitee-1",
			setupMocks: func(m *serviceMocks) {
				unbound := pendingInvitation(now)
				unbound.InvitedActorID = nil
				m.storage.EXPECT().GetInvitationByToken(gomock.Any(), "token-1").Return(unbound, nil)
				m.identity.EXPECT().GetActorByID(gomock.Any(), "invitee-1").Return(invitee, nil)
				passthroughTx(m)
				m.storage.EXPECT().GetMembership(gomock.Any(), "company-1", "invitee-1").Return(nil, storage.ErrNotFound)
				m.storage.EXPECT().CreateMembership(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, membership *types.Membership) (*types.Membership, error) {
						if membership.Position != types.PositionWorker {
							t.Errorf("expected WORKER, got %s", membership.Position)
						}
						if !membership.IsActive || membership.Status != types.MemberStatusActive {
							t.Error("expected an effective membership")
						}
						created := *membership
						created.ID = "membership-1"
						return &created, nil
					})
				m.storage.EXPECT().TransitionInvitation(gomock.Any(), "invitation-1",
					types.InvitationPending, types.InvitationAccepted, gomock.Any()).Return(nil)
				m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:    "Idempotent accept when already a member",
			actorID: "invitee-1",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetInvitationByToken(gomock.Any(), "token-1").Return(pendingInvitation(now), nil)
				m.identity.EXPECT().GetActorByID(gomock.Any(), "invitee-1").Return(invitee, nil)
				passthroughTx(m)
				m.storage.EXPECT().GetMembership(gomock.Any(), "company-1", "invitee-1").Return(&types.Membership{
					ID:       "membership-1",
					Status:   types.MemberStatusActive,
					IsActive: true,
				}, nil)
				m.storage.EXPECT().TransitionInvitation(gomock.Any(), "invitation-1",
					types.InvitationPending, types.InvitationAccepted, gomock.Any()).Return(nil)
				m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:    "Former member revived on accept",
			actorID: "invitee-1",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetInvitationByToken(gomock.Any(), "token-1").Return(pendingInvitation(now), nil)
				m.identity.EXPECT().GetActorByID(gomock.Any(), "invitee-1").Return(invitee, nil)
				passthroughTx(m)
				leaveDate := now.Add(-30 * 24 * time.Hour)
				m.storage.EXPECT().GetMembership(gomock.Any(), "company-1", "invitee-1").Return(&types.Membership{
					ID:        "membership-1",
					CompanyID: "company-1",
					ActorID:   "invitee-1",
					Position:  types.PositionExpert,
					Status:    types.MemberStatusInactive,
					IsActive:  false,
					LeaveDate: &leaveDate,
				}, nil)
				m.storage.EXPECT().UpdateMembership(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, membership *types.Membership, paths []string) error {
						if !membership.IsActive || membership.Status != types.MemberStatusActive {
							t.Error("expected the membership to be revived as effective")
						}
						if membership.Position != types.PositionWorker {
							t.Errorf("expected the invitation's position WORKER, got %s", membership.Position)
						}
						if membership.LeaveDate != nil {
							t.Error("expected the leave date to be cleared")
						}
						if membership.JoinDate.IsZero() {
							t.Error("expected the join date to be re-stamped")
						}
						return nil
					})
				m.storage.EXPECT().TransitionInvitation(gomock.Any(), "invitation-1",
					types.InvitationPending, types.InvitationAccepted, gomock.Any()).Return(nil)
				m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:    "Concurrent accept loses the compare-and-set",
			actorID: "invitee-1",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetInvitationByToken(gomock.Any(), "token-1").Return(pendingInvitation(now), nil)
				m.identity.EXPECT().GetActorByID(gomock.Any(), "invitee-1").Return(invitee, nil)
				passthroughTx(m)
				m.storage.EXPECT().GetMembership(gomock.Any(), "company-1", "invitee-1").Return(&types.Membership{
					ID:       "membership-1",
					Status:   types.MemberStatusActive,
					IsActive: true,
				}, nil)
				m.storage.EXPECT().TransitionInvitation(gomock.Any(), "invitation-1",
					types.InvitationPending, types.InvitationAccepted, gomock.Any()).Return(storage.ErrNotFound)
			},
			expectedErr: ErrInvitationNotPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, mocks := newTestService(ctrl)
			tt.setupMocks(mocks)

			membership, err := service.Accept(context.Background(), "token-1", tt.actorID)

			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Fatalf("expected error %v, got %v", tt.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if membership == nil || membership.ID != "membership-1" {
				t.Errorf("unexpected membership: %+v", membership)
			}
		})
	}
}

func TestService_Reject(t *testing.T) {
	now := time.Now()
	invitee := &types.Actor{ID: "invitee-1", MobileNumber: "09123456789", IsActive: true}

	t.Run("Pending invitation rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mocks := newTestService(ctrl)
		mocks.storage.EXPECT().GetInvitationByToken(gomock.Any(), "token-1").Return(pendingInvitation(now), nil)
		mocks.identity.EXPECT().GetActorByID(gomock.Any(), "invitee-1").Return(invitee, nil)
		mocks.storage.EXPECT().TransitionInvitation(gomock.Any(), "invitation-1",
			types.InvitationPending, types.InvitationRejected, gomock.Any()).Return(nil)
		mocks.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)

		if err := service.Reject(context.Background(), "token-1", "invitee-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("Expired invitation cannot be rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mocks := newTestService(ctrl)
		expired := pendingInvitation(now)
		expired.ExpiresAt = now.Add(-time.Hour)
		mocks.storage.EXPECT().GetInvitationByToken(gomock.Any(), "token-1").Return(expired, nil)
		mocks.identity.EXPECT().GetActorByID(gomock.Any(), "invitee-1").Return(invitee, nil)

		if err := service.Reject(context.Background(), "token-1", "invitee-1"); !errors.Is(err, ErrInvitationExpired) {
			t.Fatalf("expected ErrInvitationExpired, got %v", err)
		}
	})
}

func TestService_Cancel(t *testing.T) {
	now := time.Now()
	company := &types.Company{ID: "company-1", OwnerID: "owner-1", IsActive: true}

	tests := []struct {
		name        string
		actorID     string
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name:    "Owner cancels a pending invitation",
			actorID: "owner-1",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetInvitationByID(gomock.Any(), "invitation-1").Return(pendingInvitation(now), nil)
				m.storage.EXPECT().GetCompanyByID(gomock.Any(), "company-1").Return(company, nil)
				m.storage.EXPECT().TransitionInvitation(gomock.Any(), "invitation-1",
					types.InvitationPending, types.InvitationCancelled, gomock.Any()).Return(nil)
			},
		},
		{
			name:    "Non-owner denied",
			actorID: "manager-1",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetInvitationByID(gomock.Any(), "invitation-1").Return(pendingInvitation(now), nil)
				m.storage.EXPECT().GetCompanyByID(gomock.Any(), "company-1").Return(company, nil)
			},
			expectedErr: ErrNotOwner,
		},
		{
			name:    "Already answered invitation cannot be cancelled",
			actorID: "owner-1",
			setupMocks: func(m *serviceMocks) {
				answered := pendingInvitation(now)
				answered.Status = types.InvitationAccepted
				m.storage.EXPECT().GetInvitationByID(gomock.Any(), "invitation-1").Return(answered, nil)
				m.storage.EXPECT().GetCompanyByID(gomock.Any(), "company-1").Return(company, nil)
			},
			expectedErr: ErrInvitationNotPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, mocks := newTestService(ctrl)
			tt.setupMocks(mocks)

			err := service.Cancel(context.Background(), "invitation-1", tt.actorID)

			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Fatalf("expected error %v, got %v", tt.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_Resend(t *testing.T) {
	now := time.Now()
	company := &types.Company{ID: "company-1", OwnerID: "owner-1", IsActive: true}

	t.Run("Lapsed pending original marked expired, sibling issued", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mocks := newTestService(ctrl)
		lapsed := pendingInvitation(now)
		lapsed.ExpiresAt = now.Add(-time.Hour)
		mocks.storage.EXPECT().GetInvitationByID(gomock.Any(), "invitation-1").Return(lapsed, nil)
		mocks.storage.EXPECT().GetCompanyByID(gomock.Any(), "company-1").Return(company, nil)
		mocks.storage.EXPECT().TransitionInvitation(gomock.Any(), "invitation-1",
			types.InvitationPending, types.InvitationExpired, nil).Return(nil)
		mocks.storage.EXPECT().CreateInvitation(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, i *types.Invitation) (*types.Invitation, error) {
				if i.Token == lapsed.Token {
					t.Error("sibling must carry a fresh token")
				}
				if !i.ExpiresAt.After(now) {
					t.Error("sibling must carry a fresh expiry")
				}
				created := *i
				created.ID = "invitation-2"
				return &created, nil
			})
		mocks.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)

		created, err := service.Resend(context.Background(), "invitation-1", "owner-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != "invitation-2" {
			t.Errorf("expected sibling invitation, got %s", created.ID)
		}
	})

	t.Run("Still pending original closed before sibling is issued", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mocks := newTestService(ctrl)
		mocks.storage.EXPECT().GetInvitationByID(gomock.Any(), "invitation-1").Return(pendingInvitation(now), nil)
		mocks.storage.EXPECT().GetCompanyByID(gomock.Any(), "company-1").Return(company, nil)
		mocks.storage.EXPECT().TransitionInvitation(gomock.Any(), "invitation-1",
			types.InvitationPending, types.InvitationCancelled, nil).Return(nil)
		mocks.storage.EXPECT().CreateInvitation(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, i *types.Invitation) (*types.Invitation, error) {
				return i, nil
			})
		mocks.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)

		if _, err := service.Resend(context.Background(), "invitation-1", "owner-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("Answered invitation is not resendable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mocks := newTestService(ctrl)
		answered := pendingInvitation(now)
		answered.Status = types.InvitationRejected
		mocks.storage.EXPECT().GetInvitationByID(gomock.Any(), "invitation-1").Return(answered, nil)
		mocks.storage.EXPECT().GetCompanyByID(gomock.Any(), "company-1").Return(company, nil)

		if _, err := service.Resend(context.Background(), "invitation-1", "owner-1"); !errors.Is(err, ErrAlreadyAnswered) {
			t.Fatalf("expected ErrAlreadyAnswered, got %v", err)
		}
	})

	t.Run("Non-owner denied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mocks := newTestService(ctrl)
		mocks.storage.EXPECT().GetInvitationByID(gomock.Any(), "invitation-1").Return(pendingInvitation(now), nil)
		mocks.storage.EXPECT().GetCompanyByID(gomock.Any(), "company-1").Return(company, nil)

		if _, err := service.Resend(context.Background(), "invitation-1", "worker-1"); !errors.Is(err, ErrNotOwner) {
			t.Fatalf("expected ErrNotOwner, got %v", err)
		}
	})
}

func TestInvitation_IsExpired(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name       string
		invitation *types.Invitation
		expected   bool
	}{
		{
			name:       "No expiry set",
			invitation: &types.Invitation{Status: types.InvitationPending},
			expected:   false,
		},
		{
			name: "Terminal status is never re-evaluated",
			invitation: &types.Invitation{
				Status:    types.InvitationAccepted,
				ExpiresAt: now.Add(-time.Hour),
			},
			expected: false,
		},
		{
			name: "Pending past expiry",
			invitation: &types.Invitation{
				Status:    types.InvitationPending,
				ExpiresAt: now.Add(-time.Hour),
			},
			expected: true,
		},
		{
			name: "Pending before expiry",
			invitation: &types.Invitation{
				Status:    types.InvitationPending,
				ExpiresAt: now.Add(time.Hour),
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.invitation.IsExpired(now); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}
