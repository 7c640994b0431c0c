// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/company-service/internal/logging"
	"github.com/canonical/company-service/internal/tracing"
	"github.com/canonical/company-service/internal/types"
	"github.com/canonical/company-service/pkg/access"
	"github.com/canonical/company-service/pkg/authentication"
)

func newTestAPI(service ServiceInterface) *API {
	return NewAPI(service, tracing.NewNoopTracer(), logging.NewNoopLogger())
}

func bindAccess(r *http.Request, actorID string, ac *access.Context) *http.Request {
	ctx := authentication.WithActorID(r.Context(), actorID)
	if ac != nil {
		ctx = access.WithContext(ctx, ac)
	}
	return r.WithContext(ctx)
}

func managerAccess() *access.Context {
	return &access.Context{
		Company: &types.Company{ID: "company-1", OwnerID: "owner-1"},
		Membership: &types.Membership{
			Position: types.PositionManager,
			Status:   types.MemberStatusActive,
			IsActive: true,
		},
	}
}

func workerAccess() *access.Context {
	return &access.Context{
		Company: &types.Company{ID: "company-1", OwnerID: "owner-1"},
		Membership: &types.Membership{
			Position: types.PositionWorker,
			Status:   types.MemberStatusActive,
			IsActive: true,
		},
	}
}

func TestAPI_Create(t *testing.T) {
	tests := []struct {
		name               string
		accessContext      *access.Context
		setupMocks         func(*MockServiceInterface)
		expectedStatusCode int
	}{
		{
			name:               "Worker denied",
			accessContext:      workerAccess(),
			setupMocks:         func(m *MockServiceInterface) {},
			expectedStatusCode: http.StatusForbidden,
		},
		{
			name:          "Manager creates invitation",
			accessContext: managerAccess(),
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().CreateInvitation(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx interface{}, req *CreateInvitationRequest) (*types.Invitation, error) {
						if req.CompanyID != "company-1" {
							t.Errorf("expected company-1, got %s", req.CompanyID)
						}
						if req.InviterID != "manager-1" {
							t.Errorf("expected inviter manager-1, got %s", req.InviterID)
						}
						return &types.Invitation{ID: "invitation-1", Status: types.InvitationPending}, nil
					})
			},
			expectedStatusCode: http.StatusCreated,
		},
		{
			name:          "Duplicate pending reported as conflict",
			accessContext: managerAccess(),
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().CreateInvitation(gomock.Any(), gomock.Any()).Return(nil, ErrDuplicatePending)
			},
			expectedStatusCode: http.StatusConflict,
		},
		{
			name:          "Invalid mobile reported as bad request",
			accessContext: managerAccess(),
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().CreateInvitation(gomock.Any(), gomock.Any()).Return(nil, ErrInvalidMobile)
			},
			expectedStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			tt.setupMocks(mockService)

			router := chi.NewRouter()
			newTestAPI(mockService).RegisterCompanyEndpoints(router)

			body := `{"mobile":"09123456789","position":"WORKER"}`
			req := httptest.NewRequest(http.MethodPost, "/invitations", strings.NewReader(body))
			req = bindAccess(req, "manager-1", tt.accessContext)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatusCode {
				t.Errorf("expected status %d, got %d: %s", tt.expectedStatusCode, rr.Code, rr.Body.String())
			}
		})
	}
}

func TestAPI_Accept(t *testing.T) {
	tests := []struct {
		name               string
		serviceErr         error
		expectedStatusCode int
	}{
		{"Accepted", nil, http.StatusOK},
		{"Unknown token", ErrInvitationNotFound, http.StatusNotFound},
		{"Expired", ErrInvitationExpired, http.StatusGone},
		{"Already answered", ErrInvitationNotPending, http.StatusConflict},
		{"Identity mismatch", ErrIdentityMismatch, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			if tt.serviceErr != nil {
				mockService.EXPECT().Accept(gomock.Any(), "token-1", "actor-1").Return(nil, tt.serviceErr)
			} else {
				mockService.EXPECT().Accept(gomock.Any(), "token-1", "actor-1").Return(&types.Membership{ID: "membership-1"}, nil)
			}

			router := chi.NewRouter()
			newTestAPI(mockService).RegisterEndpoints(router)

			req := httptest.NewRequest(http.MethodPost, "/invitations/token-1/accept", nil)
			req = req.WithContext(authentication.WithActorID(req.Context(), "actor-1"))
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatusCode {
				t.Errorf("expected status %d, got %d: %s", tt.expectedStatusCode, rr.Code, rr.Body.String())
			}
		})
	}
}

func TestAPI_Accept_MissingIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := chi.NewRouter()
	newTestAPI(NewMockServiceInterface(ctrl)).RegisterEndpoints(router)

	req := httptest.NewRequest(http.MethodPost, "/invitations/token-1/accept", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
}

func TestAPI_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockService.EXPECT().Cancel(gomock.Any(), "invitation-1", "owner-1").Return(nil)

	router := chi.NewRouter()
	newTestAPI(mockService).RegisterEndpoints(router)

	req := httptest.NewRequest(http.MethodPost, "/invitations/invitation-1/cancel", nil)
	req = req.WithContext(authentication.WithActorID(req.Context(), "owner-1"))
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Errorf("expected status %d, got %d", http.StatusNoContent, rr.Code)
	}
}
