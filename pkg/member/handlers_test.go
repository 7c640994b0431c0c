// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package member

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

func positionAccess(position types.Position) *access.Context {
	return &access.Context{
		Company: &types.Company{ID: "company-1", OwnerID: "owner-1"},
		Membership: &types.Membership{
			Position: position,
			Status:   types.MemberStatusActive,
			IsActive: true,
		},
	}
}

func TestAPI_List(t *testing.T) {
	tests := []struct {
		name               string
		accessContext      *access.Context
		setupMocks         func(*MockServiceInterface)
		expectedStatusCode int
	}{
		{
			name:          "Worker lists roster",
			accessContext: positionAccess(types.PositionWorker),
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().ListMembers(gomock.Any(), "company-1").Return([]*Member{
					{Membership: &types.Membership{ID: "member-1"}, Name: "Sam Rivers"},
				}, nil)
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "Suspended member denied",
			accessContext:      &access.Context{Company: &types.Company{ID: "company-1"}, Membership: &types.Membership{Position: types.PositionManager, Status: types.MemberStatusSuspended, IsActive: true}},
			setupMocks:         func(m *MockServiceInterface) {},
			expectedStatusCode: http.StatusForbidden,
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

			req := bindAccess(httptest.NewRequest(http.MethodGet, "/members", nil), "actor-1", tt.accessContext)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatusCode {
				t.Errorf("expected status %d, got %d: %s", tt.expectedStatusCode, rr.Code, rr.Body.String())
			}
		})
	}
}

func TestAPI_Add(t *testing.T) {
	tests := []struct {
		name               string
		accessContext      *access.Context
		setupMocks         func(*MockServiceInterface)
		expectedStatusCode int
	}{
		{
			name:          "Manager adds a member",
			accessContext: positionAccess(types.PositionManager),
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().AddMember(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx interface{}, req *AddMemberRequest) (*types.Membership, error) {
						if req.CompanyID != "company-1" {
							t.Errorf("expected company-1, got %s", req.CompanyID)
						}
						return &types.Membership{ID: "member-1"}, nil
					})
			},
			expectedStatusCode: http.StatusCreated,
		},
		{
			name:               "Expert denied",
			accessContext:      positionAccess(types.PositionExpert),
			setupMocks:         func(m *MockServiceInterface) {},
			expectedStatusCode: http.StatusForbidden,
		},
		{
			name:          "Unregistered mobile reported as bad request",
			accessContext: positionAccess(types.PositionManager),
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().AddMember(gomock.Any(), gomock.Any()).Return(nil, ErrActorNotFound)
			},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:          "Duplicate membership reported as conflict",
			accessContext: positionAccess(types.PositionManager),
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().AddMember(gomock.Any(), gomock.Any()).Return(nil, ErrAlreadyMember)
			},
			expectedStatusCode: http.StatusConflict,
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
			req := httptest.NewRequest(http.MethodPost, "/members", strings.NewReader(body))
			req = bindAccess(req, "manager-1", tt.accessContext)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatusCode {
				t.Errorf("expected status %d, got %d: %s", tt.expectedStatusCode, rr.Code, rr.Body.String())
			}
		})
	}
}

func TestAPI_Update(t *testing.T) {
	t.Run("Manager changes position", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := NewMockServiceInterface(ctrl)
		mockService.EXPECT().UpdateMember(gomock.Any(), &types.Membership{
			ID:        "member-1",
			CompanyID: "company-1",
			Position:  types.PositionSupervisor,
		}, []string{"position"}).Return(&types.Membership{ID: "member-1", Position: types.PositionSupervisor}, nil)

		router := chi.NewRouter()
		newTestAPI(mockService).RegisterCompanyEndpoints(router)

		req := httptest.NewRequest(http.MethodPatch, "/members/member-1", strings.NewReader(`{"position":"SUPERVISOR"}`))
		req = bindAccess(req, "manager-1", positionAccess(types.PositionManager))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
		}
	})

	t.Run("Empty patch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := NewMockServiceInterface(ctrl)

		router := chi.NewRouter()
		newTestAPI(mockService).RegisterCompanyEndpoints(router)

		req := httptest.NewRequest(http.MethodPatch, "/members/member-1", strings.NewReader(`{}`))
		req = bindAccess(req, "manager-1", positionAccess(types.PositionManager))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d: %s", rr.Code, rr.Body.String())
		}
	})
}

func TestAPI_Deactivate(t *testing.T) {
	tests := []struct {
		name               string
		accessContext      *access.Context
		setupMocks         func(*MockServiceInterface)
		expectedStatusCode int
	}{
		{
			name:          "Supervisor deactivates member",
			accessContext: positionAccess(types.PositionSupervisor),
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().DeactivateMember(gomock.Any(), "company-1", "member-1").Return(nil)
			},
			expectedStatusCode: http.StatusNoContent,
		},
		{
			name:          "Unknown member",
			accessContext: positionAccess(types.PositionManager),
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().DeactivateMember(gomock.Any(), "company-1", "member-1").Return(ErrMemberNotFound)
			},
			expectedStatusCode: http.StatusNotFound,
		},
		{
			name:               "Operator denied",
			accessContext:      positionAccess(types.PositionOperator),
			setupMocks:         func(m *MockServiceInterface) {},
			expectedStatusCode: http.StatusForbidden,
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

			req := bindAccess(httptest.NewRequest(http.MethodDelete, "/members/member-1", nil), "actor-1", tt.accessContext)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatusCode {
				t.Errorf("expected status %d, got %d: %s", tt.expectedStatusCode, rr.Code, rr.Body.String())
			}
		})
	}
}
