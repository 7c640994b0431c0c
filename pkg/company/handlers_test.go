// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package company

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

func ownerAccess() *access.Context {
	return &access.Context{
		Company: &types.Company{ID: "company-1", OwnerID: "owner-1"},
		IsOwner: true,
	}
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
		actorID            string
		body               string
		setupMocks         func(*MockServiceInterface)
		expectedStatusCode int
	}{
		{
			name:    "Created",
			actorID: "owner-1",
			body:    `{"name":"Apex Drilling","activity_field":"drilling"}`,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().CreateCompany(gomock.Any(), "owner-1", "Apex Drilling", "drilling").
					Return(&types.Company{ID: "company-1", OwnerID: "owner-1"}, nil)
			},
			expectedStatusCode: http.StatusCreated,
		},
		{
			name:               "Missing identity",
			body:               `{"name":"Apex Drilling"}`,
			setupMocks:         func(m *MockServiceInterface) {},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:    "Blank name",
			actorID: "owner-1",
			body:    `{"name":""}`,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().CreateCompany(gomock.Any(), "owner-1", "", "").Return(nil, ErrNameRequired)
			},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "Malformed body",
			actorID:            "owner-1",
			body:               `{"name":`,
			setupMocks:         func(m *MockServiceInterface) {},
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
			newTestAPI(mockService).RegisterEndpoints(router)

			req := httptest.NewRequest(http.MethodPost, "/companies", strings.NewReader(tt.body))
			if tt.actorID != "" {
				req = bindAccess(req, tt.actorID, nil)
			}
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatusCode {
				t.Errorf("expected status %d, got %d: %s", tt.expectedStatusCode, rr.Code, rr.Body.String())
			}
		})
	}
}

func TestAPI_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockService.EXPECT().ListCompanies(gomock.Any(), "actor-1").
		Return([]*types.Company{{ID: "company-1"}, {ID: "company-2"}}, nil)

	router := chi.NewRouter()
	newTestAPI(mockService).RegisterEndpoints(router)

	req := bindAccess(httptest.NewRequest(http.MethodGet, "/companies", nil), "actor-1", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), "company-2") {
		t.Errorf("expected both companies in response, got %s", rr.Body.String())
	}
}

func TestAPI_Update(t *testing.T) {
	tests := []struct {
		name               string
		accessContext      *access.Context
		body               string
		setupMocks         func(*MockServiceInterface)
		expectedStatusCode int
	}{
		{
			name:          "Manager renames company",
			accessContext: managerAccess(),
			body:          `{"name":"Apex Offshore"}`,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().UpdateCompany(gomock.Any(), &types.Company{ID: "company-1", Name: "Apex Offshore"}, []string{"name"}).
					Return(&types.Company{ID: "company-1", Name: "Apex Offshore"}, nil)
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "Worker denied",
			accessContext:      workerAccess(),
			body:               `{"name":"Apex Offshore"}`,
			setupMocks:         func(m *MockServiceInterface) {},
			expectedStatusCode: http.StatusForbidden,
		},
		{
			name:               "Empty patch",
			accessContext:      managerAccess(),
			body:               `{}`,
			setupMocks:         func(m *MockServiceInterface) {},
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

			req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(tt.body))
			req = bindAccess(req, "actor-1", tt.accessContext)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatusCode {
				t.Errorf("expected status %d, got %d: %s", tt.expectedStatusCode, rr.Code, rr.Body.String())
			}
		})
	}
}

func TestAPI_Delete(t *testing.T) {
	tests := []struct {
		name               string
		accessContext      *access.Context
		setupMocks         func(*MockServiceInterface)
		expectedStatusCode int
	}{
		{
			name:          "Owner deletes company",
			accessContext: ownerAccess(),
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().DeleteCompany(gomock.Any(), "company-1").Return(nil)
			},
			expectedStatusCode: http.StatusNoContent,
		},
		{
			name:               "Manager denied",
			accessContext:      managerAccess(),
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

			req := bindAccess(httptest.NewRequest(http.MethodDelete, "/", nil), "actor-1", tt.accessContext)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatusCode {
				t.Errorf("expected status %d, got %d: %s", tt.expectedStatusCode, rr.Code, rr.Body.String())
			}
		})
	}
}

func TestAPI_SetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockService.EXPECT().SetCompanyStatus(gomock.Any(), "company-1", false).Return(nil)

	router := chi.NewRouter()
	newTestAPI(mockService).RegisterCompanyEndpoints(router)

	req := httptest.NewRequest(http.MethodPost, "/status", strings.NewReader(`{"active":false}`))
	req = bindAccess(req, "owner-1", ownerAccess())
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestAPI_Departments(t *testing.T) {
	t.Run("Worker lists departments", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := NewMockServiceInterface(ctrl)
		mockService.EXPECT().ListDepartments(gomock.Any(), "company-1").
			Return([]*types.Department{{ID: "department-1", Name: "Safety"}}, nil)

		router := chi.NewRouter()
		newTestAPI(mockService).RegisterCompanyEndpoints(router)

		req := bindAccess(httptest.NewRequest(http.MethodGet, "/departments", nil), "actor-1", workerAccess())
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
		}
	})

	t.Run("Worker cannot create department", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := NewMockServiceInterface(ctrl)

		router := chi.NewRouter()
		newTestAPI(mockService).RegisterCompanyEndpoints(router)

		req := httptest.NewRequest(http.MethodPost, "/departments", strings.NewReader(`{"name":"Safety"}`))
		req = bindAccess(req, "actor-1", workerAccess())
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		if rr.Code != http.StatusForbidden {
			t.Fatalf("expected status 403, got %d: %s", rr.Code, rr.Body.String())
		}
	})

	t.Run("Manager creates department", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := NewMockServiceInterface(ctrl)
		mockService.EXPECT().CreateDepartment(gomock.Any(), &types.Department{CompanyID: "company-1", Name: "Safety", Description: "site safety"}).
			Return(&types.Department{ID: "department-1", CompanyID: "company-1", Name: "Safety"}, nil)

		router := chi.NewRouter()
		newTestAPI(mockService).RegisterCompanyEndpoints(router)

		req := httptest.NewRequest(http.MethodPost, "/departments", strings.NewReader(`{"name":"Safety","description":"site safety"}`))
		req = bindAccess(req, "manager-1", managerAccess())
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		if rr.Code != http.StatusCreated {
			t.Fatalf("expected status 201, got %d: %s", rr.Code, rr.Body.String())
		}
	})

	t.Run("Duplicate department reported as conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := NewMockServiceInterface(ctrl)
		mockService.EXPECT().UpdateDepartment(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, ErrDuplicateDepartment)

		router := chi.NewRouter()
		newTestAPI(mockService).RegisterCompanyEndpoints(router)

		req := httptest.NewRequest(http.MethodPatch, "/departments/department-1", strings.NewReader(`{"name":"Safety"}`))
		req = bindAccess(req, "manager-1", managerAccess())
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		if rr.Code != http.StatusConflict {
			t.Fatalf("expected status 409, got %d: %s", rr.Code, rr.Body.String())
		}
	})
}
