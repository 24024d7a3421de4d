// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package property

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/property-service/internal/apperrors"
	"github.com/canonical/property-service/internal/authorization"
	"github.com/canonical/property-service/internal/logging"
	"github.com/canonical/property-service/internal/monitoring"
	"github.com/canonical/property-service/internal/tracing"
	"github.com/canonical/property-service/internal/types"
)

func newTestRouter(service ServiceInterface) *chi.Mux {
	logger := logging.NewNoopLogger()
	mux := chi.NewMux()
	NewAPI(service, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger).RegisterEndpoints(mux)
	return mux
}

func authenticated(r *http.Request, p authorization.Principal) *http.Request {
	return r.WithContext(authorization.PrincipalToContext(r.Context(), p))
}

func TestAPI_CreateProperty(t *testing.T) {
	testCases := []struct {
		name           string
		body           string
		principal      *authorization.Principal
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:      "created",
			body:      `{"name":"Elm Court","address":"1 Elm St","type":"residential"}`,
			principal: &landlord,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().CreateProperty(gomock.Any(), landlord, &types.Property{Name: "Elm Court", Address: "1 Elm St", Type: "residential"}).
					Return(&types.Property{ID: "prop-1", Name: "Elm Court"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing name",
			body:           `{"address":"1 Elm St"}`,
			principal:      &landlord,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:      "forbidden",
			body:      `{"name":"Elm Court"}`,
			principal: &tenant,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().CreateProperty(gomock.Any(), tenant, gomock.Any()).Return(nil, apperrors.Forbidden("role tenant may not create properties"))
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "unauthenticated",
			body:           `{"name":"Elm Court"}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockServiceInterface(ctrl)
			tc.setupMocks(service)

			req := httptest.NewRequest(http.MethodPost, "/api/v0/properties", strings.NewReader(tc.body))
			if tc.principal != nil {
				req = authenticated(req, *tc.principal)
			}
			w := httptest.NewRecorder()

			newTestRouter(service).ServeHTTP(w, req)

			if w.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", tc.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestAPI_DeleteProperty(t *testing.T) {
	testCases := []struct {
		name           string
		err            error
		expectedStatus int
		expectedKind   apperrors.Kind
	}{
		{name: "deleted", expectedStatus: http.StatusNoContent},
		{name: "active leases", err: apperrors.Dependency("property has 1 active leases"), expectedStatus: http.StatusBadRequest, expectedKind: apperrors.KindDependency},
		{name: "not found", err: apperrors.NotFound("property"), expectedStatus: http.StatusNotFound, expectedKind: apperrors.KindNotFound},
		{name: "internal", err: apperrors.Internal("failed to access property", nil), expectedStatus: http.StatusInternalServerError, expectedKind: apperrors.KindInternal},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockServiceInterface(ctrl)
			service.EXPECT().DeleteProperty(gomock.Any(), landlord, "prop-1").Return(tc.err)

			req := authenticated(httptest.NewRequest(http.MethodDelete, "/api/v0/properties/prop-1", nil), landlord)
			w := httptest.NewRecorder()

			newTestRouter(service).ServeHTTP(w, req)

			if w.Code != tc.expectedStatus {
				t.Fatalf("expected status %d, got %d", tc.expectedStatus, w.Code)
			}
			if tc.expectedKind == "" {
				return
			}

			var body apperrors.Response
			if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}
			if body.Error != tc.expectedKind {
				t.Errorf("expected error kind %s, got %s", tc.expectedKind, body.Error)
			}
		})
	}
}

func TestAPI_AssignUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewMockServiceInterface(ctrl)
	unitID := "unit-1"
	service.EXPECT().AssignUser(gomock.Any(), landlord, "prop-1", &Assignment{
		UserID: "tenant-1",
		UnitID: &unitID,
		Roles:  types.NewRoleSet(types.AssocTenant),
	}).Return(&types.PropertyUser{ID: "assoc-1", IsActive: true}, nil)

	router := newTestRouter(service)

	req := authenticated(httptest.NewRequest(http.MethodPost, "/api/v0/properties/prop-1/users", strings.NewReader(`{"user_id":"tenant-1","unit_id":"unit-1","roles":["tenant"]}`)), landlord)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	req = authenticated(httptest.NewRequest(http.MethodPost, "/api/v0/properties/prop-1/users", strings.NewReader(`{"user_id":"tenant-1","roles":["owner"]}`)), landlord)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 for unknown role, got %d", w.Code)
	}
}

func TestAPI_RemoveUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewMockServiceInterface(ctrl)
	unitID := "unit-1"
	service.EXPECT().RemoveUser(gomock.Any(), landlord, "prop-1", &Assignment{
		UserID: "tenant-1",
		UnitID: &unitID,
		Roles:  types.NewRoleSet(types.AssocTenant),
	}).Return(&types.PropertyUser{ID: "assoc-1"}, nil)

	router := newTestRouter(service)

	req := authenticated(httptest.NewRequest(http.MethodDelete, "/api/v0/properties/prop-1/users/tenant-1?roles=tenant&unit_id=unit-1", nil), landlord)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	req = authenticated(httptest.NewRequest(http.MethodDelete, "/api/v0/properties/prop-1/users/tenant-1", nil), landlord)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 without roles, got %d", w.Code)
	}
}
