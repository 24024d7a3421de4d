// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package comment

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/property-service/internal/authorization"
	"github.com/canonical/property-service/internal/logging"
	"github.com/canonical/property-service/internal/monitoring"
	"github.com/canonical/property-service/internal/storage"
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

func TestAPI_AddComment(t *testing.T) {
	testCases := []struct {
		name           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "created",
			body: `{"context_type":"Rent","context_id":"rent-1","body":"Paid by transfer"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().AddComment(gomock.Any(), tenant, types.RentContext("rent-1"), "Paid by transfer").
					Return(&types.Comment{ID: "comment-1"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "unknown context",
			body:           `{"context_type":"Invoice","context_id":"inv-1","body":"?"}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing body",
			body:           `{"context_type":"Rent","context_id":"rent-1"}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockServiceInterface(ctrl)
			tc.setupMocks(service)

			req := authenticated(httptest.NewRequest(http.MethodPost, "/api/v0/comments", strings.NewReader(tc.body)), tenant)
			w := httptest.NewRecorder()
			newTestRouter(service).ServeHTTP(w, req)

			if w.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", tc.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestAPI_ListComments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewMockServiceInterface(ctrl)
	service.EXPECT().ListComments(gomock.Any(), landlord, types.UnitContext("unit-1"), storage.Page{Page: 0, Size: 5}).
		Return([]*types.Comment{}, nil)

	req := authenticated(httptest.NewRequest(http.MethodGet, "/api/v0/comments?context_type=Unit&context_id=unit-1&limit=5", nil), landlord)
	w := httptest.NewRecorder()
	newTestRouter(service).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAPI_ListCommentsMissingContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	req := authenticated(httptest.NewRequest(http.MethodGet, "/api/v0/comments?context_type=Unit", nil), landlord)
	w := httptest.NewRecorder()
	newTestRouter(NewMockServiceInterface(ctrl)).ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}
