// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/property-service/internal/apperrors"
	"github.com/canonical/property-service/internal/logging"
	"github.com/canonical/property-service/internal/monitoring"
	"github.com/canonical/property-service/internal/tracing"
	"github.com/canonical/property-service/internal/types"
)

func TestAPI_Registration(t *testing.T) {
	payload := `{"id":"` + identityID + `","schema_id":"default","traits":{"email":"jane@example.com","name":"Jane"}}`

	tests := []struct {
		name           string
		secret         string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:   "provisioned",
			secret: "hook-secret",
			body:   payload,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().HandleRegistration(gomock.Any(), &Registration{ID: identityID, Email: "jane@example.com", Name: "Jane"}).
					Return(&types.User{ID: identityID, Role: types.RoleTenant}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "wrong secret",
			secret:         "guess",
			body:           payload,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "missing secret",
			body:           payload,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid email",
			secret:         "hook-secret",
			body:           `{"id":"` + identityID + `","traits":{"email":"not-an-email"}}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "identity id is not a uuid",
			secret:         "hook-secret",
			body:           `{"id":"abc","traits":{"email":"jane@example.com"}}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed json",
			secret:         "hook-secret",
			body:           `{"id":`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "email conflict",
			secret: "hook-secret",
			body:   payload,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().HandleRegistration(gomock.Any(), gomock.Any()).Return(nil, apperrors.Conflict("email is registered to another user"))
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockServiceInterface(ctrl)
			tt.setupMocks(svc)

			logger := logging.NewNoopLogger()
			mux := chi.NewMux()
			NewAPI(svc, "hook-secret", tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger).RegisterEndpoints(mux)

			req := httptest.NewRequest(http.MethodPost, "/api/v0/webhooks/registration", strings.NewReader(tt.body))
			if tt.secret != "" {
				req.Header.Set(SecretHeader, tt.secret)
			}
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}
