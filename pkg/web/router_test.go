// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/property-service/internal/authorization"
	"github.com/canonical/property-service/internal/logging"
	"github.com/canonical/property-service/internal/monitoring"
	"github.com/canonical/property-service/internal/tracing"
	"github.com/canonical/property-service/internal/types"
	"github.com/canonical/property-service/pkg/rent"
	"github.com/canonical/property-service/pkg/webhooks"
)

func TestRouter(t *testing.T) {
	tenant := authorization.Principal{ID: "tenant-1", Role: types.RoleTenant}

	rejectAll := func(http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
	}
	asTenant := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(authorization.PrincipalToContext(r.Context(), tenant)))
		})
	}

	tests := []struct {
		name           string
		authenticate   func(http.Handler) http.Handler
		path           string
		setupMocks     func(*rent.MockServiceInterface)
		expectedStatus int
	}{
		{
			name:           "status is public",
			authenticate:   rejectAll,
			path:           "/api/v0/status",
			setupMocks:     func(*rent.MockServiceInterface) {},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "metrics are public",
			authenticate:   rejectAll,
			path:           "/api/v0/metrics",
			setupMocks:     func(*rent.MockServiceInterface) {},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "api requires authentication",
			authenticate:   rejectAll,
			path:           "/api/v0/rents/upcoming",
			setupMocks:     func(*rent.MockServiceInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:         "authenticated request reaches the service",
			authenticate: asTenant,
			path:         "/api/v0/rents/upcoming",
			setupMocks: func(s *rent.MockServiceInterface) {
				s.EXPECT().UpcomingRents(gomock.Any(), tenant, gomock.Any()).Return([]*types.Rent{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			rents := rent.NewMockServiceInterface(ctrl)
			tt.setupMocks(rents)

			logger := logging.NewNoopLogger()
			router := NewRouter(
				Services{Rent: rents},
				tt.authenticate,
				nil,
				[]string{"*"},
				tracing.NewNoopTracer(),
				monitoring.NewNoopMonitor("test", logger),
				logger,
			)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestRouter_RegistrationWebhook(t *testing.T) {
	body := `{"id":"0190f5a4-7d2e-7c3a-9b1e-2f4d6a8c0e11","traits":{"email":"jane@example.com"}}`

	rejectAll := func(http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
	}

	tests := []struct {
		name           string
		secret         string
		setupMocks     func(*webhooks.MockServiceInterface)
		expectedStatus int
	}{
		{
			name:   "served without bearer authentication",
			secret: "hook-secret",
			setupMocks: func(s *webhooks.MockServiceInterface) {
				s.EXPECT().HandleRegistration(gomock.Any(), gomock.Any()).Return(&types.User{ID: "0190f5a4-7d2e-7c3a-9b1e-2f4d6a8c0e11"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "not routed without a secret",
			setupMocks:     func(*webhooks.MockServiceInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			hooks := webhooks.NewMockServiceInterface(ctrl)
			tt.setupMocks(hooks)

			logger := logging.NewNoopLogger()
			router := NewRouter(
				Services{Registration: hooks, RegistrationSecret: tt.secret},
				rejectAll,
				nil,
				[]string{"*"},
				tracing.NewNoopTracer(),
				monitoring.NewNoopMonitor("test", logger),
				logger,
			)

			req := httptest.NewRequest(http.MethodPost, "/api/v0/webhooks/registration", strings.NewReader(body))
			req.Header.Set(webhooks.SecretHeader, "hook-secret")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}
