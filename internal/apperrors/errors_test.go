// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package apperrors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/canonical/property-service/internal/storage"
)

func TestKindHTTPStatus(t *testing.T) {
	tests := []struct {
		kind   Kind
		status int
	}{
		{KindValidation, http.StatusBadRequest},
		{KindAuthorization, http.StatusForbidden},
		{KindNotFound, http.StatusNotFound},
		{KindConflict, http.StatusConflict},
		{KindDependency, http.StatusBadRequest},
		{KindInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			if got := tt.kind.HTTPStatus(); got != tt.status {
				t.Errorf("expected %d, got %d", tt.status, got)
			}
		})
	}
}

func TestErrorsIsMatchesKind(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", Conflict("rent for period %s already exists", "2024-03"))

	if !errors.Is(err, ErrConflict) {
		t.Error("expected error to match ErrConflict")
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("did not expect error to match ErrNotFound")
	}
	if KindOf(err) != KindConflict {
		t.Errorf("expected conflict kind, got %s", KindOf(err))
	}
	if KindOf(errors.New("plain")) != KindInternal {
		t.Error("expected plain errors to be internal")
	}
}

func TestToResponseHidesInternals(t *testing.T) {
	status, body := ToResponse(Internal("failed to delete property", errors.New("pq: deadlock detected")))
	if status != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", status)
	}
	if body.Message != "internal server error" {
		t.Errorf("internal message leaked: %q", body.Message)
	}

	status, body = ToResponse(errors.New("boom"))
	if status != http.StatusInternalServerError || body.Error != KindInternal {
		t.Errorf("unexpected response %d %v", status, body)
	}
}

func TestWriteError(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteError(rr, Dependency("property has active leases").WithDetails(map[string]interface{}{"active_leases": 1}))

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rr.Code)
	}

	var body Response
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.Error != KindDependency || body.Message != "property has active leases" {
		t.Errorf("unexpected body %+v", body)
	}
	if body.Details["active_leases"] != float64(1) {
		t.Errorf("expected details to be rendered, got %v", body.Details)
	}
}

func TestFromStorage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Kind
	}{
		{"not found", storage.ErrNotFound, KindNotFound},
		{"wrapped duplicate", fmt.Errorf("insert unit: %w", storage.ErrDuplicateKey), KindConflict},
		{"already active", storage.ErrAlreadyActive, KindConflict},
		{"exclusion", storage.ErrExclusionViolation, KindConflict},
		{"foreign key", storage.ErrForeignKeyViolation, KindValidation},
		{"check", storage.ErrCheckViolation, KindValidation},
		{"classified passes through", Dependency("active leases"), KindDependency},
		{"unknown", errors.New("connection reset"), KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(FromStorage(tt.err, "unit")); got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}

	if FromStorage(nil, "unit") != nil {
		t.Errorf("expected nil for nil error")
	}
}
