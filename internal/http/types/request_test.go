// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/canonical/property-service/internal/apperrors"
)

type createUnitRequest struct {
	Name  string `json:"unit_name" validate:"required"`
	Floor int    `json:"floor" validate:"gte=0"`
}

func TestDecodeJSON(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name     string
		body     string
		field    string
		expected error
	}{
		{name: "valid", body: `{"unit_name":"A1","floor":2}`},
		{name: "missing required field", body: `{"floor":1}`, field: "unit_name", expected: apperrors.ErrValidation},
		{name: "failed constraint", body: `{"unit_name":"A1","floor":-1}`, field: "floor", expected: apperrors.ErrValidation},
		{name: "unknown field", body: `{"unit_name":"A1","colour":"red"}`, expected: apperrors.ErrValidation},
		{name: "malformed", body: `{"unit_name":`, expected: apperrors.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/", strings.NewReader(tt.body))

			var dst createUnitRequest
			err := DecodeJSON(r, v, &dst)

			if !errors.Is(err, tt.expected) {
				t.Fatalf("expected error %v, got %v", tt.expected, err)
			}
			if tt.field == "" {
				return
			}

			var appErr *apperrors.Error
			if !errors.As(err, &appErr) {
				t.Fatalf("expected an application error, got %T", err)
			}
			fields, _ := appErr.Details["fields"].(map[string]interface{})
			if _, ok := fields[tt.field]; !ok {
				t.Errorf("expected field %s to be reported, got %v", tt.field, fields)
			}
		})
	}
}

func TestParsePage(t *testing.T) {
	tests := []struct {
		query    string
		page     int64
		size     int64
		expected error
	}{
		{query: "", page: 0, size: 0},
		{query: "page=2&limit=50", page: 2, size: 50},
		{query: "page=-1", expected: apperrors.ErrValidation},
		{query: "limit=ten", expected: apperrors.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/?"+tt.query, nil)

			p, err := ParsePage(r)
			if !errors.Is(err, tt.expected) {
				t.Fatalf("expected error %v, got %v", tt.expected, err)
			}
			if p.Page != tt.page || p.Size != tt.size {
				t.Errorf("expected page %d size %d, got %d %d", tt.page, tt.size, p.Page, p.Size)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	for _, raw := range []string{"2024-03-15", "2024-03-15T10:00:00Z"} {
		d, err := ParseDate(raw)
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", raw, err)
		}
		if d.Year() != 2024 || d.Month() != 3 || d.Day() != 15 {
			t.Errorf("unexpected date %v for %s", d, raw)
		}
	}

	if _, err := ParseDate("15/03/2024"); !errors.Is(err, apperrors.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}
