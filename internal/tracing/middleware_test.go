// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTraced(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{"/api/v0/properties", true},
		{"/api/v0/rents/upcoming", true},
		{"/api/v0/metrics", false},
		{"/api/v0/status", false},
		{"/api/v0/ready", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, traced(httptest.NewRequest(http.MethodGet, tt.path, nil)))
		})
	}
}
