// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccessPolicy_Admits(t *testing.T) {
	tests := []struct {
		name     string
		policy   accessPolicy
		subject  string
		claims   scopeClaims
		expected bool
	}{
		{
			name:     "scope string",
			policy:   accessPolicy{requiredScope: "property-service"},
			subject:  "user-1",
			claims:   scopeClaims{Scope: "openid property-service"},
			expected: true,
		},
		{
			name:     "scope list",
			policy:   accessPolicy{requiredScope: "property-service"},
			subject:  "user-1",
			claims:   scopeClaims{Scopes: []string{"property-service"}},
			expected: true,
		},
		{
			name:     "scope prefix is not a match",
			policy:   accessPolicy{requiredScope: "property-service"},
			subject:  "user-1",
			claims:   scopeClaims{Scope: "property-service-admin"},
			expected: false,
		},
		{
			name:     "allow-listed subject without scope",
			policy:   accessPolicy{allowedSubjects: []string{"batch-client"}, requiredScope: "property-service"},
			subject:  "batch-client",
			expected: true,
		},
		{
			name:     "empty policy",
			subject:  "user-1",
			claims:   scopeClaims{Scope: "property-service"},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.policy.admits(tt.subject, tt.claims))
		})
	}
}

func TestAccessPolicy_Empty(t *testing.T) {
	assert.True(t, accessPolicy{}.empty())
	assert.False(t, accessPolicy{requiredScope: "property-service"}.empty())
	assert.False(t, accessPolicy{allowedSubjects: []string{"user-1"}}.empty())
}
