// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/canonical/property-service/internal/logging"
	"github.com/canonical/property-service/internal/monitoring"
	"github.com/canonical/property-service/internal/tracing"
)

func signed(t *testing.T, method jwt.SigningMethod, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func TestHMACVerifier_VerifyToken(t *testing.T) {
	exp := time.Now().Add(time.Hour).Unix()

	tests := []struct {
		name            string
		token           func(*testing.T) string
		expectedSubject string
		expectError     bool
	}{
		{
			name: "Valid token with scope string",
			token: func(t *testing.T) string {
				return signed(t, jwt.SigningMethodHS256, "secret", jwt.MapClaims{
					"sub": "user-123", "iss": "issuer", "exp": exp, "scope": "openid property-service",
				})
			},
			expectedSubject: "user-123",
		},
		{
			name: "Valid token with scope list",
			token: func(t *testing.T) string {
				return signed(t, jwt.SigningMethodHS512, "secret", jwt.MapClaims{
					"sub": "user-123", "iss": "issuer", "exp": exp, "scp": []string{"property-service"},
				})
			},
			expectedSubject: "user-123",
		},
		{
			name: "Wrong secret",
			token: func(t *testing.T) string {
				return signed(t, jwt.SigningMethodHS256, "other", jwt.MapClaims{
					"sub": "user-123", "iss": "issuer", "exp": exp, "scope": "property-service",
				})
			},
			expectError: true,
		},
		{
			name: "Wrong issuer",
			token: func(t *testing.T) string {
				return signed(t, jwt.SigningMethodHS256, "secret", jwt.MapClaims{
					"sub": "user-123", "iss": "elsewhere", "exp": exp, "scope": "property-service",
				})
			},
			expectError: true,
		},
		{
			name: "Expired",
			token: func(t *testing.T) string {
				return signed(t, jwt.SigningMethodHS256, "secret", jwt.MapClaims{
					"sub": "user-123", "iss": "issuer", "exp": time.Now().Add(-time.Minute).Unix(), "scope": "property-service",
				})
			},
			expectError: true,
		},
		{
			name: "No expiry",
			token: func(t *testing.T) string {
				return signed(t, jwt.SigningMethodHS256, "secret", jwt.MapClaims{
					"sub": "user-123", "iss": "issuer", "scope": "property-service",
				})
			},
			expectError: true,
		},
		{
			name: "Missing scope",
			token: func(t *testing.T) string {
				return signed(t, jwt.SigningMethodHS256, "secret", jwt.MapClaims{
					"sub": "user-123", "iss": "issuer", "exp": exp, "scope": "openid",
				})
			},
			expectError: true,
		},
		{
			name: "Missing subject",
			token: func(t *testing.T) string {
				return signed(t, jwt.SigningMethodHS256, "secret", jwt.MapClaims{
					"iss": "issuer", "exp": exp, "scope": "property-service",
				})
			},
			expectError: true,
		},
		{
			name:        "Garbage",
			token:       func(*testing.T) string { return "not-a-jwt" },
			expectError: true,
		},
	}

	logger := logging.NewNoopLogger()
	verifier := NewHMACVerifier("secret", "issuer", "property-service", tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subject, err := verifier.VerifyToken(context.Background(), tt.token(t))

			if tt.expectError {
				if err == nil {
					t.Errorf("expected an error, got subject %q", subject)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if subject != tt.expectedSubject {
				t.Errorf("expected subject %q, got %q", tt.expectedSubject, subject)
			}
		})
	}
}

func TestSignHMACToken(t *testing.T) {
	logger := logging.NewNoopLogger()
	verifier := NewHMACVerifier("secret", "issuer", "property-service", tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

	token, err := SignHMACToken("secret", "issuer", "user-42", "openid property-service", time.Hour, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	subject, err := verifier.VerifyToken(context.Background(), token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if subject != "user-42" {
		t.Errorf("expected subject user-42, got %q", subject)
	}

	expired, err := SignHMACToken("secret", "issuer", "user-42", "property-service", time.Minute, time.Now().Add(-time.Hour))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := verifier.VerifyToken(context.Background(), expired); err == nil {
		t.Errorf("expected expired token to be rejected")
	}

	if _, err := SignHMACToken("", "issuer", "user-42", "", time.Hour, time.Now()); err == nil {
		t.Errorf("expected missing secret to fail")
	}
	if _, err := SignHMACToken("secret", "issuer", "user-42", "", 0, time.Now()); err == nil {
		t.Errorf("expected zero ttl to fail")
	}
}
