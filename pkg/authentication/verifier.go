// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/canonical/property-service/internal/logging"
	"github.com/canonical/property-service/internal/monitoring"
	"github.com/canonical/property-service/internal/tracing"
)

// scopeClaims reads scopes from either the space separated "scope" claim or
// the "scp" list, identity providers disagree on which one they issue.
type scopeClaims struct {
	Scope  string   `json:"scope,omitempty"`
	Scopes []string `json:"scp,omitempty"`
}

func (c scopeClaims) has(scope string) bool {
	return slices.Contains(strings.Fields(c.Scope), scope) || slices.Contains(c.Scopes, scope)
}

// accessPolicy admits allow-listed subjects and tokens carrying the required
// scope. The zero policy admits nobody.
type accessPolicy struct {
	allowedSubjects []string
	requiredScope   string
}

func (p accessPolicy) empty() bool {
	return len(p.allowedSubjects) == 0 && p.requiredScope == ""
}

func (p accessPolicy) admits(subject string, c scopeClaims) bool {
	if slices.Contains(p.allowedSubjects, subject) {
		return true
	}
	return p.requiredScope != "" && c.has(p.requiredScope)
}

// JWTVerifier checks tokens issued by an OIDC provider. The token subject is
// the property service user id.
type JWTVerifier struct {
	verifier *oidc.IDTokenVerifier
	policy   accessPolicy

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (v *JWTVerifier) VerifyToken(ctx context.Context, rawToken string) (string, error) {
	ctx, span := v.tracer.Start(ctx, "authentication.JWTVerifier.VerifyToken")
	defer span.End()

	token, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		return "", err
	}

	var claims scopeClaims
	if err := token.Claims(&claims); err != nil {
		v.logger.Debugf("Failed to extract claims: %v", err)
		return "", err
	}

	if token.Subject == "" {
		return "", fmt.Errorf("token has no subject")
	}

	if v.policy.empty() {
		v.logger.Debugf("No authorization criteria configured")
		v.logger.Security().AuthzFailure(token.Subject, "jwt_api_access")
		return "", fmt.Errorf("unauthorized: no access policy configured")
	}

	if !v.policy.admits(token.Subject, claims) {
		v.logger.Security().AuthzFailure(token.Subject, "jwt_api_access")
		return "", fmt.Errorf("unauthorized: missing required scope or subject not allowed")
	}

	return token.Subject, nil
}

func NewJWTVerifierDirect(
	verifier *oidc.IDTokenVerifier,
	allowedSubjects []string,
	requiredScope string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *JWTVerifier {
	return &JWTVerifier{
		verifier: verifier,
		policy:   accessPolicy{allowedSubjects: allowedSubjects, requiredScope: requiredScope},
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}
