// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/canonical/property-service/internal/logging"
	"github.com/canonical/property-service/internal/monitoring"
	"github.com/canonical/property-service/internal/tracing"
)

// NewJWTAuthenticator picks the token verifier for the configuration: a
// shared secret wins over OIDC, and a JWKS URL skips discovery.
func NewJWTAuthenticator(
	ctx context.Context,
	issuer string,
	jwksURL string,
	secret string,
	allowedSubjects []string,
	requiredScope string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (TokenVerifierInterface, error) {
	if secret != "" {
		logger.Info("JWT authentication is enabled with a shared secret")
		return NewHMACVerifier(secret, issuer, requiredScope, tracer, monitor, logger), nil
	}

	if jwksURL != "" {
		logger.Infof("Using manual JWKS URL: %s", jwksURL)
	} else {
		logger.Infof("Using OIDC discovery for issuer: %s", issuer)
	}

	idTokenVerifier, err := NewOIDCVerifier(ctx, issuer, jwksURL)
	if err != nil {
		return nil, err
	}

	logger.Info("JWT authentication is enabled")
	return NewJWTVerifierDirect(idTokenVerifier, allowedSubjects, requiredScope, tracer, monitor, logger), nil
}
