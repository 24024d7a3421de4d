// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
)

type NoopVerifier struct{}

// NewNoopVerifier returns a verifier that accepts any bearer token.
func NewNoopVerifier() *NoopVerifier {
	return &NoopVerifier{}
}

// VerifyToken treats the token as the user ID, the user must still exist.
func (n *NoopVerifier) VerifyToken(ctx context.Context, rawIDToken string) (string, error) {
	return rawIDToken, nil
}
