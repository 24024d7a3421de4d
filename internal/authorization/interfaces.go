// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/canonical/property-service/internal/storage"
	"github.com/canonical/property-service/internal/types"
)

type AuthorizerInterface interface {
	Authorize(context.Context, Principal, Action, Resource) bool
	CanManageProperty(context.Context, Principal, string) bool
	CanViewProperty(context.Context, Principal, string) bool
	CanMessage(context.Context, Principal, string, *string, *string) bool
	CanAccessRent(context.Context, Principal, *types.Rent) bool
	CanAccessOnboarding(context.Context, Principal, *types.OnboardingDocument) bool
	ManagedPropertyIDs(context.Context, Principal) ([]string, error)
	VisiblePropertyIDs(context.Context, Principal) ([]string, error)
}

// AssociationStoreInterface is the only source of permission decisions.
type AssociationStoreInterface interface {
	AssociationsOf(ctx context.Context, userID string, activeOnly bool) ([]*types.PropertyUser, error)
	ExistsAssociation(ctx context.Context, f storage.AssociationFilter) (bool, error)
}
