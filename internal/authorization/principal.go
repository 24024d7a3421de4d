// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"fmt"

	"github.com/canonical/property-service/internal/types"
)

// Principal is the authenticated actor of a request.
type Principal struct {
	ID   string
	Role types.Role
}

func (p Principal) IsAdmin() bool {
	return p.Role == types.RoleAdmin
}

// SystemPrincipal runs background jobs.
var SystemPrincipal = Principal{ID: "system", Role: types.RoleAdmin}

type principalContextKey struct{}

func PrincipalToContext(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalContextKey{}, p)
}

// PrincipalFromContext returns the principal attached by the authentication
// middleware.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalContextKey{}).(Principal)
	if !ok || p.ID == "" {
		return Principal{}, false
	}
	return p, true
}

type Action string

const (
	ActionManageProperty   Action = "manage_property"
	ActionViewProperty     Action = "view_property"
	ActionMessage          Action = "message"
	ActionAccessRent       Action = "access_rent"
	ActionAccessOnboarding Action = "access_onboarding"
	ActionAccessUser       Action = "access_user"
)

type ResourceKind string

const (
	KindUser       ResourceKind = "user"
	KindProperty   ResourceKind = "property"
	KindRent       ResourceKind = "rent"
	KindOnboarding ResourceKind = "onboarding"
)

// Resource is the target of an authorization decision.
type Resource struct {
	Kind       ResourceKind
	ID         string
	PropertyID string
	UnitID     *string

	rent     *types.Rent
	document *types.OnboardingDocument
}

func (r Resource) String() string {
	return fmt.Sprintf("%s:%s", r.Kind, r.ID)
}

func UserResource(id string) Resource {
	return Resource{Kind: KindUser, ID: id}
}

func PropertyResource(id string) Resource {
	return Resource{Kind: KindProperty, ID: id, PropertyID: id}
}

// RecipientResource targets a message recipient, optionally within a
// property and unit.
func RecipientResource(recipientID string, propertyID, unitID *string) Resource {
	r := Resource{Kind: KindUser, ID: recipientID, UnitID: unitID}
	if propertyID != nil {
		r.PropertyID = *propertyID
	}
	return r
}

func RentResource(rent *types.Rent) Resource {
	return Resource{Kind: KindRent, ID: rent.ID, PropertyID: rent.PropertyID, rent: rent}
}

func OnboardingResource(doc *types.OnboardingDocument) Resource {
	r := Resource{Kind: KindOnboarding, ID: doc.ID, UnitID: doc.UnitID, document: doc}
	if doc.PropertyID != nil {
		r.PropertyID = *doc.PropertyID
	}
	return r
}
