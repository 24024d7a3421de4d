// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"slices"

	"github.com/canonical/property-service/internal/logging"
	"github.com/canonical/property-service/internal/monitoring"
	"github.com/canonical/property-service/internal/storage"
	"github.com/canonical/property-service/internal/tracing"
	"github.com/canonical/property-service/internal/types"
)

var managerRoles = []types.Role{types.RoleLandlord, types.RolePropertyManager}

// Authorizer decides permissions from the association store. Every lookup
// failure is a denial.
type Authorizer struct {
	store         AssociationStoreInterface
	requiredRoles types.RoleSet

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Authorize evaluates the rules in order, the first match wins.
func (a *Authorizer) Authorize(ctx context.Context, p Principal, action Action, r Resource) bool {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.Authorize")
	defer span.End()

	allowed := a.evaluate(ctx, p, action, r)

	outcome := "allow"
	if !allowed {
		outcome = "deny"
		a.logger.Security().AuthzFailureWithAction(p.ID, string(action), r.String())
	}
	if err := a.monitor.IncOperationCounter(map[string]string{"operation": "authorize", "outcome": outcome}); err != nil {
		a.logger.Debugf("failed to record authorization outcome: %v", err)
	}

	return allowed
}

func (a *Authorizer) evaluate(ctx context.Context, p Principal, action Action, r Resource) bool {
	if p.ID == "" {
		return false
	}

	if p.IsAdmin() {
		return true
	}

	if r.Kind == KindUser && r.ID == p.ID {
		return true
	}

	switch action {
	case ActionManageProperty:
		return r.PropertyID != "" && a.hasAssociation(ctx, p.ID, r.PropertyID, nil, a.requiredRoles)
	case ActionViewProperty:
		return r.PropertyID != "" && a.hasAssociation(ctx, p.ID, r.PropertyID, nil, types.AnyAssociationRoles)
	case ActionMessage:
		return r.Kind == KindUser && a.canMessage(ctx, p, r)
	case ActionAccessRent:
		if r.rent == nil {
			return false
		}
		return r.rent.TenantID == p.ID || a.hasAssociation(ctx, p.ID, r.rent.PropertyID, nil, a.requiredRoles)
	case ActionAccessOnboarding:
		return r.document != nil && a.canAccessOnboarding(ctx, p, r.document)
	}

	return false
}

func (a *Authorizer) hasAssociation(ctx context.Context, userID, propertyID string, unitID *string, roles types.RoleSet) bool {
	exists, err := a.store.ExistsAssociation(ctx, storage.AssociationFilter{
		UserID:     userID,
		PropertyID: propertyID,
		UnitID:     unitID,
		Roles:      roles,
		ActiveOnly: true,
	})
	if err != nil {
		a.logger.Errorf("association lookup failed, denying: %v", err)
		return false
	}

	return exists
}

// canMessage applies the shared property rule, then the manager override.
func (a *Authorizer) canMessage(ctx context.Context, p Principal, r Resource) bool {
	senderAssocs, err := a.store.AssociationsOf(ctx, p.ID, true)
	if err != nil {
		a.logger.Errorf("association lookup failed, denying: %v", err)
		return false
	}
	recipientAssocs, err := a.store.AssociationsOf(ctx, r.ID, true)
	if err != nil {
		a.logger.Errorf("association lookup failed, denying: %v", err)
		return false
	}

	if sharesProperty(senderAssocs, recipientAssocs, r.PropertyID, r.UnitID) {
		return true
	}

	if !slices.Contains(managerRoles, p.Role) {
		return false
	}

	managed := make(map[string]bool)
	for _, assoc := range senderAssocs {
		if assoc.Roles.HasAny(a.requiredRoles) {
			managed[assoc.PropertyID] = true
		}
	}

	for _, assoc := range recipientAssocs {
		if !managed[assoc.PropertyID] {
			continue
		}
		if r.PropertyID == "" || assoc.PropertyID == r.PropertyID {
			return true
		}
	}

	return false
}

func sharesProperty(sender, recipient []*types.PropertyUser, propertyID string, unitID *string) bool {
	common := make(map[string]bool)
	for _, s := range sender {
		for _, q := range recipient {
			if s.PropertyID == q.PropertyID {
				common[s.PropertyID] = true
			}
		}
	}

	if len(common) == 0 {
		return false
	}
	if propertyID != "" && !common[propertyID] {
		return false
	}
	if unitID != nil {
		return onUnit(sender, *unitID) && onUnit(recipient, *unitID)
	}

	return true
}

func onUnit(assocs []*types.PropertyUser, unitID string) bool {
	for _, a := range assocs {
		if a.UnitID != nil && *a.UnitID == unitID {
			return true
		}
	}
	return false
}

func (a *Authorizer) canAccessOnboarding(ctx context.Context, p Principal, doc *types.OnboardingDocument) bool {
	if doc.CreatedBy == p.ID {
		return true
	}

	if doc.PropertyID != nil && a.hasAssociation(ctx, p.ID, *doc.PropertyID, nil, a.requiredRoles) {
		return true
	}

	tenant := types.NewRoleSet(types.AssocTenant)

	switch doc.Visibility {
	case types.VisibilityAllTenants:
		return a.hasAssociation(ctx, p.ID, "", nil, tenant)
	case types.VisibilityPropertyTenants:
		return doc.PropertyID != nil && a.hasAssociation(ctx, p.ID, *doc.PropertyID, nil, tenant)
	case types.VisibilityUnitTenants:
		return doc.UnitID != nil && a.hasAssociation(ctx, p.ID, "", doc.UnitID, tenant)
	case types.VisibilitySpecificTenant:
		return doc.TenantID != nil && *doc.TenantID == p.ID
	}

	return false
}

func (a *Authorizer) CanManageProperty(ctx context.Context, p Principal, propertyID string) bool {
	return a.Authorize(ctx, p, ActionManageProperty, PropertyResource(propertyID))
}

func (a *Authorizer) CanViewProperty(ctx context.Context, p Principal, propertyID string) bool {
	return a.Authorize(ctx, p, ActionViewProperty, PropertyResource(propertyID))
}

func (a *Authorizer) CanMessage(ctx context.Context, p Principal, recipientID string, propertyID, unitID *string) bool {
	return a.Authorize(ctx, p, ActionMessage, RecipientResource(recipientID, propertyID, unitID))
}

func (a *Authorizer) CanAccessRent(ctx context.Context, p Principal, rent *types.Rent) bool {
	return a.Authorize(ctx, p, ActionAccessRent, RentResource(rent))
}

func (a *Authorizer) CanAccessOnboarding(ctx context.Context, p Principal, doc *types.OnboardingDocument) bool {
	return a.Authorize(ctx, p, ActionAccessOnboarding, OnboardingResource(doc))
}

// ManagedPropertyIDs lists the properties the principal may manage. It is
// only meaningful for non admin principals, admins manage everything.
func (a *Authorizer) ManagedPropertyIDs(ctx context.Context, p Principal) ([]string, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.ManagedPropertyIDs")
	defer span.End()

	return a.propertyIDs(ctx, p, a.requiredRoles)
}

// VisiblePropertyIDs lists the properties the principal may view.
func (a *Authorizer) VisiblePropertyIDs(ctx context.Context, p Principal) ([]string, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.VisiblePropertyIDs")
	defer span.End()

	return a.propertyIDs(ctx, p, types.AnyAssociationRoles)
}

func (a *Authorizer) propertyIDs(ctx context.Context, p Principal, roles types.RoleSet) ([]string, error) {
	assocs, err := a.store.AssociationsOf(ctx, p.ID, true)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(assocs))
	for _, assoc := range assocs {
		if assoc.Roles.HasAny(roles) && !slices.Contains(ids, assoc.PropertyID) {
			ids = append(ids, assoc.PropertyID)
		}
	}

	return ids, nil
}

func NewAuthorizer(store AssociationStoreInterface, requiredRoles types.RoleSet, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	authorizer := new(Authorizer)
	authorizer.store = store
	authorizer.requiredRoles = requiredRoles
	if len(authorizer.requiredRoles) == 0 {
		authorizer.requiredRoles = types.ManagementRoles
	}
	authorizer.tracer = tracer
	authorizer.monitor = monitor
	authorizer.logger = logger

	return authorizer
}
