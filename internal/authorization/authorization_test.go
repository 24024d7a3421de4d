// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/property-service/internal/logging"
	"github.com/canonical/property-service/internal/monitoring"
	"github.com/canonical/property-service/internal/storage"
	"github.com/canonical/property-service/internal/tracing"
	"github.com/canonical/property-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_logger.go -source=../logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_monitor.go -source=../monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_tracing.go -source=../tracing/interfaces.go

func strPtr(s string) *string { return &s }

func newTestAuthorizer(ctrl *gomock.Controller, requiredRoles types.RoleSet) (*Authorizer, *MockAssociationStoreInterface) {
	store := NewMockAssociationStoreInterface(ctrl)
	logger := logging.NewNoopLogger()

	return NewAuthorizer(store, requiredRoles, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger), store
}

func assoc(userID, propertyID string, unitID *string, roles ...types.AssociationRole) *types.PropertyUser {
	return &types.PropertyUser{UserID: userID, PropertyID: propertyID, UnitID: unitID, Roles: types.NewRoleSet(roles...), IsActive: true}
}

func TestAuthorizeAdminAndSelf(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, _ := newTestAuthorizer(ctrl, nil)

	admin := Principal{ID: "admin", Role: types.RoleAdmin}
	if !a.CanManageProperty(context.Background(), admin, "p1") {
		t.Error("expected admin to manage any property")
	}
	if !a.CanAccessRent(context.Background(), SystemPrincipal, &types.Rent{ID: "r1", PropertyID: "p1"}) {
		t.Error("expected system principal to access any rent")
	}

	tenant := Principal{ID: "t1", Role: types.RoleTenant}
	if !a.Authorize(context.Background(), tenant, ActionAccessUser, UserResource("t1")) {
		t.Error("expected self access to be allowed")
	}
}

func TestAuthorizeRejectsAnonymous(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, _ := newTestAuthorizer(ctrl, nil)

	if a.Authorize(context.Background(), Principal{Role: types.RoleAdmin}, ActionManageProperty, PropertyResource("p1")) {
		t.Error("expected principal without id to be denied")
	}
}

func TestCanManageProperty(t *testing.T) {
	p := Principal{ID: "u1", Role: types.RoleLandlord}

	tests := []struct {
		name          string
		requiredRoles types.RoleSet
		exists        bool
		err           error
		expected      bool
	}{
		{name: "associated manager", exists: true, expected: true},
		{name: "no association", exists: false, expected: false},
		{name: "lookup failure fails closed", err: errors.New("connection refused"), expected: false},
		{name: "custom required roles", requiredRoles: types.NewRoleSet(types.AssocLandlord), exists: true, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			a, store := newTestAuthorizer(ctrl, tt.requiredRoles)

			roles := tt.requiredRoles
			if roles == nil {
				roles = types.ManagementRoles
			}

			store.EXPECT().
				ExistsAssociation(gomock.Any(), storage.AssociationFilter{UserID: "u1", PropertyID: "p1", Roles: roles, ActiveOnly: true}).
				Return(tt.exists, tt.err)

			if got := a.CanManageProperty(context.Background(), p, "p1"); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestCanViewPropertyAcceptsTenants(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, store := newTestAuthorizer(ctrl, nil)

	store.EXPECT().
		ExistsAssociation(gomock.Any(), storage.AssociationFilter{UserID: "t1", PropertyID: "p1", Roles: types.AnyAssociationRoles, ActiveOnly: true}).
		Return(true, nil)

	if !a.CanViewProperty(context.Background(), Principal{ID: "t1", Role: types.RoleTenant}, "p1") {
		t.Error("expected tenant to view its property")
	}
}

func TestCanMessage(t *testing.T) {
	landlord := Principal{ID: "L", Role: types.RoleLandlord}
	tenant := Principal{ID: "T", Role: types.RoleTenant}
	otherTenant := Principal{ID: "T2", Role: types.RoleTenant}

	associations := map[string][]*types.PropertyUser{
		"L":  {assoc("L", "P", nil, types.AssocLandlord)},
		"T":  {assoc("T", "P", strPtr("U"), types.AssocTenant)},
		"T2": {assoc("T2", "Q", strPtr("V"), types.AssocTenant)},
		"T3": {assoc("T3", "P", strPtr("W"), types.AssocTenant)},
		"M":  {assoc("M", "Q", nil, types.AssocPropertyManager)},
	}

	tests := []struct {
		name       string
		sender     Principal
		recipient  string
		propertyID *string
		unitID     *string
		expected   bool
	}{
		{name: "landlord to own tenant", sender: landlord, recipient: "T", expected: true},
		{name: "tenant to landlord", sender: tenant, recipient: "L", expected: true},
		{name: "tenant on unrelated property", sender: otherTenant, recipient: "T", expected: false},
		{name: "property not shared", sender: landlord, recipient: "T", propertyID: strPtr("Q"), expected: false},
		{name: "shared property given", sender: tenant, recipient: "L", propertyID: strPtr("P"), expected: true},
		{name: "tenants on different units of the same property", sender: tenant, recipient: "T3", unitID: strPtr("U"), expected: false},
		{name: "manager override within unit context", sender: landlord, recipient: "T", propertyID: strPtr("P"), unitID: strPtr("U"), expected: true},
		{name: "manager of another property", sender: Principal{ID: "M", Role: types.RolePropertyManager}, recipient: "T", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			a, store := newTestAuthorizer(ctrl, nil)

			store.EXPECT().
				AssociationsOf(gomock.Any(), gomock.Any(), true).
				DoAndReturn(func(_ context.Context, userID string, _ bool) ([]*types.PropertyUser, error) {
					return associations[userID], nil
				}).
				AnyTimes()

			if got := a.CanMessage(context.Background(), tt.sender, tt.recipient, tt.propertyID, tt.unitID); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestCanMessageFailsClosed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, store := newTestAuthorizer(ctrl, nil)

	store.EXPECT().AssociationsOf(gomock.Any(), "L", true).Return(nil, errors.New("timeout"))

	if a.CanMessage(context.Background(), Principal{ID: "L", Role: types.RoleLandlord}, "T", nil, nil) {
		t.Error("expected lookup failure to deny")
	}
}

func TestCanAccessRent(t *testing.T) {
	rent := &types.Rent{ID: "r1", TenantID: "T", PropertyID: "P"}

	tests := []struct {
		name      string
		principal Principal
		setup     func(*MockAssociationStoreInterface)
		expected  bool
	}{
		{
			name:      "rent tenant",
			principal: Principal{ID: "T", Role: types.RoleTenant},
			setup:     func(*MockAssociationStoreInterface) {},
			expected:  true,
		},
		{
			name:      "property manager",
			principal: Principal{ID: "M", Role: types.RolePropertyManager},
			setup: func(s *MockAssociationStoreInterface) {
				s.EXPECT().ExistsAssociation(gomock.Any(), storage.AssociationFilter{UserID: "M", PropertyID: "P", Roles: types.ManagementRoles, ActiveOnly: true}).Return(true, nil)
			},
			expected: true,
		},
		{
			name:      "another tenant",
			principal: Principal{ID: "T2", Role: types.RoleTenant},
			setup: func(s *MockAssociationStoreInterface) {
				s.EXPECT().ExistsAssociation(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			a, store := newTestAuthorizer(ctrl, nil)
			tt.setup(store)

			if got := a.CanAccessRent(context.Background(), tt.principal, rent); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestCanAccessOnboarding(t *testing.T) {
	tenant := Principal{ID: "T", Role: types.RoleTenant}
	tenantRole := types.NewRoleSet(types.AssocTenant)

	managerCheck := func(s *MockAssociationStoreInterface, propertyID string, result bool) {
		s.EXPECT().
			ExistsAssociation(gomock.Any(), storage.AssociationFilter{UserID: "T", PropertyID: propertyID, Roles: types.ManagementRoles, ActiveOnly: true}).
			Return(result, nil)
	}

	tests := []struct {
		name     string
		doc      *types.OnboardingDocument
		setup    func(*MockAssociationStoreInterface)
		expected bool
	}{
		{
			name:     "creator",
			doc:      &types.OnboardingDocument{ID: "d", CreatedBy: "T", Visibility: types.VisibilitySpecificTenant},
			setup:    func(*MockAssociationStoreInterface) {},
			expected: true,
		},
		{
			name: "all tenants with any tenant association",
			doc:  &types.OnboardingDocument{ID: "d", CreatedBy: "L", Visibility: types.VisibilityAllTenants},
			setup: func(s *MockAssociationStoreInterface) {
				s.EXPECT().ExistsAssociation(gomock.Any(), storage.AssociationFilter{UserID: "T", Roles: tenantRole, ActiveOnly: true}).Return(true, nil)
			},
			expected: true,
		},
		{
			name: "property tenants on another property",
			doc:  &types.OnboardingDocument{ID: "d", CreatedBy: "L", Visibility: types.VisibilityPropertyTenants, PropertyID: strPtr("P")},
			setup: func(s *MockAssociationStoreInterface) {
				managerCheck(s, "P", false)
				s.EXPECT().ExistsAssociation(gomock.Any(), storage.AssociationFilter{UserID: "T", PropertyID: "P", Roles: tenantRole, ActiveOnly: true}).Return(false, nil)
			},
			expected: false,
		},
		{
			name: "unit tenants on the unit",
			doc:  &types.OnboardingDocument{ID: "d", CreatedBy: "L", Visibility: types.VisibilityUnitTenants, PropertyID: strPtr("P"), UnitID: strPtr("U")},
			setup: func(s *MockAssociationStoreInterface) {
				managerCheck(s, "P", false)
				s.EXPECT().ExistsAssociation(gomock.Any(), storage.AssociationFilter{UserID: "T", UnitID: strPtr("U"), Roles: tenantRole, ActiveOnly: true}).Return(true, nil)
			},
			expected: true,
		},
		{
			name: "specific tenant addressed to someone else",
			doc:  &types.OnboardingDocument{ID: "d", CreatedBy: "L", Visibility: types.VisibilitySpecificTenant, PropertyID: strPtr("P"), TenantID: strPtr("T2")},
			setup: func(s *MockAssociationStoreInterface) {
				managerCheck(s, "P", false)
			},
			expected: false,
		},
		{
			name: "manager of the document property",
			doc:  &types.OnboardingDocument{ID: "d", CreatedBy: "L", Visibility: types.VisibilitySpecificTenant, PropertyID: strPtr("P"), TenantID: strPtr("T2")},
			setup: func(s *MockAssociationStoreInterface) {
				managerCheck(s, "P", true)
			},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			a, store := newTestAuthorizer(ctrl, nil)
			tt.setup(store)

			if got := a.CanAccessOnboarding(context.Background(), tenant, tt.doc); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestDenialIsLoggedAsSecurityEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockAssociationStoreInterface(ctrl)
	logger := NewMockLoggerInterface(ctrl)
	security := NewMockSecurityLoggerInterface(ctrl)
	monitor := NewMockMonitorInterface(ctrl)

	a := NewAuthorizer(store, nil, tracing.NewNoopTracer(), monitor, logger)

	store.EXPECT().ExistsAssociation(gomock.Any(), gomock.Any()).Return(false, nil)
	logger.EXPECT().Security().Return(security)
	security.EXPECT().AuthzFailureWithAction("u1", string(ActionManageProperty), "property:p1")
	monitor.EXPECT().IncOperationCounter(map[string]string{"operation": "authorize", "outcome": "deny"}).Return(nil)

	if a.CanManageProperty(context.Background(), Principal{ID: "u1", Role: types.RoleLandlord}, "p1") {
		t.Error("expected denial")
	}
}

func TestPropertyIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, store := newTestAuthorizer(ctrl, nil)

	store.EXPECT().AssociationsOf(gomock.Any(), "u1", true).Return([]*types.PropertyUser{
		assoc("u1", "P1", nil, types.AssocLandlord),
		assoc("u1", "P2", strPtr("U"), types.AssocTenant),
		assoc("u1", "P1", nil, types.AssocAdminAccess),
	}, nil).Times(2)

	p := Principal{ID: "u1", Role: types.RoleLandlord}

	managed, err := a.ManagedPropertyIDs(context.Background(), p)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(managed) != 1 || managed[0] != "P1" {
		t.Errorf("expected [P1], got %v", managed)
	}

	visible, err := a.VisiblePropertyIDs(context.Background(), p)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(visible) != 2 {
		t.Errorf("expected two visible properties, got %v", visible)
	}
}
