// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/canonical/property-service/internal/types"
)

func TestGrantRoles(t *testing.T) {
	tests := []struct {
		name        string
		existing    *types.PropertyUser
		roles       types.RoleSet
		expected    types.RoleSet
		expectedErr error
	}{
		{
			name:     "active record gains the new role",
			existing: &types.PropertyUser{IsActive: true, Roles: types.NewRoleSet(types.AssocLandlord)},
			roles:    types.NewRoleSet(types.AssocAdminAccess),
			expected: types.NewRoleSet(types.AssocLandlord, types.AssocAdminAccess),
		},
		{
			name:        "active record already holding the roles",
			existing:    &types.PropertyUser{IsActive: true, Roles: types.NewRoleSet(types.AssocLandlord, types.AssocAdminAccess)},
			roles:       types.NewRoleSet(types.AssocAdminAccess),
			expectedErr: ErrAlreadyActive,
		},
		{
			name:     "inactive record does not bring revoked roles back",
			existing: &types.PropertyUser{IsActive: false, Roles: types.NewRoleSet(types.AssocLandlord, types.AssocAdminAccess)},
			roles:    types.NewRoleSet(types.AssocAdminAccess),
			expected: types.NewRoleSet(types.AssocAdminAccess),
		},
		{
			name:     "inactive tenant record is reactivated",
			existing: &types.PropertyUser{IsActive: false, Roles: types.NewRoleSet(types.AssocTenant)},
			roles:    types.NewRoleSet(types.AssocTenant),
			expected: types.NewRoleSet(types.AssocTenant),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roles, err := grantRoles(tt.existing, tt.roles)

			if !errors.Is(err, tt.expectedErr) {
				t.Fatalf("expected error %v, got %v", tt.expectedErr, err)
			}
			if !reflect.DeepEqual(roles, tt.expected) {
				t.Errorf("expected roles %v, got %v", tt.expected, roles)
			}
		})
	}
}

func TestRevokeRoles(t *testing.T) {
	unit := "u1"

	tests := []struct {
		name        string
		existing    *types.PropertyUser
		roles       types.RoleSet
		unitID      *string
		expected    revocation
		expectedErr error
	}{
		{
			name:     "one of two roles removed",
			existing: &types.PropertyUser{IsActive: true, Roles: types.NewRoleSet(types.AssocLandlord, types.AssocAdminAccess)},
			roles:    types.NewRoleSet(types.AssocAdminAccess),
			expected: revocation{Roles: types.NewRoleSet(types.AssocLandlord)},
		},
		{
			name:     "last roles removed",
			existing: &types.PropertyUser{IsActive: true, Roles: types.NewRoleSet(types.AssocLandlord, types.AssocAdminAccess)},
			roles:    types.NewRoleSet(types.AssocLandlord, types.AssocAdminAccess),
			expected: revocation{Roles: types.RoleSet{}, Deactivate: true},
		},
		{
			name:     "tenant leaving a unit deactivates the record",
			existing: &types.PropertyUser{IsActive: true, Roles: types.NewRoleSet(types.AssocTenant, types.AssocAdminAccess)},
			roles:    types.NewRoleSet(types.AssocTenant),
			unitID:   &unit,
			expected: revocation{Roles: types.NewRoleSet(types.AssocAdminAccess), Deactivate: true},
		},
		{
			name:        "inactive record",
			existing:    &types.PropertyUser{IsActive: false, Roles: types.NewRoleSet(types.AssocLandlord)},
			roles:       types.NewRoleSet(types.AssocLandlord),
			expectedErr: ErrNotFound,
		},
		{
			name:        "role not held",
			existing:    &types.PropertyUser{IsActive: true, Roles: types.NewRoleSet(types.AssocPropertyManager)},
			roles:       types.NewRoleSet(types.AssocLandlord),
			expectedErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome, err := revokeRoles(tt.existing, tt.roles, tt.unitID)

			if !errors.Is(err, tt.expectedErr) {
				t.Fatalf("expected error %v, got %v", tt.expectedErr, err)
			}
			if tt.expectedErr != nil {
				return
			}
			if outcome.Deactivate != tt.expected.Deactivate {
				t.Errorf("expected deactivate %v, got %v", tt.expected.Deactivate, outcome.Deactivate)
			}
			if len(outcome.Roles) != len(tt.expected.Roles) || !outcome.Roles.ContainsAll(tt.expected.Roles) {
				t.Errorf("expected remaining roles %v, got %v", tt.expected.Roles, outcome.Roles)
			}
		})
	}
}

func TestRevokeThenGrantKeepsRevokedRolesOut(t *testing.T) {
	record := &types.PropertyUser{IsActive: true, Roles: types.NewRoleSet(types.AssocLandlord, types.AssocAdminAccess)}

	outcome, err := revokeRoles(record, types.NewRoleSet(types.AssocLandlord, types.AssocAdminAccess), nil)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if !outcome.Deactivate {
		t.Fatalf("expected the record to be deactivated")
	}

	// the inactive row keeps its last stored roles
	record.IsActive = false

	roles, err := grantRoles(record, types.NewRoleSet(types.AssocAdminAccess))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if roles.Has(types.AssocLandlord) {
		t.Errorf("revoked landlord role granted again: %v", roles)
	}
}

func TestRentRegenerateClause(t *testing.T) {
	for _, c := range []string{"amount_due = EXCLUDED.amount_due", "due_date = EXCLUDED.due_date", "WHERE deleted_at IS NULL"} {
		if !strings.Contains(rentRegenerateClause, c) {
			t.Errorf("expected %q in regenerate clause", c)
		}
	}

	for _, c := range []string{"amount_paid =", "payment_history =", "notes ="} {
		if strings.Contains(rentRegenerateClause, c) {
			t.Errorf("regeneration must not overwrite %q", c)
		}
	}
}
