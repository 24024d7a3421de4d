// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"slices"
)

// AssociationRole is a role held on a property through a PropertyUser record.
type AssociationRole string

const (
	AssocLandlord        AssociationRole = "landlord"
	AssocPropertyManager AssociationRole = "propertymanager"
	AssocTenant          AssociationRole = "tenant"
	AssocAdminAccess     AssociationRole = "admin_access"
)

func (r AssociationRole) Valid() bool {
	switch r {
	case AssocLandlord, AssocPropertyManager, AssocTenant, AssocAdminAccess:
		return true
	}
	return false
}

// RoleSet is an ordered, duplicate free set of association roles.
type RoleSet []AssociationRole

// ManagementRoles grant property management by default.
var ManagementRoles = RoleSet{AssocLandlord, AssocPropertyManager, AssocAdminAccess}

// AnyAssociationRoles grant property view.
var AnyAssociationRoles = RoleSet{AssocLandlord, AssocPropertyManager, AssocTenant, AssocAdminAccess}

func NewRoleSet(roles ...AssociationRole) RoleSet {
	s := make(RoleSet, 0, len(roles))
	for _, r := range roles {
		if !s.Has(r) {
			s = append(s, r)
		}
	}
	return s
}

// ParseRoleSet converts raw strings, returning false when one is unknown.
func ParseRoleSet(raw []string) (RoleSet, bool) {
	roles := make([]AssociationRole, 0, len(raw))
	for _, r := range raw {
		role := AssociationRole(r)
		if !role.Valid() {
			return nil, false
		}
		roles = append(roles, role)
	}
	return NewRoleSet(roles...), true
}

func (s RoleSet) Has(r AssociationRole) bool {
	return slices.Contains(s, r)
}

func (s RoleSet) HasAny(roles RoleSet) bool {
	for _, r := range roles {
		if s.Has(r) {
			return true
		}
	}
	return false
}

func (s RoleSet) ContainsAll(roles RoleSet) bool {
	for _, r := range roles {
		if !s.Has(r) {
			return false
		}
	}
	return true
}

func (s RoleSet) Union(roles RoleSet) RoleSet {
	return NewRoleSet(append(slices.Clone(s), roles...)...)
}

func (s RoleSet) Without(roles RoleSet) RoleSet {
	out := make(RoleSet, 0, len(s))
	for _, r := range s {
		if !roles.Has(r) {
			out = append(out, r)
		}
	}
	return out
}

func (s RoleSet) Strings() []string {
	out := make([]string, len(s))
	for i, r := range s {
		out[i] = string(r)
	}
	return out
}

// AssociationRoleFor is the role seeded on a property for its creator.
// Admins are seeded as property managers.
func AssociationRoleFor(r Role) (AssociationRole, bool) {
	switch r {
	case RoleAdmin, RolePropertyManager:
		return AssocPropertyManager, true
	case RoleLandlord:
		return AssocLandlord, true
	}
	return "", false
}
