// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package property

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/property-service/internal/apperrors"
	"github.com/canonical/property-service/internal/authorization"
	"github.com/canonical/property-service/internal/notification"
	"github.com/canonical/property-service/internal/storage"
	"github.com/canonical/property-service/internal/types"
)

// Assignment names a user and the roles to grant or revoke on a property.
// UnitID is required for the tenant role and forbidden otherwise.
type Assignment struct {
	UserID string
	UnitID *string
	Roles  types.RoleSet
}

func (a *Assignment) validate() error {
	if a.UserID == "" {
		return apperrors.Validation("user id is required")
	}
	if len(a.Roles) == 0 {
		return apperrors.Validation("at least one role is required")
	}
	for _, r := range a.Roles {
		if !r.Valid() {
			return apperrors.Validation("unknown role %q", r)
		}
	}

	if a.UnitID != nil && *a.UnitID == "" {
		a.UnitID = nil
	}

	tenant := a.Roles.Has(types.AssocTenant)
	switch {
	case tenant && a.UnitID == nil:
		return apperrors.Validation("unit id is required for the tenant role")
	case !tenant && a.UnitID != nil:
		return apperrors.Validation("unit id is only allowed for the tenant role")
	case tenant && a.Roles.HasAny(types.NewRoleSet(types.AssocLandlord, types.AssocPropertyManager)):
		return apperrors.Validation("tenant role cannot be combined with landlord or propertymanager")
	}

	return nil
}

// AssignUser grants roles on a property. Assigning a tenant requires a vacant
// unit of the property, no other tenanted unit on the same property, and
// marks the unit occupied.
func (s *Service) AssignUser(ctx context.Context, p authorization.Principal, propertyID string, in *Assignment) (*types.PropertyUser, error) {
	ctx, span := s.tracer.Start(ctx, "property.Service.AssignUser")
	defer span.End()

	if err := in.validate(); err != nil {
		return nil, err
	}

	if !s.authz.CanManageProperty(ctx, p, propertyID) {
		return nil, apperrors.Forbidden("not allowed to assign users on property %s", propertyID)
	}

	tenant := in.Roles.Has(types.AssocTenant)

	var assoc *types.PropertyUser
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		prop, err := s.storage.GetProperty(ctx, propertyID)
		if err != nil {
			return apperrors.FromStorage(err, "property")
		}

		if _, err := s.storage.GetUser(ctx, in.UserID); err != nil {
			return apperrors.FromStorage(err, "user")
		}

		var unit *types.Unit
		if tenant {
			if unit, err = s.lockPropertyUnit(ctx, propertyID, *in.UnitID); err != nil {
				return err
			}

			active, err := s.storage.CountLeases(ctx, storage.LeaseFilter{UnitID: unit.ID, Status: types.LeaseActive})
			if err != nil {
				return apperrors.FromStorage(err, "leases")
			}
			if active > 0 {
				return apperrors.Conflict("unit %s already has an active lease", unit.UnitName)
			}

			// one tenanted unit per property, other properties are unaffected
			elsewhere, err := s.storage.ExistsAssociation(ctx, storage.AssociationFilter{
				UserID:        in.UserID,
				PropertyID:    propertyID,
				ExcludeUnitID: unit.ID,
				Roles:         types.NewRoleSet(types.AssocTenant),
				ActiveOnly:    true,
			})
			if err != nil {
				return apperrors.FromStorage(err, "property association")
			}
			if elsewhere {
				return apperrors.Conflict("user is already a tenant of another unit of this property")
			}
		}

		assoc, err = s.storage.UpsertAssociation(ctx, in.UserID, propertyID, in.UnitID, in.Roles, p.ID)
		switch {
		case errors.Is(err, storage.ErrAlreadyActive):
			return apperrors.Conflict("user already holds roles %v on property", in.Roles.Strings())
		case err != nil:
			return apperrors.FromStorage(err, "property association")
		}

		if unit != nil {
			if err := s.syncUnitStatus(ctx, unit); err != nil {
				return err
			}
		}

		s.notifier.Notify(ctx, notification.Payload{
			RecipientID: in.UserID,
			Type:        notification.TypeAssignment,
			Message:     fmt.Sprintf("You have been added to %s", prop.Name),
			Path:        "/properties/" + propertyID,
			Context:     contextOf(types.PropertyContext(propertyID)),
		})
		s.auditor.Record(ctx, p.ID, "property.assign_user", "property", propertyID, map[string]interface{}{
			"user_id": in.UserID,
			"roles":   in.Roles.Strings(),
			"unit_id": in.UnitID,
		})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return assoc, nil
}

// RemoveUser revokes roles on a property. A tenant with an active lease on
// the unit cannot be removed; once the unit has no tenant left it is vacated.
func (s *Service) RemoveUser(ctx context.Context, p authorization.Principal, propertyID string, in *Assignment) (*types.PropertyUser, error) {
	ctx, span := s.tracer.Start(ctx, "property.Service.RemoveUser")
	defer span.End()

	if err := in.validate(); err != nil {
		return nil, err
	}

	if !s.authz.CanManageProperty(ctx, p, propertyID) {
		return nil, apperrors.Forbidden("not allowed to remove users on property %s", propertyID)
	}

	tenant := in.Roles.Has(types.AssocTenant)

	var assoc *types.PropertyUser
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		prop, err := s.storage.GetProperty(ctx, propertyID)
		if err != nil {
			return apperrors.FromStorage(err, "property")
		}

		var unit *types.Unit
		if tenant {
			if unit, err = s.lockPropertyUnit(ctx, propertyID, *in.UnitID); err != nil {
				return err
			}

			leased, err := s.storage.CountLeases(ctx, storage.LeaseFilter{UnitID: unit.ID, TenantID: in.UserID, Status: types.LeaseActive})
			if err != nil {
				return apperrors.FromStorage(err, "leases")
			}
			if leased > 0 {
				return apperrors.Dependency("tenant has an active lease on unit %s", unit.UnitName)
			}
		}

		assoc, err = s.storage.DeactivateRoles(ctx, in.UserID, propertyID, in.Roles, in.UnitID)
		if err != nil {
			return apperrors.FromStorage(err, "property association")
		}

		if unit != nil {
			if err := s.syncUnitStatus(ctx, unit); err != nil {
				return err
			}
		}

		s.notifier.Notify(ctx, notification.Payload{
			RecipientID: in.UserID,
			Type:        notification.TypeRemoval,
			Message:     fmt.Sprintf("You have been removed from %s", prop.Name),
		})
		s.auditor.Record(ctx, p.ID, "property.remove_user", "property", propertyID, map[string]interface{}{
			"user_id": in.UserID,
			"roles":   in.Roles.Strings(),
			"unit_id": in.UnitID,
		})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return assoc, nil
}

func (s *Service) ListPropertyUsers(ctx context.Context, p authorization.Principal, propertyID string, activeOnly bool) ([]*types.PropertyUser, error) {
	ctx, span := s.tracer.Start(ctx, "property.Service.ListPropertyUsers")
	defer span.End()

	if !s.authz.CanViewProperty(ctx, p, propertyID) {
		return nil, apperrors.Forbidden("not allowed to view property %s", propertyID)
	}

	users, err := s.storage.ListPropertyUsers(ctx, propertyID, activeOnly)
	if err != nil {
		return nil, apperrors.FromStorage(err, "property users")
	}

	return users, nil
}

// lockPropertyUnit locks the unit row and checks it belongs to the property.
func (s *Service) lockPropertyUnit(ctx context.Context, propertyID, unitID string) (*types.Unit, error) {
	unit, err := s.storage.GetUnitForUpdate(ctx, unitID)
	if err != nil {
		return nil, apperrors.FromStorage(err, "unit")
	}

	if unit.PropertyID != propertyID {
		return nil, apperrors.Validation("unit %s does not belong to property %s", unitID, propertyID)
	}

	return unit, nil
}

func contextOf(c types.CommentContext) *types.CommentContext {
	return &c
}
