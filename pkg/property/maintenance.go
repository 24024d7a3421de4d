// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package property

import (
	"context"
	"strings"

	"github.com/canonical/property-service/internal/apperrors"
	"github.com/canonical/property-service/internal/authorization"
	"github.com/canonical/property-service/internal/notification"
	"github.com/canonical/property-service/internal/storage"
	"github.com/canonical/property-service/internal/types"
)

// ScheduleMaintenance plans maintenance on a property or one of its units,
// optionally assigned to an associated user or to a vendor.
func (s *Service) ScheduleMaintenance(ctx context.Context, p authorization.Principal, in *types.ScheduledMaintenance) (*types.ScheduledMaintenance, error) {
	ctx, span := s.tracer.Start(ctx, "property.Service.ScheduleMaintenance")
	defer span.End()

	if strings.TrimSpace(in.Title) == "" {
		return nil, apperrors.Validation("title is required")
	}
	if in.ScheduledAt.IsZero() {
		return nil, apperrors.Validation("scheduled_at is required")
	}

	if !s.authz.CanManageProperty(ctx, p, in.PropertyID) {
		return nil, apperrors.Forbidden("not allowed to schedule maintenance on property %s", in.PropertyID)
	}

	var created *types.ScheduledMaintenance
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		if _, err := s.storage.GetProperty(ctx, in.PropertyID); err != nil {
			return apperrors.FromStorage(err, "property")
		}

		if in.UnitID != nil {
			unit, err := s.storage.GetUnit(ctx, *in.UnitID)
			if err != nil {
				return apperrors.FromStorage(err, "unit")
			}
			if unit.PropertyID != in.PropertyID {
				return apperrors.Validation("unit %s does not belong to property %s", unit.ID, in.PropertyID)
			}
		}

		if err := s.checkAssignee(ctx, in.PropertyID, in.AssignedTo); err != nil {
			return err
		}

		var err error
		created, err = s.storage.CreateScheduledMaintenance(ctx, in)
		if err != nil {
			return apperrors.FromStorage(err, "scheduled maintenance")
		}

		if in.AssignedTo != nil && in.AssignedTo.Kind == types.AssigneeUser {
			s.notifier.Notify(ctx, notification.Payload{
				RecipientID: in.AssignedTo.ID,
				Type:        notification.TypeAssignment,
				Message:     "You have been assigned maintenance: " + in.Title,
				Path:        "/properties/" + in.PropertyID + "/maintenance",
				Context:     contextOf(types.PropertyContext(in.PropertyID)),
			})
		}
		s.auditor.Record(ctx, p.ID, "maintenance.schedule", "scheduled_maintenance", created.ID, map[string]interface{}{"property_id": in.PropertyID})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// checkAssignee dispatches on the assignee kind: users must be associated
// with the property, vendors must exist with the vendor role.
func (s *Service) checkAssignee(ctx context.Context, propertyID string, a *types.Assignee) error {
	if a == nil {
		return nil
	}
	if a.ID == "" {
		return apperrors.Validation("assignee id is required")
	}

	switch a.Kind {
	case types.AssigneeUser:
		ok, err := s.storage.ExistsAssociation(ctx, storage.AssociationFilter{UserID: a.ID, PropertyID: propertyID, ActiveOnly: true})
		if err != nil {
			return apperrors.FromStorage(err, "property association")
		}
		if !ok {
			return apperrors.Validation("assignee %s is not associated with the property", a.ID)
		}
	case types.AssigneeVendor:
		u, err := s.storage.GetUser(ctx, a.ID)
		if err != nil {
			return apperrors.FromStorage(err, "vendor")
		}
		if u.Role != types.RoleVendor {
			return apperrors.Validation("user %s is not a vendor", a.ID)
		}
	default:
		return apperrors.Validation("unknown assignee kind %q", a.Kind)
	}

	return nil
}

func (s *Service) ListScheduledMaintenance(ctx context.Context, p authorization.Principal, propertyID string) ([]*types.ScheduledMaintenance, error) {
	ctx, span := s.tracer.Start(ctx, "property.Service.ListScheduledMaintenance")
	defer span.End()

	if !s.authz.CanViewProperty(ctx, p, propertyID) {
		return nil, apperrors.Forbidden("not allowed to view property %s", propertyID)
	}

	items, err := s.storage.ListScheduledMaintenance(ctx, propertyID)
	if err != nil {
		return nil, apperrors.FromStorage(err, "scheduled maintenance")
	}

	return items, nil
}
