// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package property manages properties, units, user associations and leases,
// and keeps unit occupancy in step with them.
package property

import (
	"context"
	"errors"
	"strings"

	"github.com/canonical/property-service/internal/apperrors"
	"github.com/canonical/property-service/internal/authorization"
	"github.com/canonical/property-service/internal/logging"
	"github.com/canonical/property-service/internal/monitoring"
	"github.com/canonical/property-service/internal/storage"
	"github.com/canonical/property-service/internal/tracing"
	"github.com/canonical/property-service/internal/types"
)

// PropertyUpdate carries the mutable fields of a property, nil fields are
// left untouched.
type PropertyUpdate struct {
	Name              *string
	Address           *string
	Type              *string
	IsActive          *bool
	MainContactUserID *string
}

type Service struct {
	storage  StorageInterface
	authz    AuthorizerInterface
	tx       TxManagerInterface
	notifier NotifierInterface
	auditor  AuditorInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	authz AuthorizerInterface,
	tx TxManagerInterface,
	notifier NotifierInterface,
	auditor AuditorInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:  storage,
		authz:    authz,
		tx:       tx,
		notifier: notifier,
		auditor:  auditor,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (s *Service) CreateProperty(ctx context.Context, p authorization.Principal, in *types.Property) (*types.Property, error) {
	ctx, span := s.tracer.Start(ctx, "property.Service.CreateProperty")
	defer span.End()

	seed, ok := types.AssociationRoleFor(p.Role)
	if p.ID == "" || !ok {
		s.logger.Security().AuthzFailureWithAction(p.ID, "create", "property")
		return nil, apperrors.Forbidden("role %s may not create properties", p.Role)
	}

	if strings.TrimSpace(in.Name) == "" {
		return nil, apperrors.Validation("property name is required")
	}

	var created *types.Property
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		var err error

		created, err = s.storage.CreateProperty(ctx, &types.Property{
			Name:              in.Name,
			Address:           in.Address,
			Type:              in.Type,
			CreatedBy:         p.ID,
			IsActive:          true,
			MainContactUserID: in.MainContactUserID,
		})
		if err != nil {
			return apperrors.FromStorage(err, "property")
		}

		if _, err := s.storage.UpsertAssociation(ctx, p.ID, created.ID, nil, types.NewRoleSet(seed), p.ID); err != nil {
			return apperrors.FromStorage(err, "property association")
		}

		s.auditor.Record(ctx, p.ID, "property.create", "property", created.ID, map[string]interface{}{"name": created.Name})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *Service) GetProperty(ctx context.Context, p authorization.Principal, id string) (*types.Property, error) {
	ctx, span := s.tracer.Start(ctx, "property.Service.GetProperty")
	defer span.End()

	if !s.authz.CanViewProperty(ctx, p, id) {
		return nil, apperrors.Forbidden("not allowed to view property %s", id)
	}

	prop, err := s.storage.GetProperty(ctx, id)
	if err != nil {
		return nil, apperrors.FromStorage(err, "property")
	}

	return prop, nil
}

func (s *Service) ListProperties(ctx context.Context, p authorization.Principal, page storage.Page) ([]*types.Property, error) {
	ctx, span := s.tracer.Start(ctx, "property.Service.ListProperties")
	defer span.End()

	if p.ID == "" {
		return nil, apperrors.Forbidden("unauthenticated")
	}

	// admins see every property, everyone else what they are associated with
	userID := p.ID
	if p.IsAdmin() {
		userID = ""
	}

	props, err := s.storage.ListProperties(ctx, userID, page)
	if err != nil {
		return nil, apperrors.FromStorage(err, "properties")
	}

	return props, nil
}

func (s *Service) UpdateProperty(ctx context.Context, p authorization.Principal, id string, in *PropertyUpdate) (*types.Property, error) {
	ctx, span := s.tracer.Start(ctx, "property.Service.UpdateProperty")
	defer span.End()

	if !s.authz.CanManageProperty(ctx, p, id) {
		return nil, apperrors.Forbidden("not allowed to update property %s", id)
	}

	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return nil, apperrors.Validation("property name cannot be empty")
	}

	var updated *types.Property
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		prop, err := s.storage.GetProperty(ctx, id)
		if err != nil {
			return apperrors.FromStorage(err, "property")
		}

		changed := make([]string, 0, 5)
		if in.Name != nil {
			prop.Name = *in.Name
			changed = append(changed, "name")
		}
		if in.Address != nil {
			prop.Address = *in.Address
			changed = append(changed, "address")
		}
		if in.Type != nil {
			prop.Type = *in.Type
			changed = append(changed, "type")
		}
		if in.IsActive != nil {
			prop.IsActive = *in.IsActive
			changed = append(changed, "is_active")
		}
		if in.MainContactUserID != nil {
			prop.MainContactUserID = in.MainContactUserID
			if *in.MainContactUserID == "" {
				prop.MainContactUserID = nil
			}
			changed = append(changed, "main_contact_user_id")
		}

		updated, err = s.storage.UpdateProperty(ctx, prop)
		if err != nil {
			return apperrors.FromStorage(err, "property")
		}

		s.auditor.Record(ctx, p.ID, "property.update", "property", id, map[string]interface{}{"fields": changed})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteProperty removes the property and everything scoped to it in a single
// transaction. Properties with active leases cannot be deleted.
func (s *Service) DeleteProperty(ctx context.Context, p authorization.Principal, id string) error {
	ctx, span := s.tracer.Start(ctx, "property.Service.DeleteProperty")
	defer span.End()

	if !s.authz.CanManageProperty(ctx, p, id) {
		return apperrors.Forbidden("not allowed to delete property %s", id)
	}

	return s.tx.WithTx(ctx, func(ctx context.Context) error {
		if _, err := s.storage.GetProperty(ctx, id); err != nil {
			return apperrors.FromStorage(err, "property")
		}

		active, err := s.storage.CountLeases(ctx, storage.LeaseFilter{PropertyID: id, Status: types.LeaseActive})
		if err != nil {
			return apperrors.FromStorage(err, "leases")
		}
		if active > 0 {
			return apperrors.Dependency("property has %d active leases", active).
				WithDetails(map[string]interface{}{"active_leases": active})
		}

		removed, err := s.storage.DeletePropertyCascade(ctx, id)
		if err != nil {
			return apperrors.FromStorage(err, "property")
		}

		details := make(map[string]interface{}, len(removed))
		for table, n := range removed {
			details[table] = n
		}
		s.auditor.Record(ctx, p.ID, "property.delete", "property", id, details)

		s.logger.Infof("property %s deleted by %s", id, p.ID)
		return nil
	})
}

func (s *Service) CreateUnit(ctx context.Context, p authorization.Principal, propertyID, name string) (*types.Unit, error) {
	ctx, span := s.tracer.Start(ctx, "property.Service.CreateUnit")
	defer span.End()

	if !s.authz.CanManageProperty(ctx, p, propertyID) {
		return nil, apperrors.Forbidden("not allowed to add units to property %s", propertyID)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.Validation("unit name is required")
	}

	var created *types.Unit
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		if _, err := s.storage.GetProperty(ctx, propertyID); err != nil {
			return apperrors.FromStorage(err, "property")
		}

		var err error
		created, err = s.storage.CreateUnit(ctx, &types.Unit{
			PropertyID: propertyID,
			UnitName:   name,
			Status:     types.UnitVacant,
		})
		if errors.Is(err, storage.ErrDuplicateKey) {
			return apperrors.Conflict("unit %q already exists on property", name)
		}
		if err != nil {
			return apperrors.FromStorage(err, "unit")
		}

		s.auditor.Record(ctx, p.ID, "unit.create", "unit", created.ID, map[string]interface{}{"property_id": propertyID, "name": name})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *Service) ListUnits(ctx context.Context, p authorization.Principal, propertyID string) ([]*types.Unit, error) {
	ctx, span := s.tracer.Start(ctx, "property.Service.ListUnits")
	defer span.End()

	if !s.authz.CanViewProperty(ctx, p, propertyID) {
		return nil, apperrors.Forbidden("not allowed to view property %s", propertyID)
	}

	units, err := s.storage.ListUnits(ctx, propertyID)
	if err != nil {
		return nil, apperrors.FromStorage(err, "units")
	}

	return units, nil
}

// SetUnitMaintenance sets or clears the manual maintenance flag of a unit.
// The flag only shows as the unit status while the unit is not occupied.
func (s *Service) SetUnitMaintenance(ctx context.Context, p authorization.Principal, unitID string, flag types.UnitStatus) (*types.Unit, error) {
	ctx, span := s.tracer.Start(ctx, "property.Service.SetUnitMaintenance")
	defer span.End()

	switch flag {
	case "", types.UnitUnderMaintenance, types.UnitUnavailable:
	default:
		return nil, apperrors.Validation("invalid maintenance flag %q", flag)
	}

	unit, err := s.storage.GetUnit(ctx, unitID)
	if err != nil {
		return nil, apperrors.FromStorage(err, "unit")
	}

	if !s.authz.CanManageProperty(ctx, p, unit.PropertyID) {
		return nil, apperrors.Forbidden("not allowed to manage unit %s", unitID)
	}

	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		locked, err := s.storage.GetUnitForUpdate(ctx, unitID)
		if err != nil {
			return apperrors.FromStorage(err, "unit")
		}

		if err := s.storage.SetUnitMaintenanceFlag(ctx, unitID, flag); err != nil {
			return apperrors.FromStorage(err, "unit")
		}
		locked.MaintenanceFlag = flag

		if err := s.syncUnitStatus(ctx, locked); err != nil {
			return err
		}

		unit = locked
		s.auditor.Record(ctx, p.ID, "unit.maintenance", "unit", unitID, map[string]interface{}{"flag": string(flag), "status": string(locked.Status)})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return unit, nil
}
