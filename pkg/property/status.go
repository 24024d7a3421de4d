// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package property

import (
	"context"

	"github.com/canonical/property-service/internal/apperrors"
	"github.com/canonical/property-service/internal/storage"
	"github.com/canonical/property-service/internal/types"
)

// DeriveUnitStatus computes the status of a unit from its active tenant
// associations, its active leases and its manual maintenance flag.
func DeriveUnitStatus(activeTenants, activeLeases int, flag types.UnitStatus) types.UnitStatus {
	if activeTenants > 0 || activeLeases > 0 {
		return types.UnitOccupied
	}

	switch flag {
	case types.UnitUnderMaintenance, types.UnitUnavailable:
		return flag
	}

	return types.UnitVacant
}

// syncUnitStatus recomputes the unit status and persists it when it changed.
// The caller must hold the unit row lock.
func (s *Service) syncUnitStatus(ctx context.Context, unit *types.Unit) error {
	ctx, span := s.tracer.Start(ctx, "property.Service.syncUnitStatus")
	defer span.End()

	tenants, err := s.storage.CountAssociations(ctx, storage.AssociationFilter{
		UnitID:     &unit.ID,
		Roles:      types.NewRoleSet(types.AssocTenant),
		ActiveOnly: true,
	})
	if err != nil {
		return apperrors.FromStorage(err, "unit associations")
	}

	leases, err := s.storage.CountLeases(ctx, storage.LeaseFilter{UnitID: unit.ID, Status: types.LeaseActive})
	if err != nil {
		return apperrors.FromStorage(err, "unit leases")
	}

	status := DeriveUnitStatus(tenants, leases, unit.MaintenanceFlag)
	if status == unit.Status {
		return nil
	}

	if err := s.storage.SetUnitStatus(ctx, unit.ID, status); err != nil {
		return apperrors.FromStorage(err, "unit")
	}

	s.logger.Debugf("unit %s status %s -> %s", unit.ID, unit.Status, status)
	unit.Status = status

	return nil
}
