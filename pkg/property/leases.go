// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package property

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/canonical/property-service/internal/apperrors"
	"github.com/canonical/property-service/internal/authorization"
	"github.com/canonical/property-service/internal/notification"
	"github.com/canonical/property-service/internal/storage"
	"github.com/canonical/property-service/internal/types"
)

const defaultCurrency = "USD"

func validateLease(in *types.Lease) error {
	switch {
	case in.UnitID == "":
		return apperrors.Validation("unit id is required")
	case in.TenantID == "":
		return apperrors.Validation("tenant id is required")
	case in.StartDate.IsZero() || in.EndDate.IsZero():
		return apperrors.Validation("start and end dates are required")
	case !in.EndDate.After(in.StartDate):
		return apperrors.Validation("lease end date must be after its start date")
	case in.MonthlyRent <= 0:
		return apperrors.Validation("monthly rent must be positive")
	}

	switch in.Status {
	case "":
		in.Status = types.LeaseActive
	case types.LeaseActive, types.LeasePending:
	default:
		return apperrors.Validation("a new lease must be active or pending")
	}

	if in.Currency == "" {
		in.Currency = defaultCurrency
	}

	return nil
}

// CreateLease binds a tenant to a unit. The tenant must already hold an active
// tenant association on the unit and the unit cannot have another active
// lease.
func (s *Service) CreateLease(ctx context.Context, p authorization.Principal, in *types.Lease) (*types.Lease, error) {
	ctx, span := s.tracer.Start(ctx, "property.Service.CreateLease")
	defer span.End()

	if err := validateLease(in); err != nil {
		return nil, err
	}

	unit, err := s.storage.GetUnit(ctx, in.UnitID)
	if err != nil {
		return nil, apperrors.FromStorage(err, "unit")
	}

	if !s.authz.CanManageProperty(ctx, p, unit.PropertyID) {
		return nil, apperrors.Forbidden("not allowed to create leases on property %s", unit.PropertyID)
	}

	var created *types.Lease
	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		unit, err := s.lockPropertyUnit(ctx, unit.PropertyID, in.UnitID)
		if err != nil {
			return err
		}

		associated, err := s.storage.ExistsAssociation(ctx, storage.AssociationFilter{
			UserID:     in.TenantID,
			PropertyID: unit.PropertyID,
			UnitID:     &unit.ID,
			Roles:      types.NewRoleSet(types.AssocTenant),
			ActiveOnly: true,
		})
		if err != nil {
			return apperrors.FromStorage(err, "property association")
		}
		if !associated {
			return apperrors.Validation("user %s is not an active tenant of unit %s", in.TenantID, unit.UnitName)
		}

		if in.Status == types.LeaseActive {
			active, err := s.storage.CountLeases(ctx, storage.LeaseFilter{UnitID: unit.ID, Status: types.LeaseActive})
			if err != nil {
				return apperrors.FromStorage(err, "leases")
			}
			if active > 0 {
				return apperrors.Conflict("unit %s already has an active lease", unit.UnitName)
			}
		}

		created, err = s.storage.CreateLease(ctx, &types.Lease{
			PropertyID:  unit.PropertyID,
			UnitID:      unit.ID,
			TenantID:    in.TenantID,
			StartDate:   types.StartOfDay(in.StartDate),
			EndDate:     types.StartOfDay(in.EndDate),
			MonthlyRent: in.MonthlyRent,
			Currency:    in.Currency,
			Status:      in.Status,
			CreatedBy:   p.ID,
		})
		if errors.Is(err, storage.ErrDuplicateKey) {
			return apperrors.Conflict("unit %s already has an active lease", unit.UnitName)
		}
		if err != nil {
			return apperrors.FromStorage(err, "lease")
		}

		if err := s.syncUnitStatus(ctx, unit); err != nil {
			return err
		}

		s.notifier.Notify(ctx, notification.Payload{
			RecipientID: in.TenantID,
			Type:        notification.TypeLease,
			Message:     fmt.Sprintf("A lease for unit %s has been created", unit.UnitName),
			Path:        "/leases/" + created.ID,
			Context:     contextOf(types.LeaseContext(created.ID)),
		})
		s.auditor.Record(ctx, p.ID, "lease.create", "lease", created.ID, map[string]interface{}{
			"unit_id":   unit.ID,
			"tenant_id": in.TenantID,
			"status":    string(created.Status),
		})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// TerminateLease ends an active or pending lease, deactivates its rent
// schedules and vacates the unit when nothing else occupies it.
func (s *Service) TerminateLease(ctx context.Context, p authorization.Principal, leaseID string) (*types.Lease, error) {
	ctx, span := s.tracer.Start(ctx, "property.Service.TerminateLease")
	defer span.End()

	lease, err := s.storage.GetLease(ctx, leaseID)
	if err != nil {
		return nil, apperrors.FromStorage(err, "lease")
	}

	if !s.authz.CanManageProperty(ctx, p, lease.PropertyID) {
		return nil, apperrors.Forbidden("not allowed to terminate leases on property %s", lease.PropertyID)
	}

	var terminated *types.Lease
	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		unit, err := s.storage.GetUnitForUpdate(ctx, lease.UnitID)
		if err != nil {
			return apperrors.FromStorage(err, "unit")
		}

		current, err := s.storage.GetLeaseForUpdate(ctx, leaseID)
		if err != nil {
			return apperrors.FromStorage(err, "lease")
		}
		if current.Status != types.LeaseActive && current.Status != types.LeasePending {
			return apperrors.Conflict("lease is already %s", current.Status)
		}

		if terminated, err = s.closeLease(ctx, current, unit, types.LeaseTerminated); err != nil {
			return err
		}

		s.notifier.Notify(ctx, notification.Payload{
			RecipientID: lease.TenantID,
			Type:        notification.TypeLease,
			Message:     fmt.Sprintf("Your lease for unit %s has been terminated", unit.UnitName),
			Path:        "/leases/" + leaseID,
			Context:     contextOf(types.LeaseContext(leaseID)),
		})
		s.auditor.Record(ctx, p.ID, "lease.terminate", "lease", leaseID, nil)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return terminated, nil
}

// ExpireLeases moves active leases whose end date has passed to expired. It
// runs as a maintenance sweep and returns the number of leases expired.
func (s *Service) ExpireLeases(ctx context.Context, now time.Time) (int, error) {
	ctx, span := s.tracer.Start(ctx, "property.Service.ExpireLeases")
	defer span.End()

	var expired []*types.Lease
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		asOf := types.StartOfDay(now)

		locked, err := s.storage.LockUnitsWithExpiringLeases(ctx, asOf)
		if err != nil {
			return apperrors.FromStorage(err, "units")
		}
		units := make(map[string]*types.Unit, len(locked))
		for _, u := range locked {
			units[u.ID] = u
		}

		expired, err = s.storage.ExpireLeases(ctx, asOf)
		if err != nil {
			return apperrors.FromStorage(err, "leases")
		}

		for _, l := range expired {
			if _, err := s.storage.DeactivateLeaseSchedules(ctx, l.ID); err != nil {
				return apperrors.FromStorage(err, "rent schedules")
			}
			s.auditor.Record(ctx, authorization.SystemPrincipal.ID, "lease.expire", "lease", l.ID, nil)
		}

		for _, u := range locked {
			if err := s.syncUnitStatus(ctx, u); err != nil {
				return err
			}
		}

		// a lease activated after the units were locked
		for _, l := range expired {
			if _, ok := units[l.UnitID]; ok {
				continue
			}
			unit, err := s.storage.GetUnitForUpdate(ctx, l.UnitID)
			if err != nil {
				return apperrors.FromStorage(err, "unit")
			}
			units[unit.ID] = unit
			if err := s.syncUnitStatus(ctx, unit); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	if len(expired) > 0 {
		s.logger.Infof("expired %d leases", len(expired))
	}
	if merr := s.monitor.IncOperationCounter(map[string]string{"operation": "lease.expire", "outcome": "ok"}); merr != nil {
		s.logger.Debugf("failed to record lease expiry: %v", merr)
	}

	return len(expired), nil
}

func (s *Service) closeLease(ctx context.Context, lease *types.Lease, unit *types.Unit, status types.LeaseStatus) (*types.Lease, error) {
	closed, err := s.storage.SetLeaseStatus(ctx, lease.ID, status)
	if err != nil {
		return nil, apperrors.FromStorage(err, "lease")
	}

	if _, err := s.storage.DeactivateLeaseSchedules(ctx, lease.ID); err != nil {
		return nil, apperrors.FromStorage(err, "rent schedules")
	}

	if err := s.syncUnitStatus(ctx, unit); err != nil {
		return nil, err
	}

	return closed, nil
}
