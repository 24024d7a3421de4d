// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package rent

import (
	"context"
	"time"

	"github.com/canonical/property-service/internal/apperrors"
	"github.com/canonical/property-service/internal/authorization"
	"github.com/canonical/property-service/internal/storage"
	"github.com/canonical/property-service/internal/types"
)

// ScheduleUpdate carries the mutable fields of a schedule, nil fields are
// left untouched. ClearEffectiveEnd reopens the schedule.
type ScheduleUpdate struct {
	Amount            *float64
	Currency          *string
	DueDateDay        *int
	EffectiveEnd      *time.Time
	ClearEffectiveEnd bool
	AutoGenerate      *bool
	IsActive          *bool
}

func validateSchedule(rs *types.RentSchedule) error {
	switch {
	case rs.Amount <= 0:
		return apperrors.Validation("schedule amount must be positive")
	case rs.DueDateDay < 1 || rs.DueDateDay > 31:
		return apperrors.Validation("due date day must be between 1 and 31")
	case !rs.BillingFrequency.Valid():
		return apperrors.Validation("invalid billing frequency %q", rs.BillingFrequency)
	case rs.EffectiveStart.IsZero():
		return apperrors.Validation("effective start is required")
	case rs.EffectiveEnd != nil && rs.EffectiveEnd.Before(rs.EffectiveStart):
		return apperrors.Validation("effective end cannot precede effective start")
	}
	return nil
}

// CreateSchedule adds a schedule to a lease. Active schedules of the same
// lease cannot overlap.
func (s *Service) CreateSchedule(ctx context.Context, p authorization.Principal, in *types.RentSchedule) (*types.RentSchedule, error) {
	ctx, span := s.tracer.Start(ctx, "rent.Service.CreateSchedule")
	defer span.End()

	if in.BillingFrequency == "" {
		in.BillingFrequency = types.BillingMonthly
	}
	in.EffectiveStart = types.StartOfDay(in.EffectiveStart)
	if in.EffectiveEnd != nil {
		end := types.StartOfDay(*in.EffectiveEnd)
		in.EffectiveEnd = &end
	}
	in.Amount = roundCents(in.Amount)

	if err := validateSchedule(in); err != nil {
		return nil, err
	}

	lease, err := s.storage.GetLease(ctx, in.LeaseID)
	if err != nil {
		return nil, apperrors.FromStorage(err, "lease")
	}

	if !s.authz.CanManageProperty(ctx, p, lease.PropertyID) {
		return nil, apperrors.Forbidden("not allowed to manage rent schedules on property %s", lease.PropertyID)
	}

	var created *types.RentSchedule
	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		// the lease row serializes schedule changes of the lease
		lease, err := s.storage.GetLeaseForUpdate(ctx, in.LeaseID)
		if err != nil {
			return apperrors.FromStorage(err, "lease")
		}

		if err := s.checkOverlap(ctx, lease.ID, "", in.EffectiveStart, in.EffectiveEnd); err != nil {
			return err
		}

		currency := in.Currency
		if currency == "" {
			currency = lease.Currency
		}

		created, err = s.storage.CreateRentSchedule(ctx, &types.RentSchedule{
			LeaseID:          lease.ID,
			Amount:           in.Amount,
			Currency:         currency,
			DueDateDay:       in.DueDateDay,
			BillingFrequency: in.BillingFrequency,
			EffectiveStart:   in.EffectiveStart,
			EffectiveEnd:     in.EffectiveEnd,
			AutoGenerate:     in.AutoGenerate,
			IsActive:         true,
			CreatedBy:        p.ID,
		})
		if err != nil {
			return apperrors.FromStorage(err, "rent schedule")
		}

		s.auditor.Record(ctx, p.ID, "rent_schedule.create", "rent_schedule", created.ID, map[string]interface{}{
			"lease_id": lease.ID,
			"amount":   created.Amount,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *Service) UpdateSchedule(ctx context.Context, p authorization.Principal, id string, in *ScheduleUpdate) (*types.RentSchedule, error) {
	ctx, span := s.tracer.Start(ctx, "rent.Service.UpdateSchedule")
	defer span.End()

	current, err := s.storage.GetRentSchedule(ctx, id)
	if err != nil {
		return nil, apperrors.FromStorage(err, "rent schedule")
	}

	lease, err := s.storage.GetLease(ctx, current.LeaseID)
	if err != nil {
		return nil, apperrors.FromStorage(err, "lease")
	}

	if !s.authz.CanManageProperty(ctx, p, lease.PropertyID) {
		return nil, apperrors.Forbidden("not allowed to manage rent schedules on property %s", lease.PropertyID)
	}

	var updated *types.RentSchedule
	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		if _, err := s.storage.GetLeaseForUpdate(ctx, lease.ID); err != nil {
			return apperrors.FromStorage(err, "lease")
		}

		rs, err := s.storage.GetRentSchedule(ctx, id)
		if err != nil {
			return apperrors.FromStorage(err, "rent schedule")
		}

		if in.Amount != nil {
			rs.Amount = roundCents(*in.Amount)
		}
		if in.Currency != nil {
			rs.Currency = *in.Currency
		}
		if in.DueDateDay != nil {
			rs.DueDateDay = *in.DueDateDay
		}
		if in.ClearEffectiveEnd {
			rs.EffectiveEnd = nil
		} else if in.EffectiveEnd != nil {
			end := types.StartOfDay(*in.EffectiveEnd)
			rs.EffectiveEnd = &end
		}
		if in.AutoGenerate != nil {
			rs.AutoGenerate = *in.AutoGenerate
		}
		if in.IsActive != nil {
			rs.IsActive = *in.IsActive
		}

		if err := validateSchedule(rs); err != nil {
			return err
		}

		if rs.IsActive {
			if err := s.checkOverlap(ctx, rs.LeaseID, rs.ID, rs.EffectiveStart, rs.EffectiveEnd); err != nil {
				return err
			}
		}

		updated, err = s.storage.UpdateRentSchedule(ctx, rs)
		if err != nil {
			return apperrors.FromStorage(err, "rent schedule")
		}

		s.auditor.Record(ctx, p.ID, "rent_schedule.update", "rent_schedule", id, map[string]interface{}{
			"amount":    updated.Amount,
			"is_active": updated.IsActive,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// ListSchedules is open to the managers of the property and the tenant of
// the lease.
func (s *Service) ListSchedules(ctx context.Context, p authorization.Principal, leaseID string) ([]*types.RentSchedule, error) {
	ctx, span := s.tracer.Start(ctx, "rent.Service.ListSchedules")
	defer span.End()

	lease, err := s.storage.GetLease(ctx, leaseID)
	if err != nil {
		return nil, apperrors.FromStorage(err, "lease")
	}

	if p.ID == "" || (p.ID != lease.TenantID && !s.authz.CanManageProperty(ctx, p, lease.PropertyID)) {
		return nil, apperrors.Forbidden("not allowed to view rent schedules of lease %s", leaseID)
	}

	schedules, err := s.storage.ListRentSchedules(ctx, storage.ScheduleFilter{LeaseID: leaseID})
	if err != nil {
		return nil, apperrors.FromStorage(err, "rent schedules")
	}

	return schedules, nil
}

func (s *Service) checkOverlap(ctx context.Context, leaseID, skipID string, start time.Time, end *time.Time) error {
	existing, err := s.storage.ListRentSchedules(ctx, storage.ScheduleFilter{LeaseID: leaseID, ActiveOnly: true})
	if err != nil {
		return apperrors.FromStorage(err, "rent schedules")
	}

	for _, rs := range existing {
		if rs.ID == skipID || !rs.Overlaps(start, end) {
			continue
		}
		return apperrors.Conflict("schedule overlaps active schedule %s", rs.ID).
			WithDetails(map[string]interface{}{"schedule_id": rs.ID})
	}

	return nil
}
