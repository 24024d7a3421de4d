// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package rent

import (
	"context"
	"time"

	"github.com/canonical/property-service/internal/apperrors"
	"github.com/canonical/property-service/internal/authorization"
	"github.com/canonical/property-service/internal/types"
)

const (
	GenerationGenerated = "generated"
	GenerationSkipped   = "skipped"
	GenerationFailed    = "failed"

	reasonLeaseNotActive  = "lease not active"
	reasonNotBillingMonth = "not a billing month"
	reasonAlreadyExists   = "already exists"
)

type GenerationDetail struct {
	ScheduleID string `json:"schedule_id"`
	LeaseID    string `json:"lease_id"`
	RentID     string `json:"rent_id,omitempty"`
	Status     string `json:"status"`
	Reason     string `json:"reason,omitempty"`
}

type GenerationSummary struct {
	BillingPeriod string             `json:"billing_period"`
	Generated     int                `json:"generated"`
	Skipped       int                `json:"skipped"`
	Failed        int                `json:"failed"`
	Details       []GenerationDetail `json:"details"`
}

func (g *GenerationSummary) add(d GenerationDetail) {
	switch d.Status {
	case GenerationGenerated:
		g.Generated++
	case GenerationSkipped:
		g.Skipped++
	case GenerationFailed:
		g.Failed++
	}
	g.Details = append(g.Details, d)
}

// GenerateRentRecords materializes the rents of the billing period containing
// forDate from every auto generating schedule covering it. Each schedule is
// handled in its own transaction so one failure never aborts the batch.
// Admins generate for every property, landlords and property managers for
// the properties they manage.
func (s *Service) GenerateRentRecords(ctx context.Context, p authorization.Principal, forDate time.Time, force bool) (*GenerationSummary, error) {
	ctx, span := s.tracer.Start(ctx, "rent.Service.GenerateRentRecords")
	defer span.End()

	var scope map[string]bool
	switch p.Role {
	case types.RoleAdmin:
	case types.RoleLandlord, types.RolePropertyManager:
		ids, err := s.authz.ManagedPropertyIDs(ctx, p)
		if err != nil {
			return nil, apperrors.Internal("failed to resolve managed properties", err)
		}
		scope = make(map[string]bool, len(ids))
		for _, id := range ids {
			scope[id] = true
		}
	default:
		s.logger.Security().AuthzFailureWithAction(p.ID, "generate", "rent")
		return nil, apperrors.Forbidden("role %s may not generate rent", p.Role)
	}

	day := types.StartOfDay(forDate)
	summary := &GenerationSummary{
		BillingPeriod: types.BillingPeriodOf(day),
		Details:       make([]GenerationDetail, 0),
	}

	schedules, err := s.storage.ListDueSchedules(ctx, day)
	if err != nil {
		return nil, apperrors.FromStorage(err, "rent schedules")
	}

	for _, rs := range schedules {
		lease, err := s.storage.GetLease(ctx, rs.LeaseID)
		if err != nil {
			summary.add(GenerationDetail{ScheduleID: rs.ID, LeaseID: rs.LeaseID, Status: GenerationFailed, Reason: apperrors.FromStorage(err, "lease").Error()})
			continue
		}

		if scope != nil && !scope[lease.PropertyID] {
			continue
		}

		d := s.generateOne(ctx, p, rs, day, summary.BillingPeriod, force)
		summary.add(d)

		if merr := s.monitor.IncOperationCounter(map[string]string{"operation": "rent.generate", "outcome": d.Status}); merr != nil {
			s.logger.Debugf("failed to record rent generation: %v", merr)
		}
	}

	s.logger.Infof(
		"rent generation for %s: %d generated, %d skipped, %d failed",
		summary.BillingPeriod, summary.Generated, summary.Skipped, summary.Failed,
	)

	return summary, nil
}

func (s *Service) generateOne(ctx context.Context, p authorization.Principal, rs *types.RentSchedule, day time.Time, period string, force bool) GenerationDetail {
	detail := GenerationDetail{ScheduleID: rs.ID, LeaseID: rs.LeaseID}

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		lease, err := s.storage.GetLeaseForUpdate(ctx, rs.LeaseID)
		if err != nil {
			return apperrors.FromStorage(err, "lease")
		}

		if lease.Status != types.LeaseActive {
			detail.Status, detail.Reason = GenerationSkipped, reasonLeaseNotActive
			return nil
		}
		if !rs.BillingFrequency.IsBillingMonth(rs.EffectiveStart, day) {
			detail.Status, detail.Reason = GenerationSkipped, reasonNotBillingMonth
			return nil
		}

		exists, err := s.storage.RentExists(ctx, lease.ID, period)
		if err != nil {
			return apperrors.FromStorage(err, "rent")
		}
		if exists && !force {
			detail.Status, detail.Reason = GenerationSkipped, reasonAlreadyExists
			return nil
		}

		r, err := s.storage.UpsertRent(ctx, &types.Rent{
			LeaseID:       lease.ID,
			TenantID:      lease.TenantID,
			PropertyID:    lease.PropertyID,
			UnitID:        lease.UnitID,
			BillingPeriod: period,
			AmountDue:     rs.Amount,
			Currency:      rs.Currency,
			DueDate:       types.DueDateFor(day, rs.DueDateDay),
			Status:        types.RentDue,
			CreatedBy:     p.ID,
		})
		if err != nil {
			return apperrors.FromStorage(err, "rent")
		}

		if err := s.storage.MarkScheduleGenerated(ctx, rs.ID, s.now()); err != nil {
			return apperrors.FromStorage(err, "rent schedule")
		}

		s.notifyRent(ctx, r)
		s.auditor.Record(ctx, p.ID, "rent.generate", "rent", r.ID, map[string]interface{}{
			"schedule_id":    rs.ID,
			"billing_period": period,
			"forced":         exists,
		})

		detail.Status, detail.RentID = GenerationGenerated, r.ID
		return nil
	})
	if err != nil {
		s.logger.Errorf("failed to generate rent for schedule %s: %v", rs.ID, err)
		detail.Status, detail.Reason, detail.RentID = GenerationFailed, err.Error(), ""
	}

	return detail
}
