// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/property-service/internal/types"
)

var scheduleColumns = []string{
	"id", "lease_id", "amount", "currency", "due_date_day", "billing_frequency", "effective_start", "effective_end",
	"auto_generate", "is_active", "last_generated_date", "created_by", "created_at", "updated_at",
}

type ScheduleFilter struct {
	LeaseID    string
	ActiveOnly bool
}

func scanSchedule(row sq.RowScanner) (*types.RentSchedule, error) {
	var rs types.RentSchedule
	err := row.Scan(
		&rs.ID, &rs.LeaseID, &rs.Amount, &rs.Currency, &rs.DueDateDay, &rs.BillingFrequency, &rs.EffectiveStart, &rs.EffectiveEnd,
		&rs.AutoGenerate, &rs.IsActive, &rs.LastGeneratedDate, &rs.CreatedBy, &rs.CreatedAt, &rs.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rs, nil
}

func collectSchedules(rows scannableRows) ([]*types.RentSchedule, error) {
	defer rows.Close()

	schedules := make([]*types.RentSchedule, 0)
	for rows.Next() {
		rs, err := scanSchedule(rows)
		if err != nil {
			return nil, classify(err, "scan rent schedule")
		}
		schedules = append(schedules, rs)
	}

	if err := rows.Err(); err != nil {
		return nil, classify(err, "iterate rent schedule rows")
	}

	return schedules, nil
}

func (s *Storage) CreateRentSchedule(ctx context.Context, rs *types.RentSchedule) (*types.RentSchedule, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateRentSchedule")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	created, err := scanSchedule(
		s.db.Statement(ctx).
			Insert("rent_schedules").
			Columns(
				"id", "lease_id", "amount", "currency", "due_date_day", "billing_frequency",
				"effective_start", "effective_end", "auto_generate", "is_active", "created_by",
			).
			Values(
				id, rs.LeaseID, rs.Amount, rs.Currency, rs.DueDateDay, rs.BillingFrequency,
				rs.EffectiveStart, rs.EffectiveEnd, rs.AutoGenerate, rs.IsActive, rs.CreatedBy,
			).
			Suffix("RETURNING "+joinColumns(scheduleColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, classify(err, "insert rent schedule")
	}

	return created, nil
}

func (s *Storage) GetRentSchedule(ctx context.Context, id string) (*types.RentSchedule, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetRentSchedule")
	defer span.End()

	rs, err := scanSchedule(
		s.db.Statement(ctx).
			Select(scheduleColumns...).
			From("rent_schedules").
			Where(sq.Eq{"id": id}).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, classify(err, "get rent schedule")
	}

	return rs, nil
}

func (s *Storage) ListRentSchedules(ctx context.Context, f ScheduleFilter) ([]*types.RentSchedule, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListRentSchedules")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(scheduleColumns...).
		From("rent_schedules").
		OrderBy("effective_start", "id")

	if f.LeaseID != "" {
		query = query.Where(sq.Eq{"lease_id": f.LeaseID})
	}
	if f.ActiveOnly {
		query = query.Where(sq.Eq{"is_active": true})
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, classify(err, "list rent schedules")
	}

	return collectSchedules(rows)
}

// ListDueSchedules returns the active auto generating schedules whose
// effective range covers d.
func (s *Storage) ListDueSchedules(ctx context.Context, d time.Time) ([]*types.RentSchedule, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListDueSchedules")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(scheduleColumns...).
		From("rent_schedules").
		Where(sq.Eq{"is_active": true, "auto_generate": true}).
		Where(sq.LtOrEq{"effective_start": d}).
		Where(sq.Or{sq.Eq{"effective_end": nil}, sq.GtOrEq{"effective_end": d}}).
		OrderBy("lease_id", "effective_start").
		QueryContext(ctx)
	if err != nil {
		return nil, classify(err, "list due rent schedules")
	}

	return collectSchedules(rows)
}

func (s *Storage) UpdateRentSchedule(ctx context.Context, rs *types.RentSchedule) (*types.RentSchedule, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateRentSchedule")
	defer span.End()

	updated, err := scanSchedule(
		s.db.Statement(ctx).
			Update("rent_schedules").
			SetMap(map[string]interface{}{
				"amount":        rs.Amount,
				"currency":      rs.Currency,
				"due_date_day":  rs.DueDateDay,
				"effective_end": rs.EffectiveEnd,
				"auto_generate": rs.AutoGenerate,
				"is_active":     rs.IsActive,
				"updated_at":    sq.Expr("now()"),
			}).
			Where(sq.Eq{"id": rs.ID}).
			Suffix("RETURNING "+joinColumns(scheduleColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, classify(err, "update rent schedule")
	}

	return updated, nil
}

func (s *Storage) MarkScheduleGenerated(ctx context.Context, id string, at time.Time) error {
	ctx, span := s.tracer.Start(ctx, "storage.MarkScheduleGenerated")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("rent_schedules").
		Set("last_generated_date", at).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	return expectOne(res, err, "mark rent schedule generated")
}

// DeactivateLeaseSchedules deactivates every active schedule of the lease.
func (s *Storage) DeactivateLeaseSchedules(ctx context.Context, leaseID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.DeactivateLeaseSchedules")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("rent_schedules").
		Set("is_active", false).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"lease_id": leaseID, "is_active": true}).
		ExecContext(ctx)
	if err != nil {
		return 0, classify(err, "deactivate rent schedules")
	}

	return rowsAffected(res)
}
