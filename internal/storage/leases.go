// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/property-service/internal/types"
)

var leaseColumns = []string{
	"id", "property_id", "unit_id", "tenant_id", "start_date", "end_date", "monthly_rent", "currency", "status", "created_by", "created_at", "updated_at",
}

type LeaseFilter struct {
	PropertyID string
	UnitID     string
	TenantID   string
	Status     types.LeaseStatus
}

func (f LeaseFilter) apply(q sq.SelectBuilder) sq.SelectBuilder {
	if f.PropertyID != "" {
		q = q.Where(sq.Eq{"property_id": f.PropertyID})
	}
	if f.UnitID != "" {
		q = q.Where(sq.Eq{"unit_id": f.UnitID})
	}
	if f.TenantID != "" {
		q = q.Where(sq.Eq{"tenant_id": f.TenantID})
	}
	if f.Status != "" {
		q = q.Where(sq.Eq{"status": f.Status})
	}
	return q
}

func scanLease(row sq.RowScanner) (*types.Lease, error) {
	var l types.Lease
	err := row.Scan(
		&l.ID, &l.PropertyID, &l.UnitID, &l.TenantID, &l.StartDate, &l.EndDate, &l.MonthlyRent, &l.Currency, &l.Status, &l.CreatedBy, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (s *Storage) CreateLease(ctx context.Context, l *types.Lease) (*types.Lease, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateLease")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	created, err := scanLease(
		s.db.Statement(ctx).
			Insert("leases").
			Columns("id", "property_id", "unit_id", "tenant_id", "start_date", "end_date", "monthly_rent", "currency", "status", "created_by").
			Values(id, l.PropertyID, l.UnitID, l.TenantID, l.StartDate, l.EndDate, l.MonthlyRent, l.Currency, l.Status, l.CreatedBy).
			Suffix("RETURNING "+joinColumns(leaseColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, classify(err, "insert lease")
	}

	return created, nil
}

func (s *Storage) GetLease(ctx context.Context, id string) (*types.Lease, error) {
	return s.getLease(ctx, id, false)
}

// GetLeaseForUpdate locks the lease row until the ambient transaction ends.
func (s *Storage) GetLeaseForUpdate(ctx context.Context, id string) (*types.Lease, error) {
	return s.getLease(ctx, id, true)
}

func (s *Storage) getLease(ctx context.Context, id string, lock bool) (*types.Lease, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetLease")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(leaseColumns...).
		From("leases").
		Where(sq.Eq{"id": id})

	if lock {
		query = query.Suffix("FOR UPDATE")
	}

	l, err := scanLease(query.QueryRowContext(ctx))
	if err != nil {
		return nil, classify(err, "get lease")
	}

	return l, nil
}

func (s *Storage) ListLeases(ctx context.Context, f LeaseFilter) ([]*types.Lease, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListLeases")
	defer span.End()

	rows, err := f.apply(
		s.db.Statement(ctx).
			Select(leaseColumns...).
			From("leases"),
	).
		OrderBy("start_date DESC", "id").
		QueryContext(ctx)
	if err != nil {
		return nil, classify(err, "list leases")
	}

	return collectLeases(rows)
}

func (s *Storage) CountLeases(ctx context.Context, f LeaseFilter) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountLeases")
	defer span.End()

	var count int
	err := f.apply(
		s.db.Statement(ctx).
			Select("count(*)").
			From("leases"),
	).
		QueryRowContext(ctx).
		Scan(&count)
	if err != nil {
		return 0, classify(err, "count leases")
	}

	return count, nil
}

func (s *Storage) SetLeaseStatus(ctx context.Context, id string, status types.LeaseStatus) (*types.Lease, error) {
	ctx, span := s.tracer.Start(ctx, "storage.SetLeaseStatus")
	defer span.End()

	l, err := scanLease(
		s.db.Statement(ctx).
			Update("leases").
			Set("status", status).
			Set("updated_at", sq.Expr("now()")).
			Where(sq.Eq{"id": id}).
			Suffix("RETURNING "+joinColumns(leaseColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, classify(err, "set lease status")
	}

	return l, nil
}

// ExpireLeases moves active leases that ended before asOf to expired and
// returns them.
func (s *Storage) ExpireLeases(ctx context.Context, asOf time.Time) ([]*types.Lease, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ExpireLeases")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Update("leases").
		Set("status", types.LeaseExpired).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"status": types.LeaseActive}).
		Where(sq.Lt{"end_date": asOf}).
		Suffix("RETURNING " + joinColumns(leaseColumns)).
		QueryContext(ctx)
	if err != nil {
		return nil, classify(err, "expire leases")
	}

	return collectLeases(rows)
}

type scannableRows interface {
	sq.RowScanner
	Next() bool
	Err() error
	Close() error
}

func collectLeases(rows scannableRows) ([]*types.Lease, error) {
	defer rows.Close()

	leases := make([]*types.Lease, 0)
	for rows.Next() {
		l, err := scanLease(rows)
		if err != nil {
			return nil, classify(err, "scan lease")
		}
		leases = append(leases, l)
	}

	if err := rows.Err(); err != nil {
		return nil, classify(err, "iterate lease rows")
	}

	return leases, nil
}
