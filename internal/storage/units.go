// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/property-service/internal/types"
)

var unitColumns = []string{"id", "property_id", "unit_name", "status", "maintenance_flag", "created_at", "updated_at"}

func scanUnit(row sq.RowScanner) (*types.Unit, error) {
	var u types.Unit
	if err := row.Scan(&u.ID, &u.PropertyID, &u.UnitName, &u.Status, &u.MaintenanceFlag, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Storage) CreateUnit(ctx context.Context, u *types.Unit) (*types.Unit, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateUnit")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	created, err := scanUnit(
		s.db.Statement(ctx).
			Insert("units").
			Columns("id", "property_id", "unit_name", "status", "maintenance_flag").
			Values(id, u.PropertyID, u.UnitName, u.Status, u.MaintenanceFlag).
			Suffix("RETURNING "+joinColumns(unitColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, classify(err, "insert unit")
	}

	return created, nil
}

func (s *Storage) GetUnit(ctx context.Context, id string) (*types.Unit, error) {
	return s.getUnit(ctx, id, false)
}

// GetUnitForUpdate locks the unit row until the ambient transaction ends,
// serializing occupancy changes on the unit.
func (s *Storage) GetUnitForUpdate(ctx context.Context, id string) (*types.Unit, error) {
	return s.getUnit(ctx, id, true)
}

func (s *Storage) getUnit(ctx context.Context, id string, lock bool) (*types.Unit, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUnit")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(unitColumns...).
		From("units").
		Where(sq.Eq{"id": id})

	if lock {
		query = query.Suffix("FOR UPDATE")
	}

	u, err := scanUnit(query.QueryRowContext(ctx))
	if err != nil {
		return nil, classify(err, "get unit")
	}

	return u, nil
}

// LockUnitsWithExpiringLeases locks, in id order, every unit holding an active
// lease that ended before asOf. Units are locked ahead of their leases, the
// same order lease termination uses.
func (s *Storage) LockUnitsWithExpiringLeases(ctx context.Context, asOf time.Time) ([]*types.Unit, error) {
	ctx, span := s.tracer.Start(ctx, "storage.LockUnitsWithExpiringLeases")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(unitColumns...).
		From("units").
		Where(sq.Expr("id IN (SELECT unit_id FROM leases WHERE status = ? AND end_date < ?)", types.LeaseActive, asOf)).
		OrderBy("id").
		Suffix("FOR UPDATE").
		QueryContext(ctx)
	if err != nil {
		return nil, classify(err, "lock units with expiring leases")
	}
	defer rows.Close()

	units := make([]*types.Unit, 0)
	for rows.Next() {
		u, err := scanUnit(rows)
		if err != nil {
			return nil, classify(err, "scan unit")
		}
		units = append(units, u)
	}

	if err := rows.Err(); err != nil {
		return nil, classify(err, "iterate unit rows")
	}

	return units, nil
}

func (s *Storage) ListUnits(ctx context.Context, propertyID string) ([]*types.Unit, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListUnits")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(unitColumns...).
		From("units").
		Where(sq.Eq{"property_id": propertyID}).
		OrderBy("unit_name").
		QueryContext(ctx)
	if err != nil {
		return nil, classify(err, "list units")
	}
	defer rows.Close()

	units := make([]*types.Unit, 0)
	for rows.Next() {
		u, err := scanUnit(rows)
		if err != nil {
			return nil, classify(err, "scan unit")
		}
		units = append(units, u)
	}

	if err := rows.Err(); err != nil {
		return nil, classify(err, "iterate unit rows")
	}

	return units, nil
}

func (s *Storage) SetUnitStatus(ctx context.Context, id string, status types.UnitStatus) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetUnitStatus")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("units").
		Set("status", status).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	return expectOne(res, err, "set unit status")
}

func (s *Storage) SetUnitMaintenanceFlag(ctx context.Context, id string, flag types.UnitStatus) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetUnitMaintenanceFlag")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("units").
		Set("maintenance_flag", flag).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	return expectOne(res, err, "set unit maintenance flag")
}
