// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/property-service/internal/types"
)

var maintenanceColumns = []string{
	"id", "property_id", "unit_id", "title", "assignee_kind", "assignee_id", "scheduled_at", "created_at", "completed_at",
}

func scanMaintenance(row sq.RowScanner) (*types.ScheduledMaintenance, error) {
	var (
		m    types.ScheduledMaintenance
		kind *string
		id   *string
	)

	err := row.Scan(&m.ID, &m.PropertyID, &m.UnitID, &m.Title, &kind, &id, &m.ScheduledAt, &m.CreatedAt, &m.CompletedAt)
	if err != nil {
		return nil, err
	}

	if kind != nil && id != nil {
		m.AssignedTo = &types.Assignee{Kind: types.AssigneeKind(*kind), ID: *id}
	}

	return &m, nil
}

func (s *Storage) CreateScheduledMaintenance(ctx context.Context, m *types.ScheduledMaintenance) (*types.ScheduledMaintenance, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateScheduledMaintenance")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	var kind, assignee interface{}
	if m.AssignedTo != nil {
		kind, assignee = m.AssignedTo.Kind, m.AssignedTo.ID
	}

	created, err := scanMaintenance(
		s.db.Statement(ctx).
			Insert("scheduled_maintenance").
			Columns("id", "property_id", "unit_id", "title", "assignee_kind", "assignee_id", "scheduled_at").
			Values(id, m.PropertyID, m.UnitID, m.Title, kind, assignee, m.ScheduledAt).
			Suffix("RETURNING "+joinColumns(maintenanceColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, classify(err, "insert scheduled maintenance")
	}

	return created, nil
}

func (s *Storage) ListScheduledMaintenance(ctx context.Context, propertyID string) ([]*types.ScheduledMaintenance, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListScheduledMaintenance")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(maintenanceColumns...).
		From("scheduled_maintenance").
		Where(sq.Eq{"property_id": propertyID}).
		OrderBy("scheduled_at", "id").
		QueryContext(ctx)
	if err != nil {
		return nil, classify(err, "list scheduled maintenance")
	}
	defer rows.Close()

	items := make([]*types.ScheduledMaintenance, 0)
	for rows.Next() {
		m, err := scanMaintenance(rows)
		if err != nil {
			return nil, classify(err, "scan scheduled maintenance")
		}
		items = append(items, m)
	}

	if err := rows.Err(); err != nil {
		return nil, classify(err, "iterate scheduled maintenance rows")
	}

	return items, nil
}
