// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/property-service/internal/types"
)

const unitsOfProperty = "unit_id IN (SELECT id FROM units WHERE property_id = ?)"

type cascadeStep struct {
	name  string
	table string
	where sq.Sqlizer
}

// propertyScoped matches rows referencing the property directly or through
// one of its units.
func propertyScoped(propertyID string) sq.Sqlizer {
	return sq.Or{
		sq.Eq{"property_id": propertyID},
		sq.Expr(unitsOfProperty, propertyID),
	}
}

func commentsOn(contextType types.ContextType, subquery string, propertyID string) sq.Sqlizer {
	return sq.And{
		sq.Eq{"context_type": contextType},
		sq.Expr("context_id IN ("+subquery+")", propertyID),
	}
}

func cascadeSteps(propertyID string) []cascadeStep {
	return []cascadeStep{
		{"rent_comments", "comments", commentsOn(types.ContextRent, "SELECT id FROM rents WHERE property_id = ?", propertyID)},
		{"rents", "rents", propertyScoped(propertyID)},
		{"lease_comments", "comments", commentsOn(types.ContextLease, "SELECT id FROM leases WHERE property_id = ?", propertyID)},
		{"rent_schedules", "rent_schedules", sq.Expr("lease_id IN (SELECT id FROM leases WHERE property_id = ?)", propertyID)},
		{"leases", "leases", sq.Eq{"property_id": propertyID}},
		{"maintenance_requests", "maintenance_requests", propertyScoped(propertyID)},
		{"scheduled_maintenance", "scheduled_maintenance", propertyScoped(propertyID)},
		{"property_comments", "comments", sq.Eq{"context_type": types.ContextProperty, "context_id": propertyID}},
		{"unit_comments", "comments", commentsOn(types.ContextUnit, "SELECT id FROM units WHERE property_id = ?", propertyID)},
		{"messages", "messages", propertyScoped(propertyID)},
		{"onboardings", "onboardings", propertyScoped(propertyID)},
		{"property_users", "property_users", sq.Eq{"property_id": propertyID}},
		{"units", "units", sq.Eq{"property_id": propertyID}},
	}
}

// DeletePropertyCascade hard deletes the property and every row it owns,
// dependents first. It must run inside a transaction so that a failing step
// leaves nothing behind. The returned map counts deleted rows per step.
func (s *Storage) DeletePropertyCascade(ctx context.Context, propertyID string) (map[string]int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.DeletePropertyCascade")
	defer span.End()

	deleted := make(map[string]int64)

	for _, step := range cascadeSteps(propertyID) {
		res, err := s.db.Statement(ctx).
			Delete(step.table).
			Where(step.where).
			ExecContext(ctx)
		if err != nil {
			return nil, classify(err, "delete "+step.name)
		}

		n, err := rowsAffected(res)
		if err != nil {
			return nil, err
		}
		deleted[step.name] = n
	}

	res, err := s.db.Statement(ctx).
		Delete("properties").
		Where(sq.Eq{"id": propertyID}).
		ExecContext(ctx)
	if err := expectOne(res, err, "delete property"); err != nil {
		return nil, err
	}
	deleted["properties"] = 1

	return deleted, nil
}
