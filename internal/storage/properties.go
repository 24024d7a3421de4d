// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/property-service/internal/types"
)

var propertyColumns = []string{
	"id", "name", "address", "type", "created_by", "is_active", "main_contact_user_id", "created_at", "updated_at",
}

func scanProperty(row sq.RowScanner) (*types.Property, error) {
	var p types.Property
	err := row.Scan(
		&p.ID, &p.Name, &p.Address, &p.Type, &p.CreatedBy, &p.IsActive, &p.MainContactUserID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Storage) CreateProperty(ctx context.Context, p *types.Property) (*types.Property, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateProperty")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	created, err := scanProperty(
		s.db.Statement(ctx).
			Insert("properties").
			Columns("id", "name", "address", "type", "created_by", "is_active", "main_contact_user_id").
			Values(id, p.Name, p.Address, p.Type, p.CreatedBy, p.IsActive, p.MainContactUserID).
			Suffix("RETURNING "+joinColumns(propertyColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, classify(err, "insert property")
	}

	return created, nil
}

func (s *Storage) GetProperty(ctx context.Context, id string) (*types.Property, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetProperty")
	defer span.End()

	p, err := scanProperty(
		s.db.Statement(ctx).
			Select(propertyColumns...).
			From("properties").
			Where(sq.Eq{"id": id}).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, classify(err, "get property")
	}

	return p, nil
}

// ListProperties returns the properties userID holds an active association
// on, or every property when userID is empty.
func (s *Storage) ListProperties(ctx context.Context, userID string, page Page) ([]*types.Property, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListProperties")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(prefixColumns("p", propertyColumns)...).
		From("properties p").
		OrderBy("p.created_at DESC", "p.id")

	if userID != "" {
		query = query.Where(
			sq.Expr(
				"EXISTS (SELECT 1 FROM property_users pu WHERE pu.property_id = p.id AND pu.user_id = ? AND pu.is_active)",
				userID,
			),
		)
	}

	rows, err := page.apply(query).QueryContext(ctx)
	if err != nil {
		return nil, classify(err, "list properties")
	}
	defer rows.Close()

	properties := make([]*types.Property, 0)
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, classify(err, "scan property")
		}
		properties = append(properties, p)
	}

	if err := rows.Err(); err != nil {
		return nil, classify(err, "iterate property rows")
	}

	return properties, nil
}

// UpdateProperty writes the mutable fields, created_by is never updated.
func (s *Storage) UpdateProperty(ctx context.Context, p *types.Property) (*types.Property, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateProperty")
	defer span.End()

	updated, err := scanProperty(
		s.db.Statement(ctx).
			Update("properties").
			SetMap(map[string]interface{}{
				"name":                 p.Name,
				"address":              p.Address,
				"type":                 p.Type,
				"is_active":            p.IsActive,
				"main_contact_user_id": p.MainContactUserID,
				"updated_at":           sq.Expr("now()"),
			}).
			Where(sq.Eq{"id": p.ID}).
			Suffix("RETURNING "+joinColumns(propertyColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, classify(err, "update property")
	}

	return updated, nil
}
