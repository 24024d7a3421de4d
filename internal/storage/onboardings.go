// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/property-service/internal/types"
)

var onboardingColumns = []string{
	"id", "title", "description", "visibility", "property_id", "unit_id", "tenant_id", "media_id", "created_by", "created_at",
}

type OnboardingFilter struct {
	PropertyID string
	// Reachable limits the listing to documents that may be visible to the
	// user: global ones, ones on the listed properties, ones addressed to or
	// created by the user. Nil means unrestricted.
	Reachable *Visibility
	Page      Page
}

func scanOnboarding(row sq.RowScanner) (*types.OnboardingDocument, error) {
	var d types.OnboardingDocument
	err := row.Scan(
		&d.ID, &d.Title, &d.Description, &d.Visibility, &d.PropertyID, &d.UnitID, &d.TenantID, &d.MediaID, &d.CreatedBy, &d.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *Storage) CreateOnboarding(ctx context.Context, d *types.OnboardingDocument) (*types.OnboardingDocument, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateOnboarding")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	created, err := scanOnboarding(
		s.db.Statement(ctx).
			Insert("onboardings").
			Columns("id", "title", "description", "visibility", "property_id", "unit_id", "tenant_id", "media_id", "created_by").
			Values(id, d.Title, d.Description, d.Visibility, d.PropertyID, d.UnitID, d.TenantID, d.MediaID, d.CreatedBy).
			Suffix("RETURNING "+joinColumns(onboardingColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, classify(err, "insert onboarding document")
	}

	return created, nil
}

func (s *Storage) GetOnboarding(ctx context.Context, id string) (*types.OnboardingDocument, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetOnboarding")
	defer span.End()

	d, err := scanOnboarding(
		s.db.Statement(ctx).
			Select(onboardingColumns...).
			From("onboardings").
			Where(sq.Eq{"id": id, "deleted_at": nil}).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, classify(err, "get onboarding document")
	}

	return d, nil
}

func (s *Storage) ListOnboardings(ctx context.Context, f OnboardingFilter) ([]*types.OnboardingDocument, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListOnboardings")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(onboardingColumns...).
		From("onboardings").
		Where(sq.Eq{"deleted_at": nil}).
		OrderBy("created_at DESC", "id")

	if f.PropertyID != "" {
		query = query.Where(sq.Eq{"property_id": f.PropertyID})
	}
	if v := f.Reachable; v != nil {
		or := sq.Or{
			sq.Eq{"visibility": types.VisibilityAllTenants},
			sq.Eq{"tenant_id": v.TenantID},
			sq.Eq{"created_by": v.TenantID},
		}
		if len(v.PropertyIDs) > 0 {
			or = append(or, sq.Eq{"property_id": v.PropertyIDs})
		}
		query = query.Where(or)
	}

	rows, err := f.Page.apply(query).QueryContext(ctx)
	if err != nil {
		return nil, classify(err, "list onboarding documents")
	}
	defer rows.Close()

	docs := make([]*types.OnboardingDocument, 0)
	for rows.Next() {
		d, err := scanOnboarding(rows)
		if err != nil {
			return nil, classify(err, "scan onboarding document")
		}
		docs = append(docs, d)
	}

	if err := rows.Err(); err != nil {
		return nil, classify(err, "iterate onboarding rows")
	}

	return docs, nil
}

func (s *Storage) SoftDeleteOnboarding(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SoftDeleteOnboarding")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("onboardings").
		Set("deleted_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "deleted_at": nil}).
		ExecContext(ctx)

	return expectOne(res, err, "delete onboarding document")
}
