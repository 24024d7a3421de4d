// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/property-service/internal/types"
)

var mediaColumns = []string{"id", "key", "filename", "content_type", "size", "uploaded_by", "created_at"}

func scanMedia(row sq.RowScanner) (*types.Media, error) {
	var m types.Media
	if err := row.Scan(&m.ID, &m.Key, &m.Filename, &m.ContentType, &m.Size, &m.UploadedBy, &m.CreatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Storage) CreateMedia(ctx context.Context, m *types.Media) (*types.Media, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateMedia")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	created, err := scanMedia(
		s.db.Statement(ctx).
			Insert("media").
			Columns("id", "key", "filename", "content_type", "size", "uploaded_by").
			Values(id, m.Key, m.Filename, m.ContentType, m.Size, m.UploadedBy).
			Suffix("RETURNING "+joinColumns(mediaColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, classify(err, "insert media")
	}

	return created, nil
}

func (s *Storage) GetMedia(ctx context.Context, id string) (*types.Media, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMedia")
	defer span.End()

	m, err := scanMedia(
		s.db.Statement(ctx).
			Select(mediaColumns...).
			From("media").
			Where(sq.Eq{"id": id}).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, classify(err, "get media")
	}

	return m, nil
}

func (s *Storage) DeleteMedia(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteMedia")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("media").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	return expectOne(res, err, "delete media")
}
