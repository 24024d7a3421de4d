// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/property-service/internal/types"
)

var commentColumns = []string{"id", "context_type", "context_id", "author_id", "body", "created_at"}

func scanComment(row sq.RowScanner) (*types.Comment, error) {
	var c types.Comment
	if err := row.Scan(&c.ID, &c.Context.Type, &c.Context.ID, &c.AuthorID, &c.Body, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Storage) CreateComment(ctx context.Context, c *types.Comment) (*types.Comment, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateComment")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	created, err := scanComment(
		s.db.Statement(ctx).
			Insert("comments").
			Columns("id", "context_type", "context_id", "author_id", "body").
			Values(id, c.Context.Type, c.Context.ID, c.AuthorID, c.Body).
			Suffix("RETURNING "+joinColumns(commentColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, classify(err, "insert comment")
	}

	return created, nil
}

func (s *Storage) ListComments(ctx context.Context, target types.CommentContext, page Page) ([]*types.Comment, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListComments")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(commentColumns...).
		From("comments").
		Where(sq.Eq{"context_type": target.Type, "context_id": target.ID}).
		OrderBy("created_at", "id")

	rows, err := page.apply(query).QueryContext(ctx)
	if err != nil {
		return nil, classify(err, "list comments")
	}
	defer rows.Close()

	comments := make([]*types.Comment, 0)
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, classify(err, "scan comment")
		}
		comments = append(comments, c)
	}

	if err := rows.Err(); err != nil {
		return nil, classify(err, "iterate comment rows")
	}

	return comments, nil
}
