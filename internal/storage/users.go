// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/property-service/internal/types"
)

var userColumns = []string{"id", "email", "name", "role", "created_at"}

func scanUser(row sq.RowScanner) (*types.User, error) {
	var u types.User
	if err := row.Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.CreatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Storage) CreateUser(ctx context.Context, u *types.User) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateUser")
	defer span.End()

	id := u.ID
	if id == "" {
		var err error
		if id, err = newID(); err != nil {
			return nil, err
		}
	}

	created, err := scanUser(
		s.db.Statement(ctx).
			Insert("users").
			Columns("id", "email", "name", "role").
			Values(id, u.Email, u.Name, u.Role).
			Suffix("RETURNING id, email, name, role, created_at").
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, classify(err, "insert user")
	}

	return created, nil
}

func (s *Storage) GetUser(ctx context.Context, id string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUser")
	defer span.End()

	u, err := scanUser(
		s.db.Statement(ctx).
			Select(userColumns...).
			From("users").
			Where(sq.Eq{"id": id}).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, classify(err, "get user")
	}

	return u, nil
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByEmail")
	defer span.End()

	u, err := scanUser(
		s.db.Statement(ctx).
			Select(userColumns...).
			From("users").
			Where("lower(email) = lower(?)", email).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, classify(err, "get user by email")
	}

	return u, nil
}
