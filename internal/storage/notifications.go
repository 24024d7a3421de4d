// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/property-service/internal/types"
)

var notificationColumns = []string{"id", "recipient_id", "type", "message", "link", "context_type", "context_id", "is_read", "created_at"}

func scanNotification(row sq.RowScanner) (*types.Notification, error) {
	var (
		n           types.Notification
		contextType *string
		contextID   *string
	)

	err := row.Scan(&n.ID, &n.RecipientID, &n.Type, &n.Message, &n.Link, &contextType, &contextID, &n.IsRead, &n.CreatedAt)
	if err != nil {
		return nil, err
	}

	if contextType != nil && contextID != nil {
		n.Context = &types.CommentContext{Type: types.ContextType(*contextType), ID: *contextID}
	}

	return &n, nil
}

func (s *Storage) CreateNotification(ctx context.Context, n *types.Notification) (*types.Notification, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateNotification")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	var contextType, contextID interface{}
	if n.Context != nil {
		contextType, contextID = n.Context.Type, n.Context.ID
	}

	created, err := scanNotification(
		s.db.Statement(ctx).
			Insert("notifications").
			Columns("id", "recipient_id", "type", "message", "link", "context_type", "context_id").
			Values(id, n.RecipientID, n.Type, n.Message, n.Link, contextType, contextID).
			Suffix("RETURNING "+joinColumns(notificationColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, classify(err, "insert notification")
	}

	return created, nil
}

func (s *Storage) ListNotifications(ctx context.Context, recipientID string, unreadOnly bool, page Page) ([]*types.Notification, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListNotifications")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(notificationColumns...).
		From("notifications").
		Where(sq.Eq{"recipient_id": recipientID}).
		OrderBy("created_at DESC", "id DESC")

	if unreadOnly {
		query = query.Where(sq.Eq{"is_read": false})
	}

	rows, err := page.apply(query).QueryContext(ctx)
	if err != nil {
		return nil, classify(err, "list notifications")
	}
	defer rows.Close()

	notifications := make([]*types.Notification, 0)
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, classify(err, "scan notification")
		}
		notifications = append(notifications, n)
	}

	if err := rows.Err(); err != nil {
		return nil, classify(err, "iterate notification rows")
	}

	return notifications, nil
}

// MarkNotificationsRead flags the recipient's notifications among ids as
// read, or all of them when ids is empty.
func (s *Storage) MarkNotificationsRead(ctx context.Context, recipientID string, ids []string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.MarkNotificationsRead")
	defer span.End()

	where := sq.Eq{"recipient_id": recipientID, "is_read": false}
	if len(ids) > 0 {
		where["id"] = ids
	}

	res, err := s.db.Statement(ctx).
		Update("notifications").
		Set("is_read", true).
		Where(where).
		ExecContext(ctx)
	if err != nil {
		return 0, classify(err, "mark notifications read")
	}

	return rowsAffected(res)
}
