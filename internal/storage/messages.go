// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/property-service/internal/types"
)

var messageColumns = []string{
	"id", "sender_id", "recipient_id", "property_id", "unit_id", "category", "content", "attachments",
	"parent_message_id", "is_read", "read_at", "created_at",
}

type MessageBox string

const (
	Inbox MessageBox = "inbox"
	Sent  MessageBox = "sent"
)

type MessageFilter struct {
	// UserID owns the box being listed
	UserID      string
	Box         MessageBox
	PropertyID  string
	UnitID      string
	OtherUserID string
	Category    string
	UnreadOnly  bool
	Page        Page
}

func (s *Storage) scanMessage(row sq.RowScanner) (*types.Message, error) {
	var m types.Message
	err := row.Scan(
		&m.ID, &m.SenderID, &m.RecipientID, &m.PropertyID, &m.UnitID, &m.Category, &m.Content, s.textArray(&m.Attachments),
		&m.ParentMessageID, &m.IsRead, &m.ReadAt, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if m.Attachments == nil {
		m.Attachments = []string{}
	}
	return &m, nil
}

func (s *Storage) CreateMessage(ctx context.Context, m *types.Message) (*types.Message, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateMessage")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	attachments := m.Attachments
	if attachments == nil {
		attachments = []string{}
	}

	created, err := s.scanMessage(
		s.db.Statement(ctx).
			Insert("messages").
			Columns("id", "sender_id", "recipient_id", "property_id", "unit_id", "category", "content", "attachments", "parent_message_id").
			Values(id, m.SenderID, m.RecipientID, m.PropertyID, m.UnitID, m.Category, m.Content, attachments, m.ParentMessageID).
			Suffix("RETURNING "+joinColumns(messageColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, classify(err, "insert message")
	}

	return created, nil
}

func (s *Storage) GetMessage(ctx context.Context, id string) (*types.Message, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMessage")
	defer span.End()

	m, err := s.scanMessage(
		s.db.Statement(ctx).
			Select(messageColumns...).
			From("messages").
			Where(sq.Eq{"id": id, "deleted_at": nil}).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, classify(err, "get message")
	}

	return m, nil
}

func (s *Storage) ListMessages(ctx context.Context, f MessageFilter) ([]*types.Message, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMessages")
	defer span.End()

	self, other := "recipient_id", "sender_id"
	if f.Box == Sent {
		self, other = "sender_id", "recipient_id"
	}

	query := s.db.Statement(ctx).
		Select(messageColumns...).
		From("messages").
		Where(sq.Eq{self: f.UserID, "deleted_at": nil}).
		OrderBy("created_at DESC", "id DESC")

	if f.OtherUserID != "" {
		query = query.Where(sq.Eq{other: f.OtherUserID})
	}
	if f.PropertyID != "" {
		query = query.Where(sq.Eq{"property_id": f.PropertyID})
	}
	if f.UnitID != "" {
		query = query.Where(sq.Eq{"unit_id": f.UnitID})
	}
	if f.Category != "" {
		query = query.Where(sq.Eq{"category": f.Category})
	}
	if f.UnreadOnly {
		query = query.Where(sq.Eq{"is_read": false})
	}

	rows, err := f.Page.apply(query).QueryContext(ctx)
	if err != nil {
		return nil, classify(err, "list messages")
	}
	defer rows.Close()

	messages := make([]*types.Message, 0)
	for rows.Next() {
		m, err := s.scanMessage(rows)
		if err != nil {
			return nil, classify(err, "scan message")
		}
		messages = append(messages, m)
	}

	if err := rows.Err(); err != nil {
		return nil, classify(err, "iterate message rows")
	}

	return messages, nil
}

// MarkMessagesRead flags the recipient's unread messages among ids as read and
// returns how many changed.
func (s *Storage) MarkMessagesRead(ctx context.Context, recipientID string, ids []string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.MarkMessagesRead")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("messages").
		Set("is_read", true).
		Set("read_at", sq.Expr("now()")).
		Where(sq.Eq{"id": ids, "recipient_id": recipientID, "is_read": false, "deleted_at": nil}).
		ExecContext(ctx)
	if err != nil {
		return 0, classify(err, "mark messages read")
	}

	return rowsAffected(res)
}

func (s *Storage) SoftDeleteMessage(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SoftDeleteMessage")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("messages").
		Set("deleted_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "deleted_at": nil}).
		ExecContext(ctx)

	return expectOne(res, err, "delete message")
}
