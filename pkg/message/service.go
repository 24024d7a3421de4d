// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package message delivers direct messages between users who share a
// property, and exposes the notification inbox.
package message

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/canonical/property-service/internal/apperrors"
	"github.com/canonical/property-service/internal/authorization"
	"github.com/canonical/property-service/internal/logging"
	"github.com/canonical/property-service/internal/monitoring"
	"github.com/canonical/property-service/internal/notification"
	"github.com/canonical/property-service/internal/storage"
	"github.com/canonical/property-service/internal/tracing"
	"github.com/canonical/property-service/internal/types"
)

const (
	defaultCategory  = "general"
	maxContentLength = 5000
	maxAttachments   = 10
	previewLength    = 80
)

type MessageInput struct {
	RecipientID     string
	Content         string
	PropertyID      *string
	UnitID          *string
	Category        string
	Attachments     []string
	ParentMessageID *string
}

type MessageQuery struct {
	Box         storage.MessageBox
	PropertyID  string
	UnitID      string
	OtherUserID string
	Category    string
	UnreadOnly  bool
	Page        storage.Page
}

type Service struct {
	storage  StorageInterface
	authz    AuthorizerInterface
	tx       TxManagerInterface
	notifier NotifierInterface
	auditor  AuditorInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) SendMessage(ctx context.Context, p authorization.Principal, in *MessageInput) (*types.Message, error) {
	ctx, span := s.tracer.Start(ctx, "message.Service.SendMessage")
	defer span.End()

	content := strings.TrimSpace(in.Content)
	switch {
	case content == "":
		return nil, apperrors.Validation("message content is required")
	case utf8.RuneCountInString(content) > maxContentLength:
		return nil, apperrors.Validation("message content exceeds %d characters", maxContentLength)
	case in.RecipientID == "":
		return nil, apperrors.Validation("recipient is required")
	case in.RecipientID == p.ID:
		return nil, apperrors.Validation("cannot send a message to yourself")
	case len(in.Attachments) > maxAttachments:
		return nil, apperrors.Validation("at most %d attachments are allowed", maxAttachments)
	}

	if _, err := s.storage.GetUser(ctx, in.RecipientID); err != nil {
		return nil, apperrors.FromStorage(err, "recipient")
	}

	if in.UnitID != nil {
		unit, err := s.storage.GetUnit(ctx, *in.UnitID)
		if err != nil {
			return nil, apperrors.FromStorage(err, "unit")
		}
		if in.PropertyID != nil && *in.PropertyID != unit.PropertyID {
			return nil, apperrors.Validation("unit %s does not belong to property %s", unit.ID, *in.PropertyID)
		}
	}

	if in.ParentMessageID != nil {
		parent, err := s.storage.GetMessage(ctx, *in.ParentMessageID)
		if err != nil {
			return nil, apperrors.FromStorage(err, "parent message")
		}
		if !between(parent, p.ID, in.RecipientID) {
			return nil, apperrors.Validation("parent message belongs to another conversation")
		}
	}

	// only the sender's own uploads can be attached
	for _, id := range in.Attachments {
		media, err := s.storage.GetMedia(ctx, id)
		if err != nil {
			return nil, apperrors.FromStorage(err, "attachment")
		}
		if media.UploadedBy != p.ID {
			s.logger.Security().AuthzFailureWithAction(p.ID, "attach", "media:"+id)
			return nil, apperrors.Forbidden("not allowed to attach media %s", id)
		}
	}

	if !s.authz.CanMessage(ctx, p, in.RecipientID, in.PropertyID, in.UnitID) {
		s.logger.Security().AuthzFailureWithAction(p.ID, "message", "user:"+in.RecipientID)
		return nil, apperrors.Forbidden("not allowed to message user %s", in.RecipientID)
	}

	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = defaultCategory
	}

	attachments := in.Attachments
	if attachments == nil {
		attachments = []string{}
	}

	var created *types.Message
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		var err error

		created, err = s.storage.CreateMessage(ctx, &types.Message{
			SenderID:        p.ID,
			RecipientID:     in.RecipientID,
			PropertyID:      in.PropertyID,
			UnitID:          in.UnitID,
			Category:        category,
			Content:         content,
			Attachments:     attachments,
			ParentMessageID: in.ParentMessageID,
		})
		if err != nil {
			return apperrors.FromStorage(err, "message")
		}

		s.notifier.Notify(ctx, notification.Payload{
			RecipientID: in.RecipientID,
			Type:        notification.TypeMessage,
			Message:     fmt.Sprintf("New message: %s", preview(content)),
			Path:        "/messages/" + created.ID,
			Context:     &types.CommentContext{Type: types.ContextMessage, ID: created.ID},
		})
		s.auditor.Record(ctx, p.ID, "message.send", "message", created.ID, map[string]interface{}{
			"recipient_id": in.RecipientID,
			"category":     category,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *Service) ListMessages(ctx context.Context, p authorization.Principal, q *MessageQuery) ([]*types.Message, error) {
	ctx, span := s.tracer.Start(ctx, "message.Service.ListMessages")
	defer span.End()

	box := q.Box
	switch box {
	case "":
		box = storage.Inbox
	case storage.Inbox, storage.Sent:
	default:
		return nil, apperrors.Validation("invalid message box %q", q.Box)
	}

	if q.PropertyID != "" && !s.authz.CanViewProperty(ctx, p, q.PropertyID) {
		return nil, apperrors.Forbidden("not allowed to view property %s", q.PropertyID)
	}

	messages, err := s.storage.ListMessages(ctx, storage.MessageFilter{
		UserID:      p.ID,
		Box:         box,
		PropertyID:  q.PropertyID,
		UnitID:      q.UnitID,
		OtherUserID: q.OtherUserID,
		Category:    q.Category,
		UnreadOnly:  q.UnreadOnly,
		Page:        q.Page,
	})
	if err != nil {
		return nil, apperrors.FromStorage(err, "messages")
	}

	return messages, nil
}

// MarkAsRead returns the number of messages that went from unread to read.
// Ids not addressed to the principal are ignored.
func (s *Service) MarkAsRead(ctx context.Context, p authorization.Principal, ids []string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "message.Service.MarkAsRead")
	defer span.End()

	if len(ids) == 0 {
		return 0, apperrors.Validation("message ids are required")
	}

	n, err := s.storage.MarkMessagesRead(ctx, p.ID, ids)
	if err != nil {
		return 0, apperrors.FromStorage(err, "messages")
	}

	return n, nil
}

// DeleteMessage soft deletes a message for both parties. Only the sender or
// the recipient may delete it.
func (s *Service) DeleteMessage(ctx context.Context, p authorization.Principal, id string) error {
	ctx, span := s.tracer.Start(ctx, "message.Service.DeleteMessage")
	defer span.End()

	m, err := s.storage.GetMessage(ctx, id)
	if err != nil {
		return apperrors.FromStorage(err, "message")
	}

	if m.SenderID != p.ID && m.RecipientID != p.ID && !p.IsAdmin() {
		return apperrors.Forbidden("not allowed to delete message %s", id)
	}

	return s.tx.WithTx(ctx, func(ctx context.Context) error {
		if err := s.storage.SoftDeleteMessage(ctx, id); err != nil {
			return apperrors.FromStorage(err, "message")
		}

		s.auditor.Record(ctx, p.ID, "message.delete", "message", id, nil)
		return nil
	})
}

func (s *Service) ListNotifications(ctx context.Context, p authorization.Principal, unreadOnly bool, page storage.Page) ([]*types.Notification, error) {
	ctx, span := s.tracer.Start(ctx, "message.Service.ListNotifications")
	defer span.End()

	notifications, err := s.storage.ListNotifications(ctx, p.ID, unreadOnly, page)
	if err != nil {
		return nil, apperrors.FromStorage(err, "notifications")
	}

	return notifications, nil
}

// MarkNotificationsRead marks every unread notification when ids is empty.
func (s *Service) MarkNotificationsRead(ctx context.Context, p authorization.Principal, ids []string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "message.Service.MarkNotificationsRead")
	defer span.End()

	n, err := s.storage.MarkNotificationsRead(ctx, p.ID, ids)
	if err != nil {
		return 0, apperrors.FromStorage(err, "notifications")
	}

	return n, nil
}

func between(m *types.Message, a, b string) bool {
	return (m.SenderID == a && m.RecipientID == b) || (m.SenderID == b && m.RecipientID == a)
}

func preview(content string) string {
	r := []rune(content)
	if len(r) <= previewLength {
		return content
	}
	return string(r[:previewLength]) + "..."
}

func NewService(
	storage StorageInterface,
	authz AuthorizerInterface,
	tx TxManagerInterface,
	notifier NotifierInterface,
	auditor AuditorInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:  storage,
		authz:    authz,
		tx:       tx,
		notifier: notifier,
		auditor:  auditor,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}
