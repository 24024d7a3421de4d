// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package message

import (
	"context"

	"github.com/canonical/property-service/internal/authorization"
	"github.com/canonical/property-service/internal/notification"
	"github.com/canonical/property-service/internal/storage"
	"github.com/canonical/property-service/internal/types"
)

type ServiceInterface interface {
	SendMessage(ctx context.Context, p authorization.Principal, in *MessageInput) (*types.Message, error)
	ListMessages(ctx context.Context, p authorization.Principal, q *MessageQuery) ([]*types.Message, error)
	MarkAsRead(ctx context.Context, p authorization.Principal, ids []string) (int64, error)
	DeleteMessage(ctx context.Context, p authorization.Principal, id string) error
	ListNotifications(ctx context.Context, p authorization.Principal, unreadOnly bool, page storage.Page) ([]*types.Notification, error)
	MarkNotificationsRead(ctx context.Context, p authorization.Principal, ids []string) (int64, error)
}

type StorageInterface interface {
	GetUser(ctx context.Context, id string) (*types.User, error)
	GetUnit(ctx context.Context, id string) (*types.Unit, error)
	GetMedia(ctx context.Context, id string) (*types.Media, error)
	CreateMessage(ctx context.Context, m *types.Message) (*types.Message, error)
	GetMessage(ctx context.Context, id string) (*types.Message, error)
	ListMessages(ctx context.Context, f storage.MessageFilter) ([]*types.Message, error)
	MarkMessagesRead(ctx context.Context, recipientID string, ids []string) (int64, error)
	SoftDeleteMessage(ctx context.Context, id string) error
	ListNotifications(ctx context.Context, recipientID string, unreadOnly bool, page storage.Page) ([]*types.Notification, error)
	MarkNotificationsRead(ctx context.Context, recipientID string, ids []string) (int64, error)
}

type AuthorizerInterface interface {
	CanMessage(ctx context.Context, p authorization.Principal, recipientID string, propertyID, unitID *string) bool
	CanViewProperty(ctx context.Context, p authorization.Principal, propertyID string) bool
}

type TxManagerInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}

type NotifierInterface interface {
	Notify(ctx context.Context, p notification.Payload)
}

type AuditorInterface interface {
	Record(ctx context.Context, actorID, action, resourceType, resourceID string, details map[string]interface{})
}
