// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notification

import (
	"context"

	"github.com/canonical/property-service/internal/types"
)

type NotifierInterface interface {
	Notify(context.Context, Payload)
}

type StorageInterface interface {
	CreateNotification(ctx context.Context, n *types.Notification) (*types.Notification, error)
}

type SavepointInterface interface {
	Savepoint(context.Context, func(context.Context) error) error
}
