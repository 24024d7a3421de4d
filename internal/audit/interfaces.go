// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package audit

import (
	"context"

	"github.com/canonical/property-service/internal/types"
)

type AuditorInterface interface {
	Record(ctx context.Context, actorID, action, resourceType, resourceID string, details map[string]interface{})
}

type StorageInterface interface {
	AppendAuditLog(ctx context.Context, entry *types.AuditLog) error
}

type SavepointInterface interface {
	Savepoint(context.Context, func(context.Context) error) error
}
