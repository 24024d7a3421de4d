// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/property-service/internal/types"
)

// AppendAuditLog writes an audit row. Audit rows are never updated.
func (s *Storage) AppendAuditLog(ctx context.Context, entry *types.AuditLog) error {
	ctx, span := s.tracer.Start(ctx, "storage.AppendAuditLog")
	defer span.End()

	id, err := newID()
	if err != nil {
		return err
	}

	details := entry.Details
	if details == nil {
		details = map[string]interface{}{}
	}
	encoded, err := toJSONB(details)
	if err != nil {
		return err
	}

	_, err = s.db.Statement(ctx).
		Insert("audit_logs").
		Columns("id", "actor_id", "action", "resource_type", "resource_id", "details").
		Values(id, entry.ActorID, entry.Action, entry.ResourceType, entry.ResourceID, sq.Expr("?::jsonb", encoded)).
		ExecContext(ctx)
	if err != nil {
		return classify(err, "insert audit log")
	}

	return nil
}
