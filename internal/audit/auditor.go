// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package audit is the append only audit sink.
package audit

import (
	"context"

	"github.com/canonical/property-service/internal/db"
	"github.com/canonical/property-service/internal/logging"
	"github.com/canonical/property-service/internal/monitoring"
	"github.com/canonical/property-service/internal/tracing"
	"github.com/canonical/property-service/internal/types"
)

type Auditor struct {
	storage    StorageInterface
	savepoints SavepointInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Record appends an audit entry within the ambient transaction and mirrors it
// to the security log once committed. Failures are logged and never returned.
func (a *Auditor) Record(ctx context.Context, actorID, action, resourceType, resourceID string, details map[string]interface{}) {
	ctx, span := a.tracer.Start(ctx, "audit.Auditor.Record")
	defer span.End()

	err := a.savepoints.Savepoint(ctx, func(ctx context.Context) error {
		return a.storage.AppendAuditLog(ctx, &types.AuditLog{
			ActorID:      actorID,
			Action:       action,
			ResourceType: resourceType,
			ResourceID:   resourceID,
			Details:      details,
		})
	})
	if err != nil {
		a.logger.Errorf("failed to append audit log for %s %s:%s: %v", action, resourceType, resourceID, err)
		return
	}

	db.OnCommit(ctx, func() {
		a.logger.Security().AdminAction(actorID, action, resourceType+":"+resourceID)
	})
}

func NewAuditor(storage StorageInterface, savepoints SavepointInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Auditor {
	a := new(Auditor)
	a.storage = storage
	a.savepoints = savepoints
	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
