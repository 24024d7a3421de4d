// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package audit

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/property-service/internal/monitoring"
	"github.com/canonical/property-service/internal/logging"
	"github.com/canonical/property-service/internal/tracing"
	"github.com/canonical/property-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package audit -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package audit -destination ./mock_logger.go -source=../logging/interfaces.go

func TestRecord(t *testing.T) {
	tests := []struct {
		name     string
		storeErr error
	}{
		{name: "appended and mirrored to the security log"},
		{name: "failure is logged", storeErr: errors.New("insert failed")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			storage := NewMockStorageInterface(ctrl)
			savepoints := NewMockSavepointInterface(ctrl)
			logger := NewMockLoggerInterface(ctrl)
			security := NewMockSecurityLoggerInterface(ctrl)

			a := NewAuditor(storage, savepoints, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logging.NewNoopLogger()), logger)

			savepoints.EXPECT().Savepoint(gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) })
			storage.EXPECT().AppendAuditLog(gomock.Any(), &types.AuditLog{
				ActorID:      "u1",
				Action:       "property.delete",
				ResourceType: "property",
				ResourceID:   "p1",
				Details:      map[string]interface{}{"units": int64(2)},
			}).Return(tt.storeErr)

			if tt.storeErr != nil {
				logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			} else {
				logger.EXPECT().Security().Return(security)
				security.EXPECT().AdminAction("u1", "property.delete", "property:p1")
			}

			a.Record(context.Background(), "u1", "property.delete", "property", "p1", map[string]interface{}{"units": int64(2)})
		})
	}
}
