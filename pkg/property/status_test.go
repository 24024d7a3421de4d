// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package property

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/canonical/property-service/internal/types"
)

func TestDeriveUnitStatus(t *testing.T) {
	tests := []struct {
		name     string
		tenants  int
		leases   int
		flag     types.UnitStatus
		expected types.UnitStatus
	}{
		{"empty unit", 0, 0, "", types.UnitVacant},
		{"tenant association only", 1, 0, "", types.UnitOccupied},
		{"active lease only", 0, 1, "", types.UnitOccupied},
		{"occupancy wins over maintenance", 1, 1, types.UnitUnderMaintenance, types.UnitOccupied},
		{"under maintenance", 0, 0, types.UnitUnderMaintenance, types.UnitUnderMaintenance},
		{"unavailable", 0, 0, types.UnitUnavailable, types.UnitUnavailable},
		{"flag cannot force occupancy", 0, 0, types.UnitOccupied, types.UnitVacant},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DeriveUnitStatus(tt.tenants, tt.leases, tt.flag))
		})
	}
}
