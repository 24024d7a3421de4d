// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/canonical/property-service/internal/logging"
)

func TestMonitorCountsOperations(t *testing.T) {
	m := NewMonitor("property-service-test", logging.NewNoopLogger())

	tags := map[string]string{"operation": "rent.generate", "outcome": "generated"}
	for i := 0; i < 3; i++ {
		if err := m.IncOperationCounter(tags); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := testutil.ToFloat64(m.operations.With(tags)); got != 3 {
		t.Errorf("expected 3 operations, got %v", got)
	}
}

func TestMonitorRejectsUninstantiatedMetrics(t *testing.T) {
	m := &Monitor{logger: logging.NewNoopLogger()}

	if err := m.SetResponseTimeMetric(map[string]string{}, 1); err == nil {
		t.Error("expected error for missing histogram")
	}
	if err := m.SetDependencyAvailability(map[string]string{}, 1); err == nil {
		t.Error("expected error for missing gauge")
	}
	if err := m.IncOperationCounter(map[string]string{}); err == nil {
		t.Error("expected error for missing counter")
	}
}
