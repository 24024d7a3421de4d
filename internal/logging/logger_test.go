// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"testing"
)

func TestDebugLogger(t *testing.T) {
	logger := NewLogger("DEBUG")
	if !logger.Desugar().Core().Enabled(-1) {
		t.Error("expected debug level to be enabled")
	}
}

func TestInvalidLevelFallsBackToError(t *testing.T) {
	logger := NewLogger("invalid")
	if logger.Desugar().Core().Enabled(0) {
		t.Error("expected info level to be disabled")
	}
	if !logger.Desugar().Core().Enabled(2) {
		t.Error("expected error level to be enabled")
	}
}

func TestNoopLoggerSecurity(t *testing.T) {
	logger := NewNoopLogger()
	logger.Security().SystemStartup()
	logger.Security().AuthzFailureWithAction("user-1", "property:delete", "property:1")
	logger.Security().AdminAction("admin", "rent:generate", "rents")
	logger.Security().SystemShutdown()
}
