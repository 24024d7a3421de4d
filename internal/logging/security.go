// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

const (
	securityEventKey = "event"
	securityTypeKey  = "type"
	securityType     = "security"
)

var _ SecurityLoggerInterface = (*SecurityLogger)(nil)

// SecurityLogger emits structured events in the OWASP logging vocabulary.
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system startup", zap.String(securityTypeKey, securityType), zap.String(securityEventKey, "sys_startup"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutdown", zap.String(securityTypeKey, securityType), zap.String(securityEventKey, "sys_shutdown"))
}

func (s *SecurityLogger) AuthzFailure(actor, resource string) {
	s.l.Warn(
		"authorization failure",
		zap.String(securityTypeKey, securityType),
		zap.String(securityEventKey, "authz_fail:"+actor+","+resource),
		zap.String("actor", actor),
		zap.String("resource", resource),
	)
}

func (s *SecurityLogger) AuthzFailureWithAction(actor, action, resource string) {
	s.l.Warn(
		"authorization failure",
		zap.String(securityTypeKey, securityType),
		zap.String(securityEventKey, "authz_fail:"+actor+","+action+","+resource),
		zap.String("actor", actor),
		zap.String("action", action),
		zap.String("resource", resource),
	)
}

func (s *SecurityLogger) AdminAction(actor, action, resource string) {
	s.l.Info(
		"admin action",
		zap.String(securityTypeKey, securityType),
		zap.String(securityEventKey, "authz_admin:"+actor+","+action),
		zap.String("actor", actor),
		zap.String("action", action),
		zap.String("resource", resource),
	)
}

func newSecurityLogger(l *zap.Logger) *SecurityLogger {
	return &SecurityLogger{l: l.WithOptions(zap.AddCallerSkip(1))}
}
