// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ LoggerInterface = (*Logger)(nil)

// Logger is a thin wrapper around the zap sugared logger that also exposes
// a dedicated logger for security relevant events.
type Logger struct {
	*zap.SugaredLogger

	security *SecurityLogger
}

func (l *Logger) Security() SecurityLoggerInterface {
	return l.security
}

// NewLogger creates a JSON logger writing to stdout at the requested level.
// Unknown levels fall back to error.
func NewLogger(l string) *Logger {
	level := zapcore.ErrorLevel
	if parsed, err := zapcore.ParseLevel(strings.ToLower(l)); err == nil {
		level = parsed
	}

	c := zap.NewProductionConfig()
	c.Level = zap.NewAtomicLevelAt(level)
	c.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	c.EncoderConfig.TimeKey = "time"
	c.Sampling = nil

	lgr, err := c.Build(zap.AddCallerSkip(0))
	if err != nil {
		panic(err)
	}

	logger := new(Logger)
	logger.SugaredLogger = lgr.Sugar()
	logger.security = newSecurityLogger(lgr)

	return logger
}
