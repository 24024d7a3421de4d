// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package locking provides advisory locks for work that must run on a single
// replica at a time.
package locking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/canonical/property-service/internal/logging"
	"github.com/canonical/property-service/internal/monitoring"
	"github.com/canonical/property-service/internal/tracing"
)

var ErrNotAcquired = errors.New("lock held by another owner")

const keyPrefix = "property-service:lock:"

// compare and delete, so an expired owner never releases a successor's lock
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type RedisLocker struct {
	client redis.UniversalClient

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (l *RedisLocker) TryLock(ctx context.Context, key string, ttl time.Duration) (ReleaseFunc, error) {
	ctx, span := l.tracer.Start(ctx, "locking.RedisLocker.TryLock")
	defer span.End()

	token := uuid.NewString()
	fullKey := keyPrefix + key

	ok, err := l.client.SetNX(ctx, fullKey, token, ttl).Result()

	l.observe(err)

	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock %s: %w", key, err)
	}
	if !ok {
		return nil, ErrNotAcquired
	}

	release := func(ctx context.Context) error {
		if err := releaseScript.Run(ctx, l.client, []string{fullKey}, token).Err(); err != nil && !errors.Is(err, redis.Nil) {
			l.logger.Warnf("failed to release lock %s: %v", key, err)
			return err
		}
		return nil
	}

	return release, nil
}

func (l *RedisLocker) observe(err error) {
	available := 1.0
	if err != nil {
		available = 0
	}
	if merr := l.monitor.SetDependencyAvailability(map[string]string{"component": "redis"}, available); merr != nil {
		l.logger.Debugf("failed to set redis availability: %v", merr)
	}
}

func NewRedisLocker(client redis.UniversalClient, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *RedisLocker {
	l := new(RedisLocker)
	l.client = client
	l.tracer = tracer
	l.monitor = monitor
	l.logger = logger

	return l
}
