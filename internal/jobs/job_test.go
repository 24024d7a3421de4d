// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/property-service/internal/locking"
	"github.com/canonical/property-service/internal/logging"
	"github.com/canonical/property-service/internal/monitoring"
	"github.com/canonical/property-service/internal/tracing"
)

func newTestJob(task Task, locker locking.LockerInterface) *Job {
	logger := logging.NewNoopLogger()
	return NewJob("rent-generation", time.Hour, time.Minute, task, locker, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)
}

func TestRunOnce(t *testing.T) {
	scheduled := time.Date(2024, 3, 15, 6, 0, 0, 0, time.UTC)

	var got time.Time
	job := newTestJob(func(ctx context.Context, now time.Time) error {
		got = now
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		return nil
	}, locking.NewLocalLocker())
	job.clock = func() time.Time { return scheduled }

	require.NoError(t, job.RunOnce(context.Background()))
	assert.Equal(t, scheduled, got)

	// the lock is released after the run
	require.NoError(t, job.RunOnce(context.Background()))
}

func TestRunOnceSkipsWhenLocked(t *testing.T) {
	locker := locking.NewLocalLocker()
	_, err := locker.TryLock(context.Background(), "rent-generation", time.Minute)
	require.NoError(t, err)

	runs := 0
	job := newTestJob(func(context.Context, time.Time) error {
		runs++
		return nil
	}, locker)

	assert.NoError(t, job.RunOnce(context.Background()))
	assert.Zero(t, runs)
}

func TestRunOnceReportsTaskError(t *testing.T) {
	locker := locking.NewLocalLocker()
	boom := errors.New("database unavailable")

	job := newTestJob(func(context.Context, time.Time) error { return boom }, locker)
	assert.ErrorIs(t, job.RunOnce(context.Background()), boom)

	// a failed run still gives the lock back
	_, err := locker.TryLock(context.Background(), "rent-generation", time.Minute)
	assert.NoError(t, err)
}

func TestNewJobDefaults(t *testing.T) {
	logger := logging.NewNoopLogger()
	job := NewJob("j", 0, 0, nil, locking.NewLocalLocker(), tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

	assert.Equal(t, time.Hour, job.interval)
	assert.Equal(t, 5*time.Minute, job.lockTTL)
}
