// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package jobs runs periodic maintenance work, one replica at a time.
package jobs

import (
	"context"
	"errors"
	"time"

	"github.com/canonical/property-service/internal/locking"
	"github.com/canonical/property-service/internal/logging"
	"github.com/canonical/property-service/internal/monitoring"
	"github.com/canonical/property-service/internal/tracing"
)

const (
	outcomeSucceeded = "succeeded"
	outcomeFailed    = "failed"
	outcomeSkipped   = "skipped"
)

// Task is one run of a job. now is the time the run was scheduled for.
type Task func(ctx context.Context, now time.Time) error

type Job struct {
	name     string
	interval time.Duration
	lockTTL  time.Duration
	task     Task
	locker   locking.LockerInterface
	clock    func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Start runs the job every interval until ctx is cancelled.
func (j *Job) Start(ctx context.Context) {
	ticker := time.NewTicker(j.interval)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := j.RunOnce(ctx); err != nil {
					j.logger.Errorf("job %s failed: %v", j.name, err)
				}
			}
		}
	}()
}

// RunOnce runs the task under the job lock. A lock held elsewhere is not an
// error, the run is skipped.
func (j *Job) RunOnce(ctx context.Context) error {
	ctx, span := j.tracer.Start(ctx, "jobs.Job.RunOnce")
	defer span.End()

	release, err := j.locker.TryLock(ctx, j.name, j.lockTTL)
	if errors.Is(err, locking.ErrNotAcquired) {
		j.logger.Debugf("job %s is running elsewhere, skipping", j.name)
		j.count(outcomeSkipped)
		return nil
	}
	if err != nil {
		j.count(outcomeFailed)
		return err
	}
	defer func() {
		if err := release(context.WithoutCancel(ctx)); err != nil {
			j.logger.Warnf("failed to release lock of job %s: %v", j.name, err)
		}
	}()

	// the run must end before the lock can be taken over
	runCtx, cancel := context.WithTimeout(ctx, j.lockTTL)
	defer cancel()

	if err := j.task(runCtx, j.clock()); err != nil {
		j.count(outcomeFailed)
		return err
	}

	j.count(outcomeSucceeded)
	return nil
}

func (j *Job) count(outcome string) {
	if err := j.monitor.IncOperationCounter(map[string]string{"operation": "job." + j.name, "outcome": outcome}); err != nil {
		j.logger.Debugf("failed to count job run: %v", err)
	}
}

func NewJob(
	name string,
	interval time.Duration,
	lockTTL time.Duration,
	task Task,
	locker locking.LockerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Job {
	j := new(Job)
	j.name = name
	j.interval = interval
	j.lockTTL = lockTTL
	j.task = task
	j.locker = locker
	j.clock = time.Now
	j.tracer = tracer
	j.monitor = monitor
	j.logger = logger

	if j.interval <= 0 {
		j.interval = time.Hour
	}
	if j.lockTTL <= 0 {
		j.lockTTL = 5 * time.Minute
	}

	return j
}
