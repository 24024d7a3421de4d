// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package locking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalLockerExclusive(t *testing.T) {
	l := NewLocalLocker()
	ctx := context.Background()

	release, err := l.TryLock(ctx, "rent-generation", time.Minute)
	require.NoError(t, err)

	_, err = l.TryLock(ctx, "rent-generation", time.Minute)
	assert.ErrorIs(t, err, ErrNotAcquired)

	_, err = l.TryLock(ctx, "other", time.Minute)
	assert.NoError(t, err)

	require.NoError(t, release(ctx))

	_, err = l.TryLock(ctx, "rent-generation", time.Minute)
	assert.NoError(t, err)
}

func TestLocalLockerExpiry(t *testing.T) {
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	l := NewLocalLocker()
	l.clock = func() time.Time { return now }
	ctx := context.Background()

	stale, err := l.TryLock(ctx, "k", time.Minute)
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)

	_, err = l.TryLock(ctx, "k", time.Minute)
	require.NoError(t, err)

	// the expired owner must not release its successor
	require.NoError(t, stale(ctx))

	_, err = l.TryLock(ctx, "k", time.Minute)
	assert.ErrorIs(t, err, ErrNotAcquired)
}
