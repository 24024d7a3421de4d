// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package locking

import (
	"context"
	"sync"
	"time"
)

// LocalLocker serialises work within a single process. It is used when no
// redis is configured.
type LocalLocker struct {
	mu    sync.Mutex
	held  map[string]time.Time
	clock func() time.Time
}

func (l *LocalLocker) TryLock(_ context.Context, key string, ttl time.Duration) (ReleaseFunc, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock()
	if expiry, ok := l.held[key]; ok && now.Before(expiry) {
		return nil, ErrNotAcquired
	}

	expiry := now.Add(ttl)
	l.held[key] = expiry

	release := func(context.Context) error {
		l.mu.Lock()
		defer l.mu.Unlock()

		if l.held[key].Equal(expiry) {
			delete(l.held, key)
		}
		return nil
	}

	return release, nil
}

func NewLocalLocker() *LocalLocker {
	l := new(LocalLocker)
	l.held = make(map[string]time.Time)
	l.clock = time.Now

	return l
}
