// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package locking

import (
	"context"
	"time"
)

// ReleaseFunc gives up a held lock. It is safe to call after the TTL expired.
type ReleaseFunc func(context.Context) error

type LockerInterface interface {
	TryLock(context.Context, string, time.Duration) (ReleaseFunc, error)
}
