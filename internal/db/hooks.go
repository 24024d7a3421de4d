// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
)

// OnCommit registers fn to run once the ambient transaction commits.
// Outside a transaction fn runs immediately.
func OnCommit(ctx context.Context, fn func()) {
	lt := lazyTxFromContext(ctx)
	if lt == nil {
		fn()
		return
	}

	lt.onCommit = append(lt.onCommit, fn)
}

// OnRollback registers fn to run if the ambient transaction is rolled back,
// including when the unit of work fails before any statement was issued.
// Outside a transaction fn is discarded.
func OnRollback(ctx context.Context, fn func()) {
	lt := lazyTxFromContext(ctx)
	if lt == nil {
		return
	}

	lt.onRollback = append(lt.onRollback, fn)
}

// InTx reports whether ctx carries a unit of work.
func InTx(ctx context.Context) bool {
	return lazyTxFromContext(ctx) != nil || TxFromContext(ctx) != nil
}

func runHooks(hooks []func()) {
	for i := len(hooks) - 1; i >= 0; i-- {
		hooks[i]()
	}
}
