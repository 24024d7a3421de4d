// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const sideEffectSavepoint = "side_effect"

// runner returns the transaction carried by ctx, nil outside a transaction.
func (d *DBClient) runner(ctx context.Context) (sq.BaseRunner, error) {
	if lt := lazyTxFromContext(ctx); lt != nil {
		return lt.get()
	}
	if tx := TxFromContext(ctx); tx != nil {
		return tx, nil
	}
	return nil, nil
}

// Savepoint runs fn so that its failure only undoes its own statements and
// leaves the ambient transaction usable. Outside a transaction fn runs as is.
func (d *DBClient) Savepoint(ctx context.Context, fn func(context.Context) error) error {
	runner, err := d.runner(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	if runner == nil {
		return fn(ctx)
	}

	if _, err := runner.Exec("SAVEPOINT " + sideEffectSavepoint); err != nil {
		return fmt.Errorf("failed to create savepoint: %w", err)
	}

	if err := fn(ctx); err != nil {
		if _, rerr := runner.Exec("ROLLBACK TO SAVEPOINT " + sideEffectSavepoint); rerr != nil {
			d.logger.Errorf("failed to rollback to savepoint: %v", rerr)
		}
		return err
	}

	if _, err := runner.Exec("RELEASE SAVEPOINT " + sideEffectSavepoint); err != nil {
		return fmt.Errorf("failed to release savepoint: %w", err)
	}

	return nil
}
