// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"errors"
	"testing"

	"github.com/canonical/property-service/internal/logging"
)

func TestWithTxRunsRollbackHooksWithoutStatements(t *testing.T) {
	d := &DBClient{logger: logging.NewNoopLogger()}

	var committed, rolledBack bool
	fnErr := errors.New("boom")

	err := d.WithTx(context.Background(), func(ctx context.Context) error {
		OnCommit(ctx, func() { committed = true })
		OnRollback(ctx, func() { rolledBack = true })
		return fnErr
	})

	if !errors.Is(err, fnErr) {
		t.Errorf("expected %v, got %v", fnErr, err)
	}
	if committed {
		t.Error("commit hook must not run on failure")
	}
	if !rolledBack {
		t.Error("rollback hook must run on failure")
	}
}

func TestWithTxRunsCommitHooksWithoutStatements(t *testing.T) {
	d := &DBClient{logger: logging.NewNoopLogger()}

	var order []int
	err := d.WithTx(context.Background(), func(ctx context.Context) error {
		OnCommit(ctx, func() { order = append(order, 1) })
		OnCommit(ctx, func() { order = append(order, 2) })
		OnRollback(ctx, func() { t.Error("rollback hook must not run on success") })
		return nil
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(order) != 2 || order[0] != 2 || order[1] != 1 {
		t.Errorf("expected hooks in reverse registration order, got %v", order)
	}
}

func TestWithTxJoinsAmbientTransaction(t *testing.T) {
	d := &DBClient{logger: logging.NewNoopLogger()}

	var rolledBack int
	err := d.WithTx(context.Background(), func(outer context.Context) error {
		if err := d.WithTx(outer, func(inner context.Context) error {
			if lazyTxFromContext(inner) != lazyTxFromContext(outer) {
				t.Error("expected nested unit of work to join the outer one")
			}
			OnRollback(inner, func() { rolledBack++ })
			return nil
		}); err != nil {
			return err
		}
		return errors.New("outer failure")
	})

	if err == nil {
		t.Fatal("expected error")
	}
	if rolledBack != 1 {
		t.Errorf("expected inner rollback hook to run once with the outer rollback, ran %d", rolledBack)
	}
}

func TestOnCommitOutsideTransactionRunsImmediately(t *testing.T) {
	ran := false
	OnCommit(context.Background(), func() { ran = true })
	if !ran {
		t.Error("expected hook to run immediately")
	}
	if InTx(context.Background()) {
		t.Error("background context must not report a transaction")
	}
}

func TestPagination(t *testing.T) {
	if got := Offset(0, 20); got != 0 {
		t.Errorf("expected offset 0, got %d", got)
	}
	if got := Offset(3, 20); got != 40 {
		t.Errorf("expected offset 40, got %d", got)
	}
	if got := PageSize(0); got != defaultPageSize {
		t.Errorf("expected default page size, got %d", got)
	}
	if got := PageSize(500); got != maxPageSize {
		t.Errorf("expected page size capped at %d, got %d", maxPageSize, got)
	}
}
