// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"

	sq "github.com/Masterminds/squirrel"
)

type DBClientInterface interface {
	Statement(context.Context) sq.StatementBuilderType
	TxStatement(context.Context) (TxInterface, sq.StatementBuilderType, error)
	BeginTx(context.Context) (context.Context, TxInterface, error)
	TxManagerInterface
	SavepointInterface
	Ping(context.Context) error
	Close()
}

// TxManagerInterface is the subset of the client services depend on to scope
// their writes to a single transaction.
type TxManagerInterface interface {
	WithTx(context.Context, func(context.Context) error) error
}

// SavepointInterface isolates best effort writes inside a transaction.
type SavepointInterface interface {
	Savepoint(context.Context, func(context.Context) error) error
}

type TxInterface interface {
	Commit() error
	Rollback() error
	sq.BaseRunner
}
