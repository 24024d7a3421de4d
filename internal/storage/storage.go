// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/canonical/property-service/internal/db"
	"github.com/canonical/property-service/internal/logging"
	"github.com/canonical/property-service/internal/monitoring"
	"github.com/canonical/property-service/internal/tracing"
)

type Storage struct {
	db db.DBClientInterface

	// typeMap scans postgres arrays through database/sql, it is not safe for
	// concurrent use
	typeMap *pgtype.Map
	mapMu   sync.Mutex

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c
	s.typeMap = pgtype.NewMap()

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

// Page selects a window of a listing, zero values fall back to the defaults.
type Page struct {
	Page int64
	Size int64
}

func (p Page) apply(q sq.SelectBuilder) sq.SelectBuilder {
	size := db.PageSize(p.Size)
	return q.Limit(size).Offset(db.Offset(p.Page, size))
}

func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate ID: %w", err)
	}
	return id.String(), nil
}

type arrayScanner struct {
	s   *Storage
	dst *[]string
}

func (a arrayScanner) Scan(src interface{}) error {
	a.s.mapMu.Lock()
	defer a.s.mapMu.Unlock()

	return a.s.typeMap.SQLScanner(a.dst).Scan(src)
}

func (s *Storage) textArray(dst *[]string) sql.Scanner {
	return arrayScanner{s: s, dst: dst}
}

func toJSONB(v interface{}) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode json column: %w", err)
	}
	return string(b), nil
}

func fromJSONB(raw []byte, dst interface{}) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("failed to decode json column: %w", err)
	}
	return nil
}

func rowsAffected(res sql.Result) (int64, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check rows affected: %w", err)
	}
	return n, nil
}

func expectOne(res sql.Result, err error, op string) error {
	if err != nil {
		return classify(err, op)
	}
	n, err := rowsAffected(res)
	if err != nil {
		return err
	}
	// nothing matched
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}

func prefixColumns(alias string, columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = alias + "." + c
	}
	return out
}
