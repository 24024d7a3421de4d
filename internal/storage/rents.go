// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/property-service/internal/types"
)

var rentColumns = []string{
	"id", "lease_id", "tenant_id", "property_id", "unit_id", "billing_period", "amount_due", "amount_paid", "currency",
	"due_date", "payment_date", "status", "payment_history", "payment_proof_id", "notes", "created_by", "created_at", "updated_at",
}

// Visibility restricts a listing to rows of a tenant or of a set of
// properties.
type Visibility struct {
	TenantID    string
	PropertyIDs []string
}

type RentFilter struct {
	LeaseID    string
	PropertyID string
	UnitID     string
	Statuses   []types.RentStatus
	DueFrom    *time.Time
	DueTo      *time.Time
	// Visible is nil for unrestricted listings
	Visible *Visibility
	Page    Page
}

func (f RentFilter) apply(q sq.SelectBuilder) sq.SelectBuilder {
	q = q.Where(sq.Eq{"deleted_at": nil})

	if f.LeaseID != "" {
		q = q.Where(sq.Eq{"lease_id": f.LeaseID})
	}
	if f.PropertyID != "" {
		q = q.Where(sq.Eq{"property_id": f.PropertyID})
	}
	if f.UnitID != "" {
		q = q.Where(sq.Eq{"unit_id": f.UnitID})
	}
	if len(f.Statuses) > 0 {
		q = q.Where(sq.Eq{"status": f.Statuses})
	}
	if f.DueFrom != nil {
		q = q.Where(sq.GtOrEq{"due_date": *f.DueFrom})
	}
	if f.DueTo != nil {
		q = q.Where(sq.LtOrEq{"due_date": *f.DueTo})
	}
	if f.Visible != nil {
		or := sq.Or{sq.Eq{"tenant_id": f.Visible.TenantID}}
		if len(f.Visible.PropertyIDs) > 0 {
			or = append(or, sq.Eq{"property_id": f.Visible.PropertyIDs})
		}
		q = q.Where(or)
	}
	return q
}

func scanRent(row sq.RowScanner) (*types.Rent, error) {
	var (
		r       types.Rent
		history []byte
	)

	err := row.Scan(
		&r.ID, &r.LeaseID, &r.TenantID, &r.PropertyID, &r.UnitID, &r.BillingPeriod, &r.AmountDue, &r.AmountPaid, &r.Currency,
		&r.DueDate, &r.PaymentDate, &r.Status, &history, &r.PaymentProofID, &r.Notes, &r.CreatedBy, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	r.PaymentHistory = make([]types.Payment, 0)
	if err := fromJSONB(history, &r.PaymentHistory); err != nil {
		return nil, err
	}

	return &r, nil
}

func (s *Storage) CreateRent(ctx context.Context, r *types.Rent) (*types.Rent, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateRent")
	defer span.End()

	insert, err := s.rentInsert(ctx, r)
	if err != nil {
		return nil, err
	}

	created, err := scanRent(insert.Suffix("RETURNING " + joinColumns(rentColumns)).QueryRowContext(ctx))
	if err != nil {
		return nil, classify(err, "insert rent")
	}

	return created, nil
}

// UpsertRent inserts the rent or, when an active record exists for the same
// lease and billing period, overwrites its amount due and due date. The status
// is derived again from the amount already paid.
func (s *Storage) UpsertRent(ctx context.Context, r *types.Rent) (*types.Rent, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertRent")
	defer span.End()

	insert, err := s.rentInsert(ctx, r)
	if err != nil {
		return nil, err
	}

	upserted, err := scanRent(
		insert.Suffix(rentRegenerateClause + " RETURNING " + joinColumns(rentColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, classify(err, "upsert rent")
	}

	return upserted, nil
}

// rentRegenerateClause refreshes the billed terms of a live record and
// recomputes its status against what was already paid. Payments and notes
// survive regeneration.
const rentRegenerateClause = `ON CONFLICT (lease_id, billing_period) WHERE deleted_at IS NULL DO UPDATE SET
	amount_due = EXCLUDED.amount_due,
	currency = EXCLUDED.currency,
	due_date = EXCLUDED.due_date,
	status = CASE
		WHEN rents.amount_paid >= EXCLUDED.amount_due THEN 'paid'
		WHEN rents.amount_paid > 0 THEN 'partially_paid'
		ELSE 'due'
	END,
	updated_at = now()`

func (s *Storage) rentInsert(ctx context.Context, r *types.Rent) (sq.InsertBuilder, error) {
	id, err := newID()
	if err != nil {
		return sq.InsertBuilder{}, err
	}

	history := r.PaymentHistory
	if history == nil {
		history = []types.Payment{}
	}
	encoded, err := toJSONB(history)
	if err != nil {
		return sq.InsertBuilder{}, err
	}

	return s.db.Statement(ctx).
		Insert("rents").
		Columns(
			"id", "lease_id", "tenant_id", "property_id", "unit_id", "billing_period", "amount_due", "amount_paid",
			"currency", "due_date", "status", "payment_history", "notes", "created_by",
		).
		Values(
			id, r.LeaseID, r.TenantID, r.PropertyID, r.UnitID, r.BillingPeriod, r.AmountDue, r.AmountPaid,
			r.Currency, r.DueDate, r.Status, sq.Expr("?::jsonb", encoded), r.Notes, r.CreatedBy,
		), nil
}

func (s *Storage) GetRent(ctx context.Context, id string) (*types.Rent, error) {
	return s.getRent(ctx, id, false)
}

// GetRentForUpdate locks the rent row until the ambient transaction ends.
func (s *Storage) GetRentForUpdate(ctx context.Context, id string) (*types.Rent, error) {
	return s.getRent(ctx, id, true)
}

func (s *Storage) getRent(ctx context.Context, id string, lock bool) (*types.Rent, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetRent")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(rentColumns...).
		From("rents").
		Where(sq.Eq{"id": id, "deleted_at": nil})

	if lock {
		query = query.Suffix("FOR UPDATE")
	}

	r, err := scanRent(query.QueryRowContext(ctx))
	if err != nil {
		return nil, classify(err, "get rent")
	}

	return r, nil
}

// RentExists reports whether an active rent exists for the lease and period.
func (s *Storage) RentExists(ctx context.Context, leaseID, billingPeriod string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.RentExists")
	defer span.End()

	var exists bool
	err := s.db.Statement(ctx).
		Select().
		Column(sq.Expr(
			"EXISTS (SELECT 1 FROM rents WHERE lease_id = ? AND billing_period = ? AND deleted_at IS NULL)",
			leaseID, billingPeriod,
		)).
		QueryRowContext(ctx).
		Scan(&exists)
	if err != nil {
		return false, classify(err, "check rent")
	}

	return exists, nil
}

func (s *Storage) ListRents(ctx context.Context, f RentFilter) ([]*types.Rent, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListRents")
	defer span.End()

	query := f.apply(
		s.db.Statement(ctx).
			Select(rentColumns...).
			From("rents"),
	).OrderBy("due_date", "id")

	rows, err := f.Page.apply(query).QueryContext(ctx)
	if err != nil {
		return nil, classify(err, "list rents")
	}
	defer rows.Close()

	rents := make([]*types.Rent, 0)
	for rows.Next() {
		r, err := scanRent(rows)
		if err != nil {
			return nil, classify(err, "scan rent")
		}
		rents = append(rents, r)
	}

	if err := rows.Err(); err != nil {
		return nil, classify(err, "iterate rent rows")
	}

	return rents, nil
}

// UpdateRentPayment persists the payment state of the rent.
func (s *Storage) UpdateRentPayment(ctx context.Context, r *types.Rent) (*types.Rent, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateRentPayment")
	defer span.End()

	history, err := toJSONB(r.PaymentHistory)
	if err != nil {
		return nil, err
	}

	updated, err := scanRent(
		s.db.Statement(ctx).
			Update("rents").
			SetMap(map[string]interface{}{
				"amount_paid":      r.AmountPaid,
				"payment_date":     r.PaymentDate,
				"status":           r.Status,
				"payment_history":  sq.Expr("?::jsonb", history),
				"payment_proof_id": r.PaymentProofID,
				"notes":            r.Notes,
				"updated_at":       sq.Expr("now()"),
			}).
			Where(sq.Eq{"id": r.ID, "deleted_at": nil}).
			Suffix("RETURNING "+joinColumns(rentColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, classify(err, "update rent payment")
	}

	return updated, nil
}

func (s *Storage) SoftDeleteRent(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SoftDeleteRent")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("rents").
		Set("deleted_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "deleted_at": nil}).
		ExecContext(ctx)

	return expectOne(res, err, "delete rent")
}
