// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package rent owns rent schedules, their materialization into monthly rent
// records and the payment state of those records.
package rent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/canonical/property-service/internal/apperrors"
	"github.com/canonical/property-service/internal/authorization"
	"github.com/canonical/property-service/internal/blob"
	"github.com/canonical/property-service/internal/logging"
	"github.com/canonical/property-service/internal/monitoring"
	"github.com/canonical/property-service/internal/notification"
	"github.com/canonical/property-service/internal/storage"
	"github.com/canonical/property-service/internal/tracing"
	"github.com/canonical/property-service/internal/types"
)

const (
	defaultUpcomingDays = 30
	maxUpcomingDays     = 365
)

// RentInput creates a rent record by hand, outside of any schedule.
type RentInput struct {
	LeaseID       string
	AmountDue     float64
	DueDate       time.Time
	BillingPeriod string
	Notes         string
}

// RentQuery filters a rent listing. Status accepts "overdue" on top of the
// persisted statuses.
type RentQuery struct {
	LeaseID    string
	PropertyID string
	UnitID     string
	Status     string
	Page       storage.Page
}

type UpcomingQuery struct {
	DaysAhead  int
	PropertyID string
	UnitID     string
}

type Service struct {
	storage  StorageInterface
	authz    AuthorizerInterface
	tx       TxManagerInterface
	blobs    BlobStoreInterface
	notifier NotifierInterface
	auditor  AuditorInterface

	now func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) CreateRent(ctx context.Context, p authorization.Principal, in *RentInput) (*types.Rent, error) {
	ctx, span := s.tracer.Start(ctx, "rent.Service.CreateRent")
	defer span.End()

	if _, err := types.ParseBillingPeriod(in.BillingPeriod); err != nil {
		return nil, apperrors.Validation("%v", err)
	}
	if in.AmountDue <= 0 {
		return nil, apperrors.Validation("amount due must be positive")
	}
	if in.DueDate.IsZero() {
		return nil, apperrors.Validation("due date is required")
	}

	lease, err := s.storage.GetLease(ctx, in.LeaseID)
	if err != nil {
		return nil, apperrors.FromStorage(err, "lease")
	}

	if !s.authz.CanManageProperty(ctx, p, lease.PropertyID) {
		return nil, apperrors.Forbidden("not allowed to create rent on property %s", lease.PropertyID)
	}

	var created *types.Rent
	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		exists, err := s.storage.RentExists(ctx, lease.ID, in.BillingPeriod)
		if err != nil {
			return apperrors.FromStorage(err, "rent")
		}
		if exists {
			return apperrors.Conflict("rent for %s already exists on this lease", in.BillingPeriod)
		}

		created, err = s.storage.CreateRent(ctx, &types.Rent{
			LeaseID:       lease.ID,
			TenantID:      lease.TenantID,
			PropertyID:    lease.PropertyID,
			UnitID:        lease.UnitID,
			BillingPeriod: in.BillingPeriod,
			AmountDue:     roundCents(in.AmountDue),
			Currency:      lease.Currency,
			DueDate:       types.StartOfDay(in.DueDate),
			Status:        types.RentDue,
			Notes:         in.Notes,
			CreatedBy:     p.ID,
		})
		if errors.Is(err, storage.ErrDuplicateKey) {
			return apperrors.Conflict("rent for %s already exists on this lease", in.BillingPeriod)
		}
		if err != nil {
			return apperrors.FromStorage(err, "rent")
		}

		s.notifyRent(ctx, created)
		s.auditor.Record(ctx, p.ID, "rent.create", "rent", created.ID, map[string]interface{}{
			"lease_id":       lease.ID,
			"billing_period": in.BillingPeriod,
			"amount_due":     created.AmountDue,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.derive(created), nil
}

func (s *Service) GetRent(ctx context.Context, p authorization.Principal, id string) (*types.Rent, error) {
	ctx, span := s.tracer.Start(ctx, "rent.Service.GetRent")
	defer span.End()

	r, err := s.storage.GetRent(ctx, id)
	if err != nil {
		return nil, apperrors.FromStorage(err, "rent")
	}

	if !s.authz.CanAccessRent(ctx, p, r) {
		return nil, apperrors.Forbidden("not allowed to access rent %s", id)
	}

	return s.derive(r), nil
}

func (s *Service) ListRents(ctx context.Context, p authorization.Principal, q *RentQuery) ([]*types.Rent, error) {
	ctx, span := s.tracer.Start(ctx, "rent.Service.ListRents")
	defer span.End()

	f := storage.RentFilter{
		LeaseID:    q.LeaseID,
		PropertyID: q.PropertyID,
		UnitID:     q.UnitID,
		Page:       q.Page,
	}

	switch status := types.RentStatus(q.Status); status {
	case "":
	case types.RentOverdue:
		yesterday := types.StartOfDay(s.now()).AddDate(0, 0, -1)
		f.Statuses = []types.RentStatus{types.RentDue, types.RentPartiallyPaid}
		f.DueTo = &yesterday
	case types.RentDue, types.RentPartiallyPaid, types.RentPaid:
		f.Statuses = []types.RentStatus{status}
	default:
		return nil, apperrors.Validation("invalid rent status %q", q.Status)
	}

	visible, err := s.visibility(ctx, p)
	if err != nil {
		return nil, err
	}
	f.Visible = visible

	rents, err := s.storage.ListRents(ctx, f)
	if err != nil {
		return nil, apperrors.FromStorage(err, "rents")
	}

	for _, r := range rents {
		s.derive(r)
	}

	return rents, nil
}

// UpcomingRents lists unpaid rents falling due between today and DaysAhead
// days from now.
func (s *Service) UpcomingRents(ctx context.Context, p authorization.Principal, q *UpcomingQuery) ([]*types.Rent, error) {
	ctx, span := s.tracer.Start(ctx, "rent.Service.UpcomingRents")
	defer span.End()

	days := q.DaysAhead
	if days == 0 {
		days = defaultUpcomingDays
	}
	if days < 0 || days > maxUpcomingDays {
		return nil, apperrors.Validation("days ahead must be between 1 and %d", maxUpcomingDays)
	}

	visible, err := s.visibility(ctx, p)
	if err != nil {
		return nil, err
	}

	from := types.StartOfDay(s.now())
	to := from.AddDate(0, 0, days)

	rents, err := s.storage.ListRents(ctx, storage.RentFilter{
		PropertyID: q.PropertyID,
		UnitID:     q.UnitID,
		Statuses:   []types.RentStatus{types.RentDue, types.RentPartiallyPaid},
		DueFrom:    &from,
		DueTo:      &to,
		Visible:    visible,
	})
	if err != nil {
		return nil, apperrors.FromStorage(err, "rents")
	}

	for _, r := range rents {
		s.derive(r)
	}

	return rents, nil
}

// DeleteRent soft deletes the rent, freeing its billing period.
func (s *Service) DeleteRent(ctx context.Context, p authorization.Principal, id string) error {
	ctx, span := s.tracer.Start(ctx, "rent.Service.DeleteRent")
	defer span.End()

	r, err := s.storage.GetRent(ctx, id)
	if err != nil {
		return apperrors.FromStorage(err, "rent")
	}

	if !s.authz.CanManageProperty(ctx, p, r.PropertyID) {
		return apperrors.Forbidden("not allowed to delete rent %s", id)
	}

	return s.tx.WithTx(ctx, func(ctx context.Context) error {
		if err := s.storage.SoftDeleteRent(ctx, id); err != nil {
			return apperrors.FromStorage(err, "rent")
		}

		s.auditor.Record(ctx, p.ID, "rent.delete", "rent", id, map[string]interface{}{
			"lease_id":       r.LeaseID,
			"billing_period": r.BillingPeriod,
		})
		return nil
	})
}

// visibility restricts listings to the rents of the principal and of the
// properties it manages. Admins are unrestricted.
func (s *Service) visibility(ctx context.Context, p authorization.Principal) (*storage.Visibility, error) {
	if p.ID == "" {
		return nil, apperrors.Forbidden("unauthenticated")
	}
	if p.IsAdmin() {
		return nil, nil
	}

	managed, err := s.authz.ManagedPropertyIDs(ctx, p)
	if err != nil {
		return nil, apperrors.Internal("failed to resolve managed properties", err)
	}

	return &storage.Visibility{TenantID: p.ID, PropertyIDs: managed}, nil
}

func (s *Service) derive(r *types.Rent) *types.Rent {
	r.Overdue = r.IsOverdue(s.now())
	return r
}

func (s *Service) notifyRent(ctx context.Context, r *types.Rent) {
	s.notifier.Notify(ctx, notification.Payload{
		RecipientID: r.TenantID,
		Type:        notification.TypeRent,
		Message:     fmt.Sprintf("Rent of %.2f %s for %s is due on %s", r.AmountDue, r.Currency, r.BillingPeriod, r.DueDate.Format(time.DateOnly)),
		Path:        "/rents/" + r.ID,
		Context:     contextOf(types.RentContext(r.ID)),
	})
}

func contextOf(c types.CommentContext) *types.CommentContext {
	return &c
}

func uploadError(err error) error {
	if errors.Is(err, blob.ErrDisabled) {
		return apperrors.Validation("file uploads are not enabled")
	}
	return apperrors.Internal("failed to store file", err)
}

func NewService(
	storage StorageInterface,
	authz AuthorizerInterface,
	tx TxManagerInterface,
	blobs BlobStoreInterface,
	notifier NotifierInterface,
	auditor AuditorInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.storage = storage
	s.authz = authz
	s.tx = tx
	s.blobs = blobs
	s.notifier = notifier
	s.auditor = auditor
	s.now = time.Now

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
