// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package rent

import (
	"context"
	"io"
	"time"

	"github.com/canonical/property-service/internal/authorization"
	"github.com/canonical/property-service/internal/notification"
	"github.com/canonical/property-service/internal/storage"
	"github.com/canonical/property-service/internal/types"
)

type ServiceInterface interface {
	CreateSchedule(ctx context.Context, p authorization.Principal, in *types.RentSchedule) (*types.RentSchedule, error)
	UpdateSchedule(ctx context.Context, p authorization.Principal, id string, in *ScheduleUpdate) (*types.RentSchedule, error)
	ListSchedules(ctx context.Context, p authorization.Principal, leaseID string) ([]*types.RentSchedule, error)
	GenerateRentRecords(ctx context.Context, p authorization.Principal, forDate time.Time, force bool) (*GenerationSummary, error)
	CreateRent(ctx context.Context, p authorization.Principal, in *RentInput) (*types.Rent, error)
	GetRent(ctx context.Context, p authorization.Principal, id string) (*types.Rent, error)
	ListRents(ctx context.Context, p authorization.Principal, q *RentQuery) ([]*types.Rent, error)
	RecordPayment(ctx context.Context, p authorization.Principal, rentID string, in *PaymentInput) (*types.Rent, error)
	DeleteRent(ctx context.Context, p authorization.Principal, id string) error
	UpcomingRents(ctx context.Context, p authorization.Principal, q *UpcomingQuery) ([]*types.Rent, error)
}

type StorageInterface interface {
	GetLease(ctx context.Context, id string) (*types.Lease, error)
	GetLeaseForUpdate(ctx context.Context, id string) (*types.Lease, error)
	CreateRentSchedule(ctx context.Context, rs *types.RentSchedule) (*types.RentSchedule, error)
	GetRentSchedule(ctx context.Context, id string) (*types.RentSchedule, error)
	ListRentSchedules(ctx context.Context, f storage.ScheduleFilter) ([]*types.RentSchedule, error)
	ListDueSchedules(ctx context.Context, d time.Time) ([]*types.RentSchedule, error)
	UpdateRentSchedule(ctx context.Context, rs *types.RentSchedule) (*types.RentSchedule, error)
	MarkScheduleGenerated(ctx context.Context, id string, at time.Time) error
	CreateRent(ctx context.Context, r *types.Rent) (*types.Rent, error)
	UpsertRent(ctx context.Context, r *types.Rent) (*types.Rent, error)
	GetRent(ctx context.Context, id string) (*types.Rent, error)
	GetRentForUpdate(ctx context.Context, id string) (*types.Rent, error)
	RentExists(ctx context.Context, leaseID, billingPeriod string) (bool, error)
	ListRents(ctx context.Context, f storage.RentFilter) ([]*types.Rent, error)
	UpdateRentPayment(ctx context.Context, r *types.Rent) (*types.Rent, error)
	SoftDeleteRent(ctx context.Context, id string) error
	CreateMedia(ctx context.Context, m *types.Media) (*types.Media, error)
	GetMedia(ctx context.Context, id string) (*types.Media, error)
	DeleteMedia(ctx context.Context, id string) error
}

type AuthorizerInterface interface {
	CanManageProperty(ctx context.Context, p authorization.Principal, propertyID string) bool
	CanAccessRent(ctx context.Context, p authorization.Principal, rent *types.Rent) bool
	ManagedPropertyIDs(ctx context.Context, p authorization.Principal) ([]string, error)
}

type BlobStoreInterface interface {
	Upload(ctx context.Context, key string, r io.Reader) (int64, error)
	Delete(ctx context.Context, key string) error
}

type TxManagerInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}

type NotifierInterface interface {
	Notify(ctx context.Context, p notification.Payload)
}

type AuditorInterface interface {
	Record(ctx context.Context, actorID, action, resourceType, resourceID string, details map[string]interface{})
}
