// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package property

import (
	"context"
	"time"

	"github.com/canonical/property-service/internal/authorization"
	"github.com/canonical/property-service/internal/notification"
	"github.com/canonical/property-service/internal/storage"
	"github.com/canonical/property-service/internal/types"
)

type ServiceInterface interface {
	CreateProperty(ctx context.Context, p authorization.Principal, in *types.Property) (*types.Property, error)
	GetProperty(ctx context.Context, p authorization.Principal, id string) (*types.Property, error)
	ListProperties(ctx context.Context, p authorization.Principal, page storage.Page) ([]*types.Property, error)
	UpdateProperty(ctx context.Context, p authorization.Principal, id string, in *PropertyUpdate) (*types.Property, error)
	DeleteProperty(ctx context.Context, p authorization.Principal, id string) error
	CreateUnit(ctx context.Context, p authorization.Principal, propertyID, name string) (*types.Unit, error)
	ListUnits(ctx context.Context, p authorization.Principal, propertyID string) ([]*types.Unit, error)
	SetUnitMaintenance(ctx context.Context, p authorization.Principal, unitID string, flag types.UnitStatus) (*types.Unit, error)
	AssignUser(ctx context.Context, p authorization.Principal, propertyID string, in *Assignment) (*types.PropertyUser, error)
	RemoveUser(ctx context.Context, p authorization.Principal, propertyID string, in *Assignment) (*types.PropertyUser, error)
	ListPropertyUsers(ctx context.Context, p authorization.Principal, propertyID string, activeOnly bool) ([]*types.PropertyUser, error)
	CreateLease(ctx context.Context, p authorization.Principal, in *types.Lease) (*types.Lease, error)
	TerminateLease(ctx context.Context, p authorization.Principal, leaseID string) (*types.Lease, error)
	ExpireLeases(ctx context.Context, now time.Time) (int, error)
	ScheduleMaintenance(ctx context.Context, p authorization.Principal, in *types.ScheduledMaintenance) (*types.ScheduledMaintenance, error)
	ListScheduledMaintenance(ctx context.Context, p authorization.Principal, propertyID string) ([]*types.ScheduledMaintenance, error)
}

type StorageInterface interface {
	GetUser(ctx context.Context, id string) (*types.User, error)
	CreateProperty(ctx context.Context, p *types.Property) (*types.Property, error)
	GetProperty(ctx context.Context, id string) (*types.Property, error)
	ListProperties(ctx context.Context, userID string, page storage.Page) ([]*types.Property, error)
	UpdateProperty(ctx context.Context, p *types.Property) (*types.Property, error)
	DeletePropertyCascade(ctx context.Context, propertyID string) (map[string]int64, error)
	CreateUnit(ctx context.Context, u *types.Unit) (*types.Unit, error)
	GetUnit(ctx context.Context, id string) (*types.Unit, error)
	GetUnitForUpdate(ctx context.Context, id string) (*types.Unit, error)
	ListUnits(ctx context.Context, propertyID string) ([]*types.Unit, error)
	SetUnitStatus(ctx context.Context, id string, status types.UnitStatus) error
	SetUnitMaintenanceFlag(ctx context.Context, id string, flag types.UnitStatus) error
	ListPropertyUsers(ctx context.Context, propertyID string, activeOnly bool) ([]*types.PropertyUser, error)
	ExistsAssociation(ctx context.Context, f storage.AssociationFilter) (bool, error)
	CountAssociations(ctx context.Context, f storage.AssociationFilter) (int, error)
	UpsertAssociation(ctx context.Context, userID, propertyID string, unitID *string, roles types.RoleSet, invitedBy string) (*types.PropertyUser, error)
	DeactivateRoles(ctx context.Context, userID, propertyID string, roles types.RoleSet, unitID *string) (*types.PropertyUser, error)
	CreateLease(ctx context.Context, l *types.Lease) (*types.Lease, error)
	GetLease(ctx context.Context, id string) (*types.Lease, error)
	GetLeaseForUpdate(ctx context.Context, id string) (*types.Lease, error)
	CountLeases(ctx context.Context, f storage.LeaseFilter) (int, error)
	SetLeaseStatus(ctx context.Context, id string, status types.LeaseStatus) (*types.Lease, error)
	ExpireLeases(ctx context.Context, asOf time.Time) ([]*types.Lease, error)
	LockUnitsWithExpiringLeases(ctx context.Context, asOf time.Time) ([]*types.Unit, error)
	DeactivateLeaseSchedules(ctx context.Context, leaseID string) (int64, error)
	CreateScheduledMaintenance(ctx context.Context, m *types.ScheduledMaintenance) (*types.ScheduledMaintenance, error)
	ListScheduledMaintenance(ctx context.Context, propertyID string) ([]*types.ScheduledMaintenance, error)
}

type AuthorizerInterface interface {
	CanManageProperty(ctx context.Context, p authorization.Principal, propertyID string) bool
	CanViewProperty(ctx context.Context, p authorization.Principal, propertyID string) bool
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
