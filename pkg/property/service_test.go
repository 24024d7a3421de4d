// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package property

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/canonical/property-service/internal/apperrors"
	"github.com/canonical/property-service/internal/authorization"
	"github.com/canonical/property-service/internal/logging"
	"github.com/canonical/property-service/internal/monitoring"
	"github.com/canonical/property-service/internal/storage"
	"github.com/canonical/property-service/internal/tracing"
	"github.com/canonical/property-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package property -destination ./mock_interfaces.go -source=./interfaces.go

type mocks struct {
	storage  *MockStorageInterface
	authz    *MockAuthorizerInterface
	tx       *MockTxManagerInterface
	notifier *MockNotifierInterface
	auditor  *MockAuditorInterface
}

func newTestService(ctrl *gomock.Controller) (*Service, *mocks) {
	m := &mocks{
		storage:  NewMockStorageInterface(ctrl),
		authz:    NewMockAuthorizerInterface(ctrl),
		tx:       NewMockTxManagerInterface(ctrl),
		notifier: NewMockNotifierInterface(ctrl),
		auditor:  NewMockAuditorInterface(ctrl),
	}

	m.tx.EXPECT().WithTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) }).
		AnyTimes()

	logger := logging.NewNoopLogger()
	s := NewService(m.storage, m.authz, m.tx, m.notifier, m.auditor, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

	return s, m
}

func strPtr(s string) *string { return &s }

var (
	landlord = authorization.Principal{ID: "landlord-1", Role: types.RoleLandlord}
	admin    = authorization.Principal{ID: "admin-1", Role: types.RoleAdmin}
	tenant   = authorization.Principal{ID: "tenant-1", Role: types.RoleTenant}
)

func TestService_CreateProperty(t *testing.T) {
	testCases := []struct {
		name         string
		principal    authorization.Principal
		input        *types.Property
		seededRole   types.AssociationRole
		expectedKind apperrors.Kind
	}{
		{
			name:       "landlord is seeded as landlord",
			principal:  landlord,
			input:      &types.Property{Name: "Elm Court"},
			seededRole: types.AssocLandlord,
		},
		{
			name:       "admin is seeded as property manager",
			principal:  admin,
			input:      &types.Property{Name: "Elm Court"},
			seededRole: types.AssocPropertyManager,
		},
		{
			name:         "tenant cannot create properties",
			principal:    tenant,
			input:        &types.Property{Name: "Elm Court"},
			expectedKind: apperrors.KindAuthorization,
		},
		{
			name:         "name is required",
			principal:    landlord,
			input:        &types.Property{Name: "  "},
			expectedKind: apperrors.KindValidation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl)

			if tc.expectedKind == "" {
				m.storage.EXPECT().CreateProperty(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *types.Property) (*types.Property, error) {
						if p.CreatedBy != tc.principal.ID || !p.IsActive {
							t.Errorf("unexpected property %+v", p)
						}
						p.ID = "prop-1"
						return p, nil
					})
				m.storage.EXPECT().UpsertAssociation(gomock.Any(), tc.principal.ID, "prop-1", nil, types.NewRoleSet(tc.seededRole), tc.principal.ID).
					Return(&types.PropertyUser{ID: "assoc-1"}, nil)
				m.auditor.EXPECT().Record(gomock.Any(), tc.principal.ID, "property.create", "property", "prop-1", gomock.Any())
			}

			prop, err := s.CreateProperty(context.Background(), tc.principal, tc.input)

			if tc.expectedKind != "" {
				if apperrors.KindOf(err) != tc.expectedKind {
					t.Errorf("expected %s, got %v", tc.expectedKind, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if prop.ID != "prop-1" {
				t.Errorf("expected prop-1, got %s", prop.ID)
			}
		})
	}
}

func TestService_DeleteProperty(t *testing.T) {
	testCases := []struct {
		name         string
		allowed      bool
		setupMocks   func(*mocks)
		expectedKind apperrors.Kind
	}{
		{
			name:    "cascades when no active lease exists",
			allowed: true,
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetProperty(gomock.Any(), "prop-1").Return(&types.Property{ID: "prop-1"}, nil)
				m.storage.EXPECT().CountLeases(gomock.Any(), storage.LeaseFilter{PropertyID: "prop-1", Status: types.LeaseActive}).Return(0, nil)
				m.storage.EXPECT().DeletePropertyCascade(gomock.Any(), "prop-1").Return(map[string]int64{"units": 2, "leases": 1}, nil)
				m.auditor.EXPECT().Record(gomock.Any(), landlord.ID, "property.delete", "property", "prop-1", map[string]interface{}{"units": int64(2), "leases": int64(1)})
			},
		},
		{
			name:    "blocked by an active lease",
			allowed: true,
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetProperty(gomock.Any(), "prop-1").Return(&types.Property{ID: "prop-1"}, nil)
				m.storage.EXPECT().CountLeases(gomock.Any(), gomock.Any()).Return(1, nil)
			},
			expectedKind: apperrors.KindDependency,
		},
		{
			name:    "missing property",
			allowed: true,
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetProperty(gomock.Any(), "prop-1").Return(nil, storage.ErrNotFound)
			},
			expectedKind: apperrors.KindNotFound,
		},
		{
			name:    "cascade failure rolls back",
			allowed: true,
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetProperty(gomock.Any(), "prop-1").Return(&types.Property{ID: "prop-1"}, nil)
				m.storage.EXPECT().CountLeases(gomock.Any(), gomock.Any()).Return(0, nil)
				m.storage.EXPECT().DeletePropertyCascade(gomock.Any(), "prop-1").Return(nil, errors.New("connection reset"))
			},
			expectedKind: apperrors.KindInternal,
		},
		{
			name:         "not a manager",
			allowed:      false,
			setupMocks:   func(*mocks) {},
			expectedKind: apperrors.KindAuthorization,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl)
			m.authz.EXPECT().CanManageProperty(gomock.Any(), landlord, "prop-1").Return(tc.allowed)
			tc.setupMocks(m)

			err := s.DeleteProperty(context.Background(), landlord, "prop-1")

			if tc.expectedKind == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if apperrors.KindOf(err) != tc.expectedKind {
				t.Errorf("expected %s, got %v", tc.expectedKind, err)
			}
		})
	}
}

func TestService_AssignUser(t *testing.T) {
	unitID := "unit-1"
	vacant := func() *types.Unit {
		return &types.Unit{ID: unitID, PropertyID: "prop-1", UnitName: "1A", Status: types.UnitVacant}
	}
	otherTenantUnit := storage.AssociationFilter{
		UserID:        "tenant-1",
		PropertyID:    "prop-1",
		ExcludeUnitID: unitID,
		Roles:         types.NewRoleSet(types.AssocTenant),
		ActiveOnly:    true,
	}

	testCases := []struct {
		name         string
		input        *Assignment
		setupMocks   func(*mocks)
		expectedKind apperrors.Kind
	}{
		{
			name:  "tenant assignment occupies the unit",
			input: &Assignment{UserID: "tenant-1", UnitID: &unitID, Roles: types.NewRoleSet(types.AssocTenant)},
			setupMocks: func(m *mocks) {
				m.authz.EXPECT().CanManageProperty(gomock.Any(), landlord, "prop-1").Return(true)
				m.storage.EXPECT().GetProperty(gomock.Any(), "prop-1").Return(&types.Property{ID: "prop-1", Name: "Elm Court"}, nil)
				m.storage.EXPECT().GetUser(gomock.Any(), "tenant-1").Return(&types.User{ID: "tenant-1"}, nil)
				m.storage.EXPECT().GetUnitForUpdate(gomock.Any(), unitID).Return(vacant(), nil)
				m.storage.EXPECT().CountLeases(gomock.Any(), storage.LeaseFilter{UnitID: unitID, Status: types.LeaseActive}).Return(0, nil).Times(2)
				m.storage.EXPECT().ExistsAssociation(gomock.Any(), otherTenantUnit).Return(false, nil)
				m.storage.EXPECT().UpsertAssociation(gomock.Any(), "tenant-1", "prop-1", &unitID, types.NewRoleSet(types.AssocTenant), landlord.ID).
					Return(&types.PropertyUser{ID: "assoc-1", IsActive: true}, nil)
				m.storage.EXPECT().CountAssociations(gomock.Any(), gomock.Any()).Return(1, nil)
				m.storage.EXPECT().SetUnitStatus(gomock.Any(), unitID, types.UnitOccupied).Return(nil)
				m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any())
				m.auditor.EXPECT().Record(gomock.Any(), landlord.ID, "property.assign_user", "property", "prop-1", gomock.Any())
			},
		},
		{
			name:  "unit with an active lease",
			input: &Assignment{UserID: "tenant-1", UnitID: &unitID, Roles: types.NewRoleSet(types.AssocTenant)},
			setupMocks: func(m *mocks) {
				m.authz.EXPECT().CanManageProperty(gomock.Any(), landlord, "prop-1").Return(true)
				m.storage.EXPECT().GetProperty(gomock.Any(), "prop-1").Return(&types.Property{ID: "prop-1"}, nil)
				m.storage.EXPECT().GetUser(gomock.Any(), "tenant-1").Return(&types.User{ID: "tenant-1"}, nil)
				m.storage.EXPECT().GetUnitForUpdate(gomock.Any(), unitID).Return(vacant(), nil)
				m.storage.EXPECT().CountLeases(gomock.Any(), gomock.Any()).Return(1, nil)
			},
			expectedKind: apperrors.KindConflict,
		},
		{
			name:  "tenant already renting another unit of the property",
			input: &Assignment{UserID: "tenant-1", UnitID: &unitID, Roles: types.NewRoleSet(types.AssocTenant)},
			setupMocks: func(m *mocks) {
				m.authz.EXPECT().CanManageProperty(gomock.Any(), landlord, "prop-1").Return(true)
				m.storage.EXPECT().GetProperty(gomock.Any(), "prop-1").Return(&types.Property{ID: "prop-1"}, nil)
				m.storage.EXPECT().GetUser(gomock.Any(), "tenant-1").Return(&types.User{ID: "tenant-1"}, nil)
				m.storage.EXPECT().GetUnitForUpdate(gomock.Any(), unitID).Return(vacant(), nil)
				m.storage.EXPECT().CountLeases(gomock.Any(), gomock.Any()).Return(0, nil)
				m.storage.EXPECT().ExistsAssociation(gomock.Any(), otherTenantUnit).Return(true, nil)
			},
			expectedKind: apperrors.KindConflict,
		},
		{
			name:  "unit of another property",
			input: &Assignment{UserID: "tenant-1", UnitID: &unitID, Roles: types.NewRoleSet(types.AssocTenant)},
			setupMocks: func(m *mocks) {
				m.authz.EXPECT().CanManageProperty(gomock.Any(), landlord, "prop-1").Return(true)
				m.storage.EXPECT().GetProperty(gomock.Any(), "prop-1").Return(&types.Property{ID: "prop-1"}, nil)
				m.storage.EXPECT().GetUser(gomock.Any(), "tenant-1").Return(&types.User{ID: "tenant-1"}, nil)
				m.storage.EXPECT().GetUnitForUpdate(gomock.Any(), unitID).Return(&types.Unit{ID: unitID, PropertyID: "prop-2"}, nil)
			},
			expectedKind: apperrors.KindValidation,
		},
		{
			name:  "roles already active",
			input: &Assignment{UserID: "pm-1", Roles: types.NewRoleSet(types.AssocPropertyManager)},
			setupMocks: func(m *mocks) {
				m.authz.EXPECT().CanManageProperty(gomock.Any(), landlord, "prop-1").Return(true)
				m.storage.EXPECT().GetProperty(gomock.Any(), "prop-1").Return(&types.Property{ID: "prop-1"}, nil)
				m.storage.EXPECT().GetUser(gomock.Any(), "pm-1").Return(&types.User{ID: "pm-1"}, nil)
				m.storage.EXPECT().UpsertAssociation(gomock.Any(), "pm-1", "prop-1", nil, gomock.Any(), landlord.ID).Return(nil, storage.ErrAlreadyActive)
			},
			expectedKind: apperrors.KindConflict,
		},
		{
			name:         "tenant without unit",
			input:        &Assignment{UserID: "tenant-1", Roles: types.NewRoleSet(types.AssocTenant)},
			setupMocks:   func(*mocks) {},
			expectedKind: apperrors.KindValidation,
		},
		{
			name:         "manager with unit",
			input:        &Assignment{UserID: "pm-1", UnitID: &unitID, Roles: types.NewRoleSet(types.AssocPropertyManager)},
			setupMocks:   func(*mocks) {},
			expectedKind: apperrors.KindValidation,
		},
		{
			name:         "tenant combined with landlord",
			input:        &Assignment{UserID: "x", UnitID: &unitID, Roles: types.NewRoleSet(types.AssocTenant, types.AssocLandlord)},
			setupMocks:   func(*mocks) {},
			expectedKind: apperrors.KindValidation,
		},
		{
			name:  "not a manager",
			input: &Assignment{UserID: "pm-1", Roles: types.NewRoleSet(types.AssocPropertyManager)},
			setupMocks: func(m *mocks) {
				m.authz.EXPECT().CanManageProperty(gomock.Any(), landlord, "prop-1").Return(false)
			},
			expectedKind: apperrors.KindAuthorization,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl)
			tc.setupMocks(m)

			assoc, err := s.AssignUser(context.Background(), landlord, "prop-1", tc.input)

			if tc.expectedKind != "" {
				if apperrors.KindOf(err) != tc.expectedKind {
					t.Errorf("expected %s, got %v", tc.expectedKind, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !assoc.IsActive {
				t.Errorf("expected an active association")
			}
		})
	}
}

func TestService_RemoveUser(t *testing.T) {
	unitID := "unit-1"
	occupied := func() *types.Unit {
		return &types.Unit{ID: unitID, PropertyID: "prop-1", UnitName: "1A", Status: types.UnitOccupied}
	}
	input := func() *Assignment {
		return &Assignment{UserID: "tenant-1", UnitID: &unitID, Roles: types.NewRoleSet(types.AssocTenant)}
	}

	testCases := []struct {
		name         string
		setupMocks   func(*mocks)
		expectedKind apperrors.Kind
	}{
		{
			name: "last tenant leaving vacates the unit",
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetProperty(gomock.Any(), "prop-1").Return(&types.Property{ID: "prop-1", Name: "Elm Court"}, nil)
				m.storage.EXPECT().GetUnitForUpdate(gomock.Any(), unitID).Return(occupied(), nil)
				m.storage.EXPECT().CountLeases(gomock.Any(), storage.LeaseFilter{UnitID: unitID, TenantID: "tenant-1", Status: types.LeaseActive}).Return(0, nil)
				m.storage.EXPECT().DeactivateRoles(gomock.Any(), "tenant-1", "prop-1", types.NewRoleSet(types.AssocTenant), &unitID).
					Return(&types.PropertyUser{ID: "assoc-1", IsActive: false}, nil)
				m.storage.EXPECT().CountAssociations(gomock.Any(), gomock.Any()).Return(0, nil)
				m.storage.EXPECT().CountLeases(gomock.Any(), storage.LeaseFilter{UnitID: unitID, Status: types.LeaseActive}).Return(0, nil)
				m.storage.EXPECT().SetUnitStatus(gomock.Any(), unitID, types.UnitVacant).Return(nil)
				m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any())
				m.auditor.EXPECT().Record(gomock.Any(), landlord.ID, "property.remove_user", "property", "prop-1", gomock.Any())
			},
		},
		{
			name: "another tenant keeps the unit occupied",
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetProperty(gomock.Any(), "prop-1").Return(&types.Property{ID: "prop-1"}, nil)
				m.storage.EXPECT().GetUnitForUpdate(gomock.Any(), unitID).Return(occupied(), nil)
				m.storage.EXPECT().CountLeases(gomock.Any(), gomock.Any()).Return(0, nil).Times(2)
				m.storage.EXPECT().DeactivateRoles(gomock.Any(), "tenant-1", "prop-1", gomock.Any(), &unitID).Return(&types.PropertyUser{ID: "assoc-1"}, nil)
				m.storage.EXPECT().CountAssociations(gomock.Any(), gomock.Any()).Return(1, nil)
				m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any())
				m.auditor.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
			},
		},
		{
			name: "tenant with an active lease",
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetProperty(gomock.Any(), "prop-1").Return(&types.Property{ID: "prop-1"}, nil)
				m.storage.EXPECT().GetUnitForUpdate(gomock.Any(), unitID).Return(occupied(), nil)
				m.storage.EXPECT().CountLeases(gomock.Any(), gomock.Any()).Return(1, nil)
			},
			expectedKind: apperrors.KindDependency,
		},
		{
			name: "no active association",
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetProperty(gomock.Any(), "prop-1").Return(&types.Property{ID: "prop-1"}, nil)
				m.storage.EXPECT().GetUnitForUpdate(gomock.Any(), unitID).Return(occupied(), nil)
				m.storage.EXPECT().CountLeases(gomock.Any(), gomock.Any()).Return(0, nil)
				m.storage.EXPECT().DeactivateRoles(gomock.Any(), "tenant-1", "prop-1", gomock.Any(), &unitID).Return(nil, storage.ErrNotFound)
			},
			expectedKind: apperrors.KindNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl)
			m.authz.EXPECT().CanManageProperty(gomock.Any(), landlord, "prop-1").Return(true)
			tc.setupMocks(m)

			_, err := s.RemoveUser(context.Background(), landlord, "prop-1", input())

			if tc.expectedKind == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if apperrors.KindOf(err) != tc.expectedKind {
				t.Errorf("expected %s, got %v", tc.expectedKind, err)
			}
		})
	}
}

func TestService_SetUnitMaintenance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)
	unit := &types.Unit{ID: "unit-1", PropertyID: "prop-1", Status: types.UnitVacant}

	m.storage.EXPECT().GetUnit(gomock.Any(), "unit-1").Return(unit, nil)
	m.authz.EXPECT().CanManageProperty(gomock.Any(), landlord, "prop-1").Return(true)
	m.storage.EXPECT().GetUnitForUpdate(gomock.Any(), "unit-1").Return(&types.Unit{ID: "unit-1", PropertyID: "prop-1", Status: types.UnitVacant}, nil)
	m.storage.EXPECT().SetUnitMaintenanceFlag(gomock.Any(), "unit-1", types.UnitUnderMaintenance).Return(nil)
	m.storage.EXPECT().CountAssociations(gomock.Any(), gomock.Any()).Return(0, nil)
	m.storage.EXPECT().CountLeases(gomock.Any(), gomock.Any()).Return(0, nil)
	m.storage.EXPECT().SetUnitStatus(gomock.Any(), "unit-1", types.UnitUnderMaintenance).Return(nil)
	m.auditor.EXPECT().Record(gomock.Any(), landlord.ID, "unit.maintenance", "unit", "unit-1", gomock.Any())

	got, err := s.SetUnitMaintenance(context.Background(), landlord, "unit-1", types.UnitUnderMaintenance)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != types.UnitUnderMaintenance {
		t.Errorf("expected under_maintenance, got %s", got.Status)
	}

	if _, err := s.SetUnitMaintenance(context.Background(), landlord, "unit-1", types.UnitOccupied); apperrors.KindOf(err) != apperrors.KindValidation {
		t.Errorf("expected validation error for occupied flag, got %v", err)
	}
}

func TestService_CreateLease(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	unit := func() *types.Unit {
		return &types.Unit{ID: "unit-1", PropertyID: "prop-1", UnitName: "1A", Status: types.UnitOccupied}
	}
	lease := func() *types.Lease {
		return &types.Lease{UnitID: "unit-1", TenantID: "tenant-1", StartDate: start, EndDate: end, MonthlyRent: 1000}
	}

	testCases := []struct {
		name         string
		input        *types.Lease
		setupMocks   func(*mocks)
		expectedKind apperrors.Kind
	}{
		{
			name:  "creates an active lease",
			input: lease(),
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetUnit(gomock.Any(), "unit-1").Return(unit(), nil)
				m.authz.EXPECT().CanManageProperty(gomock.Any(), landlord, "prop-1").Return(true)
				m.storage.EXPECT().GetUnitForUpdate(gomock.Any(), "unit-1").Return(unit(), nil)
				m.storage.EXPECT().ExistsAssociation(gomock.Any(), gomock.Any()).Return(true, nil)
				m.storage.EXPECT().CountLeases(gomock.Any(), gomock.Any()).Return(0, nil)
				m.storage.EXPECT().CreateLease(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, l *types.Lease) (*types.Lease, error) {
						if l.Status != types.LeaseActive || l.Currency != defaultCurrency || l.PropertyID != "prop-1" {
							t.Errorf("unexpected lease %+v", l)
						}
						l.ID = "lease-1"
						return l, nil
					})
				m.storage.EXPECT().CountAssociations(gomock.Any(), gomock.Any()).Return(1, nil)
				m.storage.EXPECT().CountLeases(gomock.Any(), gomock.Any()).Return(1, nil)
				m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any())
				m.auditor.EXPECT().Record(gomock.Any(), landlord.ID, "lease.create", "lease", "lease-1", gomock.Any())
			},
		},
		{
			name:  "tenant not associated with the unit",
			input: lease(),
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetUnit(gomock.Any(), "unit-1").Return(unit(), nil)
				m.authz.EXPECT().CanManageProperty(gomock.Any(), landlord, "prop-1").Return(true)
				m.storage.EXPECT().GetUnitForUpdate(gomock.Any(), "unit-1").Return(unit(), nil)
				m.storage.EXPECT().ExistsAssociation(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			expectedKind: apperrors.KindValidation,
		},
		{
			name:  "unit already leased",
			input: lease(),
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetUnit(gomock.Any(), "unit-1").Return(unit(), nil)
				m.authz.EXPECT().CanManageProperty(gomock.Any(), landlord, "prop-1").Return(true)
				m.storage.EXPECT().GetUnitForUpdate(gomock.Any(), "unit-1").Return(unit(), nil)
				m.storage.EXPECT().ExistsAssociation(gomock.Any(), gomock.Any()).Return(true, nil)
				m.storage.EXPECT().CountLeases(gomock.Any(), gomock.Any()).Return(1, nil)
			},
			expectedKind: apperrors.KindConflict,
		},
		{
			name:  "concurrent active lease hits the unique index",
			input: lease(),
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetUnit(gomock.Any(), "unit-1").Return(unit(), nil)
				m.authz.EXPECT().CanManageProperty(gomock.Any(), landlord, "prop-1").Return(true)
				m.storage.EXPECT().GetUnitForUpdate(gomock.Any(), "unit-1").Return(unit(), nil)
				m.storage.EXPECT().ExistsAssociation(gomock.Any(), gomock.Any()).Return(true, nil)
				m.storage.EXPECT().CountLeases(gomock.Any(), gomock.Any()).Return(0, nil)
				m.storage.EXPECT().CreateLease(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
			},
			expectedKind: apperrors.KindConflict,
		},
		{
			name:         "end before start",
			input:        &types.Lease{UnitID: "unit-1", TenantID: "tenant-1", StartDate: end, EndDate: start, MonthlyRent: 1000},
			setupMocks:   func(*mocks) {},
			expectedKind: apperrors.KindValidation,
		},
		{
			name:         "non positive rent",
			input:        &types.Lease{UnitID: "unit-1", TenantID: "tenant-1", StartDate: start, EndDate: end},
			setupMocks:   func(*mocks) {},
			expectedKind: apperrors.KindValidation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl)
			tc.setupMocks(m)

			_, err := s.CreateLease(context.Background(), landlord, tc.input)

			if tc.expectedKind == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if apperrors.KindOf(err) != tc.expectedKind {
				t.Errorf("expected %s, got %v", tc.expectedKind, err)
			}
		})
	}
}

func TestService_TerminateLease(t *testing.T) {
	testCases := []struct {
		name         string
		status       types.LeaseStatus
		expectedKind apperrors.Kind
	}{
		{name: "active lease", status: types.LeaseActive},
		{name: "already terminated", status: types.LeaseTerminated, expectedKind: apperrors.KindConflict},
		{name: "expired", status: types.LeaseExpired, expectedKind: apperrors.KindConflict},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl)
			lease := &types.Lease{ID: "lease-1", PropertyID: "prop-1", UnitID: "unit-1", TenantID: "tenant-1", Status: tc.status}

			m.storage.EXPECT().GetLease(gomock.Any(), "lease-1").Return(lease, nil)
			m.authz.EXPECT().CanManageProperty(gomock.Any(), landlord, "prop-1").Return(true)
			m.storage.EXPECT().GetUnitForUpdate(gomock.Any(), "unit-1").Return(&types.Unit{ID: "unit-1", PropertyID: "prop-1", Status: types.UnitOccupied}, nil)
			m.storage.EXPECT().GetLeaseForUpdate(gomock.Any(), "lease-1").Return(lease, nil)

			if tc.expectedKind == "" {
				m.storage.EXPECT().SetLeaseStatus(gomock.Any(), "lease-1", types.LeaseTerminated).
					Return(&types.Lease{ID: "lease-1", Status: types.LeaseTerminated}, nil)
				m.storage.EXPECT().DeactivateLeaseSchedules(gomock.Any(), "lease-1").Return(int64(1), nil)
				m.storage.EXPECT().CountAssociations(gomock.Any(), gomock.Any()).Return(1, nil)
				m.storage.EXPECT().CountLeases(gomock.Any(), gomock.Any()).Return(0, nil)
				m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any())
				m.auditor.EXPECT().Record(gomock.Any(), landlord.ID, "lease.terminate", "lease", "lease-1", gomock.Any())
			}

			got, err := s.TerminateLease(context.Background(), landlord, "lease-1")

			if tc.expectedKind != "" {
				if apperrors.KindOf(err) != tc.expectedKind {
					t.Errorf("expected %s, got %v", tc.expectedKind, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Status != types.LeaseTerminated {
				t.Errorf("expected terminated, got %s", got.Status)
			}
		})
	}
}

func TestService_ExpireLeases(t *testing.T) {
	now := time.Date(2025, 1, 2, 15, 0, 0, 0, time.UTC)
	asOf := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name       string
		setupMocks func(*mocks)
	}{
		{
			name: "units are locked before their leases",
			setupMocks: func(m *mocks) {
				gomock.InOrder(
					m.storage.EXPECT().LockUnitsWithExpiringLeases(gomock.Any(), asOf).
						Return([]*types.Unit{{ID: "unit-1", Status: types.UnitOccupied}}, nil),
					m.storage.EXPECT().ExpireLeases(gomock.Any(), asOf).
						Return([]*types.Lease{{ID: "lease-1", UnitID: "unit-1"}}, nil),
					m.storage.EXPECT().DeactivateLeaseSchedules(gomock.Any(), "lease-1").Return(int64(1), nil),
					m.storage.EXPECT().CountAssociations(gomock.Any(), gomock.Any()).Return(0, nil),
					m.storage.EXPECT().CountLeases(gomock.Any(), gomock.Any()).Return(0, nil),
					m.storage.EXPECT().SetUnitStatus(gomock.Any(), "unit-1", types.UnitVacant).Return(nil),
				)
				m.auditor.EXPECT().Record(gomock.Any(), authorization.SystemPrincipal.ID, "lease.expire", "lease", "lease-1", gomock.Any())
			},
		},
		{
			name: "unit missing from the locked set is locked afterwards",
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().LockUnitsWithExpiringLeases(gomock.Any(), asOf).Return([]*types.Unit{}, nil)
				m.storage.EXPECT().ExpireLeases(gomock.Any(), asOf).
					Return([]*types.Lease{{ID: "lease-1", UnitID: "unit-1"}}, nil)
				m.storage.EXPECT().DeactivateLeaseSchedules(gomock.Any(), "lease-1").Return(int64(1), nil)
				m.storage.EXPECT().GetUnitForUpdate(gomock.Any(), "unit-1").Return(&types.Unit{ID: "unit-1", Status: types.UnitOccupied}, nil)
				m.storage.EXPECT().CountAssociations(gomock.Any(), gomock.Any()).Return(0, nil)
				m.storage.EXPECT().CountLeases(gomock.Any(), gomock.Any()).Return(0, nil)
				m.storage.EXPECT().SetUnitStatus(gomock.Any(), "unit-1", types.UnitVacant).Return(nil)
				m.auditor.EXPECT().Record(gomock.Any(), authorization.SystemPrincipal.ID, "lease.expire", "lease", "lease-1", gomock.Any())
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl)
			tc.setupMocks(m)

			n, err := s.ExpireLeases(context.Background(), now)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if n != 1 {
				t.Errorf("expected 1 expired lease, got %d", n)
			}
		})
	}
}

func TestService_ScheduleMaintenance(t *testing.T) {
	scheduledAt := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	testCases := []struct {
		name         string
		assignee     *types.Assignee
		setupMocks   func(*mocks)
		expectedKind apperrors.Kind
	}{
		{
			name:     "assigned to an associated user",
			assignee: types.UserAssignee("pm-1"),
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().ExistsAssociation(gomock.Any(), storage.AssociationFilter{UserID: "pm-1", PropertyID: "prop-1", ActiveOnly: true}).Return(true, nil)
				m.storage.EXPECT().CreateScheduledMaintenance(gomock.Any(), gomock.Any()).Return(&types.ScheduledMaintenance{ID: "m-1"}, nil)
				m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any())
				m.auditor.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
			},
		},
		{
			name:     "assigned to a vendor",
			assignee: types.VendorAssignee("vendor-1"),
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetUser(gomock.Any(), "vendor-1").Return(&types.User{ID: "vendor-1", Role: types.RoleVendor}, nil)
				m.storage.EXPECT().CreateScheduledMaintenance(gomock.Any(), gomock.Any()).Return(&types.ScheduledMaintenance{ID: "m-1"}, nil)
				m.auditor.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
			},
		},
		{
			name:     "vendor kind on a non vendor user",
			assignee: types.VendorAssignee("tenant-1"),
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetUser(gomock.Any(), "tenant-1").Return(&types.User{ID: "tenant-1", Role: types.RoleTenant}, nil)
			},
			expectedKind: apperrors.KindValidation,
		},
		{
			name:     "user not associated",
			assignee: types.UserAssignee("stranger"),
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().ExistsAssociation(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			expectedKind: apperrors.KindValidation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl)
			m.authz.EXPECT().CanManageProperty(gomock.Any(), landlord, "prop-1").Return(true)
			m.storage.EXPECT().GetProperty(gomock.Any(), "prop-1").Return(&types.Property{ID: "prop-1"}, nil)
			tc.setupMocks(m)

			_, err := s.ScheduleMaintenance(context.Background(), landlord, &types.ScheduledMaintenance{
				PropertyID:  "prop-1",
				Title:       "Boiler service",
				ScheduledAt: scheduledAt,
				AssignedTo:  tc.assignee,
			})

			if tc.expectedKind == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if apperrors.KindOf(err) != tc.expectedKind {
				t.Errorf("expected %s, got %v", tc.expectedKind, err)
			}
		})
	}
}

func TestService_ListProperties(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)
	page := storage.Page{Page: 1, Size: 10}

	m.storage.EXPECT().ListProperties(gomock.Any(), "", page).Return([]*types.Property{{ID: "a"}, {ID: "b"}}, nil)
	m.storage.EXPECT().ListProperties(gomock.Any(), landlord.ID, page).Return([]*types.Property{{ID: "a"}}, nil)

	all, err := s.ListProperties(context.Background(), admin, page)
	if err != nil || len(all) != 2 {
		t.Errorf("expected admin to see 2 properties, got %d (%v)", len(all), err)
	}

	own, err := s.ListProperties(context.Background(), landlord, page)
	if err != nil || len(own) != 1 {
		t.Errorf("expected landlord to see 1 property, got %d (%v)", len(own), err)
	}
}
