// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package onboarding

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

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

//go:generate mockgen -build_flags=--mod=mod -package onboarding -destination ./mock_interfaces.go -source=./interfaces.go

type mocks struct {
	storage  *MockStorageInterface
	authz    *MockAuthorizerInterface
	tx       *MockTxManagerInterface
	blobs    *MockBlobStoreInterface
	notifier *MockNotifierInterface
	auditor  *MockAuditorInterface
}

var (
	landlord = authorization.Principal{ID: "landlord-1", Role: types.RoleLandlord}
	admin    = authorization.Principal{ID: "admin-1", Role: types.RoleAdmin}
	tenant   = authorization.Principal{ID: "tenant-1", Role: types.RoleTenant}
)

func newTestService(ctrl *gomock.Controller) (*Service, *mocks) {
	m := &mocks{
		storage:  NewMockStorageInterface(ctrl),
		authz:    NewMockAuthorizerInterface(ctrl),
		tx:       NewMockTxManagerInterface(ctrl),
		blobs:    NewMockBlobStoreInterface(ctrl),
		notifier: NewMockNotifierInterface(ctrl),
		auditor:  NewMockAuditorInterface(ctrl),
	}

	m.tx.EXPECT().WithTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) }).
		AnyTimes()

	logger := logging.NewNoopLogger()
	return NewService(m.storage, m.authz, m.tx, m.blobs, m.notifier, m.auditor, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger), m
}

func strPtr(s string) *string { return &s }

func TestService_CreateDocument(t *testing.T) {
	testCases := []struct {
		name         string
		principal    authorization.Principal
		input        *DocumentInput
		setupMocks   func(*mocks)
		expectedKind apperrors.Kind
	}{
		{
			name:      "property document defaults to property tenants",
			principal: landlord,
			input:     &DocumentInput{Title: " House rules ", PropertyID: strPtr("prop-1")},
			setupMocks: func(m *mocks) {
				m.authz.EXPECT().CanManageProperty(gomock.Any(), landlord, "prop-1").Return(true)
				m.storage.EXPECT().CreateOnboarding(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, d *types.OnboardingDocument) (*types.OnboardingDocument, error) {
						if d.Title != "House rules" || d.Visibility != types.VisibilityPropertyTenants || d.CreatedBy != landlord.ID {
							t.Errorf("unexpected document %+v", d)
						}
						d.ID = "doc-1"
						return d, nil
					})
				m.auditor.EXPECT().Record(gomock.Any(), landlord.ID, "onboarding.create", "onboarding", "doc-1", gomock.Any())
			},
		},
		{
			name:      "specific tenant is notified",
			principal: landlord,
			input: &DocumentInput{
				Title:      "Welcome pack",
				Visibility: types.VisibilitySpecificTenant,
				PropertyID: strPtr("prop-1"),
				TenantID:   strPtr("tenant-1"),
			},
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetUser(gomock.Any(), "tenant-1").Return(&types.User{ID: "tenant-1"}, nil)
				m.authz.EXPECT().CanManageProperty(gomock.Any(), landlord, "prop-1").Return(true)
				m.storage.EXPECT().CreateOnboarding(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, d *types.OnboardingDocument) (*types.OnboardingDocument, error) {
						d.ID = "doc-1"
						return d, nil
					})
				m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).
					Do(func(_ context.Context, p notification.Payload) {
						if p.RecipientID != "tenant-1" || p.Type != notification.TypeOnboarding || p.Path != "/onboarding/doc-1" {
							t.Errorf("unexpected notification %+v", p)
						}
					})
				m.auditor.EXPECT().Record(gomock.Any(), landlord.ID, "onboarding.create", "onboarding", "doc-1", gomock.Any())
			},
		},
		{
			name:      "global document by admin",
			principal: admin,
			input:     &DocumentInput{Title: "Tenant handbook", Visibility: types.VisibilityAllTenants},
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().CreateOnboarding(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, d *types.OnboardingDocument) (*types.OnboardingDocument, error) {
						d.ID = "doc-1"
						return d, nil
					})
				m.auditor.EXPECT().Record(gomock.Any(), admin.ID, "onboarding.create", "onboarding", "doc-1", gomock.Any())
			},
		},
		{
			name:         "global document by landlord",
			principal:    landlord,
			input:        &DocumentInput{Title: "Tenant handbook", Visibility: types.VisibilityAllTenants},
			setupMocks:   func(*mocks) {},
			expectedKind: apperrors.KindAuthorization,
		},
		{
			name:      "property not managed",
			principal: landlord,
			input:     &DocumentInput{Title: "House rules", PropertyID: strPtr("prop-2")},
			setupMocks: func(m *mocks) {
				m.authz.EXPECT().CanManageProperty(gomock.Any(), landlord, "prop-2").Return(false)
			},
			expectedKind: apperrors.KindAuthorization,
		},
		{
			name:         "missing title",
			principal:    landlord,
			input:        &DocumentInput{Title: "  ", PropertyID: strPtr("prop-1")},
			setupMocks:   func(*mocks) {},
			expectedKind: apperrors.KindValidation,
		},
		{
			name:         "unknown visibility",
			principal:    landlord,
			input:        &DocumentInput{Title: "House rules", Visibility: "everyone", PropertyID: strPtr("prop-1")},
			setupMocks:   func(*mocks) {},
			expectedKind: apperrors.KindValidation,
		},
		{
			name:         "property tenants without property",
			principal:    admin,
			input:        &DocumentInput{Title: "House rules", Visibility: types.VisibilityPropertyTenants},
			setupMocks:   func(*mocks) {},
			expectedKind: apperrors.KindValidation,
		},
		{
			name:         "unit tenants without unit",
			principal:    landlord,
			input:        &DocumentInput{Title: "Boiler manual", Visibility: types.VisibilityUnitTenants, PropertyID: strPtr("prop-1")},
			setupMocks:   func(*mocks) {},
			expectedKind: apperrors.KindValidation,
		},
		{
			name:      "unit of another property",
			principal: landlord,
			input: &DocumentInput{
				Title:      "Boiler manual",
				Visibility: types.VisibilityUnitTenants,
				PropertyID: strPtr("prop-1"),
				UnitID:     strPtr("unit-9"),
			},
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetUnit(gomock.Any(), "unit-9").Return(&types.Unit{ID: "unit-9", PropertyID: "prop-2"}, nil)
			},
			expectedKind: apperrors.KindValidation,
		},
		{
			name:      "unknown tenant",
			principal: landlord,
			input: &DocumentInput{
				Title:      "Welcome pack",
				Visibility: types.VisibilitySpecificTenant,
				PropertyID: strPtr("prop-1"),
				TenantID:   strPtr("ghost"),
			},
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetUser(gomock.Any(), "ghost").Return(nil, storage.ErrNotFound)
			},
			expectedKind: apperrors.KindNotFound,
		},
		{
			name:      "uploads disabled",
			principal: landlord,
			input: &DocumentInput{
				Title:      "House rules",
				PropertyID: strPtr("prop-1"),
				File:       &blob.File{Filename: "rules.pdf", Body: strings.NewReader("pdf")},
			},
			setupMocks: func(m *mocks) {
				m.authz.EXPECT().CanManageProperty(gomock.Any(), landlord, "prop-1").Return(true)
				m.blobs.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), blob.ErrDisabled)
			},
			expectedKind: apperrors.KindValidation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl)
			tc.setupMocks(m)

			_, err := s.CreateDocument(context.Background(), tc.principal, tc.input)

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

func TestService_CreateDocumentWithFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)

	m.authz.EXPECT().CanManageProperty(gomock.Any(), landlord, "prop-1").Return(true)
	m.blobs.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, key string, _ io.Reader) (int64, error) {
			if !strings.HasPrefix(key, "onboarding/") || !strings.HasSuffix(key, "-house_rules.pdf") {
				t.Errorf("unexpected key %s", key)
			}
			return 3, nil
		})
	m.storage.EXPECT().CreateMedia(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, md *types.Media) (*types.Media, error) {
			if md.Size != 3 || md.UploadedBy != landlord.ID || md.Filename != "house rules.pdf" {
				t.Errorf("unexpected media %+v", md)
			}
			md.ID = "media-1"
			return md, nil
		})
	m.storage.EXPECT().CreateOnboarding(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d *types.OnboardingDocument) (*types.OnboardingDocument, error) {
			if d.MediaID == nil || *d.MediaID != "media-1" {
				t.Errorf("expected media-1 attached, got %v", d.MediaID)
			}
			d.ID = "doc-1"
			return d, nil
		})
	m.auditor.EXPECT().Record(gomock.Any(), landlord.ID, "onboarding.create", "onboarding", "doc-1", gomock.Any())

	_, err := s.CreateDocument(context.Background(), landlord, &DocumentInput{
		Title:      "House rules",
		PropertyID: strPtr("prop-1"),
		File:       &blob.File{Filename: "house rules.pdf", ContentType: "application/pdf", Body: strings.NewReader("pdf")},
	})
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestService_GetDocument(t *testing.T) {
	doc := &types.OnboardingDocument{ID: "doc-1", Visibility: types.VisibilityPropertyTenants, PropertyID: strPtr("prop-1")}

	testCases := []struct {
		name         string
		allowed      bool
		expectedKind apperrors.Kind
	}{
		{name: "visible", allowed: true},
		{name: "hidden", allowed: false, expectedKind: apperrors.KindAuthorization},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl)
			m.storage.EXPECT().GetOnboarding(gomock.Any(), "doc-1").Return(doc, nil)
			m.authz.EXPECT().CanAccessOnboarding(gomock.Any(), tenant, doc).Return(tc.allowed)

			_, err := s.GetDocument(context.Background(), tenant, "doc-1")

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

func TestService_ListDocuments(t *testing.T) {
	visible := &types.OnboardingDocument{ID: "doc-1", Visibility: types.VisibilityPropertyTenants, PropertyID: strPtr("prop-1")}
	otherUnit := &types.OnboardingDocument{ID: "doc-2", Visibility: types.VisibilityUnitTenants, PropertyID: strPtr("prop-1"), UnitID: strPtr("unit-2")}

	t.Run("tenant sees only reachable documents", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newTestService(ctrl)

		m.authz.EXPECT().VisiblePropertyIDs(gomock.Any(), tenant).Return([]string{"prop-1"}, nil)
		m.storage.EXPECT().ListOnboardings(gomock.Any(), storage.OnboardingFilter{
			Reachable: &storage.Visibility{TenantID: tenant.ID, PropertyIDs: []string{"prop-1"}},
		}).Return([]*types.OnboardingDocument{visible, otherUnit}, nil)
		m.authz.EXPECT().CanAccessOnboarding(gomock.Any(), tenant, visible).Return(true)
		m.authz.EXPECT().CanAccessOnboarding(gomock.Any(), tenant, otherUnit).Return(false)

		docs, err := s.ListDocuments(context.Background(), tenant, &DocumentQuery{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(docs) != 1 || docs[0].ID != "doc-1" {
			t.Errorf("expected only doc-1, got %v", docs)
		}
	})

	t.Run("admin is unrestricted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newTestService(ctrl)

		m.storage.EXPECT().ListOnboardings(gomock.Any(), storage.OnboardingFilter{PropertyID: "prop-1"}).
			Return([]*types.OnboardingDocument{visible, otherUnit}, nil)

		docs, err := s.ListDocuments(context.Background(), admin, &DocumentQuery{PropertyID: "prop-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(docs) != 2 {
			t.Errorf("expected 2 documents, got %d", len(docs))
		}
	})

	t.Run("association lookup fails closed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newTestService(ctrl)

		m.authz.EXPECT().VisiblePropertyIDs(gomock.Any(), tenant).Return(nil, errors.New("connection reset"))

		if _, err := s.ListDocuments(context.Background(), tenant, &DocumentQuery{}); apperrors.KindOf(err) != apperrors.KindInternal {
			t.Errorf("expected internal error, got %v", err)
		}
	})
}

func TestService_DeleteDocument(t *testing.T) {
	testCases := []struct {
		name         string
		principal    authorization.Principal
		doc          *types.OnboardingDocument
		setupMocks   func(*mocks)
		expectedKind apperrors.Kind
	}{
		{
			name:      "creator removes document and file",
			principal: landlord,
			doc:       &types.OnboardingDocument{ID: "doc-1", CreatedBy: landlord.ID, MediaID: strPtr("media-1")},
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().SoftDeleteOnboarding(gomock.Any(), "doc-1").Return(nil)
				m.storage.EXPECT().GetMedia(gomock.Any(), "media-1").Return(&types.Media{ID: "media-1", Key: "onboarding/abc-rules.pdf"}, nil)
				m.storage.EXPECT().DeleteMedia(gomock.Any(), "media-1").Return(nil)
				// no transaction in the test, the blob goes straight away
				m.blobs.EXPECT().Delete(gomock.Any(), "onboarding/abc-rules.pdf").Return(nil)
				m.auditor.EXPECT().Record(gomock.Any(), landlord.ID, "onboarding.delete", "onboarding", "doc-1", gomock.Any())
			},
		},
		{
			name:      "manager of the property",
			principal: landlord,
			doc:       &types.OnboardingDocument{ID: "doc-1", CreatedBy: "manager-1", PropertyID: strPtr("prop-1")},
			setupMocks: func(m *mocks) {
				m.authz.EXPECT().CanManageProperty(gomock.Any(), landlord, "prop-1").Return(true)
				m.storage.EXPECT().SoftDeleteOnboarding(gomock.Any(), "doc-1").Return(nil)
				m.auditor.EXPECT().Record(gomock.Any(), landlord.ID, "onboarding.delete", "onboarding", "doc-1", gomock.Any())
			},
		},
		{
			name:      "missing file row is tolerated",
			principal: admin,
			doc:       &types.OnboardingDocument{ID: "doc-1", CreatedBy: landlord.ID, MediaID: strPtr("media-1")},
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().SoftDeleteOnboarding(gomock.Any(), "doc-1").Return(nil)
				m.storage.EXPECT().GetMedia(gomock.Any(), "media-1").Return(nil, storage.ErrNotFound)
				m.auditor.EXPECT().Record(gomock.Any(), admin.ID, "onboarding.delete", "onboarding", "doc-1", gomock.Any())
			},
		},
		{
			name:      "tenant",
			principal: tenant,
			doc:       &types.OnboardingDocument{ID: "doc-1", CreatedBy: landlord.ID, PropertyID: strPtr("prop-1")},
			setupMocks: func(m *mocks) {
				m.authz.EXPECT().CanManageProperty(gomock.Any(), tenant, "prop-1").Return(false)
			},
			expectedKind: apperrors.KindAuthorization,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl)
			m.storage.EXPECT().GetOnboarding(gomock.Any(), "doc-1").Return(tc.doc, nil)
			tc.setupMocks(m)

			err := s.DeleteDocument(context.Background(), tc.principal, "doc-1")

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
