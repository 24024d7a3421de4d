// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package onboarding

import (
	"context"
	"io"

	"github.com/canonical/property-service/internal/authorization"
	"github.com/canonical/property-service/internal/notification"
	"github.com/canonical/property-service/internal/storage"
	"github.com/canonical/property-service/internal/types"
)

type ServiceInterface interface {
	CreateDocument(ctx context.Context, p authorization.Principal, in *DocumentInput) (*types.OnboardingDocument, error)
	GetDocument(ctx context.Context, p authorization.Principal, id string) (*types.OnboardingDocument, error)
	ListDocuments(ctx context.Context, p authorization.Principal, q *DocumentQuery) ([]*types.OnboardingDocument, error)
	DeleteDocument(ctx context.Context, p authorization.Principal, id string) error
}

type StorageInterface interface {
	GetUser(ctx context.Context, id string) (*types.User, error)
	GetUnit(ctx context.Context, id string) (*types.Unit, error)
	CreateOnboarding(ctx context.Context, d *types.OnboardingDocument) (*types.OnboardingDocument, error)
	GetOnboarding(ctx context.Context, id string) (*types.OnboardingDocument, error)
	ListOnboardings(ctx context.Context, f storage.OnboardingFilter) ([]*types.OnboardingDocument, error)
	SoftDeleteOnboarding(ctx context.Context, id string) error
	CreateMedia(ctx context.Context, m *types.Media) (*types.Media, error)
	GetMedia(ctx context.Context, id string) (*types.Media, error)
	DeleteMedia(ctx context.Context, id string) error
}

type AuthorizerInterface interface {
	CanManageProperty(ctx context.Context, p authorization.Principal, propertyID string) bool
	CanAccessOnboarding(ctx context.Context, p authorization.Principal, doc *types.OnboardingDocument) bool
	VisiblePropertyIDs(ctx context.Context, p authorization.Principal) ([]string, error)
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
