// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package comment

import (
	"context"

	"github.com/canonical/property-service/internal/authorization"
	"github.com/canonical/property-service/internal/storage"
	"github.com/canonical/property-service/internal/types"
)

type ServiceInterface interface {
	AddComment(ctx context.Context, p authorization.Principal, target types.CommentContext, body string) (*types.Comment, error)
	ListComments(ctx context.Context, p authorization.Principal, target types.CommentContext, page storage.Page) ([]*types.Comment, error)
}

type StorageInterface interface {
	GetProperty(ctx context.Context, id string) (*types.Property, error)
	GetUnit(ctx context.Context, id string) (*types.Unit, error)
	GetLease(ctx context.Context, id string) (*types.Lease, error)
	GetRent(ctx context.Context, id string) (*types.Rent, error)
	CreateComment(ctx context.Context, c *types.Comment) (*types.Comment, error)
	ListComments(ctx context.Context, target types.CommentContext, page storage.Page) ([]*types.Comment, error)
}

type AuthorizerInterface interface {
	CanViewProperty(ctx context.Context, p authorization.Principal, propertyID string) bool
	CanAccessRent(ctx context.Context, p authorization.Principal, rent *types.Rent) bool
}

type TxManagerInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}

type AuditorInterface interface {
	Record(ctx context.Context, actorID, action, resourceType, resourceID string, details map[string]interface{})
}
