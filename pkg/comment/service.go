// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package comment attaches discussion threads to properties, units, leases
// and rents.
package comment

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/canonical/property-service/internal/apperrors"
	"github.com/canonical/property-service/internal/authorization"
	"github.com/canonical/property-service/internal/logging"
	"github.com/canonical/property-service/internal/monitoring"
	"github.com/canonical/property-service/internal/storage"
	"github.com/canonical/property-service/internal/tracing"
	"github.com/canonical/property-service/internal/types"
)

const maxBodyLength = 2000

// resolver loads the entity a comment context points at and reports whether
// the principal may take part in its thread.
type resolver func(ctx context.Context, p authorization.Principal, id string) (bool, error)

type Service struct {
	storage StorageInterface
	authz   AuthorizerInterface
	tx      TxManagerInterface
	auditor AuditorInterface

	resolvers map[types.ContextType]resolver

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) AddComment(ctx context.Context, p authorization.Principal, target types.CommentContext, body string) (*types.Comment, error) {
	ctx, span := s.tracer.Start(ctx, "comment.Service.AddComment")
	defer span.End()

	body = strings.TrimSpace(body)
	if body == "" {
		return nil, apperrors.Validation("comment body is required")
	}
	if utf8.RuneCountInString(body) > maxBodyLength {
		return nil, apperrors.Validation("comment body exceeds %d characters", maxBodyLength)
	}

	if err := s.authorize(ctx, p, target, "comment.create"); err != nil {
		return nil, err
	}

	var created *types.Comment
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		var err error

		created, err = s.storage.CreateComment(ctx, &types.Comment{Context: target, AuthorID: p.ID, Body: body})
		if err != nil {
			return apperrors.FromStorage(err, "comment")
		}

		s.auditor.Record(ctx, p.ID, "comment.create", "comment", created.ID, map[string]interface{}{
			"context_type": string(target.Type),
			"context_id":   target.ID,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *Service) ListComments(ctx context.Context, p authorization.Principal, target types.CommentContext, page storage.Page) ([]*types.Comment, error) {
	ctx, span := s.tracer.Start(ctx, "comment.Service.ListComments")
	defer span.End()

	if err := s.authorize(ctx, p, target, "comment.list"); err != nil {
		return nil, err
	}

	comments, err := s.storage.ListComments(ctx, target, page)
	if err != nil {
		return nil, apperrors.FromStorage(err, "comments")
	}

	return comments, nil
}

func (s *Service) authorize(ctx context.Context, p authorization.Principal, target types.CommentContext, action string) error {
	resolve, ok := s.resolvers[target.Type]
	if !ok {
		return apperrors.Validation("comments are not supported on %s", target.Type)
	}

	allowed, err := resolve(ctx, p, target.ID)
	if err != nil {
		return err
	}

	if !allowed {
		s.logger.Security().AuthzFailureWithAction(p.ID, action, string(target.Type)+":"+target.ID)
		return apperrors.Forbidden("not allowed to access comments on %s %s", target.Type, target.ID)
	}

	return nil
}

func (s *Service) property(ctx context.Context, p authorization.Principal, id string) (bool, error) {
	if _, err := s.storage.GetProperty(ctx, id); err != nil {
		return false, apperrors.FromStorage(err, "property")
	}
	return s.authz.CanViewProperty(ctx, p, id), nil
}

func (s *Service) unit(ctx context.Context, p authorization.Principal, id string) (bool, error) {
	unit, err := s.storage.GetUnit(ctx, id)
	if err != nil {
		return false, apperrors.FromStorage(err, "unit")
	}
	return s.authz.CanViewProperty(ctx, p, unit.PropertyID), nil
}

func (s *Service) lease(ctx context.Context, p authorization.Principal, id string) (bool, error) {
	lease, err := s.storage.GetLease(ctx, id)
	if err != nil {
		return false, apperrors.FromStorage(err, "lease")
	}
	if lease.TenantID == p.ID {
		return true, nil
	}
	return s.authz.CanViewProperty(ctx, p, lease.PropertyID), nil
}

func (s *Service) rent(ctx context.Context, p authorization.Principal, id string) (bool, error) {
	rent, err := s.storage.GetRent(ctx, id)
	if err != nil {
		return false, apperrors.FromStorage(err, "rent")
	}
	return s.authz.CanAccessRent(ctx, p, rent), nil
}

func NewService(
	storage StorageInterface,
	authz AuthorizerInterface,
	tx TxManagerInterface,
	auditor AuditorInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := &Service{
		storage: storage,
		authz:   authz,
		tx:      tx,
		auditor: auditor,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}

	s.resolvers = map[types.ContextType]resolver{
		types.ContextProperty: s.property,
		types.ContextUnit:     s.unit,
		types.ContextLease:    s.lease,
		types.ContextRent:     s.rent,
	}

	return s
}
