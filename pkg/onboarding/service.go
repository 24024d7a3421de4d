// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package onboarding manages documents handed to tenants when they move in.
package onboarding

import (
	"context"
	"errors"
	"fmt"
	"strings"

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

type DocumentInput struct {
	Title       string
	Description string
	Visibility  types.OnboardingVisibility
	PropertyID  *string
	UnitID      *string
	TenantID    *string
	File        *blob.File
}

type DocumentQuery struct {
	PropertyID string
	Page       storage.Page
}

type Service struct {
	storage  StorageInterface
	authz    AuthorizerInterface
	tx       TxManagerInterface
	blobs    BlobStoreInterface
	notifier NotifierInterface
	auditor  AuditorInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// CreateDocument requires management rights on the document's property.
// Documents without a property can only be published by an admin.
func (s *Service) CreateDocument(ctx context.Context, p authorization.Principal, in *DocumentInput) (*types.OnboardingDocument, error) {
	ctx, span := s.tracer.Start(ctx, "onboarding.Service.CreateDocument")
	defer span.End()

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, apperrors.Validation("title is required")
	}

	visibility := in.Visibility
	if visibility == "" {
		visibility = types.VisibilityPropertyTenants
	}
	if !visibility.Valid() {
		return nil, apperrors.Validation("invalid visibility %q", visibility)
	}

	if err := s.checkAudience(ctx, visibility, in); err != nil {
		return nil, err
	}

	allowed := p.IsAdmin()
	if in.PropertyID != nil {
		allowed = s.authz.CanManageProperty(ctx, p, *in.PropertyID)
	}
	if !allowed {
		resource := "onboarding"
		if in.PropertyID != nil {
			resource = "property:" + *in.PropertyID
		}
		s.logger.Security().AuthzFailureWithAction(p.ID, "onboarding.create", resource)
		return nil, apperrors.Forbidden("not allowed to publish onboarding documents here")
	}

	doc := &types.OnboardingDocument{
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		Visibility:  visibility,
		PropertyID:  in.PropertyID,
		UnitID:      in.UnitID,
		TenantID:    in.TenantID,
		CreatedBy:   p.ID,
	}

	var created *types.OnboardingDocument
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		if in.File != nil {
			media, err := s.attach(ctx, p, in.File)
			if err != nil {
				return err
			}
			doc.MediaID = &media.ID
		}

		var err error
		created, err = s.storage.CreateOnboarding(ctx, doc)
		if err != nil {
			return apperrors.FromStorage(err, "onboarding document")
		}

		if created.TenantID != nil {
			s.notifier.Notify(ctx, notification.Payload{
				RecipientID: *created.TenantID,
				Type:        notification.TypeOnboarding,
				Message:     fmt.Sprintf("New onboarding document: %s", created.Title),
				Path:        "/onboarding/" + created.ID,
			})
		}
		s.auditor.Record(ctx, p.ID, "onboarding.create", "onboarding", created.ID, map[string]interface{}{
			"visibility": string(created.Visibility),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// checkAudience enforces the fields each visibility needs to reach its tenants.
func (s *Service) checkAudience(ctx context.Context, v types.OnboardingVisibility, in *DocumentInput) error {
	switch v {
	case types.VisibilityPropertyTenants:
		if in.PropertyID == nil {
			return apperrors.Validation("property_tenants documents require a property")
		}
	case types.VisibilityUnitTenants:
		if in.PropertyID == nil || in.UnitID == nil {
			return apperrors.Validation("unit_tenants documents require a property and a unit")
		}
	case types.VisibilitySpecificTenant:
		if in.TenantID == nil {
			return apperrors.Validation("specific_tenant documents require a tenant")
		}
		if _, err := s.storage.GetUser(ctx, *in.TenantID); err != nil {
			return apperrors.FromStorage(err, "tenant")
		}
	}

	if in.UnitID != nil {
		if in.PropertyID == nil {
			return apperrors.Validation("a unit requires its property")
		}

		unit, err := s.storage.GetUnit(ctx, *in.UnitID)
		if err != nil {
			return apperrors.FromStorage(err, "unit")
		}
		if unit.PropertyID != *in.PropertyID {
			return apperrors.Validation("unit %s does not belong to property %s", unit.ID, *in.PropertyID)
		}
	}

	return nil
}

func (s *Service) attach(ctx context.Context, p authorization.Principal, f *blob.File) (*types.Media, error) {
	key := blob.KeyFor("onboarding", f.Filename)

	size, err := blob.Stage(ctx, s.blobs, key, f, s.logger)
	if err != nil {
		if errors.Is(err, blob.ErrDisabled) {
			return nil, apperrors.Validation("file uploads are not enabled")
		}
		return nil, apperrors.Internal("failed to store file", err)
	}

	media, err := s.storage.CreateMedia(ctx, &types.Media{
		Key:         key,
		Filename:    f.Filename,
		ContentType: strings.TrimSpace(f.ContentType),
		Size:        size,
		UploadedBy:  p.ID,
	})
	if err != nil {
		return nil, apperrors.FromStorage(err, "onboarding file")
	}

	return media, nil
}

func (s *Service) GetDocument(ctx context.Context, p authorization.Principal, id string) (*types.OnboardingDocument, error) {
	ctx, span := s.tracer.Start(ctx, "onboarding.Service.GetDocument")
	defer span.End()

	doc, err := s.storage.GetOnboarding(ctx, id)
	if err != nil {
		return nil, apperrors.FromStorage(err, "onboarding document")
	}

	if !s.authz.CanAccessOnboarding(ctx, p, doc) {
		s.logger.Security().AuthzFailureWithAction(p.ID, "onboarding.read", "onboarding:"+id)
		return nil, apperrors.Forbidden("not allowed to read onboarding document %s", id)
	}

	return doc, nil
}

// ListDocuments narrows the query to documents the principal could reach
// and drops the ones the visibility rules still deny.
func (s *Service) ListDocuments(ctx context.Context, p authorization.Principal, q *DocumentQuery) ([]*types.OnboardingDocument, error) {
	ctx, span := s.tracer.Start(ctx, "onboarding.Service.ListDocuments")
	defer span.End()

	filter := storage.OnboardingFilter{PropertyID: q.PropertyID, Page: q.Page}

	if !p.IsAdmin() {
		visible, err := s.authz.VisiblePropertyIDs(ctx, p)
		if err != nil {
			return nil, apperrors.Internal("failed to resolve visible properties", err)
		}
		filter.Reachable = &storage.Visibility{TenantID: p.ID, PropertyIDs: visible}
	}

	docs, err := s.storage.ListOnboardings(ctx, filter)
	if err != nil {
		return nil, apperrors.FromStorage(err, "onboarding documents")
	}

	if p.IsAdmin() {
		return docs, nil
	}

	allowed := make([]*types.OnboardingDocument, 0, len(docs))
	for _, doc := range docs {
		if s.authz.CanAccessOnboarding(ctx, p, doc) {
			allowed = append(allowed, doc)
		}
	}

	return allowed, nil
}

// DeleteDocument soft deletes the document. Its file, if any, is removed
// once the transaction commits.
func (s *Service) DeleteDocument(ctx context.Context, p authorization.Principal, id string) error {
	ctx, span := s.tracer.Start(ctx, "onboarding.Service.DeleteDocument")
	defer span.End()

	doc, err := s.storage.GetOnboarding(ctx, id)
	if err != nil {
		return apperrors.FromStorage(err, "onboarding document")
	}

	allowed := doc.CreatedBy == p.ID || p.IsAdmin()
	if !allowed && doc.PropertyID != nil {
		allowed = s.authz.CanManageProperty(ctx, p, *doc.PropertyID)
	}
	if !allowed {
		s.logger.Security().AuthzFailureWithAction(p.ID, "onboarding.delete", "onboarding:"+id)
		return apperrors.Forbidden("not allowed to delete onboarding document %s", id)
	}

	return s.tx.WithTx(ctx, func(ctx context.Context) error {
		if err := s.storage.SoftDeleteOnboarding(ctx, id); err != nil {
			return apperrors.FromStorage(err, "onboarding document")
		}

		if doc.MediaID != nil {
			media, err := s.storage.GetMedia(ctx, *doc.MediaID)
			switch {
			case errors.Is(err, storage.ErrNotFound):
				s.logger.Warnf("file %s of onboarding document %s not found", *doc.MediaID, id)
			case err != nil:
				return apperrors.FromStorage(err, "onboarding file")
			default:
				if err := s.storage.DeleteMedia(ctx, media.ID); err != nil {
					return apperrors.FromStorage(err, "onboarding file")
				}
				blob.DiscardOnCommit(ctx, s.blobs, media.Key, s.logger)
			}
		}

		s.auditor.Record(ctx, p.ID, "onboarding.delete", "onboarding", id, nil)
		return nil
	})
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
	return &Service{
		storage:  storage,
		authz:    authz,
		tx:       tx,
		blobs:    blobs,
		notifier: notifier,
		auditor:  auditor,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}
