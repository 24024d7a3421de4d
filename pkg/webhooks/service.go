// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package webhooks provisions users from identity provider callbacks.
package webhooks

import (
	"context"
	"errors"
	"strings"

	"github.com/canonical/property-service/internal/apperrors"
	"github.com/canonical/property-service/internal/authorization"
	"github.com/canonical/property-service/internal/logging"
	"github.com/canonical/property-service/internal/monitoring"
	"github.com/canonical/property-service/internal/storage"
	"github.com/canonical/property-service/internal/tracing"
	"github.com/canonical/property-service/internal/types"
)

type Service struct {
	storage StorageInterface
	tx      TxManagerInterface
	auditor AuditorInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// HandleRegistration creates the user the first time an identity registers.
// Replays for the same identity return the stored user unchanged.
func (s *Service) HandleRegistration(ctx context.Context, r *Registration) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleRegistration")
	defer span.End()

	s.logger.Debugf("Handling registration for identity %s", r.ID)

	email := strings.TrimSpace(r.Email)
	if r.ID == "" || email == "" {
		return nil, apperrors.Validation("identity id and email are required")
	}

	role := types.RoleTenant
	if r.Role != "" {
		role = types.Role(r.Role)
	}
	// admins are never provisioned from the outside
	if !role.Valid() || role == types.RoleAdmin {
		return nil, apperrors.Validation("role %q cannot be registered", r.Role)
	}

	existing, err := s.storage.GetUser(ctx, r.ID)
	switch {
	case err == nil:
		return existing, nil
	case !errors.Is(err, storage.ErrNotFound):
		return nil, apperrors.Internal("failed to look up user", err)
	}

	if _, err := s.storage.GetUserByEmail(ctx, email); err == nil {
		return nil, apperrors.Conflict("email is registered to another user")
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, apperrors.Internal("failed to look up user", err)
	}

	var created *types.User
	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		var err error

		created, err = s.storage.CreateUser(ctx, &types.User{
			ID:    r.ID,
			Email: email,
			Name:  strings.TrimSpace(r.Name),
			Role:  role,
		})
		if err != nil {
			return apperrors.FromStorage(err, "user")
		}

		s.auditor.Record(ctx, authorization.SystemPrincipal.ID, "user.register", "user", created.ID, map[string]interface{}{
			"role": string(role),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infof("Provisioned user %s with role %s", created.ID, role)
	return created, nil
}

func NewService(
	storage StorageInterface,
	tx TxManagerInterface,
	auditor AuditorInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		tx:      tx,
		auditor: auditor,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
