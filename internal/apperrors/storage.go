// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package apperrors

import (
	"errors"

	"github.com/canonical/property-service/internal/storage"
)

// FromStorage classifies a persistence error. Errors that are already
// classified pass through untouched.
func FromStorage(err error, resource string) error {
	if err == nil {
		return nil
	}

	var e *Error
	if errors.As(err, &e) {
		return err
	}

	switch {
	case errors.Is(err, storage.ErrNotFound):
		return NotFound(resource)
	case errors.Is(err, storage.ErrDuplicateKey), errors.Is(err, storage.ErrAlreadyActive):
		return Conflict("%s already exists", resource)
	case errors.Is(err, storage.ErrExclusionViolation):
		return Conflict("%s overlaps an existing one", resource)
	case errors.Is(err, storage.ErrForeignKeyViolation):
		return Validation("%s references a missing entity", resource)
	case errors.Is(err, storage.ErrCheckViolation):
		return Validation("%s violates a data constraint", resource)
	}

	return Internal("failed to access "+resource, err)
}
