// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package blob holds the stores for uploaded files.
package blob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/canonical/property-service/internal/logging"
	"github.com/canonical/property-service/internal/monitoring"
	"github.com/canonical/property-service/internal/tracing"
)

var (
	ErrInvalidKey = errors.New("invalid blob key")
	ErrDisabled   = errors.New("blob store is not configured")
)

// FSStore keeps blobs as files below a root directory.
type FSStore struct {
	root string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *FSStore) path(key string) (string, error) {
	clean := filepath.Clean("/" + key)
	if key == "" || strings.Contains(key, "..") || clean == "/" {
		return "", ErrInvalidKey
	}
	return filepath.Join(s.root, clean), nil
}

func (s *FSStore) Upload(ctx context.Context, key string, r io.Reader) (int64, error) {
	_, span := s.tracer.Start(ctx, "blob.FSStore.Upload")
	defer span.End()

	p, err := s.path(key)
	if err != nil {
		return 0, err
	}

	if err := os.MkdirAll(filepath.Dir(p), 0o750); err != nil {
		return 0, fmt.Errorf("failed to create blob directory: %w", err)
	}

	// a failed upload never leaves a truncated blob under the final key
	tmp, err := os.CreateTemp(filepath.Dir(p), ".upload-*")
	if err != nil {
		return 0, fmt.Errorf("failed to create blob: %w", err)
	}
	defer os.Remove(tmp.Name())

	n, err := io.Copy(tmp, r)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return 0, fmt.Errorf("failed to write blob: %w", err)
	}

	if err := os.Rename(tmp.Name(), p); err != nil {
		return 0, fmt.Errorf("failed to store blob: %w", err)
	}

	return n, nil
}

// Delete removes the blob, deleting a missing blob is not an error.
func (s *FSStore) Delete(ctx context.Context, key string) error {
	_, span := s.tracer.Start(ctx, "blob.FSStore.Delete")
	defer span.End()

	p, err := s.path(key)
	if err != nil {
		return err
	}

	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete blob: %w", err)
	}

	return nil
}

func NewFSStore(root string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*FSStore, error) {
	if err := os.MkdirAll(root, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create blob root: %w", err)
	}

	s := new(FSStore)
	s.root = root
	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s, nil
}
