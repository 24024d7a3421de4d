// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package blob

import (
	"context"
	"io"
	"path"
	"regexp"

	"github.com/google/uuid"

	"github.com/canonical/property-service/internal/db"
	"github.com/canonical/property-service/internal/logging"
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// File is an upload received from a client.
type File struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// KeyFor builds a unique key below prefix that keeps the client filename
// recognisable.
func KeyFor(prefix, filename string) string {
	name := unsafeFilenameChars.ReplaceAllString(path.Base(filename), "_")
	if name == "" || name == "." || name == "_" {
		name = "file"
	}
	return path.Join(prefix, uuid.NewString()+"-"+name)
}

// Stage uploads the file and registers its removal should the ambient
// transaction roll back.
func Stage(ctx context.Context, store StoreInterface, key string, f *File, logger logging.LoggerInterface) (int64, error) {
	n, err := store.Upload(ctx, key, f.Body)
	if err != nil {
		return 0, err
	}

	db.OnRollback(ctx, func() {
		// the request context may already be cancelled
		if err := store.Delete(context.WithoutCancel(ctx), key); err != nil {
			logger.Warnf("failed to remove orphaned blob %s: %v", key, err)
		}
	})

	return n, nil
}

// DiscardOnCommit deletes the blob once the ambient transaction commits.
func DiscardOnCommit(ctx context.Context, store StoreInterface, key string, logger logging.LoggerInterface) {
	db.OnCommit(ctx, func() {
		if err := store.Delete(context.WithoutCancel(ctx), key); err != nil {
			logger.Warnf("failed to delete replaced blob %s: %v", key, err)
		}
	})
}
