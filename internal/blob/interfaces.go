// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package blob

import (
	"context"
	"io"
)

type StoreInterface interface {
	// Upload writes the content under key and returns the number of bytes written.
	Upload(ctx context.Context, key string, r io.Reader) (int64, error)
	Delete(ctx context.Context, key string) error
}
