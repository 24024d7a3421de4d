// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package blob

import (
	"context"
	"io"
)

// DisabledStore rejects uploads, it is used when no blob root is configured.
type DisabledStore struct{}

func (DisabledStore) Upload(context.Context, string, io.Reader) (int64, error) {
	return 0, ErrDisabled
}

func (DisabledStore) Delete(context.Context, string) error {
	return nil
}

func NewDisabledStore() *DisabledStore {
	return new(DisabledStore)
}
