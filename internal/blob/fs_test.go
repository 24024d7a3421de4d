// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package blob

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/property-service/internal/logging"
	"github.com/canonical/property-service/internal/monitoring"
	"github.com/canonical/property-service/internal/tracing"
)

func newTestStore(t *testing.T) (*FSStore, string) {
	root := t.TempDir()
	logger := logging.NewNoopLogger()

	s, err := NewFSStore(root, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)
	require.NoError(t, err)

	return s, root
}

func TestUploadAndDelete(t *testing.T) {
	s, root := newTestStore(t)
	ctx := context.Background()

	n, err := s.Upload(ctx, "payment-proofs/r1/proof.pdf", strings.NewReader("receipt"))
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)

	content, err := os.ReadFile(filepath.Join(root, "payment-proofs", "r1", "proof.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "receipt", string(content))

	require.NoError(t, s.Delete(ctx, "payment-proofs/r1/proof.pdf"))
	_, err = os.Stat(filepath.Join(root, "payment-proofs", "r1", "proof.pdf"))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	assert.NoError(t, s.Delete(ctx, "payment-proofs/r1/proof.pdf"), "deleting twice must succeed")
}

func TestUploadRejectsTraversal(t *testing.T) {
	s, _ := newTestStore(t)

	for _, key := range []string{"", "../outside", "a/../../b", "/"} {
		_, err := s.Upload(context.Background(), key, strings.NewReader("x"))
		assert.ErrorIs(t, err, ErrInvalidKey, key)
	}
}

func TestDisabledStore(t *testing.T) {
	s := NewDisabledStore()

	_, err := s.Upload(context.Background(), "k", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrDisabled)
	assert.NoError(t, s.Delete(context.Background(), "k"))
}
