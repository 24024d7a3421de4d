// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package blob

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/property-service/internal/logging"
)

type memoryStore struct {
	blobs map[string]string
}

func (m *memoryStore) Upload(_ context.Context, key string, r io.Reader) (int64, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	m.blobs[key] = string(b)
	return int64(len(b)), nil
}

func (m *memoryStore) Delete(_ context.Context, key string) error {
	delete(m.blobs, key)
	return nil
}

func TestKeyFor(t *testing.T) {
	key := KeyFor("rents/r1/proofs", "../../etc/receipt march.pdf")

	assert.True(t, strings.HasPrefix(key, "rents/r1/proofs/"))
	assert.True(t, strings.HasSuffix(key, "-receipt_march.pdf"))
	assert.NotContains(t, key, "..")

	assert.True(t, strings.HasSuffix(KeyFor("docs", ""), "-file"))
}

func TestStageOutsideTransaction(t *testing.T) {
	store := &memoryStore{blobs: map[string]string{}}

	n, err := Stage(context.Background(), store, "k", &File{Filename: "a.txt", Body: strings.NewReader("proof")}, logging.NewNoopLogger())
	require.NoError(t, err)
	assert.EqualValues(t, 5, n)
	assert.Equal(t, "proof", store.blobs["k"])

	DiscardOnCommit(context.Background(), store, "k", logging.NewNoopLogger())
	assert.NotContains(t, store.blobs, "k")
}
