// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/property-service/pkg/rent"
)

func TestPrintSummary(t *testing.T) {
	summary := &rent.GenerationSummary{
		BillingPeriod: "2026-03",
		Generated:     1,
		Skipped:       1,
		Details: []rent.GenerationDetail{
			{ScheduleID: "rs-1", LeaseID: "l-1", RentID: "r-1", Status: rent.GenerationGenerated},
			{ScheduleID: "rs-2", LeaseID: "l-2", Status: rent.GenerationSkipped, Reason: "already generated"},
		},
	}

	var text bytes.Buffer
	require.NoError(t, printSummary(&text, summary, "text"))
	assert.Contains(t, text.String(), "Billing period 2026-03: 1 generated, 1 skipped, 0 failed")
	assert.Contains(t, text.String(), "rs-2 already generated")

	var out bytes.Buffer
	require.NoError(t, printSummary(&out, summary, "json"))

	decoded := new(rent.GenerationSummary)
	require.NoError(t, json.Unmarshal(out.Bytes(), decoded))
	assert.Equal(t, "2026-03", decoded.BillingPeriod)
	assert.Len(t, decoded.Details, 2)
}

func TestCustomValidArgs(t *testing.T) {
	validate := customValidArgs()

	assert.NoError(t, validate(migrateCmd, nil))
	assert.NoError(t, validate(migrateCmd, []string{"status"}))
	assert.NoError(t, validate(migrateCmd, []string{"down", "3"}))
	assert.Error(t, validate(migrateCmd, []string{"sideways"}))
	assert.Error(t, validate(migrateCmd, []string{"up", "3"}))
	assert.Error(t, validate(migrateCmd, []string{"down", "-1"}))
}
