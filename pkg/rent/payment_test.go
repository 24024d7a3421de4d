// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package rent

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/property-service/internal/apperrors"
	"github.com/canonical/property-service/internal/types"
)

func TestStatusFor(t *testing.T) {
	testCases := []struct {
		name     string
		paid     float64
		due      float64
		expected types.RentStatus
	}{
		{name: "nothing paid", paid: 0, due: 500, expected: types.RentDue},
		{name: "one cent short", paid: 499.99, due: 500, expected: types.RentPartiallyPaid},
		{name: "exact", paid: 500, due: 500, expected: types.RentPaid},
		{name: "one cent over", paid: 500.01, due: 500, expected: types.RentPaid},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, StatusFor(tc.paid, tc.due))
		})
	}
}

func TestApplyPaymentPartialThenFull(t *testing.T) {
	first := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	second := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)

	r := &types.Rent{AmountDue: 500, Status: types.RentDue}

	require.NoError(t, ApplyPayment(r, types.Payment{Date: first, Amount: 200, RecordedBy: "landlord-1"}))
	assert.Equal(t, types.RentPartiallyPaid, r.Status)
	assert.Equal(t, 200.0, r.AmountPaid)
	assert.Equal(t, first, *r.PaymentDate)

	require.NoError(t, ApplyPayment(r, types.Payment{Date: second, Amount: 300, Method: "transfer", RecordedBy: "landlord-1"}))
	assert.Equal(t, types.RentPaid, r.Status)
	assert.Equal(t, 500.0, r.AmountPaid)
	assert.Equal(t, second, *r.PaymentDate)

	require.Len(t, r.PaymentHistory, 2)
	var sum float64
	for _, p := range r.PaymentHistory {
		sum += p.Amount
	}
	assert.Equal(t, r.AmountPaid, sum)
}

func TestApplyPaymentKeepsCents(t *testing.T) {
	r := &types.Rent{AmountDue: 0.3, Status: types.RentDue}
	date := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)

	require.NoError(t, ApplyPayment(r, types.Payment{Date: date, Amount: 0.1}))
	require.NoError(t, ApplyPayment(r, types.Payment{Date: date, Amount: 0.2}))

	assert.Equal(t, 0.3, r.AmountPaid)
	assert.Equal(t, types.RentPaid, r.Status)
}

func TestApplyPaymentRejects(t *testing.T) {
	date := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name    string
		payment types.Payment
	}{
		{name: "zero", payment: types.Payment{Date: date, Amount: 0}},
		{name: "negative", payment: types.Payment{Date: date, Amount: -10}},
		{name: "below a cent", payment: types.Payment{Date: date, Amount: 0.004}},
		{name: "missing date", payment: types.Payment{Amount: 10}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := &types.Rent{AmountDue: 500, Status: types.RentDue}

			err := ApplyPayment(r, tc.payment)

			assert.ErrorIs(t, err, apperrors.ErrValidation)
			assert.Empty(t, r.PaymentHistory)
			assert.Equal(t, types.RentDue, r.Status)
		})
	}
}
