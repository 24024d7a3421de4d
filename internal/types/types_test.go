// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRoleSet(t *testing.T) {
	s := NewRoleSet(AssocLandlord, AssocLandlord, AssocTenant)
	assert.Equal(t, RoleSet{AssocLandlord, AssocTenant}, s)

	assert.True(t, s.Has(AssocTenant))
	assert.False(t, s.Has(AssocAdminAccess))
	assert.True(t, s.HasAny(ManagementRoles))
	assert.True(t, s.ContainsAll(RoleSet{AssocTenant}))
	assert.False(t, s.ContainsAll(RoleSet{AssocTenant, AssocPropertyManager}))

	assert.Equal(t, RoleSet{AssocLandlord, AssocTenant, AssocPropertyManager}, s.Union(RoleSet{AssocPropertyManager, AssocTenant}))
	assert.Equal(t, RoleSet{AssocLandlord}, s.Without(RoleSet{AssocTenant}))
	assert.Empty(t, s.Without(s))
	assert.Equal(t, []string{"landlord", "tenant"}, s.Strings())
}

func TestParseRoleSet(t *testing.T) {
	s, ok := ParseRoleSet([]string{"tenant", "admin_access"})
	require.True(t, ok)
	assert.Equal(t, RoleSet{AssocTenant, AssocAdminAccess}, s)

	_, ok = ParseRoleSet([]string{"tenant", "vendor"})
	assert.False(t, ok)
}

func TestAssociationRoleFor(t *testing.T) {
	tests := []struct {
		role     Role
		expected AssociationRole
		ok       bool
	}{
		{RoleAdmin, AssocPropertyManager, true},
		{RoleLandlord, AssocLandlord, true},
		{RolePropertyManager, AssocPropertyManager, true},
		{RoleTenant, "", false},
		{RoleVendor, "", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			got, ok := AssociationRoleFor(tt.role)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseBillingPeriod(t *testing.T) {
	p, err := ParseBillingPeriod("2024-03")
	require.NoError(t, err)
	assert.Equal(t, date(2024, time.March, 1), p)

	for _, bad := range []string{"2024-3", "24-03", "2024/03", "2024-13", "march"} {
		_, err := ParseBillingPeriod(bad)
		assert.Error(t, err, bad)
	}

	assert.Equal(t, "2024-03", BillingPeriodOf(date(2024, time.March, 15)))
}

func TestDueDateFor(t *testing.T) {
	assert.Equal(t, date(2024, time.March, 5), DueDateFor(date(2024, time.March, 15), 5))
	assert.Equal(t, date(2024, time.February, 29), DueDateFor(date(2024, time.February, 1), 31))
	assert.Equal(t, date(2023, time.February, 28), DueDateFor(date(2023, time.February, 1), 30))
}

func TestIsBillingMonth(t *testing.T) {
	start := date(2024, time.January, 1)

	assert.True(t, BillingMonthly.IsBillingMonth(start, date(2024, time.March, 15)))
	assert.True(t, BillingQuarterly.IsBillingMonth(start, date(2024, time.April, 2)))
	assert.False(t, BillingQuarterly.IsBillingMonth(start, date(2024, time.March, 2)))
	assert.True(t, BillingSemiAnnual.IsBillingMonth(start, date(2024, time.July, 1)))
	assert.True(t, BillingAnnual.IsBillingMonth(start, date(2025, time.January, 20)))
	assert.False(t, BillingAnnual.IsBillingMonth(start, date(2024, time.December, 20)))
	assert.False(t, BillingMonthly.IsBillingMonth(start, date(2023, time.December, 20)))
	assert.False(t, BillingFrequency("weekly").IsBillingMonth(start, start))
}

func TestRentScheduleRanges(t *testing.T) {
	end := date(2024, time.June, 30)
	bounded := &RentSchedule{EffectiveStart: date(2024, time.January, 1), EffectiveEnd: &end}
	open := &RentSchedule{EffectiveStart: date(2024, time.January, 1)}

	assert.True(t, open.Overlaps(date(2024, time.June, 1), nil))
	assert.True(t, bounded.Overlaps(date(2024, time.June, 30), nil))
	assert.False(t, bounded.Overlaps(date(2024, time.July, 1), nil))

	before := date(2023, time.December, 31)
	assert.False(t, open.Overlaps(date(2023, time.January, 1), &before))

	assert.True(t, bounded.Covers(date(2024, time.March, 15)))
	assert.True(t, bounded.Covers(end))
	assert.False(t, bounded.Covers(date(2024, time.July, 1)))
	assert.False(t, open.Covers(date(2023, time.December, 31)))
}

func TestRentIsOverdue(t *testing.T) {
	r := &Rent{Status: RentDue, DueDate: date(2024, time.March, 5)}

	assert.False(t, r.IsOverdue(date(2024, time.March, 5)))
	assert.True(t, r.IsOverdue(date(2024, time.March, 6)))
	assert.False(t, r.IsOverdue(date(2024, time.March, 5).Add(23*time.Hour)))

	r.Status = RentPartiallyPaid
	assert.True(t, r.IsOverdue(date(2024, time.March, 6)))

	r.Status = RentPaid
	assert.False(t, r.IsOverdue(date(2024, time.March, 6)))
}

func TestParseCommentContext(t *testing.T) {
	c, err := ParseCommentContext("Property", "p-1")
	require.NoError(t, err)
	assert.Equal(t, PropertyContext("p-1"), c)

	_, err = ParseCommentContext("Invoice", "i-1")
	assert.Error(t, err)

	_, err = ParseCommentContext("Lease", "")
	assert.Error(t, err)
}
