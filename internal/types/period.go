// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"fmt"
	"regexp"
	"time"
)

var billingPeriodRegexp = regexp.MustCompile(`^\d{4}-\d{2}$`)

// BillingFrequency is the recurrence of a rent schedule.
type BillingFrequency string

const (
	BillingMonthly    BillingFrequency = "monthly"
	BillingQuarterly  BillingFrequency = "quarterly"
	BillingSemiAnnual BillingFrequency = "semi_annual"
	BillingAnnual     BillingFrequency = "annual"
)

// Months is the length of one billing cycle.
func (f BillingFrequency) Months() int {
	switch f {
	case BillingMonthly:
		return 1
	case BillingQuarterly:
		return 3
	case BillingSemiAnnual:
		return 6
	case BillingAnnual:
		return 12
	}
	return 0
}

func (f BillingFrequency) Valid() bool {
	return f.Months() > 0
}

// BillingPeriodOf formats the YYYY-MM period containing t.
func BillingPeriodOf(t time.Time) string {
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
}

// ParseBillingPeriod validates a YYYY-MM period and returns its first day in UTC.
func ParseBillingPeriod(p string) (time.Time, error) {
	if !billingPeriodRegexp.MatchString(p) {
		return time.Time{}, fmt.Errorf("billing period %q must match YYYY-MM", p)
	}

	t, err := time.Parse("2006-01", p)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid billing period %q: %w", p, err)
	}

	return t, nil
}

// DueDateFor returns the due date of the period starting at month for a given
// day of month, clamped to the last day of that month.
func DueDateFor(month time.Time, day int) time.Time {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1).Day()
	if day > last {
		day = last
	}
	if day < 1 {
		day = 1
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC)
}

// IsBillingMonth reports whether the month containing d is a whole number of
// billing cycles after the month containing start.
func (f BillingFrequency) IsBillingMonth(start, d time.Time) bool {
	n := f.Months()
	if n == 0 {
		return false
	}
	elapsed := (d.Year()-start.Year())*12 + int(d.Month()) - int(start.Month())
	if elapsed < 0 {
		return false
	}
	return elapsed%n == 0
}

// StartOfDay truncates t to midnight UTC.
func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
