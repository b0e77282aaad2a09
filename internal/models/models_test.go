package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestBooking_Overlaps(t *testing.T) {
	existing := Booking{
		StartDate: date(2025, 1, 10),
		EndDate:   date(2025, 1, 15),
	}

	// Adjacent before: ends exactly on the existing start
	assert.False(t, existing.Overlaps(date(2025, 1, 5), date(2025, 1, 10)))

	// Adjacent after: starts exactly on the existing end
	assert.False(t, existing.Overlaps(date(2025, 1, 15), date(2025, 1, 20)))

	// One day of overlap at the tail
	assert.True(t, existing.Overlaps(date(2025, 1, 14), date(2025, 1, 20)))

	// One day of overlap at the head
	assert.True(t, existing.Overlaps(date(2025, 1, 5), date(2025, 1, 11)))

	// Fully contained
	assert.True(t, existing.Overlaps(date(2025, 1, 11), date(2025, 1, 13)))

	// Fully containing
	assert.True(t, existing.Overlaps(date(2025, 1, 1), date(2025, 1, 31)))

	// Disjoint
	assert.False(t, existing.Overlaps(date(2025, 2, 1), date(2025, 2, 5)))
}

func TestBooking_ContainsDate(t *testing.T) {
	b := Booking{
		StartDate: date(2025, 2, 1),
		EndDate:   date(2025, 2, 5),
	}

	assert.True(t, b.ContainsDate(date(2025, 2, 1)))
	assert.True(t, b.ContainsDate(date(2025, 2, 3)))
	// The end date counts as occupied for availability, unlike the overlap test.
	assert.True(t, b.ContainsDate(date(2025, 2, 5)))
	assert.False(t, b.ContainsDate(date(2025, 1, 31)))
	assert.False(t, b.ContainsDate(date(2025, 2, 6)))
}

func TestBooking_ContainsDate_IgnoresTimeOfDay(t *testing.T) {
	b := Booking{
		StartDate: date(2025, 2, 1),
		EndDate:   date(2025, 2, 5),
	}
	assert.True(t, b.ContainsDate(time.Date(2025, 2, 5, 23, 30, 0, 0, time.UTC)))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-01-10")
	assert.NoError(t, err)
	assert.Equal(t, date(2025, 1, 10), d)

	_, err = ParseDate("10.01.2025")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestDateOnly(t *testing.T) {
	ts := time.Date(2025, 6, 15, 18, 45, 12, 999, time.FixedZone("MSK", 3*3600))
	assert.Equal(t, date(2025, 6, 15), DateOnly(ts))
}
