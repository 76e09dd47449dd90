package aggregate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/electronduke5/SalaryCounter/internal/domain"
)

func TestMonthWeeks_PartitionBoundaries(t *testing.T) {
	l := domain.NewUserLedger()
	// June 2025: the 1st is a Sunday, so week 1 is the single day June 1.
	addManual(t, l, day(2025, 6, 1), 2, 0, 100)  // week 1
	addManual(t, l, day(2025, 6, 2), 4, 0, 100)  // week 2 (Jun 2-8)
	addManual(t, l, day(2025, 6, 8), 1, 0, 100)  // week 2
	addManual(t, l, day(2025, 6, 30), 3, 0, 100) // week 6 (Jun 30, clipped to month end)

	weeks, total := MonthWeeks(l, 2025, time.June, day(2025, 7, 15))
	require.Len(t, weeks, 3)

	assert.Equal(t, 1, weeks[0].Number)
	assert.Equal(t, day(2025, 6, 1), weeks[0].Start)
	assert.Equal(t, day(2025, 6, 1), weeks[0].End)
	assert.InDelta(t, 2.0, weeks[0].Summary.TotalHours, 1e-9)

	assert.Equal(t, 2, weeks[1].Number)
	assert.Equal(t, day(2025, 6, 2), weeks[1].Start)
	assert.Equal(t, day(2025, 6, 8), weeks[1].End)
	assert.InDelta(t, 5.0, weeks[1].Summary.TotalHours, 1e-9)

	// Weeks 3-5 had no work and are omitted, but their numbers are consumed.
	assert.Equal(t, 6, weeks[2].Number)
	assert.Equal(t, day(2025, 6, 30), weeks[2].Start)
	assert.Equal(t, day(2025, 6, 30), weeks[2].End)

	assert.InDelta(t, 10.0, total.TotalHours, 1e-9)
	assert.Equal(t, 4, total.DaysWorked)
}

func TestMonthWeeks_CurrentMonthClippedToToday(t *testing.T) {
	l := domain.NewUserLedger()
	addManual(t, l, day(2025, 6, 2), 4, 0, 100)
	addManual(t, l, day(2025, 6, 10), 6, 0, 100) // after "today", unreachable

	weeks, total := MonthWeeks(l, 2025, time.June, day(2025, 6, 4))
	require.Len(t, weeks, 1)
	assert.Equal(t, 2, weeks[0].Number)
	assert.Equal(t, day(2025, 6, 2), weeks[0].Start)
	assert.Equal(t, day(2025, 6, 4), weeks[0].End, "partition must not extend past today")
	assert.InDelta(t, 4.0, total.TotalHours, 1e-9)
}

func TestMonthWeeks_EmptyMonth(t *testing.T) {
	weeks, total := MonthWeeks(domain.NewUserLedger(), 2025, time.June, day(2025, 7, 1))
	assert.Empty(t, weeks)
	assert.Zero(t, total.TotalHours)
	assert.Zero(t, total.DaysWorked)
}

func TestYearMonths_OmitsEmptyAndClips(t *testing.T) {
	l := domain.NewUserLedger()
	addManual(t, l, day(2025, 2, 10), 8, 0, 100)
	addManual(t, l, day(2025, 6, 3), 2, 0, 100)
	addManual(t, l, day(2025, 6, 20), 5, 0, 100) // after "today"

	months, total := YearMonths(l, 2025, day(2025, 6, 10))
	require.Len(t, months, 2)
	assert.Equal(t, time.February, months[0].Month)
	assert.InDelta(t, 8.0, months[0].Summary.TotalHours, 1e-9)
	assert.Equal(t, time.June, months[1].Month)
	assert.InDelta(t, 2.0, months[1].Summary.TotalHours, 1e-9)
	assert.Equal(t, 2, total.DaysWorked)
}

func TestYearMonths_PastYearFullMonths(t *testing.T) {
	l := domain.NewUserLedger()
	addManual(t, l, day(2024, 12, 31), 1, 0, 100)

	months, total := YearMonths(l, 2024, day(2025, 6, 10))
	require.Len(t, months, 1)
	assert.Equal(t, time.December, months[0].Month)
	assert.InDelta(t, 1.0, total.TotalHours, 1e-9)
}
