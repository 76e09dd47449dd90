package aggregate

import (
	"time"

	"github.com/electronduke5/SalaryCounter/internal/domain"
)

// WeekPartition is one week slice of a calendar month. Start and End are the
// clipped display bounds; Number is the week's position within the month and
// is consumed by every calendar week whether or not it had work.
type WeekPartition struct {
	Number  int
	Start   time.Time
	End     time.Time
	Summary Summary
}

// MonthWeeks partitions a calendar month into weeks and aggregates each.
// The first partition runs from day 1 to the first Sunday; the rest are
// Monday-Sunday spans, with the last clipped to the end of the month. When
// the month is still in progress the partitions never extend past today.
// Weeks with zero hours are omitted from the result but still consume their
// week number. The returned Summary covers the whole partitioned span.
func MonthWeeks(l *domain.UserLedger, year int, month time.Month, now time.Time) ([]WeekPartition, Summary) {
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, -1)

	limit := monthEnd
	today := DateOf(now)
	if today.Before(limit) {
		limit = today
	}

	var (
		weeks []WeekPartition
		total Summary
		num   = 1
	)
	for start := monthStart; !start.After(limit); num++ {
		// Sunday of the ISO week containing start.
		sunday := start.AddDate(0, 0, 6-daysSinceMonday(start))

		end := sunday
		if end.After(monthEnd) {
			end = monthEnd
		}
		if end.After(limit) {
			end = limit
		}

		sum := Range(l, start, end)
		if sum.TotalHours > 0 {
			weeks = append(weeks, WeekPartition{Number: num, Start: start, End: end, Summary: sum})
			total.TotalHours += sum.TotalHours
			total.TotalEarnings += sum.TotalEarnings
			total.DaysWorked += sum.DaysWorked
		}

		start = sunday.AddDate(0, 0, 1)
	}
	return weeks, total
}

// MonthPartition is one calendar month slice of a year.
type MonthPartition struct {
	Month   time.Month
	Summary Summary
}

// YearMonths partitions a calendar year into months and aggregates each.
// Months with zero hours are omitted; for the current year the iteration
// stops at the current month and the last window is clipped to today.
func YearMonths(l *domain.UserLedger, year int, now time.Time) ([]MonthPartition, Summary) {
	today := DateOf(now)

	var (
		months []MonthPartition
		total  Summary
	)
	for m := time.January; m <= time.December; m++ {
		start := time.Date(year, m, 1, 0, 0, 0, 0, now.Location())
		if start.After(today) {
			break
		}
		end := start.AddDate(0, 1, -1)
		if end.After(today) {
			end = today
		}

		sum := Range(l, start, end)
		if sum.TotalHours > 0 {
			months = append(months, MonthPartition{Month: m, Summary: sum})
			total.TotalHours += sum.TotalHours
			total.TotalEarnings += sum.TotalEarnings
			total.DaysWorked += sum.DaysWorked
		}
	}
	return months, total
}
