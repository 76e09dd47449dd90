// Package aggregate computes calendar-windowed totals over a user ledger.
// Every function is a pure read: the ledger is never mutated. Date windows
// are inclusive on both ends and expressed as local calendar dates.
package aggregate

import (
	"time"

	"github.com/electronduke5/SalaryCounter/internal/domain"
)

// Summary is the aggregate over a date window.
type Summary struct {
	TotalHours    float64
	TotalEarnings float64
	DaysWorked    int
}

// AveragePerDay returns mean earnings per worked day, or 0 when no day in
// the window had work.
func (s Summary) AveragePerDay() float64 {
	if s.DaysWorked == 0 {
		return 0
	}
	return s.TotalEarnings / float64(s.DaysWorked)
}

// DateOf truncates t to its local calendar date.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// daysSinceMonday returns 0 for Monday through 6 for Sunday.
func daysSinceMonday(d time.Time) int {
	return (int(d.Weekday()) + 6) % 7
}

// WeekStart returns the Monday of the ISO week containing t.
func WeekStart(t time.Time) time.Time {
	d := DateOf(t)
	return d.AddDate(0, 0, -daysSinceMonday(d))
}

// Range sums the ledger over the inclusive date window [from, to].
func Range(l *domain.UserLedger, from, to time.Time) Summary {
	var sum Summary
	for d := DateOf(from); !d.After(DateOf(to)); d = d.AddDate(0, 0, 1) {
		bucket, ok := l.Days[d.Format(domain.DateLayout)]
		if !ok {
			continue
		}
		sum.TotalHours += bucket.TotalHours
		sum.TotalEarnings += bucket.TotalEarnings
		sum.DaysWorked++
	}
	return sum
}

// Today returns the aggregate for the current calendar date.
func Today(l *domain.UserLedger, now time.Time) Summary {
	return Range(l, now, now)
}

// Yesterday returns the aggregate for the previous calendar date.
func Yesterday(l *domain.UserLedger, now time.Time) Summary {
	y := DateOf(now).AddDate(0, 0, -1)
	return Range(l, y, y)
}

// WeekToDate returns the aggregate from Monday of the current ISO week
// through today. On a Monday the window covers that single day.
func WeekToDate(l *domain.UserLedger, now time.Time) Summary {
	return Range(l, WeekStart(now), now)
}

// TrailingMonth returns the aggregate over the last 30 calendar days,
// today included. This is deliberately not the calendar month: the
// month-partitioned views use true month boundaries instead.
func TrailingMonth(l *domain.UserLedger, now time.Time) Summary {
	return Range(l, DateOf(now).AddDate(0, 0, -29), now)
}

// DayDetail is one day's aggregate inside a week breakdown.
type DayDetail struct {
	Date    time.Time
	Summary Summary
}

// WeekDays returns a per-day breakdown from Monday of the current week
// through today. Days without work are included with zero totals.
func WeekDays(l *domain.UserLedger, now time.Time) []DayDetail {
	var days []DayDetail
	for d := WeekStart(now); !d.After(DateOf(now)); d = d.AddDate(0, 0, 1) {
		days = append(days, DayDetail{Date: d, Summary: Range(l, d, d)})
	}
	return days
}
