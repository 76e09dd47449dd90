// Package service exposes the application boundary consumed by the CLI (or
// any other front-end): rate and session management, calendar reports, and
// remote synchronization. Services return plain data; rendering is the
// caller's problem.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/electronduke5/SalaryCounter/internal/aggregate"
	"github.com/electronduke5/SalaryCounter/internal/clickup"
	"github.com/electronduke5/SalaryCounter/internal/domain"
	"github.com/electronduke5/SalaryCounter/internal/reconcile"
)

// ErrRateNotSet indicates a session cannot be priced because the user has
// no hourly rate configured yet.
var ErrRateNotSet = errors.New("hourly rate not set")

// AddedSession reports a completed manual append.
type AddedSession struct {
	Session domain.Session
	Day     domain.DayBucket
}

type LedgerService interface {
	SetRate(userID string, rate float64) error
	Rate(userID string) float64
	AddManualSession(userID string, hours, minutes int) (*AddedSession, error)
	SetRemoteCredentials(userID string, creds domain.RemoteCredentials) error
}

type ReportService interface {
	Today(userID string) aggregate.Summary
	Yesterday(userID string) aggregate.Summary
	WeekToDate(userID string) aggregate.Summary
	TrailingMonth(userID string) aggregate.Summary
	WeekDays(userID string) []aggregate.DayDetail
	MonthWeeks(userID string) ([]aggregate.WeekPartition, aggregate.Summary)
	YearMonths(userID string) ([]aggregate.MonthPartition, aggregate.Summary)
	TasksInRange(userID string, from, to time.Time) []aggregate.TaskSummary
}

type SyncService interface {
	Sync(ctx context.Context, userID string, start, end time.Time) (reconcile.SyncResult, error)
	History(ctx context.Context, userID string, limit int) ([]*domain.SyncRun, error)
	AssignedTasks(ctx context.Context, userID string) ([]clickup.Task, error)
}
