package service

import (
	"time"

	"github.com/electronduke5/SalaryCounter/internal/aggregate"
	"github.com/electronduke5/SalaryCounter/internal/ledger"
)

type reportService struct {
	store *ledger.Store
	now   func() time.Time
}

// NewReportService creates the read-only reporting service over the ledger.
func NewReportService(store *ledger.Store, now func() time.Time) ReportService {
	if now == nil {
		now = time.Now
	}
	return &reportService{store: store, now: now}
}

func (s *reportService) Today(userID string) aggregate.Summary {
	return aggregate.Today(s.store.GetOrCreate(userID), s.now())
}

func (s *reportService) Yesterday(userID string) aggregate.Summary {
	return aggregate.Yesterday(s.store.GetOrCreate(userID), s.now())
}

func (s *reportService) WeekToDate(userID string) aggregate.Summary {
	return aggregate.WeekToDate(s.store.GetOrCreate(userID), s.now())
}

func (s *reportService) TrailingMonth(userID string) aggregate.Summary {
	return aggregate.TrailingMonth(s.store.GetOrCreate(userID), s.now())
}

func (s *reportService) WeekDays(userID string) []aggregate.DayDetail {
	return aggregate.WeekDays(s.store.GetOrCreate(userID), s.now())
}

func (s *reportService) MonthWeeks(userID string) ([]aggregate.WeekPartition, aggregate.Summary) {
	now := s.now()
	return aggregate.MonthWeeks(s.store.GetOrCreate(userID), now.Year(), now.Month(), now)
}

func (s *reportService) YearMonths(userID string) ([]aggregate.MonthPartition, aggregate.Summary) {
	now := s.now()
	return aggregate.YearMonths(s.store.GetOrCreate(userID), now.Year(), now)
}

func (s *reportService) TasksInRange(userID string, from, to time.Time) []aggregate.TaskSummary {
	return aggregate.ByTask(s.store.GetOrCreate(userID), from, to)
}
