package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/electronduke5/SalaryCounter/internal/domain"
)

// SQLiteSyncRunRepo implements SyncRunRepo using a SQLite database.
type SQLiteSyncRunRepo struct {
	db *sql.DB
}

// NewSQLiteSyncRunRepo creates a new SQLiteSyncRunRepo.
func NewSQLiteSyncRunRepo(db *sql.DB) *SQLiteSyncRunRepo {
	return &SQLiteSyncRunRepo{db: db}
}

func (r *SQLiteSyncRunRepo) Create(ctx context.Context, run *domain.SyncRun) error {
	query := `INSERT INTO sync_runs (id, user_id, window_start, window_end, synced_count, total_hours, total_earnings, error, started_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		run.ID,
		run.UserID,
		run.WindowStart.Format(time.RFC3339),
		run.WindowEnd.Format(time.RFC3339),
		run.SyncedCount,
		run.TotalHours,
		run.TotalEarnings,
		run.Error,
		run.StartedAt.Format(time.RFC3339),
		run.FinishedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting sync run: %w", err)
	}
	return nil
}

func (r *SQLiteSyncRunRepo) ListByUser(ctx context.Context, userID string, limit int) ([]*domain.SyncRun, error) {
	query := `SELECT id, user_id, window_start, window_end, synced_count, total_hours, total_earnings, error, started_at, finished_at
		FROM sync_runs WHERE user_id = ? ORDER BY started_at DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing sync runs: %w", err)
	}
	defer rows.Close()

	var runs []*domain.SyncRun
	for rows.Next() {
		run, err := scanSyncRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

func scanSyncRun(rows *sql.Rows) (*domain.SyncRun, error) {
	var (
		run                                         domain.SyncRun
		windowStart, windowEnd, startedAt, finished string
	)
	if err := rows.Scan(
		&run.ID,
		&run.UserID,
		&windowStart,
		&windowEnd,
		&run.SyncedCount,
		&run.TotalHours,
		&run.TotalEarnings,
		&run.Error,
		&startedAt,
		&finished,
	); err != nil {
		return nil, fmt.Errorf("scanning sync run: %w", err)
	}

	var err error
	if run.WindowStart, err = time.Parse(time.RFC3339, windowStart); err != nil {
		return nil, fmt.Errorf("parsing window_start: %w", err)
	}
	if run.WindowEnd, err = time.Parse(time.RFC3339, windowEnd); err != nil {
		return nil, fmt.Errorf("parsing window_end: %w", err)
	}
	if run.StartedAt, err = time.Parse(time.RFC3339, startedAt); err != nil {
		return nil, fmt.Errorf("parsing started_at: %w", err)
	}
	if run.FinishedAt, err = time.Parse(time.RFC3339, finished); err != nil {
		return nil, fmt.Errorf("parsing finished_at: %w", err)
	}
	return &run, nil
}
