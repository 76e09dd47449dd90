package domain

import "time"

// SyncRun is one journaled reconciliation attempt against the remote
// provider, recorded whether it succeeded or failed.
type SyncRun struct {
	ID            string
	UserID        string
	WindowStart   time.Time
	WindowEnd     time.Time
	SyncedCount   int
	TotalHours    float64
	TotalEarnings float64
	Error         string
	StartedAt     time.Time
	FinishedAt    time.Time
}
