// Package reconcile merges remote provider time entries into the ledger.
// Absorption is keyed by remote entry ID, so running the same window any
// number of times never duplicates a session.
package reconcile

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/electronduke5/SalaryCounter/internal/clickup"
	"github.com/electronduke5/SalaryCounter/internal/domain"
	"github.com/electronduke5/SalaryCounter/internal/repository"
)

// ErrNotConfigured indicates the user has no remote credentials stored.
var ErrNotConfigured = errors.New("remote provider not configured")

// LedgerStore is the slice of the ledger store the engine needs.
type LedgerStore interface {
	GetOrCreate(userID string) *domain.UserLedger
	AbsorbRemote(userID, date string, session domain.Session) (*domain.DayBucket, error)
}

// TimeSource fetches raw time entries from the remote provider.
type TimeSource interface {
	FetchEntries(ctx context.Context, creds domain.RemoteCredentials, start, end time.Time) ([]clickup.RawEntry, error)
}

// SyncResult reports what a single run newly absorbed. Entries skipped by
// the idempotence guard are not counted.
type SyncResult struct {
	SyncedCount   int
	TotalHours    float64
	TotalEarnings float64
}

// Syncer orchestrates one reconciliation run per call. Runs for the same
// user are serialized; different users may sync concurrently.
type Syncer struct {
	store   LedgerStore
	remote  TimeSource
	journal repository.SyncRunRepo // nil disables journaling

	mu        sync.Mutex
	userLocks map[string]*sync.Mutex
}

// NewSyncer creates a Syncer. journal may be nil.
func NewSyncer(store LedgerStore, remote TimeSource, journal repository.SyncRunRepo) *Syncer {
	return &Syncer{
		store:     store,
		remote:    remote,
		journal:   journal,
		userLocks: make(map[string]*sync.Mutex),
	}
}

// Sync pulls the user's remote entries inside [start, end] and absorbs every
// one not seen before. Running timers (negative duration) are never
// absorbed. The fetch failing fails the whole run; absorption is persisted
// entry by entry, so a retried run picks up exactly where this one stopped.
func (s *Syncer) Sync(ctx context.Context, userID string, start, end time.Time) (SyncResult, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	startedAt := time.Now()

	ledger := s.store.GetOrCreate(userID)
	if !ledger.Remote.Configured() {
		s.record(ctx, userID, start, end, SyncResult{}, startedAt, ErrNotConfigured)
		return SyncResult{}, ErrNotConfigured
	}

	entries, err := s.remote.FetchEntries(ctx, *ledger.Remote, start, end)
	if err != nil {
		s.record(ctx, userID, start, end, SyncResult{}, startedAt, err)
		return SyncResult{}, err
	}

	var result SyncResult
	for _, entry := range entries {
		if entry.DurationMS < 0 {
			continue // timer still running
		}
		if ledger.HasAbsorbed(entry.ID) {
			continue
		}

		hours := float64(entry.DurationMS) / 3_600_000
		startedLocal := time.UnixMilli(entry.StartMS).Local()
		session := domain.NewRemoteSession(entry.ID, entry.TaskName, entry.Description, hours, ledger.Rate, startedLocal)

		date := startedLocal.Format(domain.DateLayout)
		if _, err := s.store.AbsorbRemote(userID, date, session); err != nil {
			s.record(ctx, userID, start, end, result, startedAt, err)
			return SyncResult{}, err
		}

		result.SyncedCount++
		result.TotalHours += hours
		result.TotalEarnings += session.Earnings
	}

	s.record(ctx, userID, start, end, result, startedAt, nil)
	return result, nil
}

func (s *Syncer) userLock(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.userLocks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.userLocks[userID] = lock
	}
	return lock
}

// record journals the run. Journal failures are logged, never propagated:
// the ledger outcome is already decided by the time we get here.
func (s *Syncer) record(ctx context.Context, userID string, start, end time.Time, result SyncResult, startedAt time.Time, runErr error) {
	if s.journal == nil {
		return
	}

	run := &domain.SyncRun{
		ID:            uuid.New().String(),
		UserID:        userID,
		WindowStart:   start,
		WindowEnd:     end,
		SyncedCount:   result.SyncedCount,
		TotalHours:    result.TotalHours,
		TotalEarnings: result.TotalEarnings,
		StartedAt:     startedAt,
		FinishedAt:    time.Now(),
	}
	if runErr != nil {
		run.Error = runErr.Error()
	}
	if err := s.journal.Create(ctx, run); err != nil {
		slog.Warn("recording sync run failed", "user", userID, "error", err)
	}
}
