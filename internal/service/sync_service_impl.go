package service

import (
	"context"
	"time"

	"github.com/electronduke5/SalaryCounter/internal/clickup"
	"github.com/electronduke5/SalaryCounter/internal/domain"
	"github.com/electronduke5/SalaryCounter/internal/ledger"
	"github.com/electronduke5/SalaryCounter/internal/reconcile"
	"github.com/electronduke5/SalaryCounter/internal/repository"
)

type syncService struct {
	store   *ledger.Store
	syncer  *reconcile.Syncer
	client  *clickup.Client
	journal repository.SyncRunRepo
}

// NewSyncService creates the remote synchronization service.
func NewSyncService(store *ledger.Store, syncer *reconcile.Syncer, client *clickup.Client, journal repository.SyncRunRepo) SyncService {
	return &syncService{store: store, syncer: syncer, client: client, journal: journal}
}

func (s *syncService) Sync(ctx context.Context, userID string, start, end time.Time) (reconcile.SyncResult, error) {
	return s.syncer.Sync(ctx, userID, start, end)
}

func (s *syncService) History(ctx context.Context, userID string, limit int) ([]*domain.SyncRun, error) {
	return s.journal.ListByUser(ctx, userID, limit)
}

func (s *syncService) AssignedTasks(ctx context.Context, userID string) ([]clickup.Task, error) {
	creds := s.store.GetOrCreate(userID).Remote
	if !creds.Configured() {
		return nil, reconcile.ErrNotConfigured
	}
	return s.client.FetchAssignedTasks(ctx, *creds)
}
