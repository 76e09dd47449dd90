package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/electronduke5/SalaryCounter/internal/clickup"
	"github.com/electronduke5/SalaryCounter/internal/db"
	"github.com/electronduke5/SalaryCounter/internal/domain"
	"github.com/electronduke5/SalaryCounter/internal/reconcile"
	"github.com/electronduke5/SalaryCounter/internal/repository"
)

// fakeProvider is an httptest ClickUp with a mutable set of time entries.
type fakeProvider struct {
	srv     *httptest.Server
	entries []map[string]any
}

func newFakeProvider(t *testing.T) *fakeProvider {
	t.Helper()
	p := &fakeProvider{}
	p.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/team":
			json.NewEncoder(w).Encode(map[string]any{
				"teams": []map[string]string{{"id": "42", "name": "Acme"}},
			})
		case strings.HasSuffix(r.URL.Path, "/time_entries"):
			json.NewEncoder(w).Encode(map[string]any{"data": p.entries})
		case strings.HasSuffix(r.URL.Path, "/task"):
			json.NewEncoder(w).Encode(map[string]any{
				"tasks": []map[string]any{
					{"id": "t1", "name": "Billing", "status": map[string]string{"status": "in progress"}},
				},
			})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(p.srv.Close)
	return p
}

func (p *fakeProvider) addEntry(id string, start time.Time, hours float64, task string) {
	p.entries = append(p.entries, map[string]any{
		"id":       id,
		"task":     map[string]string{"name": task},
		"start":    fmt.Sprintf("%d", start.UnixMilli()),
		"duration": fmt.Sprintf("%d", int64(hours*3_600_000)),
	})
}

func newSyncStack(t *testing.T, provider *fakeProvider) (SyncService, LedgerService) {
	t.Helper()

	store := newLedgerStore(t)
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	journal := repository.NewSQLiteSyncRunRepo(database)

	client := clickup.NewClient(clickup.Config{
		BaseURL:           provider.srv.URL,
		Retry:             clickup.RetryPolicy{MaxAttempts: 3, BackoffBase: time.Millisecond, Retryable: clickup.Retryable},
		RequestsPerSecond: 1000,
	})
	syncer := reconcile.NewSyncer(store, client, journal)
	return NewSyncService(store, syncer, client, journal), NewLedgerService(store, nil)
}

func TestSyncService_EndToEnd(t *testing.T) {
	provider := newFakeProvider(t)
	monday := time.Date(2025, 6, 2, 10, 0, 0, 0, time.Local)
	provider.addEntry("e1", monday, 2, "Billing")
	provider.addEntry("e2", monday.Add(3*time.Hour), 1, "Billing")

	syncSvc, ledgerSvc := newSyncStack(t, provider)
	require.NoError(t, ledgerSvc.SetRate("100", 200))
	require.NoError(t, ledgerSvc.SetRemoteCredentials("100", domain.RemoteCredentials{
		APIToken: "pk", Workspace: "Acme",
	}))

	result, err := syncSvc.Sync(context.Background(), "100", monday.Add(-24*time.Hour), monday.Add(24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 2, result.SyncedCount)
	assert.InDelta(t, 3.0, result.TotalHours, 1e-9)
	assert.InDelta(t, 600.0, result.TotalEarnings, 1e-9)

	// Re-running the same window absorbs nothing new.
	again, err := syncSvc.Sync(context.Background(), "100", monday.Add(-24*time.Hour), monday.Add(24*time.Hour))
	require.NoError(t, err)
	assert.Zero(t, again.SyncedCount)

	history, err := syncSvc.History(context.Background(), "100", 10)
	require.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestSyncService_AssignedTasks(t *testing.T) {
	provider := newFakeProvider(t)
	syncSvc, ledgerSvc := newSyncStack(t, provider)

	_, err := syncSvc.AssignedTasks(context.Background(), "100")
	assert.ErrorIs(t, err, reconcile.ErrNotConfigured)

	require.NoError(t, ledgerSvc.SetRemoteCredentials("100", domain.RemoteCredentials{
		APIToken: "pk", Workspace: "Acme",
	}))

	tasks, err := syncSvc.AssignedTasks(context.Background(), "100")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Billing", tasks[0].Name)
	assert.Equal(t, "in progress", tasks[0].Status)
}
