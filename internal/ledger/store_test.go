package ledger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/electronduke5/SalaryCounter/internal/domain"
)

func tempStorePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "salary_data.json")
}

func TestOpen_MissingFileStartsEmpty(t *testing.T) {
	s := Open(tempStorePath(t))
	l := s.GetOrCreate("100")

	assert.Zero(t, l.Rate)
	assert.Empty(t, l.Days)
	assert.Empty(t, l.Absorbed)
}

func TestOpen_CorruptFileStartsEmpty(t *testing.T) {
	path := tempStorePath(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s := Open(path)
	assert.Empty(t, s.GetOrCreate("100").Days)
}

func TestSetRate_RejectsNonPositive(t *testing.T) {
	s := Open(tempStorePath(t))

	assert.ErrorIs(t, s.SetRate("100", 0), domain.ErrInvalidRate)
	assert.ErrorIs(t, s.SetRate("100", -5), domain.ErrInvalidRate)

	require.NoError(t, s.SetRate("100", 250))
	assert.Equal(t, 250.0, s.GetOrCreate("100").Rate)
}

func TestAppendSession_PersistsAndReloads(t *testing.T) {
	path := tempStorePath(t)
	s := Open(path)
	require.NoError(t, s.SetRate("100", 100))

	sess, err := domain.NewManualSession(8, 30, 100, time.Now())
	require.NoError(t, err)

	bucket, err := s.AppendSession("100", "2025-06-02", sess)
	require.NoError(t, err)
	assert.InDelta(t, 8.5, bucket.TotalHours, 1e-9)
	assert.InDelta(t, 850.0, bucket.TotalEarnings, 1e-9)

	// A fresh store built from the same file sees identical state.
	reloaded := Open(path)
	l := reloaded.GetOrCreate("100")
	require.Contains(t, l.Days, "2025-06-02")
	assert.InDelta(t, 8.5, l.Days["2025-06-02"].TotalHours, 1e-9)
	require.Len(t, l.Days["2025-06-02"].Sessions, 1)
	assert.Equal(t, domain.SourceManual, l.Days["2025-06-02"].Sessions[0].Source)
}

func TestRateChange_DoesNotRewriteHistory(t *testing.T) {
	s := Open(tempStorePath(t))
	require.NoError(t, s.SetRate("100", 100))

	sess, err := domain.NewManualSession(2, 0, s.GetOrCreate("100").Rate, time.Now())
	require.NoError(t, err)
	_, err = s.AppendSession("100", "2025-06-02", sess)
	require.NoError(t, err)

	require.NoError(t, s.SetRate("100", 200))

	bucket := s.GetOrCreate("100").Days["2025-06-02"]
	assert.InDelta(t, 200.0, bucket.Sessions[0].Earnings, 1e-9)
	assert.InDelta(t, 200.0, bucket.TotalEarnings, 1e-9)
}

func TestAbsorbRemote_AppendsAndMarksAtomically(t *testing.T) {
	path := tempStorePath(t)
	s := Open(path)
	require.NoError(t, s.SetRate("100", 200))

	sess := domain.NewRemoteSession("task-1", "Billing", "", 1.5, 200, time.Now())
	_, err := s.AbsorbRemote("100", "2025-06-03", sess)
	require.NoError(t, err)

	assert.True(t, s.IsAbsorbed("100", "task-1"))
	assert.False(t, s.IsAbsorbed("100", "task-2"))

	reloaded := Open(path)
	assert.True(t, reloaded.IsAbsorbed("100", "task-1"))
	require.Contains(t, reloaded.GetOrCreate("100").Days, "2025-06-03")
}

func TestPersist_AbsorbedSetSerializedAsSortedList(t *testing.T) {
	path := tempStorePath(t)
	s := Open(path)
	require.NoError(t, s.MarkAbsorbed("100", "zz"))
	require.NoError(t, s.MarkAbsorbed("100", "aa"))
	require.NoError(t, s.MarkAbsorbed("100", "mm"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw map[string]struct {
		Absorbed []string `json:"absorbed_remote_ids"`
	}
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, []string{"aa", "mm", "zz"}, raw["100"].Absorbed)
}

func TestSetRemoteCredentials_RoundTrips(t *testing.T) {
	path := tempStorePath(t)
	s := Open(path)
	require.NoError(t, s.SetRemoteCredentials("100", domain.RemoteCredentials{
		APIToken:  "pk_123",
		Workspace: "My Team",
	}))

	creds := Open(path).GetOrCreate("100").Remote
	require.NotNil(t, creds)
	assert.True(t, creds.Configured())
	assert.Equal(t, "My Team", creds.Workspace)
}

func TestStore_UsersAreIndependent(t *testing.T) {
	s := Open(tempStorePath(t))
	require.NoError(t, s.SetRate("1", 100))
	require.NoError(t, s.SetRate("2", 300))

	sess, err := domain.NewManualSession(1, 0, 100, time.Now())
	require.NoError(t, err)
	_, err = s.AppendSession("1", "2025-06-02", sess)
	require.NoError(t, err)

	assert.Empty(t, s.GetOrCreate("2").Days)
	assert.Equal(t, 300.0, s.GetOrCreate("2").Rate)
}
