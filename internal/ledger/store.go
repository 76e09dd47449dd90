// Package ledger provides the file-backed store of per-user salary ledgers.
// One JSON document holds every user; each mutating call rewrites it before
// returning, so the file always reflects the last completed operation.
package ledger

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/electronduke5/SalaryCounter/internal/domain"
)

// Store owns the user -> ledger map and its backing file. All access goes
// through the store's mutex; callers are expected to run one logical
// operation per user at a time.
type Store struct {
	mu    sync.Mutex
	path  string
	users map[string]*domain.UserLedger
}

// persistedLedger is the on-disk shape of a user ledger. The absorbed set is
// serialized as a sorted slice and rebuilt into a set on load.
type persistedLedger struct {
	Rate     float64                      `json:"rate"`
	Days     map[string]*domain.DayBucket `json:"work_sessions"`
	Absorbed []string                     `json:"absorbed_remote_ids"`
	Remote   *domain.RemoteCredentials    `json:"remote,omitempty"`
}

// Open loads the store from path. A missing, unreadable, or corrupt file is
// treated as "no prior state": the store starts empty and the condition is
// logged, never surfaced as an error.
func Open(path string) *Store {
	s := &Store{path: path, users: make(map[string]*domain.UserLedger)}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("ledger file unreadable, starting empty", "path", path, "error", err)
		}
		return s
	}

	var raw map[string]persistedLedger
	if err := json.Unmarshal(data, &raw); err != nil {
		slog.Warn("ledger file corrupt, starting empty", "path", path, "error", err)
		return s
	}

	for userID, p := range raw {
		l := domain.NewUserLedger()
		l.Rate = p.Rate
		if p.Days != nil {
			l.Days = p.Days
		}
		for _, id := range p.Absorbed {
			l.Absorbed[id] = struct{}{}
		}
		l.Remote = p.Remote
		s.users[userID] = l
	}
	return s
}

// GetOrCreate returns the ledger for userID, creating a default one on miss.
// The returned value is a snapshot; mutations go through the store methods.
func (s *Store) GetOrCreate(userID string) *domain.UserLedger {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledgerLocked(userID)
}

// SetRate sets the user's hourly rate. Existing session earnings are never
// rewritten; the new rate applies to future appends only.
func (s *Store) SetRate(userID string, rate float64) error {
	if rate <= 0 {
		return domain.ErrInvalidRate
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.ledgerLocked(userID).Rate = rate
	return s.persistLocked()
}

// SetRemoteCredentials stores the user's remote provider credentials.
func (s *Store) SetRemoteCredentials(userID string, creds domain.RemoteCredentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ledgerLocked(userID).Remote = &creds
	return s.persistLocked()
}

// AppendSession appends a session to the bucket for date, creating the
// bucket if needed, and returns the updated bucket.
func (s *Store) AppendSession(userID, date string, session domain.Session) (*domain.DayBucket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bucket := s.ledgerLocked(userID).Day(date)
	bucket.Append(session)
	if err := s.persistLocked(); err != nil {
		return nil, err
	}
	return bucket, nil
}

// AbsorbRemote appends a remote-sourced session and records its remote ID as
// absorbed in a single persisted step, keeping the "absorbed iff appended"
// invariant even if the process dies between syncs.
func (s *Store) AbsorbRemote(userID, date string, session domain.Session) (*domain.DayBucket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l := s.ledgerLocked(userID)
	bucket := l.Day(date)
	bucket.Append(session)
	l.MarkAbsorbed(session.RemoteID)
	if err := s.persistLocked(); err != nil {
		return nil, err
	}
	return bucket, nil
}

// MarkAbsorbed records a remote entry ID without appending a session.
func (s *Store) MarkAbsorbed(userID, remoteID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ledgerLocked(userID).MarkAbsorbed(remoteID)
	return s.persistLocked()
}

// IsAbsorbed reports whether the remote entry ID was already merged.
func (s *Store) IsAbsorbed(userID, remoteID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ledgerLocked(userID).HasAbsorbed(remoteID)
}

func (s *Store) ledgerLocked(userID string) *domain.UserLedger {
	l, ok := s.users[userID]
	if !ok {
		l = domain.NewUserLedger()
		s.users[userID] = l
	}
	return l
}

func (s *Store) persistLocked() error {
	raw := make(map[string]persistedLedger, len(s.users))
	for userID, l := range s.users {
		absorbed := make([]string, 0, len(l.Absorbed))
		for id := range l.Absorbed {
			absorbed = append(absorbed, id)
		}
		sort.Strings(absorbed)

		raw[userID] = persistedLedger{
			Rate:     l.Rate,
			Days:     l.Days,
			Absorbed: absorbed,
			Remote:   l.Remote,
		}
	}

	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding ledger: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating ledger directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing ledger file: %w", err)
	}
	return nil
}
