package service

import (
	"time"

	"github.com/electronduke5/SalaryCounter/internal/domain"
	"github.com/electronduke5/SalaryCounter/internal/ledger"
)

type ledgerService struct {
	store *ledger.Store
	now   func() time.Time
}

// NewLedgerService creates the rate/session management service. now may be
// nil, in which case the wall clock is used.
func NewLedgerService(store *ledger.Store, now func() time.Time) LedgerService {
	if now == nil {
		now = time.Now
	}
	return &ledgerService{store: store, now: now}
}

func (s *ledgerService) SetRate(userID string, rate float64) error {
	return s.store.SetRate(userID, rate)
}

func (s *ledgerService) Rate(userID string) float64 {
	return s.store.GetOrCreate(userID).Rate
}

func (s *ledgerService) AddManualSession(userID string, hours, minutes int) (*AddedSession, error) {
	rate := s.store.GetOrCreate(userID).Rate
	if rate <= 0 {
		return nil, ErrRateNotSet
	}

	session, err := domain.NewManualSession(hours, minutes, rate, s.now())
	if err != nil {
		return nil, err
	}

	date := session.LoggedAt.Format(domain.DateLayout)
	bucket, err := s.store.AppendSession(userID, date, session)
	if err != nil {
		return nil, err
	}
	return &AddedSession{Session: session, Day: *bucket}, nil
}

func (s *ledgerService) SetRemoteCredentials(userID string, creds domain.RemoteCredentials) error {
	return s.store.SetRemoteCredentials(userID, creds)
}
