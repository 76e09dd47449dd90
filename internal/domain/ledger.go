package domain

import "time"

// DateLayout is the calendar-date key format used throughout the ledger.
// Dates are always local calendar dates with no time-of-day component.
const DateLayout = "2006-01-02"

// SessionSource tags where a work session came from.
type SessionSource string

const (
	SourceManual SessionSource = "manual"
	SourceRemote SessionSource = "remote"
)

// Session is one quantum of worked time with its earnings computed at
// append time. Earnings are never recomputed when the rate changes later.
type Session struct {
	ID       string        `json:"id"`
	Hours    int           `json:"hours"`
	Minutes  int           `json:"minutes"`
	Earnings float64       `json:"earnings"`
	LoggedAt time.Time     `json:"timestamp"`
	Source   SessionSource `json:"source"`

	// Remote-sourced sessions only.
	RemoteID    string `json:"remote_id,omitempty"`
	TaskLabel   string `json:"task_label,omitempty"`
	Description string `json:"description,omitempty"`
}

// HoursEquivalent returns the session duration in fractional hours.
func (s Session) HoursEquivalent() float64 {
	return float64(s.Hours) + float64(s.Minutes)/60
}

// DayBucket aggregates all sessions for one calendar date. Totals are kept
// in lockstep with the session list on every append.
type DayBucket struct {
	TotalHours    float64   `json:"total_hours"`
	TotalEarnings float64   `json:"total_earnings"`
	Sessions      []Session `json:"sessions"`
}

// Append adds a session and updates the running totals.
func (b *DayBucket) Append(s Session) {
	b.Sessions = append(b.Sessions, s)
	b.TotalHours += s.HoursEquivalent()
	b.TotalEarnings += s.Earnings
}

// RemoteCredentials holds what the remote provider needs to identify a user:
// an API token and a workspace reference (name or numeric ID).
type RemoteCredentials struct {
	APIToken  string `json:"api_token"`
	Workspace string `json:"workspace"`
}

// Configured reports whether the credentials are usable for a sync.
func (c *RemoteCredentials) Configured() bool {
	return c != nil && c.APIToken != "" && c.Workspace != ""
}

// UserLedger is the per-user record of rate, daily work buckets, and
// remote entry IDs that have already been merged. The absorbed set grows
// monotonically; buckets are append-only and never deleted.
type UserLedger struct {
	Rate     float64
	Days     map[string]*DayBucket
	Absorbed map[string]struct{}
	Remote   *RemoteCredentials
}

// NewUserLedger returns an empty ledger with structural defaults.
func NewUserLedger() *UserLedger {
	return &UserLedger{
		Days:     make(map[string]*DayBucket),
		Absorbed: make(map[string]struct{}),
	}
}

// Day returns the bucket for date, creating an empty one on first use.
func (l *UserLedger) Day(date string) *DayBucket {
	b, ok := l.Days[date]
	if !ok {
		b = &DayBucket{}
		l.Days[date] = b
	}
	return b
}

// HasAbsorbed reports whether a remote entry ID was already merged.
func (l *UserLedger) HasAbsorbed(remoteID string) bool {
	_, ok := l.Absorbed[remoteID]
	return ok
}

// MarkAbsorbed records a remote entry ID as merged.
func (l *UserLedger) MarkAbsorbed(remoteID string) {
	l.Absorbed[remoteID] = struct{}{}
}
