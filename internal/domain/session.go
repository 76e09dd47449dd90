package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrInvalidRate indicates a non-positive hourly rate.
	ErrInvalidRate = errors.New("hourly rate must be positive")

	// ErrInvalidDuration indicates a malformed manual duration
	// (negative parts, minutes out of range, or a zero-length session).
	ErrInvalidDuration = errors.New("invalid duration: hours >= 0, minutes 0-59, not both zero")
)

// NewManualSession builds a manually entered session. Earnings are computed
// from the rate in effect right now and frozen into the session.
func NewManualSession(hours, minutes int, rate float64, now time.Time) (Session, error) {
	if hours < 0 || minutes < 0 || minutes >= 60 || (hours == 0 && minutes == 0) {
		return Session{}, ErrInvalidDuration
	}
	total := float64(hours) + float64(minutes)/60
	return Session{
		ID:       uuid.New().String(),
		Hours:    hours,
		Minutes:  minutes,
		Earnings: total * rate,
		LoggedAt: now,
		Source:   SourceManual,
	}, nil
}

// NewRemoteSession builds a session from a remote time entry. The fractional
// duration is split into whole hours and rounded minutes so the stored parts
// reproduce the provider duration to the nearest minute.
func NewRemoteSession(remoteID, taskLabel, description string, durationHours, rate float64, startedAt time.Time) Session {
	hours := int(durationHours)
	minutes := int((durationHours-float64(hours))*60 + 0.5)
	if minutes == 60 {
		hours++
		minutes = 0
	}
	return Session{
		ID:          uuid.New().String(),
		Hours:       hours,
		Minutes:     minutes,
		Earnings:    durationHours * rate,
		LoggedAt:    startedAt,
		Source:      SourceRemote,
		RemoteID:    remoteID,
		TaskLabel:   taskLabel,
		Description: description,
	}
}
