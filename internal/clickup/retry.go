package clickup

import (
	"context"
	"time"
)

// RetryPolicy bounds how often an operation is reattempted and how long to
// wait between attempts. The same policy is applied to every request method.
type RetryPolicy struct {
	MaxAttempts int
	BackoffBase time.Duration
	Retryable   func(error) bool
}

// DefaultRetryPolicy retries transient and rate-limit failures up to three
// attempts total with exponential backoff.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		BackoffBase: time.Second,
		Retryable:   Retryable,
	}
}

// Do runs op until it succeeds, fails non-retryably, or MaxAttempts is
// exhausted. Between retryable failures it sleeps BackoffBase * 2^attempt.
// The final attempt's error is returned unmodified.
func (p RetryPolicy) Do(ctx context.Context, op func() error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			backoff := p.BackoffBase * time.Duration(1<<(attempt-1))
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		err = op()
		if err == nil {
			return nil
		}
		if p.Retryable == nil || !p.Retryable(err) {
			return err
		}
	}
	return err
}
