package clickup

import (
	"errors"
	"fmt"
)

var (
	// ErrAuth indicates the provider rejected the API token.
	ErrAuth = errors.New("clickup rejected credentials")

	// ErrForbidden indicates the token lacks permission for the resource.
	ErrForbidden = errors.New("clickup denied access")

	// ErrRateLimited indicates the provider throttled the request.
	ErrRateLimited = errors.New("clickup rate limit exceeded")

	// ErrTransient indicates a network failure or provider-side error
	// that is worth retrying.
	ErrTransient = errors.New("transient clickup error")

	// ErrWorkspaceNotFound indicates the configured workspace reference
	// matched none of the token's teams.
	ErrWorkspaceNotFound = errors.New("workspace not found")
)

// UnexpectedResponseError reports a status or body shape the client does not
// know how to interpret. It is never retried.
type UnexpectedResponseError struct {
	Status int
	Body   string
}

func (e *UnexpectedResponseError) Error() string {
	return fmt.Sprintf("unexpected clickup response: status %d: %s", e.Status, e.Body)
}

// Retryable reports whether err is worth another attempt.
func Retryable(err error) bool {
	return errors.Is(err, ErrRateLimited) || errors.Is(err, ErrTransient)
}
