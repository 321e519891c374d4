package search

import (
	"encoding/json"
	"fmt"
	"time"
)

// ErrRateLimit indicates the backend returned a rate limit error (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the backend returned a body that is not a
// well-formed search result.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid search response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the backend is down or unreachable.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("search provider unavailable: %v", e.Err)
	}
	return "search provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrRequestRejected indicates the backend refused the request itself
// (a 4xx other than 429). Retrying the same request will not help.
type ErrRequestRejected struct {
	StatusCode int
	Body       string
}

func (e *ErrRequestRejected) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("search request rejected: HTTP %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("search request rejected: HTTP %d", e.StatusCode)
}
