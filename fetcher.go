package grader

import (
	"context"
	"time"
)

// Fetcher retrieves HTML from URLs.
type Fetcher interface {
	// Fetch issues a request for url and returns the response body.
	// Non-success responses are errors.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}

// DefaultRetryDelay is the fixed wait between failed fetch attempts.
const DefaultRetryDelay = 5 * time.Second

// RetryPolicy controls how failed fetches are repeated.
// Delays are fixed; they do not grow between attempts.
type RetryPolicy struct {
	// Delay is the wait after a failed attempt.
	Delay time.Duration

	// MaxAttempts is the total number of attempts, including the first.
	// Zero means retry until the fetch succeeds or the context is done.
	MaxAttempts int
}

// DefaultRetryPolicy retries every DefaultRetryDelay with no attempt limit.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{Delay: DefaultRetryDelay}
}

// Unlimited reports whether the policy has no attempt limit.
func (p RetryPolicy) Unlimited() bool {
	return p.MaxAttempts <= 0
}
