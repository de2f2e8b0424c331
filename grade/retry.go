package grade

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/grader"
)

// FetchWithRetry fetches url, repeating failed attempts according to policy.
// Every failure is logged at error level before waiting policy.Delay.
// With an unlimited policy it only returns once a fetch succeeds or ctx is done.
// Invalid URLs (EINVALID) are returned immediately since repeating cannot fix them.
// When a bounded policy runs out of attempts, the last error is returned
// wrapped in an EUNAVAILABLE error.
func FetchWithRetry(ctx context.Context, url string, fetcher grader.Fetcher, policy grader.RetryPolicy, logger *slog.Logger) (string, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	var lastErr error
	attempt := 0
	for {
		attempt++

		html, err := fetcher.Fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		if grader.ErrorCode(err) == grader.EINVALID {
			return "", err
		}

		logger.Error("Error retrieving url",
			"url", url,
			"attempt", attempt,
			"err", err,
		)

		if !policy.Unlimited() && attempt >= policy.MaxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(policy.Delay):
		}
	}

	return "", grader.WrapError(grader.EUNAVAILABLE, lastErr,
		"retrieving url %s failed after %d attempts", url, attempt)
}
