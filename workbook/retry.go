package workbook

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"time"

	"google.golang.org/api/googleapi"
)

const (
	maxAttempts  = 4
	initialDelay = 500 * time.Millisecond
)

// withRetry runs op, retrying on a rate-limit signal with exponential
// backoff and jitter. After maxAttempts the last error is returned to the
// caller; anything that isn't a rate limit fails immediately.
func withRetry(ctx context.Context, op func() error) error {
	delay := initialDelay
	for attempt := 1; ; attempt++ {
		err := op()
		if err == nil || !isRateLimited(err) || attempt >= maxAttempts {
			return err
		}

		jitter := time.Duration(rand.Int63n(int64(delay / 2)))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay + jitter):
		}
		delay *= 2
	}
}

func isRateLimited(err error) bool {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code == http.StatusTooManyRequests || gerr.Code == http.StatusServiceUnavailable
	}
	return false
}
