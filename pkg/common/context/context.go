// Package context provides small context helpers shared by the scheduling
// components.
package context

import (
	"context"
	"time"
)

// Sleep blocks for d or until ctx is done, whichever comes first, returning
// ctx.Err() in the latter case. Retry and backoff loops use it so a pending
// delay never outlives the caller's context.
func Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// IsCanceled returns true if the context has been canceled
func IsCanceled(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}

// IsTimedOut returns true if the context was canceled due to a timeout
func IsTimedOut(ctx context.Context) bool {
	return ctx.Err() == context.DeadlineExceeded
}
