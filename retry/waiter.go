package retry

import (
	"context"
	"time"
)

// Waiter suspends execution for a backoff delay. The decision logic in Policy
// is shared by every execution mode; only the suspension mechanism differs.
type Waiter interface {
	// Wait suspends for the given delay. It returns an error only if the
	// wait was aborted before the delay elapsed.
	Wait(ctx context.Context, delay time.Duration) error
}

// BlockingWaiter fully suspends the calling goroutine with time.Sleep.
// It ignores context cancellation; use ContextWaiter when an in-progress
// wait must be abortable.
type BlockingWaiter struct{}

// Wait sleeps for the given delay.
func (BlockingWaiter) Wait(_ context.Context, delay time.Duration) error {
	time.Sleep(delay)
	return nil
}

// ContextWaiter suspends cooperatively and aborts the wait when the context
// is cancelled or its deadline passes. This is the default waiter.
type ContextWaiter struct{}

// Wait waits for the given delay or until the context is done, whichever
// comes first. It returns ctx.Err() when the wait was aborted.
func (ContextWaiter) Wait(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
