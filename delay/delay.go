// Package delay provides the sleep helpers an API client uses between
// retries and while waiting out rate limits.
//
// A non-positive duration completes immediately without creating a timer.
package delay

import (
	"context"
	"time"
)

// Timer constructors, replaced in tests to observe timer creation.
var (
	newTimer  = time.NewTimer
	afterFunc = time.AfterFunc
)

// closed is returned by After for non-positive durations.
var closed = func() chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}()

// After returns a channel that is closed once d has elapsed. For d <= 0 the
// returned channel is already closed and no timer is created.
//
// A caller that stops waiting simply drops the channel; the timer fires
// once and is then released.
func After(d time.Duration) <-chan struct{} {
	if d <= 0 {
		return closed
	}
	ch := make(chan struct{})
	afterFunc(d, func() { close(ch) })
	return ch
}

// Sleep blocks until d has elapsed or ctx is done, whichever comes first,
// and returns ctx.Err() in the latter case. For d <= 0 it returns nil
// immediately without creating a timer, even if ctx is already done.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := newTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// SleepMillis is Sleep with the duration given in milliseconds, the unit
// rate limit headers and retry_after fields use.
func SleepMillis(ctx context.Context, ms int) error {
	return Sleep(ctx, time.Duration(ms)*time.Millisecond)
}
