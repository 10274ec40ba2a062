package services

import (
	"context"
	"time"
)

// Delay waits d, or returns ctx.Err() if the caller goes away first.
// Callers must not apply state after a non-nil return.
func Delay(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
