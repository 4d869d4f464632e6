package animate

import (
	"context"
	"time"
)

// Clock suspends a session between steps.
type Clock interface {
	Sleep(ctx context.Context, d time.Duration) error
}

type RealClock struct{}

func (RealClock) Sleep(ctx context.Context, d time.Duration) error {
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

// InstantClock never waits. Used for recording traces and in tests.
type InstantClock struct{}

func (InstantClock) Sleep(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}
