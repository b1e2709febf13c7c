// Package latency models the simulated network round trip charged at the
// boundary of every store and repository operation. The policy is injected
// so consumers can run with realistic delays while tests strip them.
package latency

import (
	"context"
	"time"
)

// Policy decides how an operation's simulated round trip is spent.
type Policy interface {
	// Wait blocks for the operation's nominal delay d, or until ctx is done,
	// in which case it returns ctx.Err(). Implementations may shorten or
	// skip the delay but must still honor cancellation.
	Wait(ctx context.Context, d time.Duration) error
}

// Simulated waits the full nominal duration of each operation.
type Simulated struct{}

func (Simulated) Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// None resolves immediately. Tests use it so repository semantics can be
// exercised without the artificial delays.
type None struct{}

func (None) Wait(ctx context.Context, d time.Duration) error {
	return ctx.Err()
}
