package poller

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// DefaultInterval is the fixed probe cadence. State transitions are
// provider-SLA-bounded, so there is no backoff or jitter.
const DefaultInterval = 5 * time.Second

// NewService builds a poller over fetch. A timeout of zero keeps the
// baseline unbounded wait; a positive timeout bounds the total time spent
// sleeping between probes. Cancel the context to abandon a wait early.
func NewService(fetch StateFetcher, interval, timeout time.Duration) *service {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &service{
		fetch:    fetch,
		interval: interval,
		timeout:  timeout,
		sleep:    sleepWithContext,
	}
}

// WaitForState blocks until the named resource reports the target state.
// The target is an opaque comparison string.
func (s *service) WaitForState(ctx context.Context, name, target string) error {
	var elapsed time.Duration

	for {
		state, err := s.fetch(ctx, name)
		if err != nil {
			return fmt.Errorf("fetch state of %q: %w", name, err)
		}

		slog.Info("observed resource state", "resource", name, "state", state, "target", target)

		if state == target {
			return nil
		}

		// Elapsed time is accounted in whole intervals so a scripted clock
		// sees the same arithmetic as a real one.
		elapsed += s.interval
		if s.timeout > 0 && elapsed > s.timeout {
			return fmt.Errorf("timed out after %s waiting for %q to reach %q", s.timeout, name, target)
		}

		if err := s.sleep(ctx, s.interval); err != nil {
			return fmt.Errorf("wait for %q to reach %q: %w", name, target, err)
		}
	}
}

func sleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
