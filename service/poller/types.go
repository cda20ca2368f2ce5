package poller

import (
	"context"
	"time"
)

// StateFetcher reads the current lifecycle state of a named resource. The
// poller is resource-agnostic: any resource with a state string can be
// waited on.
type StateFetcher func(ctx context.Context, name string) (string, error)

type service struct {
	fetch    StateFetcher
	interval time.Duration
	timeout  time.Duration
	sleep    func(ctx context.Context, d time.Duration) error
}

type PollerService interface {
	WaitForState(ctx context.Context, name, target string) error
}
