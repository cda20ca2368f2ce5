package instance

import (
	"context"
	"log/slog"

	"github.com/elC0mpa/lfr-cli/model"
	"github.com/elC0mpa/lfr-cli/service"
	"github.com/elC0mpa/lfr-cli/service/naming"
	"github.com/elC0mpa/lfr-cli/service/poller"
)

func NewService(compute service.ComputeService, statePoller poller.PollerService, matches naming.OwnerMatcher) *lifecycleService {
	if matches == nil {
		matches = naming.MatchOwner
	}
	return &lifecycleService{
		compute: compute,
		poller:  statePoller,
		matches: matches,
	}
}

// Create provisions one instance and walks it through its initial lifecycle:
// create, wait for running, stop, wait for stopping. The creation call
// failing is fatal to the flow; everything after it is best-effort and the
// latest instance snapshot is returned regardless, so the caller always sees
// what actually exists.
func (s *lifecycleService) Create(ctx context.Context, cfg model.InstanceConfig) (*model.InstanceDetails, error) {
	if err := s.compute.CreateInstance(ctx, cfg); err != nil {
		return nil, &model.CreationError{Resource: "instance", Name: cfg.Name, Err: err}
	}
	slog.Info("created instance", "instance", cfg.Name, "bundle", cfg.BundleID, "zone", cfg.Zone)

	if err := s.poller.WaitForState(ctx, cfg.Name, model.StateRunning); err != nil {
		slog.Warn("instance did not reach running", "instance", cfg.Name, "error", err)
	} else if err := s.stop(ctx, cfg.Name); err != nil {
		slog.Warn("unable to stop instance", "instance", cfg.Name, "error", err)
	}

	return s.compute.GetInstance(ctx, cfg.Name)
}

func (s *lifecycleService) stop(ctx context.Context, name string) error {
	if err := s.compute.StopInstance(ctx, name); err != nil {
		return err
	}
	if err := s.poller.WaitForState(ctx, name, model.StateStopping); err != nil {
		return err
	}

	slog.Info("stopping instance", "instance", name)
	return nil
}

// Delete removes one instance, forcing deletion of its add-ons.
func (s *lifecycleService) Delete(ctx context.Context, name string) error {
	return s.compute.DeleteInstance(ctx, name)
}

// DeleteForUser removes every instance owned by user. Ownership is decided
// by the injected matcher against the full instance listing; deletions run
// sequentially and each outcome lands in the report.
func (s *lifecycleService) DeleteForUser(ctx context.Context, user string) (*model.CascadeReport, error) {
	instances, err := s.compute.GetInstances(ctx)
	if err != nil {
		return nil, err
	}

	report := &model.CascadeReport{}
	for _, details := range instances {
		if !s.matches(details.Name, user) {
			continue
		}

		err := s.compute.DeleteInstance(ctx, details.Name)
		report.Record("delete instance", details.Name, err)
		if err != nil {
			slog.Warn("unable to delete instance", "instance", details.Name, "error", err)
			continue
		}
		slog.Info("deleted instance", "instance", details.Name, "user", user)
	}

	return report, nil
}
