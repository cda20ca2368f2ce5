package cascade

import (
	"context"

	"github.com/elC0mpa/lfr-cli/model"
	"github.com/elC0mpa/lfr-cli/service/identity"
	"github.com/elC0mpa/lfr-cli/service/instance"
)

func NewService(instances instance.LifecycleService, identities identity.LifecycleService) *service {
	return &service{
		instances:  instances,
		identities: identities,
	}
}

// Teardown dispatches one of the mutually exclusive teardown shapes:
// a single instance, a user and their instances, or a whole group with
// everything under it. No target is a usage error and issues no provider
// call.
func (s *service) Teardown(ctx context.Context, target model.DeleteTarget) (*model.CascadeReport, error) {
	switch {
	case target.Instance != "":
		report := &model.CascadeReport{}
		report.Record("delete instance", target.Instance, s.instances.Delete(ctx, target.Instance))
		return report, nil

	case target.User != "" && target.Group != "":
		report, err := s.instances.DeleteForUser(ctx, target.User)
		if err != nil {
			return nil, err
		}
		report.Merge(s.identities.Delete(ctx, target.User, target.Group))
		return report, nil

	case target.User != "":
		return nil, model.ErrUserWithoutGroup

	case target.Group != "":
		return s.identities.DeleteGroup(ctx, target.Group)

	default:
		return nil, model.ErrNoTarget
	}
}
