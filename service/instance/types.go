package instance

import (
	"context"

	"github.com/elC0mpa/lfr-cli/model"
	"github.com/elC0mpa/lfr-cli/service"
	"github.com/elC0mpa/lfr-cli/service/naming"
	"github.com/elC0mpa/lfr-cli/service/poller"
)

type lifecycleService struct {
	compute service.ComputeService
	poller  poller.PollerService
	matches naming.OwnerMatcher
}

type LifecycleService interface {
	Create(ctx context.Context, cfg model.InstanceConfig) (*model.InstanceDetails, error)
	Delete(ctx context.Context, name string) error
	DeleteForUser(ctx context.Context, user string) (*model.CascadeReport, error)
}
