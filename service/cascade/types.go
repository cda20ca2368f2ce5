package cascade

import (
	"context"

	"github.com/elC0mpa/lfr-cli/model"
	"github.com/elC0mpa/lfr-cli/service/identity"
	"github.com/elC0mpa/lfr-cli/service/instance"
)

type service struct {
	instances  instance.LifecycleService
	identities identity.LifecycleService
}

type CascadeService interface {
	Teardown(ctx context.Context, target model.DeleteTarget) (*model.CascadeReport, error)
}
