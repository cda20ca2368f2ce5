package orchestrator

import (
	"context"

	"github.com/elC0mpa/lfr-cli/model"
	"github.com/elC0mpa/lfr-cli/service"
	"github.com/elC0mpa/lfr-cli/service/cascade"
	"github.com/elC0mpa/lfr-cli/service/env"
	"github.com/elC0mpa/lfr-cli/service/identity"
	"github.com/elC0mpa/lfr-cli/service/instance"
	"github.com/elC0mpa/lfr-cli/service/naming"
	"github.com/elC0mpa/lfr-cli/service/policy"
)

type orchestratorService struct {
	naming     naming.NamingService
	policies   policy.PolicyService
	instances  instance.LifecycleService
	identities identity.LifecycleService
	cascades   cascade.CascadeService
	compute    service.ComputeService
	cfg        *env.Config
}

type OrchestratorService interface {
	NewEnvironment(ctx context.Context, user, group, size, machineType string) error
	NewInstance(ctx context.Context, user, size, machineType string) error
	GetInstance(ctx context.Context, name string) error
	FetchDefaultKey(ctx context.Context) error
	Teardown(ctx context.Context, target model.DeleteTarget) error
	CreateGroup(ctx context.Context, group string) error
}
