package identity

import (
	"context"

	"github.com/elC0mpa/lfr-cli/model"
	"github.com/elC0mpa/lfr-cli/service"
	"github.com/elC0mpa/lfr-cli/service/instance"
	"github.com/elC0mpa/lfr-cli/service/policy"
)

type lifecycleService struct {
	identity  service.IdentityService
	secrets   service.SecretsService
	instances instance.LifecycleService
	policies  policy.PolicyService
	accountID string
}

type LifecycleService interface {
	Create(ctx context.Context, cfg model.IamConfig) (*model.Credentials, error)
	Delete(ctx context.Context, user, group string) *model.CascadeReport
	CreateGroup(ctx context.Context, group string) error
	DeleteGroup(ctx context.Context, group string) (*model.CascadeReport, error)
}
