package service

import (
	"context"

	"github.com/elC0mpa/lfr-cli/model"
)

// ComputeService is the compute-provider capability the lifecycle managers
// consume. Instance state is observed, never cached.
type ComputeService interface {
	CreateInstance(ctx context.Context, cfg model.InstanceConfig) error
	GetInstance(ctx context.Context, name string) (*model.InstanceDetails, error)
	GetInstances(ctx context.Context) ([]model.InstanceDetails, error)
	GetInstanceState(ctx context.Context, name string) (string, error)
	StopInstance(ctx context.Context, name string) error
	DeleteInstance(ctx context.Context, name string) error
	DownloadDefaultKeyPair(ctx context.Context) (string, error)
}

// IdentityService is the identity-provider capability: accounts, groups,
// login profiles and policies.
type IdentityService interface {
	CreateUser(ctx context.Context, user string) error
	GetUser(ctx context.Context, user string) (*model.UserDetails, error)
	DeleteUser(ctx context.Context, user string) error
	CreateGroup(ctx context.Context, group string) error
	DeleteGroup(ctx context.Context, group string) error
	GetGroupMembers(ctx context.Context, group string) ([]string, error)
	AddUserToGroup(ctx context.Context, user, group string) error
	RemoveUserFromGroup(ctx context.Context, user, group string) error
	CreateLoginProfile(ctx context.Context, user, password string, resetRequired bool) error
	DeleteLoginProfile(ctx context.Context, user string) error
	PutUserPolicy(ctx context.Context, user, policyName, document string) error
	DeleteUserPolicy(ctx context.Context, user, policyName string) error
	AttachGroupPolicy(ctx context.Context, group, policyARN string) error
	DetachGroupPolicy(ctx context.Context, group, policyARN string) error
}

// SecretsService issues one-time passwords.
type SecretsService interface {
	GetRandomPassword(ctx context.Context, length int64) (string, error)
}
