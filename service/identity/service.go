package identity

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/elC0mpa/lfr-cli/model"
	"github.com/elC0mpa/lfr-cli/service"
	"github.com/elC0mpa/lfr-cli/service/instance"
	"github.com/elC0mpa/lfr-cli/service/policy"
)

// passwordLength is the one-time password length issued to new accounts.
const passwordLength = 8

func NewService(identity service.IdentityService, secrets service.SecretsService, instances instance.LifecycleService, policies policy.PolicyService, accountID string) *lifecycleService {
	return &lifecycleService{
		identity:  identity,
		secrets:   secrets,
		instances: instances,
		policies:  policies,
		accountID: accountID,
	}
}

// Create provisions one identity account: account, group membership, a
// reset-required login profile with a one-time password, and an inline
// policy scoped to exactly the instance ARN in cfg. The password is returned
// to the caller once and never persisted.
func (s *lifecycleService) Create(ctx context.Context, cfg model.IamConfig) (*model.Credentials, error) {
	if err := s.identity.CreateUser(ctx, cfg.User); err != nil {
		return nil, &model.CreationError{Resource: "user", Name: cfg.User, Err: err}
	}
	slog.Info("created user", "user", cfg.User)

	if err := s.identity.AddUserToGroup(ctx, cfg.User, cfg.Group); err != nil {
		return nil, fmt.Errorf("add user %q to group %q: %w", cfg.User, cfg.Group, err)
	}
	slog.Info("added user to group", "user", cfg.User, "group", cfg.Group)

	password, err := s.secrets.GetRandomPassword(ctx, passwordLength)
	if err != nil {
		return nil, fmt.Errorf("issue one-time password for %q: %w", cfg.User, err)
	}

	if err := s.identity.CreateLoginProfile(ctx, cfg.User, password, true); err != nil {
		return nil, fmt.Errorf("create login profile for %q: %w", cfg.User, err)
	}
	slog.Info("created login profile", "user", cfg.User)

	policyName := s.policies.UserPolicyName(cfg.User)
	document, err := s.policies.BuildDocument(cfg.ARN)
	if err != nil {
		return nil, err
	}
	if err := s.identity.PutUserPolicy(ctx, cfg.User, policyName, document); err != nil {
		return nil, fmt.Errorf("attach policy %q to %q: %w", policyName, cfg.User, err)
	}
	slog.Info("attached user access policy", "user", cfg.User, "policy", policyName)

	details, err := s.identity.GetUser(ctx, cfg.User)
	if err != nil {
		return nil, err
	}

	return &model.Credentials{
		Details:         details,
		OneTimePassword: password,
	}, nil
}

// Delete tears down one identity account in provider-dependency order:
// group membership, login profile, inline policy, then the account itself.
// Every step is best-effort so an artifact already removed out-of-band does
// not block the rest.
func (s *lifecycleService) Delete(ctx context.Context, user, group string) *model.CascadeReport {
	report := &model.CascadeReport{}

	steps := []struct {
		action string
		run    func() error
	}{
		{"remove from group", func() error { return s.identity.RemoveUserFromGroup(ctx, user, group) }},
		{"delete login profile", func() error { return s.identity.DeleteLoginProfile(ctx, user) }},
		{"delete user policy", func() error { return s.identity.DeleteUserPolicy(ctx, user, s.policies.UserPolicyName(user)) }},
		{"delete user", func() error { return s.identity.DeleteUser(ctx, user) }},
	}

	for _, step := range steps {
		err := step.run()
		report.Record(step.action, user, err)
		if err != nil {
			slog.Warn("teardown step failed", "step", step.action, "user", user, "error", err)
			continue
		}
		slog.Info("teardown step complete", "step", step.action, "user", user)
	}

	return report
}

// CreateGroup creates a group and attaches the shared student-access managed
// policy.
func (s *lifecycleService) CreateGroup(ctx context.Context, group string) error {
	if err := s.identity.CreateGroup(ctx, group); err != nil {
		return &model.CreationError{Resource: "group", Name: group, Err: err}
	}
	slog.Info("created group", "group", group)

	policyARN := s.policies.GroupPolicyARN(s.accountID)
	if err := s.identity.AttachGroupPolicy(ctx, group, policyARN); err != nil {
		return fmt.Errorf("attach group policy to %q: %w", group, err)
	}
	slog.Info("attached group policy", "group", group, "policy", policyARN)

	return nil
}

// DeleteGroup is the root of the full cascade: every member account is torn
// down depth-first (its instances, then its identity) before the shared
// policy is detached and the group removed.
func (s *lifecycleService) DeleteGroup(ctx context.Context, group string) (*model.CascadeReport, error) {
	members, err := s.identity.GetGroupMembers(ctx, group)
	if err != nil {
		return nil, fmt.Errorf("list members of group %q: %w", group, err)
	}

	report := &model.CascadeReport{}
	for _, user := range members {
		instanceReport, err := s.instances.DeleteForUser(ctx, user)
		if err != nil {
			report.Record("list instances", user, err)
		} else {
			report.Merge(instanceReport)
		}

		report.Merge(s.Delete(ctx, user, group))
		slog.Info("removed user from group", "user", user, "group", group)
	}

	policyARN := s.policies.GroupPolicyARN(s.accountID)
	report.Record("detach group policy", group, s.identity.DetachGroupPolicy(ctx, group, policyARN))
	report.Record("delete group", group, s.identity.DeleteGroup(ctx, group))

	return report, nil
}
