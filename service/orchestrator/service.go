package orchestrator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/elC0mpa/lfr-cli/model"
	"github.com/elC0mpa/lfr-cli/service"
	"github.com/elC0mpa/lfr-cli/service/cascade"
	"github.com/elC0mpa/lfr-cli/service/env"
	"github.com/elC0mpa/lfr-cli/service/identity"
	"github.com/elC0mpa/lfr-cli/service/instance"
	"github.com/elC0mpa/lfr-cli/service/naming"
	"github.com/elC0mpa/lfr-cli/service/policy"
	"github.com/elC0mpa/lfr-cli/utils"
)

func NewService(
	namingService naming.NamingService,
	policyService policy.PolicyService,
	instanceService instance.LifecycleService,
	identityService identity.LifecycleService,
	cascadeService cascade.CascadeService,
	computeService service.ComputeService,
	cfg *env.Config,
) *orchestratorService {
	return &orchestratorService{
		naming:     namingService,
		policies:   policyService,
		instances:  instanceService,
		identities: identityService,
		cascades:   cascadeService,
		compute:    computeService,
		cfg:        cfg,
	}
}

// NewEnvironment is the full pairing flow: provision the instance, then the
// identity scoped to that instance's ARN. A failed identity creation leaves
// the instance orphaned unless rollback is enabled.
func (s *orchestratorService) NewEnvironment(ctx context.Context, user, group, size, machineType string) error {
	instanceCfg, err := s.buildInstanceConfig(user, size, machineType)
	if err != nil {
		return err
	}

	details, err := s.instances.Create(ctx, instanceCfg)
	if err != nil {
		return err
	}

	iamCfg := s.naming.BuildIamConfig(user, group, details.ARN)
	credentials, err := s.identities.Create(ctx, iamCfg)
	if err != nil {
		s.handleOrphan(ctx, details.Name, err)
		return err
	}

	utils.StopSpinner()
	utils.DrawInstanceTable(details)
	utils.DrawCredentialsTable(credentials)
	return nil
}

// NewInstance provisions an instance without a paired identity. The caller
// is reminded to widen the user's existing policy by hand.
func (s *orchestratorService) NewInstance(ctx context.Context, user, size, machineType string) error {
	instanceCfg, err := s.buildInstanceConfig(user, size, machineType)
	if err != nil {
		return err
	}

	details, err := s.instances.Create(ctx, instanceCfg)
	if err != nil {
		return err
	}

	utils.StopSpinner()
	utils.DrawInstanceTable(details)
	utils.PrintSuccess("Manually add instance arn %s to policy %q", details.ARN, s.policies.UserPolicyName(user))
	return nil
}

func (s *orchestratorService) GetInstance(ctx context.Context, name string) error {
	details, err := s.compute.GetInstance(ctx, name)
	if err != nil {
		return err
	}

	utils.StopSpinner()
	utils.DrawInstanceTable(details)
	return nil
}

// FetchDefaultKey writes the default keypair private key to the fixed local
// key file, overwriting whatever is there.
func (s *orchestratorService) FetchDefaultKey(ctx context.Context) error {
	key, err := s.compute.DownloadDefaultKeyPair(ctx)
	if err != nil {
		return err
	}

	if err := utils.WriteDefaultKey(key); err != nil {
		return err
	}

	utils.StopSpinner()
	utils.PrintSuccess("Wrote default keypair private key to %s", utils.DefaultKeyFile)
	return nil
}

func (s *orchestratorService) Teardown(ctx context.Context, target model.DeleteTarget) error {
	// Only the group-only cascade touches the shared group policy, which is
	// addressed by account id.
	if target.Group != "" && target.User == "" && target.Instance == "" && s.cfg.AccountID == "" {
		return &model.ConfigError{Setting: "LFR_ACCOUNT_ID", Detail: "not set"}
	}

	report, err := s.cascades.Teardown(ctx, target)
	if err != nil {
		return err
	}

	utils.StopSpinner()
	utils.DrawCascadeReport(report)
	if !report.Clean() {
		return fmt.Errorf("teardown finished with %d failed steps", len(report.Failed))
	}
	return nil
}

func (s *orchestratorService) CreateGroup(ctx context.Context, group string) error {
	if s.cfg.AccountID == "" {
		return &model.ConfigError{Setting: "LFR_ACCOUNT_ID", Detail: "not set"}
	}

	if err := s.identities.CreateGroup(ctx, group); err != nil {
		return err
	}

	utils.StopSpinner()
	utils.PrintSuccess("Created group %q with shared access policy attached", group)
	return nil
}

func (s *orchestratorService) buildInstanceConfig(user, size, machineType string) (model.InstanceConfig, error) {
	if s.cfg.Zone == "" {
		return model.InstanceConfig{}, &model.ConfigError{Setting: "LFR_ZONE", Detail: "not set"}
	}
	return s.naming.BuildInstanceConfig(user, size, machineType, s.cfg.Zone)
}

func (s *orchestratorService) handleOrphan(ctx context.Context, instanceName string, cause error) {
	if !s.cfg.RollbackOnFailure {
		slog.Warn("identity creation failed; instance left in place for manual cleanup",
			"instance", instanceName, "error", cause)
		return
	}

	if err := s.instances.Delete(ctx, instanceName); err != nil {
		slog.Warn("rollback of orphaned instance failed", "instance", instanceName, "error", err)
		return
	}
	slog.Info("rolled back orphaned instance", "instance", instanceName)
}
