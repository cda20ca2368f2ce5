package main

import (
	"context"

	"github.com/elC0mpa/lfr-cli/model"
	awsconfig "github.com/elC0mpa/lfr-cli/service/aws/config"
	awsiam "github.com/elC0mpa/lfr-cli/service/aws/iam"
	awslightsail "github.com/elC0mpa/lfr-cli/service/aws/lightsail"
	awssecrets "github.com/elC0mpa/lfr-cli/service/aws/secretsmanager"
	"github.com/elC0mpa/lfr-cli/service/cascade"
	"github.com/elC0mpa/lfr-cli/service/env"
	"github.com/elC0mpa/lfr-cli/service/identity"
	"github.com/elC0mpa/lfr-cli/service/instance"
	"github.com/elC0mpa/lfr-cli/service/naming"
	"github.com/elC0mpa/lfr-cli/service/orchestrator"
	"github.com/elC0mpa/lfr-cli/service/policy"
	"github.com/elC0mpa/lfr-cli/service/poller"
	"github.com/elC0mpa/lfr-cli/utils"
	"github.com/spf13/cobra"
)

var (
	flagRegion  string
	flagProfile string

	flagUser     string
	flagGroup    string
	flagSize     string
	flagType     string
	flagInstance string
	flagKey      bool
	flagName     string
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "lfr",
		Short:         "Provision and tear down paired lab instances and identity accounts",
		Example:       "  lfr new --user bob --group students --size medium --mtype std",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagRegion, "region", "us-east-1", "AWS region")
	root.PersistentFlags().StringVar(&flagProfile, "profile", "", "AWS profile configuration")

	root.AddCommand(newNewCommand(), newInstanceCommand(), newGetCommand(), newDeleteCommand(), newGroupCommand())
	return root
}

func newNewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create an instance and its paired identity account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withOrchestrator(cmd.Context(), func(ctx context.Context, o orchestrator.OrchestratorService) error {
				return o.NewEnvironment(ctx, flagUser, flagGroup, flagSize, flagType)
			})
		},
	}

	cmd.Flags().StringVarP(&flagUser, "user", "u", "", "username owning the environment")
	cmd.Flags().StringVarP(&flagGroup, "group", "g", "", "identity group to join")
	cmd.Flags().StringVarP(&flagSize, "size", "s", "", "instance size")
	cmd.Flags().StringVarP(&flagType, "mtype", "m", "", "machine type: gpu or std")
	for _, name := range []string{"user", "group", "size", "mtype"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func newInstanceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "instance",
		Short: "Create an additional instance for an existing user",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withOrchestrator(cmd.Context(), func(ctx context.Context, o orchestrator.OrchestratorService) error {
				return o.NewInstance(ctx, flagUser, flagSize, flagType)
			})
		},
	}

	cmd.Flags().StringVarP(&flagUser, "user", "u", "", "username owning the instance")
	cmd.Flags().StringVarP(&flagSize, "size", "s", "", "instance size")
	cmd.Flags().StringVarP(&flagType, "mtype", "m", "", "machine type: gpu or std")
	for _, name := range []string{"user", "size", "mtype"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func newGetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show instance details or fetch the default keypair",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withOrchestrator(cmd.Context(), func(ctx context.Context, o orchestrator.OrchestratorService) error {
				if flagKey {
					return o.FetchDefaultKey(ctx)
				}
				if flagInstance != "" {
					return o.GetInstance(ctx, flagInstance)
				}
				return &model.UsageError{Reason: "get requires --instance or --key"}
			})
		},
	}

	cmd.Flags().StringVarP(&flagInstance, "instance", "i", "", "instance name")
	cmd.Flags().BoolVarP(&flagKey, "key", "k", false, "download the default keypair private key")
	return cmd
}

func newDeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Tear down an instance, a user, or a whole group",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withOrchestrator(cmd.Context(), func(ctx context.Context, o orchestrator.OrchestratorService) error {
				return o.Teardown(ctx, model.DeleteTarget{
					Instance: flagInstance,
					User:     flagUser,
					Group:    flagGroup,
				})
			})
		},
	}

	cmd.Flags().StringVarP(&flagInstance, "instance", "i", "", "instance name to delete")
	cmd.Flags().StringVarP(&flagUser, "user", "u", "", "username whose instances and identity are deleted")
	cmd.Flags().StringVarP(&flagGroup, "group", "g", "", "group: with --user its membership, alone the full cascade")
	return cmd
}

func newGroupCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "group",
		Short: "Create an identity group with the shared access policy",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withOrchestrator(cmd.Context(), func(ctx context.Context, o orchestrator.OrchestratorService) error {
				return o.CreateGroup(ctx, flagName)
			})
		},
	}

	cmd.Flags().StringVarP(&flagName, "name", "n", "", "group name")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func withOrchestrator(ctx context.Context, run func(context.Context, orchestrator.OrchestratorService) error) error {
	o, err := buildOrchestrator(ctx)
	if err != nil {
		return err
	}

	utils.StartSpinner()
	defer utils.StopSpinner()
	return run(ctx, o)
}

func buildOrchestrator(ctx context.Context) (orchestrator.OrchestratorService, error) {
	cfg, err := env.Load()
	if err != nil {
		return nil, err
	}

	cfgService := awsconfig.NewService()
	awsCfg, err := cfgService.GetAWSCfg(ctx, flagRegion, flagProfile)
	if err != nil {
		return nil, err
	}

	computeService := awslightsail.NewService(awsCfg)
	identityAPI := awsiam.NewService(awsCfg)
	secretsService := awssecrets.NewService(awsCfg)

	namingService := naming.NewService()
	policyService := policy.NewService()
	statePoller := poller.NewService(computeService.GetInstanceState, poller.DefaultInterval, cfg.PollTimeout)

	instanceService := instance.NewService(computeService, statePoller, naming.MatchOwner)
	identityService := identity.NewService(identityAPI, secretsService, instanceService, policyService, cfg.AccountID)
	cascadeService := cascade.NewService(instanceService, identityService)

	return orchestrator.NewService(namingService, policyService, instanceService, identityService, cascadeService, computeService, cfg), nil
}
