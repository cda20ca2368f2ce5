package naming

import (
	"fmt"
	"strings"

	"github.com/elC0mpa/lfr-cli/model"
)

const (
	blueprintID = "lfr_ubuntu_1_0"

	// Provider-side idle-stop add-on settings: stop after utilization below
	// threshold percent for duration minutes.
	idleThreshold = "1"
	idleDuration  = "20"
)

func NewService() *service {
	return &service{}
}

// BuildInstanceConfig derives the deterministic instance configuration for a
// (user, size, machineType) triple. The instance name <user>-<type>-<size>
// must never collide across distinct triples: cascade teardown re-derives
// ownership from the first name segment.
func (s *service) BuildInstanceConfig(user, size, machineType, zone string) (model.InstanceConfig, error) {
	var bundleID string
	switch model.MachineType(machineType) {
	case model.MachineTypeGPU:
		bundleID = fmt.Sprintf("gpu_nvidia_%s_1_0", size)
	case model.MachineTypeStd:
		bundleID = fmt.Sprintf("app_standard_%s_1_0", size)
	default:
		return model.InstanceConfig{}, &model.ConfigError{
			Setting: "machine type",
			Detail:  fmt.Sprintf("%q is not one of gpu, std", machineType),
		}
	}

	return model.InstanceConfig{
		Name:          fmt.Sprintf("%s-%s-%s", user, machineType, size),
		Zone:          zone,
		BlueprintID:   blueprintID,
		BundleID:      bundleID,
		IdleThreshold: idleThreshold,
		IdleDuration:  idleDuration,
	}, nil
}

// BuildIamConfig assembles the identity request for an already-created
// instance. No validation beyond presence: the ARN is whatever the compute
// provider returned.
func (s *service) BuildIamConfig(user, group, arn string) model.IamConfig {
	return model.IamConfig{
		User:  user,
		Group: group,
		ARN:   arn,
	}
}

// MatchOwner is the default OwnerMatcher: the first '-'-delimited segment of
// the instance name must equal the username exactly. "alice2-std-small" does
// not belong to "alice".
func MatchOwner(instanceName, user string) bool {
	owner, _, _ := strings.Cut(instanceName, "-")
	return owner == user
}
