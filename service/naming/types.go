package naming

import "github.com/elC0mpa/lfr-cli/model"

type service struct{}

// OwnerMatcher decides whether an instance belongs to a user. Teardown
// re-derives ownership purely from the name, so the matcher is injectable
// and the convention lives in exactly one place.
type OwnerMatcher func(instanceName, user string) bool

type NamingService interface {
	BuildInstanceConfig(user, size, machineType, zone string) (model.InstanceConfig, error)
	BuildIamConfig(user, group, arn string) model.IamConfig
}
