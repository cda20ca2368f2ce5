package model

// MachineType is the closed set of instance families the platform offers.
type MachineType string

const (
	MachineTypeGPU MachineType = "gpu"
	MachineTypeStd MachineType = "std"
)

// InstanceConfig is the parameter object for a single create-instance call.
// Name encodes <user>-<type>-<size>; that encoding is the only link between
// a user and their instances.
type InstanceConfig struct {
	Name          string
	Zone          string
	BlueprintID   string
	BundleID      string
	IdleThreshold string
	IdleDuration  string
}

// IamConfig pairs a new identity with the one instance it is allowed to manage.
type IamConfig struct {
	User  string
	Group string
	ARN   string
}
