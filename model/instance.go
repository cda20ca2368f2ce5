package model

import "time"

// Lifecycle states the orchestration flow cares about. The provider owns the
// full state machine (pending -> running -> stopping -> stopped); these are
// the two targets we wait on.
const (
	StateRunning  = "running"
	StateStopping = "stopping"
)

// InstanceDetails is a point-in-time snapshot of a provider-owned instance.
type InstanceDetails struct {
	Name        string
	ARN         string
	Zone        string
	BlueprintID string
	BundleID    string
	State       string
	PublicIP    string
	CreatedAt   time.Time
}
