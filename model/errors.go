package model

import "fmt"

// ConfigError reports a configuration problem detected before any provider
// call is issued.
type ConfigError struct {
	Setting string
	Detail  string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration: %s: %s", e.Setting, e.Detail)
}

// CreationError wraps a provider failure from a create call. Creation
// failures are fatal to the whole flow; no compensating cleanup of resources
// created earlier in the same flow is attempted unless rollback is enabled.
type CreationError struct {
	Resource string
	Name     string
	Err      error
}

func (e *CreationError) Error() string {
	return fmt.Sprintf("create %s %q: %v", e.Resource, e.Name, e.Err)
}

func (e *CreationError) Unwrap() error {
	return e.Err
}

// UsageError reports missing or contradictory arguments. No provider call is
// issued for a usage error.
type UsageError struct {
	Reason string
}

func (e *UsageError) Error() string {
	return e.Reason
}

var (
	ErrNoTarget         = &UsageError{Reason: "no teardown target supplied: pass --instance, --user with --group, or --group"}
	ErrUserWithoutGroup = &UsageError{Reason: "user teardown requires --group so group membership can be removed first"}
)
