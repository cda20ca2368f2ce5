package model

import "time"

// UserDetails is a snapshot of a provider-owned identity account.
type UserDetails struct {
	UserName   string
	UserID     string
	ARN        string
	CreateDate time.Time
}

// Credentials is the result of a full identity provisioning flow. The
// one-time password is surfaced here once and never persisted.
type Credentials struct {
	Details         *UserDetails
	OneTimePassword string
}
