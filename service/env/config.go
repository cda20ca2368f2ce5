package env

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config carries the platform settings read from the environment. A local
// .env file is merged in when present; real environment variables win.
type Config struct {
	// Zone is the availability zone instances are provisioned into.
	// Required for any command that creates an instance.
	Zone string

	// AccountID scopes the shared group policy ARN. Required for group
	// commands.
	AccountID string

	// PollTimeout bounds each state wait. Zero keeps the unbounded
	// baseline behavior.
	PollTimeout time.Duration

	// RollbackOnFailure deletes a freshly created instance when its paired
	// identity creation fails. Off by default: orphans are left for manual
	// cleanup.
	RollbackOnFailure bool
}

// Load reads the process environment, merging a .env file if one exists in
// the working directory.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Zone:      os.Getenv("LFR_ZONE"),
		AccountID: os.Getenv("LFR_ACCOUNT_ID"),
	}

	if raw := os.Getenv("LFR_POLL_TIMEOUT"); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("parse LFR_POLL_TIMEOUT %q: %w", raw, err)
		}
		cfg.PollTimeout = timeout
	}

	if raw := os.Getenv("LFR_ROLLBACK_ON_FAILURE"); raw != "" {
		rollback, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("parse LFR_ROLLBACK_ON_FAILURE %q: %w", raw, err)
		}
		cfg.RollbackOnFailure = rollback
	}

	return cfg, nil
}
