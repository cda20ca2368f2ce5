package main

import (
	"errors"
	"os"

	"github.com/elC0mpa/lfr-cli/model"
	"github.com/elC0mpa/lfr-cli/utils"
)

const (
	exitFailure = 1
	exitConfig  = 2
	exitUsage   = 64
)

func main() {
	utils.DrawBanner()

	if err := newRootCommand().Execute(); err != nil {
		utils.StopSpinner()
		utils.PrintError("%v", err)
		os.Exit(exitCode(err))
	}
}

// exitCode keeps the fatal taxonomy at the edge of the process: usage errors
// never reached a provider, configuration errors failed before any call, and
// everything else is a provider-side failure.
func exitCode(err error) int {
	var usageErr *model.UsageError
	if errors.As(err, &usageErr) {
		return exitUsage
	}

	var configErr *model.ConfigError
	if errors.As(err, &configErr) {
		return exitConfig
	}

	return exitFailure
}
