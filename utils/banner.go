package utils

import (
	"time"

	"github.com/briandowns/spinner"
	"github.com/common-nighthawk/go-figure"
)

var activeSpinner *spinner.Spinner

// DrawBanner prints the startup banner.
func DrawBanner() {
	figure.NewColorFigure("LFR CLI", "", "blue", true).Print()
}

// StartSpinner shows a spinner while provider calls and state polls run.
func StartSpinner() {
	activeSpinner = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	activeSpinner.Suffix = " talking to the provider..."
	activeSpinner.Start()
}

// StopSpinner stops the spinner before any table is drawn. Safe to call when
// no spinner is running.
func StopSpinner() {
	if activeSpinner != nil {
		activeSpinner.Stop()
		activeSpinner = nil
	}
}
